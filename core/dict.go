package core

// Canonical dict renderings: {kind, content}. The mapping is a lossless
// bijection with the variant's fields, so Dict followed by the dict parse
// route reproduces an equal occurrence for every known kind.

func (o Instructions) Dict() map[string]any { return kindDict(KindInstructions, o.Text) }

func (o Example) Dict() map[string]any {
	return kindDict(KindExample, map[string]any{"title": o.Title, "example": o.Example})
}

func (Begin) Dict() map[string]any { return kindDict(KindBegin, "") }

func (o Context) Dict() map[string]any { return kindDict(KindContext, dictMap(o.Values)) }

func (o Self) Dict() map[string]any {
	return kindDict(KindSelf, map[string]any{"emotion": o.Emotion, "says": o.Says})
}

func (o Participant) Dict() map[string]any {
	return kindDict(KindParticipant, map[string]any{"name": o.Name, "emotion": o.Emotion, "says": o.Says})
}

func (o Motivation) Dict() map[string]any { return kindDict(KindMotivation, o.Text) }

func (o Observation) Dict() map[string]any { return kindDict(KindObservation, o.Text) }

func (o Thought) Dict() map[string]any { return kindDict(KindThought, o.Text) }

func (o Identification) Dict() map[string]any {
	return kindDict(KindIdentification, map[string]any{"kind": o.Role, "name": o.Name})
}

func (o Waiting) Dict() map[string]any { return kindDict(KindWaiting, dictMap(o.Keys)) }

func (o Resuming) Dict() map[string]any { return kindDict(KindResuming, dictMap(o.Keys)) }

func (o Working) Dict() map[string]any { return kindDict(KindWorking, dictMap(o.Task)) }

func (o Action) Dict() map[string]any { return kindDict(KindAction, dictMap(o.Call)) }

func (o Rejected) Dict() map[string]any {
	return kindDict(KindRejected, map[string]any{"emotion": o.Emotion, "says": o.Says})
}

func (o Critique) Dict() map[string]any { return kindDict(KindCritique, o.Text) }

func (o CritiqueRequest) Dict() map[string]any { return kindDict(KindCritiqueRequest, o.Text) }

func (o RevisionRequest) Dict() map[string]any { return kindDict(KindRevisionRequest, o.Text) }

func (o Revision) Dict() map[string]any {
	return kindDict(KindRevision, map[string]any{"emotion": o.Emotion, "says": o.Says})
}

func (o Chosen) Dict() map[string]any {
	return kindDict(KindChosen, map[string]any{"emotion": o.Emotion, "says": o.Says})
}

func kindDict(k Kind, content any) map[string]any {
	return map[string]any{"kind": string(k), "content": content}
}

// occurrenceFromDict builds the variant for one kind-tagged mapping. The
// second return is false for an unrecognized (or absent) kind: the dict
// route silently drops those instead of failing, unlike the text route which
// rejects any unmatched line. This leniency keeps persisted payloads written
// by newer producers loadable by older readers.
//
// A known kind without a content key is a MissingFieldError; sub-fields
// inside content default to empty strings/mappings.
func occurrenceFromDict(entry map[string]any) (Occurrence, bool, error) {
	kindVal, _ := entry["kind"].(string)
	kind := Kind(kindVal)
	if kind == KindBegin {
		return Begin{}, true, nil
	}
	if !knownKind(kind) {
		return nil, false, nil
	}
	content, ok := entry["content"]
	if !ok {
		return nil, false, &MissingFieldError{Field: "content", Kind: string(kind)}
	}
	switch kind {
	case KindInstructions:
		return Instructions{Text: asString(content)}, true, nil
	case KindExample:
		f := asFields(content)
		return Example{Title: field(f, "title"), Example: field(f, "example")}, true, nil
	case KindContext:
		m, err := asMapping(content, kind)
		return Context{Values: m}, err == nil, err
	case KindSelf:
		f := asFields(content)
		return Self{Emotion: field(f, "emotion"), Says: field(f, "says")}, true, nil
	case KindParticipant:
		f := asFields(content)
		return Participant{Name: field(f, "name"), Emotion: field(f, "emotion"), Says: field(f, "says")}, true, nil
	case KindMotivation:
		return Motivation{Text: asString(content)}, true, nil
	case KindObservation:
		return Observation{Text: asString(content)}, true, nil
	case KindThought:
		return Thought{Text: asString(content)}, true, nil
	case KindIdentification:
		f := asFields(content)
		return Identification{Role: field(f, "kind"), Name: field(f, "name")}, true, nil
	case KindWaiting:
		m, err := asMapping(content, kind)
		return Waiting{Keys: m}, err == nil, err
	case KindResuming:
		m, err := asMapping(content, kind)
		return Resuming{Keys: m}, err == nil, err
	case KindWorking:
		m, err := asMapping(content, kind)
		return Working{Task: m}, err == nil, err
	case KindAction:
		m, err := asMapping(content, kind)
		return Action{Call: m}, err == nil, err
	case KindRejected:
		f := asFields(content)
		return Rejected{Emotion: field(f, "emotion"), Says: field(f, "says")}, true, nil
	case KindCritique:
		return Critique{Text: asString(content)}, true, nil
	case KindCritiqueRequest:
		return CritiqueRequest{Text: asString(content)}, true, nil
	case KindRevisionRequest:
		return RevisionRequest{Text: asString(content)}, true, nil
	case KindRevision:
		f := asFields(content)
		return Revision{Emotion: field(f, "emotion"), Says: field(f, "says")}, true, nil
	case KindChosen:
		f := asFields(content)
		return Chosen{Emotion: field(f, "emotion"), Says: field(f, "says")}, true, nil
	}
	return nil, false, nil
}

func knownKind(k Kind) bool {
	switch k {
	case KindInstructions, KindExample, KindBegin, KindContext, KindSelf,
		KindParticipant, KindMotivation, KindObservation, KindThought,
		KindIdentification, KindWaiting, KindResuming, KindWorking, KindAction,
		KindRejected, KindCritique, KindCritiqueRequest, KindRevisionRequest,
		KindRevision, KindChosen:
		return true
	}
	return false
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

// asFields treats content as a sub-field mapping; any other shape yields the
// empty mapping so every sub-field takes its empty default.
func asFields(v any) map[string]any {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

// asMapping requires a mapping-shaped content for the fenced-block kinds.
func asMapping(v any, kind Kind) (map[string]any, error) {
	switch m := v.(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		return cloneMapOrEmpty(m), nil
	default:
		return nil, &MissingFieldError{Field: "content", Kind: string(kind)}
	}
}

func field(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

// dictMap is the Dict-side view of a mapping payload: cloned so callers
// cannot alias internal state, and never nil.
func dictMap(m map[string]any) map[string]any { return cloneMapOrEmpty(m) }

func cloneMapOrEmpty(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneMapOrEmpty(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}
