package core

import (
	"strings"

	"github.com/hupe1980/moments/grammar"
	"gopkg.in/yaml.v3"
)

// reduceDocument walks a grammar parse tree and builds the occurrence
// sequence in document order. Missing optional captures default to empty
// strings/mappings; fenced content is decoded as YAML. The moment id, when
// present, comes from the first "# Moment Id:" comment.
func reduceDocument(root *grammar.Node) (string, []Occurrence, error) {
	var id string
	occurrences := []Occurrence{}
	for _, node := range root.Children {
		switch node.Expr {
		case grammar.RuleComment:
			if id == "" {
				id = momentIDComment(node.Text)
			}
			continue
		case grammar.RuleInstructions:
			occurrences = append(occurrences, Instructions{Text: saysCapture(node)})
		case grammar.RuleExample:
			occurrences = append(occurrences, Example{
				Title:   childText(node, grammar.CaptureTitle),
				Example: childText(node, grammar.CaptureExample),
			})
		case grammar.RuleBegin:
			occurrences = append(occurrences, Begin{})
		case grammar.RuleContext:
			m, err := fenceMapping(node, KindContext)
			if err != nil {
				return "", nil, err
			}
			occurrences = append(occurrences, Context{Values: m})
		case grammar.RuleWaiting:
			m, err := fenceMapping(node, KindWaiting)
			if err != nil {
				return "", nil, err
			}
			occurrences = append(occurrences, Waiting{Keys: m})
		case grammar.RuleResuming:
			m, err := fenceMapping(node, KindResuming)
			if err != nil {
				return "", nil, err
			}
			occurrences = append(occurrences, Resuming{Keys: m})
		case grammar.RuleWorking:
			m, err := fenceMapping(node, KindWorking)
			if err != nil {
				return "", nil, err
			}
			occurrences = append(occurrences, Working{Task: m})
		case grammar.RuleAction:
			m, err := fenceMapping(node, KindAction)
			if err != nil {
				return "", nil, err
			}
			occurrences = append(occurrences, Action{Call: m})
		case grammar.RuleIdentification:
			occurrences = append(occurrences, Identification{
				Role: childText(node, grammar.CaptureKind),
				Name: unescapeQuoted(childText(node, grammar.CaptureName)),
			})
		case grammar.RuleThought:
			occurrences = append(occurrences, Thought{Text: saysCapture(node)})
		case grammar.RuleMotivation:
			occurrences = append(occurrences, Motivation{Text: childText(node, grammar.CaptureRest)})
		case grammar.RuleObservation:
			occurrences = append(occurrences, Observation{Text: childText(node, grammar.CaptureRest)})
		case grammar.RuleCritiqueRequest:
			occurrences = append(occurrences, CritiqueRequest{Text: childText(node, grammar.CaptureRest)})
		case grammar.RuleCritique:
			occurrences = append(occurrences, Critique{Text: childText(node, grammar.CaptureRest)})
		case grammar.RuleRevisionRequest:
			occurrences = append(occurrences, RevisionRequest{Text: childText(node, grammar.CaptureRest)})
		case grammar.RuleRevision:
			emotion, says := emotionSaysCaptures(node)
			occurrences = append(occurrences, Revision{Emotion: emotion, Says: says})
		case grammar.RuleRejected:
			emotion, says := emotionSaysCaptures(node)
			occurrences = append(occurrences, Rejected{Emotion: emotion, Says: says})
		case grammar.RuleChosen:
			emotion, says := emotionSaysCaptures(node)
			occurrences = append(occurrences, Chosen{Emotion: emotion, Says: says})
		case grammar.RuleSelf:
			emotion, says := emotionSaysCaptures(node)
			occurrences = append(occurrences, Self{Emotion: emotion, Says: says})
		case grammar.RuleParticipant:
			emotion, says := emotionSaysCaptures(node)
			occurrences = append(occurrences, Participant{
				Name:    childText(node, grammar.CaptureParticipant),
				Emotion: emotion,
				Says:    says,
			})
		}
	}
	return id, occurrences, nil
}

func momentIDComment(line string) string {
	for _, prefix := range []string{"# Moment Id:", "# Moment ID:"} {
		if rest, ok := strings.CutPrefix(line, prefix); ok {
			return strings.TrimSpace(rest)
		}
	}
	return ""
}

func childText(node *grammar.Node, expr string) string {
	if c := node.Child(expr); c != nil {
		return c.Text
	}
	return ""
}

// saysCapture resolves the shared quoted-string alternative: triple-quoted
// content is verbatim, single-line content is unescaped.
func saysCapture(node *grammar.Node) string {
	if c := node.Child(grammar.CaptureTQContent); c != nil {
		return c.Text
	}
	if c := node.Child(grammar.CaptureQContent); c != nil {
		return unescapeQuoted(c.Text)
	}
	return ""
}

func emotionSaysCaptures(node *grammar.Node) (emotion, says string) {
	return childText(node, grammar.CaptureEmotion), saysCapture(node)
}

func fenceMapping(node *grammar.Node, kind Kind) (map[string]any, error) {
	raw := childText(node, grammar.CaptureFence)
	m := map[string]any{}
	if strings.TrimSpace(raw) == "" {
		return m, nil
	}
	if err := yaml.Unmarshal([]byte(raw), &m); err != nil {
		return nil, &ContentError{Kind: string(kind), Err: err}
	}
	return m, nil
}
