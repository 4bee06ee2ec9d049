package core

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Canonical text renderings. Single-line payloads use double quotes with
// backslash escapes; payloads with embedded newlines use the triple-quoted
// form, whose content is verbatim (a payload containing a literal `"""`
// cannot be represented and will not round-trip).

func (o Instructions) String() string { return `Instructions: """` + o.Text + `"""` }

func (o Example) String() string { return "Example: " + o.Title + " - '''" + o.Example + "'''" }

func (Begin) String() string { return "Begin." }

func (o Context) String() string { return "Context: ```" + yamlBlock(o.Values) + "```" }

func (o Self) String() string { return "Self: " + renderSays(o.Emotion, o.Says) }

func (o Participant) String() string { return o.Name + ": " + renderSays(o.Emotion, o.Says) }

func (o Motivation) String() string { return "Motivation: " + o.Text }

func (o Observation) String() string { return "Observation: " + o.Text }

func (o Thought) String() string { return `Thought: """` + o.Text + `"""` }

func (o Identification) String() string {
	return "Identification: " + o.Role + ` is called "` + escapeQuoted(o.Name) + `".`
}

func (o Waiting) String() string { return "Waiting: ```" + yamlBlock(o.Keys) + "```" }

func (o Resuming) String() string { return "Resuming: ```" + yamlBlock(o.Keys) + "```" }

func (o Working) String() string { return "Working: ```" + yamlBlock(o.Task) + "```" }

func (o Action) String() string { return "Action: ```" + yamlBlock(o.Call) + "```" }

func (o Rejected) String() string { return "Rejected: " + renderSays(o.Emotion, o.Says) }

func (o Critique) String() string { return "Critique: " + o.Text }

func (o CritiqueRequest) String() string { return "Critique Request: " + o.Text }

func (o RevisionRequest) String() string { return "Revision Request: " + o.Text }

func (o Revision) String() string { return "Revision: " + renderSays(o.Emotion, o.Says) }

func (o Chosen) String() string { return "Chosen: " + renderSays(o.Emotion, o.Says) }

func renderSays(emotion, says string) string {
	if emotion = sanitizeEmotion(emotion); emotion != "" {
		return "(" + emotion + ") " + quoteSays(says)
	}
	return quoteSays(says)
}

// sanitizeEmotion drops the characters an emotion cannot carry: the capture
// runs to the first ')' on the same line, so ')' and newlines have no
// representation and would corrupt the rendered line.
func sanitizeEmotion(s string) string {
	if !strings.ContainsAny(s, ")\n") {
		return s
	}
	return strings.Map(func(r rune) rune {
		if r == ')' || r == '\n' {
			return -1
		}
		return r
	}, s)
}

func quoteSays(s string) string {
	if strings.Contains(s, "\n") {
		return `"""` + s + `"""`
	}
	return `"` + escapeQuoted(s) + `"`
}

func escapeQuoted(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}

// unescapeQuoted reverses escapeQuoted on a raw single-line capture.
func unescapeQuoted(raw string) string {
	if !strings.Contains(raw, `\`) {
		return raw
	}
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		if raw[i] == '\\' && i+1 < len(raw) {
			i++
		}
		b.WriteByte(raw[i])
	}
	return b.String()
}

// yamlBlock renders a mapping as the trimmed inner text of a fenced block.
// yaml.v3 sorts mapping keys, so the rendering is deterministic.
func yamlBlock(m map[string]any) string {
	if len(m) == 0 {
		return "{}"
	}
	b, err := yaml.Marshal(m)
	if err != nil {
		// Marshal of plain key/value data cannot fail; an exotic value type
		// (channel, func) degrades to the empty mapping.
		return "{}"
	}
	return strings.TrimSpace(string(b))
}
