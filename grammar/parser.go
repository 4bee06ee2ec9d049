package grammar

import "strings"

// Node is one vertex of the parse tree. Occurrence nodes carry capture
// children named after the grammar's capture rules (emotion, q_content,
// fence, ...); capture text is raw source, escape sequences included.
type Node struct {
	Expr     string
	Text     string
	Children []*Node
}

// Child returns the first child with the given expression name, or nil.
func (n *Node) Child(expr string) *Node {
	for _, c := range n.Children {
		if c.Expr == expr {
			return c
		}
	}
	return nil
}

// Parse validates text against the MDL grammar and returns the parse tree.
// It fails with *SyntaxError when a committed rule's body is malformed and
// with *UnmatchedLineError when a non-blank line matches no alternative.
// Parsing is atomic: on error no partial tree is returned.
func Parse(text string) (*Node, error) {
	p := &parser{src: text, line: 1}
	root := &Node{Expr: "Document", Text: text}
	for !p.eof() {
		if p.blankLine() {
			continue
		}
		if p.cur() == '#' {
			root.Children = append(root.Children, p.comment())
			continue
		}
		node, err := p.occurrence()
		if err != nil {
			return nil, err
		}
		root.Children = append(root.Children, node)
	}
	return root, nil
}

type parser struct {
	src       string
	pos       int
	line      int // 1-based
	lineStart int // offset of the first byte of the current line
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

func (p *parser) cur() byte { return p.src[p.pos] }

func (p *parser) hasPrefix(s string) bool { return strings.HasPrefix(p.src[p.pos:], s) }

func (p *parser) advance(n int) {
	end := p.pos + n
	for p.pos < end {
		if p.src[p.pos] == '\n' {
			p.line++
			p.lineStart = p.pos + 1
		}
		p.pos++
	}
}

func (p *parser) skipSpaces() {
	for !p.eof() && p.cur() == ' ' {
		p.advance(1)
	}
}

// blankLine consumes a line holding only spaces/tabs. It reports false
// without consuming anything when the line has other content.
func (p *parser) blankLine() bool {
	i := p.pos
	for i < len(p.src) && (p.src[i] == ' ' || p.src[i] == '\t') {
		i++
	}
	if i < len(p.src) && p.src[i] != '\n' {
		return false
	}
	if i < len(p.src) {
		i++ // the newline
	}
	if i == p.pos {
		return false
	}
	p.advance(i - p.pos)
	return true
}

func (p *parser) comment() *Node {
	start := p.pos
	for !p.eof() && p.cur() != '\n' {
		p.advance(1)
	}
	node := &Node{Expr: RuleComment, Text: p.src[start:p.pos]}
	if !p.eof() {
		p.advance(1)
	}
	return node
}

func (p *parser) syntaxErr(expected string) *SyntaxError {
	return &SyntaxError{Offset: p.pos, Line: p.line, Col: p.pos - p.lineStart + 1, Expected: expected}
}

func (p *parser) unmatchedErr() *UnmatchedLineError {
	rest := p.src[p.lineStart:]
	if i := strings.IndexByte(rest, '\n'); i >= 0 {
		rest = rest[:i]
	}
	return &UnmatchedLineError{LineNo: p.line, Line: rest}
}

func (p *parser) expectEOL() error {
	if p.eof() {
		return nil
	}
	if p.cur() == '\n' {
		p.advance(1)
		return nil
	}
	return p.syntaxErr("end of line")
}

// occurrence dispatches on the keyword prefix of the current line. The order
// of the cases is the grammar's ordered choice; the Participant catch-all is
// last and, unlike committed keyword rules, fails as an unmatched line.
func (p *parser) occurrence() (*Node, error) {
	switch {
	case p.hasPrefix("Instructions:"):
		return p.saysOnlyRule(RuleInstructions, "Instructions:")
	case p.hasPrefix("Example:"):
		return p.example()
	case p.hasPrefix("Begin."):
		return p.begin()
	case p.hasPrefix("Context:"):
		return p.fencedRule(RuleContext, "Context:")
	case p.hasPrefix("Waiting:"):
		return p.fencedRule(RuleWaiting, "Waiting:")
	case p.hasPrefix("Resuming:"):
		return p.fencedRule(RuleResuming, "Resuming:")
	case p.hasPrefix("Working:"):
		return p.fencedRule(RuleWorking, "Working:")
	case p.hasPrefix("Action:"):
		return p.fencedRule(RuleAction, "Action:")
	case p.hasPrefix("Identification:"):
		return p.identification()
	case p.hasPrefix("Thought:"):
		return p.saysOnlyRule(RuleThought, "Thought:")
	case p.hasPrefix("Motivation:"):
		return p.restRule(RuleMotivation, "Motivation:")
	case p.hasPrefix("Observation:"):
		return p.restRule(RuleObservation, "Observation:")
	case p.hasPrefix("Critique Request:"):
		return p.restRule(RuleCritiqueRequest, "Critique Request:")
	case p.hasPrefix("Critique:"):
		return p.restRule(RuleCritique, "Critique:")
	case p.hasPrefix("Revision Request:"):
		return p.restRule(RuleRevisionRequest, "Revision Request:")
	case p.hasPrefix("Revision:"):
		return p.emotionSaysRule(RuleRevision, "Revision:")
	case p.hasPrefix("Rejected:"):
		return p.emotionSaysRule(RuleRejected, "Rejected:")
	case p.hasPrefix("Chosen:"):
		return p.emotionSaysRule(RuleChosen, "Chosen:")
	case p.hasPrefix("Self:"):
		return p.emotionSaysRule(RuleSelf, "Self:")
	default:
		return p.participant()
	}
}

// saysString matches the shared quoted-string alternative: triple-quoted
// (embedded newlines verbatim, no escapes) tried before single-line quoted
// (backslash escapes). Returns a q_content or tq_content capture node with
// the raw inner text.
func (p *parser) saysString() (*Node, error) {
	if p.hasPrefix(`"""`) {
		p.advance(3)
		from := p.pos
		for {
			idx := strings.Index(p.src[from:], `"""`)
			if idx < 0 {
				return nil, p.syntaxErr(`closing '"""'`)
			}
			end := from + idx
			// Content may end in a quote. The delimiter is the last three
			// quotes of a run, so earlier candidates inside the run are
			// content, not the closer.
			if end+3 < len(p.src) && p.src[end+3] == '"' {
				from = end + 1
				continue
			}
			node := &Node{Expr: CaptureTQContent, Text: p.src[p.pos:end]}
			p.advance(end - p.pos + 3)
			return node, nil
		}
	}
	if !p.eof() && p.cur() == '"' {
		p.advance(1)
		start := p.pos
		for {
			if p.eof() || p.cur() == '\n' {
				return nil, p.syntaxErr(`closing '"'`)
			}
			if p.cur() == '\\' {
				if p.pos+1 >= len(p.src) || p.src[p.pos+1] == '\n' {
					return nil, p.syntaxErr("escaped character")
				}
				p.advance(2)
				continue
			}
			if p.cur() == '"' {
				node := &Node{Expr: CaptureQContent, Text: p.src[start:p.pos]}
				p.advance(1)
				return node, nil
			}
			p.advance(1)
		}
	}
	return nil, p.syntaxErr("quoted string")
}

func (p *parser) saysOnlyRule(rule, kw string) (*Node, error) {
	start := p.pos
	p.advance(len(kw))
	p.skipSpaces()
	says, err := p.saysString()
	if err != nil {
		return nil, err
	}
	node := &Node{Expr: rule, Text: p.src[start:p.pos], Children: []*Node{says}}
	return node, p.expectEOL()
}

func (p *parser) emotionSaysRule(rule, kw string) (*Node, error) {
	start := p.pos
	p.advance(len(kw))
	p.skipSpaces()
	var children []*Node
	if !p.eof() && p.cur() == '(' {
		emotion, err := p.emotion()
		if err != nil {
			return nil, err
		}
		children = append(children, emotion)
	}
	says, err := p.saysString()
	if err != nil {
		return nil, err
	}
	children = append(children, says)
	node := &Node{Expr: rule, Text: p.src[start:p.pos], Children: children}
	return node, p.expectEOL()
}

func (p *parser) emotion() (*Node, error) {
	p.advance(1) // '('
	start := p.pos
	for {
		if p.eof() || p.cur() == '\n' {
			return nil, p.syntaxErr(`closing ')'`)
		}
		if p.cur() == ')' {
			break
		}
		p.advance(1)
	}
	node := &Node{Expr: CaptureEmotion, Text: p.src[start:p.pos]}
	p.advance(1) // ')'
	p.skipSpaces()
	return node, nil
}

func (p *parser) fencedRule(rule, kw string) (*Node, error) {
	start := p.pos
	p.advance(len(kw))
	p.skipSpaces()
	if !p.hasPrefix("```") {
		return nil, p.syntaxErr("'```'")
	}
	p.advance(3)
	idx := strings.Index(p.src[p.pos:], "```")
	if idx < 0 {
		return nil, p.syntaxErr("closing '```'")
	}
	fence := &Node{Expr: CaptureFence, Text: p.src[p.pos : p.pos+idx]}
	p.advance(idx + 3)
	node := &Node{Expr: rule, Text: p.src[start:p.pos], Children: []*Node{fence}}
	return node, p.expectEOL()
}

func (p *parser) restRule(rule, kw string) (*Node, error) {
	start := p.pos
	p.advance(len(kw))
	if !p.eof() && p.cur() == ' ' {
		p.advance(1)
	}
	restStart := p.pos
	for !p.eof() && p.cur() != '\n' {
		p.advance(1)
	}
	node := &Node{
		Expr:     rule,
		Text:     p.src[start:p.pos],
		Children: []*Node{{Expr: CaptureRest, Text: p.src[restStart:p.pos]}},
	}
	return node, p.expectEOL()
}

func (p *parser) begin() (*Node, error) {
	start := p.pos
	p.advance(len("Begin."))
	node := &Node{Expr: RuleBegin, Text: p.src[start:p.pos]}
	return node, p.expectEOL()
}

func (p *parser) example() (*Node, error) {
	start := p.pos
	p.advance(len("Example:"))
	p.skipSpaces()
	const marker = " - '''"
	rem := p.src[p.pos:]
	idx := strings.Index(rem, marker)
	if nl := strings.IndexByte(rem, '\n'); idx < 0 || (nl >= 0 && nl < idx) {
		return nil, p.syntaxErr(`" - '''"`)
	}
	title := &Node{Expr: CaptureTitle, Text: rem[:idx]}
	p.advance(idx + len(marker))
	end := strings.Index(p.src[p.pos:], "'''")
	if end < 0 {
		return nil, p.syntaxErr(`closing "'''"`)
	}
	example := &Node{Expr: CaptureExample, Text: p.src[p.pos : p.pos+end]}
	p.advance(end + 3)
	node := &Node{Expr: RuleExample, Text: p.src[start:p.pos], Children: []*Node{title, example}}
	return node, p.expectEOL()
}

func (p *parser) identification() (*Node, error) {
	start := p.pos
	p.advance(len("Identification:"))
	p.skipSpaces()
	const marker = " is called "
	rem := p.src[p.pos:]
	idx := strings.Index(rem, marker)
	if nl := strings.IndexByte(rem, '\n'); idx < 0 || (nl >= 0 && nl < idx) {
		return nil, p.syntaxErr(`" is called "`)
	}
	kind := &Node{Expr: CaptureKind, Text: rem[:idx]}
	p.advance(idx + len(marker))
	says, err := p.saysString()
	if err != nil {
		return nil, err
	}
	name := &Node{Expr: CaptureName, Text: says.Text}
	if p.eof() || p.cur() != '.' {
		return nil, p.syntaxErr(`"."`)
	}
	p.advance(1)
	node := &Node{Expr: RuleIdentification, Text: p.src[start:p.pos], Children: []*Node{kind, name}}
	return node, p.expectEOL()
}

// participant is the catch-all alternative. Ordered choice means any failure
// here leaves no alternative, so the whole line is reported as unmatched
// rather than as a syntax error inside a committed rule.
func (p *parser) participant() (*Node, error) {
	save := *p
	fail := func() (*Node, error) {
		*p = save
		return nil, p.unmatchedErr()
	}
	if p.eof() || !isLetter(p.cur()) {
		return fail()
	}
	start := p.pos
	j := p.pos + 1
	for j < len(p.src) && isNameByte(p.src[j]) {
		j++
	}
	if j >= len(p.src) || p.src[j] != ':' {
		return fail()
	}
	name := &Node{Expr: CaptureParticipant, Text: p.src[start:j]}
	p.advance(j - p.pos + 1) // name and ':'
	p.skipSpaces()
	children := []*Node{name}
	if !p.eof() && p.cur() == '(' {
		emotion, err := p.emotion()
		if err != nil {
			return fail()
		}
		children = append(children, emotion)
	}
	says, err := p.saysString()
	if err != nil {
		return fail()
	}
	children = append(children, says)
	node := &Node{Expr: RuleParticipant, Text: p.src[start:p.pos], Children: children}
	if err := p.expectEOL(); err != nil {
		return fail()
	}
	return node, nil
}

func isLetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isNameByte(b byte) bool {
	return isLetter(b) || (b >= '0' && b <= '9') || b == '_' || b == '.' || b == '-' || b == ' '
}
