package grammar

import "fmt"

// SyntaxError reports input that violates the structural rules of the
// grammar, e.g. an unterminated quoted string or fenced block. It is always
// fatal to the parse call.
type SyntaxError struct {
	Offset   int    // byte offset into the input
	Line     int    // 1-based line number
	Col      int    // 1-based column within the line
	Expected string // token the parser required at this position
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("mdl: syntax error at line %d, col %d: expected %s", e.Line, e.Col, e.Expected)
}

// UnmatchedLineError reports a non-blank line that matched no occurrence
// alternative. The offending line is carried verbatim. It is always fatal;
// the text route never skips input silently.
type UnmatchedLineError struct {
	LineNo int    // 1-based line number
	Line   string // the offending line, verbatim
}

func (e *UnmatchedLineError) Error() string {
	return fmt.Sprintf("mdl: line %d matches no occurrence rule: %q", e.LineNo, e.Line)
}
