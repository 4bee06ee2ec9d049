package core

import "fmt"

// ContentError reports fenced content that matched the grammar but failed
// structured YAML decoding. Fatal to the parse call.
type ContentError struct {
	Kind string // occurrence kind (or header name) owning the fence
	Err  error
}

func (e *ContentError) Error() string {
	return fmt.Sprintf("mdl: %s: invalid fenced content: %v", e.Kind, e.Err)
}

func (e *ContentError) Unwrap() error { return e.Err }

// MissingFieldError reports a required structured field absent in the dict
// route. Fatal to the parse call.
type MissingFieldError struct {
	Field string
	Kind  string // occurrence kind, when the field is an occurrence sub-field
}

func (e *MissingFieldError) Error() string {
	if e.Kind != "" {
		return fmt.Sprintf("mdl: %s: missing required field %q", e.Kind, e.Field)
	}
	return fmt.Sprintf("mdl: missing required field %q", e.Field)
}
