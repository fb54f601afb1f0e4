package model

import "fmt"

// ErrUnknownVocabularyValue is returned when a string does not name a known
// variant of a classification axis.
type ErrUnknownVocabularyValue struct {
	Axis  string
	Value string
}

func (e *ErrUnknownVocabularyValue) Error() string {
	return fmt.Sprintf("unknown %s value %q", e.Axis, e.Value)
}
