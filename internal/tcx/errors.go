package tcx

import "fmt"

// MappingError reports well-formed XML that violates the TCX schema
// contract: a missing required field, a wrong primitive type, an
// out-of-vocabulary enum value, or a malformed timestamp. Tag is the local
// name of the XML element that failed.
type MappingError struct {
	Tag    string
	Reason string
	Err    error
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("tcx: %s: %s", e.Tag, e.Reason)
}

func (e *MappingError) Unwrap() error { return e.Err }

func missingField(parent, field, typ string) error {
	return &MappingError{
		Tag:    parent,
		Reason: fmt.Sprintf("missing required element %s (%s)", field, typ),
	}
}

func badValue(tag, typ, got string, err error) error {
	return &MappingError{
		Tag:    tag,
		Reason: fmt.Sprintf("expected %s, got %q", typ, got),
		Err:    err,
	}
}
