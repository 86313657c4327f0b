package hmm

import "errors"

// Sentinel errors returned by the core decoding engines. Wrap with fmt.Errorf("...: %w", err)
// and test with errors.Is.
var (
	ErrUnknownState  = errors.New("hmm: unknown state")
	ErrNotBaked      = errors.New("hmm: model not baked")
	ErrEmptySequence = errors.New("hmm: empty sequence")
	ErrUnknownUnit   = errors.New("hmm: unknown repeat unit")
)
