package errors

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
)

// jsonDetailPrefix tags safe-detail payloads that carry JSON-encoded
// reportable details, so the response builder can recover them.
const jsonDetailPrefix = "__json__:"

// ErrorBuilder chains context onto an error. It deliberately does not
// implement the error interface: Mark finishes the chain and returns the
// built error.
type ErrorBuilder struct {
	err error
}

// NewError starts a chain from a new error message.
func NewError(msg string) *ErrorBuilder {
	return &ErrorBuilder{err: errors.New(msg)}
}

// WithError starts a chain wrapping an existing error.
func WithError(err error) *ErrorBuilder {
	return &ErrorBuilder{err: err}
}

// WithHint attaches the user-facing message rendered by the API error
// envelope.
func (b *ErrorBuilder) WithHint(hint string) *ErrorBuilder {
	b.err = errors.WithHint(b.err, hint)
	return b
}

// WithHintf is WithHint with formatting.
func (b *ErrorBuilder) WithHintf(format string, args ...any) *ErrorBuilder {
	b.err = errors.WithHintf(b.err, format, args...)
	return b
}

// WithReportableDetails attaches structured details that are safe to return
// to the caller. Details that fail to marshal are dropped rather than
// failing the chain.
func (b *ErrorBuilder) WithReportableDetails(details map[string]any) *ErrorBuilder {
	marshaled, err := json.Marshal(details)
	if err != nil {
		return b
	}
	b.err = errors.WithSafeDetails(b.err, jsonDetailPrefix+"%s", errors.Safe(string(marshaled)))
	return b
}

// Mark marks the chain with a sentinel and returns the built error. It must
// be the last call in the chain.
func (b *ErrorBuilder) Mark(sentinel error) error {
	b.err = errors.Mark(b.err, sentinel)
	return b.err
}
