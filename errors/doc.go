// Package errors provides structured error types for the structpack library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes context: the format offset, the field
// tag, the Go type involved, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseUnpack, errors.KindBufferUnderrun).
//		Offset(12).
//		Detail("need 4 bytes, 2 remaining").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.UnknownFormatChar(3, 'z')
//	err := errors.BufferUnderrun(12, 4, 2)
//
// All errors implement the standard error interface and support errors.Is/As;
// Is matches on Phase and Kind, so callers classify failures with
//
//	errors.Is(err, &errors.Error{Phase: errors.PhaseUnpack, Kind: errors.KindBufferUnderrun})
package errors
