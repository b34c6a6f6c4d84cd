package demo

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

const (
	demoValidationCode  = "DEMO_VALIDATION_FAILED"
	demoContextCanceled = "DEMO_CONTEXT_CANCELED"
	demoContextTimeout  = "DEMO_CONTEXT_TIMEOUT"
	demoExecuteFailed   = "DEMO_EXECUTION_FAILED"
)

func wrapValidationError(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "demo validation failed").
		WithTextCode(demoValidationCode)
}

// wrapContextError tags a context failure. ctx.Err() only ever yields
// Canceled or DeadlineExceeded, so those are the only two codes.
func wrapContextError(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	code, msg := demoContextCanceled, "demo run cancelled"
	if errors.Is(err, context.DeadlineExceeded) {
		code, msg = demoContextTimeout, "demo run exceeded its deadline"
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, msg).
		WithTextCode(code)
}

func wrapExecuteError(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "demo execution failed").
		WithTextCode(demoExecuteFailed)
}
