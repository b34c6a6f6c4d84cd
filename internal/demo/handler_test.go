package demo

import (
	"context"
	"errors"
	"testing"
	"time"

	goerrors "github.com/goliatone/go-errors"
)

type testMessage struct {
	invalid bool
}

func (testMessage) Type() string { return "primer.demo.test" }

func (m testMessage) Validate() error {
	if m.invalid {
		return errors.New("message invalid")
	}
	return nil
}

func TestHandlerWrapsValidationErrors(t *testing.T) {
	handler := NewHandler[testMessage](func(ctx context.Context, msg testMessage) error {
		t.Fatalf("exec should not run for invalid messages")
		return nil
	})

	err := handler.Execute(context.Background(), testMessage{invalid: true})
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
}

func TestHandlerWrapsContextCancellation(t *testing.T) {
	handler := NewHandler[testMessage](func(ctx context.Context, msg testMessage) error {
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := handler.Execute(ctx, testMessage{})
	if err == nil {
		t.Fatalf("expected context error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
}

func TestHandlerWrapsExpiredDeadline(t *testing.T) {
	handler := NewHandler[testMessage](func(ctx context.Context, msg testMessage) error {
		t.Fatalf("exec should not run once the deadline has passed")
		return nil
	})

	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	err := handler.Execute(ctx, testMessage{})
	if err == nil {
		t.Fatalf("expected deadline error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
}

func TestHandlerWrapsExecuteErrors(t *testing.T) {
	boom := errors.New("boom")
	handler := NewHandler[testMessage](func(ctx context.Context, msg testMessage) error {
		return boom
	})

	err := handler.Execute(context.Background(), testMessage{})
	if err == nil {
		t.Fatalf("expected execution error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
}

func TestHandlerHonoursTimeoutOption(t *testing.T) {
	handler := NewHandler[testMessage](func(ctx context.Context, msg testMessage) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Second):
			return nil
		}
	}, WithTimeout[testMessage](time.Millisecond))

	if err := handler.Execute(context.Background(), testMessage{}); err == nil {
		t.Fatalf("expected timeout to interrupt execution")
	}
}
