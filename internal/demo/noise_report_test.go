package demo

import (
	"bytes"
	"context"
	"strings"
	"testing"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-enum-primer/internal/logging"
)

func TestNoiseReportHandlerRendersSection(t *testing.T) {
	out := &bytes.Buffer{}
	handler := NewNoiseReportHandler(out, logging.NoOp())

	err := handler.Execute(context.Background(), NoiseReportCommand{
		Title: "Night shift",
		Readings: map[string]float64{
			"peak":    71.5,
			"ambient": 38.2,
		},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	rendered := out.String()
	if !strings.HasPrefix(rendered, "Night shift\n") {
		t.Fatalf("expected title line, got %q", rendered)
	}
	ambient := strings.Index(rendered, "Ambient level")
	peak := strings.Index(rendered, "Peak level")
	if ambient == -1 || peak == -1 || ambient > peak {
		t.Fatalf("expected rows in declaration order, got %q", rendered)
	}
}

func TestNoiseReportHandlerRejectsEmptyReadings(t *testing.T) {
	handler := NewNoiseReportHandler(&bytes.Buffer{}, logging.NoOp())

	err := handler.Execute(context.Background(), NoiseReportCommand{})
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
}

func TestNoiseReportHandlerRejectsTypoKeys(t *testing.T) {
	out := &bytes.Buffer{}
	handler := NewNoiseReportHandler(out, logging.NoOp())

	err := handler.Execute(context.Background(), NoiseReportCommand{
		Readings: map[string]float64{"ambiant": 38.2},
	})
	if err == nil {
		t.Fatalf("expected unknown category to fail the command")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no partial output, got %q", out.String())
	}
}
