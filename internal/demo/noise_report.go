package demo

import (
	"context"
	"fmt"
	"io"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-enum-primer/noise"
	"github.com/goliatone/go-enum-primer/pkg/interfaces"
)

const noiseReportMessageType = "primer.demo.noise_report"

// NoiseReportCommand requests a rendered noise summary from raw string keys.
// Keys deliberately arrive untyped so the demo exercises the closed set's
// rejection of typo'd keys at the boundary.
type NoiseReportCommand struct {
	Title    string             `json:"title"`
	Readings map[string]float64 `json:"readings"`
}

// Type implements command.Message.
func (NoiseReportCommand) Type() string { return noiseReportMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m NoiseReportCommand) Validate() error {
	errs := validation.Errors{}
	if len(m.Readings) == 0 {
		errs["readings"] = validation.NewError("primer.demo.noise_report.readings_required", "at least one reading is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// NoiseReportHandler renders summary sections to the supplied writer using the
// shared handler foundation.
type NoiseReportHandler struct {
	inner *Handler[NoiseReportCommand]
}

// NewNoiseReportHandler constructs a handler that writes rendered sections to out.
func NewNoiseReportHandler(out io.Writer, logger interfaces.Logger, opts ...HandlerOption[NoiseReportCommand]) *NoiseReportHandler {
	exec := func(ctx context.Context, msg NoiseReportCommand) error {
		readings := make(map[noise.Category]float64, len(msg.Readings))
		for key, value := range msg.Readings {
			category, err := noise.ParseCategory(key)
			if err != nil {
				return fmt.Errorf("reading %q: %w", key, err)
			}
			readings[category] = value
		}

		section, err := noise.BuildSection(msg.Title, readings)
		if err != nil {
			return err
		}

		_, err = io.WriteString(out, section.Render())
		return err
	}

	handlerOpts := []HandlerOption[NoiseReportCommand]{
		WithLogger[NoiseReportCommand](logger),
		WithOperation[NoiseReportCommand]("demo.noise_report"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &NoiseReportHandler{
		inner: NewHandler[NoiseReportCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[NoiseReportCommand].Execute.
func (h *NoiseReportHandler) Execute(ctx context.Context, msg NoiseReportCommand) error {
	return h.inner.Execute(ctx, msg)
}
