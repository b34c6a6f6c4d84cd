package demo

import (
	"context"
	"fmt"
	"io"

	"github.com/goliatone/go-enum-primer/pkg/interfaces"
	"github.com/goliatone/go-enum-primer/voyage"
)

const boatGreetingMessageType = "primer.demo.boat_greeting"

// BoatGreetingCommand requests the derived greeting for a passenger roster.
type BoatGreetingCommand struct {
	Class      string   `json:"class"`
	Passengers []string `json:"passengers"`
}

// Type implements command.Message.
func (BoatGreetingCommand) Type() string { return boatGreetingMessageType }

// Validate delegates to the boat record's own validation rules.
func (m BoatGreetingCommand) Validate() error {
	return voyage.Boat{Class: m.Class, Passengers: m.Passengers}.Validate()
}

// BoatGreetingHandler writes the derived greeting for each requested roster.
type BoatGreetingHandler struct {
	inner *Handler[BoatGreetingCommand]
}

// NewBoatGreetingHandler constructs a handler that writes greetings to out.
func NewBoatGreetingHandler(out io.Writer, logger interfaces.Logger, opts ...HandlerOption[BoatGreetingCommand]) *BoatGreetingHandler {
	exec := func(ctx context.Context, msg BoatGreetingCommand) error {
		boat := voyage.Boat{Class: msg.Class, Passengers: msg.Passengers}
		_, err := fmt.Fprintf(out, "%s: %s\n", boat.Class, boat.Greeting())
		return err
	}

	handlerOpts := []HandlerOption[BoatGreetingCommand]{
		WithLogger[BoatGreetingCommand](logger),
		WithOperation[BoatGreetingCommand]("demo.boat_greeting"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &BoatGreetingHandler{
		inner: NewHandler[BoatGreetingCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[BoatGreetingCommand].Execute.
func (h *BoatGreetingHandler) Execute(ctx context.Context, msg BoatGreetingCommand) error {
	return h.inner.Execute(ctx, msg)
}
