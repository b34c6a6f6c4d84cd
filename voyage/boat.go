// Package voyage implements the lesson's second example: a small record whose
// behaviour derives from membership of two distinguished names in its
// passenger list. It is the companion piece to package noise: the same
// closed-set idea applied to values instead of keys.
package voyage

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// The two distinguished passengers the greeting depends on.
const (
	CaptainBlackbeard = "Blackbeard"
	FirstMateBonny    = "Anne Bonny"
)

// The fixed greetings the lesson promises: one when the captain is aboard,
// one when only the first mate is, and one for an entirely honest crew.
const (
	GreetingCaptain   = "Avast! The captain is aboard, mind yer manners."
	GreetingFirstMate = "Sharp eyes now, the first mate walks this deck."
	GreetingCivilian  = "Welcome aboard, nothing but honest sailors here."
)

// Boat holds a class label and the passenger list the greeting is derived from.
type Boat struct {
	Class      string   `json:"class"`
	Passengers []string `json:"passengers"`
}

// Aboard reports whether the named passenger is on the boat. Matching is
// case-insensitive and ignores surrounding whitespace so roster typos in
// capitalisation don't hide a pirate.
func (b Boat) Aboard(name string) bool {
	want := normalizeName(name)
	if want == "" {
		return false
	}
	for _, passenger := range b.Passengers {
		if normalizeName(passenger) == want {
			return true
		}
	}
	return false
}

// Greeting returns the fixed greeting derived from the passenger list. The
// captain outranks the first mate when both are aboard.
func (b Boat) Greeting() string {
	switch {
	case b.Aboard(CaptainBlackbeard):
		return GreetingCaptain
	case b.Aboard(FirstMateBonny):
		return GreetingFirstMate
	default:
		return GreetingCivilian
	}
}

// Validate ensures the record is usable before any greeting is derived.
func (b Boat) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(b.Class) == "" {
		errs["class"] = validation.NewError("primer.voyage.class_required", "class is required")
	}
	for i, passenger := range b.Passengers {
		if strings.TrimSpace(passenger) == "" {
			errs[fmt.Sprintf("passengers.%d", i)] = validation.NewError("primer.voyage.passenger_blank", "passenger name cannot be blank")
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
