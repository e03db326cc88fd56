package guard

import (
	"context"
	"sync/atomic"
)

// Switch turns contract validation on and off. The zero value is enabled
// and safe for concurrent use.
type Switch struct {
	disabled atomic.Bool
}

// NewSwitch returns a switch in the given state.
func NewSwitch(enabled bool) *Switch {
	s := &Switch{}
	s.Set(enabled)
	return s
}

func (s *Switch) TurnOn()  { s.disabled.Store(false) }
func (s *Switch) TurnOff() { s.disabled.Store(true) }

// Set enables or disables validation.
func (s *Switch) Set(enabled bool) { s.disabled.Store(!enabled) }

// IsEnabled reports whether validation is on.
func (s *Switch) IsEnabled() bool { return !s.disabled.Load() }

var defaultSwitch Switch

// DefaultSwitch returns the process-wide switch used by the package-level
// Accepts and Returns.
func DefaultSwitch() *Switch { return &defaultSwitch }

// TurnOn enables validation on the default switch.
func TurnOn() { defaultSwitch.TurnOn() }

// TurnOff disables validation on the default switch.
func TurnOff() { defaultSwitch.TurnOff() }

// IsEnabled reports the state of the default switch.
func IsEnabled() bool { return defaultSwitch.IsEnabled() }

type validationKey struct{}

// WithValidation overrides the switch for calls made with the returned
// context.
func WithValidation(ctx context.Context, enabled bool) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, validationKey{}, enabled)
}

// ValidationFromContext returns the override stored by WithValidation.
func ValidationFromContext(ctx context.Context) (enabled, ok bool) {
	if ctx == nil {
		return false, false
	}
	enabled, ok = ctx.Value(validationKey{}).(bool)
	return enabled, ok
}
