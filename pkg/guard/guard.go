package guard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrymomot/contractkit/pkg/config"
	"github.com/dmitrymomot/contractkit/pkg/logger"
	"github.com/dmitrymomot/contractkit/pkg/metrics"
	"github.com/dmitrymomot/contractkit/pkg/spec"
)

// Observer receives one sample per executed check. *metrics.Collector
// implements it.
type Observer interface {
	Observe(function string, kind metrics.Kind, result metrics.Result, d time.Duration)
}

// Guard attaches argument and return value contracts to functions. It
// carries the switch consulted on every call and the logger that receives
// warning outcomes.
type Guard struct {
	sw  *Switch
	log *slog.Logger
	obs Observer
}

// Option configures a Guard.
type Option func(*Guard)

// WithSwitch sets the switch consulted on every call.
// Nil switches are ignored.
func WithSwitch(s *Switch) Option {
	return func(g *Guard) {
		if s != nil {
			g.sw = s
		}
	}
}

// WithLogger sets the logger for warning outcomes.
// Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(g *Guard) {
		if l != nil {
			g.log = l
		}
	}
}

// WithMetrics records every executed check on o.
// Nil observers are ignored.
func WithMetrics(o Observer) Option {
	return func(g *Guard) {
		if o != nil {
			g.obs = o
		}
	}
}

// WithSettings gives the guard its own switch, initialised from
// s.ValidationEnabled, and a logger built from the settings.
func WithSettings(s config.Settings) Option {
	return func(g *Guard) {
		g.sw = NewSwitch(s.ValidationEnabled())
		g.log = logger.New(s.LoggerOptions()...)
	}
}

// New creates a guard. Without options it uses the default switch and
// slog.Default at call time.
func New(opts ...Option) *Guard {
	g := &Guard{sw: &defaultSwitch}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Switch returns the switch the guard consults.
func (g *Guard) Switch() *Switch { return g.sw }

func (g *Guard) sink() *slog.Logger {
	if g.log != nil {
		return g.log
	}
	return slog.Default()
}

func (g *Guard) observe(function string, kind metrics.Kind, start time.Time, warned bool, err error) {
	if g.obs == nil {
		return
	}
	g.obs.Observe(function, kind, classify(warned, err), time.Since(start))
}

func classify(warned bool, err error) metrics.Result {
	var (
		argErr *ArgumentValidationError
		retErr *InvalidReturnTypeError
	)
	switch {
	case err == nil && warned:
		return metrics.ResultWarning
	case err == nil:
		return metrics.ResultPass
	case errors.As(err, &argErr) && argErr.Err == nil,
		errors.As(err, &retErr) && retErr.Err == nil:
		return metrics.ResultFail
	}
	return metrics.ResultError
}

// enabled reads the per-call override first and the switch second.
func (g *Guard) enabled(ctx context.Context) bool {
	if on, ok := ValidationFromContext(ctx); ok {
		return on
	}
	return g.sw.IsEnabled()
}

// Accepts returns fn with its arguments checked before every call. Each
// declaration applies to one parameter (see Arg and Kwarg); parameters with
// a default are optional and accept their default. Declarations are
// resolved once, here, and an inconsistent declaration is reported as
// ErrInvalidDeclaration.
//
// On each call, while validation is enabled and at least one declaration
// exists, the arguments are bound and every supplied value is matched
// against its alternatives. The first mismatch is returned as
// *ArgumentValidationError and fn is not called; a missing required
// argument is returned as *ArgumentCountError.
func (g *Guard) Accepts(fn Function, decls ...ArgSpec) (Function, error) {
	if fn.Call == nil {
		return Function{}, fmt.Errorf("%w: %s()", ErrNilFunction, fn.Name)
	}
	specs, err := BuildSpecs(fn, decls...)
	if err != nil {
		return Function{}, err
	}

	next := fn.Call
	guarded := fn
	guarded.Call = func(ctx context.Context, args []any, named map[string]any) (any, error) {
		if len(specs) > 0 && g.enabled(ctx) {
			start := time.Now()
			warned, err := g.checkArgs(ctx, fn.Name, specs, args, named)
			g.observe(fn.Name, metrics.KindArgument, start, warned, err)
			if err != nil {
				return nil, err
			}
		}
		return next(ctx, args, named)
	}
	return guarded, nil
}

func (g *Guard) checkArgs(ctx context.Context, name string, specs []ParameterSpec, args []any, named map[string]any) (warned bool, err error) {
	bound, err := Bind(name, specs, args, named)
	if err != nil {
		return false, err
	}

	for i, b := range bound.Bindings() {
		if !b.Source.Supplied() {
			continue
		}
		alts := specs[i].Alternatives
		out, err := spec.Match(b.Value, alts...)
		if err != nil || !out.Status {
			return warned, &ArgumentValidationError{
				Function:     name,
				Parameter:    b.Name,
				Ordinal:      b.Ordinal,
				Value:        b.Value,
				Alternatives: alts,
				Reason:       out.Message,
				Err:          err,
			}
		}
		if out.Warning {
			warned = true
			g.sink().LogAttrs(ctx, slog.LevelWarn, "argument accepted with warning",
				logger.Function(name),
				logger.Parameter(b.Name),
				logger.Ordinal(Ordinal(b.Ordinal)),
				logger.Value(b.Value),
				logger.Alternatives(spec.Describe(alts...)),
				logger.Reason(out.Message),
			)
		}
	}
	return warned, nil
}

// Returns returns fn with its result checked after every call. The call
// always happens first. While validation is enabled and alternatives are
// declared, a result matching none of them is returned as
// *InvalidReturnTypeError. Errors from fn itself are returned unchanged,
// without checking the result.
func (g *Guard) Returns(fn Function, alts ...spec.Spec) (Function, error) {
	if fn.Call == nil {
		return Function{}, fmt.Errorf("%w: %s()", ErrNilFunction, fn.Name)
	}
	if err := spec.Verify(alts...); err != nil {
		return Function{}, fmt.Errorf("%w: %s(): %w", ErrInvalidDeclaration, fn.Name, err)
	}

	next := fn.Call
	guarded := fn
	guarded.Call = func(ctx context.Context, args []any, named map[string]any) (any, error) {
		result, err := next(ctx, args, named)
		if err != nil || len(alts) == 0 || !g.enabled(ctx) {
			return result, err
		}

		start := time.Now()
		out, err := spec.Match(result, alts...)
		if err != nil || !out.Status {
			retErr := &InvalidReturnTypeError{
				Function:     fn.Name,
				Value:        result,
				Alternatives: alts,
				Reason:       out.Message,
				Err:          err,
			}
			g.observe(fn.Name, metrics.KindReturn, start, false, retErr)
			return nil, retErr
		}
		g.observe(fn.Name, metrics.KindReturn, start, out.Warning, nil)
		if out.Warning {
			g.sink().LogAttrs(ctx, slog.LevelWarn, "return value accepted with warning",
				logger.Function(fn.Name),
				logger.Value(result),
				logger.Alternatives(spec.Describe(alts...)),
				logger.Reason(out.Message),
			)
		}
		return result, nil
	}
	return guarded, nil
}

var defaultGuard = New()

// Accepts attaches an argument contract using the default switch.
func Accepts(fn Function, decls ...ArgSpec) (Function, error) {
	return defaultGuard.Accepts(fn, decls...)
}

// MustAccepts is like Accepts but panics on an invalid declaration.
func MustAccepts(fn Function, decls ...ArgSpec) Function {
	f, err := defaultGuard.Accepts(fn, decls...)
	if err != nil {
		panic(err)
	}
	return f
}

// Returns attaches a return value contract using the default switch.
func Returns(fn Function, alts ...spec.Spec) (Function, error) {
	return defaultGuard.Returns(fn, alts...)
}

// MustReturns is like Returns but panics on an invalid declaration.
func MustReturns(fn Function, alts ...spec.Spec) Function {
	f, err := defaultGuard.Returns(fn, alts...)
	if err != nil {
		panic(err)
	}
	return f
}
