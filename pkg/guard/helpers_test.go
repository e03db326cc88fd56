package guard_test

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"

	"github.com/dmitrymomot/contractkit/pkg/guard"
)

// sumFunction declares (a, b=3, c=4) and counts its calls.
func sumFunction(calls *atomic.Int32) guard.Function {
	return guard.Function{
		Name:   "sum",
		Doc:    "sum adds its arguments.",
		Params: []guard.Param{guard.Required("a"), guard.Default("b", 3), guard.Default("c", 4)},
		Call: func(_ context.Context, args []any, named map[string]any) (any, error) {
			if calls != nil {
				calls.Add(1)
			}
			return len(args) + len(named), nil
		},
	}
}

// echoFunction returns its first positional argument, or the named
// argument "value".
func echoFunction(err error) guard.Function {
	return guard.Function{
		Name:   "echo",
		Params: []guard.Param{guard.Required("value")},
		Call: func(_ context.Context, args []any, named map[string]any) (any, error) {
			if err != nil {
				return nil, err
			}
			if len(args) > 0 {
				return args[0], nil
			}
			return named["value"], nil
		},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
