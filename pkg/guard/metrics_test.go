package guard_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/contractkit/pkg/guard"
	"github.com/dmitrymomot/contractkit/pkg/metrics"
	"github.com/dmitrymomot/contractkit/pkg/spec"
	"github.com/dmitrymomot/contractkit/pkg/validator"
)

type sample struct {
	function string
	kind     metrics.Kind
	result   metrics.Result
}

type recorder struct {
	mu      sync.Mutex
	samples []sample
}

func (r *recorder) Observe(function string, kind metrics.Kind, result metrics.Result, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.samples = append(r.samples, sample{function, kind, result})
}

func (r *recorder) results() []metrics.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]metrics.Result, len(r.samples))
	for i, s := range r.samples {
		out[i] = s.result
	}
	return out
}

func TestGuard_Metrics(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("argument results", func(t *testing.T) {
		rec := &recorder{}
		g := newGuard(true, guard.WithMetrics(rec), guard.WithLogger(discardLogger()))
		warnIfNegative := spec.Pred(validator.PredicateFunc(func(v any) validator.Outcome {
			if n, ok := v.(int); ok && n < 0 {
				return validator.Warn("negative")
			}
			return validator.Pass()
		}))
		f, err := g.Accepts(sumFunction(nil), guard.Arg(spec.Integer, spec.Nested(spec.MustSchema(spec.Key("x")))), guard.Arg(warnIfNegative))
		require.NoError(t, err)

		_, _ = f.Invoke(ctx, 1)
		_, _ = f.Invoke(ctx, 1, -1)
		_, _ = f.Invoke(ctx, "x")
		_, _ = f.Invoke(ctx)
		_, _ = f.Invoke(ctx, map[string]any{"y": 1})

		assert.Equal(t, []metrics.Result{
			metrics.ResultPass,
			metrics.ResultWarning,
			metrics.ResultFail,
			metrics.ResultError,
			metrics.ResultError,
		}, rec.results())
		assert.Equal(t, metrics.KindArgument, rec.samples[0].kind)
		assert.Equal(t, "sum", rec.samples[0].function)
	})

	t.Run("return results", func(t *testing.T) {
		rec := &recorder{}
		g := newGuard(true, guard.WithMetrics(rec))
		f, err := g.Returns(echoFunction(nil), spec.Integer)
		require.NoError(t, err)

		_, _ = f.Invoke(ctx, 1)
		_, _ = f.Invoke(ctx, "x")

		assert.Equal(t, []metrics.Result{metrics.ResultPass, metrics.ResultFail}, rec.results())
		assert.Equal(t, metrics.KindReturn, rec.samples[1].kind)
	})

	t.Run("switched off calls are not recorded", func(t *testing.T) {
		rec := &recorder{}
		g := newGuard(false, guard.WithMetrics(rec))
		f, err := g.Accepts(sumFunction(nil), guard.Arg(spec.Integer))
		require.NoError(t, err)

		_, _ = f.Invoke(ctx, "x")
		assert.Empty(t, rec.results())
	})

	t.Run("prometheus collector", func(t *testing.T) {
		c := metrics.NewCollector()
		g := newGuard(true, guard.WithMetrics(c))
		f, err := g.Accepts(sumFunction(nil), guard.Arg(spec.Integer))
		require.NoError(t, err)

		_, _ = f.Invoke(ctx, 1)
		_, _ = f.Invoke(ctx, 2)
		_, _ = f.Invoke(ctx, "x")

		assert.Equal(t, 2, testutil.CollectAndCount(c, "contract_checks_total"))
	})
}
