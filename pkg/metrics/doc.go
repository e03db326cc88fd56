// Package metrics exposes contract check counts and latencies to Prometheus.
//
//	c := metrics.NewCollector(metrics.WithNamespace("billing"))
//	if err := c.Register(nil); err != nil {
//	    return err
//	}
//	g := guard.New(guard.WithMetrics(c))
//
// Every guarded call that runs a check adds one sample to
// contract_checks_total{function, kind, result} and
// contract_check_duration_seconds{function, kind}. Calls made while
// validation is switched off are not recorded.
package metrics
