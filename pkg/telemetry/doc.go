// Package telemetry provides engine observers that export evaluation
// outcomes to structured logs and Prometheus metrics.
//
// Observers attach at engine construction and receive one record per
// evaluation. They never influence results.
//
//	metrics := telemetry.NewMetrics(prometheus.DefaultRegisterer)
//	eng, err := engine.New(reg,
//	    engine.WithObservers(
//	        metrics,
//	        telemetry.NewSlogObserver(log),
//	    ),
//	)
package telemetry
