// Package loopmetrics provides Prometheus instrumentation for pushstreams Loops.
//
// A Collector implements pushstreams.LoopObserver:
//
//	reg := prometheus.NewRegistry()
//	loop := pushstreams.NewLoop(pushstreams.WithObserver(loopmetrics.New(reg, "ingest")))
package loopmetrics
