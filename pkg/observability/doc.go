/*
Package observability provides Prometheus instrumentation for asciiwalk.

Metrics are fed by domain.LifecycleHooks, so any engine or walker configured with
Metrics.Hooks reports walks, steps and collected letters without further wiring.
*/
package observability
