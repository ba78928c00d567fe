// Package promhandler instruments a handler with Prometheus
// counters, giving operators per-namespace emission rates without
// parsing log output.
package promhandler
