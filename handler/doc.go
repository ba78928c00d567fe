// Package handler contains the write sinks log entries are delivered
// to once the logger has decided a call may emit. Console, file, and
// fan-out handlers are provided; promhandler adds Prometheus
// counters around any of them. All handlers here are synchronous,
// the filtering decision never waits on I/O machinery.
package handler
