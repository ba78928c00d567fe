// Package formatter turns log entries into bytes. Text and JSON
// implementations are provided; both write into a handler-owned
// buffer so formatting allocates nothing on the steady-state path.
package formatter
