// Package core contains the leaf types shared by every other nslog
// package: the four-level severity model, the log Entry, and typed
// Fields. It has no dependencies inside the module, so handlers,
// formatters, and the logger can all import it freely.
package core
