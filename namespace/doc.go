// Package namespace implements glob-like namespace filtering for log
// output. Patterns are either exact namespaces ("svc:db"), subtree
// wildcards ("svc:*", which covers "svc" and everything under it), or
// the universal "*". A leading '-' negates a pattern so it suppresses
// instead of enables, and negations win over enables of equal
// specificity.
//
// The Registry holds the compiled pattern set. Default() is the
// process-wide instance every Logger consults unless given its own.
package namespace
