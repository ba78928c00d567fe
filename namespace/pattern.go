package namespace

import "strings"

// matchKind classifies how a compiled pattern tests a namespace.
type matchKind uint8

const (
	// matchExact requires the namespace to equal the stem.
	matchExact matchKind = iota
	// matchTree ("stem:*") matches the stem itself and every
	// namespace under it, respecting segment boundaries.
	matchTree
	// matchPrefix ("stem*" without a colon before the star) matches
	// any namespace starting with the stem.
	matchPrefix
	// matchAll is the bare "*".
	matchAll
)

// Pattern is a compiled namespace rule: a matching predicate plus a
// polarity (enable or disable) and a specificity score used to
// resolve conflicts when several patterns match the same namespace.
type Pattern struct {
	raw         string
	stem        string
	kind        matchKind
	disable     bool
	specificity int
}

// Compile parses a raw pattern string. A leading '-' marks the
// pattern as disabling. ok is false for patterns that cannot take
// effect (empty string or a bare "-"); callers drop those silently,
// a malformed enable call must never take down its caller.
func Compile(raw string) (Pattern, bool) {
	p := Pattern{raw: raw}
	s := raw
	if strings.HasPrefix(s, "-") {
		p.disable = true
		s = s[1:]
	}
	if s == "" {
		return Pattern{}, false
	}
	if s == "*" {
		p.kind = matchAll
		return p, true
	}
	if strings.HasSuffix(s, ":*") {
		p.kind = matchTree
		p.stem = s[:len(s)-2]
		p.specificity = len(p.stem)
		return p, true
	}
	if strings.HasSuffix(s, "*") {
		p.kind = matchPrefix
		p.stem = s[:len(s)-1]
		p.specificity = len(p.stem)
		return p, true
	}
	p.kind = matchExact
	p.stem = s
	p.specificity = len(s)
	return p, true
}

// Matches reports whether the namespace satisfies this pattern's
// predicate. Tree patterns respect segment boundaries: "a:*" matches
// "a" and "a:b" but never "ab".
func (p Pattern) Matches(ns string) bool {
	switch p.kind {
	case matchAll:
		return true
	case matchExact:
		return ns == p.stem
	case matchTree:
		if ns == p.stem {
			return true
		}
		return len(ns) > len(p.stem) && ns[len(p.stem)] == ':' && strings.HasPrefix(ns, p.stem)
	case matchPrefix:
		return strings.HasPrefix(ns, p.stem)
	default:
		return false
	}
}

// Raw returns the pattern string the rule was compiled from,
// including any leading '-'.
func (p Pattern) Raw() string { return p.raw }

// Disable reports the pattern's polarity.
func (p Pattern) Disable() bool { return p.disable }

// Specificity returns the conflict-resolution score. Bare "*" scores
// zero; wildcard patterns score the stem length; exact patterns score
// the full length, so longer matches always outrank shorter ones.
func (p Pattern) Specificity() int { return p.specificity }
