package psl

import "strings"

// Domain is the decomposition of one name against a List. All fields are
// substrings of the trimmed input; a Domain is immutable once built and
// construction never fails.
type Domain struct {
	full   string
	suffix string
	root   string
	typ    Type
}

// Full returns the input name with surrounding whitespace and at most
// one trailing dot removed.
func (d Domain) Full() string { return d.full }

// Suffix returns the public suffix portion of the name. For a name that
// matched no rule this is still the rightmost label.
func (d Domain) Suffix() string { return d.suffix }

// Root returns the registrable domain: the suffix plus one more label.
// It is empty when the name has no label beyond the suffix.
func (d Domain) Root() string { return d.root }

// Type reports which list section the winning rule came from.
func (d Domain) Type() Type { return d.typ }

// HasKnownSuffix reports whether the suffix matched an explicit rule
// rather than the implicit single-label default.
func (d Domain) HasKnownSuffix() bool { return d.typ != TypeNone }

func (d Domain) IsICANN() bool { return d.typ == TypeICANN }

func (d Domain) IsPrivate() bool { return d.typ == TypePrivate }

// Parse decomposes a raw name against the list. Whitespace and at most
// one trailing dot are trimmed; comparison is done on the lowercased
// form unless the list was built with WithAnyCase. Syntax validation is
// deliberately not performed here, see ValidateHost.
func (l *List) Parse(name string) Domain {
	host := strings.TrimSpace(name)
	host = strings.TrimSuffix(host, ".")
	d := Domain{full: host}
	cmp := host
	if !l.anyCase {
		cmp = strings.ToLower(cmp)
	}
	info := l.Find(reverseLabels(cmp))
	if info.Len <= 0 || info.Len > len(host) {
		return d
	}
	d.typ = info.Typ
	d.suffix = host[len(host)-info.Len:]
	if len(host) > info.Len {
		prefix := host[:len(host)-info.Len-1]
		if i := strings.LastIndexByte(prefix, '.'); i >= 0 {
			d.root = host[i+1:]
		} else {
			d.root = host
		}
	}
	return d
}

// Suffix is a convenience over Parse for callers that only need the
// suffix and its classification.
func (l *List) Suffix(name string) (string, Type) {
	d := l.Parse(name)
	return d.suffix, d.typ
}

// reverseLabels splits a host on dots and reverses the result in place,
// producing the rightmost-first order Find expects.
func reverseLabels(host string) []string {
	labels := strings.Split(host, ".")
	for i, j := 0, len(labels)-1; i < j; i, j = i+1, j-1 {
		labels[i], labels[j] = labels[j], labels[i]
	}
	return labels
}
