package psl

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/idna"
)

// Section markers inside the upstream list. They live on comment lines,
// so they must be recognised before comments are skipped.
const (
	sectionICANN   = "BEGIN ICANN DOMAINS"
	sectionPrivate = "BEGIN PRIVATE DOMAINS"
)

// List is an immutable rule trie built from public suffix list text.
// Once constructed it is never mutated, so any number of goroutines may
// run lookups against it concurrently without locking.
type List struct {
	root     *node
	key      keyFunc
	anyCase  bool
	punycode bool
	rules    int
}

// Option adjusts how a List is built.
type Option func(*List)

// WithAnyCase stores and compares labels case-insensitively, so callers
// do not have to lowercase input before low-level lookups.
func WithAnyCase() Option {
	return func(l *List) {
		l.key = foldKey
		l.anyCase = true
	}
}

// WithPunycode additionally inserts the IDNA/ASCII form of every rule,
// so Unicode and punycode spellings of the same suffix both match
// without converting at lookup time.
func WithPunycode() Option {
	return func(l *List) {
		l.punycode = true
	}
}

// NewList parses public suffix list text into a rule trie. Any rule
// error aborts the build; a list that yields no rules at all is
// rejected with ErrInvalidList.
func NewList(text string, opts ...Option) (*List, error) {
	l := &List{root: newNode(), key: exactKey}
	for _, opt := range opts {
		opt(l)
	}
	typ := TypeNone
	for _, line := range strings.Split(text, "\n") {
		switch {
		case strings.Contains(line, sectionICANN):
			typ = TypeICANN
			continue
		case strings.Contains(line, sectionPrivate):
			typ = TypePrivate
			continue
		}
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		// only the first whitespace-delimited token is the rule
		rule := strings.Fields(line)[0]
		if err := l.append(rule, typ); err != nil {
			return nil, err
		}
	}
	if l.rules == 0 {
		return nil, ErrInvalidList
	}
	return l, nil
}

// NewListFromBytes builds a List from raw bytes, rejecting input that is
// not valid UTF-8 before any line splitting happens.
func NewListFromBytes(data []byte, opts ...Option) (*List, error) {
	if !utf8.Valid(data) {
		return nil, ErrListNotUtf8Encoded
	}
	return NewList(string(data), opts...)
}

// NewListFromReader reads the full stream and builds a List from it.
func NewListFromReader(r io.Reader, opts ...Option) (*List, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read list: %w", err)
	}
	return NewListFromBytes(data, opts...)
}

func (l *List) append(rule string, typ Type) error {
	stripped := rule
	exception := strings.HasPrefix(stripped, "!")
	if exception {
		stripped = stripped[1:]
		if !strings.Contains(stripped, ".") {
			return &RuleError{Rule: rule, Err: ErrExceptionAtFirstLabel}
		}
	}
	if err := l.insertRule(stripped, rule, exception, typ); err != nil {
		return err
	}
	if l.punycode {
		ascii, err := idna.ToASCII(stripped)
		if err != nil {
			return &RuleError{Rule: rule, Err: ErrInvalidRule}
		}
		if ascii != stripped {
			return l.insertRule(ascii, rule, exception, typ)
		}
	}
	return nil
}

func (l *List) insertRule(stripped, rule string, exception bool, typ Type) error {
	labels := strings.Split(stripped, ".")
	for _, label := range labels {
		if label == "" {
			return &RuleError{Rule: rule, Err: ErrEmptyLabel}
		}
	}
	l.root.insert(l.key, labels, leaf{exception: exception, typ: typ})
	l.rules++
	return nil
}

// Len reports how many rules the list holds, counting the punycode twin
// of a Unicode rule separately.
func (l *List) Len() int {
	return l.rules
}
