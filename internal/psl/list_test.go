package psl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListSections(t *testing.T) {
	text := `
// comment before any section
early.example

// ===BEGIN ICANN DOMAINS===
com
co.uk
// ===END ICANN DOMAINS===

// ===BEGIN PRIVATE DOMAINS===
github.io
// ===END PRIVATE DOMAINS===
`
	l, err := NewList(text)
	require.NoError(t, err)

	assert.Equal(t, Info{Len: len("early.example"), Typ: TypeNone}, l.Find(reverseLabels("early.example")))
	assert.Equal(t, Info{Len: 3, Typ: TypeICANN}, l.Find(reverseLabels("com")))
	assert.Equal(t, Info{Len: 5, Typ: TypeICANN}, l.Find(reverseLabels("co.uk")))
	assert.Equal(t, Info{Len: len("github.io"), Typ: TypePrivate}, l.Find(reverseLabels("x.github.io")))
}

func TestNewListErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
		want error
	}{
		{"exception without dot", "// ===BEGIN ICANN DOMAINS===\n!com\n", ErrExceptionAtFirstLabel},
		{"double dot", "a..b\n", ErrEmptyLabel},
		{"leading dot", ".example\n", ErrEmptyLabel},
		{"trailing dot", "example.\n", ErrEmptyLabel},
		{"only comments", "// nothing here\n\n// still nothing\n", ErrInvalidList},
		{"empty input", "", ErrInvalidList},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewList(tt.text)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNewListRuleErrorCarriesRule(t *testing.T) {
	_, err := NewList("!com\n")
	var re *RuleError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "!com", re.Rule)
}

func TestNewListFromBytesRejectsInvalidUtf8(t *testing.T) {
	_, err := NewListFromBytes([]byte{'c', 'o', 'm', '\n', 0xff, 0xfe})
	require.ErrorIs(t, err, ErrListNotUtf8Encoded)
}

func TestNewListFromReader(t *testing.T) {
	l, err := NewListFromReader(strings.NewReader(icannHeader + "com\n"))
	require.NoError(t, err)
	assert.Equal(t, Info{Len: 3, Typ: TypeICANN}, l.Find([]string{"com"}))
}

func TestNewListIgnoresTrailingTokens(t *testing.T) {
	l, err := NewList(icannHeader + "com registry operator notes\n")
	require.NoError(t, err)
	assert.Equal(t, 1, l.Len())
	assert.Equal(t, Info{Len: 3, Typ: TypeICANN}, l.Find([]string{"com"}))
}

func TestNewListDuplicateRuleLastWins(t *testing.T) {
	text := icannHeader + "example.com\n" + privateHeader + "example.com\n"
	l, err := NewList(text)
	require.NoError(t, err)
	got := l.Find(reverseLabels("example.com"))
	assert.Equal(t, TypePrivate, got.Typ)
}

func TestNewListIdempotent(t *testing.T) {
	text := icannHeader + "com\nco.uk\n*.ck\n!www.ck\n" + privateHeader + "uk.com\n"
	a, err := NewList(text)
	require.NoError(t, err)
	b, err := NewList(text)
	require.NoError(t, err)

	inputs := []string{
		"com", "example.com", "co.uk", "a.co.uk", "buy.ck", "www.ck",
		"x.www.ck", "example.uk.com", "localhost", "unknown.zz",
	}
	for _, in := range inputs {
		assert.Equal(t, a.Find(reverseLabels(in)), b.Find(reverseLabels(in)), "input %s", in)
	}
}

func TestWithPunycode(t *testing.T) {
	l, err := NewList(icannHeader+"中国\n", WithPunycode())
	require.NoError(t, err)

	uni := l.Parse("www.食狮.中国")
	assert.Equal(t, "中国", uni.Suffix())
	assert.True(t, uni.IsICANN())

	ascii := l.Parse("www.xn--85x722f.xn--fiqs8s")
	assert.Equal(t, "xn--fiqs8s", ascii.Suffix())
	assert.True(t, ascii.IsICANN())
}

func TestWithAnyCase(t *testing.T) {
	l, err := NewList(privateHeader+"platformsh.site\n", WithAnyCase())
	require.NoError(t, err)

	got := l.Find(reverseLabels("Foo.PlatformSH.Site"))
	assert.Equal(t, Info{Len: len("platformsh.site"), Typ: TypePrivate}, got)
}
