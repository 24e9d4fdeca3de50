package source

import (
	"context"
	"fmt"
	"net/url"

	"github.com/gorilla/schema"
)

// IListSource supplies raw public suffix list bytes. Implementations own
// all the I/O; building the rule trie from the bytes happens elsewhere.
type IListSource interface {
	String() string
	Fetch(ctx context.Context) ([]byte, error)
}

type Params struct {
	URL          *url.URL
	CustomParams CustomParams
}

type CustomParams struct {
	Timeout int64 `schema:"timeout"` // milliseconds
}

type Factory func(scheme string, host string, params *Params) (IListSource, error)

var m = make(map[string]Factory)

func Register(scheme string, fac Factory) {
	m[scheme] = fac
}

// MakeSource builds a list source from a link such as
// file:///etc/suffixd/list.dat or https://publicsuffix.org/list/public_suffix_list.dat?timeout=30000.
func MakeSource(link string) (IListSource, error) {
	uri, err := url.Parse(link)
	if err != nil {
		return nil, err
	}
	cr, ok := m[uri.Scheme]
	if !ok {
		return nil, fmt.Errorf("no list source type found, type:%s", uri.Scheme)
	}
	params := &Params{URL: uri}
	if err := decodeParams(&params.CustomParams, uri.Query()); err != nil {
		return nil, err
	}
	return cr(uri.Scheme, uri.Host, params)
}

func decodeParams(out interface{}, in map[string][]string) error {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	if err := d.Decode(out, in); err != nil {
		return err
	}
	return nil
}
