package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

func init() {
	Register("http", httpSourceFactory)
	Register("https", httpSourceFactory)
}

const defaultFetchTimeout = 30 * time.Second

func httpSourceFactory(scheme string, host string, params *Params) (IListSource, error) {
	endpoint := fmt.Sprintf("%s://%s%s", scheme, host, params.URL.Path)
	timeout := time.Duration(params.CustomParams.Timeout) * time.Millisecond
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        2,
		IdleConnTimeout:     30 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	client := &http.Client{Timeout: timeout, Transport: transport}
	return &httpSource{endpoint: endpoint, client: client}, nil
}

type httpSource struct {
	endpoint string
	client   *http.Client
}

func (s *httpSource) String() string {
	return s.endpoint
}

func (s *httpSource) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build list request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch list from %s: %w", s.endpoint, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("list endpoint %s: unexpected status %d", s.endpoint, resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read list body from %s: %w", s.endpoint, err)
	}
	return data, nil
}
