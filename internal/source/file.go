package source

import (
	"context"
	"fmt"
	"os"
	"strings"
)

func init() {
	Register("file", fileSourceFactory)
}

func fileSourceFactory(_ string, host string, params *Params) (IListSource, error) {
	// file://./relative keeps the host part, file:///abs does not
	path := host + params.URL.Path
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("file source requires a path")
	}
	return &fileSource{path: path}, nil
}

type fileSource struct {
	path string
}

func (s *fileSource) String() string {
	return "file:" + s.path
}

func (s *fileSource) Fetch(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read list file %s: %w", s.path, err)
	}
	return data, nil
}
