package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

const testListText = `// ===BEGIN ICANN DOMAINS===
com
co.uk
// ===END ICANN DOMAINS===
`

func TestMakeSourceUnknownScheme(t *testing.T) {
	if _, err := MakeSource("ftp://example.com/list.dat"); err == nil {
		t.Fatal("expected error for unsupported scheme")
	}
}

func TestFileSourceFetch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list.dat")
	if err := os.WriteFile(path, []byte(testListText), 0o644); err != nil {
		t.Fatalf("write list file: %v", err)
	}

	src, err := MakeSource("file://" + path)
	if err != nil {
		t.Fatalf("MakeSource error: %v", err)
	}
	data, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch error: %v", err)
	}
	if string(data) != testListText {
		t.Fatalf("unexpected list content: %q", string(data))
	}
}

func TestFileSourceMissingFile(t *testing.T) {
	src, err := MakeSource("file:///does/not/exist.dat")
	if err != nil {
		t.Fatalf("MakeSource error: %v", err)
	}
	if _, err := src.Fetch(context.Background()); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestHTTPSourceFetch(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(testListText))
	}))
	defer ts.Close()

	src, err := MakeSource(ts.URL + "/list.dat?timeout=2000")
	if err != nil {
		t.Fatalf("MakeSource error: %v", err)
	}
	data, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch error: %v", err)
	}
	if string(data) != testListText {
		t.Fatalf("unexpected list content: %q", string(data))
	}
}

func TestHTTPSourceBadStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	src, err := MakeSource(ts.URL + "/list.dat")
	if err != nil {
		t.Fatalf("MakeSource error: %v", err)
	}
	if _, err := src.Fetch(context.Background()); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}
