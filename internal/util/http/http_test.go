package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jmylchreest/okbase16/internal/security"
)

func TestFetch(t *testing.T) {
	var gotAgent, gotHeader string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		gotHeader = r.Header.Get("X-Test")
		switch r.URL.Path {
		case "/scheme.yaml":
			_, _ = w.Write([]byte("scheme: \"Test\"\n"))
		case "/large":
			_, _ = w.Write([]byte(strings.Repeat("a", 64)))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	ctx := context.Background()

	t.Run("ok", func(t *testing.T) {
		data, err := Fetch(ctx, srv.URL+"/scheme.yaml", FetchOptions{Headers: map[string]string{"X-Test": "yes"}})
		if err != nil {
			t.Fatalf("Fetch() error = %v", err)
		}
		if string(data) != "scheme: \"Test\"\n" {
			t.Errorf("Fetch() = %q", data)
		}
		if !strings.HasPrefix(gotAgent, UserAgentName+"/") {
			t.Errorf("User-Agent = %q", gotAgent)
		}
		if gotHeader != "yes" {
			t.Errorf("X-Test = %q", gotHeader)
		}
	})

	t.Run("not found", func(t *testing.T) {
		_, err := Fetch(ctx, srv.URL+"/missing", FetchOptions{})
		if err == nil || !strings.Contains(err.Error(), "HTTP 404") {
			t.Errorf("Fetch() error = %v, want HTTP 404", err)
		}
	})

	t.Run("size limit", func(t *testing.T) {
		_, err := Fetch(ctx, srv.URL+"/large", FetchOptions{MaxBytes: 16})
		if !errors.Is(err, security.ErrSizeLimit) {
			t.Errorf("Fetch() error = %v, want ErrSizeLimit", err)
		}
	})

	t.Run("custom client", func(t *testing.T) {
		if _, err := Fetch(ctx, srv.URL+"/scheme.yaml", FetchOptions{Client: srv.Client()}); err != nil {
			t.Errorf("Fetch() error = %v", err)
		}
	})
}

func TestIsURL(t *testing.T) {
	tests := map[string]bool{
		"https://example.com/a.yaml": true,
		"HTTP://example.com":         true,
		"scheme.yaml":                false,
		"ftp://example.com/a.yaml":   false,
		"./https/a.yaml":             false,
	}
	for in, want := range tests {
		if got := IsURL(in); got != want {
			t.Errorf("IsURL(%q) = %v, want %v", in, got, want)
		}
	}
}
