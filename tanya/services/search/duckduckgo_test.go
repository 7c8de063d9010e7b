package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const resultsPage = `<html><body>
<div class="result__body">
  <h2 class="result__title"><a href="/l/?uddg=https%3A%2F%2Fexample.com%2Fa">Berita Satu</a></h2>
  <a class="result__snippet">Harga <b>beras</b> naik hari ini.</a>
</div>
<div class="result__body">
  <h2 class="result__title"><a href="/l/?uddg=https%3A%2F%2Fexample.com%2Fb">Berita Dua</a></h2>
  <a class="result__snippet">Cuaca cerah di Jakarta.</a>
</div>
<div class="result__body">
  <h2 class="result__title"><a href="/l/?uddg=https%3A%2F%2Fexample.com%2Fc">Berita Tiga</a></h2>
  <a class="result__snippet">Hasil liga tadi malam.</a>
</div>
<div class="result__body">
  <h2 class="result__title"><a href="/l/?uddg=https%3A%2F%2Fexample.com%2Fd">Berita Empat</a></h2>
  <a class="result__snippet">Tidak akan pernah terlihat.</a>
</div>
</body></html>`

func TestSearchFormatsResults(t *testing.T) {
	var gotRegion string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRegion = r.URL.Query().Get("kl")
		w.Write([]byte(resultsPage))
	}))
	defer srv.Close()

	d := NewDuckDuckGoWithBaseURL(srv.URL, "id-id", 3)
	out, err := d.Search(context.Background(), "berita hari ini")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}

	if gotRegion != "id-id" {
		t.Errorf("expected region id-id, got %q", gotRegion)
	}
	if !strings.HasPrefix(out, FactsHeader) {
		t.Errorf("expected facts header, got %q", out)
	}
	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header + 3 results, got %d lines: %q", len(lines), out)
	}
	if lines[1] != "1. Berita Satu - Harga beras naik hari ini." {
		t.Errorf("unexpected first fact line: %q", lines[1])
	}
	if !strings.HasPrefix(lines[3], "3. Berita Tiga") {
		t.Errorf("fourth result should have been cut by the limit: %q", lines[3])
	}
}

func TestSearchNoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><div class="no-results">tidak ada</div></body></html>`))
	}))
	defer srv.Close()

	d := NewDuckDuckGoWithBaseURL(srv.URL, "id-id", 3)
	out, err := d.Search(context.Background(), "zzzzzz")
	if err != nil {
		t.Fatalf("zero results must not be an error: %v", err)
	}
	if out != "" {
		t.Errorf("expected empty context, got %q", out)
	}
}

func TestSearchBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	d := NewDuckDuckGoWithBaseURL(srv.URL, "id-id", 3)
	out, err := d.Search(context.Background(), "berita")
	if err == nil {
		t.Fatal("expected error for non-200 status")
	}
	if out != "" {
		t.Errorf("failed search must return empty context, got %q", out)
	}
}

func TestSearchConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	d := NewDuckDuckGoWithBaseURL(srv.URL, "id-id", 3)
	out, err := d.Search(context.Background(), "berita")
	if err == nil {
		t.Fatal("expected error when the engine is unreachable")
	}
	if out != "" {
		t.Errorf("expected empty context, got %q", out)
	}
}

func TestFormatEmpty(t *testing.T) {
	if got := Format(nil); got != "" {
		t.Errorf("expected empty string for no results, got %q", got)
	}
}
