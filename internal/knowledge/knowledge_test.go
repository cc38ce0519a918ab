package knowledge

import (
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"

	"github.com/spigell/major-advisor/internal/catalog"
)

const page = `<!doctype html>
<html><head><title>Teknik Informatika</title><script>var x = "coding";</script></head>
<body>
<nav><p>Menu utama</p></nav>
<p>Teknik informatika mempelajari <b>algoritma</b> dan pemrograman.<sup>[1]</sup></p>
<table><tr><td><p>tabel</p></td></tr></table>
<p>Lulusan bekerja sebagai software engineer.</p>
</body></html>`

func TestParagraphs(t *testing.T) {
	t.Parallel()

	got, err := Paragraphs(page)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "Teknik informatika mempelajari algoritma dan pemrograman. Lulusan bekerja sebagai software engineer."
	if got != want {
		t.Fatalf("unexpected text:\nwant %q\ngot  %q", want, got)
	}
}

func TestClientFetch(t *testing.T) {
	t.Parallel()

	var gotPath, gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		gotAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, page)
	}))
	t.Cleanup(srv.Close)

	client := New(zap.NewNop(), Config{URLTemplate: srv.URL + "/wiki/%s", UserAgent: "test-agent"})

	text, err := client.Fetch(context.Background(), catalog.Seed{Name: "Teknik Informatika"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/wiki/Teknik_Informatika" {
		t.Fatalf("unexpected path: %s", gotPath)
	}
	if gotAgent != "test-agent" {
		t.Fatalf("unexpected user agent: %s", gotAgent)
	}
	if !strings.Contains(text, "algoritma") {
		t.Fatalf("unexpected description: %q", text)
	}
}

func TestClientFetchGzipAndSeedURL(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/custom" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/plain")
		w.Header().Set("Content-Encoding", "gzip")
		gz := gzip.NewWriter(w)
		defer gz.Close()
		fmt.Fprint(gz, "  Desain   komunikasi visual\nmempelajari estetika.  ")
	}))
	t.Cleanup(srv.Close)

	client := New(zap.NewNop(), Config{URLTemplate: srv.URL + "/wiki/%s"})

	text, err := client.Fetch(context.Background(), catalog.Seed{Name: "DKV", URL: srv.URL + "/custom"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "Desain komunikasi visual mempelajari estetika." {
		t.Fatalf("unexpected description: %q", text)
	}
}

func TestClientFetchErrors(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "Empty") {
			fmt.Fprint(w, "<html><body><div>no paragraphs</div></body></html>")
			return
		}
		http.NotFound(w, r)
	}))
	t.Cleanup(srv.Close)

	client := New(zap.NewNop(), Config{URLTemplate: srv.URL + "/%s"})

	if _, err := client.Fetch(context.Background(), catalog.Seed{Name: "Missing"}); err == nil {
		t.Fatal("expected error for 404")
	}

	_, err := client.Fetch(context.Background(), catalog.Seed{Name: "Empty"})
	if !errors.Is(err, ErrNoDescription) {
		t.Fatalf("expected ErrNoDescription, got %v", err)
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	if got := truncate("satu dua tiga empat", 11); got != "satu dua" {
		t.Fatalf("unexpected truncation: %q", got)
	}
	if got := truncate("pendek", 100); got != "pendek" {
		t.Fatalf("unexpected truncation: %q", got)
	}
}

type stubFetcher struct {
	inFlight atomic.Int32
	peak     atomic.Int32
	mu       sync.Mutex
	calls    []string
}

func (s *stubFetcher) Fetch(_ context.Context, seed catalog.Seed) (string, error) {
	n := s.inFlight.Add(1)
	defer s.inFlight.Add(-1)
	for {
		peak := s.peak.Load()
		if n <= peak || s.peak.CompareAndSwap(peak, n) {
			break
		}
	}
	time.Sleep(5 * time.Millisecond)

	s.mu.Lock()
	s.calls = append(s.calls, seed.Name)
	s.mu.Unlock()

	if seed.Name == "Sastra Indonesia" {
		return "", errors.New("offline")
	}
	return seed.Name + " mempelajari algoritma dan pemrograman.", nil
}

func TestBuild(t *testing.T) {
	t.Parallel()

	seeds := []catalog.Seed{
		{Name: "Teknik Informatika"},
		{Name: "Sastra Indonesia"},
		{Name: "Psikologi", Description: "Psikologi mempelajari perilaku manusia."},
		{Name: "Manajemen"},
		{Name: "Akuntansi"},
	}
	fetcher := &stubFetcher{}

	snapshot, err := Build(context.Background(), fetcher, seeds, 2, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if diff := cmp.Diff([]string{"Teknik Informatika", "Sastra Indonesia", "Psikologi", "Manajemen", "Akuntansi"}, snapshot.Names()); diff != "" {
		t.Fatalf("unexpected order (-want +got):\n%s", diff)
	}
	if len(fetcher.calls) != 4 {
		t.Fatalf("seed with description must not be fetched, calls: %v", fetcher.calls)
	}
	if fetcher.peak.Load() > 2 {
		t.Fatalf("expected at most 2 concurrent fetches, got %d", fetcher.peak.Load())
	}

	failed, _ := snapshot.Get("Sastra Indonesia")
	if failed.Description != catalog.Placeholder("Sastra Indonesia") {
		t.Fatalf("expected placeholder, got %q", failed.Description)
	}
	kept, _ := snapshot.Get("Psikologi")
	if kept.Description != "Psikologi mempelajari perilaku manusia." {
		t.Fatalf("seed description must win, got %q", kept.Description)
	}
}

func TestBuildCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := New(zap.NewNop(), Config{URLTemplate: "http://127.0.0.1:1/%s"})
	if _, err := Build(ctx, client, []catalog.Seed{{Name: "Farmasi"}}, 1, zap.NewNop()); err == nil {
		t.Fatal("expected context error")
	}
}

func TestBuildWithoutFetcher(t *testing.T) {
	t.Parallel()

	snapshot, err := Build(context.Background(), nil, catalog.DefaultSeeds, 0, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snapshot.Len() != len(catalog.DefaultSeeds) {
		t.Fatalf("expected %d majors, got %d", len(catalog.DefaultSeeds), snapshot.Len())
	}
}
