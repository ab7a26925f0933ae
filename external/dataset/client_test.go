package dataset

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/riskibarqy/draft-prospects/internal/platform/logging"
)

const sampleCSV = "player,position,id,draft_year,projected_spm,superstar,starter,role_player,bust\n" +
	"Karl-Anthony Towns,C,karl-anthony-towns,2015,1.2,0.3,0.4,0.2,0.1\n"

func TestClientDownload_WritesBodyVerbatim(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("unexpected method: %s", r.Method)
		}
		_, _ = w.Write([]byte(sampleCSV))
	}))
	defer server.Close()

	dir := filepath.Join(t.TempDir(), "nested", "data")
	client := NewClient(ClientConfig{Logger: logging.NewNop()})

	name, err := client.Download(context.Background(), server.URL+"/nba_draft.csv", "nba_draft.csv", dir)
	if err != nil {
		t.Fatalf("download: %v", err)
	}
	if name != "nba_draft.csv" {
		t.Fatalf("unexpected file name: %s", name)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "nba_draft.csv"))
	if err != nil {
		t.Fatalf("read downloaded file: %v", err)
	}
	if string(raw) != sampleCSV {
		t.Fatalf("unexpected file content: %q", string(raw))
	}
}

func TestClientDownload_OverwritesExistingFile(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("fresh"))
	}))
	defer server.Close()

	dir := t.TempDir()
	target := filepath.Join(dir, "nba_draft.csv")
	if err := os.WriteFile(target, []byte("stale content that is longer"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	if _, err := NewClient(ClientConfig{Logger: logging.NewNop()}).Download(context.Background(), server.URL, "nba_draft.csv", dir); err != nil {
		t.Fatalf("download: %v", err)
	}

	raw, _ := os.ReadFile(target)
	if string(raw) != "fresh" {
		t.Fatalf("expected file to be overwritten, got %q", string(raw))
	}
}

func TestClientDownload_WritesNonSuccessBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("404: Not Found"))
	}))
	defer server.Close()

	dir := t.TempDir()
	if _, err := NewClient(ClientConfig{Logger: logging.NewNop()}).Download(context.Background(), server.URL, "nba_draft.csv", dir); err != nil {
		t.Fatalf("expected non-2xx to be written without error, got %v", err)
	}

	raw, _ := os.ReadFile(filepath.Join(dir, "nba_draft.csv"))
	if string(raw) != "404: Not Found" {
		t.Fatalf("unexpected file content: %q", string(raw))
	}
}

func TestClientDownload_NetworkFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	sourceURL := server.URL
	server.Close()

	dir := t.TempDir()
	if _, err := NewClient(ClientConfig{Logger: logging.NewNop()}).Download(context.Background(), sourceURL, "nba_draft.csv", dir); err == nil {
		t.Fatalf("expected error for unreachable host")
	}
	if _, err := os.Stat(filepath.Join(dir, "nba_draft.csv")); !os.IsNotExist(err) {
		t.Fatalf("expected no file after a failed fetch, stat err=%v", err)
	}
}

func TestClientDownload_RejectsInvalidURL(t *testing.T) {
	t.Parallel()

	client := NewClient(ClientConfig{Logger: logging.NewNop()})
	for _, raw := range []string{"", "ftp://example.com/file.csv", "http://"} {
		if _, err := client.Download(context.Background(), raw, "nba_draft.csv", t.TempDir()); err == nil {
			t.Fatalf("expected error for url %q", raw)
		}
	}
}

func TestClientDownload_DirectoryIsAFile(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(sampleCSV))
	}))
	defer server.Close()

	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatalf("seed blocker: %v", err)
	}

	if _, err := NewClient(ClientConfig{Logger: logging.NewNop()}).Download(context.Background(), server.URL, "nba_draft.csv", blocker); err == nil {
		t.Fatalf("expected error when the directory path is a regular file")
	}
}
