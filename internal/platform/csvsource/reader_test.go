package csvsource

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"
)

func TestReader_SkipsHeaderAndKeepsShortRows(t *testing.T) {
	input := "Player,Position,ID\n" +
		"A,PG,a\n" +
		"B,SF\n" +
		"C,C,c,extra\n"

	r := NewReader(strings.NewReader(input))

	header, err := r.Header()
	if err != nil {
		t.Fatalf("read header: %v", err)
	}
	if strings.Join(header, "|") != "Player|Position|ID" {
		t.Fatalf("unexpected header: %v", header)
	}

	var got []Record
	for {
		rec, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		got = append(got, rec)
	}

	if len(got) != 3 {
		t.Fatalf("expected 3 records, got %d", len(got))
	}
	if len(got[1].Fields) != 2 {
		t.Fatalf("expected short row to keep 2 fields, got %v", got[1].Fields)
	}
	if len(got[2].Fields) != 4 {
		t.Fatalf("expected long row to keep 4 fields, got %v", got[2].Fields)
	}
	if got[0].Line != 2 || got[2].Line != 4 {
		t.Fatalf("unexpected line numbers: %d, %d", got[0].Line, got[2].Line)
	}
}

func TestReader_NextWithoutHeaderCall(t *testing.T) {
	r := NewReader(strings.NewReader("h1,h2\nv1,v2\n"))

	rec, err := r.Next()
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if rec.Fields[0] != "v1" {
		t.Fatalf("expected header to be skipped, got %v", rec.Fields)
	}
}

func TestReader_EmptyInput(t *testing.T) {
	r := NewReader(strings.NewReader(""))

	if _, err := r.Next(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF for empty input, got %v", err)
	}
}

func TestReader_KeepsBareQuotes(t *testing.T) {
	r := NewReader(strings.NewReader("h1,h2\nTim \"Dunk\" Smith,C\nnext,row\n"))

	rec, err := r.Next()
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if rec.Fields[0] != `Tim "Dunk" Smith` || rec.Fields[1] != "C" {
		t.Fatalf("unexpected fields: %q", rec.Fields)
	}

	rec, err = r.Next()
	if err != nil || rec.Fields[0] != "next" || rec.Line != 3 {
		t.Fatalf("expected the following row to read, got %v err=%v", rec, err)
	}
}

func TestReader_WrapsReadFailure(t *testing.T) {
	readErr := errors.New("connection reset")
	r := NewReader(io.MultiReader(strings.NewReader("h1,h2\n"), iotest.ErrReader(readErr)))

	_, err := r.Next()
	if !errors.Is(err, readErr) {
		t.Fatalf("expected wrapped read error, got %v", err)
	}
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "draft.csv")
	if err := os.WriteFile(path, []byte("h\nv\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	r, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer r.Close()

	rec, err := r.Next()
	if err != nil || rec.Fields[0] != "v" {
		t.Fatalf("unexpected first record %v err=%v", rec, err)
	}

	if _, err := Open(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
