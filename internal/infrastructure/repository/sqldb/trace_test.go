package sqldb

import (
	"strings"
	"testing"
)

func TestFormatQueryForTrace(t *testing.T) {
	got := formatQueryForTrace(" SELECT   Player AS player\nFROM nba_draft \t WHERE ID = ? ")
	want := "SELECT Player AS player FROM nba_draft WHERE ID = ?"
	if got != want {
		t.Fatalf("unexpected formatted query: %q", got)
	}
}

func TestFormatQueryForTrace_Truncates(t *testing.T) {
	got := formatQueryForTrace("INSERT INTO nba_draft VALUES " + strings.Repeat("(?), ", 200))
	if len(got) != maxTracedQueryLength+len("...") || !strings.HasSuffix(got, "...") {
		t.Fatalf("expected truncated query, got len=%d", len(got))
	}
}
