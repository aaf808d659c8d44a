package descriptions

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"ytchef/internal/logging"
)

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "video_description.json")
	payload := `{
  "aaaaaaaaaaa": {"Description": "Curated text"},
  "bbbbbbbbbbb": {"Description": null},
  "ccccccccccc": {"Description": "exclude"},
  "ddddddddddd": {"Description": "EXCLUDE"},
  "eeeeeeeeeee": {"Video Title": "no description key"}
}`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	table, err := LoadFile(path, logging.NewNop())
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if got := table.IDs(); !slices.Equal(got, []string{"aaaaaaaaaaa", "bbbbbbbbbbb", "eeeeeeeeeee"}) {
		t.Fatalf("ids = %v", got)
	}
	if desc, ok := table.Lookup("aaaaaaaaaaa"); !ok || desc != "Curated text" {
		t.Fatalf("Lookup(a) = %q, %v", desc, ok)
	}
	if desc, ok := table.Lookup("bbbbbbbbbbb"); !ok || desc != "" {
		t.Fatalf("null description = %q, %v", desc, ok)
	}
	if _, ok := table.Lookup("ccccccccccc"); ok {
		t.Fatalf("excluded video present")
	}
	if table.Len() != 3 {
		t.Fatalf("Len = %d", table.Len())
	}
}

func TestLoadFileMissingIsEmpty(t *testing.T) {
	table, err := LoadFile(filepath.Join(t.TempDir(), "missing.json"), logging.NewNop())
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if table.Len() != 0 {
		t.Fatalf("expected empty table, got %d", table.Len())
	}
}

func TestLoadFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`["not", "a", "map"]`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadFile(path, logging.NewNop()); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestFromRows(t *testing.T) {
	rows := [][]string{
		Columns,
		{"aaaaaaaaaaa", "https://www.youtube.com/watch?v=aaaaaaaaaaa", "One", "English", "Hello"},
		{"bbbbbbbbbbb", "https://www.youtube.com/watch?v=bbbbbbbbbbb", "Two", "English"},
		{"ccccccccccc", "", "", "", " Exclude "},
		{"", "orphan"},
	}
	table, err := FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	if got := table.IDs(); !slices.Equal(got, []string{"aaaaaaaaaaa", "bbbbbbbbbbb"}) {
		t.Fatalf("ids = %v", got)
	}
	if desc, _ := table.Lookup("bbbbbbbbbbb"); desc != "" {
		t.Fatalf("short row description = %q", desc)
	}
}

func TestFromRowsRejectsUnknownTitle(t *testing.T) {
	_, err := FromRows([][]string{{"id", "url"}})
	if !errors.Is(err, ErrBadTitleRow) {
		t.Fatalf("error = %v, want ErrBadTitleRow", err)
	}
	table, err := FromRows(nil)
	if err != nil || table.Len() != 0 {
		t.Fatalf("empty rows: len=%d err=%v", table.Len(), err)
	}
}

func TestWriteFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "video_description.json")
	entries, err := ParseRows([][]string{
		Columns,
		{"aaaaaaaaaaa", "u", "One", "English", "Hello"},
		{"bbbbbbbbbbb", "u", "Two", "English", ""},
		{"ccccccccccc", "u", "Three", "English", "EXCLUDE"},
	})
	if err != nil {
		t.Fatalf("ParseRows: %v", err)
	}
	if err := WriteFile(path, entries); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	table, err := LoadFile(path, logging.NewNop())
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if got := table.IDs(); !slices.Equal(got, []string{"aaaaaaaaaaa", "bbbbbbbbbbb"}) {
		t.Fatalf("ids = %v", got)
	}
}

func TestNilTable(t *testing.T) {
	var table *Table
	if _, ok := table.Lookup("x"); ok || table.Len() != 0 || table.IDs() != nil {
		t.Fatalf("nil table should be empty")
	}
}
