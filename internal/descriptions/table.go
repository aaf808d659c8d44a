// Package descriptions holds the curated per-video descriptions that replace
// the YouTube text in the published tree.
//
// The table is built once, from the descriptions JSON file or from the rows
// of the review spreadsheet, and is read-only afterwards. Videos marked
// EXCLUDE are left out of the table, which drops them from the tree.
package descriptions

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"slices"
	"strings"

	"ytchef/internal/fileutil"
	"ytchef/internal/logging"
)

// ExcludeMarker in a description removes the video from the tree.
const ExcludeMarker = "EXCLUDE"

// Columns is the title row of the review spreadsheet.
var Columns = []string{"Video ID", "Video URL", "Video Title", "Video Language", "Description"}

const (
	colID = iota
	colURL
	colTitle
	colLanguage
	colDescription
)

// ErrBadTitleRow is returned when sheet rows do not start with Columns.
var ErrBadTitleRow = errors.New("unexpected title row")

// Entry is one video in the descriptions file. A nil Description is kept as
// an empty description.
type Entry struct {
	VideoURL    string  `json:"Video URL,omitempty"`
	Title       string  `json:"Video Title,omitempty"`
	Language    string  `json:"Video Language,omitempty"`
	Description *string `json:"Description"`
}

func (e Entry) excluded() bool {
	return e.Description != nil && strings.EqualFold(strings.TrimSpace(*e.Description), ExcludeMarker)
}

// Table maps video ids to descriptions.
type Table struct {
	entries map[string]string
}

// FromEntries builds a table, dropping excluded videos.
func FromEntries(entries map[string]Entry) *Table {
	t := &Table{entries: make(map[string]string, len(entries))}
	for id, entry := range entries {
		if entry.excluded() {
			continue
		}
		desc := ""
		if entry.Description != nil {
			desc = *entry.Description
		}
		t.entries[id] = desc
	}
	return t
}

// LoadFile reads the descriptions JSON file. A missing file is logged and
// yields an empty table.
func LoadFile(path string, logger *slog.Logger) (*Table, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		logging.ErrorWithContext(logging.NewComponentLogger(logger, "descriptions"),
			"descriptions file does not exist", "descriptions_missing",
			logging.String("path", path),
			logging.String(logging.FieldErrorHint, "run ytchef sheet pull or set paths.descriptions_path"),
		)
		return FromEntries(nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read descriptions: %w", err)
	}
	entries, err := decodeFile(data)
	if err != nil {
		return nil, fmt.Errorf("parse descriptions %s: %w", path, err)
	}
	return FromEntries(entries), nil
}

func decodeFile(data []byte) (map[string]Entry, error) {
	var entries map[string]Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// ParseRows converts spreadsheet rows, title row first, into file entries.
// Short rows are padded; rows without a video id are skipped. An empty
// description cell is stored as null.
func ParseRows(rows [][]string) (map[string]Entry, error) {
	entries := make(map[string]Entry)
	if len(rows) == 0 {
		return entries, nil
	}
	if !IsTitleRow(rows[0]) {
		return nil, fmt.Errorf("%w: %q", ErrBadTitleRow, rows[0])
	}
	for _, row := range rows[1:] {
		cell := func(i int) string {
			if i < len(row) {
				return strings.TrimSpace(row[i])
			}
			return ""
		}
		id := cell(colID)
		if id == "" {
			continue
		}
		entry := Entry{
			VideoURL: cell(colURL),
			Title:    cell(colTitle),
			Language: cell(colLanguage),
		}
		if desc := cell(colDescription); desc != "" {
			entry.Description = &desc
		}
		entries[id] = entry
	}
	return entries, nil
}

// IsTitleRow reports whether row matches Columns.
func IsTitleRow(row []string) bool {
	if len(row) < len(Columns) {
		return false
	}
	for i, col := range Columns {
		if strings.TrimSpace(row[i]) != col {
			return false
		}
	}
	return true
}

// FromRows builds a table from spreadsheet rows.
func FromRows(rows [][]string) (*Table, error) {
	entries, err := ParseRows(rows)
	if err != nil {
		return nil, err
	}
	return FromEntries(entries), nil
}

// WriteFile stores entries as the descriptions JSON file.
func WriteFile(path string, entries map[string]Entry) error {
	data, err := json.MarshalIndent(entries, "", "    ")
	if err != nil {
		return fmt.Errorf("encode descriptions: %w", err)
	}
	return fileutil.WriteFileAtomic(path, append(data, '\n'), 0o644)
}

// Lookup returns the description for a video and whether it is included.
func (t *Table) Lookup(videoID string) (string, bool) {
	if t == nil {
		return "", false
	}
	desc, ok := t.entries[videoID]
	return desc, ok
}

// Len returns the number of included videos.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// IDs returns the included video ids in sorted order.
func (t *Table) IDs() []string {
	if t == nil {
		return nil
	}
	ids := make([]string, 0, len(t.entries))
	for id := range t.entries {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
