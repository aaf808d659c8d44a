package sheets

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"ytchef/internal/descriptions"
	"ytchef/internal/logging"
)

const defaultRange = "Sheet1!A:E"

// ErrInvalidSheet is returned when the first row holds something other than
// the description title row.
var ErrInvalidSheet = errors.New("sheet does not start with the description title row")

// Record is one spreadsheet row.
type Record struct {
	VideoID     string
	VideoURL    string
	VideoTitle  string
	Language    string
	Description string
}

func (r Record) row() []any {
	return []any{r.VideoID, r.VideoURL, r.VideoTitle, r.Language, r.Description}
}

// Writer reads and appends description records in one spreadsheet range.
type Writer struct {
	api           ValuesAPI
	spreadsheetID string
	rng           string
	titled        bool
	logger        *slog.Logger
}

// NewWriter targets rng (for example "Sheet1!A:E") of a spreadsheet.
func NewWriter(api ValuesAPI, spreadsheetID, rng string, logger *slog.Logger) *Writer {
	if strings.TrimSpace(rng) == "" {
		rng = defaultRange
	}
	return &Writer{
		api:           api,
		spreadsheetID: spreadsheetID,
		rng:           rng,
		logger:        logging.NewComponentLogger(logger, "sheets"),
	}
}

// Range returns the range the writer operates on.
func (w *Writer) Range() string { return w.rng }

// titleRange is the first row of the writer's sheet.
func (w *Writer) titleRange() string {
	sheet := ""
	if idx := strings.LastIndex(w.rng, "!"); idx >= 0 {
		sheet = w.rng[:idx+1]
	}
	return sheet + "A1:E1"
}

// TitleExists reports whether the sheet already carries the title row. An
// empty first row reports false; any other content is ErrInvalidSheet.
func (w *Writer) TitleExists(ctx context.Context) (bool, error) {
	if w.titled {
		return true, nil
	}
	rows, err := w.api.Get(ctx, w.spreadsheetID, w.titleRange())
	if err != nil {
		return false, fmt.Errorf("read title row: %w", err)
	}
	if len(rows) == 0 || isBlank(rows[0]) {
		return false, nil
	}
	if !descriptions.IsTitleRow(toStrings(rows[0])) {
		return false, fmt.Errorf("%w: %v", ErrInvalidSheet, rows[0])
	}
	w.titled = true
	return true, nil
}

// AddTitleLine writes the title row.
func (w *Writer) AddTitleLine(ctx context.Context) error {
	title := make([]any, 0, len(descriptions.Columns))
	for _, col := range descriptions.Columns {
		title = append(title, col)
	}
	if err := w.api.Append(ctx, w.spreadsheetID, w.rng, [][]any{title}); err != nil {
		return fmt.Errorf("write title row: %w", err)
	}
	w.titled = true
	return nil
}

func (w *Writer) ensureTitle(ctx context.Context) error {
	ok, err := w.TitleExists(ctx)
	if err != nil || ok {
		return err
	}
	return w.AddTitleLine(ctx)
}

// WriteRecord appends one record, writing the title row first if needed.
func (w *Writer) WriteRecord(ctx context.Context, rec Record) error {
	return w.WriteRecords(ctx, []Record{rec})
}

// WriteRecords appends records in a single call.
func (w *Writer) WriteRecords(ctx context.Context, recs []Record) error {
	if len(recs) == 0 {
		return nil
	}
	if err := w.ensureTitle(ctx); err != nil {
		return err
	}
	rows := make([][]any, 0, len(recs))
	for _, rec := range recs {
		rows = append(rows, rec.row())
	}
	if err := w.api.Append(ctx, w.spreadsheetID, w.rng, rows); err != nil {
		return fmt.Errorf("append records: %w", err)
	}
	w.logger.Debug("records appended", logging.Int("rows", len(rows)))
	return nil
}

// Clear empties the writer's range, title row included.
func (w *Writer) Clear(ctx context.Context) error {
	if err := w.api.Clear(ctx, w.spreadsheetID, w.rng); err != nil {
		return fmt.Errorf("clear %s: %w", w.rng, err)
	}
	w.titled = false
	return nil
}

// ReadRows returns every row of the range as strings.
func (w *Writer) ReadRows(ctx context.Context) ([][]string, error) {
	rows, err := w.api.Get(ctx, w.spreadsheetID, w.rng)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", w.rng, err)
	}
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, toStrings(row))
	}
	return out, nil
}

// ReadEntries reads the sheet as descriptions file entries.
func (w *Writer) ReadEntries(ctx context.Context) (map[string]descriptions.Entry, error) {
	rows, err := w.ReadRows(ctx)
	if err != nil {
		return nil, err
	}
	entries, err := descriptions.ParseRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSheet, err)
	}
	return entries, nil
}

// ReadTable reads the sheet into a description table.
func (w *Writer) ReadTable(ctx context.Context) (*descriptions.Table, error) {
	entries, err := w.ReadEntries(ctx)
	if err != nil {
		return nil, err
	}
	return descriptions.FromEntries(entries), nil
}

func toStrings(row []any) []string {
	out := make([]string, len(row))
	for i, cell := range row {
		if cell == nil {
			continue
		}
		if s, ok := cell.(string); ok {
			out[i] = s
			continue
		}
		out[i] = fmt.Sprint(cell)
	}
	return out
}

func isBlank(row []any) bool {
	for _, cell := range toStrings(row) {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
