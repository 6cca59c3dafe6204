// Package output renders tab lists and structured errors in the formats the
// CLI exposes: ndjson for machine consumers, text and table for humans.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"

	"github.com/vburojevic/fftabs/internal/domain"
)

// TabWriter is the surface the CLI selects per --format.
type TabWriter interface {
	WriteTabs(tabs []domain.Tab) error
}

// NDJSONWriter emits one JSON object per line.
type NDJSONWriter struct {
	w io.Writer
}

func NewNDJSONWriter(w io.Writer) *NDJSONWriter {
	return &NDJSONWriter{w: w}
}

type tabRecord struct {
	Type  string  `json:"type"`
	Index int     `json:"index"`
	Title string  `json:"title"`
	URL   string  `json:"url"`
	Icon  *string `json:"icon,omitempty"`
}

func (n *NDJSONWriter) WriteTabs(tabs []domain.Tab) error {
	enc := json.NewEncoder(n.w)
	for i, tab := range tabs {
		rec := tabRecord{Type: "tab", Index: i, Title: tab.Title, URL: tab.URL, Icon: tab.Icon}
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}
	return nil
}

// WriteError emits a machine-readable failure record.
func (n *NDJSONWriter) WriteError(code, message string, hint ...string) error {
	rec := map[string]string{"type": "error", "code": code, "message": message}
	if len(hint) > 0 && hint[0] != "" {
		rec["hint"] = hint[0]
	}
	return json.NewEncoder(n.w).Encode(rec)
}

// TextWriter prints one "[ i] Title (url)" line per tab.
type TextWriter struct {
	w io.Writer
}

func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

func (t *TextWriter) WriteTabs(tabs []domain.Tab) error {
	for i, tab := range tabs {
		if _, err := fmt.Fprintf(t.w, "[%2d] %s (%s)\n", i, tab.Title, tab.URL); err != nil {
			return err
		}
	}
	return nil
}

// TableWriter renders an aligned table.
type TableWriter struct {
	w io.Writer
}

func NewTableWriter(w io.Writer) *TableWriter {
	return &TableWriter{w: w}
}

func (t *TableWriter) WriteTabs(tabs []domain.Tab) error {
	table := tablewriter.NewWriter(t.w)
	table.Header("#", "Title", "URL")

	rows := lo.Map(tabs, func(tab domain.Tab, i int) []string {
		return []string{strconv.Itoa(i), tab.Title, tab.URL}
	})
	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}
