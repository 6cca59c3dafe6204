// Package session parses Firefox session documents and reduces them to the
// list of currently open tabs.
package session

import (
	"encoding/json"
	"errors"
)

// Document is the decompressed recovery file payload. Firefox writes far more
// than this; unknown fields are ignored so newer session formats keep parsing.
type Document struct {
	Windows []Window `json:"windows"`
}

// Window holds one browser window's tabs in display order.
type Window struct {
	Tabs []TabState `json:"tabs"`
}

// TabState is one tab's navigation history. Index is 1-based and points at
// the entry the user is currently viewing.
type TabState struct {
	Entries []HistoryEntry `json:"entries"`
	Index   int            `json:"index"`
	Image   *string        `json:"image"`
}

// HistoryEntry is one record in a tab's back/forward list.
type HistoryEntry struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Parse deserializes a decompressed session document. Only structural shape
// is checked here; index-range validation happens during extraction.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Windows == nil {
		return nil, errors.New(`session document has no "windows" field`)
	}
	return &doc, nil
}
