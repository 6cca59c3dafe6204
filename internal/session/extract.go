package session

import (
	"fmt"

	"github.com/vburojevic/fftabs/internal/domain"
)

// Extract reduces a document to one Tab per TabState, preserving
// window-then-tab order. Each tab projects its selected history entry plus
// the tab's favicon.
//
// A selected index outside [1, len(entries)] means the recovery file is
// corrupt; that is surfaced as an error for the whole file rather than
// clamped or guessed around.
func Extract(doc *Document) ([]domain.Tab, error) {
	var tabs []domain.Tab
	for wi, window := range doc.Windows {
		for ti, tab := range window.Tabs {
			if tab.Index < 1 || tab.Index > len(tab.Entries) {
				return nil, fmt.Errorf("window %d tab %d: selected index %d out of range [1, %d]",
					wi, ti, tab.Index, len(tab.Entries))
			}
			entry := tab.Entries[tab.Index-1]
			tabs = append(tabs, domain.NewTab(entry.Title, entry.URL, tab.Image))
		}
	}
	return tabs, nil
}
