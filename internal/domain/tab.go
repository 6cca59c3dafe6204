package domain

// Tab is one open browser tab, projected from the history entry the user is
// currently viewing.
type Tab struct {
	Title string  `json:"title"`
	URL   string  `json:"url"`
	Icon  *string `json:"icon,omitempty"`
}

// NewTab creates a Tab. icon may be nil when the tab has no favicon recorded.
func NewTab(title, url string, icon *string) Tab {
	return Tab{
		Title: title,
		URL:   url,
		Icon:  icon,
	}
}
