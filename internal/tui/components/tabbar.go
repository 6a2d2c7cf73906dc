package components

import (
	"fmt"
	"strings"

	"github.com/revenland/revenland/internal/tui/styles"
)

// Tab is one entry in the tab bar
type Tab struct {
	Key   string
	Label string
}

// RenderTabBar renders tabs with the active one highlighted
func RenderTabBar(tabs []Tab, active string) string {
	parts := make([]string, 0, len(tabs))
	for i, t := range tabs {
		label := fmt.Sprintf("%d %s", i+1, t.Label)
		if t.Key == active {
			parts = append(parts, styles.ActiveTabStyle.Render(label))
		} else {
			parts = append(parts, styles.TabStyle.Render(label))
		}
	}
	return strings.Join(parts, "")
}
