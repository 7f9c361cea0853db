package api

import (
	"fmt"
	"strings"
)

// Filter names accepted by FilterNotes, matching the web UI's tabs.
const (
	FilterAll    = "all"
	FilterMine   = "mine"
	FilterShared = "shared"
	FilterPublic = "public"
)

// FilterNotes narrows a note listing by ownership tab and free-text search
// over title and content. Display-only: the server already decided what
// viewer may see, this only trims the local view.
func FilterNotes(notes []Note, viewer User, filter, search string) ([]Note, error) {
	switch filter {
	case "", FilterAll, FilterMine, FilterShared, FilterPublic:
	default:
		return nil, fmt.Errorf("unknown filter %q: must be all, mine, shared, or public", filter)
	}

	term := strings.ToLower(strings.TrimSpace(search))

	result := make([]Note, 0, len(notes))
	for _, n := range notes {
		switch filter {
		case FilterMine:
			if n.OwnerID != viewer.ID {
				continue
			}
		case FilterShared:
			if !n.IsSharedWithEmail(viewer.Email) {
				continue
			}
		case FilterPublic:
			if !n.IsPublic {
				continue
			}
		}

		if term != "" &&
			!strings.Contains(strings.ToLower(n.Title), term) &&
			!strings.Contains(strings.ToLower(n.Content), term) {
			continue
		}

		result = append(result, n)
	}
	return result, nil
}
