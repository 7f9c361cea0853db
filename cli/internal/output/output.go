package output

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/noteshare/cli/internal/api"
)

// JSON prints v as indented JSON to stdout.
func JSON(v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

// NoteTable prints notes as a human-readable table. The CAN EDIT column is
// computed against viewer using the same policy the server enforces.
func NoteTable(notes []api.Note, viewer api.User) {
	if len(notes) == 0 {
		fmt.Println("No notes found.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tOWNER\tVISIBILITY\tSHARED\tCAN EDIT\tMODIFIED")

	for _, n := range notes {
		owner := fmt.Sprintf("%d", n.OwnerID)
		if n.Owner != nil {
			owner = n.Owner.Email
		}

		visibility := "private"
		if n.IsPublic {
			visibility = "public"
		}

		shared := "-"
		if len(n.SharedWith) > 0 {
			shared = fmt.Sprintf("%d", len(n.SharedWith))
		}

		canEdit := "no"
		if n.CanEdit(viewer) {
			canEdit = "yes"
		}

		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			n.ID, Truncate(n.Title, 40), owner, visibility, shared, canEdit, RelativeTime(n.UpdatedAt))
	}
	w.Flush()
}

// NoteDetail prints a single note in full.
func NoteDetail(n api.Note, viewer api.User) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID:\t%d\n", n.ID)
	fmt.Fprintf(w, "Title:\t%s\n", n.Title)
	owner := fmt.Sprintf("%d", n.OwnerID)
	if n.Owner != nil {
		owner = fmt.Sprintf("%s (%d)", n.Owner.Email, n.OwnerID)
	}
	fmt.Fprintf(w, "Owner:\t%s\n", owner)
	visibility := "private"
	if n.IsPublic {
		visibility = "public"
	}
	fmt.Fprintf(w, "Visibility:\t%s\n", visibility)
	if len(n.SharedWith) > 0 {
		fmt.Fprintf(w, "Shared with:\t%s\n", strings.Join(n.SharedWith, ", "))
	}
	canEdit := "no"
	if n.CanEdit(viewer) {
		canEdit = "yes"
	}
	fmt.Fprintf(w, "Can edit:\t%s\n", canEdit)
	fmt.Fprintf(w, "Created:\t%s\n", n.CreatedAt.Format(time.RFC3339))
	fmt.Fprintf(w, "Modified:\t%s\n", n.UpdatedAt.Format(time.RFC3339))
	w.Flush()

	fmt.Println()
	fmt.Println(n.Content)
}

// UserInfo prints user details.
func UserInfo(u api.User) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Email:\t%s\n", u.Email)
	fmt.Fprintf(w, "Name:\t%s\n", u.Name)
	fmt.Fprintf(w, "Role:\t%s\n", u.Role)
	fmt.Fprintf(w, "ID:\t%d\n", u.ID)
	w.Flush()
}

// PermissionsInfo prints the edit decision breakdown for a note.
func PermissionsInfo(p api.Permissions) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Note:\t%s (%d)\n", p.NoteTitle, p.NoteID)
	fmt.Fprintf(w, "Owner ID:\t%d\n", p.NoteOwnerID)
	if len(p.NoteSharedWith) > 0 {
		fmt.Fprintf(w, "Shared with:\t%s\n", strings.Join(p.NoteSharedWith, ", "))
	}
	fmt.Fprintf(w, "You:\t%s (%s)\n", p.CurrentUserEmail, p.CurrentUserRole)
	fmt.Fprintf(w, "Is admin:\t%v\n", p.Checks.IsAdmin)
	fmt.Fprintf(w, "Is owner:\t%v\n", p.Checks.IsOwner)
	fmt.Fprintf(w, "Is shared with you:\t%v\n", p.Checks.IsSharedWithUser)
	fmt.Fprintf(w, "Can edit:\t%v\n", p.CanEdit)
	w.Flush()
}

// Truncate shortens s to max runes, appending an ellipsis when cut.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

// RelativeTime formats a timestamp relative to now (e.g. "2h ago", "3d ago").
func RelativeTime(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 30*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return t.Format("2006-01-02")
	}
}
