package api

import "testing"

func TestFilterNotes(t *testing.T) {
	viewer := User{ID: 3, Email: "viewer@example.com", Role: "user"}

	notes := []Note{
		{ID: 1, OwnerID: 3, Title: "Groceries", Content: "milk, eggs"},
		{ID: 2, OwnerID: 2, Title: "Team minutes", Content: "agenda", IsPublic: true},
		{ID: 3, OwnerID: 2, Title: "Project plan", Content: "buy more milk", SharedWith: []string{"viewer@example.com"}},
		{ID: 4, OwnerID: 3, Title: "Ideas", Content: "scratchpad", IsPublic: true},
	}

	ids := func(notes []Note) []uint64 {
		out := make([]uint64, len(notes))
		for i, n := range notes {
			out[i] = n.ID
		}
		return out
	}

	assertIDs := func(t *testing.T, got []Note, want ...uint64) {
		t.Helper()
		if len(got) != len(want) {
			t.Fatalf("expected notes %v, got %v", want, ids(got))
		}
		for i, n := range got {
			if n.ID != want[i] {
				t.Fatalf("expected notes %v, got %v", want, ids(got))
			}
		}
	}

	t.Run("all is the default", func(t *testing.T) {
		got, err := FilterNotes(notes, viewer, "", "")
		if err != nil {
			t.Fatalf("FilterNotes returned error: %v", err)
		}
		assertIDs(t, got, 1, 2, 3, 4)
	})

	t.Run("mine keeps only owned notes", func(t *testing.T) {
		got, err := FilterNotes(notes, viewer, FilterMine, "")
		if err != nil {
			t.Fatalf("FilterNotes returned error: %v", err)
		}
		assertIDs(t, got, 1, 4)
	})

	t.Run("shared keeps only recipient notes", func(t *testing.T) {
		got, err := FilterNotes(notes, viewer, FilterShared, "")
		if err != nil {
			t.Fatalf("FilterNotes returned error: %v", err)
		}
		assertIDs(t, got, 3)
	})

	t.Run("public keeps only public notes", func(t *testing.T) {
		got, err := FilterNotes(notes, viewer, FilterPublic, "")
		if err != nil {
			t.Fatalf("FilterNotes returned error: %v", err)
		}
		assertIDs(t, got, 2, 4)
	})

	t.Run("search matches title and content case-insensitively", func(t *testing.T) {
		got, err := FilterNotes(notes, viewer, FilterAll, "MILK")
		if err != nil {
			t.Fatalf("FilterNotes returned error: %v", err)
		}
		assertIDs(t, got, 1, 3)
	})

	t.Run("search combines with a filter", func(t *testing.T) {
		got, err := FilterNotes(notes, viewer, FilterMine, "milk")
		if err != nil {
			t.Fatalf("FilterNotes returned error: %v", err)
		}
		assertIDs(t, got, 1)
	})

	t.Run("search with no match yields an empty list", func(t *testing.T) {
		got, err := FilterNotes(notes, viewer, "", "no such text")
		if err != nil {
			t.Fatalf("FilterNotes returned error: %v", err)
		}
		assertIDs(t, got)
	})

	t.Run("rejects unknown filter names", func(t *testing.T) {
		if _, err := FilterNotes(notes, viewer, "everything", ""); err == nil {
			t.Fatal("expected error for unknown filter name")
		}
	})
}
