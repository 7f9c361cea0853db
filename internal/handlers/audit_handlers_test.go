package handlers

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/noteshare/backend/internal/models"
	"gorm.io/gorm"
)

func seedAuditRows(t *testing.T, db *gorm.DB, userID uint64, actions ...string) {
	t.Helper()
	for _, action := range actions {
		resourceID := userID
		row := models.AuditLog{
			UserID:       &userID,
			Action:       action,
			ResourceType: "note",
			ResourceID:   &resourceID,
			Details:      map[string]interface{}{"title": "seeded"},
			IPAddress:    "127.0.0.1",
		}
		if err := db.Create(&row).Error; err != nil {
			t.Fatalf("failed seeding audit row: %v", err)
		}
	}
}

func TestExportMyLog(t *testing.T) {
	env := setupTestEnv(t)

	alice, aliceToken := createTestUser(t, env.db, "alice@test.com", "secret1", models.UserRoleUser)
	bob, bobToken := createTestUser(t, env.db, "bob@test.com", "secret1", models.UserRoleUser)

	seedAuditRows(t, env.db, alice.ID, "note.create", "note.share")
	seedAuditRows(t, env.db, bob.ID, "note.delete")

	t.Run("csv contains only own rows", func(t *testing.T) {
		resp := performJSONRequest(t, env.app, http.MethodGet, "/api/audit-log/export", nil, authHeaders(aliceToken))
		assertStatus(t, resp, http.StatusOK)

		if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
			t.Fatalf("unexpected content type %q", ct)
		}

		raw, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			t.Fatalf("failed reading body: %v", err)
		}
		body := string(raw)

		if !strings.Contains(body, "note.create") || !strings.Contains(body, "note.share") {
			t.Fatalf("expected alice's actions in export, got: %s", body)
		}
		if strings.Contains(body, "note.delete") {
			t.Fatal("export must not include another user's rows")
		}
	})

	t.Run("json format", func(t *testing.T) {
		resp := performJSONRequest(t, env.app, http.MethodGet, "/api/audit-log/export?format=json", nil, authHeaders(bobToken))
		assertStatus(t, resp, http.StatusOK)

		body := decodeJSONMap(t, resp)
		rows := dataSlice(t, body)
		if len(rows) != 1 {
			t.Fatalf("expected 1 row, got %d", len(rows))
		}
		if rows[0].(map[string]any)["action"] != "note.delete" {
			t.Fatalf("unexpected row %+v", rows[0])
		}
	})

	t.Run("rejects unknown format", func(t *testing.T) {
		resp := performJSONRequest(t, env.app, http.MethodGet, "/api/audit-log/export?format=xml", nil, authHeaders(aliceToken))
		assertStatus(t, resp, http.StatusBadRequest)
		assertEnvelopeError(t, decodeJSONMap(t, resp), "format must be csv or json")
	})
}
