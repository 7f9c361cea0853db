package handlers

import (
	"net/mail"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/noteshare/backend/internal/middleware"
	"github.com/noteshare/backend/internal/models"
	"github.com/noteshare/backend/internal/services"
	"github.com/noteshare/backend/pkg/logger"
	"github.com/noteshare/backend/pkg/utils"
	"gorm.io/gorm"
)

type NotesHandler struct {
	DB     *gorm.DB
	Access *services.AccessService
	Audit  *services.AuditService
}

func NewNotesHandler(db *gorm.DB, access *services.AccessService, audit *services.AuditService) *NotesHandler {
	return &NotesHandler{DB: db, Access: access, Audit: audit}
}

// List returns the notes visible to the caller: everything for admins,
// own ∪ public ∪ shared-with-me for everyone else.
func (h *NotesHandler) List(c *fiber.Ctx) error {
	currentUser := middleware.GetCurrentUser(c)
	if currentUser == nil {
		return utils.Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var notes []models.Note
	if err := h.DB.Preload("Owner").Order("created_at DESC").Find(&notes).Error; err != nil {
		return utils.Error(c, fiber.StatusInternalServerError, "failed listing notes")
	}

	return utils.Success(c, fiber.StatusOK, h.Access.VisibleNotes(currentUser, notes))
}

type createNoteRequest struct {
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	IsPublic   *bool    `json:"isPublic"`
	SharedWith []string `json:"sharedWith"`
}

func (h *NotesHandler) Create(c *fiber.Ctx) error {
	currentUser := middleware.GetCurrentUser(c)
	if currentUser == nil {
		return utils.Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var req createNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	if strings.TrimSpace(req.Title) == "" {
		return utils.Error(c, fiber.StatusUnprocessableEntity, "title is required")
	}
	if strings.TrimSpace(req.Content) == "" {
		return utils.Error(c, fiber.StatusUnprocessableEntity, "content is required")
	}

	note := models.Note{
		OwnerID:    currentUser.ID,
		Title:      req.Title,
		Content:    req.Content,
		SharedWith: normalizeRecipients(req.SharedWith),
	}
	if req.IsPublic != nil {
		note.IsPublic = *req.IsPublic
	}

	if err := h.DB.Create(&note).Error; err != nil {
		return utils.Error(c, fiber.StatusInternalServerError, "failed creating note")
	}
	note.Owner = *currentUser

	logger.InfoWithUser(logger.UserID(currentUser.ID), "note_created", map[string]interface{}{
		"note_id":   note.ID,
		"is_public": note.IsPublic,
	})

	h.Audit.LogAsync(services.AuditEntry{
		UserID:       &currentUser.ID,
		Action:       "note.create",
		ResourceType: "note",
		ResourceID:   &note.ID,
		Details: map[string]interface{}{
			"title":     note.Title,
			"is_public": note.IsPublic,
		},
		IPAddress: c.IP(),
		RequestID: getRequestID(c),
	})

	return utils.Success(c, fiber.StatusCreated, note)
}

type updateNoteRequest struct {
	Title      *string   `json:"title"`
	Content    *string   `json:"content"`
	IsPublic   *bool     `json:"isPublic"`
	SharedWith *[]string `json:"sharedWith"`
}

func (h *NotesHandler) Update(c *fiber.Ctx) error {
	currentUser := middleware.GetCurrentUser(c)
	if currentUser == nil {
		return utils.Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	note, errResp := h.loadNote(c)
	if note == nil {
		return errResp
	}

	if !h.Access.CanEdit(currentUser, note) {
		return utils.ErrorWithDetails(c, fiber.StatusForbidden,
			"not authorized: only the owner, an admin, or a shared recipient may edit this note",
			h.Access.DenialDetails(currentUser, note))
	}

	var req updateNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return utils.Error(c, fiber.StatusUnprocessableEntity, "title is required")
	}
	if req.Content != nil && strings.TrimSpace(*req.Content) == "" {
		return utils.Error(c, fiber.StatusUnprocessableEntity, "content is required")
	}

	if req.Title != nil {
		note.Title = *req.Title
	}
	if req.Content != nil {
		note.Content = *req.Content
	}
	if req.IsPublic != nil {
		note.IsPublic = *req.IsPublic
	}
	if req.SharedWith != nil {
		note.SharedWith = normalizeRecipients(*req.SharedWith)
	}

	if err := h.DB.Save(note).Error; err != nil {
		return utils.Error(c, fiber.StatusInternalServerError, "failed updating note")
	}

	h.Audit.LogAsync(services.AuditEntry{
		UserID:       &currentUser.ID,
		Action:       "note.update",
		ResourceType: "note",
		ResourceID:   &note.ID,
		Details: map[string]interface{}{
			"title": note.Title,
		},
		IPAddress: c.IP(),
		RequestID: getRequestID(c),
	})

	return utils.Success(c, fiber.StatusOK, note)
}

func (h *NotesHandler) Delete(c *fiber.Ctx) error {
	currentUser := middleware.GetCurrentUser(c)
	if currentUser == nil {
		return utils.Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	note, errResp := h.loadNote(c)
	if note == nil {
		return errResp
	}

	if !h.Access.CanEdit(currentUser, note) {
		return utils.ErrorWithDetails(c, fiber.StatusForbidden,
			"not authorized: only the owner, an admin, or a shared recipient may delete this note",
			h.Access.DenialDetails(currentUser, note))
	}

	if err := h.DB.Delete(&models.Note{}, note.ID).Error; err != nil {
		return utils.Error(c, fiber.StatusInternalServerError, "failed deleting note")
	}

	logger.InfoWithUser(logger.UserID(currentUser.ID), "note_deleted", map[string]interface{}{
		"note_id": note.ID,
	})

	h.Audit.LogAsync(services.AuditEntry{
		UserID:       &currentUser.ID,
		Action:       "note.delete",
		ResourceType: "note",
		ResourceID:   &note.ID,
		Details: map[string]interface{}{
			"title": note.Title,
		},
		IPAddress: c.IP(),
		RequestID: getRequestID(c),
	})

	return utils.Success(c, fiber.StatusOK, fiber.Map{"message": "note deleted"})
}

type shareNoteRequest struct {
	Email string `json:"email"`
}

// Share appends an email to the note's recipient list. Sharing requires
// the same right as editing; the append is idempotent, so sharing with an
// address already on the list succeeds without changing anything.
func (h *NotesHandler) Share(c *fiber.Ctx) error {
	currentUser := middleware.GetCurrentUser(c)
	if currentUser == nil {
		return utils.Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	note, errResp := h.loadNote(c)
	if note == nil {
		return errResp
	}

	if !h.Access.CanEdit(currentUser, note) {
		return utils.ErrorWithDetails(c, fiber.StatusForbidden,
			"not authorized: only the owner, an admin, or a shared recipient may share this note",
			h.Access.DenialDetails(currentUser, note))
	}

	var req shareNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		return utils.Error(c, fiber.StatusUnprocessableEntity, "email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return utils.Error(c, fiber.StatusUnprocessableEntity, "invalid email")
	}

	// The recipient email is never resolved against the users table:
	// sharing with an unregistered address is allowed.
	if note.AddRecipient(email) {
		if err := h.DB.Save(note).Error; err != nil {
			return utils.Error(c, fiber.StatusInternalServerError, "failed sharing note")
		}
	}

	logger.InfoWithUser(logger.UserID(currentUser.ID), "note_shared", map[string]interface{}{
		"note_id":   note.ID,
		"recipient": email,
	})

	h.Audit.LogAsync(services.AuditEntry{
		UserID:       &currentUser.ID,
		Action:       "note.share",
		ResourceType: "note",
		ResourceID:   &note.ID,
		Details: map[string]interface{}{
			"recipient": email,
		},
		IPAddress: c.IP(),
		RequestID: getRequestID(c),
	})

	return utils.Success(c, fiber.StatusOK, fiber.Map{"message": "note shared with " + email})
}

// Permissions reports the computed edit decision and its three constituent
// checks. Diagnostic only; enforcement happens on the mutating routes.
func (h *NotesHandler) Permissions(c *fiber.Ctx) error {
	currentUser := middleware.GetCurrentUser(c)
	if currentUser == nil {
		return utils.Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	note, errResp := h.loadNote(c)
	if note == nil {
		return errResp
	}

	decision := h.Access.Explain(currentUser, note)

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"noteID":           note.ID,
		"noteTitle":        note.Title,
		"noteOwnerID":      note.OwnerID,
		"noteSharedWith":   note.SharedWith,
		"currentUserID":    currentUser.ID,
		"currentUserEmail": currentUser.Email,
		"currentUserRole":  currentUser.Role,
		"canEdit":          decision.Granted(),
		"permissions":      decision,
	})
}

// SharedWithMe returns the notes whose recipient list contains the
// caller's email, regardless of who owns them or whether they are public.
func (h *NotesHandler) SharedWithMe(c *fiber.Ctx) error {
	currentUser := middleware.GetCurrentUser(c)
	if currentUser == nil {
		return utils.Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var notes []models.Note
	if err := h.DB.Preload("Owner").Order("created_at DESC").Find(&notes).Error; err != nil {
		return utils.Error(c, fiber.StatusInternalServerError, "failed listing notes")
	}

	return utils.Success(c, fiber.StatusOK, h.Access.SharedNotes(currentUser, notes))
}

// loadNote parses the :id path segment and fetches the row. On failure it
// has already written the response and returns (nil, response error).
func (h *NotesHandler) loadNote(c *fiber.Ctx) (*models.Note, error) {
	noteID, err := parseResourceID(c.Params("id"))
	if err != nil {
		return nil, respondResourceIDError(c, err, "note")
	}

	var note models.Note
	if err := h.DB.Preload("Owner").First(&note, "id = ?", noteID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, utils.Error(c, fiber.StatusNotFound, "note not found")
		}
		return nil, utils.Error(c, fiber.StatusInternalServerError, "failed loading note")
	}
	return &note, nil
}

// normalizeRecipients trims, drops empties, and deduplicates while
// preserving first-seen order.
func normalizeRecipients(emails []string) []string {
	seen := make(map[string]bool, len(emails))
	result := make([]string, 0, len(emails))
	for _, email := range emails {
		email = strings.TrimSpace(email)
		if email == "" || seen[email] {
			continue
		}
		seen[email] = true
		result = append(result, email)
	}
	return result
}
