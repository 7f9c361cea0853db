package services

import (
	"github.com/noteshare/backend/internal/models"
	"github.com/noteshare/backend/pkg/logger"
)

// AccessService holds the note access policy. Every method is a pure
// function over its inputs: the service carries no state and is safe to
// call from any number of request handlers concurrently.
//
// The policy is two-tiered. Visibility is the union of {own, public,
// shared}; mutation rights are the union of {own, admin, shared}. A public
// note is visible to every authenticated caller but grants no edit right by
// itself.
type AccessService struct{}

func NewAccessService() *AccessService {
	return &AccessService{}
}

// Decision is the per-note permission breakdown returned by the
// permissions endpoint and attached to denial diagnostics.
type Decision struct {
	IsAdmin          bool `json:"isAdmin"`
	IsOwner          bool `json:"isOwner"`
	IsSharedWithUser bool `json:"isSharedWithUser"`
}

// Granted reports whether any constituent check passed.
func (d Decision) Granted() bool {
	return d.IsAdmin || d.IsOwner || d.IsSharedWithUser
}

// Explain evaluates the three constituent checks of the edit policy.
func (a *AccessService) Explain(user *models.User, note *models.Note) Decision {
	return Decision{
		IsAdmin:          user.IsAdmin(),
		IsOwner:          note.OwnerID == user.ID,
		IsSharedWithUser: note.IsSharedWith(user.Email),
	}
}

// CanEdit reports whether user may edit, delete, or share note: admins,
// the owner, and shared recipients all qualify. The checks are a pure OR;
// order only affects which grant reason gets logged.
func (a *AccessService) CanEdit(user *models.User, note *models.Note) bool {
	if user.IsAdmin() {
		logger.InfoWithUser(logger.UserID(user.ID), "access_granted_admin", map[string]interface{}{
			"note_id": note.ID,
		})
		return true
	}

	if note.OwnerID == user.ID {
		logger.InfoWithUser(logger.UserID(user.ID), "access_granted_owner", map[string]interface{}{
			"note_id": note.ID,
		})
		return true
	}

	if note.IsSharedWith(user.Email) {
		logger.InfoWithUser(logger.UserID(user.ID), "access_granted_shared", map[string]interface{}{
			"note_id":    note.ID,
			"user_email": user.Email,
		})
		return true
	}

	logger.InfoWithUser(logger.UserID(user.ID), "access_denied", map[string]interface{}{
		"note_id":       note.ID,
		"note_owner_id": note.OwnerID,
		"user_email":    user.Email,
		"shared_with":   note.SharedWith,
	})
	return false
}

// CanView reports whether user may see note at all: owners, admins, and
// shared recipients, plus anyone when the note is public.
func (a *AccessService) CanView(user *models.User, note *models.Note) bool {
	if user.IsAdmin() || note.IsPublic {
		return true
	}
	return note.OwnerID == user.ID || note.IsSharedWith(user.Email)
}

// VisibleNotes selects the subset of notes user may list. Admins see
// everything; everyone else sees their own notes, public notes, and notes
// shared with their email.
func (a *AccessService) VisibleNotes(user *models.User, notes []models.Note) []models.Note {
	if user.IsAdmin() {
		return notes
	}

	visible := make([]models.Note, 0, len(notes))
	for i := range notes {
		if a.CanView(user, &notes[i]) {
			visible = append(visible, notes[i])
		}
	}
	return visible
}

// SharedNotes selects the notes whose recipient list contains user's email,
// regardless of visibility by other routes.
func (a *AccessService) SharedNotes(user *models.User, notes []models.Note) []models.Note {
	shared := make([]models.Note, 0)
	for i := range notes {
		if notes[i].IsSharedWith(user.Email) {
			shared = append(shared, notes[i])
		}
	}
	return shared
}

// DenialDetails builds the diagnostic payload attached to 403 responses:
// enough to reconstruct why access was denied, never used for the decision
// itself.
func (a *AccessService) DenialDetails(user *models.User, note *models.Note) map[string]interface{} {
	return map[string]interface{}{
		"user_id":          user.ID,
		"user_email":       user.Email,
		"user_role":        string(user.Role),
		"note_owner_id":    note.OwnerID,
		"note_shared_with": note.SharedWith,
	}
}
