package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/uptalent/uptalent-server/internal/logger"
	"github.com/uptalent/uptalent-server/internal/model"
)

// TokenManager issues signed identity tokens for talents.
type TokenManager interface {
	Issue(talent model.Talent) (string, error)
}

// Registration is the input for creating a new talent profile.
type Registration struct {
	Firstname string
	Lastname  string
	Email     string
	Password  string
	Skills    []string
}

// Login is the input for authenticating an existing talent.
type Login struct {
	Email    string
	Password string
}

// Edit carries a partial profile update. Nil pointer fields are left
// unchanged; skills are always replaced wholesale and must be non-empty.
type Edit struct {
	Firstname string
	Lastname  string
	Skills    []string
	Birthday  *time.Time
	Location  *string
	AboutMe   *string
}

// Talent implements the profile business operations. Mutations are
// gated on the ownership policy: only the profile owner may edit,
// delete or attach media.
type Talent struct {
	store          model.TalentStore
	hasher         model.Hasher
	tokenManager   TokenManager
	media          model.Storage
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewTalent creates a new Talent service.
func NewTalent(
	store model.TalentStore,
	hasher model.Hasher,
	tokenManager TokenManager,
	media model.Storage,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Talent {
	return &Talent{
		store:          store,
		hasher:         hasher,
		tokenManager:   tokenManager,
		media:          media,
		contextManager: contextManager,
		logger:         logger,
	}
}

// List returns one page of talents ordered newest-first together with
// the total number of pages.
func (s *Talent) List(ctx context.Context, page, size int) ([]model.Talent, int, error) {
	talents, totalPages, err := s.store.List(ctx, page, size)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list talents: %w", err)
	}
	return talents, totalPages, nil
}

// Register creates a new talent profile and returns a signed token for
// it. The email must not already be in use, in any casing.
func (s *Talent) Register(ctx context.Context, reg Registration) (string, error) {
	s.logger.Debug("Talent service: starting registration",
		"email", reg.Email)

	exists, err := s.store.ExistsByEmail(ctx, reg.Email)
	if err != nil {
		return "", fmt.Errorf("failed to check talent existence: %w", err)
	}
	if exists {
		s.logger.Info("Talent service: email already in use",
			"email", reg.Email)
		return "", fmt.Errorf("%w with email [%s]", model.ErrTalentExists, reg.Email)
	}

	skills := dedupeSkills(reg.Skills)
	if len(skills) == 0 {
		return "", model.ErrEmptySkills
	}

	passwordHash, err := s.hasher.Hash(reg.Password)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	saved, err := s.store.Create(ctx, model.Talent{
		Firstname:    reg.Firstname,
		Lastname:     reg.Lastname,
		Email:        reg.Email,
		PasswordHash: passwordHash,
		Skills:       skills,
	})
	if err != nil {
		s.logger.Error("Talent service: failed to create talent",
			"email", reg.Email,
			"error", err.Error())
		return "", fmt.Errorf("failed to create talent: %w", err)
	}

	jwtToken, err := s.tokenManager.Issue(saved)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Info("Talent service: registration completed",
		"email", reg.Email,
		"talent_id", saved.ID)

	return jwtToken, nil
}

// Authenticate verifies credentials and returns a signed token.
func (s *Talent) Authenticate(ctx context.Context, login Login) (string, error) {
	s.logger.Debug("Talent service: starting login",
		"email", login.Email)

	talent, _, err := s.resolveIdentity(ctx, login.Email)
	if err != nil {
		return "", err
	}

	if !s.hasher.Matches(login.Password, talent.PasswordHash) {
		s.logger.Info("Talent service: password mismatch",
			"email", login.Email)
		return "", model.ErrBadCredentials
	}

	jwtToken, err := s.tokenManager.Issue(talent)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Info("Talent service: login completed",
		"email", login.Email,
		"talent_id", talent.ID)

	return jwtToken, nil
}

// Profile returns the talent with the given id and whether the current
// caller owns it. Owners get the extended shape downstream; everyone
// else the public one.
func (s *Talent) Profile(ctx context.Context, id int64) (model.Talent, bool, error) {
	talent, err := s.store.GetByID(ctx, id)
	if err != nil {
		return model.Talent{}, false, err
	}

	return talent, s.isOwner(ctx, talent), nil
}

// Update applies a partial edit to the talent profile. Only the owner
// may edit; skills are replaced wholesale and must stay non-empty.
func (s *Talent) Update(ctx context.Context, id int64, edit Edit) (model.Talent, error) {
	talent, err := s.store.GetByID(ctx, id)
	if err != nil {
		return model.Talent{}, err
	}

	if !s.isOwner(ctx, talent) {
		s.logger.Info("Talent service: edit denied",
			"talent_id", id)
		return model.Talent{}, model.ErrAccessDenied
	}

	skills := dedupeSkills(edit.Skills)
	if len(skills) == 0 {
		return model.Talent{}, model.ErrEmptySkills
	}

	talent.Firstname = edit.Firstname
	talent.Lastname = edit.Lastname
	talent.Skills = skills
	if edit.Birthday != nil {
		talent.Birthday = edit.Birthday
	}
	if edit.Location != nil {
		talent.Location = edit.Location
	}
	if edit.AboutMe != nil {
		talent.AboutMe = edit.AboutMe
	}

	saved, err := s.store.Update(ctx, talent)
	if err != nil {
		s.logger.Error("Talent service: failed to update talent",
			"talent_id", id,
			"error", err.Error())
		return model.Talent{}, fmt.Errorf("failed to update talent: %w", err)
	}

	s.logger.Info("Talent service: profile updated",
		"talent_id", id)

	return saved, nil
}

// Delete removes the talent profile and its stored media. Only the
// owner may delete.
func (s *Talent) Delete(ctx context.Context, id int64) error {
	talent, err := s.store.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !s.isOwner(ctx, talent) {
		s.logger.Info("Talent service: delete denied",
			"talent_id", id)
		return model.ErrAccessDenied
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete talent: %w", err)
	}

	s.removeMedia(ctx, talent.Avatar)
	s.removeMedia(ctx, talent.Banner)

	s.logger.Info("Talent service: profile deleted",
		"talent_id", id)

	return nil
}

// MediaKind selects which profile image an upload replaces.
type MediaKind string

const (
	MediaAvatar MediaKind = "avatar"
	MediaBanner MediaKind = "banner"
)

// UploadMedia stores an avatar or banner image for the talent and
// records its object key on the profile. Only the owner may upload.
func (s *Talent) UploadMedia(ctx context.Context, id int64, kind MediaKind, reader io.Reader, size int64, contentType string) (model.Talent, error) {
	talent, err := s.store.GetByID(ctx, id)
	if err != nil {
		return model.Talent{}, err
	}

	if !s.isOwner(ctx, talent) {
		return model.Talent{}, model.ErrAccessDenied
	}

	key := fmt.Sprintf("%ss/%s", kind, uuid.NewString())
	if err := s.media.Upload(ctx, key, reader, size, contentType); err != nil {
		return model.Talent{}, fmt.Errorf("failed to upload %s: %w", kind, err)
	}

	var previous *string
	switch kind {
	case MediaAvatar:
		previous = talent.Avatar
		talent.Avatar = &key
	case MediaBanner:
		previous = talent.Banner
		talent.Banner = &key
	default:
		return model.Talent{}, fmt.Errorf("unknown media kind %q", kind)
	}

	saved, err := s.store.Update(ctx, talent)
	if err != nil {
		return model.Talent{}, fmt.Errorf("failed to save %s reference: %w", kind, err)
	}

	s.removeMedia(ctx, previous)

	s.logger.Info("Talent service: media uploaded",
		"talent_id", id,
		"kind", string(kind),
		"key", key)

	return saved, nil
}

// OpenMedia streams a stored media object by key.
func (s *Talent) OpenMedia(ctx context.Context, key string) (io.ReadCloser, string, error) {
	return s.media.Download(ctx, key)
}

// isOwner evaluates the ownership policy for the current caller.
// An anonymous caller owns nothing.
func (s *Talent) isOwner(ctx context.Context, talent model.Talent) bool {
	principal, ok := s.contextManager.GetPrincipal(ctx)
	if !ok {
		return false
	}
	return principal.Owns(talent.Email)
}

// removeMedia deletes a stored object, logging instead of failing the
// surrounding operation.
func (s *Talent) removeMedia(ctx context.Context, key *string) {
	if key == nil || *key == "" {
		return
	}
	if err := s.media.Delete(ctx, *key); err != nil {
		s.logger.Error("Talent service: failed to remove media object",
			"key", *key,
			"error", err.Error())
	}
}

// dedupeSkills drops blank and repeated entries, keeping first-seen order.
func dedupeSkills(skills []string) []string {
	seen := make(map[string]struct{}, len(skills))
	out := make([]string, 0, len(skills))
	for _, skill := range skills {
		if skill == "" {
			continue
		}
		if _, ok := seen[skill]; ok {
			continue
		}
		seen[skill] = struct{}{}
		out = append(out, skill)
	}
	return out
}
