package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/uptalent/uptalent-server/internal/model"
)

// resolveIdentity maps an email to the stored talent and the principal
// it would authenticate as. Used at login time only; authenticated
// requests trust the token claims instead of re-querying storage.
func (s *Talent) resolveIdentity(ctx context.Context, email string) (model.Talent, model.Principal, error) {
	talent, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			s.logger.Info("Talent service: identity not found",
				"email", email)
			return model.Talent{}, model.Principal{}, fmt.Errorf("%w by email [%s]", model.ErrNotFound, email)
		}
		return model.Talent{}, model.Principal{}, fmt.Errorf("failed to get talent by email: %w", err)
	}

	principal := model.Principal{
		Email: talent.Email,
		Role:  model.RoleTalent,
	}

	return talent, principal, nil
}
