package account

import (
	"context"

	"github.com/stylematch/stylematch-api/internal/audit"
	domain "github.com/stylematch/stylematch-api/internal/domain/account"
	"github.com/stylematch/stylematch-api/internal/models"
	"github.com/stylematch/stylematch-api/internal/session"
)

type DeleteOwnAccount struct {
	repo     domain.Repository
	sessions session.Store
	audit    audit.Recorder
}

func NewDeleteOwnAccount(
	repo domain.Repository,
	sessions session.Store,
	audit audit.Recorder,
) *DeleteOwnAccount {
	return &DeleteOwnAccount{
		repo:     repo,
		sessions: sessions,
		audit:    audit,
	}
}

// Execute tears the account down in dependency order: profile row first,
// then every live session, then the user row itself.
func (uc *DeleteOwnAccount) Execute(
	ctx context.Context,
	user *models.User,
) error {

	if err := uc.repo.DeleteProfileFor(ctx, user); err != nil {
		return err
	}

	if err := uc.sessions.RevokeAll(ctx, user.ID); err != nil {
		return err
	}

	if err := uc.repo.DeleteUser(ctx, user); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "account_deleted",
		Entity:   "user",
		EntityID: &user.ID,
	})

	return nil
}
