package account

import (
	"context"

	"github.com/stylematch/stylematch-api/internal/audit"
	domain "github.com/stylematch/stylematch-api/internal/domain/account"
	"github.com/stylematch/stylematch-api/internal/httperr"
)

type DeleteStylistAccount struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewDeleteStylistAccount(
	repo domain.Repository,
	audit audit.Recorder,
) *DeleteStylistAccount {
	return &DeleteStylistAccount{
		repo:  repo,
		audit: audit,
	}
}

// Execute removes the stylist row and its owning user in one transaction.
// Clients that had chosen this stylist keep their profile, their stylist_id
// is set to null by the foreign key.
func (uc *DeleteStylistAccount) Execute(
	ctx context.Context,
	adminID uint,
	stylistID uint,
) error {

	stylist, err := uc.repo.FindStylistWithUser(ctx, stylistID)
	if err != nil {
		return httperr.ErrBusiness("stylist_not_found")
	}

	if err := uc.repo.DeleteStylistAccount(ctx, stylist); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "admin_stylist_deleted",
		Entity:   "stylist",
		EntityID: &stylist.ID,
	})

	return nil
}
