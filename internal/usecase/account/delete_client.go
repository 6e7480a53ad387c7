package account

import (
	"context"

	"github.com/stylematch/stylematch-api/internal/audit"
	domain "github.com/stylematch/stylematch-api/internal/domain/account"
	"github.com/stylematch/stylematch-api/internal/httperr"
)

type DeleteClientAccount struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewDeleteClientAccount(
	repo domain.Repository,
	audit audit.Recorder,
) *DeleteClientAccount {
	return &DeleteClientAccount{
		repo:  repo,
		audit: audit,
	}
}

// Execute removes the client row and its owning user in one transaction. A
// client whose owning user is already gone is still deleted.
func (uc *DeleteClientAccount) Execute(
	ctx context.Context,
	adminID uint,
	clientID uint,
) error {

	client, err := uc.repo.FindClientWithUser(ctx, clientID)
	if err != nil {
		return httperr.ErrBusiness("client_not_found")
	}

	if err := uc.repo.DeleteClientAccount(ctx, client); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "admin_client_deleted",
		Entity:   "client",
		EntityID: &client.ID,
	})

	return nil
}
