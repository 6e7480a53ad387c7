package account

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/stylematch/stylematch-api/internal/audit"
	domain "github.com/stylematch/stylematch-api/internal/domain/account"
	"github.com/stylematch/stylematch-api/internal/httperr"
	"github.com/stylematch/stylematch-api/internal/models"
	"github.com/stylematch/stylematch-api/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type UpdateClientAccountInput struct {
	ClientID uint
	AdminID  uint

	// User fields; nil means "not sent", so partial updates never clear
	// anything.
	Name     *string
	Email    *string
	Password *string

	// Client profile fields
	Country          *string
	City             *string
	BodyType         *string
	Colors           *models.ColorList
	MessageToStylist *string
}

// ======================================================
// USE CASE
// ======================================================

type UpdateClientAccount struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewUpdateClientAccount(
	repo domain.Repository,
	audit audit.Recorder,
) *UpdateClientAccount {
	return &UpdateClientAccount{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *UpdateClientAccount) Execute(
	ctx context.Context,
	in UpdateClientAccountInput,
) error {

	client, err := uc.repo.FindClientWithUser(ctx, in.ClientID)
	if err != nil {
		return httperr.ErrBusiness("client_not_found")
	}

	user := client.User
	if user == nil {
		return httperr.ErrBusiness("user_not_found")
	}

	// --------------------------------------------------
	// User fields
	// --------------------------------------------------
	if in.Name != nil {
		user.Name = *in.Name
	}

	if in.Email != nil {
		email := validators.NormalizeEmail(*in.Email)
		taken, err := uc.repo.EmailTaken(ctx, email, user.ID)
		if err != nil {
			return err
		}
		if taken {
			return httperr.ErrBusiness("email_taken")
		}
		user.Email = email
	}

	if in.Password != nil && *in.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user.PasswordHash = string(hashed)
	}

	// --------------------------------------------------
	// Client profile fields
	// --------------------------------------------------
	if in.Country != nil {
		client.Country = *in.Country
	}
	if in.City != nil {
		client.City = *in.City
	}
	if in.BodyType != nil {
		client.BodyType = *in.BodyType
	}
	if in.Colors != nil {
		client.Colors = *in.Colors
	}
	if in.MessageToStylist != nil {
		client.MessageToStylist = *in.MessageToStylist
	}

	// --------------------------------------------------
	// Both rows in one transaction
	// --------------------------------------------------
	client.User = nil
	if err := uc.repo.UpdateClientAccount(ctx, user, client); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.AdminID,
		Action:   "admin_client_updated",
		Entity:   "client",
		EntityID: &client.ID,
	})

	return nil
}
