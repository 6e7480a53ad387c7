package account

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/stylematch/stylematch-api/internal/audit"
	domain "github.com/stylematch/stylematch-api/internal/domain/account"
	"github.com/stylematch/stylematch-api/internal/httperr"
	"github.com/stylematch/stylematch-api/internal/validators"
)

type UpdateStylistAccountInput struct {
	StylistID uint
	AdminID   uint

	Name     *string
	Email    *string
	Password *string
}

type UpdateStylistAccount struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewUpdateStylistAccount(
	repo domain.Repository,
	audit audit.Recorder,
) *UpdateStylistAccount {
	return &UpdateStylistAccount{
		repo:  repo,
		audit: audit,
	}
}

// Execute updates the stylist's owning user. The stylist row itself has no
// mutable fields yet.
func (uc *UpdateStylistAccount) Execute(
	ctx context.Context,
	in UpdateStylistAccountInput,
) error {

	stylist, err := uc.repo.FindStylistWithUser(ctx, in.StylistID)
	if err != nil {
		return httperr.ErrBusiness("stylist_not_found")
	}

	user := stylist.User
	if user == nil {
		return httperr.ErrBusiness("user_not_found")
	}

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

	if err := uc.repo.UpdateStylistAccount(ctx, user); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.AdminID,
		Action:   "admin_stylist_updated",
		Entity:   "stylist",
		EntityID: &stylist.ID,
	})

	return nil
}
