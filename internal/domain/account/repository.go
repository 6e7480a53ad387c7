package account

import (
	"context"

	"github.com/stylematch/stylematch-api/internal/models"
)

// Repository is the query surface for the User/Client/Stylist graph. Every
// relation the API exposes is materialized by a named method here, so the
// shape of each response is decided in one place and not by lazy loading.
type Repository interface {
	// -------- User --------
	EmailTaken(
		ctx context.Context,
		email string,
		excludeUserID uint,
	) (bool, error)

	CreateUserWithProfile(
		ctx context.Context,
		user *models.User,
	) error

	FindUserByEmail(
		ctx context.Context,
		email string,
	) (*models.User, error)

	FindUserWithProfile(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	SaveUser(
		ctx context.Context,
		user *models.User,
	) error

	// -------- Client --------
	FindClientByUserID(
		ctx context.Context,
		userID uint,
	) (*models.Client, error)

	FindClientWithUser(
		ctx context.Context,
		id uint,
	) (*models.Client, error)

	ListClientsWithUsers(
		ctx context.Context,
	) ([]models.Client, error)

	ListClientsForStylist(
		ctx context.Context,
		stylistID uint,
	) ([]models.Client, error)

	SaveClient(
		ctx context.Context,
		client *models.Client,
	) error

	// -------- Stylist --------
	StylistExists(
		ctx context.Context,
		id uint,
	) (bool, error)

	FindStylistByUserID(
		ctx context.Context,
		userID uint,
	) (*models.Stylist, error)

	FindStylistWithUser(
		ctx context.Context,
		id uint,
	) (*models.Stylist, error)

	ListStylistsWithUsers(
		ctx context.Context,
	) ([]models.Stylist, error)

	// -------- Transactional (admin) --------
	UpdateClientAccount(
		ctx context.Context,
		user *models.User,
		client *models.Client,
	) error

	UpdateStylistAccount(
		ctx context.Context,
		user *models.User,
	) error

	DeleteClientAccount(
		ctx context.Context,
		client *models.Client,
	) error

	DeleteStylistAccount(
		ctx context.Context,
		stylist *models.Stylist,
	) error

	// -------- Self deletion --------
	DeleteProfileFor(
		ctx context.Context,
		user *models.User,
	) error

	DeleteUser(
		ctx context.Context,
		user *models.User,
	) error
}
