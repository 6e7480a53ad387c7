package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/stylematch/stylematch-api/internal/domain/account"
	"github.com/stylematch/stylematch-api/internal/models"
)

type AccountGormRepository struct {
	db *gorm.DB
}

func NewAccountGormRepository(db *gorm.DB) *AccountGormRepository {
	return &AccountGormRepository{db: db}
}

// --------------------------------------------------
// User
// --------------------------------------------------

func (r *AccountGormRepository) EmailTaken(
	ctx context.Context,
	email string,
	excludeUserID uint,
) (bool, error) {

	q := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("email = ?", email)

	if excludeUserID != 0 {
		q = q.Where("id <> ?", excludeUserID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// CreateUserWithProfile inserts the user and whichever profile row is hung
// off it in one transaction (gorm creates associations with the parent).
func (r *AccountGormRepository) CreateUserWithProfile(
	ctx context.Context,
	user *models.User,
) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *AccountGormRepository) FindUserByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindUserWithProfile materializes the role-appropriate nesting: a client's
// chosen stylist down to its user, a stylist's clients down to their users.
func (r *AccountGormRepository) FindUserWithProfile(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}

	switch user.Role {
	case models.RoleClient:
		if err := r.db.WithContext(ctx).
			Preload("Client.Stylist.User").
			First(&user, id).Error; err != nil {
			return nil, err
		}
	case models.RoleStylist:
		if err := r.db.WithContext(ctx).
			Preload("Stylist.Clients.User").
			First(&user, id).Error; err != nil {
			return nil, err
		}
	case models.RoleAdmin:
		// admins own no profile row
	}

	return &user, nil
}

func (r *AccountGormRepository) SaveUser(
	ctx context.Context,
	user *models.User,
) error {
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Save(user).Error
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *AccountGormRepository) FindClientByUserID(
	ctx context.Context,
	userID uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *AccountGormRepository) FindClientWithUser(
	ctx context.Context,
	id uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).
		Preload("User").
		First(&client, id).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *AccountGormRepository) ListClientsWithUsers(
	ctx context.Context,
) ([]models.Client, error) {

	var clients []models.Client
	if err := r.db.WithContext(ctx).
		Preload("User").
		Order("created_at DESC").
		Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *AccountGormRepository) ListClientsForStylist(
	ctx context.Context,
	stylistID uint,
) ([]models.Client, error) {

	var clients []models.Client
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("stylist_id = ?", stylistID).
		Order("created_at DESC").
		Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *AccountGormRepository) SaveClient(
	ctx context.Context,
	client *models.Client,
) error {
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Save(client).Error
}

// --------------------------------------------------
// Stylist
// --------------------------------------------------

func (r *AccountGormRepository) StylistExists(
	ctx context.Context,
	id uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Stylist{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *AccountGormRepository) FindStylistByUserID(
	ctx context.Context,
	userID uint,
) (*models.Stylist, error) {

	var stylist models.Stylist
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&stylist).Error; err != nil {
		return nil, err
	}
	return &stylist, nil
}

func (r *AccountGormRepository) FindStylistWithUser(
	ctx context.Context,
	id uint,
) (*models.Stylist, error) {

	var stylist models.Stylist
	if err := r.db.WithContext(ctx).
		Preload("User").
		First(&stylist, id).Error; err != nil {
		return nil, err
	}
	return &stylist, nil
}

func (r *AccountGormRepository) ListStylistsWithUsers(
	ctx context.Context,
) ([]models.Stylist, error) {

	var stylists []models.Stylist
	if err := r.db.WithContext(ctx).
		Preload("User").
		Order("created_at DESC").
		Find(&stylists).Error; err != nil {
		return nil, err
	}
	return stylists, nil
}

// --------------------------------------------------
// Transactional (admin)
// --------------------------------------------------

func (r *AccountGormRepository) UpdateClientAccount(
	ctx context.Context,
	user *models.User,
	client *models.Client,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(user).Error; err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Save(client).Error
	})
}

func (r *AccountGormRepository) UpdateStylistAccount(
	ctx context.Context,
	user *models.User,
) error {

	// Stylist rows have no mutable fields yet, only the owning user changes.
	// Kept transactional so the contract holds once stylist fields exist.
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Save(user).Error
	})
}

func (r *AccountGormRepository) DeleteClientAccount(
	ctx context.Context,
	client *models.Client,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Client{}, client.ID).Error; err != nil {
			return err
		}

		// Deleting an absent owner affects zero rows and is not an error:
		// an orphaned profile must still be removable.
		if client.UserID != 0 {
			if err := tx.Delete(&models.User{}, client.UserID).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *AccountGormRepository) DeleteStylistAccount(
	ctx context.Context,
	stylist *models.Stylist,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Stylist{}, stylist.ID).Error; err != nil {
			return err
		}

		if stylist.UserID != 0 {
			if err := tx.Delete(&models.User{}, stylist.UserID).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// --------------------------------------------------
// Self deletion
// --------------------------------------------------

func (r *AccountGormRepository) DeleteProfileFor(
	ctx context.Context,
	user *models.User,
) error {

	switch user.Role {
	case models.RoleClient:
		return r.db.WithContext(ctx).
			Where("user_id = ?", user.ID).
			Delete(&models.Client{}).Error
	case models.RoleStylist:
		return r.db.WithContext(ctx).
			Where("user_id = ?", user.ID).
			Delete(&models.Stylist{}).Error
	case models.RoleAdmin:
		return nil
	}
	return nil
}

func (r *AccountGormRepository) DeleteUser(
	ctx context.Context,
	user *models.User,
) error {
	return r.db.WithContext(ctx).Delete(&models.User{}, user.ID).Error
}

// Compile-time check
var _ domain.Repository = (*AccountGormRepository)(nil)
