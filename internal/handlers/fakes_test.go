package handlers_test

import (
	"context"

	"gorm.io/gorm"

	"github.com/stylematch/stylematch-api/internal/audit"
	"github.com/stylematch/stylematch-api/internal/models"
)

// fakeRepo implements domain/account.Repository with overridable behavior.
// Unset methods answer "not found" so tests only wire what they exercise.
type fakeRepo struct {
	emailTakenFn            func(email string, excludeUserID uint) (bool, error)
	createUserWithProfileFn func(user *models.User) error
	findUserByEmailFn       func(email string) (*models.User, error)
	findUserWithProfileFn   func(id uint) (*models.User, error)
	saveUserFn              func(user *models.User) error

	findClientByUserIDFn   func(userID uint) (*models.Client, error)
	findClientWithUserFn   func(id uint) (*models.Client, error)
	listClientsWithUsersFn func() ([]models.Client, error)
	listClientsForStylistFn func(stylistID uint) ([]models.Client, error)
	saveClientFn           func(client *models.Client) error

	stylistExistsFn        func(id uint) (bool, error)
	findStylistByUserIDFn  func(userID uint) (*models.Stylist, error)
	findStylistWithUserFn  func(id uint) (*models.Stylist, error)
	listStylistsWithUsersFn func() ([]models.Stylist, error)

	updateClientAccountFn  func(user *models.User, client *models.Client) error
	updateStylistAccountFn func(user *models.User) error
	deleteClientAccountFn  func(client *models.Client) error
	deleteStylistAccountFn func(stylist *models.Stylist) error
	deleteProfileForFn     func(user *models.User) error
	deleteUserFn           func(user *models.User) error
}

func (f *fakeRepo) EmailTaken(_ context.Context, email string, excludeUserID uint) (bool, error) {
	if f.emailTakenFn != nil {
		return f.emailTakenFn(email, excludeUserID)
	}
	return false, nil
}

func (f *fakeRepo) CreateUserWithProfile(_ context.Context, user *models.User) error {
	if f.createUserWithProfileFn != nil {
		return f.createUserWithProfileFn(user)
	}
	return nil
}

func (f *fakeRepo) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	if f.findUserByEmailFn != nil {
		return f.findUserByEmailFn(email)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) FindUserWithProfile(_ context.Context, id uint) (*models.User, error) {
	if f.findUserWithProfileFn != nil {
		return f.findUserWithProfileFn(id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) SaveUser(_ context.Context, user *models.User) error {
	if f.saveUserFn != nil {
		return f.saveUserFn(user)
	}
	return nil
}

func (f *fakeRepo) FindClientByUserID(_ context.Context, userID uint) (*models.Client, error) {
	if f.findClientByUserIDFn != nil {
		return f.findClientByUserIDFn(userID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) FindClientWithUser(_ context.Context, id uint) (*models.Client, error) {
	if f.findClientWithUserFn != nil {
		return f.findClientWithUserFn(id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) ListClientsWithUsers(_ context.Context) ([]models.Client, error) {
	if f.listClientsWithUsersFn != nil {
		return f.listClientsWithUsersFn()
	}
	return nil, nil
}

func (f *fakeRepo) ListClientsForStylist(_ context.Context, stylistID uint) ([]models.Client, error) {
	if f.listClientsForStylistFn != nil {
		return f.listClientsForStylistFn(stylistID)
	}
	return nil, nil
}

func (f *fakeRepo) SaveClient(_ context.Context, client *models.Client) error {
	if f.saveClientFn != nil {
		return f.saveClientFn(client)
	}
	return nil
}

func (f *fakeRepo) StylistExists(_ context.Context, id uint) (bool, error) {
	if f.stylistExistsFn != nil {
		return f.stylistExistsFn(id)
	}
	return false, nil
}

func (f *fakeRepo) FindStylistByUserID(_ context.Context, userID uint) (*models.Stylist, error) {
	if f.findStylistByUserIDFn != nil {
		return f.findStylistByUserIDFn(userID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) FindStylistWithUser(_ context.Context, id uint) (*models.Stylist, error) {
	if f.findStylistWithUserFn != nil {
		return f.findStylistWithUserFn(id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) ListStylistsWithUsers(_ context.Context) ([]models.Stylist, error) {
	if f.listStylistsWithUsersFn != nil {
		return f.listStylistsWithUsersFn()
	}
	return nil, nil
}

func (f *fakeRepo) UpdateClientAccount(_ context.Context, user *models.User, client *models.Client) error {
	if f.updateClientAccountFn != nil {
		return f.updateClientAccountFn(user, client)
	}
	return nil
}

func (f *fakeRepo) UpdateStylistAccount(_ context.Context, user *models.User) error {
	if f.updateStylistAccountFn != nil {
		return f.updateStylistAccountFn(user)
	}
	return nil
}

func (f *fakeRepo) DeleteClientAccount(_ context.Context, client *models.Client) error {
	if f.deleteClientAccountFn != nil {
		return f.deleteClientAccountFn(client)
	}
	return nil
}

func (f *fakeRepo) DeleteStylistAccount(_ context.Context, stylist *models.Stylist) error {
	if f.deleteStylistAccountFn != nil {
		return f.deleteStylistAccountFn(stylist)
	}
	return nil
}

func (f *fakeRepo) DeleteProfileFor(_ context.Context, user *models.User) error {
	if f.deleteProfileForFn != nil {
		return f.deleteProfileForFn(user)
	}
	return nil
}

func (f *fakeRepo) DeleteUser(_ context.Context, user *models.User) error {
	if f.deleteUserFn != nil {
		return f.deleteUserFn(user)
	}
	return nil
}

// fakeSessions is an in-memory session.Store.
type fakeSessions struct {
	next    int
	live    map[string]uint
	revoked []string
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{live: map[string]uint{}}
}

func (f *fakeSessions) Create(_ context.Context, userID uint) (string, error) {
	f.next++
	sid := string(rune('a' + f.next))
	f.live[sid] = userID
	return sid, nil
}

func (f *fakeSessions) Exists(_ context.Context, userID uint, sessionID string) (bool, error) {
	uid, ok := f.live[sessionID]
	return ok && uid == userID, nil
}

func (f *fakeSessions) Revoke(_ context.Context, _ uint, sessionID string) error {
	delete(f.live, sessionID)
	f.revoked = append(f.revoked, sessionID)
	return nil
}

func (f *fakeSessions) RevokeAll(_ context.Context, userID uint) error {
	for sid, uid := range f.live {
		if uid == userID {
			delete(f.live, sid)
			f.revoked = append(f.revoked, sid)
		}
	}
	return nil
}

// fakeAudit records dispatched events.
type fakeAudit struct {
	events []audit.Event
}

func (f *fakeAudit) Dispatch(ev audit.Event) {
	f.events = append(f.events, ev)
}
