package session

import "context"

// Store tracks which issued tokens are still live. A JWT alone cannot be
// revoked, so every token carries a session id that must still exist here:
// logout kills one session, account deletion kills them all.
type Store interface {
	Create(ctx context.Context, userID uint) (string, error)
	Exists(ctx context.Context, userID uint, sessionID string) (bool, error)
	Revoke(ctx context.Context, userID uint, sessionID string) error
	RevokeAll(ctx context.Context, userID uint) error
}
