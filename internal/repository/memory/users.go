package memory

import (
	"context"
	"fmt"
	"sync"

	"asset_maintenance/internal/models"
	"asset_maintenance/internal/repository"
)

// Users is an in-memory Authorization store.
type Users struct {
	mu     sync.Mutex
	byName map[string]models.User
	lastID int
}

var _ repository.Authorization = (*Users)(nil)

func NewUsers() *Users {
	return &Users{byName: make(map[string]models.User)}
}

func (u *Users) Create(_ context.Context, username, hash string) (int, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if _, exists := u.byName[username]; exists {
		return 0, fmt.Errorf("insert user %q: username taken", username)
	}
	u.lastID++
	u.byName[username] = models.User{ID: u.lastID, Username: username, PasswordHash: hash}
	return u.lastID, nil
}

// GetByUsername returns (nil, nil) when the user does not exist.
func (u *Users) GetByUsername(_ context.Context, username string) (*models.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	user, ok := u.byName[username]
	if !ok {
		return nil, nil
	}
	return &user, nil
}
