package accounts

import (
	"context"
	"sync"
	"time"

	"github.com/malusolero/login-service/internal/common"
)

// InMemoryRepository is a mutex-guarded Repository used in tests and local
// runs without a database. The single lock makes the uniqueness
// check-and-insert atomic, matching the guarantee the postgres
// implementation gets from its unique constraint.
type InMemoryRepository struct {
	mu           sync.Mutex
	nextID       int64
	byID         map[int64]Account
	idByUsername map[string]int64
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		byID:         make(map[int64]Account),
		idByUsername: make(map[string]int64),
	}
}

func (r *InMemoryRepository) Create(ctx context.Context, account *Account) (*Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.idByUsername[account.Username]; ok {
		return nil, common.ErrorAlreadyExists
	}

	r.nextID++
	stored := Account{
		ID:           r.nextID,
		Username:     account.Username,
		PasswordHash: account.PasswordHash,
		CreatedAt:    time.Now(),
	}
	r.byID[stored.ID] = stored
	r.idByUsername[stored.Username] = stored.ID

	out := stored
	return &out, nil
}

func (r *InMemoryRepository) GetByUsername(ctx context.Context, username string) (*Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.idByUsername[username]
	if !ok {
		return nil, common.ErrorNotFound
	}

	out := r.byID[id]
	return &out, nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id int64) (*Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}

	out := stored
	return &out, nil
}

func (r *InMemoryRepository) Update(ctx context.Context, id int64, username, passwordHash string) (*Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}

	if other, taken := r.idByUsername[username]; taken && other != id {
		return nil, common.ErrorAlreadyExists
	}

	delete(r.idByUsername, stored.Username)
	stored.Username = username
	stored.PasswordHash = passwordHash
	r.byID[id] = stored
	r.idByUsername[username] = id

	out := stored
	return &out, nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byID[id]
	if !ok {
		return common.ErrorNotFound
	}

	delete(r.byID, id)
	delete(r.idByUsername, stored.Username)
	return nil
}
