package accounts

import (
	"context"
)

// Repository is the persistence boundary for accounts. Implementations must
// enforce username uniqueness atomically on Create and Update: a race
// between two inserts of the same username yields exactly one success and
// one common.ErrorAlreadyExists.
//
// Missing rows surface as common.ErrorNotFound.
type Repository interface {
	Create(ctx context.Context, account *Account) (*Account, error)
	GetByUsername(ctx context.Context, username string) (*Account, error)
	GetByID(ctx context.Context, id int64) (*Account, error)
	Update(ctx context.Context, id int64, username, passwordHash string) (*Account, error)
	Delete(ctx context.Context, id int64) error
}
