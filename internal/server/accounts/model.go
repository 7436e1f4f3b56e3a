package accounts

import "time"

// Account is the stored identity record. ID is assigned by the repository on
// creation and never changes; it is the only identity a token binds to.
// PasswordHash is an encoded argon2id hash, never the raw password.
type Account struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// MaxUsernameLength bounds usernames, matching the users table column.
const MaxUsernameLength = 32
