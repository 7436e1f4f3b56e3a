// Package password implements credential hashing, verification and the
// password strength policy. Hashes are argon2id in the standard encoded
// form, so every hash carries its own salt and parameters:
//
//	$argon2id$v=19$m=<mem>,t=<iter>,p=<par>$<salt_b64>$<key_b64>
package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

const (
	saltLength  = 16
	keyLength   = 32
	memoryKiB   = 64 * 1024
	iterations  = 1
	parallelism = 4

	// Bounds accepted when re-deriving from a stored hash. Hash strings are
	// trusted data, but refusing pathological parameters keeps a corrupted
	// row from burning the whole process.
	maxMemoryKiB  = 2 * memoryKiB
	maxIterations = 8

	// MinPasswordLength and MaxPasswordLength bound the strength policy.
	// The upper bound is a hardening choice: argon2 input is unbounded, but
	// accepting arbitrarily long passwords is a cheap denial-of-service.
	MinPasswordLength = 8
	MaxPasswordLength = 256
)

// Hash derives an argon2id key from the password with a fresh random salt
// and returns the encoded hash string. The raw password is never stored.
func Hash(password string) (string, error) {

	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("error generating salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, iterations, memoryKiB, parallelism, keyLength)

	b64 := base64.RawStdEncoding
	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, memoryKiB, iterations, parallelism,
		b64.EncodeToString(salt), b64.EncodeToString(key))

	return encoded, nil
}

// Verify re-derives the key using the parameters embedded in encodedHash and
// compares it to the stored key in constant time. Any malformed or
// unsupported hash yields false, never an error.
func Verify(password string, encodedHash string) bool {

	memory, time, threads, salt, expected, ok := decode(encodedHash)
	if !ok {
		return false
	}

	key := argon2.IDKey([]byte(password), salt, time, memory, threads, uint32(len(expected)))

	return subtle.ConstantTimeCompare(key, expected) == 1
}

// ValidateStrength reports whether the password satisfies the policy:
// 8–256 characters with at least one ASCII uppercase letter, one lowercase
// letter and one decimal digit. Pure function, no side effects.
func ValidateStrength(password string) bool {

	if len(password) < MinPasswordLength || len(password) > MaxPasswordLength {
		return false
	}

	var hasUpper, hasLower, hasDigit bool
	for i := 0; i < len(password); i++ {
		c := password[i]
		switch {
		case c >= 'A' && c <= 'Z':
			hasUpper = true
		case c >= 'a' && c <= 'z':
			hasLower = true
		case c >= '0' && c <= '9':
			hasDigit = true
		}
	}

	return hasUpper && hasLower && hasDigit
}

func decode(encoded string) (memory uint32, time uint32, threads uint8, salt, key []byte, ok bool) {

	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return 0, 0, 0, nil, nil, false
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return 0, 0, 0, nil, nil, false
	}

	var par uint32
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &par); err != nil {
		return 0, 0, 0, nil, nil, false
	}
	if memory == 0 || memory > maxMemoryKiB || time == 0 || time > maxIterations || par == 0 || par > 255 {
		return 0, 0, 0, nil, nil, false
	}

	b64 := base64.RawStdEncoding
	salt, err := b64.DecodeString(parts[4])
	if err != nil || len(salt) < 8 || len(salt) > 64 {
		return 0, 0, 0, nil, nil, false
	}
	key, err = b64.DecodeString(parts[5])
	if err != nil || len(key) < 16 || len(key) > 128 {
		return 0, 0, 0, nil, nil, false
	}

	return memory, time, uint8(par), salt, key, true
}
