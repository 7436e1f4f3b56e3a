package password

import (
	"strings"
	"testing"
)

func TestHashAndVerify_Success(t *testing.T) {
	t.Parallel()

	hash, err := Hash("Secret123")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	if !strings.HasPrefix(hash, "$argon2id$") {
		t.Fatalf("unexpected hash format: %q", hash)
	}
	if strings.Contains(hash, "Secret123") {
		t.Fatalf("hash must not contain the raw password: %q", hash)
	}

	if !Verify("Secret123", hash) {
		t.Fatalf("Verify must accept the original password")
	}
}

func TestVerify_WrongPassword(t *testing.T) {
	t.Parallel()

	hash, err := Hash("Secret123")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	if Verify("Secret124", hash) {
		t.Fatalf("Verify must reject a different password")
	}
}

func TestHash_SaltedPerCall(t *testing.T) {
	t.Parallel()

	h1, err := Hash("Secret123")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	h2, err := Hash("Secret123")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	if h1 == h2 {
		t.Fatalf("two hashes of the same password must differ (random salt)")
	}
	if !Verify("Secret123", h1) || !Verify("Secret123", h2) {
		t.Fatalf("both hashes must verify")
	}
}

func TestVerify_MalformedHash(t *testing.T) {
	t.Parallel()

	malformed := []string{
		"",
		"plaintext",
		"$argon2id$v=19$m=65536,t=1,p=4$short",
		"$argon2i$v=19$m=65536,t=1,p=4$c2FsdHNhbHRzYWx0c2FsdA$a2V5a2V5a2V5a2V5a2V5a2V5a2V5a2V5a2V5a2V5",
		"$argon2id$v=18$m=65536,t=1,p=4$c2FsdHNhbHRzYWx0c2FsdA$a2V5a2V5a2V5a2V5a2V5a2V5a2V5a2V5a2V5a2V5",
		"$argon2id$v=19$m=0,t=1,p=4$c2FsdHNhbHRzYWx0c2FsdA$a2V5a2V5a2V5a2V5a2V5a2V5a2V5a2V5a2V5a2V5",
		"$argon2id$v=19$m=65536,t=1,p=4$!!!$a2V5a2V5a2V5a2V5a2V5a2V5a2V5a2V5a2V5a2V5",
	}

	for _, h := range malformed {
		if Verify("Secret123", h) {
			t.Fatalf("Verify must return false for malformed hash %q", h)
		}
	}
}

func TestVerify_RejectsOversizedParams(t *testing.T) {
	t.Parallel()

	// Parameters far above what Hash produces must be refused outright.
	h := "$argon2id$v=19$m=4194304,t=1,p=4$c2FsdHNhbHRzYWx0c2FsdA$a2V5a2V5a2V5a2V5a2V5a2V5a2V5a2V5a2V5a2V5"
	if Verify("Secret123", h) {
		t.Fatalf("Verify must reject hashes with oversized parameters")
	}
}

func TestValidateStrength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		password string
		want     bool
	}{
		{"Passw0rd", true},
		{"Secret123", true},
		{"password", false}, // no digit, no uppercase
		{"PASS1234", false}, // no lowercase
		{"Pas1", false},     // too short
		{"", false},
		{"aB1" + strings.Repeat("x", 5), true},    // exactly 8
		{"aB1" + strings.Repeat("x", 254), false}, // over the length cap
	}

	for _, tc := range tests {
		if got := ValidateStrength(tc.password); got != tc.want {
			t.Fatalf("ValidateStrength(%q) = %v, want %v", tc.password, got, tc.want)
		}
	}
}
