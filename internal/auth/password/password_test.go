package password

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHasher_HashAndVerify(t *testing.T) {
	// Low cost keeps the test fast; the policy bounds are tested separately.
	h := NewHasher(bcrypt.MinCost)

	hash, err := h.Hash("Abcdef1!")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if err := h.Verify("Abcdef1!", hash); err != nil {
		t.Errorf("Verify() with correct password error = %v", err)
	}
	if err := h.Verify("Wrong1!x", hash); err != ErrMismatch {
		t.Errorf("Verify() with wrong password = %v, want ErrMismatch", err)
	}
}

func TestHasher_SaltedEncodingsDiffer(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	h1, err := h.Hash("Abcdef1!")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	h2, err := h.Hash("Abcdef1!")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if h1 == h2 {
		t.Error("two hashes of the same password should differ (random salt)")
	}
	// Both still verify.
	if err := h.Verify("Abcdef1!", h1); err != nil {
		t.Errorf("Verify(h1) error = %v", err)
	}
	if err := h.Verify("Abcdef1!", h2); err != nil {
		t.Errorf("Verify(h2) error = %v", err)
	}
}

func TestNewHasher_CostBounds(t *testing.T) {
	if got := NewHasher(0).Cost(); got != DefaultCost {
		t.Errorf("cost below range = %d, want DefaultCost", got)
	}
	if got := NewHasher(99).Cost(); got != DefaultCost {
		t.Errorf("cost above range = %d, want DefaultCost", got)
	}
	if got := NewHasher(10).Cost(); got != 10 {
		t.Errorf("valid cost = %d, want 10", got)
	}
}

func TestHasher_DefaultCostApplied(t *testing.T) {
	h := NewHasher(DefaultCost)
	hash, err := h.Hash("Abcdef1!")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("bcrypt.Cost() error = %v", err)
	}
	if cost != DefaultCost {
		t.Errorf("bcrypt cost = %d, want %d", cost, DefaultCost)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valid", "Abcdef1!", false},
		{"valid with other symbol", "Xy3#longer", false},
		{"too short", "Ab1!xyz", true},
		{"no uppercase", "abcdef1!", true},
		{"no lowercase", "ABCDEF1!", true},
		{"no digit", "Abcdefg!", true},
		{"no symbol", "Abcdefg1", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.password)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate(%q) error = %v, wantErr %v", tt.password, err, tt.wantErr)
			}
		})
	}
}

func TestGenerateToken(t *testing.T) {
	t1, err := GenerateToken(32)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	if len(t1) != 64 {
		t.Errorf("token length = %d, want 64 hex chars", len(t1))
	}

	t2, err := GenerateToken(32)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	if t1 == t2 {
		t.Error("two generated tokens should differ")
	}
}

func TestHashToken_Deterministic(t *testing.T) {
	if HashToken("abc") != HashToken("abc") {
		t.Error("HashToken should be deterministic")
	}
	if HashToken("abc") == HashToken("abd") {
		t.Error("different tokens should hash differently")
	}
	if len(HashToken("abc")) != 64 {
		t.Error("HashToken should return a sha256 hex digest")
	}
}
