package auth

import "testing"

func TestHashPassword_RoundTrip(t *testing.T) {
	digest, err := HashPassword("Sup3rSecret!!!")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	if !VerifyPassword("Sup3rSecret!!!", digest) {
		t.Error("Expected correct password to verify")
	}
	if VerifyPassword("wrong", digest) {
		t.Error("Expected wrong password to fail verification")
	}
}

func TestHashPassword_DistinctSalts(t *testing.T) {
	first, err := HashPassword("Sup3rSecret!!!")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	second, err := HashPassword("Sup3rSecret!!!")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	if first == second {
		t.Error("Expected distinct digests for the same password")
	}
	if !VerifyPassword("Sup3rSecret!!!", first) || !VerifyPassword("Sup3rSecret!!!", second) {
		t.Error("Expected both digests to verify against the original password")
	}
}

func TestVerifyPassword_MalformedDigest(t *testing.T) {
	if VerifyPassword("anything", "not-a-bcrypt-digest") {
		t.Error("Expected malformed digest to fail verification, not succeed")
	}
	if VerifyPassword("anything", "") {
		t.Error("Expected empty digest to fail verification")
	}
}
