package service

import "testing"

func TestHashPassword_SaltVaries(t *testing.T) {
	first, err := HashPassword("hunter2")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	second, err := HashPassword("hunter2")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if first == second {
		t.Fatalf("expected different hashes for the same input")
	}
	if first == "hunter2" {
		t.Fatalf("hash must not equal the raw password")
	}
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	if !CheckPassword("s3cret", hash) {
		t.Fatalf("expected match for correct password")
	}
	if CheckPassword("wrong", hash) {
		t.Fatalf("expected mismatch for wrong password")
	}
}

func TestCheckPassword_MalformedHashFailsClosed(t *testing.T) {
	if CheckPassword("anything", "not-a-bcrypt-hash") {
		t.Fatalf("malformed hash must never verify")
	}
	if CheckPassword("anything", "") {
		t.Fatalf("empty hash must never verify")
	}
}
