package utils

import (
	"testing"
)

func TestGetUsername(t *testing.T) {
	name, err := GetUsername()
	if err != nil {
		t.Skipf("current user unavailable: %v", err)
	}
	if name == "" {
		t.Error("Expected a non-empty username")
	}
}

func TestGetHostname(t *testing.T) {
	name, err := GetHostname()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if name == "" {
		t.Error("Expected a non-empty hostname")
	}
}
