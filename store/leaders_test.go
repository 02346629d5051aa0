package store

import (
	"errors"
	"testing"

	"p9e.in/infrasight/models"
)

func TestEnsureLeaderFirstWriterWins(t *testing.T) {
	s := newTestStore(t)

	if err := s.EnsureLeader("wanjiku", "secret1", "Langata"); err != nil {
		t.Fatalf("first ensure: %v", err)
	}
	// Second call with different credentials must be a no-op.
	if err := s.EnsureLeader("wanjiku", "other-password", "Kibra"); err != nil {
		t.Fatalf("second ensure: %v", err)
	}

	if n := rowCount(t, s, &models.Leader{}); n != 1 {
		t.Fatalf("leader rows = %d, want 1", n)
	}

	leader, err := s.Authenticate("wanjiku", "secret1")
	if err != nil {
		t.Fatalf("authenticate with original password: %v", err)
	}
	if leader.Constituency != "Langata" {
		t.Errorf("constituency = %q, want Langata", leader.Constituency)
	}
	if _, err := s.Authenticate("wanjiku", "other-password"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second writer's password accepted, want ErrNotFound")
	}
}

func TestEnsureLeaderValidation(t *testing.T) {
	s := newTestStore(t)

	if err := s.EnsureLeader("", "pw", "Langata"); !IsValidation(err) {
		t.Errorf("empty username: err = %v, want validation error", err)
	}
	if err := s.EnsureLeader("user", "", "Langata"); !IsValidation(err) {
		t.Errorf("empty password: err = %v, want validation error", err)
	}
	if n := rowCount(t, s, &models.Leader{}); n != 0 {
		t.Fatalf("leader rows = %d after rejected writes, want 0", n)
	}
}

func TestAuthenticate(t *testing.T) {
	s := newTestStore(t)
	if err := s.EnsureLeader("Wanjiku", "Secret", "Langata"); err != nil {
		t.Fatalf("ensure: %v", err)
	}

	tests := []struct {
		name     string
		username string
		password string
		wantOK   bool
	}{
		{"correct credentials", "Wanjiku", "Secret", true},
		{"wrong password", "Wanjiku", "wrong", false},
		{"unknown username", "nobody", "Secret", false},
		{"username case differs", "wanjiku", "Secret", false},
		{"password case differs", "Wanjiku", "secret", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			leader, err := s.Authenticate(tt.username, tt.password)
			if tt.wantOK {
				if err != nil {
					t.Fatalf("Authenticate(%q, %q) = %v, want success", tt.username, tt.password, err)
				}
				if leader.Username != tt.username {
					t.Errorf("username = %q, want %q", leader.Username, tt.username)
				}
				return
			}
			if !errors.Is(err, ErrNotFound) {
				t.Errorf("Authenticate(%q, %q) = %v, want ErrNotFound", tt.username, tt.password, err)
			}
		})
	}
}
