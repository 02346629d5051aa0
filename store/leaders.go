package store

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm/clause"

	"p9e.in/infrasight/models"
)

// EnsureLeader inserts a leader credential if the username is free and
// does nothing otherwise — first writer wins, there is no update path.
// Safe to call on every start.
func (s *Store) EnsureLeader(username, password, constituency string) error {
	if username == "" {
		return &ValidationError{Field: "username", Reason: "must not be empty"}
	}
	if password == "" {
		return &ValidationError{Field: "password", Reason: "must not be empty"}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	leader := models.Leader{
		Username:     username,
		PasswordHash: string(hash),
		Constituency: constituency,
	}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "username"}},
		DoNothing: true,
	}).Create(&leader).Error
	if err != nil {
		return fmt.Errorf("ensure leader: %w", err)
	}
	return nil
}

// Authenticate returns the leader matching username and password, or
// ErrNotFound. Both fields are compared byte-exact (usernames are
// case-sensitive, and so is the password behind the bcrypt hash).
func (s *Store) Authenticate(username, password string) (*models.Leader, error) {
	var leader models.Leader
	if err := s.db.Where("username = ?", username).First(&leader).Error; err != nil {
		return nil, translate(err, "authenticate")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(leader.PasswordHash), []byte(password)); err != nil {
		return nil, ErrNotFound
	}
	return &leader, nil
}
