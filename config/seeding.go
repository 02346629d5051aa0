package config

import (
	"log"

	"p9e.in/infrasight/store"
)

// Built-in leader account so the platform is operable straight after
// first start. EnsureLeader is first-writer-wins, so a changed default
// password never clobbers an existing row.
const (
	DefaultLeaderUsername     = "leader1"
	DefaultLeaderPassword     = "leader123"
	DefaultLeaderConstituency = "Westlands"
)

// SeedDefaultLeader makes sure the built-in leader login exists.
func SeedDefaultLeader(s *store.Store) error {
	if err := s.EnsureLeader(DefaultLeaderUsername, DefaultLeaderPassword, DefaultLeaderConstituency); err != nil {
		return err
	}
	log.Printf("Default leader %q ready (constituency %s)", DefaultLeaderUsername, DefaultLeaderConstituency)
	return nil
}
