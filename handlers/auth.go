// handlers/auth.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"p9e.in/infrasight/config"
	"p9e.in/infrasight/middleware"
	"p9e.in/infrasight/store"
)

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResp struct {
	Token string        `json:"token"`
	User  leaderPayload `json:"user"`
}

type leaderPayload struct {
	ID           uint   `json:"id"`
	Username     string `json:"username"`
	Constituency string `json:"constituency"`
}

// Login verifies a leader credential and issues a JWT scoped to the
// leader's constituency. A bad username and a bad password produce the
// same response.
func Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	leader, err := config.Data.Authenticate(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	token, err := middleware.GenerateToken(leader)
	if err != nil {
		http.Error(w, "couldn't create token", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, loginResp{
		Token: token,
		User: leaderPayload{
			ID:           leader.ID,
			Username:     leader.Username,
			Constituency: leader.Constituency,
		},
	})
}

// Profile returns the authenticated leader from the token claims.
func Profile(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r)
	if claims == nil {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, leaderPayload{
		ID:           claims.LeaderID,
		Username:     claims.Username,
		Constituency: claims.Constituency,
	})
}
