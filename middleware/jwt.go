// middleware/jwt.go
package middleware

import (
	"context"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"p9e.in/infrasight/models"
)

// Grab your secret from env (or config)
var jwtKey = []byte(os.Getenv("JWT_SECRET"))

// Claims are the custom payload in the leader JWT. The constituency
// travels in the token so every protected write is scoped without a
// database round trip.
type Claims struct {
	LeaderID     uint   `json:"leaderId"`
	Username     string `json:"username"`
	Constituency string `json:"constituency"`
	jwt.RegisteredClaims
}

// unexported type prevents collisions in context
type ctxKey int

const leaderClaimsKey ctxKey = iota

// GenerateToken creates a signed JWT valid for 24 h
func GenerateToken(leader *models.Leader) (string, error) {
	claims := Claims{
		LeaderID:     leader.ID,
		Username:     leader.Username,
		Constituency: leader.Constituency,

		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

// JWTMiddleware validates the token and stashes the Claims in ctx
func JWTMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if auth == "" {
			http.Error(w, "missing Authorization header", http.StatusUnauthorized)
			return
		}
		parts := strings.SplitN(auth, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			http.Error(w, "invalid auth header", http.StatusUnauthorized)
			return
		}

		token, err := jwt.ParseWithClaims(parts[1], &Claims{}, func(t *jwt.Token) (interface{}, error) {
			return jwtKey, nil
		})
		if err != nil || !token.Valid {
			http.Error(w, "invalid or expired token", http.StatusUnauthorized)
			return
		}

		claims, ok := token.Claims.(*Claims)
		if !ok {
			http.Error(w, "invalid token claims", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), leaderClaimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetClaims returns the leader claims stashed by JWTMiddleware, or nil.
func GetClaims(r *http.Request) *Claims {
	claims, _ := r.Context().Value(leaderClaimsKey).(*Claims)
	return claims
}
