package httpserver

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/lorenzo-stoakes/wordle-solver/internal/historystore"
)

// adminClaims is the JWT payload signed for the single admin account,
// modeled on the teacher's auth.go:signJWT.
type adminClaims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

// signAdminToken signs an HS256 JWT for username, valid for ttl.
func (s *Server) signAdminToken(username string) (string, time.Time, error) {
	exp := time.Now().Add(s.tokenTTL)
	claims := adminClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		Username: username,
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	ss, err := tok.SignedString([]byte(s.jwtSecret))
	return ss, exp, err
}

// verifyAdminToken parses and validates tokenStr, returning the admin
// username it was issued for.
func (s *Server) verifyAdminToken(tokenStr string) (string, error) {
	claims := &adminClaims{}
	tok, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !tok.Valid {
		return "", errInvalidToken
	}
	return claims.Username, nil
}

// authenticateAdmin checks username/password against the single
// configured admin account, bcrypt-hashed, modeled on the teacher's
// checkPassword.
func (s *Server) authenticateAdmin(ctx context.Context, username, password string) (*historystore.Admin, error) {
	admin, err := s.history.FindAdminByUsername(ctx, username)
	if err != nil {
		return nil, errInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return nil, errInvalidCredentials
	}
	return admin, nil
}
