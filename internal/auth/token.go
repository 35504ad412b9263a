package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/AbeerUrRahim/invoice-expense-saas/internal/models"
)

const tokenLifetime = 60 * time.Minute

var ErrInvalidToken = errors.New("invalid token")

// TokenService issues and verifies the HS256 bearer tokens used by every
// protected endpoint.
type TokenService struct {
	key      []byte
	issuer   string
	audience string
}

func NewTokenService(key []byte, issuer, audience string) *TokenService {
	return &TokenService{key: key, issuer: issuer, audience: audience}
}

type Claims struct {
	Name  string   `json:"name"`
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// Issue signs a token for the user: subject is the user id, jti is a
// fresh uuid, and the user's role names ride along as a claim. Tokens
// expire 60 minutes after issuance.
func (s *TokenService) Issue(user *models.User) (string, error) {
	roles := make([]string, 0, len(user.Roles))
	for _, r := range user.Roles {
		roles = append(roles, r.Name)
	}
	now := time.Now()
	claims := Claims{
		Name:  user.Username,
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			ID:        uuid.NewString(),
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenLifetime)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.key)
}

// Verify parses the token, checking signature method, issuer, audience
// and lifetime, and returns the caller's identity.
func (s *TokenService) Verify(tokenString string) (Identity, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrInvalidKeyType
		}
		return s.key, nil
	}, jwt.WithIssuer(s.issuer), jwt.WithAudience(s.audience), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return Identity{}, ErrInvalidToken
	}
	return Identity{
		UserID:   claims.Subject,
		Username: claims.Name,
		Roles:    claims.Roles,
	}, nil
}
