package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Prabhatvrma1/G1-BEE-PID-21/internal/models"
)

// Identity is the single authenticated-identity value produced once per
// request, whether the caller arrived with a session cookie or a bearer
// token. The zero value is anonymous.
type Identity struct {
	ID       uuid.UUID
	Role     models.Role
	FullName string
	Email    string
}

func (i Identity) IsAnonymous() bool {
	return i.ID == uuid.Nil
}

func (i Identity) IsCandidate() bool {
	return i.Role == models.RoleCandidate
}

func (i Identity) IsRecruiter() bool {
	return i.Role == models.RoleRecruiter
}

// PasswordHasher folds a static pepper into every password before bcrypt.
type PasswordHasher struct {
	pepper string
}

func NewPasswordHasher(pepper string) *PasswordHasher {
	return &PasswordHasher{pepper: pepper}
}

func (h *PasswordHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password+h.pepper), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func (h *PasswordHasher) Compare(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password+h.pepper)) == nil
}

// TokenIssuer signs and verifies the bearer tokens handed to JSON clients.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// Issue creates a signed token carrying the account's id, role, name and
// email.
func (t *TokenIssuer) Issue(account *models.Account) (string, error) {
	claims := jwt.MapClaims{
		"id":        account.ID.String(),
		"role":      string(account.Role),
		"full_name": account.FullName,
		"email":     account.Email,
		"exp":       time.Now().Add(t.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses a bearer token back into an Identity.
func (t *TokenIssuer) Verify(tokenStr string) (Identity, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return Identity{}, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, errors.New("invalid token claims")
	}

	idStr, ok1 := claims["id"].(string)
	roleStr, ok2 := claims["role"].(string)
	if !ok1 || !ok2 {
		return Identity{}, errors.New("missing claims")
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return Identity{}, errors.New("invalid account id in token")
	}

	role := models.Role(roleStr)
	if !role.Valid() {
		return Identity{}, errors.New("invalid role in token")
	}

	fullName, _ := claims["full_name"].(string)
	email, _ := claims["email"].(string)

	return Identity{ID: id, Role: role, FullName: fullName, Email: email}, nil
}
