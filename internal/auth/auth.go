// Package auth holds credentials primitives of agent authentication.
package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/umalmyha/taskdesk/internal/model"
	"golang.org/x/crypto/bcrypt"
)

// HashSecret creates bcrypt hash of agent secret
func HashSecret(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifySecret checks that secret produces the stored hash
func VerifySecret(hash, secret string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret))
}

// NewRefreshToken builds refresh token for agent bound to client fingerprint
func NewRefreshToken(agentID, fingerprint string, ttl time.Duration, issuedAt time.Time) *model.RefreshToken {
	return &model.RefreshToken{
		ID:          uuid.NewString(),
		AgentID:     agentID,
		Fingerprint: fingerprint,
		ExpiresIn:   int(ttl.Seconds()),
		CreatedAt:   issuedAt,
	}
}
