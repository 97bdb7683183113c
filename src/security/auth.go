package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid webhook token")

// WebhookAuthService issues and verifies the bearer tokens the voice
// provider presents on webhook calls. An empty secret disables verification
// entirely (open webhook, the hackathon default).
type WebhookAuthService struct {
	secret      string
	tokenExpiry time.Duration
}

func NewWebhookAuthService(secret string, tokenExpiry time.Duration) *WebhookAuthService {
	return &WebhookAuthService{
		secret:      secret,
		tokenExpiry: tokenExpiry,
	}
}

// Enabled reports whether webhook calls must carry a token.
func (a *WebhookAuthService) Enabled() bool {
	return a.secret != ""
}

// GenerateToken mints an HS256 token for the given caller identity.
func (a *WebhookAuthService) GenerateToken(subject string) (string, error) {
	if !a.Enabled() {
		return "", errors.New("webhook auth is not configured")
	}
	claims := jwt.MapClaims{
		"sub": subject,
		"exp": time.Now().Add(a.tokenExpiry).Unix(),
		"iat": time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(a.secret))
}

// VerifyToken checks signature and expiry and returns the token subject.
func (a *WebhookAuthService) VerifyToken(tokenStr string) (string, error) {
	if !a.Enabled() {
		return "", errors.New("webhook auth is not configured")
	}
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(a.secret), nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	subject, _ := claims["sub"].(string)
	return subject, nil
}
