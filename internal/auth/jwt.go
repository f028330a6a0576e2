package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"tailor-backend/internal/config"
	"tailor-backend/internal/timeutil"
)

type Claims struct {
	Username string `json:"username"`
	Remember bool   `json:"remember"`
	jwt.RegisteredClaims
}

type JWTManager struct {
	cfg *config.Config
}

func NewJWTManager(cfg *config.Config) *JWTManager {
	return &JWTManager{cfg: cfg}
}

// GenerateToken creates a session token. Remember-me sessions get the
// long expiry, otherwise the standard one.
func (j *JWTManager) GenerateToken(username string, remember bool) (string, error) {
	now := timeutil.Now()
	expiry := time.Duration(j.cfg.JWT.ExpirationHours) * time.Hour
	if remember {
		expiry = time.Duration(j.cfg.JWT.RememberDays) * 24 * time.Hour
	}

	claims := &Claims{
		Username: username,
		Remember: remember,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    j.cfg.JWT.Issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.cfg.JWT.Secret))
}

// ValidateToken verifies a session token and returns the claims
func (j *JWTManager) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(j.cfg.JWT.Secret), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
