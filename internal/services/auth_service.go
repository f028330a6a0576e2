package services

import (
	"context"
	"log"

	"tailor-backend/internal/auth"
	"tailor-backend/internal/config"
	"tailor-backend/internal/snapshot"
	"tailor-backend/internal/state"
)

// AuthService gates the application behind the single configured
// credential pair. The plain password from config is hashed once at
// startup so login always goes through the bcrypt comparison.
type AuthService struct {
	username     string
	passwordHash string
	store        *state.Store
	jwtManager   *auth.JWTManager
	snapStore    snapshot.Store
}

func NewAuthService(cfg *config.Config, store *state.Store, jwtManager *auth.JWTManager, snapStore snapshot.Store) (*AuthService, error) {
	hash, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return nil, err
	}
	return &AuthService{
		username:     cfg.Admin.Username,
		passwordHash: hash,
		store:        store,
		jwtManager:   jwtManager,
		snapStore:    snapStore,
	}, nil
}

// Login verifies the credential pair, marks the session authenticated
// and returns a token. The remember flag is persisted under its own key.
func (s *AuthService) Login(ctx context.Context, username, password string, remember bool) (string, error) {
	if username != s.username || !auth.VerifyPassword(s.passwordHash, password) {
		return "", validationErr("invalid username or password")
	}

	token, err := s.jwtManager.GenerateToken(username, remember)
	if err != nil {
		return "", err
	}

	s.store.Dispatch(state.Login{})
	if err := s.snapStore.SaveRemember(ctx, remember); err != nil {
		log.Printf("[Auth] Remember flag write failed: %v", err)
	}
	return token, nil
}

// Logout clears the authenticated flag and the persisted remember flag
func (s *AuthService) Logout(ctx context.Context) {
	s.store.Dispatch(state.Logout{})
	if err := s.snapStore.SaveRemember(ctx, false); err != nil {
		log.Printf("[Auth] Remember flag write failed: %v", err)
	}
}
