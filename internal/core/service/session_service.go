package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/consultantnexus/marketplace-system/internal/core/domain"
	"github.com/consultantnexus/marketplace-system/internal/core/state"
)

// SessionService implements selection-based login. There are no credentials:
// a session is created for any existing user id, and the role travels inside
// the signed token.
type SessionService struct {
	store     *state.Store
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewSessionService(store *state.Store, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *SessionService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &SessionService{store: store, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log}
}

func (s *SessionService) Login(ctx context.Context, userID string) (string, *domain.User, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return "", nil, err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("session started")
	return token, user, nil
}

func (s *SessionService) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	for _, u := range s.store.Users() {
		if u.ID == userID {
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (s *SessionService) UpdateAvatar(ctx context.Context, userID, avatar string) (*domain.User, error) {
	var updated domain.User
	err := s.store.UpdateUsers(ctx, func(users []domain.User) ([]domain.User, error) {
		for i := range users {
			if users[i].ID == userID {
				users[i].Avatar = avatar
				updated = users[i]
				return users, nil
			}
		}
		return nil, domain.ErrUserNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *SessionService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    string(user.Role),
		"exp":     time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
