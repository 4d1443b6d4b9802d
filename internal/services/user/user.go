// Package services содержит логику работы с единственным пользователем
// приложения: открытие сессии и настройки.
package services

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/sub-keeper/internal/lib/jwt"
	"github.com/magabrotheeeer/sub-keeper/internal/models"
)

// ErrNoUser возвращается, если настройки запрошены до первого входа.
var ErrNoUser = errors.New("user not found")

// UserService хранит запись единственного пользователя и выдает токены сессии.
//
// Реальной аутентификации нет: Login принимает любые имя и email,
// перезаписывает запись пользователя и открывает сессию. Запись
// пользователя не связана с хранилищем подписок.
type UserService struct {
	mu       sync.RWMutex
	user     *models.User
	jwtMaker jwt.Maker
	log      *slog.Logger
}

// NewUserService создает новый экземпляр UserService.
func NewUserService(jwtMaker jwt.Maker, log *slog.Logger) *UserService {
	return &UserService{
		jwtMaker: jwtMaker,
		log:      log,
	}
}

// Login записывает пользователя (напоминания включены по умолчанию)
// и возвращает токен сессии.
func (s *UserService) Login(_ context.Context, req models.DummyLogin) (*models.User, string, error) {
	s.mu.Lock()
	if s.user == nil {
		s.user = &models.User{
			ID:               uuid.NewString(),
			RemindersEnabled: true,
		}
	}
	s.user.Name = req.Name
	s.user.Email = req.Email
	user := *s.user
	s.mu.Unlock()

	token, err := s.jwtMaker.GenerateToken(user.Name, user.Email)
	if err != nil {
		return nil, "", err
	}

	s.log.Info("session opened", slog.String("user_id", user.ID))
	return &user, token, nil
}

// Get возвращает запись пользователя или ErrNoUser до первого входа.
func (s *UserService) Get(_ context.Context) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return nil, ErrNoUser
	}
	user := *s.user
	return &user, nil
}

// Update обновляет настройки пользователя и возвращает обновлённую запись.
func (s *UserService) Update(_ context.Context, req models.DummyUser) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil, ErrNoUser
	}
	s.user.Name = req.Name
	s.user.Email = req.Email
	s.user.RemindersEnabled = req.RemindersEnabled
	user := *s.user

	s.log.Info("settings updated", slog.String("user_id", user.ID))
	return &user, nil
}
