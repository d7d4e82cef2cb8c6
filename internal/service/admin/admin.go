package admin

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tireshop/internal/entities"
	"tireshop/internal/pkg/auth"
	"tireshop/internal/pkg/validation"
)

const maxCredentialLen = 100

// dummyPasswordHash bcrypt хеш со стоимостью по умолчанию. Сверка с ним для неизвестного логина
// выравнивает время ответа с веткой неверного пароля.
const dummyPasswordHash = "$2a$10$nBcOJ/ANHHRPyBgmkYrT9.RJc8y8YkXD7HH9PitU62oqodVuhAC3u"

type Service struct {
	repository Repository
	hasher     PasswordHasher
	tokens     TokenIssuer
}

func New(repository Repository, hasher PasswordHasher, tokens TokenIssuer) *Service {
	return &Service{
		repository: repository,
		hasher:     hasher,
		tokens:     tokens,
	}
}

// Login проверяет учётные данные и выпускает токен. Неизвестный логин и неверный пароль неразличимы.
func (s *Service) Login(ctx context.Context, username, password *string) (*entities.AdminToken, error) {
	c := validation.NewCollector()
	name := c.RequiredString("username", username, maxCredentialLen)
	if password == nil || strings.TrimSpace(*password) == "" {
		c.Add("password", validation.MsgRequired)
	} else if len([]rune(*password)) > maxCredentialLen {
		c.Add("password", validation.MaxLengthMsg(maxCredentialLen))
	}
	if err := c.Err(); err != nil {
		return nil, err
	}

	admin, err := s.repository.GetByUsername(ctx, name)
	if err != nil {
		if errors.Is(err, ErrAdminNotFound) {
			_ = s.hasher.Compare(dummyPasswordHash, *password)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get admin: %w", err)
	}

	if err := s.hasher.Compare(admin.PasswordHash, *password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("compare password: %w", err)
	}

	token, ttl, err := s.tokens.Issue(admin.Username, entities.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &entities.AdminToken{
		Token:     token,
		ExpiresIn: ttl,
	}, nil
}

// EnsureAdmin создаёт администратора, если его ещё нет. Возвращает true, если запись была создана.
func (s *Service) EnsureAdmin(ctx context.Context, username, password string) (bool, error) {
	username = strings.TrimSpace(username)
	if username == "" || strings.TrimSpace(password) == "" {
		return false, nil
	}

	_, err := s.repository.GetByUsername(ctx, username)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, ErrAdminNotFound) {
		return false, fmt.Errorf("get admin: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return false, fmt.Errorf("hash password: %w", err)
	}

	_, err = s.repository.Create(ctx, entities.Admin{
		Username:     username,
		PasswordHash: hash,
	})
	if err != nil {
		// параллельный запуск успел создать ту же запись
		if errors.Is(err, ErrConflict) {
			return false, nil
		}
		return false, fmt.Errorf("create admin: %w", err)
	}

	return true, nil
}
