package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/teamsync/internal/client/storage"
	"github.com/iudanet/teamsync/pkg/api"
)

// ensureSession загружает сохраненную сессию, при истекшем access
// токене обновляет пару токенов через сервер и устанавливает access
// токен в API клиент. Команды, которым нужен авторизованный доступ,
// вызывают ее первой.
func (c *Cli) ensureSession(ctx context.Context) (*storage.Session, error) {
	session, err := c.sessions.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return nil, fmt.Errorf("not logged in. Run 'teamsync login' first")
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	if session.Expired(time.Now()) {
		refreshed, err := c.api.Refresh(ctx, api.RefreshRequest{RefreshToken: session.RefreshToken})
		if err != nil {
			return nil, fmt.Errorf("session expired, run 'teamsync login' again: %w", err)
		}

		session.AccessToken = refreshed.AccessToken
		session.RefreshToken = refreshed.RefreshToken
		session.ExpiresAt = time.Now().Unix() + refreshed.ExpiresIn

		if err := c.sessions.SaveSession(ctx, session); err != nil {
			return nil, fmt.Errorf("failed to save refreshed session: %w", err)
		}
	}

	c.api.SetToken(session.AccessToken)

	return session, nil
}

// formatTime приводит метку времени к локальному компактному виду
func formatTime(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04")
}
