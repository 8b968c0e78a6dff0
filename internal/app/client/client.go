package client

import (
	"context"
	"fmt"
	"io"
	"time"

	"golang.org/x/exp/slog"

	"notekeeper/internal/app/client/config"
	"notekeeper/internal/app/client/ui"
	"notekeeper/internal/domain/media"
	"notekeeper/internal/domain/user"
)

// App собирает клиент целиком: HTTP-клиент, локальный кэш, сессию и стор
// заметок.
type App struct {
	config  *config.Config
	log     *slog.Logger
	api     *httpClient
	storage *SQLiteStorage
	session *SessionHolder

	Notes *NoteStore
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	api, err := NewHTTPClient(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации HTTP клиента: %w", err)
	}

	storage, err := NewSQLiteStorage(cfg.DataPath)
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации локального хранилища: %w", err)
	}

	session := NewSessionHolder(storage)

	app := &App{
		config:  cfg,
		log:     log,
		api:     api,
		storage: storage,
		session: session,
	}

	// Любой 401 означает, что токен мёртв: сбрасываем сессию, дальше клиент
	// работает как неавторизованный.
	onUnauthorized := func() {
		log.Warn("session rejected by server, clearing")
		api.SetToken("")
		if err := session.Clear(); err != nil {
			log.Error("failed to clear session", "error", err)
		}
	}

	debounce := time.Duration(cfg.SaveDebounceMS) * time.Millisecond
	app.Notes = NewNoteStore(api, storage, debounce, onUnauthorized, log)

	// Восстанавливаем токен, если сессия сохранена
	if session.Authenticated() {
		api.SetToken(session.Token())
	}

	return app, nil
}

func (a *App) Authenticated() bool {
	return a.session.Authenticated()
}

func (a *App) Email() string {
	return a.session.Email()
}

// Signup регистрирует аккаунт. Если серверу нужно подтверждение почты, токен
// не выдаётся и возвращается requiresConfirmation.
func (a *App) Signup(ctx context.Context, email, password string) (*AuthResponse, error) {
	resp, err := a.api.Signup(ctx, email, password)
	if err != nil {
		return nil, err
	}

	if resp.Token != "" {
		if err := a.session.Set(resp.Token, email); err != nil {
			return nil, fmt.Errorf("ошибка сохранения сессии: %w", err)
		}
	}

	return resp, nil
}

func (a *App) Login(ctx context.Context, email, password string) error {
	resp, err := a.api.Login(ctx, email, password)
	if err != nil {
		return err
	}

	if err := a.session.Set(resp.Token, email); err != nil {
		return fmt.Errorf("ошибка сохранения сессии: %w", err)
	}

	return nil
}

// Logout отзывает сессию на сервере и чистит её локально. Локальная часть
// выполняется даже если сервер недоступен.
func (a *App) Logout(ctx context.Context) error {
	serverErr := a.api.Logout(ctx)

	if err := a.session.Clear(); err != nil {
		return fmt.Errorf("ошибка очистки сессии: %w", err)
	}
	a.api.SetToken("")

	if serverErr != nil {
		a.log.Warn("server-side logout failed", "error", serverErr)
	}
	return nil
}

// Verify проверяет токен на сервере и возвращает владельца.
func (a *App) Verify(ctx context.Context) (*user.View, error) {
	u, err := a.api.Verify(ctx)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (a *App) UploadMedia(ctx context.Context, noteID, filePath string, r io.Reader) (*media.View, error) {
	return a.api.UploadMedia(ctx, noteID, filePath, r)
}

func (a *App) ListMedia(ctx context.Context, noteID string) ([]media.View, error) {
	return a.api.ListMedia(ctx, noteID)
}

func (a *App) MediaURL(ctx context.Context, mediaID string) (string, error) {
	return a.api.MediaURL(ctx, mediaID)
}

func (a *App) DeleteMedia(ctx context.Context, mediaID string) error {
	return a.api.DeleteMedia(ctx, mediaID)
}

func (a *App) CreatePayment(ctx context.Context, productID string, amount int64, currency string) (*PaymentLink, error) {
	return a.api.CreatePayment(ctx, productID, amount, currency)
}

// FormatSize форматирует размер файла для вывода в таблицах.
func (a *App) FormatSize(size int64) string {
	return ui.FormatSize(size)
}

// Close доотправляет отложенные сохранения и закрывает локальное хранилище.
func (a *App) Close() error {
	a.Notes.Close()
	return a.storage.Close()
}
