package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"
	"time"

	"golang.org/x/exp/slog"

	"notekeeper/internal/app/client/config"
	"notekeeper/internal/domain/media"
	"notekeeper/internal/domain/note"
	"notekeeper/internal/domain/user"
)

// ErrUnauthorized сигнализирует, что сессия истекла или токен отозван.
var ErrUnauthorized = errors.New("unauthorized")

type httpClient struct {
	client  *http.Client
	config  *config.Config
	log     *slog.Logger
	baseURL string
	token   string
}

type AuthResponse struct {
	Token                string     `json:"token"`
	User                 *user.View `json:"user"`
	RequiresConfirmation bool       `json:"requiresConfirmation"`
	Message              string     `json:"message"`
}

type PaymentLink struct {
	PaymentID string `json:"paymentId"`
	URL       string `json:"url"`
}

func NewHTTPClient(cfg *config.Config, log *slog.Logger) (*httpClient, error) {
	client := &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}

	// Определяем протокол
	scheme := "http://"
	if cfg.EnableTLS {
		scheme = "https://"
	}

	return &httpClient{
		client:  client,
		config:  cfg,
		log:     log,
		baseURL: scheme + cfg.ServerAddress,
	}, nil
}

func (h *httpClient) SetToken(token string) {
	h.token = token
}

func (h *httpClient) doRequest(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("ошибка сериализации запроса: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if h.token != "" {
		req.Header.Set("Authorization", "Bearer "+h.token)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка запроса к серверу: %w", err)
	}

	return resp, nil
}

// parseResponse декодирует тело ответа либо ошибку вида {"error": "..."}.
func (h *httpClient) parseResponse(resp *http.Response, out any) error {
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}

	if resp.StatusCode >= 400 {
		var errResp struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(data, &errResp); err == nil && errResp.Error != "" {
			return fmt.Errorf("сервер вернул ошибку: %s", errResp.Error)
		}
		return fmt.Errorf("сервер вернул статус %d", resp.StatusCode)
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("ошибка парсинга ответа: %w", err)
		}
	}

	return nil
}

func (h *httpClient) Signup(ctx context.Context, email, password string) (*AuthResponse, error) {
	resp, err := h.doRequest(ctx, http.MethodPost, "/api/auth/signup", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, err
	}

	var authResp AuthResponse
	if err := h.parseResponse(resp, &authResp); err != nil {
		return nil, err
	}

	if authResp.Token != "" {
		h.SetToken(authResp.Token)
	}
	return &authResp, nil
}

func (h *httpClient) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	resp, err := h.doRequest(ctx, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, err
	}

	var authResp AuthResponse
	if err := h.parseResponse(resp, &authResp); err != nil {
		return nil, err
	}

	h.SetToken(authResp.Token)
	return &authResp, nil
}

func (h *httpClient) Verify(ctx context.Context) (*user.View, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, "/api/auth/verify", nil)
	if err != nil {
		return nil, err
	}

	var verifyResp struct {
		User user.View `json:"user"`
	}
	if err := h.parseResponse(resp, &verifyResp); err != nil {
		return nil, err
	}

	return &verifyResp.User, nil
}

func (h *httpClient) Logout(ctx context.Context) error {
	resp, err := h.doRequest(ctx, http.MethodPost, "/api/auth/logout", nil)
	if err != nil {
		return err
	}

	if err := h.parseResponse(resp, nil); err != nil {
		return err
	}

	h.SetToken("")
	return nil
}

func (h *httpClient) ListNotes(ctx context.Context) ([]note.View, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, "/api/notes", nil)
	if err != nil {
		return nil, err
	}

	var notes []note.View
	if err := h.parseResponse(resp, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (h *httpClient) CreateNote(ctx context.Context, content string) (*note.View, error) {
	resp, err := h.doRequest(ctx, http.MethodPost, "/api/notes", map[string]string{"content": content})
	if err != nil {
		return nil, err
	}

	var n note.View
	if err := h.parseResponse(resp, &n); err != nil {
		return nil, err
	}
	return &n, nil
}

func (h *httpClient) UpdateNote(ctx context.Context, id, content string) (*note.View, error) {
	resp, err := h.doRequest(ctx, http.MethodPut, "/api/notes/"+url.PathEscape(id), map[string]string{"content": content})
	if err != nil {
		return nil, err
	}

	var n note.View
	if err := h.parseResponse(resp, &n); err != nil {
		return nil, err
	}
	return &n, nil
}

func (h *httpClient) DeleteNote(ctx context.Context, id string) error {
	resp, err := h.doRequest(ctx, http.MethodDelete, "/api/notes/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

func (h *httpClient) SearchNotes(ctx context.Context, query string, prefix bool) ([]note.View, error) {
	path := "/api/search"
	if prefix {
		path = "/api/search/partial"
	}
	resp, err := h.doRequest(ctx, http.MethodGet, path+"?q="+url.QueryEscape(query), nil)
	if err != nil {
		return nil, err
	}

	var notes []note.View
	if err := h.parseResponse(resp, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// UploadMedia отправляет файл как multipart-форму с полем "file".
func (h *httpClient) UploadMedia(ctx context.Context, noteID, filePath string, r io.Reader) (*media.View, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filepath.Base(filePath))
	if err != nil {
		return nil, fmt.Errorf("ошибка создания формы: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("ошибка чтения файла: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("ошибка закрытия формы: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL+"/api/media/upload/"+url.PathEscape(noteID), &buf)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if h.token != "" {
		req.Header.Set("Authorization", "Bearer "+h.token)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка запроса к серверу: %w", err)
	}

	var m media.View
	if err := h.parseResponse(resp, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (h *httpClient) ListMedia(ctx context.Context, noteID string) ([]media.View, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, "/api/media/"+url.PathEscape(noteID), nil)
	if err != nil {
		return nil, err
	}

	var items []media.View
	if err := h.parseResponse(resp, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (h *httpClient) MediaURL(ctx context.Context, mediaID string) (string, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, "/api/media/"+url.PathEscape(mediaID)+"/url", nil)
	if err != nil {
		return "", err
	}

	var urlResp struct {
		URL string `json:"url"`
	}
	if err := h.parseResponse(resp, &urlResp); err != nil {
		return "", err
	}
	return urlResp.URL, nil
}

func (h *httpClient) DeleteMedia(ctx context.Context, mediaID string) error {
	resp, err := h.doRequest(ctx, http.MethodDelete, "/api/media/"+url.PathEscape(mediaID), nil)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

func (h *httpClient) CreatePayment(ctx context.Context, productID string, amount int64, currency string) (*PaymentLink, error) {
	resp, err := h.doRequest(ctx, http.MethodPost, "/api/payments/create", map[string]any{
		"productId": productID,
		"amount":    amount,
		"currency":  currency,
	})
	if err != nil {
		return nil, err
	}

	var link PaymentLink
	if err := h.parseResponse(resp, &link); err != nil {
		return nil, err
	}
	return &link, nil
}
