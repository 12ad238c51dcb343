package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-model-keeper/internal/config"
	"github.com/MKhiriev/go-model-keeper/internal/logger"
	"github.com/MKhiriev/go-model-keeper/internal/utils"
	"github.com/MKhiriev/go-model-keeper/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu     sync.RWMutex
	tokens models.TokenPair

	onTokensRefreshed func(models.TokenPair) error
	onSessionExpired  func()

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetTokens implements [ServerAdapter]. It stores the pair (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetTokens(pair models.TokenPair) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.tokens = models.TokenPair{
		AccessToken:  strings.TrimSpace(pair.AccessToken),
		RefreshToken: strings.TrimSpace(pair.RefreshToken),
	}
}

// Tokens implements [ServerAdapter].
func (h *httpServerAdapter) Tokens() models.TokenPair {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.tokens
}

// OnTokensRefreshed implements [ServerAdapter].
func (h *httpServerAdapter) OnTokensRefreshed(fn func(models.TokenPair) error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onTokensRefreshed = fn
}

// OnSessionExpired implements [ServerAdapter].
func (h *httpServerAdapter) OnSessionExpired(fn func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onSessionExpired = fn
}

// Status implements [ServerAdapter]. It GETs the lightweight probe endpoint
// GET /api/sync/status and decodes the active model count. Requires a valid
// session.
func (h *httpServerAdapter) Status(ctx context.Context) (models.StatusResponse, error) {
	resp, err := h.authedDo(ctx, func(req *resty.Request) (*resty.Response, error) {
		return req.Get("/api/sync/status")
	})
	if err != nil {
		return models.StatusResponse{}, fmt.Errorf("status request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.StatusResponse{}, err
	}

	var sr models.StatusResponse
	if err = json.Unmarshal(resp.Body(), &sr); err != nil {
		return models.StatusResponse{}, fmt.Errorf("decode status response: %w", err)
	}

	return sr, nil
}

// Pull implements [ServerAdapter]. It POSTs the page filter to
// POST /api/sync/pull and decodes one page of models. Requires a valid
// session.
func (h *httpServerAdapter) Pull(ctx context.Context, req models.PullRequest) (models.PullResponse, error) {
	resp, err := h.authedDo(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.
			SetHeader("Content-Type", "application/json").
			SetBody(req).
			Post("/api/sync/pull")
	})
	if err != nil {
		return models.PullResponse{}, fmt.Errorf("pull request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PullResponse{}, err
	}

	var pr models.PullResponse
	if err = json.Unmarshal(resp.Body(), &pr); err != nil {
		return models.PullResponse{}, fmt.Errorf("decode pull response: %w", err)
	}

	return pr, nil
}

// Push implements [ServerAdapter]. It sets req.Length, POSTs the whole ledger
// to POST /api/sync/push, and decodes the per-item verdicts. Requires a valid
// session.
func (h *httpServerAdapter) Push(ctx context.Context, req models.PushRequest) (models.PushResponse, error) {
	req.Length = len(req.Changes)

	resp, err := h.authedDo(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.
			SetHeader("Content-Type", "application/json").
			SetBody(req).
			Post("/api/sync/push")
	})
	if err != nil {
		return models.PushResponse{}, fmt.Errorf("push request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PushResponse{}, err
	}

	var pr models.PushResponse
	if err = json.Unmarshal(resp.Body(), &pr); err != nil {
		return models.PushResponse{}, fmt.Errorf("decode push response: %w", err)
	}

	return pr, nil
}

// RequestLink implements [ServerAdapter]. It POSTs the email to
// POST /api/auth/request-link. No session required.
func (h *httpServerAdapter) RequestLink(ctx context.Context, email string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.RequestLinkRequest{Email: email}).
		Post("/api/auth/request-link")
	if err != nil {
		return fmt.Errorf("request link request: %w", err)
	}

	return mapHTTPError(resp)
}

// VerifyLink implements [ServerAdapter]. It GETs
// GET /api/auth/verify/{token} and on success stores the issued pair via
// SetTokens. Returns the decoded session (token pair plus user record).
func (h *httpServerAdapter) VerifyLink(ctx context.Context, token string) (models.VerifyResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/auth/verify/" + url.PathEscape(token))
	if err != nil {
		return models.VerifyResponse{}, fmt.Errorf("verify link request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VerifyResponse{}, err
	}

	var vr models.VerifyResponse
	if err = json.Unmarshal(resp.Body(), &vr); err != nil {
		return models.VerifyResponse{}, fmt.Errorf("decode verify response: %w", err)
	}

	h.SetTokens(vr.Tokens())
	return vr, nil
}

// Refresh implements [ServerAdapter]. It POSTs the held refresh token to
// POST /api/auth/refresh, stores the new pair via SetTokens, and notifies the
// OnTokensRefreshed callback. A rejected refresh token (401) is returned as
// [ErrSessionExpired].
func (h *httpServerAdapter) Refresh(ctx context.Context) (models.TokenPair, error) {
	refreshToken := h.Tokens().RefreshToken
	if refreshToken == "" {
		return models.TokenPair{}, fmt.Errorf("%w: no refresh token held", ErrSessionExpired)
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.RefreshRequest{RefreshToken: refreshToken}).
		Post("/api/auth/refresh")
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("refresh request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrUnauthorized) {
			return models.TokenPair{}, fmt.Errorf("%w: refresh token rejected", ErrSessionExpired)
		}
		return models.TokenPair{}, err
	}

	var pair models.TokenPair
	if err = json.Unmarshal(resp.Body(), &pair); err != nil {
		return models.TokenPair{}, fmt.Errorf("decode refresh response: %w", err)
	}

	h.SetTokens(pair)
	h.notifyTokensRefreshed(pair)

	return pair, nil
}

// Logout implements [ServerAdapter]. It POSTs to POST /api/auth/logout with
// the current access token. The adapter keeps its tokens; callers clear them
// through the auth service.
func (h *httpServerAdapter) Logout(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Post("/api/auth/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	return mapHTTPError(resp)
}

// authedDo executes send with a bearer-authenticated request. When the server
// answers 401 TOKEN_EXPIRED it refreshes the pair exactly once and retries the
// original request. A failed refresh, or a second unauthorized answer, fires
// the session-expired callback and surfaces [ErrSessionExpired].
func (h *httpServerAdapter) authedDo(ctx context.Context, send func(*resty.Request) (*resty.Response, error)) (*resty.Response, error) {
	resp, err := send(h.authedRequest(ctx))
	if err != nil {
		return nil, err
	}
	if !isTokenExpired(resp) {
		return resp, nil
	}

	h.logger.Debug().Str("func", "httpServerAdapter.authedDo").Msg("access token expired, refreshing")

	if _, err = h.Refresh(ctx); err != nil {
		h.fireSessionExpired()
		return nil, fmt.Errorf("refresh after token expiry: %w", err)
	}

	resp, err = send(h.authedRequest(ctx))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() == http.StatusUnauthorized {
		h.fireSessionExpired()
		return nil, fmt.Errorf("%w: request unauthorized after refresh", ErrSessionExpired)
	}

	return resp, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Tokens().AccessToken; token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func (h *httpServerAdapter) notifyTokensRefreshed(pair models.TokenPair) {
	h.mu.RLock()
	fn := h.onTokensRefreshed
	h.mu.RUnlock()

	if fn == nil {
		return
	}
	if err := fn(pair); err != nil {
		h.logger.Warn().Err(err).
			Str("func", "httpServerAdapter.notifyTokensRefreshed").
			Msg("failed to persist refreshed tokens")
	}
}

func (h *httpServerAdapter) fireSessionExpired() {
	h.mu.RLock()
	fn := h.onSessionExpired
	h.mu.RUnlock()

	if fn != nil {
		fn()
	}
}
