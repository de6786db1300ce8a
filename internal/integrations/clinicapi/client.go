package clinicapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"
)

const maxErrorBodyLength = 512

// Client клиент REST API бэкенда клиники
// Добавляет bearer-токен сессии и при 401 один раз обновляет токен и повторяет запрос
type Client struct {
	baseURL      string
	httpClient   *http.Client
	credentials  CredentialProvider
	refreshGroup *singleflight.Group
	metrics      Metrics
	log          Logger
}

// NewClient создает новый экземпляр клиента бэкенда клиники
func NewClient(baseURL string, timeout time.Duration, credentials CredentialProvider, log Logger) *Client {
	if credentials == nil {
		credentials = AnonymousCredentials{}
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		credentials:  credentials,
		refreshGroup: &singleflight.Group{},
		metrics:      nopMetrics{},
		log:          log,
	}
}

// WithMetrics включает сбор метрик запросов
func (c *Client) WithMetrics(metrics Metrics) *Client {
	if metrics != nil {
		c.metrics = metrics
	}
	return c
}

type credentialsKey struct{}

// ContextWithCredentials привязывает к контексту провайдер токенов сессии
// Запросы с таким контекстом выполняются от имени этой сессии
func ContextWithCredentials(ctx context.Context, credentials CredentialProvider) context.Context {
	return context.WithValue(ctx, credentialsKey{}, credentials)
}

// credentialsFrom возвращает провайдер из контекста или провайдер клиента по умолчанию
func (c *Client) credentialsFrom(ctx context.Context) CredentialProvider {
	if credentials, ok := ctx.Value(credentialsKey{}).(CredentialProvider); ok && credentials != nil {
		return credentials
	}
	return c.credentials
}

// call описание одного запроса к бэкенду
type call struct {
	endpoint string // имя для логов и метрик
	method   string
	path     string
	query    url.Values
	body     []byte
}

// do выполняет авторизованный запрос
// При 401 выполняет одно обновление токена и один повтор; повторный 401 возвращается как ErrUnauthorized
func (c *Client) do(ctx context.Context, endpoint, method, path string, query url.Values, in, out interface{}) error {
	cl, err := newCall(endpoint, method, path, query, in)
	if err != nil {
		return err
	}

	resp, err := c.send(ctx, cl, true)
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		drainAndClose(resp)

		if err := c.refresh(ctx, endpoint); err != nil {
			return err
		}

		c.log.Info("ClinicAPI %s: token refreshed, replaying request", endpoint)

		resp, err = c.send(ctx, cl, true)
		if err != nil {
			return err
		}

		if resp.StatusCode == http.StatusUnauthorized {
			drainAndClose(resp)
			c.log.Warn("ClinicAPI %s: unauthorized after token refresh, clearing credentials", endpoint)
			c.clearCredentials(ctx)
			return &TransportError{Op: endpoint, StatusCode: http.StatusUnauthorized, Err: ErrUnauthorized}
		}
	}

	defer resp.Body.Close()
	return decodeResponse(endpoint, resp, out)
}

// doPublic выполняет запрос без токена и без обновления (вход, обновление токена)
func (c *Client) doPublic(ctx context.Context, endpoint, method, path string, in, out interface{}) error {
	cl, err := newCall(endpoint, method, path, nil, in)
	if err != nil {
		return err
	}

	resp, err := c.send(ctx, cl, false)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return &TransportError{Op: endpoint, StatusCode: resp.StatusCode, Body: readErrorBody(resp), Err: ErrUnauthorized}
	}

	return decodeResponse(endpoint, resp, out)
}

func newCall(endpoint, method, path string, query url.Values, in interface{}) (*call, error) {
	cl := &call{endpoint: endpoint, method: method, path: path, query: query}

	if in != nil {
		body, err := json.Marshal(in)
		if err != nil {
			return nil, &TransportError{Op: endpoint, Err: fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)}
		}
		cl.body = body
	}

	return cl, nil
}

// send отправляет запрос; тело пересоздается на каждую попытку
func (c *Client) send(ctx context.Context, cl *call, authorize bool) (*http.Response, error) {
	target := c.baseURL + cl.path
	if len(cl.query) > 0 {
		target += "?" + cl.query.Encode()
	}

	var body io.Reader
	if cl.body != nil {
		body = bytes.NewReader(cl.body)
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, target, body)
	if err != nil {
		return nil, &TransportError{Op: cl.endpoint, Err: fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)}
	}

	req.Header.Set("Accept", "application/json")
	if cl.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if authorize {
		credentials, err := c.credentialsFrom(ctx).GetToken(ctx)
		if err != nil {
			return nil, &TransportError{Op: cl.endpoint, Err: fmt.Errorf("%w: failed to load credentials: %v", ErrInternal, err)}
		}
		if !credentials.IsEmpty() {
			req.Header.Set("Authorization", "Bearer "+credentials.AccessToken)
		}
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.ObserveUpstream(cl.endpoint, 0, time.Since(started))
		c.log.Error("ClinicAPI %s: request failed: %v", cl.endpoint, err)
		return nil, &TransportError{Op: cl.endpoint, Err: fmt.Errorf("%w: %v", ErrUnavailable, err)}
	}
	c.metrics.ObserveUpstream(cl.endpoint, resp.StatusCode, time.Since(started))

	return resp, nil
}

// refresh обновляет пару токенов текущей сессии
// Одновременные обновления одного refresh-токена объединяются в один запрос
func (c *Client) refresh(ctx context.Context, endpoint string) error {
	provider := c.credentialsFrom(ctx)

	credentials, err := provider.GetToken(ctx)
	if err != nil {
		return &TransportError{Op: endpoint, Err: fmt.Errorf("%w: failed to load credentials: %v", ErrInternal, err)}
	}

	if credentials.RefreshToken == "" {
		return &TransportError{Op: endpoint, StatusCode: http.StatusUnauthorized, Err: ErrUnauthorized}
	}

	_, err, _ = c.refreshGroup.Do(credentials.RefreshToken, func() (interface{}, error) {
		var pair TokenPair
		if err := c.doPublic(ctx, "refresh_token", http.MethodPost, "/auth/refresh",
			RefreshRequest{RefreshToken: credentials.RefreshToken}, &pair); err != nil {
			return nil, err
		}

		if pair.AccessToken == "" {
			return nil, fmt.Errorf("%w: empty access token", ErrInvalidResponse)
		}
		if pair.RefreshToken == "" {
			pair.RefreshToken = credentials.RefreshToken
		}

		if err := provider.SetToken(ctx, pair.ToDomain()); err != nil {
			return nil, fmt.Errorf("%w: failed to store refreshed credentials: %v", ErrInternal, err)
		}
		return pair, nil
	})

	if err != nil {
		c.metrics.IncTokenRefresh("failure")
		c.log.Warn("ClinicAPI %s: token refresh failed, clearing credentials: %v", endpoint, err)
		c.clearCredentials(ctx)
		return &TransportError{
			Op:         endpoint,
			StatusCode: http.StatusUnauthorized,
			Err:        fmt.Errorf("%w: %v", ErrRefreshFailed, err),
		}
	}

	c.metrics.IncTokenRefresh("success")
	return nil
}

func (c *Client) clearCredentials(ctx context.Context) {
	if err := c.credentialsFrom(ctx).Clear(ctx); err != nil {
		c.log.Error("ClinicAPI: failed to clear credentials: %v", err)
	}
}

// decodeResponse обрабатывает статус-код и декодирует тело ответа в out
func decodeResponse(endpoint string, resp *http.Response, out interface{}) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// Продолжаем обработку
	case resp.StatusCode == http.StatusBadRequest:
		return &TransportError{Op: endpoint, StatusCode: resp.StatusCode, Body: readErrorBody(resp), Err: ErrBadRequest}
	case resp.StatusCode == http.StatusForbidden:
		return &TransportError{Op: endpoint, StatusCode: resp.StatusCode, Body: readErrorBody(resp), Err: ErrForbidden}
	case resp.StatusCode == http.StatusNotFound:
		return &TransportError{Op: endpoint, StatusCode: resp.StatusCode, Body: readErrorBody(resp), Err: ErrNotFound}
	case resp.StatusCode == http.StatusConflict:
		return &TransportError{Op: endpoint, StatusCode: resp.StatusCode, Body: readErrorBody(resp), Err: ErrConflict}
	default:
		return &TransportError{Op: endpoint, StatusCode: resp.StatusCode, Body: readErrorBody(resp), Err: ErrInvalidResponse}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return &TransportError{Op: endpoint, StatusCode: resp.StatusCode, Err: fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)}
	}

	return nil
}

func readErrorBody(resp *http.Response) string {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyLength))
	return strings.TrimSpace(string(body))
}

func drainAndClose(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBodyLength))
	resp.Body.Close()
}
