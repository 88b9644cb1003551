package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/mmcdole/barback/internal/domain"
)

const (
	// DefaultTimeout matches the request timeout of a default mobile URL session
	DefaultTimeout = 60 * time.Second
	userAgent      = "Barback/1.0"

	// payloadPreviewLen bounds how much of a raw payload is written to the debug log
	payloadPreviewLen = 200
)

// Decoder parses a raw response body into one response shape
type Decoder[T any] func(body []byte) (T, error)

// StatusError is the cause of a network error raised for a non-200 response
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code: %d", e.Code)
}

// StatusCode extracts the HTTP status from an error, or 0 if none is present
func StatusCode(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code
	}
	return 0
}

// Client performs validated JSON GET requests. It is stateless per call and
// safe for concurrent use.
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a fetch client. A nil httpClient gets DefaultTimeout.
func NewClient(httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		httpClient: httpClient,
		logger:     logger,
	}
}

// ParseURL validates an endpoint string. Only absolute http(s) URLs with a
// host are accepted.
func ParseURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, domain.NewFetchError(domain.KindInvalidURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, domain.NewFetchError(domain.KindInvalidURL, fmt.Errorf("not an absolute http url: %q", raw))
	}
	return u, nil
}

// Get fetches u and decodes the body with decode. Every failure is a
// *domain.FetchError: errors already in the taxonomy pass through, anything
// else becomes a network error.
func Get[T any](ctx context.Context, c *Client, u *url.URL, decode Decoder[T]) (T, error) {
	var zero T

	logger := c.logger.With("request_id", uuid.NewString(), "url", u.String())

	body, err := c.doRequest(ctx, logger, u)
	if err != nil {
		return zero, err
	}

	value, err := decode(body)
	if err != nil {
		if fe, ok := domain.AsFetchError(err); ok {
			logger.Error("decode failed", "kind", fe.Kind.String(), "error", err)
			return zero, fe
		}
		// The decoder diagnostic is logged but not surfaced
		logger.Error("decode failed", "kind", domain.KindDecoding.String(), "error", err)
		return zero, domain.NewFetchError(domain.KindDecoding, nil)
	}

	logger.Debug("fetch succeeded", "bytes", len(body))
	return value, nil
}

// doRequest performs the GET and validates status and body
func (c *Client) doRequest(ctx context.Context, logger *slog.Logger, u *url.URL) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, domain.NetworkError(fmt.Errorf("failed to create request: %w", err))
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	logger.Debug("fetching")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error("request failed", "error", err)
		return nil, domain.NetworkError(err)
	}
	defer resp.Body.Close()

	logger.Debug("response received", "status", resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		logger.Error("bad status code", "status", resp.StatusCode)
		return nil, domain.NetworkError(&StatusError{Code: resp.StatusCode})
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Error("failed to read response", "error", err)
		return nil, domain.NetworkError(fmt.Errorf("failed to read response: %w", err))
	}

	if len(body) == 0 {
		logger.Error("empty response body")
		return nil, domain.NewFetchError(domain.KindNoData, nil)
	}

	logger.Debug("raw payload", "prefix", preview(body))
	return body, nil
}

// preview returns at most payloadPreviewLen bytes of body, cut on a rune
// boundary so the log line stays valid UTF-8.
func preview(body []byte) string {
	if len(body) <= payloadPreviewLen {
		return string(body)
	}
	end := payloadPreviewLen
	for end > 0 && !utf8.RuneStart(body[end]) {
		end--
	}
	return string(body[:end])
}
