// Package storage uploads hotel assets to the backend's object storage.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"github.com/waspershola/africa-lodge-90-sub002/internal/config"
	"github.com/waspershola/africa-lodge-90-sub002/internal/domain"
)

const op = "storage.upload"

// Client puts objects into one bucket. Calls go through a circuit breaker so
// an unreachable storage endpoint fails fast instead of holding requests.
type Client struct {
	log     *slog.Logger
	http    *http.Client
	baseURL string
	key     string
	bucket  string
	cb      *gobreaker.CircuitBreaker
}

// New creates a storage client from the storage config section.
func New(log *slog.Logger, cfg config.StorageConfig) *Client {
	log = log.With("adapter", "storage")
	return &Client{
		log:     log,
		http:    &http.Client{Timeout: cfg.Timeout},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		key:     cfg.ServiceKey,
		bucket:  cfg.Bucket,
		cb: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "storage",
			Timeout: 30 * time.Second,
			ReadyToTrip: func(c gobreaker.Counts) bool {
				return c.ConsecutiveFailures >= 5
			},
			IsSuccessful: func(err error) bool {
				var se *statusError
				return err == nil || (errors.As(err, &se) && se.code < http.StatusInternalServerError)
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				log.Warn("circuit breaker state changed",
					slog.String("breaker", name),
					slog.String("from", from.String()),
					slog.String("to", to.String()),
				)
			},
		}),
	}
}

type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("storage responded %d: %s", e.code, e.body)
}

// Upload stores body at objectPath, replacing any existing object, and
// returns the object's public URL.
func (c *Client) Upload(ctx context.Context, objectPath, contentType string, body []byte) (string, error) {
	objectPath = strings.TrimLeft(objectPath, "/")

	_, err := c.cb.Execute(func() (any, error) {
		return nil, c.put(ctx, objectPath, contentType, body)
	})
	if err != nil {
		return "", toRemoteError(err)
	}

	c.log.InfoContext(ctx, "object uploaded",
		slog.String("bucket", c.bucket),
		slog.String("path", objectPath),
		slog.Int("bytes", len(body)),
	)
	return c.PublicURL(objectPath), nil
}

// PublicURL returns the anonymous download URL of an object.
func (c *Client) PublicURL(objectPath string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", c.baseURL, c.bucket, escapePath(objectPath))
}

func (c *Client) put(ctx context.Context, objectPath, contentType string, body []byte) error {
	target := fmt.Sprintf("%s/storage/v1/object/%s/%s", c.baseURL, c.bucket, escapePath(objectPath))

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, target, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-upsert", "true")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &statusError{code: resp.StatusCode, body: strings.TrimSpace(string(msg))}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func escapePath(p string) string {
	parts := strings.Split(p, "/")
	for i, s := range parts {
		parts[i] = url.PathEscape(s)
	}
	return strings.Join(parts, "/")
}

func toRemoteError(err error) error {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return domain.NewSoftFailure(op, domain.KindNetwork, "File storage is temporarily unavailable. Try again shortly.")
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &domain.RemoteError{Kind: domain.KindTimeout, Op: op, Err: err}
	}

	var se *statusError
	if errors.As(err, &se) {
		return &domain.RemoteError{Kind: kindForStatus(se.code), Op: op, Message: se.body, Err: err}
	}
	return &domain.RemoteError{Kind: domain.KindNetwork, Op: op, Err: err}
}

func kindForStatus(code int) domain.ErrorKind {
	switch {
	case code == http.StatusUnauthorized:
		return domain.KindAuth
	case code == http.StatusForbidden:
		return domain.KindForbidden
	case code == http.StatusNotFound:
		return domain.KindNotFound
	case code == http.StatusConflict:
		return domain.KindDuplicate
	case code == http.StatusRequestEntityTooLarge, code == http.StatusBadRequest, code == http.StatusUnsupportedMediaType:
		return domain.KindValidation
	case code >= http.StatusInternalServerError:
		return domain.KindNetwork
	}
	return domain.KindUnknown
}
