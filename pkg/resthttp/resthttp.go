package resthttp

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/fox-one/pkg/logger"
	"github.com/go-resty/resty/v2"
)

const (
	headerKeyRequestID = "X-Request-Id"
)

var runOnce sync.Once
var restyClient *resty.Client

// FetchError non-success response from a remote endpoint
type FetchError struct {
	StatusCode int
	Status     string
	URL        string
	Body       string
}

func (e *FetchError) Error() string {
	msg := fmt.Sprintf("fetch %s: %s", e.URL, e.Status)
	if e.Body != "" {
		msg += ": " + e.Body
	}

	return msg
}

// Client resty client
func Client() *resty.Client {
	runOnce.Do(func() {
		restyClient = resty.New().
			SetHeader("Content-Type", "application/json").
			SetHeader("Charset", "utf-8").
			SetTimeout(10 * time.Second)
	})

	return restyClient
}

// Request new resty request
func Request(ctx context.Context) *resty.Request {
	return Client().R().SetContext(ctx)
}

// WithRequestID resty request with request id
func WithRequestID(ctx context.Context, requestID string) *resty.Request {
	r := Request(ctx)
	if requestID != "" {
		r.SetHeader(headerKeyRequestID, requestID)
	}

	return r
}

// RequestID request id attached to the context logger by logger.WithRequestID
func RequestID(ctx context.Context) string {
	id, _ := logger.FromContext(ctx).Data[logger.RequestIdLogKey].(string)
	return id
}

// ParseResponse parse response, non 2xx responses become *FetchError
func ParseResponse(r *resty.Response, obj interface{}) error {
	if !r.IsSuccess() {
		return &FetchError{
			StatusCode: r.StatusCode(),
			Status:     r.Status(),
			URL:        r.Request.URL,
			Body:       truncate(string(r.Body()), 256),
		}
	}

	if obj != nil {
		if err := json.Unmarshal(r.Body(), obj); err != nil {
			return fmt.Errorf("decode %s: %w", r.Request.URL, err)
		}
	}

	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}

	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}

	return s[:n] + "..."
}
