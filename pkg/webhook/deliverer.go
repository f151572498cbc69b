package webhook

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const responseBodyLimit = 1000

// Target identifies one subscription endpoint for a delivery.
type Target struct {
	ID     string
	URL    string
	Secret string
}

// DeliveryResult records the final outcome of one delivery job, including how
// many HTTP attempts were actually made.
type DeliveryResult struct {
	Success      bool
	StatusCode   int // 0 when no response was received
	ResponseBody string
	Error        string
	Attempts     int
	ResponseTime time.Duration
}

// Deliverer posts signed payloads to subscriber endpoints.
//
// Retry policy per delivery:
//   - 2xx: success, stop.
//   - 4xx: permanent failure, stop immediately (client errors are not transient).
//   - 5xx / timeout / network error: retry with exponential backoff
//     (backoffBase, 2*backoffBase, 4*backoffBase, ...) up to maxAttempts total.
type Deliverer struct {
	client      *http.Client
	timeout     time.Duration
	maxAttempts int
	backoffBase time.Duration
	userAgent   string
}

func NewDeliverer(timeout time.Duration, maxAttempts int, backoffBase time.Duration, userAgent string) *Deliverer {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if maxAttempts < 1 {
		maxAttempts = 3
	}
	if backoffBase <= 0 {
		backoffBase = time.Second
	}
	if userAgent == "" {
		userAgent = "SmartSupport-Webhook/1.0"
	}
	return &Deliverer{
		client:      &http.Client{Timeout: timeout},
		timeout:     timeout,
		maxAttempts: maxAttempts,
		backoffBase: backoffBase,
		userAgent:   userAgent,
	}
}

// Deliver signs the payload and posts it to the target, retrying transient
// failures. It always returns a result; it never panics or blocks beyond the
// attempt timeouts plus backoff sleeps.
func (d *Deliverer) Deliver(ctx context.Context, target Target, payload map[string]interface{}) DeliveryResult {
	body, err := CanonicalJSON(payload)
	if err != nil {
		return DeliveryResult{
			Error:    fmt.Sprintf("encode payload: %v", err),
			Attempts: 0,
		}
	}
	signature := SignBytes(body, target.Secret)
	timestamp := time.Now().UTC().Format(time.RFC3339)

	var last DeliveryResult
	for attempt := 1; attempt <= d.maxAttempts; attempt++ {
		start := time.Now()
		statusCode, respBody, attemptErr := d.post(ctx, target, body, signature, timestamp)
		elapsed := time.Since(start)

		switch {
		case attemptErr == nil && statusCode >= 200 && statusCode < 300:
			return DeliveryResult{
				Success:      true,
				StatusCode:   statusCode,
				ResponseBody: respBody,
				Attempts:     attempt,
				ResponseTime: elapsed,
			}
		case attemptErr == nil && statusCode >= 400 && statusCode < 500:
			// Client error: the request itself is wrong, retrying won't help.
			return DeliveryResult{
				StatusCode:   statusCode,
				ResponseBody: respBody,
				Error:        fmt.Sprintf("HTTP %d: %s", statusCode, truncate(respBody, 200)),
				Attempts:     attempt,
				ResponseTime: elapsed,
			}
		case attemptErr == nil:
			last = DeliveryResult{
				StatusCode:   statusCode,
				ResponseBody: respBody,
				Error:        fmt.Sprintf("HTTP %d: %s", statusCode, truncate(respBody, 200)),
				Attempts:     attempt,
				ResponseTime: elapsed,
			}
		default:
			last = DeliveryResult{
				Error:        attemptErr.Error(),
				Attempts:     attempt,
				ResponseTime: elapsed,
			}
		}

		if attempt < d.maxAttempts {
			backoff := d.backoffBase << (attempt - 1)
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				last.Error = fmt.Sprintf("canceled during backoff: %v", ctx.Err())
				return last
			}
		}
	}
	return last
}

func (d *Deliverer) post(ctx context.Context, target Target, body []byte, signature, timestamp string) (int, string, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodPost, target.URL, bytes.NewReader(body))
	if err != nil {
		return 0, "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Webhook-Signature", signature)
	req.Header.Set("X-Webhook-Timestamp", timestamp)
	req.Header.Set("X-Webhook-ID", target.ID)
	req.Header.Set("User-Agent", d.userAgent)

	resp, err := d.client.Do(req)
	if err != nil {
		return 0, "", err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, responseBodyLimit))
	return resp.StatusCode, string(respBody), nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
