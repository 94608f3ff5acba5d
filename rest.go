package linkcache

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/unkn0wn-root/linkcache/internal/proto"
)

// Doer is the transport collaborator. *http.Client satisfies it; retry
// policy, pooling and TLS belong to the implementation, not to this client.
type Doer interface {
	Do(*http.Request) (*http.Response, error)
}

// executor dispatches built requests through the transport and translates
// failures into TransportError / ServiceError. It never retries.
type executor struct {
	base  string // endpoint without trailing slash
	http  Doer
	log   Logger
	hooks Hooks
}

func newExecutor(baseURL string, doer Doer, log Logger, hooks Hooks) (*executor, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}
	return &executor{
		base:  strings.TrimRight(u.String(), "/"),
		http:  doer,
		log:   log,
		hooks: hooks,
	}, nil
}

// do sends one request and unmarshals the JSON response body into out (out
// may be nil to discard the acknowledgment). wait=false adds the
// background=true marker that tells the service to acknowledge receipt and
// finish asynchronously; the call itself is always synchronous.
func (e *executor) do(ctx context.Context, req proto.Request, wait bool, out any) error {
	q := url.Values{}
	for k, vs := range req.Query {
		q[k] = vs
	}
	if !wait {
		q.Set("background", "true")
	}

	full := e.base + req.Path
	if len(q) > 0 {
		full += "?" + q.Encode()
	}

	var body io.Reader
	if req.Body != nil {
		b, err := json.Marshal(req.Body)
		if err != nil {
			return &TransportError{Op: req.Op, Method: req.Method, URL: full, Err: err}
		}
		body = bytes.NewReader(b)
	}

	if req.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, full, body)
	if err != nil {
		return &TransportError{Op: req.Op, Method: req.Method, URL: full, Err: err}
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := e.http.Do(httpReq)
	if err != nil {
		e.hooks.TransportFault(req.Op, err)
		return &TransportError{Op: req.Op, Method: req.Method, URL: full, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		e.hooks.TransportFault(req.Op, err)
		return &TransportError{Op: req.Op, Method: req.Method, URL: full, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		e.hooks.ServiceFault(req.Op, resp.StatusCode)
		e.log.Warn("service fault", Fields{
			"op":     req.Op,
			"status": resp.StatusCode,
			"took":   time.Since(start),
		})
		return &ServiceError{
			Op:      req.Op,
			Status:  resp.StatusCode,
			Message: strings.TrimSpace(string(raw)),
		}
	}

	e.log.Debug("service call", Fields{
		"op":     req.Op,
		"status": resp.StatusCode,
		"took":   time.Since(start),
	})

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &ServiceError{
			Op:      req.Op,
			Status:  resp.StatusCode,
			Message: "malformed response body",
			Err:     err,
		}
	}
	return nil
}
