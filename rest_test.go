package linkcache

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/unkn0wn-root/linkcache/internal/proto"
)

func newTestExecutor(t *testing.T, baseURL string) *executor {
	t.Helper()
	e, err := newExecutor(baseURL, &http.Client{}, NopLogger{}, NopHooks{})
	if err != nil {
		t.Fatalf("newExecutor: %v", err)
	}
	return e
}

func TestExecutorBackgroundMarker(t *testing.T) {
	var gotQuery []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = append(gotQuery, r.URL.Query().Get("background"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	e := newTestExecutor(t, srv.URL)
	ctx := context.Background()

	if err := e.do(ctx, proto.ClearNow(time.Second), false, nil); err != nil {
		t.Fatalf("do(wait=false): %v", err)
	}
	if err := e.do(ctx, proto.ClearNow(time.Second), true, nil); err != nil {
		t.Fatalf("do(wait=true): %v", err)
	}

	if gotQuery[0] != "true" {
		t.Fatalf("wait=false must send background=true, got %q", gotQuery[0])
	}
	if gotQuery[1] != "" {
		t.Fatalf("wait=true must not send background marker, got %q", gotQuery[1])
	}
}

func TestExecutorEscapedPathReachesServer(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.Write([]byte("null"))
	}))
	defer srv.Close()

	e := newTestExecutor(t, srv.URL)
	var out proto.Payload
	if err := e.do(context.Background(), proto.Get("user:1", time.Second), true, &out); err != nil {
		t.Fatalf("do: %v", err)
	}
	if gotPath != "/user%3A1" {
		t.Fatalf("escaped path = %q, want /user%%3A1", gotPath)
	}
	if out != nil {
		t.Fatalf("null body must decode to nil payload")
	}
}

func TestExecutorServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "link graph unavailable", http.StatusInternalServerError)
	}))
	defer srv.Close()

	e := newTestExecutor(t, srv.URL)
	err := e.do(context.Background(), proto.Get("a", time.Second), true, nil)

	var se *ServiceError
	if !errors.As(err, &se) {
		t.Fatalf("want ServiceError, got %T (%v)", err, err)
	}
	if se.Status != http.StatusInternalServerError {
		t.Fatalf("status = %d", se.Status)
	}
	if se.Message != "link graph unavailable" {
		t.Fatalf("original message not preserved: %q", se.Message)
	}
	if se.Op != "get" {
		t.Fatalf("op = %q", se.Op)
	}
}

func TestExecutorTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	e := newTestExecutor(t, srv.URL)
	err := e.do(context.Background(), proto.ClearNow(time.Second), true, nil)

	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatalf("want TransportError, got %T (%v)", err, err)
	}
}

func TestExecutorTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))
	defer srv.Close()

	e := newTestExecutor(t, srv.URL)
	start := time.Now()
	err := e.do(context.Background(), proto.Get("slow", 50*time.Millisecond), true, nil)
	if err == nil {
		t.Fatalf("expected timeout error")
	}
	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatalf("want TransportError, got %T", err)
	}
	if time.Since(start) > 2*time.Second {
		t.Fatalf("request timeout not applied")
	}
}

func TestExecutorMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{not json"))
	}))
	defer srv.Close()

	e := newTestExecutor(t, srv.URL)
	var out proto.Payload
	err := e.do(context.Background(), proto.Get("a", time.Second), true, &out)

	var se *ServiceError
	if !errors.As(err, &se) {
		t.Fatalf("want ServiceError for malformed body, got %T (%v)", err, err)
	}
	if se.Err == nil {
		t.Fatalf("malformed-body cause not preserved")
	}
}

func TestExecutorRequestHeadersAndBody(t *testing.T) {
	var gotCT, gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCT = r.Header.Get("Content-Type")
		gotMethod = r.Method
	}))
	defer srv.Close()

	e := newTestExecutor(t, srv.URL)
	req := proto.Set("k", []byte("v"), time.Minute, nil, false, time.Second)
	if err := e.do(context.Background(), req, true, nil); err != nil {
		t.Fatalf("do: %v", err)
	}
	if gotMethod != http.MethodPut {
		t.Fatalf("method = %q", gotMethod)
	}
	if gotCT != "application/json" {
		t.Fatalf("content type = %q", gotCT)
	}
}
