package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amonks/lists/internal/config"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

func TestHandlerServesLists(t *testing.T) {
	s := New(Options{Logger: zaptest.NewLogger(t)})
	server := httptest.NewServer(s.Handler())
	defer server.Close()

	resp, err := http.Get(server.URL + "/lists")
	if err != nil {
		t.Fatalf("get lists: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}
	if cookie := resp.Header.Get("Set-Cookie"); cookie == "" {
		t.Fatal("expected a session cookie")
	}
}

func TestHandlerUsesConfiguredCookieName(t *testing.T) {
	cfg := config.Default()
	cfg.Session.CookieName = "custom_session"
	s := New(Options{Config: cfg})
	server := httptest.NewServer(s.Handler())
	defer server.Close()

	resp, err := http.Get(server.URL + "/lists")
	if err != nil {
		t.Fatalf("get lists: %v", err)
	}
	defer resp.Body.Close()
	found := false
	for _, cookie := range resp.Cookies() {
		if cookie.Name == "custom_session" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected custom_session cookie, got %v", resp.Cookies())
	}
}

func TestRecoverHandlerLogsPanics(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	s := New(Options{Logger: zap.New(core)})
	handler := s.recoverHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/lists", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
	entries := logs.FilterMessage("panic handling request").All()
	if len(entries) != 1 {
		t.Fatalf("expected one panic log entry, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["path"]; got != "/lists" {
		t.Fatalf("expected path field /lists, got %v", got)
	}
}

func TestLogHandlerRecordsStatus(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	s := New(Options{Logger: zap.New(core)})
	handler := s.logHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/lists", http.StatusSeeOther)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/lists", nil))

	entries := logs.FilterMessage("request").All()
	if len(entries) != 1 {
		t.Fatalf("expected one request log entry, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["status"]; got != int64(http.StatusSeeOther) {
		t.Fatalf("expected status field 303, got %v (%T)", got, got)
	}
}

func TestServeStopsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	cfg := config.Default()
	cfg.Session.SweepInterval = 10 * time.Millisecond
	s := New(Options{Config: cfg})

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- s.serve(ctx, listener)
	}()

	client := &http.Client{Transport: &http.Transport{DisableKeepAlives: true}}
	url := "http://" + listener.Addr().String() + "/lists"
	var resp *http.Response
	for i := 0; i < 50; i++ {
		resp, err = client.Get(url)
		if err == nil {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	if err != nil {
		cancel()
		t.Fatalf("get lists: %v", err)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	client.CloseIdleConnections()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("serve: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not stop after cancel")
	}
}

func TestServeRejectsBadAddress(t *testing.T) {
	s := New(Options{})
	if err := s.Serve(context.Background(), "not-an-address"); err == nil {
		t.Fatal("expected listen error")
	}
}

func TestMiddlewareLogsPanickedRequests(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	s := New(Options{Logger: zap.New(core)})
	handler := s.middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/lists/1", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
	entries := logs.FilterMessage("request").All()
	if len(entries) != 1 {
		t.Fatalf("expected one request log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["status"] != int64(http.StatusInternalServerError) || fields["path"] != "/lists/1" {
		t.Fatalf("expected request entry with status 500 for /lists/1, got %v", fields)
	}
	if logs.FilterMessage("panic handling request").Len() != 1 {
		t.Fatal("expected the panic to be logged")
	}
}
