package whttp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSendHTTPRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") == "" {
			t.Error("expected a User-Agent header")
		}
		w.Header().Set("Content-Type", "text/html; charset=UTF-8")
		w.Write([]byte("<html><head><title> My \n Page </title></head><body>hello</body></html>"))
	}))
	defer srv.Close()

	res, err := SendHTTPRequest(context.Background(), &WHTTPReq{Method: "GET", URL: srv.URL}, nil)
	if err != nil {
		t.Fatalf("SendHTTPRequest failed: %v", err)
	}

	if res.StatusCode != 200 {
		t.Fatalf("expected status 200, got %d", res.StatusCode)
	}
	if res.ContentType != "text/html; charset=UTF-8" {
		t.Fatalf("unexpected content type %q", res.ContentType)
	}
	if res.HTTPTitle != "My  Page" {
		t.Fatalf("unexpected title %q", res.HTTPTitle)
	}
	if res.ResponseLength == 0 {
		t.Fatal("expected a non-empty body")
	}
}

func TestSendHTTPRequest_CustomHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got != "sgc-test" {
			t.Errorf("expected overridden User-Agent, got %q", got)
		}
	}))
	defer srv.Close()

	_, err := SendHTTPRequest(context.Background(), &WHTTPReq{
		Method:  "GET",
		URL:     srv.URL,
		Headers: []WHTTPHeader{{Name: "User-Agent", Value: "sgc-test"}},
	}, nil)
	if err != nil {
		t.Fatalf("SendHTTPRequest failed: %v", err)
	}
}

func TestNewClient_BadProxy(t *testing.T) {
	if _, err := NewClient("://not-a-url", 1); err == nil {
		t.Fatal("expected an error for an unparseable proxy URL")
	}
}
