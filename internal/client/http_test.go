package client

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fr4nk3nst1ner/offersleuth/internal/models"
)

func TestFetchOffers(t *testing.T) {
	payload := `[{"marker_icon":"go","experience_level":"mid","employment_types":[]}]`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") == "" {
			t.Error("Expected a User-Agent header")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(payload))
	}))
	defer server.Close()

	body, err := FetchOffers(context.Background(), CreateHTTPClient("", 5*time.Second), server.URL)
	if err != nil {
		t.Fatalf("Failed to fetch offers: %v", err)
	}
	if string(body) != payload {
		t.Errorf("Expected payload to be returned verbatim, got %s", body)
	}
}

func TestFetchOffersGzip(t *testing.T) {
	payload := `[]`
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, _ = zw.Write([]byte(payload))
	_ = zw.Close()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Encoding", "gzip")
		_, _ = w.Write(buf.Bytes())
	}))
	defer server.Close()

	httpClient := CreateHTTPClient("", 5*time.Second)
	body, err := FetchOffers(context.Background(), httpClient, server.URL)
	if err != nil {
		t.Fatalf("Failed to fetch offers: %v", err)
	}
	if string(body) != payload {
		t.Errorf("Expected %s, got %s", payload, body)
	}
}

func TestFetchOffersStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := FetchOffers(context.Background(), CreateHTTPClient("", time.Second), server.URL)
	var fetchErr *models.FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("Expected FetchError, got %v", err)
	}
	if fetchErr.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("Expected status 503, got %d", fetchErr.StatusCode)
	}
}

func TestFetchOffersBlockedPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(`<html><head><title>Just a moment...</title></head><body><form id="challenge-form"></form></body></html>`))
	}))
	defer server.Close()

	_, err := FetchOffers(context.Background(), CreateHTTPClient("", time.Second), server.URL)
	var fetchErr *models.FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("Expected FetchError, got %v", err)
	}
	if !strings.Contains(fetchErr.Reason, "bot challenge") || !strings.Contains(fetchErr.Reason, "Just a moment...") {
		t.Errorf("Unexpected reason: %s", fetchErr.Reason)
	}
}

func TestFetchOffersUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := FetchOffers(context.Background(), CreateHTTPClient("", time.Second), url)
	var fetchErr *models.FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("Expected FetchError, got %v", err)
	}
	if fetchErr.Err == nil {
		t.Error("Expected the transport error to be kept")
	}
}

func TestCreateHTTPClientInvalidProxy(t *testing.T) {
	httpClient := CreateHTTPClient("://bad proxy", 0)
	if httpClient.Timeout != defaultTimeout {
		t.Errorf("Expected default timeout %v, got %v", defaultTimeout, httpClient.Timeout)
	}
}

