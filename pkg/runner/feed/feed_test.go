package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"tableflip.dev/eventscout/pkg/api"
)

func TestEmptyFeedIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"events":[]}`))
	}))
	defer srv.Close()

	n := &Feed{Client: api.New(srv.URL)}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("an empty feed must not fail, got %v", err)
	}
}

func TestFeedTransportFailureIsAnError(t *testing.T) {
	srv := httptest.NewServer(nil)
	srv.Close() // connection refused from here on

	n := &Feed{Client: api.New(srv.URL)}
	if err := n.Do(context.Background()); err == nil {
		t.Fatal("a transport failure must surface as an error")
	}
}

func TestFeedServerErrorIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"db down"}`))
	}))
	defer srv.Close()

	n := &Feed{Client: api.New(srv.URL)}
	if err := n.Do(context.Background()); err == nil {
		t.Fatal("a server failure must surface as an error")
	}
}
