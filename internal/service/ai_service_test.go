package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"eduflow_backend/internal/config"
	"eduflow_backend/internal/util"
)

func sseChunk(content string) string {
	return fmt.Sprintf(`data: {"choices":[{"delta":{"content":%q}}]}`+"\n\n", content)
}

func TestGenerateDescriptionStreams(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("Authorization = %q", auth)
		}

		w.Header().Set("Content-Type", "text/event-stream")
		flusher := w.(http.Flusher)
		for _, chunk := range []string{"Learn ", "Go ", "today."} {
			fmt.Fprint(w, sseChunk(chunk))
			flusher.Flush()
		}
		fmt.Fprint(w, "data: [DONE]\n\n")
	}))
	defer server.Close()

	svc := NewAIService(config.AIConfig{BaseURL: server.URL, APIKey: "test-key", Model: "test-model"})

	stream, errChan := svc.GenerateDescription(context.Background(), "Intro to Go", "Programming")

	var parts []string
	for chunk := range stream {
		parts = append(parts, chunk)
	}
	if err := <-errChan; err != nil {
		t.Fatalf("stream error: %v", err)
	}

	got := strings.Join(parts, "")
	if got != "Learn Go today." {
		t.Errorf("streamed text = %q", got)
	}
}

func TestGenerateDescriptionCollaboratorDown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	}))
	defer server.Close()

	svc := NewAIService(config.AIConfig{BaseURL: server.URL, APIKey: "k", Model: "m"})

	stream, errChan := svc.GenerateDescription(context.Background(), "Doomed Course", "")
	for range stream {
	}
	if err := <-errChan; !errors.Is(err, util.ErrUnavailable) {
		t.Fatalf("err = %v, want unavailable", err)
	}
}

func TestGenerateDescriptionCancelled(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		flusher := w.(http.Flusher)
		fmt.Fprint(w, sseChunk("partial "))
		flusher.Flush()
		<-release // hold the stream open until the test is done
	}))
	defer server.Close()
	defer close(release)

	svc := NewAIService(config.AIConfig{BaseURL: server.URL, APIKey: "k", Model: "m"})

	ctx, cancel := context.WithCancel(context.Background())
	stream, errChan := svc.GenerateDescription(ctx, "Abandoned Course", "")

	if first, ok := <-stream; !ok || first != "partial " {
		t.Fatalf("first chunk = %q, ok = %v", first, ok)
	}
	cancel()

	// The channels must close promptly once the caller goes away.
	done := make(chan struct{})
	go func() {
		for range stream {
		}
		<-errChan
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("stream did not shut down after cancellation")
	}
}
