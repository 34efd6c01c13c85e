package service

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"eduflow_backend/internal/config"
	"eduflow_backend/internal/util"
)

// AIService generates course descriptions through an OpenAI-compatible
// chat completion endpoint. Nothing it produces is persisted; the text is
// streamed to the caller, who decides what to do with it.
type AIService struct {
	mu     sync.RWMutex
	config config.AIConfig
	client *http.Client
}

func NewAIService(cfg config.AIConfig) *AIService {
	return &AIService{
		config: cfg,
		client: &http.Client{Timeout: 2 * time.Minute},
	}
}

// UpdateConfig swaps the collaborator settings on config hot reload.
func (s *AIService) UpdateConfig(cfg config.AIConfig) {
	s.mu.Lock()
	s.config = cfg
	s.mu.Unlock()
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionChunk struct {
	Choices []struct {
		Delta chatMessage `json:"delta"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// GenerateDescription streams chunks of a generated course description.
// Cancelling ctx (typically the caller disconnecting) aborts the upstream
// request. Both channels close when the stream ends.
func (s *AIService) GenerateDescription(ctx context.Context, title, category string) (<-chan string, <-chan error) {
	out := make(chan string)
	errChan := make(chan error, 1)

	s.mu.RLock()
	cfg := s.config
	s.mu.RUnlock()

	prompt := fmt.Sprintf("Write a compelling course description for an online course titled %q.", title)
	if category != "" {
		prompt = fmt.Sprintf("Write a compelling course description for an online course titled %q in the %q category.", title, category)
	}
	prompt += " The description should be 150-200 words, highlight what students will learn," +
		" who the course is for, and end with an encouraging call to action. Write plain prose, no headings or lists."

	reqBody := map[string]interface{}{
		"model": cfg.Model,
		"messages": []chatMessage{
			{Role: "system", Content: "You are a marketing copywriter for an online learning platform."},
			{Role: "user", Content: prompt},
		},
		"stream": true,
	}
	jsonData, _ := json.Marshal(reqBody)

	go func() {
		defer close(out)
		defer close(errChan)

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, cfg.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
		if err != nil {
			errChan <- fmt.Errorf("%w: %v", util.ErrUnavailable, err)
			return
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+cfg.APIKey)

		resp, err := s.client.Do(req)
		if err != nil {
			errChan <- fmt.Errorf("%w: %v", util.ErrUnavailable, err)
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
			errChan <- fmt.Errorf("%w: collaborator status %d: %s", util.ErrUnavailable, resp.StatusCode, string(body))
			return
		}

		reader := bufio.NewReader(resp.Body)
		for {
			line, err := reader.ReadString('\n')
			if err != nil {
				if err != io.EOF && ctx.Err() == nil {
					errChan <- fmt.Errorf("%w: %v", util.ErrUnavailable, err)
				}
				return
			}

			line = strings.TrimSpace(line)
			if !strings.HasPrefix(line, "data: ") {
				continue
			}
			data := strings.TrimPrefix(line, "data: ")
			if data == "[DONE]" {
				return
			}

			var chunk chatCompletionChunk
			if err := json.Unmarshal([]byte(data), &chunk); err != nil {
				continue
			}
			if chunk.Error != nil {
				errChan <- fmt.Errorf("%w: %s", util.ErrUnavailable, chunk.Error.Message)
				return
			}

			if len(chunk.Choices) > 0 {
				if content := chunk.Choices[0].Delta.Content; content != "" {
					select {
					case out <- content:
					case <-ctx.Done():
						return
					}
				}
			}
		}
	}()

	return out, errChan
}
