package service

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"learning_assistant_backend/internal/config"

	"github.com/go-shiori/go-readability"
)

// ExtractorService 抓取网页并用 readability 抽取正文，
// 实现 ContentExtractor 端口。页面抽不出正文返回空串，不算错误。
type ExtractorService struct {
	client *http.Client
}

func NewExtractorService(cfg config.ExtractorConfig) *ExtractorService {
	return &ExtractorService{
		client: &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
	}
}

func (s *ExtractorService) Extract(ctx context.Context, rawURL string) (string, error) {
	parsedURL, err := url.Parse(rawURL)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return "", fmt.Errorf("invalid URL: %s", rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, "GET", rawURL, nil)
	if err != nil {
		return "", err
	}
	// 部分站点屏蔽空UA
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; LearningAssistantBot/1.0)")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d for %s", resp.StatusCode, rawURL)
	}

	article, err := readability.FromReader(resp.Body, parsedURL)
	if err != nil {
		return "", fmt.Errorf("parse content: %w", err)
	}

	return strings.TrimSpace(article.TextContent), nil
}
