package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"learning_assistant_backend/internal/config"
	"learning_assistant_backend/internal/model"
)

// SearchService 通过兼容 SearXNG JSON 接口的检索服务执行网页搜索，
// 实现 WebSearcher 端口。
type SearchService struct {
	config config.SearchConfig
	client *http.Client
}

func NewSearchService(cfg config.SearchConfig) *SearchService {
	return &SearchService{
		config: cfg,
		client: &http.Client{Timeout: 20 * time.Second},
	}
}

type searchResponse struct {
	Results []struct {
		Title   string `json:"title"`
		URL     string `json:"url"`
		Content string `json:"content"`
	} `json:"results"`
}

func (s *SearchService) Search(ctx context.Context, query string, maxResults int) ([]model.SearchResult, error) {
	if maxResults <= 0 {
		maxResults = s.config.MaxResults
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("safesearch", "1")

	req, err := http.NewRequestWithContext(ctx, "GET", s.config.BaseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	if s.config.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.config.APIKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("search API error (status %d): %s", resp.StatusCode, truncateForLog(string(body)))
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	// 空结果是合法返回，由调用方决定如何降级
	results := make([]model.SearchResult, 0, maxResults)
	for _, r := range parsed.Results {
		if r.URL == "" {
			continue
		}
		results = append(results, model.SearchResult{
			Title:   r.Title,
			URL:     r.URL,
			Snippet: r.Content,
		})
		if len(results) >= maxResults {
			break
		}
	}

	return results, nil
}

func truncateForLog(s string) string {
	const limit = 200
	if len(s) > limit {
		return s[:limit] + "... (truncated " + strconv.Itoa(len(s)-limit) + " bytes)"
	}
	return s
}
