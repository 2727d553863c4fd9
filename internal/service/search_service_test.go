package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"learning_assistant_backend/internal/config"
)

func searxPayload(n int) map[string]interface{} {
	results := make([]map[string]string, 0, n)
	for i := 0; i < n; i++ {
		results = append(results, map[string]string{
			"title":   "Result",
			"url":     "https://r.example/" + string(rune('a'+i)),
			"content": "snippet",
		})
	}
	return map[string]interface{}{"results": results}
}

func TestSearchServiceSearch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("path = %s, want /search", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("q") != "golang testing" {
			t.Errorf("q = %q", q.Get("q"))
		}
		if q.Get("format") != "json" {
			t.Errorf("format = %q, want json", q.Get("format"))
		}
		json.NewEncoder(w).Encode(searxPayload(2))
	}))
	defer server.Close()

	svc := NewSearchService(config.SearchConfig{BaseURL: server.URL, MaxResults: 3})

	results, err := svc.Search(context.Background(), "golang testing", 3)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].URL != "https://r.example/a" || results[0].Snippet != "snippet" {
		t.Errorf("unexpected result: %+v", results[0])
	}
}

func TestSearchServiceCapsResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(searxPayload(10))
	}))
	defer server.Close()

	svc := NewSearchService(config.SearchConfig{BaseURL: server.URL, MaxResults: 3})

	results, err := svc.Search(context.Background(), "query", 3)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 3 {
		t.Errorf("got %d results, want cap of 3", len(results))
	}
}

func TestSearchServiceEmptyResultsIsNotError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"results": []interface{}{}})
	}))
	defer server.Close()

	svc := NewSearchService(config.SearchConfig{BaseURL: server.URL, MaxResults: 3})

	results, err := svc.Search(context.Background(), "obscure query", 3)
	if err != nil {
		t.Fatalf("empty results must not be an error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("got %d results, want 0", len(results))
	}
}

func TestSearchServiceSkipsMissingURLs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"results": []map[string]string{
				{"title": "no url", "content": "x"},
				{"title": "ok", "url": "https://ok.example", "content": "y"},
			},
		})
	}))
	defer server.Close()

	svc := NewSearchService(config.SearchConfig{BaseURL: server.URL, MaxResults: 3})

	results, err := svc.Search(context.Background(), "query", 3)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 1 || results[0].URL != "https://ok.example" {
		t.Errorf("results = %+v, want only the entry with a URL", results)
	}
}

func TestSearchServiceHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "backend down", http.StatusBadGateway)
	}))
	defer server.Close()

	svc := NewSearchService(config.SearchConfig{BaseURL: server.URL, MaxResults: 3})

	if _, err := svc.Search(context.Background(), "query", 3); err == nil {
		t.Fatal("expected error on non-200 status")
	}
}

func TestSearchServiceSendsAPIKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("Authorization = %q, want Bearer secret", got)
		}
		json.NewEncoder(w).Encode(searxPayload(1))
	}))
	defer server.Close()

	svc := NewSearchService(config.SearchConfig{BaseURL: server.URL, APIKey: "secret", MaxResults: 3})

	if _, err := svc.Search(context.Background(), "query", 3); err != nil {
		t.Fatalf("Search failed: %v", err)
	}
}
