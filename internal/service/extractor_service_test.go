package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"learning_assistant_backend/internal/config"
)

const samplePage = `<!DOCTYPE html>
<html>
<head><title>Sample Article</title></head>
<body>
<article>
<h1>Sample Article</h1>
<p>This is the first paragraph of the article body with enough text to be considered real content by the readability heuristics. It keeps going for a while to make sure the extractor picks it up as the main article text.</p>
<p>A second paragraph follows with more useful information about the subject, also long enough to count as body content rather than boilerplate navigation.</p>
</article>
</body>
</html>`

func TestExtractorServiceExtract(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); !strings.Contains(ua, "LearningAssistantBot") {
			t.Errorf("User-Agent = %q", ua)
		}
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(samplePage))
	}))
	defer server.Close()

	svc := NewExtractorService(config.ExtractorConfig{TimeoutSeconds: 5})

	text, err := svc.Extract(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if !strings.Contains(text, "first paragraph of the article body") {
		t.Errorf("extracted text missing article body: %q", text)
	}
	if strings.Contains(text, "<p>") {
		t.Error("extracted text must not contain HTML tags")
	}
}

func TestExtractorServiceInvalidURL(t *testing.T) {
	svc := NewExtractorService(config.ExtractorConfig{TimeoutSeconds: 5})

	for _, bad := range []string{"not-a-url", "", "/relative/path"} {
		if _, err := svc.Extract(context.Background(), bad); err == nil {
			t.Errorf("expected error for invalid URL %q", bad)
		}
	}
}

func TestExtractorServiceHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	svc := NewExtractorService(config.ExtractorConfig{TimeoutSeconds: 5})

	if _, err := svc.Extract(context.Background(), server.URL); err == nil {
		t.Fatal("expected error on 404")
	}
}
