package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"learning_assistant_backend/internal/config"
	"learning_assistant_backend/internal/model"
)

func sampleResult() *model.LearningResult {
	return &model.LearningResult{
		Topic:      "Go",
		SubTopics:  []string{"basics"},
		Difficulty: model.Beginner,
		Introduction: model.TopicIntroduction{
			Topic:              "Go",
			Introduction:       "Intro text.",
			Overview:           "Overview text.",
			LearningObjectives: []string{"learn things"},
			Prerequisites:      []string{"curiosity"},
			WordCount:          4,
		},
		SubtopicContents: []model.SubtopicContent{
			{
				Subtopic:  "basics",
				Content:   "## Basics\n\nBody text.",
				Sources:   []string{"https://src.example"},
				WordCount: 3,
			},
		},
		TotalWordCount:          7,
		EstimatedReadingMinutes: 1,
		CourseDesigned:          true,
	}
}

func TestRenderCourseMarkdown(t *testing.T) {
	doc := renderCourseMarkdown(sampleResult())

	for _, want := range []string{
		"# Go",
		"Difficulty: beginner",
		"## Introduction",
		"Intro text.",
		"## Overview",
		"- learn things",
		"## Prerequisites",
		"- curiosity",
		"## basics",
		"Body text.",
		"- https://src.example",
		"Total words: 7",
		"Estimated reading time: 1 min",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("rendered markdown missing %q:\n%s", want, doc)
		}
	}
}

func TestRenderCourseMarkdownOmitsEmptySections(t *testing.T) {
	result := sampleResult()
	result.Introduction.Overview = ""
	result.Introduction.Prerequisites = nil
	result.SubtopicContents[0].Sources = nil

	doc := renderCourseMarkdown(result)

	if strings.Contains(doc, "## Overview") {
		t.Error("empty overview must be omitted")
	}
	if strings.Contains(doc, "## Prerequisites") {
		t.Error("empty prerequisites must be omitted")
	}
	if strings.Contains(doc, "### Sources") {
		t.Error("empty sources must be omitted")
	}
}

func TestLocalStorageProviderUpload(t *testing.T) {
	dir := t.TempDir()
	provider := &LocalStorageProvider{Config: &config.StorageConfig{LocalPath: dir}}

	url, err := provider.Upload(context.Background(), "courses/abc.md", strings.NewReader("# Doc"), 5, "text/markdown")
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}
	if url != "/exports/courses/abc.md" {
		t.Errorf("url = %q", url)
	}

	data, err := os.ReadFile(filepath.Join(dir, "courses", "abc.md"))
	if err != nil {
		t.Fatalf("read uploaded file: %v", err)
	}
	if string(data) != "# Doc" {
		t.Errorf("file content = %q", data)
	}
}

func TestLocalStorageProviderDelete(t *testing.T) {
	dir := t.TempDir()
	provider := &LocalStorageProvider{Config: &config.StorageConfig{LocalPath: dir}}

	if _, err := provider.Upload(context.Background(), "gone.md", strings.NewReader("x"), 1, "text/markdown"); err != nil {
		t.Fatalf("Upload failed: %v", err)
	}
	if err := provider.Delete(context.Background(), "gone.md"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "gone.md")); !os.IsNotExist(err) {
		t.Error("file should be removed")
	}
}
