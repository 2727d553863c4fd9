package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"learning_assistant_backend/internal/config"
	"learning_assistant_backend/internal/model"
)

// scriptedGenerator 按提示词所属阶段路由固定回复
type scriptedGenerator struct {
	design    func() (string, error)
	intro     func() (string, error)
	subtopic  func(prompt string) (string, error)
	callOrder []string
}

func (g *scriptedGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	switch {
	case strings.Contains(prompt, "expert course designer"):
		g.callOrder = append(g.callOrder, "design")
		return g.design()
	case strings.Contains(prompt, "comprehensive introduction"):
		g.callOrder = append(g.callOrder, "intro")
		return g.intro()
	default:
		g.callOrder = append(g.callOrder, "subtopic")
		return g.subtopic(prompt)
	}
}

func newTestLearningService(gen TextGenerator) *LearningService {
	searcher := &fakeSearcher{fn: func(ctx context.Context, query string, maxResults int) ([]model.SearchResult, error) {
		return []model.SearchResult{{Title: "t", URL: "https://src.example/" + strings.Fields(query)[0]}}, nil
	}}
	extractor := &fakeExtractor{fn: func(ctx context.Context, url string) (string, error) {
		return "reference text", nil
	}}
	research := NewResearchService(searcher, extractor,
		config.PipelineConfig{WorkerLimit: 2, ResultsPerQuery: 3, MaxURLsPerSubtopic: 12},
		config.ExtractorConfig{MaxContentChars: 1000})
	return NewLearningService(NewContentGeneratorService(gen), research)
}

func words(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}

func TestCreateLearningContent(t *testing.T) {
	gen := &scriptedGenerator{
		design: func() (string, error) {
			return "First Steps\nDeep Dive", nil
		},
		intro: func() (string, error) {
			return sampleIntroResponse, nil
		},
		subtopic: func(prompt string) (string, error) {
			return "## Section\n\n" + words(50), nil
		},
	}

	svc := newTestLearningService(gen)

	var stages []string
	result, err := svc.CreateLearningContent(context.Background(), model.LearningRequest{
		Topic:      "Go",
		SubTopics:  []string{"anything"},
		Difficulty: model.Beginner,
		Language:   "english",
	}, func(stage string) { stages = append(stages, stage) })
	if err != nil {
		t.Fatalf("CreateLearningContent failed: %v", err)
	}

	wantStages := []string{
		model.StageDesigning,
		model.StageResearching,
		model.StageComposingIntro,
		model.StageComposingSubtopics,
		model.StageAggregating,
	}
	if len(stages) != len(wantStages) {
		t.Fatalf("stages = %v, want %v", stages, wantStages)
	}
	for i := range wantStages {
		if stages[i] != wantStages[i] {
			t.Errorf("stages[%d] = %s, want %s", i, stages[i], wantStages[i])
		}
	}

	if !result.CourseDesigned {
		t.Error("expected CourseDesigned=true")
	}
	if len(result.SubTopics) != 2 || result.SubTopics[0] != "First Steps" {
		t.Errorf("SubTopics = %v, want designed structure", result.SubTopics)
	}
	if len(result.SubtopicContents) != 2 {
		t.Fatalf("got %d subtopic contents, want 2", len(result.SubtopicContents))
	}
	if result.SubtopicContents[0].Subtopic != "First Steps" || result.SubtopicContents[1].Subtopic != "Deep Dive" {
		t.Errorf("subtopic contents out of order: %v, %v",
			result.SubtopicContents[0].Subtopic, result.SubtopicContents[1].Subtopic)
	}

	wantTotal := result.Introduction.WordCount +
		result.SubtopicContents[0].WordCount +
		result.SubtopicContents[1].WordCount
	if result.TotalWordCount != wantTotal {
		t.Errorf("TotalWordCount = %d, want %d", result.TotalWordCount, wantTotal)
	}

	// 导学必须先于所有子主题生成
	introIdx, firstSubIdx := -1, -1
	for i, call := range gen.callOrder {
		if call == "intro" && introIdx == -1 {
			introIdx = i
		}
		if call == "subtopic" && firstSubIdx == -1 {
			firstSubIdx = i
		}
	}
	if introIdx == -1 || firstSubIdx == -1 || introIdx > firstSubIdx {
		t.Errorf("introduction must be generated before subtopics, call order: %v", gen.callOrder)
	}
}

func TestCreateLearningContentDesignDegrades(t *testing.T) {
	gen := &scriptedGenerator{
		design: func() (string, error) {
			return "", errors.New("model unavailable")
		},
		intro: func() (string, error) {
			return sampleIntroResponse, nil
		},
		subtopic: func(prompt string) (string, error) {
			return words(20), nil
		},
	}

	svc := newTestLearningService(gen)

	user := []string{"alpha topic", "beta topic"}
	result, err := svc.CreateLearningContent(context.Background(), model.LearningRequest{
		Topic:      "Go",
		SubTopics:  user,
		Difficulty: model.Intermediate,
	}, nil)
	if err != nil {
		t.Fatalf("design failure must not fail the pipeline: %v", err)
	}

	if result.CourseDesigned {
		t.Error("expected CourseDesigned=false after design failure")
	}
	if len(result.SubTopics) != 2 || result.SubTopics[0] != "alpha topic" || result.SubTopics[1] != "beta topic" {
		t.Errorf("SubTopics = %v, want user subtopics preserved in order", result.SubTopics)
	}
}

func TestCreateLearningContentIntroFailureIsFatal(t *testing.T) {
	subtopicCalled := false
	gen := &scriptedGenerator{
		design: func() (string, error) {
			return "Only Subtopic Here", nil
		},
		intro: func() (string, error) {
			return "", errors.New("model unavailable")
		},
		subtopic: func(prompt string) (string, error) {
			subtopicCalled = true
			return words(20), nil
		},
	}

	svc := newTestLearningService(gen)

	result, err := svc.CreateLearningContent(context.Background(), model.LearningRequest{
		Topic:      "Go",
		SubTopics:  []string{"whatever"},
		Difficulty: model.Beginner,
	}, nil)
	if err == nil {
		t.Fatal("expected error when introduction generation fails")
	}
	if result != nil {
		t.Error("no partial result on fatal failure")
	}
	if subtopicCalled {
		t.Error("subtopic generation must not run after introduction failure")
	}
}

func TestCreateLearningContentSubtopicFailureIsFatal(t *testing.T) {
	gen := &scriptedGenerator{
		design: func() (string, error) {
			return "First Steps\nDeep Dive", nil
		},
		intro: func() (string, error) {
			return sampleIntroResponse, nil
		},
		subtopic: func(prompt string) (string, error) {
			if strings.Contains(prompt, "Deep Dive") {
				return "", errors.New("model unavailable")
			}
			return words(20), nil
		},
	}

	svc := newTestLearningService(gen)

	result, err := svc.CreateLearningContent(context.Background(), model.LearningRequest{
		Topic:      "Go",
		SubTopics:  []string{"whatever"},
		Difficulty: model.Beginner,
	}, nil)
	if err == nil {
		t.Fatal("expected error when a subtopic generation fails")
	}
	if result != nil {
		t.Error("no partial result on fatal failure")
	}
}

func TestEstimatedReadingMinutes(t *testing.T) {
	cases := []struct {
		name         string
		introWords   int
		bodyWords    int
		wantExactMin int
	}{
		{"short content clamps to one minute", 30, 50, 1},
		{"thousand words reads in five minutes", 500, 500, 5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gen := &scriptedGenerator{
				design: func() (string, error) {
					return "Single Subtopic", nil
				},
				intro: func() (string, error) {
					return "INTRODUCTION:\n" + words(tc.introWords-1), nil
				},
				subtopic: func(prompt string) (string, error) {
					return words(tc.bodyWords), nil
				},
			}

			svc := newTestLearningService(gen)

			result, err := svc.CreateLearningContent(context.Background(), model.LearningRequest{
				Topic:      "Go",
				SubTopics:  []string{"whatever"},
				Difficulty: model.Beginner,
			}, nil)
			if err != nil {
				t.Fatalf("CreateLearningContent failed: %v", err)
			}

			if result.TotalWordCount != tc.introWords+tc.bodyWords {
				t.Fatalf("TotalWordCount = %d, want %d", result.TotalWordCount, tc.introWords+tc.bodyWords)
			}
			if result.EstimatedReadingMinutes != tc.wantExactMin {
				t.Errorf("EstimatedReadingMinutes = %d, want %d", result.EstimatedReadingMinutes, tc.wantExactMin)
			}
		})
	}
}
