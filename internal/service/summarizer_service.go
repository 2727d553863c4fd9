package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"learning_assistant_backend/internal/model"
	"learning_assistant_backend/internal/util"
	"learning_assistant_backend/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const summarizerMaxContentChars = 1500

// SummaryLength 摘要长度档位
type SummaryLength string

const (
	SummaryShort  SummaryLength = "short"
	SummaryMedium SummaryLength = "medium"
	SummaryLong   SummaryLength = "long"
)

var summaryLengthInstructions = map[SummaryLength]string{
	SummaryShort:  "Write a concise summary in 2-3 sentences.",
	SummaryMedium: "Write a summary in 1-2 paragraphs covering the key points.",
	SummaryLong:   "Write a detailed summary in 3-4 paragraphs covering all important aspects.",
}

// SummarizeRequest 即时检索摘要请求
type SummarizeRequest struct {
	Query         string        `json:"query" binding:"required"`
	MaxResults    int           `json:"max_results"`
	SummaryLength SummaryLength `json:"summary_length"`
}

// SummarySource 摘要引用的单个来源
type SummarySource struct {
	Title         string `json:"title"`
	URL           string `json:"url"`
	Snippet       string `json:"snippet"`
	ContentLength int    `json:"content_length"`
}

// SummarizeResponse 检索摘要结果
type SummarizeResponse struct {
	Query             string          `json:"query"`
	Summary           string          `json:"summary"`
	Sources           []SummarySource `json:"sources"`
	TotalContentChars int             `json:"total_content_chars"`
	ProcessingSeconds float64         `json:"processing_time"`
}

// SummarizerService 一次性的检索-抽取-摘要流程，同步执行，不落库
type SummarizerService struct {
	generator   TextGenerator
	searcher    WebSearcher
	extractor   ContentExtractor
	workerLimit int
}

func NewSummarizerService(generator TextGenerator, searcher WebSearcher, extractor ContentExtractor, workerLimit int) *SummarizerService {
	if workerLimit <= 0 {
		workerLimit = 4
	}
	return &SummarizerService{
		generator:   generator,
		searcher:    searcher,
		extractor:   extractor,
		workerLimit: workerLimit,
	}
}

func (s *SummarizerService) Summarize(ctx context.Context, req SummarizeRequest) (*SummarizeResponse, error) {
	start := time.Now()

	req.Query = strings.TrimSpace(req.Query)
	if req.Query == "" {
		return nil, util.ErrEmptyTopic
	}
	if req.MaxResults <= 0 {
		req.MaxResults = 5
	}
	if _, ok := summaryLengthInstructions[req.SummaryLength]; !ok {
		req.SummaryLength = SummaryMedium
	}

	results, err := s.searcher.Search(ctx, req.Query, req.MaxResults)
	if err != nil {
		return nil, util.ErrSearchUnavailable
	}
	if len(results) == 0 {
		return nil, util.ErrNoSearchResults
	}

	contents, sources := s.extractResults(ctx, results)
	if len(contents) == 0 {
		return nil, util.ErrNoSearchResults
	}

	totalChars := 0
	for _, s := range sources {
		totalChars += s.ContentLength
	}

	prompt := buildSummaryPrompt(req.Query, contents, req.SummaryLength)
	summary, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	return &SummarizeResponse{
		Query:             req.Query,
		Summary:           strings.TrimSpace(summary),
		Sources:           sources,
		TotalContentChars: totalChars,
		ProcessingSeconds: time.Since(start).Seconds(),
	}, nil
}

// extractResults 并发抽取搜索结果正文，失败与空页面直接跳过，保持结果顺序
func (s *SummarizerService) extractResults(ctx context.Context, results []model.SearchResult) ([]string, []SummarySource) {
	out := make([]string, len(results))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workerLimit)
	for i, r := range results {
		i, r := i, r
		g.Go(func() error {
			content, err := s.extractor.Extract(gctx, r.URL)
			if err != nil {
				logger.Log.Warn("extraction failed during summarize",
					zap.String("url", r.URL), zap.Error(err))
				return nil
			}
			if content == "" {
				return nil
			}
			mu.Lock()
			out[i] = truncateChars(content, summarizerMaxContentChars)
			mu.Unlock()
			return nil
		})
	}
	g.Wait()

	var contents []string
	var sources []SummarySource
	for i, content := range out {
		if content == "" {
			continue
		}
		contents = append(contents, content)
		sources = append(sources, SummarySource{
			Title:         results[i].Title,
			URL:           results[i].URL,
			Snippet:       results[i].Snippet,
			ContentLength: len(content),
		})
	}
	return contents, sources
}

func buildSummaryPrompt(query string, contents []string, length SummaryLength) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Summarize the following web content about \"%s\".\n\n", query)
	for i, c := range contents {
		fmt.Fprintf(&b, "Source %d:\n%s\n\n", i+1, c)
	}
	b.WriteString(summaryLengthInstructions[length])
	b.WriteString(" Base the summary only on the content above.")

	return b.String()
}
