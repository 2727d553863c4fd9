package service

import (
	"context"
	"sync"

	"learning_assistant_backend/internal/config"
	"learning_assistant_backend/internal/model"
	"learning_assistant_backend/internal/util"
	"learning_assistant_backend/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ResearchService 把查询集合变成研究语料（ResearchCorpus）。
// 单条查询或单个URL的失败只记录日志并跳过，不会中断任务；
// 仅当整个收集过程中所有搜索调用全部失败时才返回错误。
type ResearchService struct {
	searcher        WebSearcher
	extractor       ContentExtractor
	cfg             config.PipelineConfig
	maxContentChars int
}

func NewResearchService(searcher WebSearcher, extractor ContentExtractor, pipelineCfg config.PipelineConfig, extractorCfg config.ExtractorConfig) *ResearchService {
	return &ResearchService{
		searcher:        searcher,
		extractor:       extractor,
		cfg:             pipelineCfg,
		maxContentChars: extractorCfg.MaxContentChars,
	}
}

// searchTally 统计整次收集中搜索调用的成败，用于识别检索服务整体不可用
type searchTally struct {
	mu        sync.Mutex
	attempted int
	failed    int
}

func (t *searchTally) record(failed bool) {
	t.mu.Lock()
	t.attempted++
	if failed {
		t.failed++
	}
	t.mu.Unlock()
}

func (t *searchTally) allFailed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.attempted > 0 && t.failed == t.attempted
}

// Collect 执行 搜索→URL去重→并发抽取 的完整研究阶段。
// 每个子主题都会得到语料条目，即使为空。
func (s *ResearchService) Collect(ctx context.Context, topicQueries []string, subtopicQueries map[string][]string) (*model.ResearchCorpus, error) {
	tally := &searchTally{}

	// 主题语料
	topicURLs := s.gatherURLs(ctx, topicQueries, tally)
	topicContent := s.extractAll(ctx, topicURLs)

	// 子主题语料：子主题之间并发，受统一的 worker 上限约束
	subtopicContent := make(map[string]map[string]string, len(subtopicQueries))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.WorkerLimit)

	for subtopic, queries := range subtopicQueries {
		subtopic, queries := subtopic, queries
		g.Go(func() error {
			urls := s.gatherURLs(gctx, queries, tally)
			if len(urls) > s.cfg.MaxURLsPerSubtopic {
				urls = urls[:s.cfg.MaxURLsPerSubtopic]
			}

			content := map[string]string{}
			if len(urls) > 0 {
				content = s.extractAll(gctx, urls)
			}

			mu.Lock()
			subtopicContent[subtopic] = content
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if tally.allFailed() {
		return nil, util.ErrSearchUnavailable
	}

	return &model.ResearchCorpus{
		TopicContent:    topicContent,
		SubtopicContent: subtopicContent,
	}, nil
}

// gatherURLs 执行一组查询并把返回的URL求并去重，保持首次出现顺序
func (s *ResearchService) gatherURLs(ctx context.Context, queries []string, tally *searchTally) []string {
	seen := make(map[string]bool)
	var urls []string

	for _, query := range queries {
		results, err := s.searcher.Search(ctx, query, s.cfg.ResultsPerQuery)
		tally.record(err != nil)
		if err != nil {
			logger.Log.Warn("search query failed",
				zap.String("query", query),
				zap.Error(err))
			continue
		}
		for _, r := range results {
			if !seen[r.URL] {
				seen[r.URL] = true
				urls = append(urls, r.URL)
			}
		}
	}

	return urls
}

// extractAll 并发抽取一组URL的正文，只保留非空结果，
// 并截断到配置的前缀长度以约束下游提示词体积
func (s *ResearchService) extractAll(ctx context.Context, urls []string) map[string]string {
	content := make(map[string]string, len(urls))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.WorkerLimit)

	for _, u := range urls {
		u := u
		g.Go(func() error {
			text, err := s.extractor.Extract(gctx, u)
			if err != nil {
				logger.Log.Warn("content extraction failed",
					zap.String("url", u),
					zap.Error(err))
				return nil
			}
			if text == "" {
				return nil
			}
			if len(text) > s.maxContentChars {
				text = text[:s.maxContentChars]
			}

			mu.Lock()
			content[u] = text
			mu.Unlock()
			return nil
		})
	}

	g.Wait()
	return content
}
