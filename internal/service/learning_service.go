package service

import (
	"context"
	"time"

	"learning_assistant_backend/internal/model"
	"learning_assistant_backend/internal/util"
	"learning_assistant_backend/pkg/logger"
	"learning_assistant_backend/pkg/monitoring"
	"learning_assistant_backend/pkg/tracing"

	"go.uber.org/zap"
)

// LearningService 按固定顺序驱动内容生成流水线：
// 课程设计（可降级）→ 研究收集 → 导学生成 → 子主题生成 → 聚合。
// 研究、导学、子主题任一阶段报错则整个任务失败，不产出部分结果。
type LearningService struct {
	generator *ContentGeneratorService
	research  *ResearchService
}

func NewLearningService(generator *ContentGeneratorService, research *ResearchService) *LearningService {
	return &LearningService{
		generator: generator,
		research:  research,
	}
}

// ProgressFunc 阶段进度回调，由任务运行器用于对外暴露进度
type ProgressFunc func(stage string)

func (s *LearningService) CreateLearningContent(ctx context.Context, req model.LearningRequest, progress ProgressFunc) (*model.LearningResult, error) {
	if progress == nil {
		progress = func(string) {}
	}

	language := req.Language
	if language == "" {
		language = util.DefaultLanguage
	}

	// 课程设计：失败只降级，绝不报错
	progress(model.StageDesigning)
	finalSubtopics, courseDesigned := s.runDesignStage(ctx, req, language)

	// 研究收集
	progress(model.StageResearching)
	corpus, err := s.runResearchStage(ctx, req.Topic, finalSubtopics)
	if err != nil {
		return nil, err
	}

	// 导学：必须先完成，子主题生成依赖其学习目标
	progress(model.StageComposingIntro)
	introduction, err := s.runIntroductionStage(ctx, req.Topic, finalSubtopics, req.Difficulty, corpus, language)
	if err != nil {
		return nil, err
	}

	// 子主题正文：按设计后的顺序组装
	progress(model.StageComposingSubtopics)
	subtopicContents, err := s.runSubtopicStage(ctx, req.Topic, finalSubtopics, req.Difficulty, corpus, introduction.LearningObjectives, language)
	if err != nil {
		return nil, err
	}

	// 聚合指标
	progress(model.StageAggregating)
	totalWordCount := introduction.WordCount
	for _, sc := range subtopicContents {
		totalWordCount += sc.WordCount
	}

	readingMinutes := totalWordCount / util.WordsPerMinute
	if readingMinutes < 1 {
		readingMinutes = 1
	}

	logger.Log.Info("learning content generated",
		zap.String("topic", req.Topic),
		zap.Int("subtopics", len(subtopicContents)),
		zap.Int("totalWordCount", totalWordCount),
		zap.Bool("courseDesigned", courseDesigned))

	return &model.LearningResult{
		Topic:                   req.Topic,
		SubTopics:               finalSubtopics,
		Difficulty:              req.Difficulty,
		Introduction:            *introduction,
		SubtopicContents:        subtopicContents,
		TotalWordCount:          totalWordCount,
		EstimatedReadingMinutes: readingMinutes,
		CourseDesigned:          courseDesigned,
	}, nil
}

func (s *LearningService) runDesignStage(ctx context.Context, req model.LearningRequest, language string) ([]string, bool) {
	ctx, span := tracing.Tracer.Start(ctx, "pipeline.designing")
	defer span.End()
	defer monitoring.ObserveStage(model.StageDesigning, time.Now())

	return s.generator.DesignCourseStructure(ctx, req.Topic, req.SubTopics, req.Difficulty, language)
}

func (s *LearningService) runResearchStage(ctx context.Context, topic string, subtopics []string) (*model.ResearchCorpus, error) {
	ctx, span := tracing.Tracer.Start(ctx, "pipeline.researching")
	defer span.End()
	defer monitoring.ObserveStage(model.StageResearching, time.Now())

	return s.research.Collect(ctx, TopicQueries(topic), SubtopicQueries(topic, subtopics))
}

func (s *LearningService) runIntroductionStage(ctx context.Context, topic string, subtopics []string, difficulty model.DifficultyLevel, corpus *model.ResearchCorpus, language string) (*model.TopicIntroduction, error) {
	ctx, span := tracing.Tracer.Start(ctx, "pipeline.composing_introduction")
	defer span.End()
	defer monitoring.ObserveStage(model.StageComposingIntro, time.Now())

	return s.generator.ComposeIntroduction(ctx, topic, subtopics, difficulty, corpus, language)
}

func (s *LearningService) runSubtopicStage(ctx context.Context, topic string, subtopics []string, difficulty model.DifficultyLevel, corpus *model.ResearchCorpus, objectives []string, language string) ([]model.SubtopicContent, error) {
	ctx, span := tracing.Tracer.Start(ctx, "pipeline.composing_subtopics")
	defer span.End()
	defer monitoring.ObserveStage(model.StageComposingSubtopics, time.Now())

	contents := make([]model.SubtopicContent, 0, len(subtopics))
	for _, subtopic := range subtopics {
		sc, err := s.generator.ComposeSubtopic(ctx, topic, subtopic, difficulty, corpus, objectives, language)
		if err != nil {
			return nil, err
		}
		contents = append(contents, *sc)
	}
	return contents, nil
}
