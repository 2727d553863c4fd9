package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"learning_assistant_backend/internal/model"
	"learning_assistant_backend/internal/repository"
	"learning_assistant_backend/internal/util"
	"learning_assistant_backend/pkg/logger"

	"go.uber.org/zap"
)

// CourseService 面向已生成课程的读取与导出
type CourseService struct {
	Repo    *repository.LearningJobRepository
	Storage *StorageService
}

func NewCourseService(repo *repository.LearningJobRepository, storage *StorageService) *CourseService {
	return &CourseService{Repo: repo, Storage: storage}
}

// CourseSummary 课程列表条目，不携带正文
type CourseSummary struct {
	ID         string    `json:"id"`
	Topic      string    `json:"topic"`
	SubTopics  []string  `json:"sub_topics"`
	Difficulty string    `json:"difficulty"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// CourseDetail 单个课程的完整视图。未完成的任务只有状态，
// ContentLoaded 标记正文是否可用。
type CourseDetail struct {
	ID            string                `json:"id"`
	Status        string                `json:"status"`
	Error         string                `json:"error,omitempty"`
	ContentLoaded bool                  `json:"content_loaded"`
	Content       *model.LearningResult `json:"content,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
}

func (s *CourseService) List(page, limit int) ([]CourseSummary, int64, error) {
	jobs, total, err := s.Repo.List(page, limit)
	if err != nil {
		return nil, 0, err
	}

	summaries := make([]CourseSummary, 0, len(jobs))
	for _, job := range jobs {
		summaries = append(summaries, CourseSummary{
			ID:         job.ID,
			Topic:      job.Topic,
			SubTopics:  job.SubTopics,
			Difficulty: job.Difficulty,
			Status:     job.Status,
			CreatedAt:  job.CreatedAt,
		})
	}
	return summaries, total, nil
}

func (s *CourseService) Get(id string) (*CourseDetail, error) {
	job, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, util.ErrJobNotFound
	}

	detail := &CourseDetail{
		ID:        job.ID,
		Status:    job.Status,
		Error:     job.Error,
		CreatedAt: job.CreatedAt,
	}

	if job.Status == model.JobStatusCompleted && len(job.Result) > 0 {
		var result model.LearningResult
		if err := json.Unmarshal(job.Result, &result); err != nil {
			logger.Log.Error("failed to decode stored course content",
				zap.String("jobID", job.ID), zap.Error(err))
			return nil, err
		}
		detail.Content = &result
		detail.ContentLoaded = true
	}

	return detail, nil
}

// MarkSubtopicRead 标记某个子主题已读，写回任务的结果字段
func (s *CourseService) MarkSubtopicRead(id, subtopic string) (*model.LearningResult, error) {
	job, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, util.ErrJobNotFound
	}
	if job.Status != model.JobStatusCompleted || len(job.Result) == 0 {
		return nil, util.ErrJobNotCompleted
	}

	var result model.LearningResult
	if err := json.Unmarshal(job.Result, &result); err != nil {
		return nil, err
	}

	found := false
	for i := range result.SubtopicContents {
		if result.SubtopicContents[i].Subtopic == subtopic {
			result.SubtopicContents[i].Read = true
			found = true
			break
		}
	}
	if !found {
		return nil, util.ErrSubtopicNotFound
	}

	payload, err := json.Marshal(&result)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.UpdateResult(id, payload); err != nil {
		return nil, err
	}

	return &result, nil
}

// ExportMarkdown 把完成的课程渲染为markdown文件并上传到存储，返回访问URL
func (s *CourseService) ExportMarkdown(ctx context.Context, id string) (string, error) {
	job, err := s.Repo.FindByID(id)
	if err != nil {
		return "", util.ErrJobNotFound
	}
	if job.Status != model.JobStatusCompleted || len(job.Result) == 0 {
		return "", util.ErrJobNotCompleted
	}

	var result model.LearningResult
	if err := json.Unmarshal(job.Result, &result); err != nil {
		return "", err
	}

	doc := renderCourseMarkdown(&result)
	filename := fmt.Sprintf("courses/%s.md", job.ID)

	url, err := s.Storage.Upload(ctx, filename, strings.NewReader(doc), int64(len(doc)), "text/markdown")
	if err != nil {
		logger.Log.Error("failed to upload course export",
			zap.String("jobID", job.ID), zap.Error(err))
		return "", err
	}

	logger.Log.Info("course exported", zap.String("jobID", job.ID), zap.String("url", url))
	return url, nil
}

func renderCourseMarkdown(result *model.LearningResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", result.Topic)
	fmt.Fprintf(&b, "Difficulty: %s\n\n", result.Difficulty)

	fmt.Fprintf(&b, "## Introduction\n\n%s\n\n", result.Introduction.Introduction)
	if result.Introduction.Overview != "" {
		fmt.Fprintf(&b, "## Overview\n\n%s\n\n", result.Introduction.Overview)
	}
	if len(result.Introduction.LearningObjectives) > 0 {
		b.WriteString("## Learning Objectives\n\n")
		for _, obj := range result.Introduction.LearningObjectives {
			fmt.Fprintf(&b, "- %s\n", obj)
		}
		b.WriteString("\n")
	}
	if len(result.Introduction.Prerequisites) > 0 {
		b.WriteString("## Prerequisites\n\n")
		for _, p := range result.Introduction.Prerequisites {
			fmt.Fprintf(&b, "- %s\n", p)
		}
		b.WriteString("\n")
	}

	for _, sc := range result.SubtopicContents {
		fmt.Fprintf(&b, "## %s\n\n%s\n\n", sc.Subtopic, sc.Content)
		if len(sc.Sources) > 0 {
			b.WriteString("### Sources\n\n")
			for _, src := range sc.Sources {
				fmt.Fprintf(&b, "- %s\n", src)
			}
			b.WriteString("\n")
		}
	}

	fmt.Fprintf(&b, "---\n\nTotal words: %d | Estimated reading time: %d min\n",
		result.TotalWordCount, result.EstimatedReadingMinutes)

	return b.String()
}
