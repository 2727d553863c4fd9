package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"learning_assistant_backend/internal/model"
	"learning_assistant_backend/internal/repository"
	"learning_assistant_backend/internal/util"
	"learning_assistant_backend/pkg/logger"
	"learning_assistant_backend/pkg/monitoring"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	jobProgressKeyPrefix = "job_progress:"
	jobProgressTTL       = time.Hour
)

// JobService 把内容生成流水线包装成异步任务：
// 受理即落库并同步返回任务ID，流水线在后台goroutine中执行，
// 终态（completed/failed）恰好写入一次，失败任务不自动重试。
type JobService struct {
	Repo     *repository.LearningJobRepository
	Learning *LearningService
	Redis    *redis.Client
}

func NewJobService(repo *repository.LearningJobRepository, learning *LearningService, rdb *redis.Client) *JobService {
	return &JobService{
		Repo:     repo,
		Learning: learning,
		Redis:    rdb,
	}
}

// ValidateRequest 请求校验，失败的请求不会创建任务
func ValidateRequest(req *model.LearningRequest) error {
	req.Topic = strings.TrimSpace(req.Topic)
	if req.Topic == "" {
		return util.ErrEmptyTopic
	}
	if len(req.SubTopics) < 1 || len(req.SubTopics) > 10 {
		return util.ErrSubtopicCount
	}
	for i, st := range req.SubTopics {
		req.SubTopics[i] = strings.TrimSpace(st)
		if req.SubTopics[i] == "" {
			return util.ErrEmptySubtopic
		}
	}
	if !req.Difficulty.Valid() {
		return util.ErrInvalidDifficulty
	}
	if req.Language == "" {
		req.Language = util.DefaultLanguage
	}
	return nil
}

// Submit 受理请求：持久化 pending 任务，立刻返回任务ID，后台执行流水线
func (s *JobService) Submit(req model.LearningRequest) (string, error) {
	if err := ValidateRequest(&req); err != nil {
		return "", err
	}

	job := &model.LearningJob{
		Topic:      req.Topic,
		SubTopics:  req.SubTopics,
		Difficulty: string(req.Difficulty),
		Language:   req.Language,
		Status:     model.JobStatusPending,
	}
	if err := s.Repo.Create(job); err != nil {
		return "", err
	}

	go s.run(job.ID, req)

	return job.ID, nil
}

// run 执行单个任务直至终态。任务一旦启动没有中途取消，
// 任务记录只由这里变更，其他组件一律只读。
func (s *JobService) run(jobID string, req model.LearningRequest) {
	ctx := context.Background()

	if err := s.Repo.MarkRunning(jobID); err != nil {
		logger.Log.Error("failed to mark job running", zap.String("jobID", jobID), zap.Error(err))
	}

	result, err := s.Learning.CreateLearningContent(ctx, req, func(stage string) {
		s.publishProgress(ctx, jobID, stage)
	})

	defer s.clearProgress(ctx, jobID)

	if err != nil {
		logger.Log.Error("learning job failed",
			zap.String("jobID", jobID),
			zap.String("topic", req.Topic),
			zap.Error(err))
		if dbErr := s.Repo.Fail(jobID, err.Error()); dbErr != nil {
			logger.Log.Error("failed to persist job failure", zap.String("jobID", jobID), zap.Error(dbErr))
		}
		monitoring.JobCounter.WithLabelValues(model.JobStatusFailed).Inc()
		return
	}

	payload, err := json.Marshal(result)
	if err != nil {
		if dbErr := s.Repo.Fail(jobID, err.Error()); dbErr != nil {
			logger.Log.Error("failed to persist job failure", zap.String("jobID", jobID), zap.Error(dbErr))
		}
		monitoring.JobCounter.WithLabelValues(model.JobStatusFailed).Inc()
		return
	}

	if err := s.Repo.Complete(jobID, payload); err != nil {
		logger.Log.Error("failed to persist job result", zap.String("jobID", jobID), zap.Error(err))
		return
	}
	monitoring.JobCounter.WithLabelValues(model.JobStatusCompleted).Inc()

	logger.Log.Info("learning job completed",
		zap.String("jobID", jobID),
		zap.String("topic", req.Topic))
}

// publishProgress 把当前阶段写入Redis供轮询端点读取，写失败不影响任务
func (s *JobService) publishProgress(ctx context.Context, jobID, stage string) {
	logger.Log.Info("job stage", zap.String("jobID", jobID), zap.String("stage", stage))
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Set(ctx, jobProgressKeyPrefix+jobID, stage, jobProgressTTL).Err(); err != nil {
		logger.Log.Warn("failed to publish job progress", zap.String("jobID", jobID), zap.Error(err))
	}
}

func (s *JobService) clearProgress(ctx context.Context, jobID string) {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Del(ctx, jobProgressKeyPrefix+jobID).Err(); err != nil {
		logger.Log.Warn("failed to clear job progress", zap.String("jobID", jobID), zap.Error(err))
	}
}

// JobStatus 轮询视图：持久化状态加上Redis中的实时阶段
type JobStatus struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Stage  string `json:"stage,omitempty"`
	Error  string `json:"error,omitempty"`
}

func (s *JobService) GetStatus(ctx context.Context, jobID string) (*JobStatus, error) {
	job, err := s.Repo.FindByID(jobID)
	if err != nil {
		return nil, util.ErrJobNotFound
	}

	status := &JobStatus{
		ID:     job.ID,
		Status: job.Status,
		Error:  job.Error,
	}

	if job.Status == model.JobStatusRunning && s.Redis != nil {
		if stage, err := s.Redis.Get(ctx, jobProgressKeyPrefix+jobID).Result(); err == nil {
			status.Stage = stage
		}
	}

	return status, nil
}
