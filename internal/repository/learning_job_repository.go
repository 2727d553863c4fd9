package repository

import (
	"learning_assistant_backend/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type LearningJobRepository struct {
	DB *gorm.DB
}

func NewLearningJobRepository(db *gorm.DB) *LearningJobRepository {
	return &LearningJobRepository{DB: db}
}

func (r *LearningJobRepository) Create(job *model.LearningJob) error {
	return r.DB.Create(job).Error
}

func (r *LearningJobRepository) FindByID(id string) (*model.LearningJob, error) {
	var job model.LearningJob
	err := r.DB.First(&job, "id = ?", id).Error
	return &job, err
}

func (r *LearningJobRepository) MarkRunning(id string) error {
	return r.DB.Model(&model.LearningJob{}).
		Where("id = ?", id).
		Update("status", model.JobStatusRunning).Error
}

// Complete 写入终态与结果，任务记录的最后一次变更
func (r *LearningJobRepository) Complete(id string, result datatypes.JSON) error {
	return r.DB.Model(&model.LearningJob{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status": model.JobStatusCompleted,
			"result": result,
		}).Error
}

func (r *LearningJobRepository) Fail(id string, message string) error {
	return r.DB.Model(&model.LearningJob{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status": model.JobStatusFailed,
			"error":  message,
		}).Error
}

// UpdateResult 供阅读状态跟踪使用，不属于生成流水线
func (r *LearningJobRepository) UpdateResult(id string, result datatypes.JSON) error {
	return r.DB.Model(&model.LearningJob{}).
		Where("id = ?", id).
		Update("result", result).Error
}

func (r *LearningJobRepository) List(page, limit int) ([]model.LearningJob, int64, error) {
	var total int64
	query := r.DB.Model(&model.LearningJob{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var jobs []model.LearningJob
	err := query.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&jobs).Error
	return jobs, total, err
}
