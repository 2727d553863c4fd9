package model

import (
	"gorm.io/datatypes"
)

// 任务状态机：pending → running → completed/failed，终态写入后不再变更
const (
	JobStatusPending   = "pending"
	JobStatusRunning   = "running"
	JobStatusCompleted = "completed"
	JobStatusFailed    = "failed"
)

// 流水线阶段，仅通过 Redis 进度键对外观测，不落库
const (
	StageDesigning          = "designing"
	StageResearching        = "researching"
	StageComposingIntro     = "composing_introduction"
	StageComposingSubtopics = "composing_subtopics"
	StageAggregating        = "aggregating"
)

// swagger:model LearningJob
type LearningJob struct {
	UUIDBase
	Topic      string                      `gorm:"size:255;not null" json:"topic"`
	SubTopics  datatypes.JSONSlice[string] `gorm:"not null" json:"subTopics"`
	Difficulty string                      `gorm:"size:20;not null;default:'beginner'" json:"difficulty"`
	Language   string                      `gorm:"size:50;not null;default:'english'" json:"language"`
	Status     string                      `gorm:"size:20;index;not null;default:'pending'" json:"status"`
	Result     datatypes.JSON              `json:"result,omitempty"`
	Error      string                      `gorm:"type:text" json:"error,omitempty"`
}

func (LearningJob) TableName() string {
	return "learning_jobs"
}

func (j *LearningJob) Terminal() bool {
	return j.Status == JobStatusCompleted || j.Status == JobStatusFailed
}
