package store

import (
	"context"

	"github.com/fieldserve/fieldserve/internal/store/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type JobLog interface {
	Create(ctx context.Context, entry model.JobLog) (*model.JobLog, error)
	List(ctx context.Context, jobID uuid.UUID) (model.JobLogList, error)
}

type JobLogStore struct {
	db *gorm.DB
}

// Make sure we conform to JobLog interface
var _ JobLog = (*JobLogStore)(nil)

func NewJobLogStore(db *gorm.DB) JobLog {
	return &JobLogStore{db: db}
}

func (s *JobLogStore) getDB(ctx context.Context) *gorm.DB {
	if tx := FromContext(ctx); tx != nil {
		return tx
	}
	return s.db
}

func (s *JobLogStore) Create(ctx context.Context, entry model.JobLog) (*model.JobLog, error) {
	result := s.getDB(ctx).Create(&entry)
	if result.Error != nil {
		return nil, result.Error
	}
	return &entry, nil
}

func (s *JobLogStore) List(ctx context.Context, jobID uuid.UUID) (model.JobLogList, error) {
	var logs model.JobLogList
	result := s.getDB(ctx).Where("job_id = ?", jobID).Order("id").Find(&logs)
	if result.Error != nil {
		return nil, result.Error
	}
	return logs, nil
}
