package store

import (
	"context"
	"errors"

	"github.com/fieldserve/fieldserve/internal/store/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Job interface {
	List(ctx context.Context) (model.JobList, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Job, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*model.Job, error)
	Create(ctx context.Context, job model.Job) (*model.Job, error)
	Update(ctx context.Context, job model.Job, fields ...string) (*model.Job, error)
}

type JobStore struct {
	db *gorm.DB
}

// Make sure we conform to Job interface
var _ Job = (*JobStore)(nil)

func NewJobStore(db *gorm.DB) Job {
	return &JobStore{db: db}
}

func (s *JobStore) getDB(ctx context.Context) *gorm.DB {
	if tx := FromContext(ctx); tx != nil {
		return tx
	}
	return s.db
}

func (s *JobStore) List(ctx context.Context) (model.JobList, error) {
	var jobs model.JobList
	result := s.getDB(ctx).Model(&jobs).Order("id").Find(&jobs)
	if result.Error != nil {
		return nil, result.Error
	}
	return jobs, nil
}

func (s *JobStore) Get(ctx context.Context, id uuid.UUID) (*model.Job, error) {
	return s.get(ctx, id, false)
}

// GetForUpdate reads the job with a row-level lock so the read-validate-write
// sequence of a lifecycle action is serialized per job. The caller must hold a
// transaction context. On dialects without FOR UPDATE the read is plain; the
// surrounding transaction still applies.
func (s *JobStore) GetForUpdate(ctx context.Context, id uuid.UUID) (*model.Job, error) {
	return s.get(ctx, id, true)
}

func (s *JobStore) get(ctx context.Context, id uuid.UUID, forUpdate bool) (*model.Job, error) {
	job := model.NewJobFromId(id)
	tx := s.getDB(ctx).Preload("Customer").Preload("Worker")
	if forUpdate && s.db.Dialector.Name() == "postgres" {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "jobs"}})
	}
	result := tx.First(&job)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, result.Error
	}
	return job, nil
}

func (s *JobStore) Create(ctx context.Context, job model.Job) (*model.Job, error) {
	result := s.getDB(ctx).Create(&job)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateKey
		}
		return nil, result.Error
	}
	return &job, nil
}

// Update writes the named fields only. Relations are not touched: customer and
// worker are immutable once the job exists.
func (s *JobStore) Update(ctx context.Context, job model.Job, fields ...string) (*model.Job, error) {
	result := s.getDB(ctx).Model(&job).Clauses(clause.Returning{}).Select(fields).Updates(&job)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrRecordNotFound
	}
	return &job, nil
}
