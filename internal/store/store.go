package store

import (
	"context"

	"github.com/fieldserve/fieldserve/internal/store/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Store interface {
	NewTransactionContext(ctx context.Context) (context.Context, error)
	User() User
	Job() Job
	JobLog() JobLog
	InitialMigration() error
	Seed() error
	Statistics(ctx context.Context) (model.JobStats, error)
	Close() error
}

type DataStore struct {
	db     *gorm.DB
	user   User
	job    Job
	jobLog JobLog
}

func NewStore(db *gorm.DB) Store {
	return &DataStore{
		db:     db,
		user:   NewUserStore(db),
		job:    NewJobStore(db),
		jobLog: NewJobLogStore(db),
	}
}

func (s *DataStore) NewTransactionContext(ctx context.Context) (context.Context, error) {
	return newTransactionContext(ctx, s.db)
}

func (s *DataStore) User() User {
	return s.user
}

func (s *DataStore) Job() Job {
	return s.job
}

func (s *DataStore) JobLog() JobLog {
	return s.jobLog
}

func (s *DataStore) InitialMigration() error {
	return s.db.AutoMigrate(&model.User{}, &model.Job{}, &model.JobLog{})
}

func (s *DataStore) Statistics(ctx context.Context) (model.JobStats, error) {
	jobs, err := s.Job().List(ctx)
	if err != nil {
		return model.JobStats{}, err
	}
	return model.NewJobStats(jobs), nil
}

// Seed creates the fixed development users referenced by the none
// authenticator.
func (s *DataStore) Seed() error {
	tx, err := newTransaction(s.db)
	if err != nil {
		return err
	}

	users := []model.User{
		{
			ID:    uuid.MustParse("00000000-0000-0000-0000-000000000001"),
			Role:  model.RoleCustomer,
			Email: "customer@example.com",
			Phone: "+910000000001",
		},
		{
			ID:    uuid.MustParse("00000000-0000-0000-0000-000000000002"),
			Role:  model.RoleWorker,
			Email: "worker@example.com",
			Phone: "+910000000002",
		},
	}

	for i := range users {
		if err := tx.tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoNothing: true,
		}).Create(&users[i]).Error; err != nil {
			_ = tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

func (s *DataStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
