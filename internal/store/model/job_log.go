package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	LogActionWorkerAccepted   = "WORKER_ACCEPTED"
	LogActionWorkStarted      = "WORK_STARTED"
	LogActionPaymentInitiated = "PAYMENT_INITIATED"
	LogActionJobCancelled     = "JOB_CANCELLED"
)

// JobLog is an append-only audit row. Rows are created by the job service and
// never updated or deleted.
type JobLog struct {
	ID          uint      `gorm:"primaryKey"`
	JobID       uuid.UUID `gorm:"not null;index"`
	FromStatus  JobStatus `gorm:"type:VARCHAR;size:16;not null"`
	ToStatus    JobStatus `gorm:"type:VARCHAR;size:16;not null"`
	Action      string    `gorm:"type:VARCHAR;size:32;not null"`
	PerformedBy uuid.UUID `gorm:"not null"`
	Metadata    []byte    `gorm:"type:jsonb"`
	CreatedAt   time.Time
}

type JobLogList []JobLog
