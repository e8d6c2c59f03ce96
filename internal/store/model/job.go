package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type JobStatus string

const (
	JobStatusPending    JobStatus = "PENDING"
	JobStatusAccepted   JobStatus = "ACCEPTED"
	JobStatusInProgress JobStatus = "IN_PROGRESS"
	JobStatusCompleted  JobStatus = "COMPLETED"
	JobStatusCancelled  JobStatus = "CANCELLED"
)

type Job struct {
	gorm.Model
	ID         uuid.UUID `gorm:"primaryKey;"`
	CustomerID uuid.UUID `gorm:"not null"`
	WorkerID   uuid.UUID `gorm:"not null"`
	Customer   User      `gorm:"foreignKey:CustomerID"`
	Worker     User      `gorm:"foreignKey:WorkerID"`
	Status     JobStatus `gorm:"type:VARCHAR;size:16;not null;default:PENDING"`

	// Charge is the fixed price agreed at creation, in whole rupees.
	Charge int64 `gorm:"not null"`

	// Proof-of-work fields. Set together when work starts, never cleared.
	StartProofPhoto *string
	StartProofLat   *float64
	StartProofLng   *float64
	StartedAt       *time.Time

	// PaymentOrderID, once set, is reused by every later payment attempt.
	PaymentOrderID *string
	PaymentStatus  *string
}

type JobList []Job

func (j Job) String() string {
	val, _ := json.Marshal(j)
	return string(val)
}

func NewJobFromId(id uuid.UUID) *Job {
	return &Job{ID: id}
}
