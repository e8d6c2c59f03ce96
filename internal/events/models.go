package events

import (
	"github.com/google/uuid"
)

// JobAcceptedEvent notifies the customer that the worker took the job.
type JobAcceptedEvent struct {
	JobID    string `json:"job_id"`
	WorkerID string `json:"worker_id"`
}

// WorkStartedEvent carries the proof-of-work snapshot captured on site.
type WorkStartedEvent struct {
	JobID     string  `json:"job_id"`
	WorkerID  string  `json:"worker_id"`
	PhotoRef  string  `json:"photo_ref"`
	GpsLat    float64 `json:"gps_lat"`
	GpsLng    float64 `json:"gps_lng"`
	StartedAt string  `json:"started_at"`
}

// PaymentInitiatedEvent is emitted once per gateway order.
type PaymentInitiatedEvent struct {
	JobID   string `json:"job_id"`
	OrderID string `json:"order_id"`
	Charge  int64  `json:"charge"`
}

type JobCancelledEvent struct {
	JobID       string `json:"job_id"`
	CancelledBy string `json:"cancelled_by"`
	Reason      string `json:"reason"`
}

func NewJobAcceptedEvent(jobID, workerID uuid.UUID) JobAcceptedEvent {
	return JobAcceptedEvent{JobID: jobID.String(), WorkerID: workerID.String()}
}
