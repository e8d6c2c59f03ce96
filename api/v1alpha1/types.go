package v1alpha1

import (
	"time"

	"github.com/google/uuid"
)

// JobStatus is the lifecycle stage of a job.
type JobStatus string

const (
	JobStatusPending    JobStatus = "PENDING"
	JobStatusAccepted   JobStatus = "ACCEPTED"
	JobStatusInProgress JobStatus = "IN_PROGRESS"
	JobStatusCompleted  JobStatus = "COMPLETED"
	JobStatusCancelled  JobStatus = "CANCELLED"
)

// JobAction is the set of actions accepted by the job update endpoint.
type JobAction string

const (
	JobActionAccept   JobAction = "ACCEPT"
	JobActionStart    JobAction = "START"
	JobActionComplete JobAction = "COMPLETE"
	JobActionCancel   JobAction = "CANCEL"
)

type UserRole string

const (
	UserRoleCustomer UserRole = "CUSTOMER"
	UserRoleWorker   UserRole = "WORKER"
)

type Job struct {
	Id                uuid.UUID  `json:"id"`
	CustomerId        uuid.UUID  `json:"customerId"`
	WorkerId          uuid.UUID  `json:"workerId"`
	Status            JobStatus  `json:"status"`
	Charge            int64      `json:"charge"`
	StartProofPhoto   *string    `json:"startProofPhoto,omitempty"`
	StartProofGpsLat  *float64   `json:"startProofGpsLat,omitempty"`
	StartProofGpsLng  *float64   `json:"startProofGpsLng,omitempty"`
	StartedAt         *time.Time `json:"startedAt,omitempty"`
	PaymentOrderId    *string    `json:"paymentOrderId,omitempty"`
	PaymentStatus     *string    `json:"paymentStatus,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

type JobLog struct {
	Id          uint           `json:"id"`
	JobId       uuid.UUID      `json:"jobId"`
	FromStatus  JobStatus      `json:"fromStatus"`
	ToStatus    JobStatus      `json:"toStatus"`
	Action      string         `json:"action"`
	PerformedBy uuid.UUID      `json:"performedBy"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
}

type JobLogList []JobLog

// JobUpdate is the request body of PATCH /api/v1/jobs/{id}.
// The proof fields are required for START, reason is optional for CANCEL.
type JobUpdate struct {
	Action           string   `json:"action" validate:"required,job_action"`
	StartProofPhoto  *string  `json:"startProofPhoto,omitempty" validate:"omitempty,photo_ref"`
	StartProofGpsLat *float64 `json:"startProofGpsLat,omitempty"`
	StartProofGpsLng *float64 `json:"startProofGpsLng,omitempty"`
	Reason           *string  `json:"reason,omitempty" validate:"omitempty,max=512"`
}

// RazorpayOrder is relayed to the client-side checkout flow.
type RazorpayOrder struct {
	OrderId  string `json:"orderId"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	KeyId    string `json:"keyId"`
}

type JobUpdateResult struct {
	Success         bool           `json:"success"`
	Job             Job            `json:"job"`
	RequiresPayment bool           `json:"requiresPayment,omitempty"`
	Resumed         bool           `json:"resumed,omitempty"`
	RazorpayOrder   *RazorpayOrder `json:"razorpayOrder,omitempty"`
	Message         string         `json:"message,omitempty"`
}

type Error struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type Health struct {
	Status string `json:"status"`
}
