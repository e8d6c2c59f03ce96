package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/fieldserve/fieldserve/internal/events"
	"github.com/fieldserve/fieldserve/internal/payment"
	"github.com/fieldserve/fieldserve/internal/store"
	"github.com/fieldserve/fieldserve/internal/store/model"
	"github.com/fieldserve/fieldserve/pkg/metrics"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	paymentStatusProcessing = "processing"
	defaultCancelReason     = "no reason provided"

	// minor currency unit conversion for a 2-decimal currency
	paisePerRupee = 100
)

// ActionResult is the outcome of a successful lifecycle action. Payment is
// set for COMPLETE only; Resumed marks a COMPLETE call that found an order
// already created by an earlier attempt.
type ActionResult struct {
	Job     model.Job
	Payment *PaymentOrder
	Resumed bool

	eventKind string
	eventBody any
}

type PaymentOrder struct {
	OrderID  string
	Amount   int64
	Currency string
	KeyID    string
}

// JobService owns the job lifecycle state machine. Every action runs its
// read-validate-write sequence inside a single transaction with the job row
// locked, so two concurrent calls against the same job serialize.
type JobService struct {
	store    store.Store
	gateway  payment.Gateway
	producer *events.EventProducer
}

func NewJobService(store store.Store, gateway payment.Gateway, producer *events.EventProducer) *JobService {
	return &JobService{store: store, gateway: gateway, producer: producer}
}

func (s *JobService) GetJob(ctx context.Context, id uuid.UUID) (*model.Job, error) {
	job, err := s.store.Job().Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrJobNotFound(id)
		}
		return nil, err
	}
	return job, nil
}

func (s *JobService) ListJobLogs(ctx context.Context, jobID uuid.UUID) (model.JobLogList, error) {
	if _, err := s.GetJob(ctx, jobID); err != nil {
		return nil, err
	}
	return s.store.JobLog().List(ctx, jobID)
}

// ApplyAction authenticates the actor against the user store, locks the job
// row, dispatches the action and commits job mutation and audit row
// atomically. Notification events are published only after the commit.
func (s *JobService) ApplyAction(ctx context.Context, jobID uuid.UUID, actorID uuid.UUID, action Action) (*ActionResult, error) {
	actor, err := s.store.User().Get(ctx, actorID)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrActorNotFound(actorID)
		}
		return nil, err
	}

	ctx, err = s.store.NewTransactionContext(ctx)
	if err != nil {
		return nil, err
	}

	job, err := s.store.Job().GetForUpdate(ctx, jobID)
	if err != nil {
		_, _ = store.Rollback(ctx)
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrJobNotFound(jobID)
		}
		return nil, err
	}

	var result *ActionResult
	switch a := action.(type) {
	case AcceptAction:
		result, err = s.accept(ctx, job, actor)
	case StartAction:
		result, err = s.start(ctx, job, actor, a)
	case CompleteAction:
		result, err = s.complete(ctx, job, actor)
	case CancelAction:
		result, err = s.cancel(ctx, job, actor, a)
	default:
		err = NewErrInvalidState("unknown action %q", action.Name())
	}
	if err != nil {
		_, _ = store.Rollback(ctx)
		return nil, err
	}

	if _, err := store.Commit(ctx); err != nil {
		return nil, err
	}

	metrics.IncreaseJobActionsTotal(action.Name())

	if result.eventKind != "" {
		if err := s.producer.Write(ctx, result.eventKind, result.eventBody); err != nil {
			zap.S().Named("job_service").Errorw("failed to queue notification event", "error", err, "job_id", jobID)
		}
	}

	return result, nil
}

func (s *JobService) accept(ctx context.Context, job *model.Job, actor *model.User) (*ActionResult, error) {
	if job.Status != model.JobStatusPending {
		return nil, NewErrInvalidState("only pending jobs can be accepted, job is %s", job.Status)
	}
	if actor.Role != model.RoleWorker || actor.ID != job.WorkerID {
		return nil, NewErrActionForbidden("only the assigned worker may accept job %s", job.ID)
	}

	updated, err := s.transition(ctx, job, model.JobStatusAccepted, actor.ID, model.LogActionWorkerAccepted, nil, "status")
	if err != nil {
		return nil, err
	}

	return &ActionResult{
		Job:       *updated,
		eventKind: events.JobAcceptedKind,
		eventBody: events.NewJobAcceptedEvent(job.ID, actor.ID),
	}, nil
}

func (s *JobService) start(ctx context.Context, job *model.Job, actor *model.User, action StartAction) (*ActionResult, error) {
	if job.Status != model.JobStatusAccepted {
		return nil, NewErrInvalidState("work can only start on an accepted job, job is %s", job.Status)
	}
	if actor.Role != model.RoleWorker || actor.ID != job.WorkerID {
		return nil, NewErrActionForbidden("only the assigned worker may start job %s", job.ID)
	}

	// Missing fields are reported before range validation so the client can
	// prompt for the proof instead of retrying blindly.
	switch {
	case action.PhotoRef == "":
		return nil, NewErrMissingProof("startProofPhoto")
	case action.GpsLat == nil:
		return nil, NewErrMissingProof("startProofGpsLat")
	case action.GpsLng == nil:
		return nil, NewErrMissingProof("startProofGpsLng")
	}

	lat, lng := *action.GpsLat, *action.GpsLng
	if lat < -90 || lat > 90 {
		return nil, NewErrInvalidProof("latitude %v is out of range [-90, 90]", lat)
	}
	if lng < -180 || lng > 180 {
		return nil, NewErrInvalidProof("longitude %v is out of range [-180, 180]", lng)
	}

	now := time.Now().UTC()
	job.StartProofPhoto = &action.PhotoRef
	job.StartProofLat = &lat
	job.StartProofLng = &lng
	job.StartedAt = &now

	metadata := map[string]any{
		"photo":     action.PhotoRef,
		"gpsLat":    lat,
		"gpsLng":    lng,
		"startedAt": now.Format(time.RFC3339),
	}

	updated, err := s.transition(ctx, job, model.JobStatusInProgress, actor.ID, model.LogActionWorkStarted, metadata,
		"status", "start_proof_photo", "start_proof_lat", "start_proof_lng", "started_at")
	if err != nil {
		return nil, err
	}

	return &ActionResult{
		Job:       *updated,
		eventKind: events.WorkStartedKind,
		eventBody: events.WorkStartedEvent{
			JobID:     job.ID.String(),
			WorkerID:  actor.ID.String(),
			PhotoRef:  action.PhotoRef,
			GpsLat:    lat,
			GpsLng:    lng,
			StartedAt: now.Format(time.RFC3339),
		},
	}, nil
}

// complete initiates payment. The job stays IN_PROGRESS: the transition to
// COMPLETED is driven by the payment confirmation webhook, not by this call.
func (s *JobService) complete(ctx context.Context, job *model.Job, actor *model.User) (*ActionResult, error) {
	if job.Status != model.JobStatusInProgress {
		return nil, NewErrInvalidState("payment can only be requested for an in-progress job, job is %s", job.Status)
	}
	if actor.Role != model.RoleCustomer || actor.ID != job.CustomerID {
		return nil, NewErrActionForbidden("only the customer may complete job %s", job.ID)
	}

	// A retried COMPLETE reuses the existing order: no gateway call and no
	// second audit row.
	if job.PaymentOrderID != nil {
		return &ActionResult{
			Job:     *job,
			Resumed: true,
			Payment: &PaymentOrder{
				OrderID:  *job.PaymentOrderID,
				Amount:   job.Charge * paisePerRupee,
				Currency: payment.CurrencyINR,
				KeyID:    s.gateway.KeyID(),
			},
		}, nil
	}

	order, err := s.gateway.CreateOrder(ctx, payment.OrderRequest{
		JobID:         job.ID,
		Amount:        job.Charge * paisePerRupee,
		Currency:      payment.CurrencyINR,
		CustomerEmail: job.Customer.Email,
		CustomerPhone: job.Customer.Phone,
	})
	if err != nil {
		return nil, NewErrPaymentGateway(err)
	}

	orderID := order.ID
	paymentStatus := paymentStatusProcessing
	job.PaymentOrderID = &orderID
	job.PaymentStatus = &paymentStatus

	metadata := map[string]any{
		"orderId": orderID,
		"charge":  job.Charge,
	}

	updated, err := s.transition(ctx, job, job.Status, actor.ID, model.LogActionPaymentInitiated, metadata,
		"payment_order_id", "payment_status")
	if err != nil {
		return nil, err
	}

	metrics.IncreasePaymentOrdersTotal()

	return &ActionResult{
		Job: *updated,
		Payment: &PaymentOrder{
			OrderID:  order.ID,
			Amount:   order.Amount,
			Currency: order.Currency,
			KeyID:    s.gateway.KeyID(),
		},
		eventKind: events.PaymentInitiatedKind,
		eventBody: events.PaymentInitiatedEvent{
			JobID:   job.ID.String(),
			OrderID: order.ID,
			Charge:  job.Charge,
		},
	}, nil
}

func (s *JobService) cancel(ctx context.Context, job *model.Job, actor *model.User, action CancelAction) (*ActionResult, error) {
	switch actor.Role {
	case model.RoleCustomer:
		if actor.ID != job.CustomerID {
			return nil, NewErrActionForbidden("only the job's customer may cancel job %s", job.ID)
		}
	case model.RoleWorker:
		if actor.ID != job.WorkerID {
			return nil, NewErrActionForbidden("only the assigned worker may cancel job %s", job.ID)
		}
	default:
		return nil, NewErrActionForbidden("role %s may not cancel jobs", actor.Role)
	}

	// The anti-fraud refusal is checked before the general stage check so the
	// policy message always wins for in-progress jobs.
	if job.Status == model.JobStatusInProgress {
		return nil, NewErrAntiFraudBlock()
	}
	if job.Status != model.JobStatusPending && job.Status != model.JobStatusAccepted {
		return nil, NewErrInvalidState("only pending or accepted jobs can be cancelled, job is %s", job.Status)
	}

	reason := action.Reason
	if reason == "" {
		reason = defaultCancelReason
	}
	cancelledBy := strings.ToLower(string(actor.Role))

	metadata := map[string]any{
		"cancelledBy": cancelledBy,
		"reason":      reason,
	}

	updated, err := s.transition(ctx, job, model.JobStatusCancelled, actor.ID, model.LogActionJobCancelled, metadata, "status")
	if err != nil {
		return nil, err
	}

	return &ActionResult{
		Job:       *updated,
		eventKind: events.JobCancelledKind,
		eventBody: events.JobCancelledEvent{
			JobID:       job.ID.String(),
			CancelledBy: cancelledBy,
			Reason:      reason,
		},
	}, nil
}

// transition writes the job mutation and the audit row within the caller's
// transaction. fromStatus is captured before the status field is overwritten.
func (s *JobService) transition(ctx context.Context, job *model.Job, to model.JobStatus, performedBy uuid.UUID, logAction string, metadata map[string]any, fields ...string) (*model.Job, error) {
	from := job.Status
	job.Status = to

	updated, err := s.store.Job().Update(ctx, *job, fields...)
	if err != nil {
		return nil, err
	}

	var metadataJSON []byte
	if metadata != nil {
		if metadataJSON, err = json.Marshal(metadata); err != nil {
			return nil, err
		}
	}

	if _, err := s.store.JobLog().Create(ctx, model.JobLog{
		JobID:       job.ID,
		FromStatus:  from,
		ToStatus:    to,
		Action:      logAction,
		PerformedBy: performedBy,
		Metadata:    metadataJSON,
	}); err != nil {
		return nil, err
	}

	// Update does not reload relations; carry them over for the response.
	updated.Customer = job.Customer
	updated.Worker = job.Worker

	return updated, nil
}
