package mappers

import (
	"encoding/json"

	api "github.com/fieldserve/fieldserve/api/v1alpha1"
	"github.com/fieldserve/fieldserve/internal/service"
	"github.com/fieldserve/fieldserve/internal/store/model"
	"github.com/thoas/go-funk"
)

func JobToApi(j model.Job) api.Job {
	return api.Job{
		Id:               j.ID,
		CustomerId:       j.CustomerID,
		WorkerId:         j.WorkerID,
		Status:           api.JobStatus(j.Status),
		Charge:           j.Charge,
		StartProofPhoto:  j.StartProofPhoto,
		StartProofGpsLat: j.StartProofLat,
		StartProofGpsLng: j.StartProofLng,
		StartedAt:        j.StartedAt,
		PaymentOrderId:   j.PaymentOrderID,
		PaymentStatus:    j.PaymentStatus,
		CreatedAt:        j.CreatedAt,
		UpdatedAt:        j.UpdatedAt,
	}
}

func JobLogToApi(l model.JobLog) api.JobLog {
	var metadata map[string]any
	if len(l.Metadata) > 0 {
		_ = json.Unmarshal(l.Metadata, &metadata)
	}

	return api.JobLog{
		Id:          l.ID,
		JobId:       l.JobID,
		FromStatus:  api.JobStatus(l.FromStatus),
		ToStatus:    api.JobStatus(l.ToStatus),
		Action:      l.Action,
		PerformedBy: l.PerformedBy,
		Metadata:    metadata,
		CreatedAt:   l.CreatedAt,
	}
}

func JobLogListToApi(logs model.JobLogList) api.JobLogList {
	return funk.Map(logs, JobLogToApi).([]api.JobLog)
}

func RazorpayOrderToApi(p *service.PaymentOrder) *api.RazorpayOrder {
	if p == nil {
		return nil
	}
	return &api.RazorpayOrder{
		OrderId:  p.OrderID,
		Amount:   p.Amount,
		Currency: p.Currency,
		KeyId:    p.KeyID,
	}
}
