package mappers

import (
	api "github.com/fieldserve/fieldserve/api/v1alpha1"
	"github.com/fieldserve/fieldserve/internal/service"
)

// ActionFromApi maps a validated update body to the service action sum type.
func ActionFromApi(form api.JobUpdate) service.Action {
	switch api.JobAction(form.Action) {
	case api.JobActionStart:
		action := service.StartAction{
			GpsLat: form.StartProofGpsLat,
			GpsLng: form.StartProofGpsLng,
		}
		if form.StartProofPhoto != nil {
			action.PhotoRef = *form.StartProofPhoto
		}
		return action
	case api.JobActionComplete:
		return service.CompleteAction{}
	case api.JobActionCancel:
		action := service.CancelAction{}
		if form.Reason != nil {
			action.Reason = *form.Reason
		}
		return action
	default:
		return service.AcceptAction{}
	}
}
