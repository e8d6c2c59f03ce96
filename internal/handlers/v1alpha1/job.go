package v1alpha1

import (
	"errors"
	"fmt"
	"net/http"

	api "github.com/fieldserve/fieldserve/api/v1alpha1"
	"github.com/fieldserve/fieldserve/internal/auth"
	"github.com/fieldserve/fieldserve/internal/handlers/v1alpha1/mappers"
	"github.com/fieldserve/fieldserve/internal/handlers/validator"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	playgroundValidator "github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// (GET /api/v1/jobs/{id})
func (s *ServiceHandler) GetJob(w http.ResponseWriter, r *http.Request) {
	jobID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error{Error: "invalid_request", Message: "job id must be a uuid"})
		return
	}

	job, err := s.jobSrv.GetJob(r.Context(), jobID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	render.JSON(w, r, mappers.JobToApi(*job))
}

// (GET /api/v1/jobs/{id}/logs)
func (s *ServiceHandler) ListJobLogs(w http.ResponseWriter, r *http.Request) {
	jobID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error{Error: "invalid_request", Message: "job id must be a uuid"})
		return
	}

	logs, err := s.jobSrv.ListJobLogs(r.Context(), jobID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	render.JSON(w, r, mappers.JobLogListToApi(logs))
}

// (PATCH /api/v1/jobs/{id})
func (s *ServiceHandler) UpdateJob(w http.ResponseWriter, r *http.Request) {
	jobID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error{Error: "invalid_request", Message: "job id must be a uuid"})
		return
	}

	var form api.JobUpdate
	if err := render.DecodeJSON(r.Body, &form); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error{Error: "invalid_request", Message: "malformed request body"})
		return
	}

	v := validator.NewValidator()
	v.Register(validator.NewJobUpdateValidationRules()...)
	if err := v.Struct(form); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, validationErrorToApi(err, form))
		return
	}

	user := auth.MustHaveUser(r.Context())

	result, err := s.jobSrv.ApplyAction(r.Context(), jobID, user.ID, mappers.ActionFromApi(form))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := api.JobUpdateResult{
		Success: true,
		Job:     mappers.JobToApi(result.Job),
	}
	if result.Payment != nil {
		resp.RequiresPayment = true
		resp.RazorpayOrder = mappers.RazorpayOrderToApi(result.Payment)
		if result.Resumed {
			resp.Resumed = true
			resp.Message = "payment already initiated, resuming existing order"
		}
	}

	render.JSON(w, r, resp)
}

func validationErrorToApi(err error, form api.JobUpdate) api.Error {
	var fieldErrors playgroundValidator.ValidationErrors
	if errors.As(err, &fieldErrors) {
		for _, fe := range fieldErrors {
			if fe.Field() == "Action" {
				return api.Error{Error: "invalid_action", Message: fmt.Sprintf("unknown action %q", form.Action)}
			}
		}
	}
	return api.Error{Error: "invalid_request", Message: err.Error()}
}
