package v1alpha1

import (
	"github.com/fieldserve/fieldserve/internal/service"
	"github.com/go-chi/chi/v5"
)

type ServiceHandler struct {
	jobSrv *service.JobService
}

func NewServiceHandler(jobService *service.JobService) *ServiceHandler {
	return &ServiceHandler{
		jobSrv: jobService,
	}
}

func (s *ServiceHandler) Routes(r chi.Router) {
	r.Get("/health", s.Health)
	r.Route("/jobs/{id}", func(r chi.Router) {
		r.Get("/", s.GetJob)
		r.Patch("/", s.UpdateJob)
		r.Get("/logs", s.ListJobLogs)
	})
}
