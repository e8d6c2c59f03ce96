package v1alpha1

import (
	"net/http"

	api "github.com/fieldserve/fieldserve/api/v1alpha1"
	"github.com/go-chi/render"
)

// (GET /api/v1/health)
func (s *ServiceHandler) Health(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, api.Health{Status: "ok"})
}
