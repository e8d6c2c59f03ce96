package v1alpha1

import (
	"net/http"

	api "github.com/fieldserve/fieldserve/api/v1alpha1"
	"github.com/fieldserve/fieldserve/internal/service"
	"github.com/go-chi/render"
	"go.uber.org/zap"
)

// writeServiceError maps the service error taxonomy to HTTP. Unexpected
// errors are logged and surfaced as a bare internal error, nothing from the
// store or gateway leaks to the client.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		status int
		kind   string
	)

	switch err.(type) {
	case *service.ErrActorNotFound:
		status, kind = http.StatusUnauthorized, "unauthenticated"
	case *service.ErrJobNotFound:
		status, kind = http.StatusNotFound, "not_found"
	case *service.ErrActionForbidden:
		status, kind = http.StatusForbidden, "forbidden"
	case *service.ErrAntiFraudBlock:
		status, kind = http.StatusBadRequest, "anti_fraud_block"
	case *service.ErrInvalidState:
		status, kind = http.StatusBadRequest, "invalid_state"
	case *service.ErrMissingProof:
		status, kind = http.StatusBadRequest, "missing_proof"
	case *service.ErrInvalidProof:
		status, kind = http.StatusBadRequest, "invalid_proof"
	case *service.ErrPaymentGateway:
		status, kind = http.StatusInternalServerError, "payment_gateway_error"
	default:
		zap.S().Named("handler").Errorw("unexpected error", "error", err, "path", r.URL.Path)
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.Error{Error: "internal_error"})
		return
	}

	render.Status(r, status)
	render.JSON(w, r, api.Error{Error: kind, Message: err.Error()})
}
