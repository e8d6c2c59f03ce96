package service

import (
	"fmt"

	"github.com/google/uuid"
)

type ErrJobNotFound struct {
	error
}

func NewErrJobNotFound(id uuid.UUID) *ErrJobNotFound {
	return &ErrJobNotFound{fmt.Errorf("job %s not found", id)}
}

type ErrActorNotFound struct {
	error
}

func NewErrActorNotFound(id uuid.UUID) *ErrActorNotFound {
	return &ErrActorNotFound{fmt.Errorf("user %s not found", id)}
}

type ErrActionForbidden struct {
	error
}

func NewErrActionForbidden(format string, args ...any) *ErrActionForbidden {
	return &ErrActionForbidden{fmt.Errorf(format, args...)}
}

type ErrInvalidState struct {
	error
}

func NewErrInvalidState(format string, args ...any) *ErrInvalidState {
	return &ErrInvalidState{fmt.Errorf(format, args...)}
}

// ErrAntiFraudBlock is the deliberate policy refusal for cancelling a job
// whose work has started. It is reported separately from ErrInvalidState so
// the client can show the policy message instead of a generic stage error.
type ErrAntiFraudBlock struct {
	error
}

func NewErrAntiFraudBlock() *ErrAntiFraudBlock {
	return &ErrAntiFraudBlock{fmt.Errorf("cannot cancel in-progress jobs: work has already started")}
}

type ErrMissingProof struct {
	error
}

func NewErrMissingProof(field string) *ErrMissingProof {
	return &ErrMissingProof{fmt.Errorf("start proof is incomplete: %s is required", field)}
}

type ErrInvalidProof struct {
	error
}

func NewErrInvalidProof(format string, args ...any) *ErrInvalidProof {
	return &ErrInvalidProof{fmt.Errorf(format, args...)}
}

type ErrPaymentGateway struct {
	error
}

func NewErrPaymentGateway(err error) *ErrPaymentGateway {
	return &ErrPaymentGateway{fmt.Errorf("payment gateway order creation failed: %w", err)}
}
