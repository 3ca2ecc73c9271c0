package payment

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// DeclineTokenPrefix marks tokens the sandbox gateway refuses.
const DeclineTokenPrefix = "tok_decline"

// SandboxGateway approves every charge whose token does not start with
// DeclineTokenPrefix. It is meant for local development.
type SandboxGateway struct{}

func NewSandboxGateway() *SandboxGateway {
	return &SandboxGateway{}
}

func (g *SandboxGateway) Charge(ctx context.Context, req ChargeRequest) (*Charge, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if req.Token == "" || strings.HasPrefix(req.Token, DeclineTokenPrefix) {
		return nil, ErrDeclined
	}
	return &Charge{ID: "sbx_" + uuid.NewString(), Amount: req.Amount}, nil
}
