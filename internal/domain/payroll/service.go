package payroll

import (
	"context"
	"io"

	"github.com/serviceportals/ops-backend-go/internal/pkg/jwt"
)

type Service interface {
	Generate(ctx context.Context, p jwt.Principal, req GenerateRequest) (Record, error)
	Get(ctx context.Context, p jwt.Principal, id string) (Record, error)
	List(ctx context.Context, p jwt.Principal, employeeID string, period string) ([]Record, error)
	// RequestSignature moves a generated record to pending_signature.
	RequestSignature(ctx context.Context, p jwt.Principal, id string) (Record, error)
	// Sign records the employee's decision with an IP and user agent
	// audit trail. Accept signs the record, decline rejects it.
	Sign(ctx context.Context, p jwt.Principal, req SignRequest) (Record, error)
	Complete(ctx context.Context, p jwt.Principal, id string) (Record, error)
	Delete(ctx context.Context, p jwt.Principal, id string) error
	// Slip renders the payslip PDF.
	Slip(ctx context.Context, p jwt.Principal, id string) (io.Reader, error)
}
