package ports

import (
	"context"

	"github.com/bnema/portal-credits/internal/domain"
)

type ReadingLog interface {
	Load(ctx context.Context) ([]domain.CreditReading, error)
	Append(ctx context.Context, readings []domain.CreditReading) error
}
