package ports

import (
	"context"

	"github.com/bnema/portal-credits/internal/domain"
)

type ProfileRepository interface {
	GetByPortal(ctx context.Context, portal domain.Portal) (domain.Profile, error)
	List(ctx context.Context) ([]domain.Profile, error)
	Save(ctx context.Context, profile domain.Profile) error
}
