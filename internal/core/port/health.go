package port

import (
	"context"

	"stockflow/internal/core/domain"
)

type HealthService interface {
	Check(ctx context.Context) *domain.HealthStatus
}
