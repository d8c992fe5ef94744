package health

import (
	"context"
	"database/sql"
	"time"

	"stockflow/internal/core/domain"
	"stockflow/internal/core/port"
)

const serviceName = "stockflow"

type HealthService struct {
	db    *sql.DB
	cache port.SeriesCache
}

func NewHealthService(db *sql.DB, cache port.SeriesCache) port.HealthService {
	return &HealthService{
		db:    db,
		cache: cache,
	}
}

// Check pings the backing stores. The service stays "healthy" on a cache
// outage because the cache is optional; a database outage degrades it.
func (s *HealthService) Check(ctx context.Context) *domain.HealthStatus {
	status := &domain.HealthStatus{
		Status:    "healthy",
		Timestamp: time.Now().Format(time.RFC3339),
		Service:   serviceName,
	}

	if s.db == nil {
		status.Status = "degraded"
		status.Database = "unavailable"
		return status
	}
	if err := s.db.PingContext(ctx); err != nil {
		status.Status = "degraded"
		status.Database = "disconnected"
		return status
	}
	status.Database = "connected"

	return status
}
