package domain

// HealthStatus reports service liveness and the state of the backing
// database connection.
type HealthStatus struct {
	Status    string `json:"status"` // "healthy" or "degraded"
	Timestamp string `json:"timestamp"`
	Service   string `json:"service"`
	Database  string `json:"database"`
}
