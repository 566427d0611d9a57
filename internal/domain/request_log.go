package domain

import "time"

// RequestLog é o registro (append-only) de uma requisição monitorada.
type RequestLog struct {
	ID         string    `json:"id"`
	Method     string    `json:"method"`
	Path       string    `json:"path"`
	Status     int       `json:"status"`
	DurationMs int64     `json:"durationMs"`
	IP         string    `json:"ip,omitempty"`
	UserAgent  string    `json:"userAgent,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// LogsPage é o envelope devolvido por GET /reports/logs.
type LogsPage struct {
	Limit int          `json:"limit"`
	Count int          `json:"count"`
	Data  []RequestLog `json:"data"`
}
