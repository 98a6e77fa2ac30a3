package metrics

import (
	"sync/atomic"
	"time"
)

// Collector counts requests by outcome. Safe for concurrent use.
type Collector struct {
	totalRequests   atomic.Uint64
	clientErrors    atomic.Uint64
	serverErrors    atomic.Uint64
	unauthorized    atomic.Uint64
	totalDurationMs atomic.Uint64
}

type Snapshot struct {
	RequestsTotal     uint64  `json:"requests_total"`
	ClientErrorsTotal uint64  `json:"client_errors_total"`
	ServerErrorsTotal uint64  `json:"server_errors_total"`
	UnauthorizedTotal uint64  `json:"unauthorized_total"`
	AvgDurationMs     float64 `json:"avg_duration_ms"`
	TotalDurationMs   uint64  `json:"total_duration_ms"`
}

func New() *Collector {
	return &Collector{}
}

func (c *Collector) Record(status int, duration time.Duration) {
	c.totalRequests.Add(1)
	switch {
	case status >= 500:
		c.serverErrors.Add(1)
	case status >= 400:
		c.clientErrors.Add(1)
	}
	if status == 401 {
		c.unauthorized.Add(1)
	}
	c.totalDurationMs.Add(uint64(duration.Milliseconds()))
}

func (c *Collector) Snapshot() Snapshot {
	s := Snapshot{
		RequestsTotal:     c.totalRequests.Load(),
		ClientErrorsTotal: c.clientErrors.Load(),
		ServerErrorsTotal: c.serverErrors.Load(),
		UnauthorizedTotal: c.unauthorized.Load(),
		TotalDurationMs:   c.totalDurationMs.Load(),
	}
	if s.RequestsTotal > 0 {
		s.AvgDurationMs = float64(s.TotalDurationMs) / float64(s.RequestsTotal)
	}
	return s
}
