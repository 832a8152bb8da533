// Package dashboard computes per-user analytics: scalar rollups, per-day
// creation trends, a merged activity feed and popularity rankings. All
// computations are read-only and recomputed on every request.
package dashboard

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// ErrInvalidParameter rejects malformed caller input such as a
	// non-positive lookback or limit.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrInvalidRange rejects a trend lookback outside the supported window.
	ErrInvalidRange = errors.New("invalid date range")
	// ErrInvalidMetric rejects an unknown rollup metric name.
	ErrInvalidMetric = errors.New("invalid metric")
)

type Service struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db, log: zap.NewNop()}
}

// WithLogger replaces the no-op logger and returns the service.
func (s *Service) WithLogger(l *zap.Logger) *Service {
	s.log = l
	return s
}
