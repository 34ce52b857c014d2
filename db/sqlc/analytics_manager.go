package sqlc

import (
	"context"

	"github.com/sqlc-dev/pqtype"
)

// AnalyticsManager keeps per-host counters of console games.
// Every call is bounded by QuerierCtxTimeout.
type AnalyticsManager struct {
	queries Querier
	hostIp  pqtype.Inet
}

func NewAnalyticsManager(queries Querier, hostIp pqtype.Inet) *AnalyticsManager {
	return &AnalyticsManager{queries: queries, hostIp: hostIp}
}

func (a *AnalyticsManager) IncrementGamesStartedCount(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, QuerierCtxTimeout)
	defer cancel()
	return a.queries.AnalyticsIncrementGamesStartedCount(ctx, a.hostIp)
}

func (a *AnalyticsManager) IncrementGamesWonCount(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, QuerierCtxTimeout)
	defer cancel()
	return a.queries.AnalyticsIncrementGamesWonCount(ctx, a.hostIp)
}

func (a *AnalyticsManager) IncrementGamesAbandonedCount(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, QuerierCtxTimeout)
	defer cancel()
	return a.queries.AnalyticsIncrementGamesAbandonedCount(ctx, a.hostIp)
}

func (a *AnalyticsManager) GetGamesStartedCount(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, QuerierCtxTimeout)
	defer cancel()
	return a.queries.AnalyticsGetGamesStartedCount(ctx, a.hostIp)
}

func (a *AnalyticsManager) GetGamesWonCount(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, QuerierCtxTimeout)
	defer cancel()
	return a.queries.AnalyticsGetGamesWonCount(ctx, a.hostIp)
}

func (a *AnalyticsManager) GetGamesAbandonedCount(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, QuerierCtxTimeout)
	defer cancel()
	return a.queries.AnalyticsGetGamesAbandonedCount(ctx, a.hostIp)
}
