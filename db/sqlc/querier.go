package sqlc

import (
	"context"

	"github.com/sqlc-dev/pqtype"
)

type Querier interface {
	AnalyticsGetGamesAbandonedCount(ctx context.Context, hostIp pqtype.Inet) (int64, error)
	AnalyticsGetGamesStartedCount(ctx context.Context, hostIp pqtype.Inet) (int64, error)
	AnalyticsGetGamesWonCount(ctx context.Context, hostIp pqtype.Inet) (int64, error)
	AnalyticsIncrementGamesAbandonedCount(ctx context.Context, hostIp pqtype.Inet) error
	AnalyticsIncrementGamesStartedCount(ctx context.Context, hostIp pqtype.Inet) error
	AnalyticsIncrementGamesWonCount(ctx context.Context, hostIp pqtype.Inet) error
}

var _ Querier = (*Queries)(nil)
