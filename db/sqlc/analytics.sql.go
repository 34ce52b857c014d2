package sqlc

import (
	"context"

	"github.com/sqlc-dev/pqtype"
)

const analyticsIncrementGamesStartedCount = `-- name: AnalyticsIncrementGamesStartedCount :exec
INSERT INTO console_analytics (host_ip, games_started) VALUES ($1, 1)
ON CONFLICT (host_ip) DO UPDATE SET games_started = console_analytics.games_started + 1, updated_at = NOW();
`

func (q *Queries) AnalyticsIncrementGamesStartedCount(ctx context.Context, hostIp pqtype.Inet) error {
	_, err := q.db.ExecContext(ctx, analyticsIncrementGamesStartedCount, hostIp)
	return err
}

const analyticsIncrementGamesWonCount = `-- name: AnalyticsIncrementGamesWonCount :exec
INSERT INTO console_analytics (host_ip, games_won) VALUES ($1, 1)
ON CONFLICT (host_ip) DO UPDATE SET games_won = console_analytics.games_won + 1, updated_at = NOW();
`

func (q *Queries) AnalyticsIncrementGamesWonCount(ctx context.Context, hostIp pqtype.Inet) error {
	_, err := q.db.ExecContext(ctx, analyticsIncrementGamesWonCount, hostIp)
	return err
}

const analyticsIncrementGamesAbandonedCount = `-- name: AnalyticsIncrementGamesAbandonedCount :exec
INSERT INTO console_analytics (host_ip, games_abandoned) VALUES ($1, 1)
ON CONFLICT (host_ip) DO UPDATE SET games_abandoned = console_analytics.games_abandoned + 1, updated_at = NOW();
`

func (q *Queries) AnalyticsIncrementGamesAbandonedCount(ctx context.Context, hostIp pqtype.Inet) error {
	_, err := q.db.ExecContext(ctx, analyticsIncrementGamesAbandonedCount, hostIp)
	return err
}

const analyticsGetGamesStartedCount = `-- name: AnalyticsGetGamesStartedCount :one
SELECT games_started FROM console_analytics WHERE host_ip = $1;
`

func (q *Queries) AnalyticsGetGamesStartedCount(ctx context.Context, hostIp pqtype.Inet) (int64, error) {
	row := q.db.QueryRowContext(ctx, analyticsGetGamesStartedCount, hostIp)
	var gamesStarted int64
	err := row.Scan(&gamesStarted)
	return gamesStarted, err
}

const analyticsGetGamesWonCount = `-- name: AnalyticsGetGamesWonCount :one
SELECT games_won FROM console_analytics WHERE host_ip = $1;
`

func (q *Queries) AnalyticsGetGamesWonCount(ctx context.Context, hostIp pqtype.Inet) (int64, error) {
	row := q.db.QueryRowContext(ctx, analyticsGetGamesWonCount, hostIp)
	var gamesWon int64
	err := row.Scan(&gamesWon)
	return gamesWon, err
}

const analyticsGetGamesAbandonedCount = `-- name: AnalyticsGetGamesAbandonedCount :one
SELECT games_abandoned FROM console_analytics WHERE host_ip = $1;
`

func (q *Queries) AnalyticsGetGamesAbandonedCount(ctx context.Context, hostIp pqtype.Inet) (int64, error) {
	row := q.db.QueryRowContext(ctx, analyticsGetGamesAbandonedCount, hostIp)
	var gamesAbandoned int64
	err := row.Scan(&gamesAbandoned)
	return gamesAbandoned, err
}
