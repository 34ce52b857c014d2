package sqlc

import (
	"time"

	"github.com/sqlc-dev/pqtype"
)

type ConsoleAnalytic struct {
	HostIp         pqtype.Inet
	GamesStarted   int64
	GamesWon       int64
	GamesAbandoned int64
	UpdatedAt      time.Time
}
