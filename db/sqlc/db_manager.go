package sqlc

import (
	"time"

	"github.com/sqlc-dev/pqtype"
)

const (
	QuerierCtxTimeout = time.Second * 10
)

type DbManager struct {
	Analytics *AnalyticsManager
}

func NewDbManager(queries Querier, hostIp pqtype.Inet) DbManager {
	return DbManager{
		Analytics: NewAnalyticsManager(queries, hostIp),
	}
}
