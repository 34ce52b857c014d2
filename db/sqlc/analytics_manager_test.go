package sqlc

import (
	"context"
	"errors"
	"net"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sqlc-dev/pqtype"
)

var testHostIp = pqtype.Inet{
	IPNet: net.IPNet{IP: net.IPv4(10, 0, 0, 7).To4(), Mask: net.CIDRMask(32, 32)},
	Valid: true,
}

func newTestDbManager(t *testing.T) (DbManager, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })

	return NewDbManager(New(db), testHostIp), mock
}

func TestIncrementCounts(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		increment func(a *AnalyticsManager, ctx context.Context) error
	}{
		{
			name:      "games started",
			query:     analyticsIncrementGamesStartedCount,
			increment: (*AnalyticsManager).IncrementGamesStartedCount,
		},
		{
			name:      "games won",
			query:     analyticsIncrementGamesWonCount,
			increment: (*AnalyticsManager).IncrementGamesWonCount,
		},
		{
			name:      "games abandoned",
			query:     analyticsIncrementGamesAbandonedCount,
			increment: (*AnalyticsManager).IncrementGamesAbandonedCount,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			dbManager, mock := newTestDbManager(t)

			mock.ExpectExec(regexp.QuoteMeta(test.query)).
				WithArgs(testHostIp).
				WillReturnResult(sqlmock.NewResult(0, 1))

			if err := test.increment(dbManager.Analytics, context.Background()); err != nil {
				t.Fatalf("failed to increment: %v", err)
			}

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Fatalf("expectations were not met: %v", err)
			}
		})
	}
}

func TestGetCounts(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		column   string
		expected int64
		get      func(a *AnalyticsManager, ctx context.Context) (int64, error)
	}{
		{
			name:     "games started",
			query:    analyticsGetGamesStartedCount,
			column:   "games_started",
			expected: 12,
			get:      (*AnalyticsManager).GetGamesStartedCount,
		},
		{
			name:     "games won",
			query:    analyticsGetGamesWonCount,
			column:   "games_won",
			expected: 5,
			get:      (*AnalyticsManager).GetGamesWonCount,
		},
		{
			name:     "games abandoned",
			query:    analyticsGetGamesAbandonedCount,
			column:   "games_abandoned",
			expected: 7,
			get:      (*AnalyticsManager).GetGamesAbandonedCount,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			dbManager, mock := newTestDbManager(t)

			mock.ExpectQuery(regexp.QuoteMeta(test.query)).
				WithArgs(testHostIp).
				WillReturnRows(sqlmock.NewRows([]string{test.column}).AddRow(test.expected))

			got, err := test.get(dbManager.Analytics, context.Background())
			if err != nil {
				t.Fatalf("failed to fetch %s: %v", test.column, err)
			}

			if got != test.expected {
				t.Fatalf("expected %s: %d\tgot: %d", test.column, test.expected, got)
			}

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Fatalf("expectations were not met: %v", err)
			}
		})
	}
}

func TestIncrementCountError(t *testing.T) {
	dbManager, mock := newTestDbManager(t)

	dbErr := errors.New("connection refused")
	mock.ExpectExec(regexp.QuoteMeta(analyticsIncrementGamesWonCount)).
		WithArgs(testHostIp).
		WillReturnError(dbErr)

	err := dbManager.Analytics.IncrementGamesWonCount(context.Background())
	if !errors.Is(err, dbErr) {
		t.Fatalf("expected error: %v\tgot: %v", dbErr, err)
	}
}
