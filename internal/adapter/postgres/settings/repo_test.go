package settings

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/tarot-backend/internal/domain"
)

var settingsColumns = []string{"user_id", "timezone", "default_style", "updated_at"}

func newMockRepo(t *testing.T) (*Repo, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return New(mock), mock
}

func TestRepo_GetByUserID(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	now := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		setup   func(mock pgxmock.PgxPoolIface)
		wantErr error
		check   func(t *testing.T, got *domain.UserSettings)
	}{
		{
			name: "found",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT user_id, timezone, default_style, updated_at\s+FROM user_settings`).
					WithArgs(userID).
					WillReturnRows(pgxmock.NewRows(settingsColumns).AddRow(userID, "Asia/Tokyo", "spiritual", now))
			},
			check: func(t *testing.T, got *domain.UserSettings) {
				assert.Equal(t, "Asia/Tokyo", got.Timezone)
				assert.Equal(t, domain.StyleSpiritual, got.DefaultStyle)
				assert.True(t, now.Equal(got.UpdatedAt))
			},
		},
		{
			name: "not found",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`FROM user_settings`).
					WithArgs(userID).
					WillReturnError(pgx.ErrNoRows)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			repo, mock := newMockRepo(t)
			tt.setup(mock)

			got, err := repo.GetByUserID(context.Background(), userID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepo_Upsert(t *testing.T) {
	t.Parallel()
	repo, mock := newMockRepo(t)

	s := domain.UserSettings{
		UserID:       uuid.New(),
		Timezone:     "Europe/Berlin",
		DefaultStyle: domain.StylePractical,
		UpdatedAt:    time.Date(2026, 5, 2, 10, 0, 0, 0, time.UTC),
	}

	mock.ExpectQuery(`INSERT INTO user_settings (.+) ON CONFLICT \(user_id\) DO UPDATE`).
		WithArgs(s.UserID, "Europe/Berlin", "practical", s.UpdatedAt).
		WillReturnRows(pgxmock.NewRows(settingsColumns).AddRow(s.UserID, s.Timezone, "practical", s.UpdatedAt))

	got, err := repo.Upsert(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, s, *got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_Upsert_CheckViolation(t *testing.T) {
	t.Parallel()
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`INSERT INTO user_settings`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23514"})

	_, err := repo.Upsert(context.Background(), domain.UserSettings{UserID: uuid.New(), DefaultStyle: "poetic"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}
