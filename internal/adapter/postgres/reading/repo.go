// Package reading implements the reading store on PostgreSQL.
//
// A reading is a document: cards live in a JSONB array and the only field
// that changes after insert is the note.
package reading

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/tarot-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tarot-backend/internal/domain"
)

const table = "readings"

var columns = []string{
	"id", "user_id", "type", "cards", "question",
	"style", "interpretation", "note", "created_at",
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides reading persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new reading repository. db is usually a *pgxpool.Pool.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByUser returns the complete history of a user, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Reading, error) {
	query := psql.Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id")

	return r.selectReadings(ctx, query, userID)
}

// List returns one page of a user's readings, newest first, together with
// the total number of readings matching the filter.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, filter domain.ReadingFilter) ([]domain.Reading, int, error) {
	where := squirrel.And{squirrel.Eq{"user_id": userID}}
	if filter.Type != nil {
		where = append(where, squirrel.Eq{"type": string(*filter.Type)})
	}

	countSQL, countArgs, err := psql.Select("count(*)").From(table).Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int64
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, postgres.MapError(err, "readings of user", userID)
	}

	query := psql.Select(columns...).
		From(table).
		Where(where).
		OrderBy("created_at DESC", "id").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset))

	readings, err := r.selectReadings(ctx, query, userID)
	if err != nil {
		return nil, 0, err
	}

	return readings, int(total), nil
}

// GetByID returns a reading owned by userID.
// Returns domain.ErrNotFound if it does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Reading, error) {
	sql, args, err := psql.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	return r.getReading(ctx, id, sql, args)
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create validates the per-type shape of rd and inserts it.
func (r *Repo) Create(ctx context.Context, rd *domain.Reading) (*domain.Reading, error) {
	if err := rd.Validate(); err != nil {
		return nil, err
	}

	cards, err := encodeCards(rd.Cards)
	if err != nil {
		return nil, err
	}

	createdAt := rd.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	style := rd.Style
	if style == "" {
		style = domain.StyleClassic
	}

	sql, args, err := psql.Insert(table).
		Columns(columns...).
		Values(rd.ID, rd.UserID, string(rd.Type), cards, rd.Question,
			string(style), rd.Interpretation, rd.Note, createdAt.UTC()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return nil, postgres.MapError(err, "reading", rd.ID)
	}

	out := *rd
	out.Style = style
	out.CreatedAt = createdAt.UTC().Truncate(time.Microsecond)
	return &out, nil
}

// UpdateNote replaces the note of a reading; nil clears it.
// Returns the updated reading or domain.ErrNotFound.
func (r *Repo) UpdateNote(ctx context.Context, userID, id uuid.UUID, note *string) (*domain.Reading, error) {
	sql, args, err := psql.Update(table).
		Set("note", note).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}

	return r.getReading(ctx, id, sql, args)
}

// Delete removes a reading permanently. Returns domain.ErrNotFound if it
// does not exist or belongs to another user.
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	sql, args, err := psql.Delete(table).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "reading", id)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("reading %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) selectReadings(ctx context.Context, query squirrel.SelectBuilder, userID uuid.UUID) ([]domain.Reading, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []readingRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "readings of user", userID)
	}

	readings := make([]domain.Reading, len(rows))
	for i, row := range rows {
		rd, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		readings[i] = rd
	}

	return readings, nil
}

func (r *Repo) getReading(ctx context.Context, id uuid.UUID, sql string, args []any) (*domain.Reading, error) {
	var row readingRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("reading %s: %w", id, domain.ErrNotFound)
		}
		return nil, postgres.MapError(err, "reading", id)
	}

	rd, err := row.toDomain()
	if err != nil {
		return nil, err
	}
	return &rd, nil
}
