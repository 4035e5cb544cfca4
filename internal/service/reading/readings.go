package reading

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/tarot-backend/internal/domain"
	"github.com/heartmarshall/tarot-backend/pkg/ctxutil"
)

// GetReading returns a single reading of the authenticated user.
func (s *Service) GetReading(ctx context.Context, id uuid.UUID) (*domain.Reading, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if id == uuid.Nil {
		return nil, domain.NewValidationError("reading_id", "required")
	}

	r, err := s.readings.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("get reading: %w", err)
	}
	return r, nil
}

// ListReadings returns a page of readings, newest first, and the total count.
func (s *Service) ListReadings(ctx context.Context, input ListReadingsInput) ([]domain.Reading, int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, 0, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg.MaxPage); err != nil {
		return nil, 0, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = s.cfg.DefaultPage
	}

	readings, total, err := s.readings.List(ctx, userID, domain.ReadingFilter{
		Type:   input.Type,
		Limit:  limit,
		Offset: input.Offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("list readings: %w", err)
	}

	return readings, total, nil
}

// UpdateNote sets or clears the note of a reading.
func (s *Service) UpdateNote(ctx context.Context, input UpdateNoteInput) (*domain.Reading, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg.MaxNoteLen); err != nil {
		return nil, err
	}

	r, err := s.readings.UpdateNote(ctx, userID, input.ReadingID, trimOrNil(input.Note))
	if err != nil {
		return nil, fmt.Errorf("update note: %w", err)
	}

	s.log.InfoContext(ctx, "reading note updated",
		slog.String("user_id", userID.String()),
		slog.String("reading_id", r.ID.String()),
		slog.Bool("cleared", r.Note == nil),
	)

	return r, nil
}

// DeleteReading removes a reading permanently.
func (s *Service) DeleteReading(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if id == uuid.Nil {
		return domain.NewValidationError("reading_id", "required")
	}

	if err := s.readings.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("delete reading: %w", err)
	}

	s.log.InfoContext(ctx, "reading deleted",
		slog.String("user_id", userID.String()),
		slog.String("reading_id", id.String()),
	)

	return nil
}
