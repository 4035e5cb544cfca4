package reading

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/tarot-backend/internal/domain"
	"github.com/heartmarshall/tarot-backend/pkg/ctxutil"
)

// CreateReading draws the cards for input.Type and saves the reading.
// When an interpretation is requested and generation fails, nothing is
// saved and the error wraps domain.ErrGenerationUnavailable.
func (s *Service) CreateReading(ctx context.Context, input CreateReadingInput) (*domain.Reading, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg.MaxQuestionLen); err != nil {
		return nil, err
	}

	style, err := s.resolveStyle(ctx, userID, input.Style)
	if err != nil {
		return nil, err
	}

	cards, err := s.draw(input.Type.Arity(), input.Pool)
	if err != nil {
		return nil, err
	}

	r := &domain.Reading{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      input.Type,
		Cards:     cards,
		Question:  trimOrNil(input.Question),
		Style:     style,
		CreatedAt: s.now().UTC(),
	}

	if input.Interpret {
		text, err := s.gen.Generate(ctx, s.interpretationRequest(r))
		if err != nil {
			s.log.WarnContext(ctx, "interpretation failed, reading not saved",
				slog.String("user_id", userID.String()),
				slog.String("type", r.Type.String()),
				slog.String("error", err.Error()),
			)
			if ctx.Err() == nil && !errors.Is(err, domain.ErrGenerationUnavailable) {
				err = fmt.Errorf("%w: %v", domain.ErrGenerationUnavailable, err)
			}
			return nil, fmt.Errorf("reading.CreateReading: %w", err)
		}
		r.Interpretation = &text
	}

	saved, err := s.readings.Create(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("reading.CreateReading: %w", err)
	}

	s.log.InfoContext(ctx, "reading created",
		slog.String("user_id", userID.String()),
		slog.String("reading_id", saved.ID.String()),
		slog.String("type", saved.Type.String()),
		slog.Bool("interpreted", saved.Interpretation != nil),
	)

	return saved, nil
}

// resolveStyle picks the explicit style, then the user's default, then the
// configured default.
func (s *Service) resolveStyle(ctx context.Context, userID uuid.UUID, explicit *domain.InterpretationStyle) (domain.InterpretationStyle, error) {
	if explicit != nil {
		return *explicit, nil
	}

	settings, err := s.settings.SettingsFor(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("load settings: %w", err)
	}
	if settings.DefaultStyle.IsValid() {
		return settings.DefaultStyle, nil
	}
	return domain.InterpretationStyle(s.cfg.DefaultStyle), nil
}

func (s *Service) interpretationRequest(r *domain.Reading) domain.InterpretationRequest {
	req := domain.InterpretationRequest{
		Type:  r.Type,
		Style: r.Style,
		Cards: make([]domain.InterpretedCard, len(r.Cards)),
	}
	if r.Question != nil {
		req.Question = *r.Question
	}
	for i, c := range r.Cards {
		req.Cards[i] = domain.InterpretedCard{
			Name:       c.CardName,
			Position:   r.PositionLabel(c.Position),
			IsReversed: c.IsReversed,
			Meaning:    c.DisplayMeaning,
		}
	}
	return req
}
