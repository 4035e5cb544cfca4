package reading

import (
	"context"
	"errors"

	"github.com/heartmarshall/tarot-backend/internal/domain"
	"github.com/heartmarshall/tarot-backend/internal/service/reading/deck"
	"github.com/heartmarshall/tarot-backend/pkg/ctxutil"
)

// DrawPreview draws cards without saving anything.
func (s *Service) DrawPreview(ctx context.Context, input DrawInput) (*DrawResult, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	count := input.Count
	if input.Type != nil {
		count = input.Type.Arity()
	}

	cards, err := s.draw(count, input.Pool)
	if err != nil {
		return nil, err
	}

	result := &DrawResult{Type: input.Type, Cards: cards}
	if input.Type != nil {
		result.Labels = input.Type.Positions()
	}
	return result, nil
}

// draw runs the deck engine and turns a rejected count into a validation
// error the caller can show.
func (s *Service) draw(count int, pool domain.DeckPool) ([]domain.DrawnCard, error) {
	cards, err := s.engine.DrawFromPool(count, pool)
	if errors.Is(err, deck.ErrInvalidDrawCount) {
		return nil, domain.NewValidationError("count", err.Error())
	}
	if err != nil {
		return nil, domain.NewValidationError("pool", err.Error())
	}
	return cards, nil
}
