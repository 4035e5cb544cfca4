package reading

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/tarot-backend/internal/domain"
	"github.com/heartmarshall/tarot-backend/pkg/ctxutil"
)

// Catalog returns every card of the pool with image URLs resolved.
func (s *Service) Catalog(ctx context.Context, pool domain.DeckPool) ([]CardResult, error) {
	cards, err := s.engine.Catalog().Pool(pool)
	if err != nil {
		return nil, domain.NewValidationError("pool", err.Error())
	}

	out := make([]CardResult, len(cards))
	for i, c := range cards {
		out[i] = s.withImage(ctx, c)
	}
	return out, nil
}

// CardBySlug returns a single catalog card.
func (s *Service) CardBySlug(ctx context.Context, slug string) (*CardResult, error) {
	c, ok := s.engine.Catalog().BySlug(slug)
	if !ok {
		return nil, fmt.Errorf("card %q: %w", slug, domain.ErrNotFound)
	}
	res := s.withImage(ctx, c)
	return &res, nil
}

// CardOfTheDay returns the deterministic daily card. The calendar date is
// taken in tz when given, else in the timezone the signed-in user saved,
// else in the timezone the client reported, else in UTC.
func (s *Service) CardOfTheDay(ctx context.Context, tz string) (*DailyCard, error) {
	loc, name, err := s.dailyLocation(ctx, tz)
	if err != nil {
		return nil, err
	}

	local := s.now().In(loc)
	y, m, d := local.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, loc)

	return &DailyCard{
		Card:     s.withImage(ctx, s.engine.CardOfTheDay(day)),
		Date:     day,
		Timezone: name,
	}, nil
}

func (s *Service) dailyLocation(ctx context.Context, tz string) (*time.Location, string, error) {
	if tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil || tz == "Local" {
			return nil, "", domain.NewValidationError("tz", fmt.Sprintf("unknown timezone %q", tz))
		}
		return loc, tz, nil
	}

	if userID, ok := ctxutil.UserIDFromCtx(ctx); ok {
		settings, err := s.settings.SettingsFor(ctx, userID)
		if err != nil {
			s.log.WarnContext(ctx, "settings unavailable for card of the day",
				slog.String("user_id", userID.String()),
				slog.String("error", err.Error()),
			)
		} else if !settings.UpdatedAt.IsZero() {
			if loc, err := time.LoadLocation(settings.Timezone); err == nil {
				return loc, settings.Timezone, nil
			}
		}
	}

	if reported := ctxutil.TimezoneFromCtx(ctx); reported != "" {
		if loc, err := time.LoadLocation(reported); err == nil {
			return loc, reported, nil
		}
	}

	return time.UTC, "UTC", nil
}

func (s *Service) withImage(ctx context.Context, c domain.Card) CardResult {
	url, err := s.art.URL(ctx, c.ImageRef)
	if err != nil {
		s.log.WarnContext(ctx, "card image unavailable",
			slog.String("card", c.Slug),
			slog.String("error", err.Error()),
		)
	}
	return CardResult{Card: c, ImageURL: url}
}
