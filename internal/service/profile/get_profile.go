package profile

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/tarot-backend/internal/domain"
	"github.com/heartmarshall/tarot-backend/internal/service/profile/stats"
	"github.com/heartmarshall/tarot-backend/pkg/ctxutil"
)

// GetProfile loads the authenticated user's history and settings in
// parallel and computes statistics as of now in the user's timezone.
//
// A failed history fetch returns domain.ErrHistoryUnavailable; a profile of
// zeros is never substituted. A failed settings fetch only degrades the
// timezone.
func (s *Service) GetProfile(ctx context.Context) (*domain.Profile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var (
		readings []domain.Reading
		settings *domain.UserSettings
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		readings, err = s.history.ListByUser(gctx, userID)
		if err != nil {
			return fmt.Errorf("%w: %v", domain.ErrHistoryUnavailable, err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		settings, err = s.settings.SettingsFor(gctx, userID)
		if err != nil {
			s.log.WarnContext(ctx, "settings unavailable, using fallback timezone",
				slog.String("user_id", userID.String()),
				slog.String("error", err.Error()),
			)
			settings = nil
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		s.log.ErrorContext(ctx, "profile history fetch failed",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("profile.GetProfile: %w", err)
	}

	tz := profileTimezone(ctx, settings)
	loc := stats.ParseTimezone(tz)
	asOf := s.now().In(loc)

	statistics := stats.Compute(readings, asOf, loc)

	return &domain.Profile{
		UserID:       userID,
		Timezone:     loc.String(),
		AsOf:         asOf,
		Statistics:   statistics,
		Achievements: stats.EvaluateAchievements(statistics),
	}, nil
}

// profileTimezone prefers a timezone the user saved, then the one the
// client reported.
func profileTimezone(ctx context.Context, settings *domain.UserSettings) string {
	if settings != nil && !settings.UpdatedAt.IsZero() && settings.Timezone != "" {
		return settings.Timezone
	}
	if tz := ctxutil.TimezoneFromCtx(ctx); tz != "" {
		if _, err := time.LoadLocation(tz); err == nil {
			return tz
		}
	}
	return "UTC"
}
