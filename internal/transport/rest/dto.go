package rest

import (
	"time"

	"github.com/heartmarshall/tarot-backend/internal/domain"
	"github.com/heartmarshall/tarot-backend/internal/service/reading"
)

type cardResponse struct {
	Name            string `json:"name"`
	Slug            string `json:"slug"`
	Suit            string `json:"suit"`
	Number          int    `json:"number"`
	UprightMeaning  string `json:"upright_meaning"`
	ReversedMeaning string `json:"reversed_meaning"`
	ImageURL        string `json:"image_url,omitempty"`
}

type dailyCardResponse struct {
	Date     string       `json:"date"`
	Timezone string       `json:"timezone"`
	Card     cardResponse `json:"card"`
}

type drawnCardResponse struct {
	Name           string `json:"name"`
	Position       int    `json:"position"`
	PositionLabel  string `json:"position_label,omitempty"`
	IsReversed     bool   `json:"is_reversed"`
	DisplayMeaning string `json:"display_meaning"`
}

type drawResponse struct {
	Type  *string             `json:"type,omitempty"`
	Cards []drawnCardResponse `json:"cards"`
}

type readingResponse struct {
	ID             string              `json:"id"`
	Type           string              `json:"type"`
	Question       *string             `json:"question,omitempty"`
	Style          string              `json:"style"`
	Interpretation *string             `json:"interpretation,omitempty"`
	Note           *string             `json:"note,omitempty"`
	Cards          []drawnCardResponse `json:"cards"`
	CreatedAt      time.Time           `json:"created_at"`
}

type readingListResponse struct {
	Items  []readingResponse `json:"items"`
	Total  int               `json:"total"`
	Limit  int               `json:"limit,omitempty"`
	Offset int               `json:"offset"`
}

type statisticsResponse struct {
	TotalReadings          int            `json:"total_readings"`
	LoveReadingCount       int            `json:"love_reading_count"`
	UniqueDaysActive       int            `json:"unique_days_active"`
	TotalCardsDrawn        int            `json:"total_cards_drawn"`
	ReversedCount          int            `json:"reversed_count"`
	ReversedPercent        int            `json:"reversed_percent"`
	UniqueCardNames        int            `json:"unique_card_names"`
	CardFrequency          map[string]int `json:"card_frequency"`
	MostFrequentCard       *string        `json:"most_frequent_card,omitempty"`
	CurrentStreak          int            `json:"current_streak"`
	MaxStreak              int            `json:"max_streak"`
	HasEarlyMorningReading bool           `json:"has_early_morning_reading"`
	HasLateNightReading    bool           `json:"has_late_night_reading"`
}

type achievementResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Target      int    `json:"target"`
	Progress    int    `json:"progress"`
	Unlocked    bool   `json:"unlocked"`
}

type profileResponse struct {
	UserID       string                `json:"user_id"`
	Timezone     string                `json:"timezone"`
	AsOf         time.Time             `json:"as_of"`
	Statistics   statisticsResponse    `json:"statistics"`
	Achievements []achievementResponse `json:"achievements"`
}

type settingsResponse struct {
	Timezone     string     `json:"timezone"`
	DefaultStyle string     `json:"default_style"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

func toCardResponse(c reading.CardResult) cardResponse {
	return cardResponse{
		Name:            c.Name,
		Slug:            c.Slug,
		Suit:            c.Suit.String(),
		Number:          c.Number,
		UprightMeaning:  c.UprightMeaning,
		ReversedMeaning: c.ReversedMeaning,
		ImageURL:        c.ImageURL,
	}
}

func toDrawnCards(cards []domain.DrawnCard, labels []string) []drawnCardResponse {
	out := make([]drawnCardResponse, len(cards))
	for i, c := range cards {
		out[i] = drawnCardResponse{
			Name:           c.CardName,
			Position:       c.Position,
			IsReversed:     c.IsReversed,
			DisplayMeaning: c.DisplayMeaning,
		}
		if c.Position >= 1 && c.Position <= len(labels) {
			out[i].PositionLabel = labels[c.Position-1]
		}
	}
	return out
}

func toDrawResponse(res *reading.DrawResult) drawResponse {
	resp := drawResponse{Cards: toDrawnCards(res.Cards, res.Labels)}
	if res.Type != nil {
		t := res.Type.String()
		resp.Type = &t
	}
	return resp
}

func toReadingResponse(r *domain.Reading) readingResponse {
	return readingResponse{
		ID:             r.ID.String(),
		Type:           r.Type.String(),
		Question:       r.Question,
		Style:          r.Style.String(),
		Interpretation: r.Interpretation,
		Note:           r.Note,
		Cards:          toDrawnCards(r.Cards, r.Type.Positions()),
		CreatedAt:      r.CreatedAt,
	}
}

func toProfileResponse(p *domain.Profile) profileResponse {
	s := p.Statistics
	freq := s.CardFrequency
	if freq == nil {
		freq = map[string]int{}
	}
	stats := statisticsResponse{
		TotalReadings:          s.TotalReadings,
		LoveReadingCount:       s.LoveReadingCount,
		UniqueDaysActive:       s.UniqueDaysActive,
		TotalCardsDrawn:        s.TotalCardsDrawn,
		ReversedCount:          s.ReversedCount,
		ReversedPercent:        s.ReversedPercent,
		UniqueCardNames:        s.UniqueCardNames,
		CardFrequency:          freq,
		CurrentStreak:          s.CurrentStreak,
		MaxStreak:              s.MaxStreak,
		HasEarlyMorningReading: s.HasEarlyMorningReading,
		HasLateNightReading:    s.HasLateNightReading,
	}
	if name, _ := s.MostFrequentCard(); name != "" {
		stats.MostFrequentCard = &name
	}

	achievements := make([]achievementResponse, len(p.Achievements))
	for i, a := range p.Achievements {
		achievements[i] = achievementResponse{
			ID:          a.ID,
			Title:       a.Title,
			Description: a.Description,
			Target:      a.Target,
			Progress:    a.Progress,
			Unlocked:    a.Unlocked,
		}
	}

	return profileResponse{
		UserID:       p.UserID.String(),
		Timezone:     p.Timezone,
		AsOf:         p.AsOf,
		Statistics:   stats,
		Achievements: achievements,
	}
}

func toSettingsResponse(s *domain.UserSettings) settingsResponse {
	resp := settingsResponse{
		Timezone:     s.Timezone,
		DefaultStyle: s.DefaultStyle.String(),
	}
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		resp.UpdatedAt = &t
	}
	return resp
}
