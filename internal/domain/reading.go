package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Reading is a persisted draw owned by a user. Only Note changes after
// creation.
type Reading struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Type           ReadingType
	Cards          []DrawnCard
	Question       *string
	Style          InterpretationStyle
	Interpretation *string
	Note           *string
	CreatedAt      time.Time
}

// Validate checks the per-type shape of the reading: a known type, exactly
// Type.Arity() cards and positions 1..n each used once.
func (r *Reading) Validate() error {
	var errs []FieldError

	if !r.Type.IsValid() {
		errs = append(errs, FieldError{Field: "type", Message: fmt.Sprintf("unknown reading type %q", r.Type)})
		return NewValidationErrors(errs)
	}

	if want := r.Type.Arity(); len(r.Cards) != want {
		errs = append(errs, FieldError{
			Field:   "cards",
			Message: fmt.Sprintf("%s reading requires %d cards, got %d", r.Type, want, len(r.Cards)),
		})
	}

	seen := make(map[int]bool, len(r.Cards))
	for i, c := range r.Cards {
		if c.CardName == "" {
			errs = append(errs, FieldError{Field: fmt.Sprintf("cards[%d].name", i), Message: "required"})
		}
		if c.Position < 1 || c.Position > len(r.Cards) || seen[c.Position] {
			errs = append(errs, FieldError{Field: fmt.Sprintf("cards[%d].position", i), Message: "invalid or duplicate position"})
		}
		seen[c.Position] = true
	}

	if r.Style != "" && !r.Style.IsValid() {
		errs = append(errs, FieldError{Field: "style", Message: fmt.Sprintf("unknown style %q", r.Style)})
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// PositionLabel returns the label of a 1-based position for the reading's
// type, or an empty string when out of range.
func (r *Reading) PositionLabel(position int) string {
	labels := r.Type.Positions()
	if position < 1 || position > len(labels) {
		return ""
	}
	return labels[position-1]
}

// ReadingFilter narrows a paginated reading listing.
type ReadingFilter struct {
	Type   *ReadingType
	Limit  int
	Offset int
}

// InterpretationRequest is what the text generator receives for a reading.
type InterpretationRequest struct {
	Type     ReadingType
	Style    InterpretationStyle
	Question string
	Cards    []InterpretedCard
}

// InterpretedCard is a drawn card with its position label resolved.
type InterpretedCard struct {
	Name       string
	Position   string
	IsReversed bool
	Meaning    string
}
