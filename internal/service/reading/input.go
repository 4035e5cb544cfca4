package reading

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/tarot-backend/internal/domain"
	"github.com/heartmarshall/tarot-backend/internal/service/reading/deck"
)

// DrawInput describes a preview draw. When Type is set, Count is ignored
// and the type's arity is used.
type DrawInput struct {
	Type  *domain.ReadingType
	Count int
	Pool  domain.DeckPool
}

// Validate checks all fields and collects all errors.
func (i DrawInput) Validate() error {
	var errs []domain.FieldError

	if i.Type != nil {
		if !i.Type.IsValid() {
			errs = append(errs, domain.FieldError{Field: "type", Message: fmt.Sprintf("unknown reading type %q", *i.Type)})
		}
	} else if i.Count < 1 || i.Count > deck.FullDeckSize {
		errs = append(errs, domain.FieldError{Field: "count", Message: fmt.Sprintf("must be between 1 and %d", deck.FullDeckSize)})
	}

	if i.Pool != "" && !i.Pool.IsValid() {
		errs = append(errs, domain.FieldError{Field: "pool", Message: fmt.Sprintf("unknown pool %q", i.Pool)})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateReadingInput holds the parameters for drawing and saving a reading.
type CreateReadingInput struct {
	Type      domain.ReadingType
	Question  *string
	Style     *domain.InterpretationStyle
	Pool      domain.DeckPool
	Interpret bool
}

// Validate checks all fields against the configured limits.
func (i CreateReadingInput) Validate(maxQuestionLen int) error {
	var errs []domain.FieldError

	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: fmt.Sprintf("unknown reading type %q", i.Type)})
	}

	if i.Question != nil {
		q := strings.TrimSpace(*i.Question)
		if utf8.RuneCountInString(q) > maxQuestionLen {
			errs = append(errs, domain.FieldError{Field: "question", Message: fmt.Sprintf("max %d characters", maxQuestionLen)})
		}
	}

	if i.Style != nil && !i.Style.IsValid() {
		errs = append(errs, domain.FieldError{Field: "style", Message: fmt.Sprintf("unknown style %q", *i.Style)})
	}

	switch {
	case i.Pool == "" || i.Pool == domain.PoolFull:
	case !i.Pool.IsValid():
		errs = append(errs, domain.FieldError{Field: "pool", Message: fmt.Sprintf("unknown pool %q", i.Pool)})
	case i.Type != domain.ReadingTypeThreeCard:
		errs = append(errs, domain.FieldError{Field: "pool", Message: "only three-card readings can use a reduced pool"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListReadingsInput holds the parameters for listing readings.
type ListReadingsInput struct {
	Type   *domain.ReadingType
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i ListReadingsInput) Validate(maxPage int) error {
	var errs []domain.FieldError
	if i.Type != nil && !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: fmt.Sprintf("unknown reading type %q", *i.Type)})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Limit > maxPage {
		errs = append(errs, domain.FieldError{Field: "limit", Message: fmt.Sprintf("max %d", maxPage)})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateNoteInput replaces the note of a reading. A nil or blank note
// clears it.
type UpdateNoteInput struct {
	ReadingID uuid.UUID
	Note      *string
}

// Validate checks all fields against the configured limits.
func (i UpdateNoteInput) Validate(maxNoteLen int) error {
	var errs []domain.FieldError
	if i.ReadingID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "reading_id", Message: "required"})
	}
	if i.Note != nil && utf8.RuneCountInString(strings.TrimSpace(*i.Note)) > maxNoteLen {
		errs = append(errs, domain.FieldError{Field: "note", Message: fmt.Sprintf("max %d characters", maxNoteLen)})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
