package interpretation

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/tarot-backend/internal/domain"
)

// Stub builds an interpretation from the frozen card meanings without any
// external call. Used when no generation API key is configured.
type Stub struct{}

// NewStub creates a new offline generator.
func NewStub() *Stub { return &Stub{} }

// Generate joins the cards' display meanings into a short reading.
func (s *Stub) Generate(_ context.Context, req domain.InterpretationRequest) (string, error) {
	parts := make([]string, 0, len(req.Cards)+1)
	if q := strings.TrimSpace(req.Question); q != "" {
		parts = append(parts, fmt.Sprintf("On %q:", q))
	}
	for _, c := range req.Cards {
		orientation := ""
		if c.IsReversed {
			orientation = " reversed"
		}
		parts = append(parts, fmt.Sprintf("%s: %s%s. %s.", c.Position, c.Name, orientation, c.Meaning))
	}
	return strings.Join(parts, " "), nil
}
