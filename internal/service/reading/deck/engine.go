package deck

import (
	"errors"
	"fmt"
	"time"

	"github.com/heartmarshall/tarot-backend/internal/domain"
)

// ErrInvalidDrawCount is returned when a draw asks for fewer than one card
// or more cards than the pool holds. Requests are rejected, never clamped.
var ErrInvalidDrawCount = errors.New("invalid draw count")

// Engine performs draws over a catalog. Safe for concurrent use as long as
// its RNG is.
type Engine struct {
	catalog *Catalog
	rng     RNG
}

// NewEngine creates an Engine. A nil rng selects a randomly seeded source.
func NewEngine(catalog *Catalog, rng RNG) *Engine {
	if rng == nil {
		rng = newDefaultRNG()
	}
	return &Engine{catalog: catalog, rng: rng}
}

// Catalog returns the engine's catalog.
func (e *Engine) Catalog() *Catalog { return e.catalog }

// DrawCard flips an independent fair coin for orientation and freezes the
// matching meaning. Position is left for the caller to assign.
func (e *Engine) DrawCard(card domain.Card) domain.DrawnCard {
	reversed := e.rng.IntN(2) == 1
	return domain.DrawnCard{
		CardName:       card.Name,
		IsReversed:     reversed,
		DisplayMeaning: card.Meaning(reversed),
	}
}

// DrawCards returns count distinct cards from pool with positions 1..count.
// The pool itself is not modified.
func (e *Engine) DrawCards(count int, pool []domain.Card) ([]domain.DrawnCard, error) {
	if count < 1 || count > len(pool) {
		return nil, fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidDrawCount, count, len(pool))
	}

	shuffled := make([]domain.Card, len(pool))
	copy(shuffled, pool)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := e.rng.IntN(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	out := make([]domain.DrawnCard, count)
	for i := range count {
		out[i] = e.DrawCard(shuffled[i])
		out[i].Position = i + 1
	}
	return out, nil
}

// DrawFromPool draws count cards from one of the catalog's named pools.
func (e *Engine) DrawFromPool(count int, pool domain.DeckPool) ([]domain.DrawnCard, error) {
	cards, err := e.catalog.Pool(pool)
	if err != nil {
		return nil, err
	}
	return e.DrawCards(count, cards)
}

// CardOfTheDay returns the card for the calendar date of day, read in
// day's own location. seed = year*10000 + month*100 + day, index = seed mod
// deck size. The hash is deliberately simple and deterministic: everyone
// sees the same card for the same date. The card is never reversed.
func (e *Engine) CardOfTheDay(day time.Time) domain.Card {
	return e.catalog.At(DaySeed(day) % e.catalog.Len())
}

// DaySeed computes the card-of-the-day seed for a calendar date.
func DaySeed(day time.Time) int {
	y, m, d := day.Date()
	return y*10000 + int(m)*100 + d
}
