package deck

import (
	"fmt"
	"strings"

	"github.com/gosimple/slug"

	"github.com/heartmarshall/tarot-backend/internal/domain"
)

// FullDeckSize and MajorArcanaSize are the sizes of the two draw pools.
const (
	FullDeckSize    = 78
	MajorArcanaSize = 22
)

type meaning struct {
	name     string
	upright  string
	reversed string
}

var majorArcana = [MajorArcanaSize]meaning{
	{"The Fool", "New beginnings, spontaneity, a leap of faith", "Recklessness, hesitation, fear of the unknown"},
	{"The Magician", "Willpower, skill, resources at hand", "Manipulation, untapped talent, scattered focus"},
	{"The High Priestess", "Intuition, hidden knowledge, the inner voice", "Secrets withheld, disconnection from intuition"},
	{"The Empress", "Abundance, nurturing, creativity", "Dependence, creative block, neglect of self"},
	{"The Emperor", "Structure, authority, stability", "Rigidity, domination, loss of control"},
	{"The Hierophant", "Tradition, guidance, shared belief", "Rebellion, unconventional paths, dogma questioned"},
	{"The Lovers", "Union, harmony, a meaningful choice", "Imbalance, misalignment, a choice avoided"},
	{"The Chariot", "Determination, momentum, victory through will", "Lack of direction, aggression, stalled progress"},
	{"Strength", "Courage, patience, gentle control", "Self-doubt, raw emotion, weakness"},
	{"The Hermit", "Introspection, solitude, inner guidance", "Isolation, loneliness, withdrawal"},
	{"Wheel of Fortune", "Cycles, fate, a turning point", "Bad luck, resistance to change, broken cycles"},
	{"Justice", "Fairness, truth, cause and effect", "Unfairness, dishonesty, avoided accountability"},
	{"The Hanged Man", "Surrender, new perspective, pause", "Stalling, needless sacrifice, indecision"},
	{"Death", "Endings, transformation, transition", "Resistance to change, stagnation, fear of endings"},
	{"Temperance", "Balance, moderation, patience", "Excess, imbalance, lack of long-term vision"},
	{"The Devil", "Attachment, temptation, shadow self", "Release, breaking free, reclaiming power"},
	{"The Tower", "Sudden upheaval, revelation, collapse of illusions", "Averted disaster, fear of change, delayed reckoning"},
	{"The Star", "Hope, renewal, serenity", "Despair, lost faith, disconnection"},
	{"The Moon", "Illusion, intuition, the subconscious", "Confusion lifting, repressed fears, misinterpretation"},
	{"The Sun", "Joy, success, vitality", "Temporary sadness, dimmed optimism, overconfidence"},
	{"Judgement", "Reflection, reckoning, awakening", "Self-doubt, harsh self-judgement, ignored calling"},
	{"The World", "Completion, integration, accomplishment", "Unfinished business, shortcuts, lack of closure"},
}

var minorRanks = [14]meaning{
	{"Ace", "a new beginning", "a false start"},
	{"Two", "a decision or partnership", "indecision and imbalance"},
	{"Three", "growth and collaboration", "delays and miscommunication"},
	{"Four", "stability and rest", "stagnation or restlessness"},
	{"Five", "conflict and loss", "recovery and reconciliation"},
	{"Six", "harmony and progress", "nostalgia or setbacks"},
	{"Seven", "perseverance and assessment", "doubt and distraction"},
	{"Eight", "movement and mastery", "stalled effort"},
	{"Nine", "near fulfilment", "anxiety over the final stretch"},
	{"Ten", "completion and its burdens", "release from a burden"},
	{"Page", "curiosity and new messages", "immaturity and blocked ideas"},
	{"Knight", "action and pursuit", "haste and recklessness"},
	{"Queen", "nurturing maturity", "insecurity and dependence"},
	{"King", "mastery and leadership", "misuse of authority"},
}

var suitDomains = map[domain.Suit]string{
	domain.SuitWands:     "passion and ambition",
	domain.SuitCups:      "emotion and relationships",
	domain.SuitSwords:    "thought and conflict",
	domain.SuitPentacles: "work and material life",
}

// Catalog is the ordered, read-only 78-card deck: the major arcana 0..21
// followed by wands, cups, swords and pentacles, ace to king. The order is
// part of the card-of-the-day contract and must stay stable.
type Catalog struct {
	cards  []domain.Card
	byName map[string]int
	bySlug map[string]int
}

// NewCatalog builds the standard deck.
func NewCatalog() *Catalog {
	cards := make([]domain.Card, 0, FullDeckSize)

	for i, m := range majorArcana {
		cards = append(cards, newCard(m.name, domain.SuitMajor, i, m.upright, m.reversed))
	}

	for _, suit := range domain.MinorSuits {
		area := suitDomains[suit]
		for i, r := range minorRanks {
			name := fmt.Sprintf("%s of %s", r.name, titleSuit(suit))
			cards = append(cards, newCard(name, suit, i+1,
				fmt.Sprintf("%s in %s", capitalize(r.upright), area),
				fmt.Sprintf("%s in %s", capitalize(r.reversed), area),
			))
		}
	}

	c, err := newCatalog(cards)
	if err != nil {
		panic(err)
	}
	return c
}

func newCatalog(cards []domain.Card) (*Catalog, error) {
	c := &Catalog{
		cards:  cards,
		byName: make(map[string]int, len(cards)),
		bySlug: make(map[string]int, len(cards)),
	}
	for i, card := range cards {
		if _, dup := c.byName[card.Name]; dup {
			return nil, fmt.Errorf("deck: duplicate card name %q", card.Name)
		}
		if _, dup := c.bySlug[card.Slug]; dup {
			return nil, fmt.Errorf("deck: duplicate card slug %q", card.Slug)
		}
		c.byName[card.Name] = i
		c.bySlug[card.Slug] = i
	}
	return c, nil
}

func newCard(name string, suit domain.Suit, number int, upright, reversed string) domain.Card {
	s := slug.Make(name)
	return domain.Card{
		Name:            name,
		Slug:            s,
		Suit:            suit,
		Number:          number,
		UprightMeaning:  upright,
		ReversedMeaning: reversed,
		ImageRef:        fmt.Sprintf("%s/%02d-%s.webp", suit, number, s),
	}
}

// Len returns the number of cards in the catalog.
func (c *Catalog) Len() int { return len(c.cards) }

// All returns a copy of the catalog in canonical order.
func (c *Catalog) All() []domain.Card {
	out := make([]domain.Card, len(c.cards))
	copy(out, c.cards)
	return out
}

// At returns the card at a canonical index.
func (c *Catalog) At(i int) domain.Card { return c.cards[i] }

// Major returns a copy of the 22 major arcana.
func (c *Catalog) Major() []domain.Card {
	out := make([]domain.Card, 0, MajorArcanaSize)
	for _, card := range c.cards {
		if card.IsMajor() {
			out = append(out, card)
		}
	}
	return out
}

// Pool returns a copy of the cards in the given pool.
func (c *Catalog) Pool(p domain.DeckPool) ([]domain.Card, error) {
	switch p {
	case domain.PoolFull, "":
		return c.All(), nil
	case domain.PoolMajor:
		return c.Major(), nil
	}
	return nil, fmt.Errorf("deck: unknown pool %q", p)
}

// ByName looks a card up by its unique name.
func (c *Catalog) ByName(name string) (domain.Card, bool) {
	i, ok := c.byName[name]
	if !ok {
		return domain.Card{}, false
	}
	return c.cards[i], true
}

// BySlug looks a card up by its URL slug.
func (c *Catalog) BySlug(s string) (domain.Card, bool) {
	i, ok := c.bySlug[s]
	if !ok {
		return domain.Card{}, false
	}
	return c.cards[i], true
}

func titleSuit(s domain.Suit) string {
	return capitalize(string(s))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
