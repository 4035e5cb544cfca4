package domain

// Suit groups cards of the catalog. Major arcana cards use SuitMajor.
type Suit string

const (
	SuitMajor     Suit = "major"
	SuitWands     Suit = "wands"
	SuitCups      Suit = "cups"
	SuitSwords    Suit = "swords"
	SuitPentacles Suit = "pentacles"
)

func (s Suit) String() string { return string(s) }

func (s Suit) IsValid() bool {
	switch s {
	case SuitMajor, SuitWands, SuitCups, SuitSwords, SuitPentacles:
		return true
	}
	return false
}

// MinorSuits lists the four suits of the minor arcana in catalog order.
var MinorSuits = []Suit{SuitWands, SuitCups, SuitSwords, SuitPentacles}

// ReadingType discriminates reading variants. Each type fixes the number
// of cards drawn and the label of every position.
type ReadingType string

const (
	ReadingTypeThreeCard    ReadingType = "three-card"
	ReadingTypeLoveFiveCard ReadingType = "love-five-card"
	ReadingTypeDailySingle  ReadingType = "daily-single"
)

func (t ReadingType) String() string { return string(t) }

func (t ReadingType) IsValid() bool {
	switch t {
	case ReadingTypeThreeCard, ReadingTypeLoveFiveCard, ReadingTypeDailySingle:
		return true
	}
	return false
}

// IsLove reports whether the reading counts toward love statistics.
func (t ReadingType) IsLove() bool { return t == ReadingTypeLoveFiveCard }

// Arity returns the number of cards a reading of this type holds, or 0
// for an unknown type.
func (t ReadingType) Arity() int {
	return len(t.Positions())
}

// Positions returns the ordered position labels for the type.
func (t ReadingType) Positions() []string {
	switch t {
	case ReadingTypeThreeCard:
		return []string{"Past", "Present", "Future"}
	case ReadingTypeLoveFiveCard:
		return []string{"You", "Partner", "Connection", "Obstacle", "Outcome"}
	case ReadingTypeDailySingle:
		return []string{"Today"}
	}
	return nil
}

// ReadingTypes lists all known reading types.
var ReadingTypes = []ReadingType{ReadingTypeThreeCard, ReadingTypeLoveFiveCard, ReadingTypeDailySingle}

// InterpretationStyle selects the voice of the generated interpretation.
type InterpretationStyle string

const (
	StyleClassic       InterpretationStyle = "classic"
	StylePsychological InterpretationStyle = "psychological"
	StyleSpiritual     InterpretationStyle = "spiritual"
	StylePractical     InterpretationStyle = "practical"
)

func (s InterpretationStyle) String() string { return string(s) }

func (s InterpretationStyle) IsValid() bool {
	switch s {
	case StyleClassic, StylePsychological, StyleSpiritual, StylePractical:
		return true
	}
	return false
}

// DeckPool selects which subset of the catalog a draw uses.
type DeckPool string

const (
	PoolFull  DeckPool = "full"
	PoolMajor DeckPool = "major"
)

func (p DeckPool) String() string { return string(p) }

func (p DeckPool) IsValid() bool {
	return p == PoolFull || p == PoolMajor
}
