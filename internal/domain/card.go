package domain

// Card is an immutable catalog entry. Name and Slug are unique across the
// catalog.
type Card struct {
	Name            string
	Slug            string
	Suit            Suit
	Number          int // 0..21 for major arcana, 1..14 (ace..king) for minor
	UprightMeaning  string
	ReversedMeaning string
	ImageRef        string
}

// IsMajor reports whether the card belongs to the major arcana.
func (c Card) IsMajor() bool { return c.Suit == SuitMajor }

// Meaning returns the meaning for the given orientation.
func (c Card) Meaning(reversed bool) string {
	if reversed {
		return c.ReversedMeaning
	}
	return c.UprightMeaning
}

// DrawnCard is one card as it came out of a draw. DisplayMeaning is fixed
// at draw time and does not follow later catalog edits.
type DrawnCard struct {
	CardName       string
	Position       int // 1-based
	IsReversed     bool
	DisplayMeaning string
}
