package interpretation

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/tarot-backend/internal/domain"
)

var styleVoices = map[domain.InterpretationStyle]string{
	domain.StyleClassic:       "a traditional tarot reader who explains each card's classic symbolism",
	domain.StylePsychological: "a reflective counsellor who reads the cards as archetypes and inner patterns",
	domain.StyleSpiritual:     "a gentle spiritual guide who speaks of growth, energy and intuition",
	domain.StylePractical:     "a grounded advisor who turns each card into concrete, actionable advice",
}

func systemPrompt(style domain.InterpretationStyle) string {
	voice, ok := styleVoices[style]
	if !ok {
		voice = styleVoices[domain.StyleClassic]
	}
	return "You are " + voice + ". Write a personal tarot reading in plain prose, " +
		"addressing the querent directly. Refer to every card by name and position. " +
		"Keep it under 350 words and do not use markdown headings."
}

func buildPrompt(req domain.InterpretationRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Spread: %s\n", req.Type)
	if q := strings.TrimSpace(req.Question); q != "" {
		fmt.Fprintf(&b, "Question: %s\n", q)
	} else {
		b.WriteString("Question: none given, offer general guidance\n")
	}

	b.WriteString("Cards:\n")
	for i, c := range req.Cards {
		orientation := "upright"
		if c.IsReversed {
			orientation = "reversed"
		}
		fmt.Fprintf(&b, "%d. %s: %s (%s) - %s\n", i+1, c.Position, c.Name, orientation, c.Meaning)
	}

	return b.String()
}
