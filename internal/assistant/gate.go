package assistant

import "strings"

// Keyword lists for the relevance gate. Spanish stems cover plural forms
// via substring matching.
var (
	tourismKeywords = []string{
		"turista", "turismo", "visita", "hotel", "ocupación", "ocupacion",
		"viaje", "estancia", "pasajero", "ingreso", "gasto",
		"alojamiento", "estadística", "estadistica", "dato",
		"cuántos", "cuantos", "cuánto", "cuanto",
	}

	islandKeywords = []string{
		"canarias", "tenerife", "gran canaria", "lanzarote",
		"fuerteventura", "la palma", "la gomera", "el hierro", "isla",
	}
)

// maxShortQuestionWords bounds the "short tourism question" heuristic: a
// tourism-flavored question this short is assumed to be on topic even when
// it names no island.
const maxShortQuestionWords = 30

// IsTourismQuestion reports whether the message plausibly asks about Canary
// Islands tourism. A keyword heuristic, deliberately permissive: the system
// prompt is the second line of defense for off-topic content.
func IsTourismQuestion(message string) bool {
	lower := strings.ToLower(message)

	hasIsland := containsAnyKeyword(lower, islandKeywords)
	if hasIsland {
		return true
	}

	hasTourism := containsAnyKeyword(lower, tourismKeywords)
	return hasTourism && len(strings.Fields(message)) < maxShortQuestionWords
}

func containsAnyKeyword(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
