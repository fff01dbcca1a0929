package languageutil

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"dressapi/models"
)

var TitleCaser = cases.Title(language.English)

var wordPattern = regexp.MustCompile(`[a-zA-Z]+`)

// Common misspellings seen in user queries, applied before any matching.
var corrections = map[string]string{
	"sare":    "saree",
	"sari":    "saree",
	"lhnga":   "lehenga",
	"lehnga":  "lehenga",
	"dhti":    "dhoti",
	"kurtha":  "kurta",
	"pajma":   "pajama",
	"shrvani": "sherwani",
	"slwr":    "salwar",
	"kamez":   "kameez",
	"ctn":     "cotton",
	"slk":     "silk",
	"weding":  "wedding",
	"festval": "festival",
	"casuall": "casual",
	"formall": "formal",
	"pty":     "party",
}

// Garment vocabulary used for keyword extraction from free text.
var garmentVocabulary = []string{
	// garment types
	"saree", "lehenga", "choli", "salwar", "kameez", "kurta", "pajama",
	"sherwani", "dhoti", "lungi", "anarkali", "churidar", "patiala",
	"dupatta", "vesti", "nehru", "jacket", "bandhgala",
	// fabrics
	"silk", "cotton", "banarasi", "chiffon", "georgette", "chanderi",
	"khadi", "linen", "brocade", "crepe", "organza", "tussar",
	"kanjivaram", "velvet",
	// occasions
	"wedding", "festival", "diwali", "holi", "navratri", "casual",
	"formal", "party", "sangeet", "mehendi", "reception",
	// regions
	"punjabi", "gujarati", "rajasthani", "bengali", "kashmiri", "tamil",
	"kerala",
}

var categoryTerms = map[string][]string{
	"Saree":         {"saree", "sari", "shari"},
	"Lehenga":       {"lehenga", "lehnga", "choli", "chaniya"},
	"Salwar Kameez": {"salwar", "kameez", "anarkali", "patiala"},
	"Kurta Pajama":  {"kurta", "kurti", "pajama"},
	"Sherwani":      {"sherwani", "shirwani"},
	"Dhoti":         {"dhoti", "dhuti", "doti"},
	"Nehru Jacket":  {"nehru", "bandhgala"},
	"Indo-Western":  {"fusion", "gown"},
	"Vesti":         {"vesti", "lungi", "mundu"},
}

var occasionTerms = map[string][]string{
	"Wedding":  {"wedding", "shaadi", "marriage", "vivah", "bridal"},
	"Festival": {"festival", "diwali", "holi", "navratri", "puja"},
	"Casual":   {"casual", "daily", "everyday"},
	"Formal":   {"formal", "office", "business", "work"},
	"Party":    {"party", "function", "event", "reception", "sangeet"},
}

var fabricTerms = map[string][]string{
	"Silk":      {"silk", "resham", "banarasi", "kanjivaram"},
	"Cotton":    {"cotton", "khadi", "handloom"},
	"Georgette": {"georgette", "jorjet"},
	"Velvet":    {"velvet"},
	"Crepe":     {"crepe"},
}

var regionTerms = map[string][]string{
	"North": {"north", "punjabi", "rajasthani", "kashmiri", "delhi"},
	"South": {"south", "tamil", "kerala", "karnataka", "andhra"},
	"East":  {"east", "bengali", "assam", "bengal"},
	"West":  {"west", "gujarati", "marathi", "goa"},
}

var genderTerms = map[string][]string{
	"Men":    {"men", "mens", "man", "gents", "male", "groom"},
	"Women":  {"women", "womens", "woman", "ladies", "female", "bride"},
	"Unisex": {"unisex"},
}

// CleanQuery lowercases the text and fixes known misspellings word by word.
func CleanQuery(text string) string {
	words := wordPattern.FindAllString(strings.ToLower(text), -1)
	cleaned := make([]string, 0, len(words))
	for _, word := range words {
		if fixed, ok := corrections[word]; ok {
			cleaned = append(cleaned, fixed)
			continue
		}
		cleaned = append(cleaned, word)
	}
	return strings.Join(cleaned, " ")
}

// ExtractKeywords returns the garment vocabulary present in the text after
// typo cleanup, deduplicated, in first-seen order.
func ExtractKeywords(text string) []string {
	words := strings.Fields(CleanQuery(text))
	seen := map[string]bool{}
	var keywords []string
	for _, word := range words {
		match := ClosestTerm(word, garmentVocabulary, 0.75)
		if match == "" || seen[match] {
			continue
		}
		seen[match] = true
		keywords = append(keywords, match)
	}
	return keywords
}

// ParseFilters derives a garment filter from free text with fuzzy term
// matching, the local counterpart of the assistant's criteria extraction.
func ParseFilters(text string) models.GarmentFilter {
	words := strings.Fields(CleanQuery(text))
	filter := models.GarmentFilter{Keywords: ExtractKeywords(text)}
	filter.Category = matchTerms(words, categoryTerms)
	filter.Occasion = matchTerms(words, occasionTerms)
	filter.Fabric = matchTerms(words, fabricTerms)
	filter.Region = matchTerms(words, regionTerms)
	filter.Gender = matchTerms(words, genderTerms)
	return filter
}

// NormalizeQuery is the reply-cache key for a user message.
func NormalizeQuery(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(text))), " ")
}

func matchTerms(words []string, terms map[string][]string) *string {
	for _, word := range words {
		for value, candidates := range terms {
			if ClosestTerm(word, candidates, 0.8) != "" {
				v := value
				return &v
			}
		}
	}
	return nil
}

// ClosestTerm returns the candidate closest to word, or "" when nothing
// reaches the similarity cutoff. Similarity is 1 - distance/maxLen over
// the edit distance, which tracks what difflib's cutoff does closely
// enough for single words.
func ClosestTerm(word string, candidates []string, cutoff float64) string {
	word = strings.ToLower(word)
	best := ""
	bestScore := cutoff
	for _, candidate := range candidates {
		score := similarity(word, strings.ToLower(candidate))
		if score >= bestScore {
			best = candidate
			bestScore = score
		}
	}
	return best
}

func similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}
	if longest == 0 {
		return 1
	}
	return 1 - float64(editDistance(a, b))/float64(longest)
}

func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	current := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		current[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			current[j] = min(prev[j]+1, current[j-1]+1, prev[j-1]+cost)
		}
		prev, current = current, prev
	}
	return prev[len(rb)]
}
