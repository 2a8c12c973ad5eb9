package classify

import (
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"
)

// Scoring weights. A substring hit outweighs a token hit outweighs a prefix
// hit so that multi-word keywords ("çamaşır suyu") still dominate.
const (
	scoreSubstring = 3
	scoreToken     = 2
	scorePrefix    = 1
)

// Unit, packaging and brand heuristics applied on top of the keyword scores.
var (
	volumeUnits  = regexp.MustCompile(`\b(ml|lt|l|cl)\b`)
	weightUnits  = regexp.MustCompile(`\b(gr|g|kg|kg\.)\b`)
	packageUnits = regexp.MustCompile(`\b(adet|pk|pack|package)\b`)
	babyBrands   = regexp.MustCompile(`\bbebelac\b|\baptamil\b|\bbiberon\b`)
	perfumeTerms = regexp.MustCompile(`\bkolonya\b|\bparfüm\b|\bedp\b|\bedt\b`)
)

// Fallback chain, consulted only when no keyword or bonus scored at all.
var (
	fallbackVolume      = regexp.MustCompile(`\b(ml|lt|l)\b`)
	fallbackWeight      = regexp.MustCompile(`\b(gr|g|kg)\b`)
	fallbackElectronics = regexp.MustCompile(`\b(telefon|usb|şarj|kablo|kulaklık|powerbank)\b`)
	fallbackCare        = regexp.MustCompile(`\b(şampuan|sabun|duş)\b`)
)

var punctuation = regexp.MustCompile(`[\x{2000}-\x{206F}\x{2E00}-\x{2E7F}'".,()/\-+&]`)

// Tokenize lowercases a title, strips punctuation and symbol characters and
// splits on whitespace. Empty tokens are dropped.
func Tokenize(title string) []string {
	cleaned := punctuation.ReplaceAllString(strings.ToLower(title), " ")
	return strings.Fields(cleaned)
}

// Classifier assigns every product title to exactly one category label. It
// is a total, deterministic function: any input, including the empty string,
// yields a label from the closed set.
type Classifier struct {
	rules   []Rule
	byLabel map[string]int
}

// NewClassifier builds a classifier over an ordered rule table. The table's
// declaration order is the tie-break between equal scores.
func NewClassifier(rules []Rule) *Classifier {
	byLabel := make(map[string]int, len(rules))
	for i, r := range rules {
		if _, ok := byLabel[r.Label]; !ok {
			byLabel[r.Label] = i
		}
	}
	return &Classifier{rules: rules, byLabel: byLabel}
}

// Categorize returns the best scoring category label for a title.
func (c *Classifier) Categorize(title string) string {
	lower := strings.ToLower(title)
	tokens := Tokenize(title)

	scores := make([]int, len(c.rules))
	for i, rule := range c.rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				scores[i] += scoreSubstring
			}
			if slices.Contains(tokens, kw) {
				scores[i] += scoreToken
			}
			if utf8.RuneCountInString(kw) > 2 {
				for _, t := range tokens {
					if strings.HasPrefix(t, kw) {
						scores[i] += scorePrefix
						break
					}
				}
			}
		}
	}

	if volumeUnits.MatchString(lower) {
		c.bump(scores, LabelBeverages, 4)
	}
	if weightUnits.MatchString(lower) {
		c.bump(scores, LabelStaples, 3)
	}
	if packageUnits.MatchString(lower) {
		// Packaged counts point at both kitchenware and snacks.
		c.bump(scores, LabelKitchen, 1)
		c.bump(scores, LabelSnacks, 1)
	}
	if babyBrands.MatchString(lower) {
		c.bump(scores, LabelBaby, 5)
	}
	if perfumeTerms.MatchString(lower) {
		c.bump(scores, LabelCosmetics, 4)
	}

	best := LabelOther
	bestScore := -1
	for i, rule := range c.rules {
		if scores[i] > bestScore {
			bestScore = scores[i]
			best = rule.Label
		}
	}

	if bestScore <= 0 {
		return fallback(lower)
	}
	return best
}

func (c *Classifier) bump(scores []int, label string, n int) {
	if i, ok := c.byLabel[label]; ok {
		scores[i] += n
	}
}

func fallback(lower string) string {
	switch {
	case fallbackVolume.MatchString(lower):
		return LabelBeverages
	case fallbackWeight.MatchString(lower):
		return LabelStaples
	case fallbackElectronics.MatchString(lower):
		return LabelElectronics
	case fallbackCare.MatchString(lower):
		return LabelPersonal
	default:
		return LabelOther
	}
}
