package classify

import (
	"regexp"
	"strings"
)

// Nicotine and tobacco products may not enter the catalog. The list mixes
// generic category terms with known cigarette/heater/vape brand names as they
// appear in the feed.
var tobaccoKeywords = []string{
	"sigara", "tütün", "puro", "nargile", "vape", "nikotin", "tutun", "duhan", "tobacco",
	"heets", "iqos", "glo", "vuse", "vype", "vapor", "hookah",
	"marlboro", "kent", "winston", "camel", "parliament", "pall mall", "pallmall",
	"chesterfield", "gauloises", "superkings", "mayfair", "richmond", "rotman",
}

var tobaccoPatterns = compileTobaccoPatterns()

// Secondary net for the core terms. Deliberately looser than the per-keyword
// boundary match.
var tobaccoCore = regexp.MustCompile(`\bsigara\b|\btütün\b|\bpuro\b|\bnargile\b|\bvape\b|\bnikotin\b`)

func compileTobaccoPatterns() []*regexp.Regexp {
	res := make([]*regexp.Regexp, 0, len(tobaccoKeywords))
	for _, kw := range tobaccoKeywords {
		res = append(res, regexp.MustCompile(`\b`+regexp.QuoteMeta(kw)+`\b`))
	}
	return res
}

// IsTobacco reports whether a product title names a tobacco or nicotine
// product. Matching is case-insensitive and keeps the source language's
// diacritics intact ("tütün" and "tutun" are separate keywords on purpose).
func IsTobacco(title string) bool {
	if title == "" {
		return false
	}
	lower := strings.ToLower(title)
	for _, re := range tobaccoPatterns {
		if re.MatchString(lower) {
			return true
		}
	}
	return tobaccoCore.MatchString(lower)
}
