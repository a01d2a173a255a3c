// Package keywords builds ranked keyword frequency tables from collected
// news text. Aggregation is a pure function: no cache, fresh state per call.
package keywords

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// Document is the minimal text shape the aggregator consumes.
type Document struct {
	Title   string
	Summary string
}

// Count is one ranked keyword with its frequency.
type Count struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}

// stopwords are domain noise for Hanwha coverage: the organization name,
// generic newsroom terms and bare years.
var stopwords = map[string]struct{}{
	"한화":   {},
	"관련":   {},
	"기사":   {},
	"보도":   {},
	"때문":   {},
	"대한":   {},
	"2024": {},
	"2025": {},
	"기자":   {},
	"사진":   {},
	"제공":   {},
	"속보":   {},
	"오늘":   {},
	"지난":   {},
	"대한민국": {},
	"한국":   {},
	"최근":   {},
	"업계":   {},
	"이번":   {},
	"고객":   {},
	"기업":   {},
	"선정":   {},
	"발표":   {},
	"대표":   {},
	"출시":   {},
	"진행":   {},
}

var (
	// Anything that is not a word character (any script) or whitespace
	// becomes a space, so punctuation splits tokens.
	nonWord  = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)
	bareYear = regexp.MustCompile(`^\d{4}$`)
)

// Tokenize splits free text into lower-cased keyword candidates, dropping
// one-character tokens, stop-words and bare 4-digit years.
func Tokenize(text string) []string {
	text = nonWord.ReplaceAllString(text, " ")

	var tokens []string
	for _, tok := range strings.Fields(text) {
		tok = strings.ToLower(tok)
		if utf8.RuneCountInString(tok) <= 1 {
			continue
		}
		if _, ok := stopwords[tok]; ok {
			continue
		}
		if bareYear.MatchString(tok) {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// Aggregate counts keywords across all documents and returns the top topN,
// sorted by count descending. Ties keep the order in which a keyword was
// first encountered. Empty input yields an empty table.
func Aggregate(docs []Document, topN int) []Count {
	if topN <= 0 {
		return nil
	}

	counts := make(map[string]int)
	firstSeen := make(map[string]int)

	for _, d := range docs {
		for _, tok := range Tokenize(d.Title + " " + d.Summary) {
			if _, seen := counts[tok]; !seen {
				firstSeen[tok] = len(firstSeen)
			}
			counts[tok]++
		}
	}
	if len(counts) == 0 {
		return nil
	}

	ranked := make([]Count, 0, len(counts))
	for kw, n := range counts {
		ranked = append(ranked, Count{Keyword: kw, Count: n})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return firstSeen[ranked[i].Keyword] < firstSeen[ranked[j].Keyword]
	})

	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}
