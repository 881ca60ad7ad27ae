// Package industry classifies a company into one of the 7 priority-matrix
// industries from free-form company text (website copy, descriptions).
// Classification is keyword-frequency based; anything that cannot be
// classified falls back to Professional Services.
package industry

import (
	"log/slog"
	"sort"
	"strings"
)

// Result is the classification outcome.
type Result struct {
	Industry   string   `json:"industry"`
	Confidence float64  `json:"confidence"`
	Offerings  []string `json:"offerings"`
	Reasoning  string   `json:"reasoning"`
}

// DefaultResult is returned when the supplied text is missing or too thin
// to classify.
func DefaultResult() Result {
	return Result{
		Industry:   "Professional Services",
		Confidence: 0.5,
		Offerings:  []string{},
		Reasoning:  "Default classification - company could not be analyzed",
	}
}

// minTextLength guards against classifying on a handful of words.
const minTextLength = 100

var industryKeywords = map[string][]string{
	"Software & Technology": {
		"software", "saas", "platform", "cloud", "api", "app", "developer",
		"technology", "data", "ai", "machine learning", "it services",
	},
	"Healthcare & Medical": {
		"health", "medical", "patient", "clinic", "hospital", "pharmaceutical",
		"care", "therapy", "diagnostic", "wellness",
	},
	"Financial Services": {
		"bank", "investment", "insurance", "fintech", "lending", "trading",
		"wealth", "accounting", "payments", "financial",
	},
	"Government & Public Sector": {
		"government", "public sector", "municipal", "agency", "civic",
		"nonprofit", "non-profit", "community services", "federal", "state",
	},
	"Hospitality & Service": {
		"hotel", "restaurant", "tourism", "travel", "hospitality", "guest",
		"dining", "entertainment", "booking", "catering",
	},
	"Manufacturing & Industrial": {
		"manufacturing", "factory", "production", "industrial", "supply chain",
		"logistics", "equipment", "assembly", "warehouse", "machinery",
	},
	"Professional Services": {
		"consulting", "legal", "law firm", "marketing agency", "recruiting",
		"advisory", "hr services", "training", "professional services",
	},
}

// Classify scores the text against each industry's keyword set and returns
// the best match. Ties and thin input resolve to the default.
func Classify(companyText string) Result {
	text := strings.ToLower(strings.TrimSpace(companyText))
	if len(text) < minTextLength {
		return DefaultResult()
	}

	type match struct {
		industry string
		hits     int
		terms    []string
	}

	matches := make([]match, 0, len(industryKeywords))
	total := 0
	for industry, keywords := range industryKeywords {
		m := match{industry: industry}
		for _, kw := range keywords {
			if n := strings.Count(text, kw); n > 0 {
				m.hits += n
				m.terms = append(m.terms, kw)
			}
		}
		sort.Strings(m.terms)
		matches = append(matches, m)
		total += m.hits
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].hits != matches[j].hits {
			return matches[i].hits > matches[j].hits
		}
		return matches[i].industry < matches[j].industry
	})

	best := matches[0]
	if best.hits == 0 {
		return DefaultResult()
	}

	confidence := float64(best.hits) / float64(total)
	if confidence < 0.5 {
		confidence = 0.5
	}
	if confidence > 1 {
		confidence = 1
	}

	offerings := best.terms
	if len(offerings) > 5 {
		offerings = offerings[:5]
	}

	slog.Debug("classified industry",
		"industry", best.industry,
		"hits", best.hits,
		"confidence", confidence)

	return Result{
		Industry:   best.industry,
		Confidence: confidence,
		Offerings:  offerings,
		Reasoning:  "Keyword analysis matched " + strings.Join(offerings, ", "),
	}
}
