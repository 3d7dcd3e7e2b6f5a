package telegram

import (
	"fmt"
	"strings"

	"adcheck/api/internal/factcheck/types"
)

// formatResult renders a validated fact-check as a plain-text chat message.
func formatResult(res types.FactCheckResult) string {
	var b strings.Builder

	if res.ProductName != nil {
		fmt.Fprintf(&b, "📦 %s", *res.ProductName)
		if res.Company != nil {
			fmt.Fprintf(&b, " — %s", *res.Company)
		}
		b.WriteString("\n")
	} else if res.Company != nil {
		fmt.Fprintf(&b, "🏢 %s\n", *res.Company)
	}
	if res.Category != nil {
		fmt.Fprintf(&b, "Category: %s\n", *res.Category)
	}

	if res.TruthScore != nil {
		fmt.Fprintf(&b, "\nTruth score: %d/100\n", clampScore(*res.TruthScore))
	} else {
		b.WriteString("\nTruth score: n/a\n")
	}

	b.WriteString("\n" + res.Report + "\n")

	if len(res.MeasurableFacts) > 0 {
		b.WriteString("\nClaims checked:\n")
		for _, f := range res.MeasurableFacts {
			b.WriteString("• " + f + "\n")
		}
	}
	if len(res.KeyNumbers) > 0 {
		b.WriteString("\nKey numbers: " + strings.Join(res.KeyNumbers, ", ") + "\n")
	}

	if len(res.Sources) > 0 {
		b.WriteString("\nSources:\n")
		for _, s := range res.Sources {
			if s.Title != nil && *s.Title != "" {
				fmt.Fprintf(&b, "• %s — %s\n", *s.Title, s.URL)
			} else {
				fmt.Fprintf(&b, "• %s\n", s.URL)
			}
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// clampScore bounds the score for rendering only. Out-of-range values are
// rejected at the API boundary, not clamped.
func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
