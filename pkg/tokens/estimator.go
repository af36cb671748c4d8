// Package tokens implements the deterministic token estimator that every
// budget in Strata is compared against.
// Implements: prd004-tokens; docs/ARCHITECTURE § Token Estimation.
package tokens

import "unicode/utf8"

// DefaultRunesPerToken is the estimator divisor used when none is
// configured. Four runes per token tracks the common subword-tokenizer
// average for English prose closely enough for budget enforcement.
const DefaultRunesPerToken = 4

// Estimator converts text to an approximate token count. The algorithm is
// fixed and documented because budgets are compared against its output:
// ceil(rune_count / RunesPerToken). It is pure, deterministic, and
// monotonic in text length — appending text never lowers the estimate.
type Estimator struct {
	runesPerToken int
}

// NewEstimator returns an Estimator with the given divisor. Zero or
// negative values fall back to DefaultRunesPerToken.
func NewEstimator(runesPerToken int) Estimator {
	if runesPerToken <= 0 {
		runesPerToken = DefaultRunesPerToken
	}
	return Estimator{runesPerToken: runesPerToken}
}

// Estimate returns the approximate token count of text. Empty text is zero
// tokens.
func (e Estimator) Estimate(text string) int {
	if text == "" {
		return 0
	}
	n := utf8.RuneCountInString(text)
	return (n + e.runesPerToken - 1) / e.runesPerToken
}

// Estimate is a convenience wrapper using DefaultRunesPerToken.
func Estimate(text string) int {
	return NewEstimator(DefaultRunesPerToken).Estimate(text)
}
