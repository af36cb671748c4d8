package tokens

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimate(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{name: "empty text", text: "", want: 0},
		{name: "single rune rounds up", text: "a", want: 1},
		{name: "exact multiple", text: "abcd", want: 1},
		{name: "one over multiple", text: "abcde", want: 2},
		{name: "eight runes", text: "abcdefgh", want: 2},
		{name: "multibyte runes counted as runes", text: "日本語テスト", want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Estimate(tt.text))
		})
	}
}

func TestEstimateDeterministic(t *testing.T) {
	text := strings.Repeat("the quick brown fox ", 50)
	first := Estimate(text)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Estimate(text))
	}
}

func TestEstimateMonotonic(t *testing.T) {
	// Appending text never lowers the estimate.
	var sb strings.Builder
	prev := 0
	for i := 0; i < 200; i++ {
		sb.WriteString("word ")
		got := Estimate(sb.String())
		assert.GreaterOrEqual(t, got, prev)
		prev = got
	}
}

func TestNewEstimatorCustomDivisor(t *testing.T) {
	e := NewEstimator(2)
	assert.Equal(t, 2, e.Estimate("abcd"))

	// Non-positive divisors fall back to the default.
	e = NewEstimator(0)
	assert.Equal(t, 1, e.Estimate("abcd"))
	e = NewEstimator(-3)
	assert.Equal(t, 1, e.Estimate("abcd"))
}
