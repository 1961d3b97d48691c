// pattern.go
//
// Digit-pattern analysis feeding the GGGX pipeline: repeating-pattern
// detection, matching against a small table of named mathematical
// constants, and tail statistics (frequency, entropy, chi-squared) used
// to tell chaotic tails from structured ones.

package solid

import (
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// PatternMatch describes a contiguous repetition found in a digit
// string.
type PatternMatch struct {
	Period  int
	Start   int
	Repeats int
}

// minPatternRepeats is the number of contiguous repetitions required
// before a candidate counts as a pattern.
const minPatternRepeats = 3

// DetectRepeatingPattern finds the smallest period p >= 1 and offset
// such that digits[start:start+p] repeats at least three times
// contiguously. The search is exhaustive: periods ascending, then
// offsets ascending, so ties resolve to the smallest period first.
func DetectRepeatingPattern(digits string) (PatternMatch, bool) {
	n := len(digits)
	for p := 1; p*minPatternRepeats <= n; p++ {
		for start := 0; start+p*minPatternRepeats <= n; start++ {
			repeats := 1
			for next := start + p; next+p <= n && digits[next:next+p] == digits[start:start+p]; next += p {
				repeats++
			}
			if repeats >= minPatternRepeats {
				return PatternMatch{Period: p, Start: start, Repeats: repeats}, true
			}
		}
	}
	return PatternMatch{}, false
}

// Constant is a named mathematical constant the analyzer can recognize.
// Digits holds a long decimal expansion (point omitted) used by the
// series terminal-extraction method.
type Constant struct {
	Name   string  `yaml:"name" json:"name"`
	Value  float64 `yaml:"value" json:"value"`
	Digits string  `yaml:"digits,omitempty" json:"digits,omitempty"`
}

// constantTolerance is the absolute matching window for constant
// detection.
const constantTolerance = 1e-9

// defaultConstants is the built-in table. Order matters: the first
// match within tolerance wins.
var defaultConstants = []Constant{
	{Name: "pi", Value: math.Pi, Digits: "31415926535897932384626433832795"},
	{Name: "e", Value: math.E, Digits: "27182818284590452353602874713527"},
	{Name: "sqrt2", Value: math.Sqrt2, Digits: "14142135623730950488016887242097"},
	{Name: "phi", Value: 1.6180339887498949, Digits: "16180339887498948482045868343656"},
	{Name: "euler_mascheroni", Value: 0.5772156649015329, Digits: "57721566490153286060651209008240"},
}

// DetectMathematicalConstant matches value against the built-in table.
func DetectMathematicalConstant(value float64) (Constant, bool) {
	return detectConstant(value, defaultConstants)
}

func detectConstant(value float64, table []Constant) (Constant, bool) {
	for _, c := range table {
		if math.Abs(value-c.Value) < constantTolerance {
			return c, true
		}
	}
	return Constant{}, false
}

// LoadConstants reads additional named constants from a YAML file
// (a list of {name, value, digits} entries). The result is appended to
// the built-in table by Analyzer users; built-ins keep priority.
func LoadConstants(path string) ([]Constant, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var out []Constant
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// chiSquaredCritical95 is the 95%-confidence critical value for 9
// degrees of freedom.
const chiSquaredCritical95 = 16.919

// DigitStats summarizes a digit string's distribution.
type DigitStats struct {
	Freq       [10]int
	Total      int
	Entropy    float64 // Shannon entropy, base 2, max log2(10) ≈ 3.32
	ChiSquared float64 // uniformity statistic, 9 degrees of freedom
}

// AnalyzeDigits computes per-digit frequency, Shannon entropy and the
// chi-squared uniformity statistic over the digit characters of s;
// non-digit bytes are skipped.
func AnalyzeDigits(s string) DigitStats {
	var st DigitStats
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			st.Freq[s[i]-'0']++
			st.Total++
		}
	}
	if st.Total == 0 {
		return st
	}
	expected := float64(st.Total) / 10
	for _, f := range st.Freq {
		if f > 0 {
			p := float64(f) / float64(st.Total)
			st.Entropy -= p * math.Log2(p)
		}
		d := float64(f) - expected
		st.ChiSquared += d * d / expected
	}
	return st
}

// Uniform reports whether the digits are statistically consistent with
// a uniform distribution at 95% confidence (a chaotic tail). Structured
// tails fail this test.
func (st DigitStats) Uniform() bool {
	return st.Total > 0 && st.ChiSquared < chiSquaredCritical95
}
