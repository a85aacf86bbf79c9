// Package nutrition computes derived metrics from a food's macro fields.
// Everything here is pure arithmetic, no I/O.
package nutrition

import "math"

// Energy densities in kcal per gram.
const (
	kcalPerGramProtein = 4
	kcalPerGramCarbs   = 4
	kcalPerGramFat     = 9
)

// Ratio is the share of total energy contributed by each macronutrient, in
// percent. The three values are rounded independently and may not sum to
// exactly 100.
type Ratio struct {
	ProteinPct float64 `json:"protein"`
	CarbsPct   float64 `json:"carbs"`
	FatPct     float64 `json:"fat"`
}

// MacroRatio computes the energy share of each macronutrient using 4/4/9
// kcal/g, each rounded to one decimal. All shares are zero when total energy
// is zero.
func MacroRatio(protein, carbs, fat float64) Ratio {
	total := protein*kcalPerGramProtein + carbs*kcalPerGramCarbs + fat*kcalPerGramFat
	if total == 0 {
		return Ratio{}
	}
	return Ratio{
		ProteinPct: round1(protein * kcalPerGramProtein / total * 100),
		CarbsPct:   round1(carbs * kcalPerGramCarbs / total * 100),
		FatPct:     round1(fat * kcalPerGramFat / total * 100),
	}
}

// CalorieDensity returns calories per gram of raw weight, rounded to two
// decimals, or nil when the raw weight is unknown or not positive. Used to
// rank foods by weight efficiency when packing.
func CalorieDensity(calories float64, weightRaw *float64) *float64 {
	if weightRaw == nil || *weightRaw <= 0 {
		return nil
	}
	d := round2(calories / *weightRaw)
	return &d
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }

func round2(v float64) float64 { return math.Round(v*100) / 100 }
