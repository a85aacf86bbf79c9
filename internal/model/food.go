package model

import "time"

// Food is a named nutritional record. Calorie and macro values are per 100 g
// by convention; the store does not enforce the basis. Weights are in grams.
type Food struct {
	ID             int64     `json:"id" db:"id"`
	Name           string    `json:"name" db:"name"`
	Description    *string   `json:"description" db:"description"`
	Calories       float64   `json:"calories" db:"calories"`
	Protein        float64   `json:"protein" db:"protein"`
	Carbs          float64   `json:"carbs" db:"carbs"`
	Fat            float64   `json:"fat" db:"fat"`
	WeightRaw      *float64  `json:"weight_raw" db:"weight_raw"`
	WeightPrepared *float64  `json:"weight_prepared" db:"weight_prepared"`
	Source         string    `json:"source" db:"source"`
	Category       *string   `json:"category" db:"category"`
	Brand          *string   `json:"brand" db:"brand"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// Conventional source tags. The column is free text; these are the values the
// UI offers.
const (
	SourcePersonal = "personal"
	SourceUSDA     = "usda"
	SourceBrand    = "brand"
)
