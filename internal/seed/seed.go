// Package seed loads a fixed set of sample foods for demos and manual
// testing. Running it wipes whatever is in the foods table first.
package seed

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/lovrop/trailfood/internal/model"
	"github.com/lovrop/trailfood/internal/store"
)

func f(v float64) *float64 { return &v }

func s(v string) *string { return &v }

// SampleFoods is a mix of backpacking staples (high calorie-to-weight) and
// everyday fitness foods.
var SampleFoods = []store.CreateFoodInput{
	{
		Name:        "Almonds",
		Description: s("Raw, unsalted almonds"),
		Calories:    f(579), Protein: 21.2, Carbs: 21.6, Fat: 49.9,
		WeightRaw: f(100),
		Category:  s("snack"),
	},
	{
		Name:        "Peanut Butter",
		Description: s("Natural peanut butter, no added sugar"),
		Calories:    f(588), Protein: 25.8, Carbs: 20.0, Fat: 50.0,
		WeightRaw: f(100),
		Category:  s("snack"),
	},
	{
		Name:        "Mountain House Freeze Dried Chicken",
		Description: s("Backpacking meal, freeze dried"),
		Calories:    f(350), Protein: 35, Carbs: 30, Fat: 8,
		WeightRaw: f(65), WeightPrepared: f(180),
		Source:   model.SourceBrand,
		Category: s("protein"),
		Brand:    s("Mountain House"),
	},
	{
		Name:        "Trail Mix",
		Description: s("Almonds, raisins, chocolate chips"),
		Calories:    f(500), Protein: 15.0, Carbs: 45.0, Fat: 28.0,
		WeightRaw: f(100),
		Category:  s("snack"),
	},
	{
		Name:        "Beef Jerky",
		Description: s("Lean beef jerky, no added sugar"),
		Calories:    f(155), Protein: 32.0, Carbs: 3.0, Fat: 2.0,
		WeightRaw: f(30),
		Category:  s("protein"),
	},
	{
		Name:        "Chicken Breast (cooked)",
		Description: s("Skinless, roasted"),
		Calories:    f(165), Protein: 31.0, Carbs: 0.0, Fat: 3.6,
		WeightRaw: f(100), WeightPrepared: f(100),
		Category: s("protein"),
	},
	{
		Name:        "Eggs",
		Description: s("Large egg, whole"),
		Calories:    f(155), Protein: 13.0, Carbs: 1.1, Fat: 11.0,
		WeightRaw: f(50), WeightPrepared: f(50),
		Category: s("protein"),
	},
	{
		Name:        "Greek Yogurt (plain)",
		Description: s("0% fat, plain"),
		Calories:    f(59), Protein: 10.0, Carbs: 3.3, Fat: 0.4,
		WeightRaw: f(100),
		Category:  s("protein"),
	},
	{
		Name:        "Brown Rice (cooked)",
		Description: s("Medium grain, cooked"),
		Calories:    f(111), Protein: 2.6, Carbs: 23.0, Fat: 0.9,
		WeightRaw: f(45), WeightPrepared: f(150),
		Category: s("carbs"),
	},
	{
		Name:        "Sweet Potato (baked)",
		Description: s("Medium, with skin"),
		Calories:    f(103), Protein: 2.0, Carbs: 24.0, Fat: 0.1,
		WeightRaw: f(100), WeightPrepared: f(100),
		Category: s("carbs"),
	},
	{
		Name:        "Banana",
		Description: s("Medium, raw"),
		Calories:    f(89), Protein: 1.1, Carbs: 23.0, Fat: 0.3,
		WeightRaw: f(100),
		Category:  s("carbs"),
	},
	{
		Name:        "Broccoli (raw)",
		Description: s("Fresh, chopped"),
		Calories:    f(34), Protein: 2.8, Carbs: 7.0, Fat: 0.4,
		WeightRaw: f(100),
		Category:  s("snack"),
	},
	{
		Name:        "Olive Oil",
		Description: s("Extra virgin"),
		Calories:    f(884), Protein: 0.0, Carbs: 0.0, Fat: 100.0,
		WeightRaw: f(100),
		Category:  s("fat"),
	},
	{
		Name:        "Whey Protein Powder",
		Description: s("Vanilla flavor"),
		Calories:    f(110), Protein: 24.0, Carbs: 2.0, Fat: 1.5,
		WeightRaw: f(30),
		Category:  s("protein"),
	},
	{
		Name:        "Oats (dry)",
		Description: s("Rolled oats"),
		Calories:    f(389), Protein: 16.7, Carbs: 66.3, Fat: 6.9,
		WeightRaw: f(100), WeightPrepared: f(300),
		Category: s("carbs"),
	},
}

// Run wipes the foods table and inserts the sample foods. Returns the number
// of foods inserted.
func Run(ctx context.Context, db *sqlx.DB) (int, error) {
	if _, err := db.ExecContext(ctx, `DELETE FROM foods`); err != nil {
		return 0, fmt.Errorf("clearing foods: %w", err)
	}

	for _, input := range SampleFoods {
		if _, err := store.CreateFood(ctx, db, input); err != nil {
			return 0, fmt.Errorf("seeding %s: %w", input.Name, err)
		}
	}

	return len(SampleFoods), nil
}
