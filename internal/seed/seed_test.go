package seed

import (
	"context"
	"testing"

	"github.com/lovrop/trailfood/internal/db"
	"github.com/lovrop/trailfood/internal/store"
)

func TestRun(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	n, err := Run(ctx, database)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if n != len(SampleFoods) {
		t.Errorf("expected %d foods reported, got %d", len(SampleFoods), n)
	}

	foods, err := store.ListFoods(ctx, database, store.Filter{})
	if err != nil {
		t.Fatalf("ListFoods: %v", err)
	}
	if len(foods) != len(SampleFoods) {
		t.Errorf("expected %d foods stored, got %d", len(SampleFoods), len(foods))
	}
}

func TestRunWipesExistingRows(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	cal := 100.0
	if _, err := store.CreateFood(ctx, database, store.CreateFoodInput{Name: "Leftover", Calories: &cal}); err != nil {
		t.Fatalf("CreateFood: %v", err)
	}

	// Seeding twice must not grow the table or trip the name uniqueness.
	for i := 0; i < 2; i++ {
		if _, err := Run(ctx, database); err != nil {
			t.Fatalf("Run #%d: %v", i+1, err)
		}
	}

	foods, _ := store.ListFoods(ctx, database, store.Filter{})
	if len(foods) != len(SampleFoods) {
		t.Errorf("expected %d foods after reseeding, got %d", len(SampleFoods), len(foods))
	}

	if leftovers, _ := store.ListFoods(ctx, database, store.Filter{Search: "leftover"}); len(leftovers) != 0 {
		t.Error("expected pre-existing rows to be wiped")
	}
}
