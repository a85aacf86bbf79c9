package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/lovrop/trailfood/internal/model"
)

// Sentinel errors returned by food operations.
var (
	ErrNotFound      = errors.New("food not found")
	ErrDuplicateName = errors.New("food name already exists")
)

// ValidationError reports a missing required field on create.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// Filter narrows ListFoods results. Zero values mean no filtering; set
// filters combine with AND. Search matches name substrings without regard
// to case.
type Filter struct {
	Category string
	Source   string
	Search   string
}

// CreateFoodInput carries the fields accepted on create. Calories is a
// pointer so a missing value can be told apart from zero.
type CreateFoodInput struct {
	Name           string
	Description    *string
	Calories       *float64
	Protein        float64
	Carbs          float64
	Fat            float64
	WeightRaw      *float64
	WeightPrepared *float64
	Source         string
	Category       *string
	Brand          *string
}

// FoodPatch is a partial update: nil fields keep their stored value, set
// fields overwrite it. Nullable columns use sql.Null* so a caller can write
// NULL explicitly, which the form handlers do for cleared fields.
type FoodPatch struct {
	Name           *string
	Description    *sql.NullString
	Calories       *float64
	Protein        *float64
	Carbs          *float64
	Fat            *float64
	WeightRaw      *sql.NullFloat64
	WeightPrepared *sql.NullFloat64
	Source         *string
	Category       *sql.NullString
	Brand          *sql.NullString
}

const foodColumns = `id, name, description, calories, protein, carbs, fat,
	weight_raw, weight_prepared, source, category, brand, created_at, updated_at`

// ListFoods returns foods matching the filter in store-default order.
func ListFoods(ctx context.Context, db *sqlx.DB, filter Filter) ([]model.Food, error) {
	query := `SELECT ` + foodColumns + ` FROM foods`
	var clauses []string
	var args []any

	if filter.Category != "" {
		clauses = append(clauses, "category = ?")
		args = append(args, filter.Category)
	}
	if filter.Source != "" {
		clauses = append(clauses, "source = ?")
		args = append(args, filter.Source)
	}
	if filter.Search != "" {
		clauses = append(clauses, "LOWER(name) LIKE LOWER(?)")
		args = append(args, "%"+filter.Search+"%")
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}

	var foods []model.Food
	if err := db.SelectContext(ctx, &foods, query, args...); err != nil {
		return nil, fmt.Errorf("listing foods: %w", err)
	}
	return foods, nil
}

// GetFood returns a food by ID.
func GetFood(ctx context.Context, db *sqlx.DB, id int64) (*model.Food, error) {
	food := &model.Food{}
	err := db.GetContext(ctx, food, `SELECT `+foodColumns+` FROM foods WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting food: %w", err)
	}
	return food, nil
}

// CreateFood validates the input, applies defaults and inserts a new food.
func CreateFood(ctx context.Context, db *sqlx.DB, input CreateFoodInput) (*model.Food, error) {
	if input.Name == "" {
		return nil, &ValidationError{Field: "name"}
	}
	if input.Calories == nil {
		return nil, &ValidationError{Field: "calories"}
	}

	// Exact-match duplicate check before insert. The unique index backs this
	// up against races.
	var existingID int64
	err := db.GetContext(ctx, &existingID, `SELECT id FROM foods WHERE name = ?`, input.Name)
	if err == nil {
		return nil, ErrDuplicateName
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("checking for duplicate food: %w", err)
	}

	source := input.Source
	if source == "" {
		source = model.SourcePersonal
	}

	result, err := db.ExecContext(ctx,
		`INSERT INTO foods (name, description, calories, protein, carbs, fat,
		                    weight_raw, weight_prepared, source, category, brand)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		input.Name, input.Description, *input.Calories, input.Protein,
		input.Carbs, input.Fat, input.WeightRaw, input.WeightPrepared,
		source, input.Category, input.Brand,
	)
	if err != nil {
		return nil, fmt.Errorf("creating food: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting food id: %w", err)
	}

	return GetFood(ctx, db, id)
}

// UpdateFood overwrites the set fields of patch and refreshes updated_at.
// Unset fields keep their stored value.
func UpdateFood(ctx context.Context, db *sqlx.DB, id int64, patch FoodPatch) (*model.Food, error) {
	sets := []string{"updated_at = CURRENT_TIMESTAMP"}
	var args []any

	set := func(column string, value any) {
		sets = append(sets, column+" = ?")
		args = append(args, value)
	}

	if patch.Name != nil {
		set("name", *patch.Name)
	}
	if patch.Description != nil {
		set("description", *patch.Description)
	}
	if patch.Calories != nil {
		set("calories", *patch.Calories)
	}
	if patch.Protein != nil {
		set("protein", *patch.Protein)
	}
	if patch.Carbs != nil {
		set("carbs", *patch.Carbs)
	}
	if patch.Fat != nil {
		set("fat", *patch.Fat)
	}
	if patch.WeightRaw != nil {
		set("weight_raw", *patch.WeightRaw)
	}
	if patch.WeightPrepared != nil {
		set("weight_prepared", *patch.WeightPrepared)
	}
	if patch.Source != nil {
		set("source", *patch.Source)
	}
	if patch.Category != nil {
		set("category", *patch.Category)
	}
	if patch.Brand != nil {
		set("brand", *patch.Brand)
	}

	args = append(args, id)
	result, err := db.ExecContext(ctx,
		`UPDATE foods SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return nil, fmt.Errorf("updating food: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("updating food: %w", err)
	}
	if n == 0 {
		return nil, ErrNotFound
	}

	return GetFood(ctx, db, id)
}

// DeleteFood hard-deletes a food. Deleting an id that is already gone
// reports ErrNotFound, it does not silently succeed.
func DeleteFood(ctx context.Context, db *sqlx.DB, id int64) error {
	result, err := db.ExecContext(ctx, `DELETE FROM foods WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting food: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting food: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
