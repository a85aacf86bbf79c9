package web

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/lovrop/trailfood/internal/model"
	"github.com/lovrop/trailfood/internal/store"
)

// Index handles GET /.
func (s *Server) Index(w http.ResponseWriter, r *http.Request) {
	foods, err := store.ListFoods(r.Context(), s.DB, store.Filter{})
	if err != nil {
		slog.Error("failed to list foods", "error", err)
	}

	s.Templates.Render(w, "index.html", &struct {
		PageData
		Foods []model.Food
	}{
		PageData: PageData{Title: "Foods"},
		Foods:    foods,
	})
}

// AddFoodPage handles GET /add.
func (s *Server) AddFoodPage(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "add_food.html", &struct {
		PageData
	}{
		PageData: PageData{Title: "Add food"},
	})
}

// AddFoodSubmit handles POST /add. Every field comes from the form; numeric
// fields must parse or the request is rejected.
func (s *Server) AddFoodSubmit(w http.ResponseWriter, r *http.Request) {
	calories, err := formFloat(r, "calories")
	if err != nil {
		http.Error(w, "invalid numeric field: calories", http.StatusBadRequest)
		return
	}
	protein, err := formFloatDefault(r, "protein", 0)
	if err != nil {
		http.Error(w, "invalid numeric field: protein", http.StatusBadRequest)
		return
	}
	carbs, err := formFloatDefault(r, "carbs", 0)
	if err != nil {
		http.Error(w, "invalid numeric field: carbs", http.StatusBadRequest)
		return
	}
	fat, err := formFloatDefault(r, "fat", 0)
	if err != nil {
		http.Error(w, "invalid numeric field: fat", http.StatusBadRequest)
		return
	}
	weightRaw, err := formFloatOptional(r, "weight_raw")
	if err != nil {
		http.Error(w, "invalid numeric field: weight_raw", http.StatusBadRequest)
		return
	}
	weightPrepared, err := formFloatOptional(r, "weight_prepared")
	if err != nil {
		http.Error(w, "invalid numeric field: weight_prepared", http.StatusBadRequest)
		return
	}

	name := r.FormValue("name")
	input := store.CreateFoodInput{
		Name:           name,
		Description:    formString(r, "description"),
		Calories:       calories,
		Protein:        protein,
		Carbs:          carbs,
		Fat:            fat,
		WeightRaw:      weightRaw,
		WeightPrepared: weightPrepared,
		Source:         r.FormValue("source"),
		Category:       formString(r, "category"),
		Brand:          formString(r, "brand"),
	}

	if _, err := store.CreateFood(r.Context(), s.DB, input); err != nil {
		slog.Error("failed to create food", "food", name, "error", err)
	} else {
		slog.Info("food created", "food", name)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// EditFoodPage handles GET /edit/{id}.
func (s *Server) EditFoodPage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	food, err := store.GetFood(r.Context(), s.DB, id)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, "food not found", http.StatusNotFound)
		return
	}
	if err != nil {
		slog.Error("failed to get food", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	s.Templates.Render(w, "edit_food.html", &struct {
		PageData
		Food *model.Food
	}{
		PageData: PageData{Title: "Edit " + food.Name},
		Food:     food,
	})
}

// EditFoodSubmit handles POST /edit/{id}. The form re-sends every field, so
// the whole row is overwritten, unlike the sparse JSON update.
func (s *Server) EditFoodSubmit(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	calories, err := formFloat(r, "calories")
	if err != nil {
		http.Error(w, "invalid numeric field: calories", http.StatusBadRequest)
		return
	}
	protein, err := formFloatDefault(r, "protein", 0)
	if err != nil {
		http.Error(w, "invalid numeric field: protein", http.StatusBadRequest)
		return
	}
	carbs, err := formFloatDefault(r, "carbs", 0)
	if err != nil {
		http.Error(w, "invalid numeric field: carbs", http.StatusBadRequest)
		return
	}
	fat, err := formFloatDefault(r, "fat", 0)
	if err != nil {
		http.Error(w, "invalid numeric field: fat", http.StatusBadRequest)
		return
	}
	weightRaw, err := formFloatOptional(r, "weight_raw")
	if err != nil {
		http.Error(w, "invalid numeric field: weight_raw", http.StatusBadRequest)
		return
	}
	weightPrepared, err := formFloatOptional(r, "weight_prepared")
	if err != nil {
		http.Error(w, "invalid numeric field: weight_prepared", http.StatusBadRequest)
		return
	}

	name := r.FormValue("name")
	source := r.FormValue("source")
	if source == "" {
		source = model.SourcePersonal
	}

	patch := store.FoodPatch{
		Name:           &name,
		Description:    nullString(formString(r, "description")),
		Calories:       calories,
		Protein:        &protein,
		Carbs:          &carbs,
		Fat:            &fat,
		WeightRaw:      nullFloat(weightRaw),
		WeightPrepared: nullFloat(weightPrepared),
		Source:         &source,
		Category:       nullString(formString(r, "category")),
		Brand:          nullString(formString(r, "brand")),
	}

	_, err = store.UpdateFood(r.Context(), s.DB, id, patch)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, "food not found", http.StatusNotFound)
		return
	}
	if err != nil {
		slog.Error("failed to update food", "food", name, "error", err)
		http.Error(w, "failed to update", http.StatusInternalServerError)
		return
	}

	slog.Info("food updated", "food", name)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// DeleteFoodSubmit handles POST /delete/{id}.
func (s *Server) DeleteFoodSubmit(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	err = store.DeleteFood(r.Context(), s.DB, id)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, "food not found", http.StatusNotFound)
		return
	}
	if err != nil {
		slog.Error("failed to delete food", "id", id, "error", err)
		http.Error(w, "failed to delete", http.StatusInternalServerError)
		return
	}

	slog.Info("food deleted", "id", id)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// formFloat parses a required numeric form field.
func formFloat(r *http.Request, field string) (*float64, error) {
	v, err := strconv.ParseFloat(r.FormValue(field), 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// formFloatDefault parses a numeric form field, using def when empty.
func formFloatDefault(r *http.Request, field string, def float64) (float64, error) {
	raw := r.FormValue(field)
	if raw == "" {
		return def, nil
	}
	return strconv.ParseFloat(raw, 64)
}

// formFloatOptional parses a numeric form field, nil when empty.
func formFloatOptional(r *http.Request, field string) (*float64, error) {
	raw := r.FormValue(field)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// formString returns a text form field, nil when empty.
func formString(r *http.Request, field string) *string {
	v := r.FormValue(field)
	if v == "" {
		return nil
	}
	return &v
}

func nullString(v *string) *sql.NullString {
	if v == nil {
		return &sql.NullString{}
	}
	return &sql.NullString{String: *v, Valid: true}
}

func nullFloat(v *float64) *sql.NullFloat64 {
	if v == nil {
		return &sql.NullFloat64{}
	}
	return &sql.NullFloat64{Float64: *v, Valid: true}
}
