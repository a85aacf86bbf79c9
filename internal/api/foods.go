package api

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/jmoiron/sqlx"

	"github.com/lovrop/trailfood/internal/model"
	"github.com/lovrop/trailfood/internal/store"
)

// FoodsHandler handles food CRUD endpoints.
type FoodsHandler struct {
	DB *sqlx.DB
}

type createFoodRequest struct {
	Name           string   `json:"name"`
	Description    *string  `json:"description"`
	Calories       *float64 `json:"calories"`
	Protein        float64  `json:"protein"`
	Carbs          float64  `json:"carbs"`
	Fat            float64  `json:"fat"`
	WeightRaw      *float64 `json:"weight_raw"`
	WeightPrepared *float64 `json:"weight_prepared"`
	Source         string   `json:"source"`
	Category       *string  `json:"category"`
	Brand          *string  `json:"brand"`
}

// updateFoodRequest carries a sparse update: absent fields stay nil and the
// stored values are kept, including when the stored value is zero.
type updateFoodRequest struct {
	Name           *string  `json:"name"`
	Description    *string  `json:"description"`
	Calories       *float64 `json:"calories"`
	Protein        *float64 `json:"protein"`
	Carbs          *float64 `json:"carbs"`
	Fat            *float64 `json:"fat"`
	WeightRaw      *float64 `json:"weight_raw"`
	WeightPrepared *float64 `json:"weight_prepared"`
	Source         *string  `json:"source"`
	Category       *string  `json:"category"`
	Brand          *string  `json:"brand"`
}

func patchString(v *string) *sql.NullString {
	if v == nil {
		return nil
	}
	return &sql.NullString{String: *v, Valid: true}
}

func patchFloat(v *float64) *sql.NullFloat64 {
	if v == nil {
		return nil
	}
	return &sql.NullFloat64{Float64: *v, Valid: true}
}

// List handles GET /api/foods.
func (h *FoodsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := store.Filter{
		Category: q.Get("category"),
		Source:   q.Get("source"),
		Search:   q.Get("search"),
	}

	foods, err := store.ListFoods(r.Context(), h.DB, filter)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list foods")
		return
	}
	if foods == nil {
		foods = []model.Food{}
	}
	jsonResponse(w, http.StatusOK, foods)
}

// Get handles GET /api/foods/{id}.
func (h *FoodsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid food id")
		return
	}

	food, err := store.GetFood(r.Context(), h.DB, id)
	if errors.Is(err, store.ErrNotFound) {
		jsonError(w, http.StatusNotFound, "food not found")
		return
	}
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get food")
		return
	}
	jsonResponse(w, http.StatusOK, food)
}

// Create handles POST /api/foods.
func (h *FoodsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createFoodRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	food, err := store.CreateFood(r.Context(), h.DB, store.CreateFoodInput{
		Name:           req.Name,
		Description:    req.Description,
		Calories:       req.Calories,
		Protein:        req.Protein,
		Carbs:          req.Carbs,
		Fat:            req.Fat,
		WeightRaw:      req.WeightRaw,
		WeightPrepared: req.WeightPrepared,
		Source:         req.Source,
		Category:       req.Category,
		Brand:          req.Brand,
	})

	var verr *store.ValidationError
	switch {
	case errors.As(err, &verr):
		jsonError(w, http.StatusBadRequest, "missing required fields")
		return
	case errors.Is(err, store.ErrDuplicateName):
		jsonError(w, http.StatusConflict, "food already exists")
		return
	case err != nil:
		jsonError(w, http.StatusInternalServerError, "failed to create food")
		return
	}

	jsonResponse(w, http.StatusCreated, food)
}

// Update handles PUT /api/foods/{id}.
func (h *FoodsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid food id")
		return
	}

	var req updateFoodRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	food, err := store.UpdateFood(r.Context(), h.DB, id, store.FoodPatch{
		Name:           req.Name,
		Description:    patchString(req.Description),
		Calories:       req.Calories,
		Protein:        req.Protein,
		Carbs:          req.Carbs,
		Fat:            req.Fat,
		WeightRaw:      patchFloat(req.WeightRaw),
		WeightPrepared: patchFloat(req.WeightPrepared),
		Source:         req.Source,
		Category:       patchString(req.Category),
		Brand:          patchString(req.Brand),
	})
	if errors.Is(err, store.ErrNotFound) {
		jsonError(w, http.StatusNotFound, "food not found")
		return
	}
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to update food")
		return
	}

	jsonResponse(w, http.StatusOK, food)
}

// Delete handles DELETE /api/foods/{id}.
func (h *FoodsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid food id")
		return
	}

	err = store.DeleteFood(r.Context(), h.DB, id)
	if errors.Is(err, store.ErrNotFound) {
		jsonError(w, http.StatusNotFound, "food not found")
		return
	}
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to delete food")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
