package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/jmoiron/sqlx"

	"github.com/lovrop/trailfood/internal/db"
	"github.com/lovrop/trailfood/internal/model"
	"github.com/lovrop/trailfood/internal/store"
)

func setupTestServer(t *testing.T) (*httptest.Server, *sqlx.DB) {
	t.Helper()
	database := db.NewTestDB(t)
	server := httptest.NewServer(NewRouter(database))
	t.Cleanup(server.Close)
	return server, database
}

func doJSON(t *testing.T, method, url string, body any) *http.Response {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("building request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	return resp
}

func TestCreateAndGetFoodRoundTrip(t *testing.T) {
	server, _ := setupTestServer(t)

	payload := map[string]any{
		"name":        "Peanut Butter",
		"description": "Natural, no added sugar",
		"calories":    588,
		"protein":     25.8,
		"carbs":       20.0,
		"fat":         50.0,
		"weight_raw":  100,
		"source":      "personal",
		"category":    "snack",
	}

	resp := doJSON(t, "POST", server.URL+"/api/foods", payload)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	var created model.Food
	json.NewDecoder(resp.Body).Decode(&created)
	resp.Body.Close()

	if created.ID == 0 {
		t.Fatal("expected assigned id")
	}

	resp = doJSON(t, "GET", server.URL+"/api/foods/"+itoa(created.ID), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var fetched model.Food
	json.NewDecoder(resp.Body).Decode(&fetched)
	resp.Body.Close()

	if fetched.Name != "Peanut Butter" || fetched.Calories != 588 ||
		fetched.Protein != 25.8 || fetched.Carbs != 20.0 || fetched.Fat != 50.0 {
		t.Errorf("round trip mismatch: %+v", fetched)
	}
	if fetched.Description == nil || *fetched.Description != "Natural, no added sugar" {
		t.Error("expected description to round-trip")
	}
	if fetched.WeightRaw == nil || *fetched.WeightRaw != 100 {
		t.Error("expected weight_raw to round-trip")
	}
	if fetched.WeightPrepared != nil || fetched.Brand != nil {
		t.Error("expected omitted optional fields to stay null")
	}
	if fetched.CreatedAt.IsZero() || fetched.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}
}

func TestCreateFoodMissingFields(t *testing.T) {
	server, _ := setupTestServer(t)

	resp := doJSON(t, "POST", server.URL+"/api/foods", map[string]any{"name": "No Calories"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for missing calories, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = doJSON(t, "POST", server.URL+"/api/foods", map[string]any{"calories": 100})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for missing name, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestCreateFoodDuplicate(t *testing.T) {
	server, _ := setupTestServer(t)

	payload := map[string]any{"name": "Almonds", "calories": 579}

	resp := doJSON(t, "POST", server.URL+"/api/foods", payload)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = doJSON(t, "POST", server.URL+"/api/foods", payload)
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("expected 409 for duplicate name, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestListFoodsFiltered(t *testing.T) {
	server, database := setupTestServer(t)
	ctx := context.Background()

	cal := func(v float64) *float64 { return &v }
	cat := func(v string) *string { return &v }
	store.CreateFood(ctx, database, store.CreateFoodInput{Name: "Chicken Breast (cooked)", Calories: cal(165), Category: cat("protein")})
	store.CreateFood(ctx, database, store.CreateFoodInput{Name: "Banana", Calories: cal(89), Category: cat("carbs")})
	store.CreateFood(ctx, database, store.CreateFoodInput{Name: "Beef Jerky", Calories: cal(155), Category: cat("protein")})

	resp := doJSON(t, "GET", server.URL+"/api/foods", nil)
	var all []model.Food
	json.NewDecoder(resp.Body).Decode(&all)
	resp.Body.Close()
	if len(all) != 3 {
		t.Errorf("expected 3 foods, got %d", len(all))
	}

	resp = doJSON(t, "GET", server.URL+"/api/foods?category=protein", nil)
	var protein []model.Food
	json.NewDecoder(resp.Body).Decode(&protein)
	resp.Body.Close()
	if len(protein) != 2 {
		t.Errorf("expected 2 protein foods, got %d", len(protein))
	}

	resp = doJSON(t, "GET", server.URL+"/api/foods?search=chick", nil)
	var chick []model.Food
	json.NewDecoder(resp.Body).Decode(&chick)
	resp.Body.Close()
	if len(chick) != 1 || chick[0].Name != "Chicken Breast (cooked)" {
		t.Errorf("expected case-insensitive match on Chicken Breast, got %v", chick)
	}
}

func TestListFoodsEmpty(t *testing.T) {
	server, _ := setupTestServer(t)

	resp := doJSON(t, "GET", server.URL+"/api/foods", nil)
	defer resp.Body.Close()

	var buf bytes.Buffer
	buf.ReadFrom(resp.Body)
	if got := buf.String(); got != "[]\n" {
		t.Errorf("expected empty JSON array, got %q", got)
	}
}

func TestUpdateFoodPartial(t *testing.T) {
	server, database := setupTestServer(t)

	cal := 500.0
	food, err := store.CreateFood(context.Background(), database, store.CreateFoodInput{
		Name: "Trail Mix", Calories: &cal, Protein: 15, Carbs: 45, Fat: 28,
	})
	if err != nil {
		t.Fatalf("CreateFood: %v", err)
	}

	resp := doJSON(t, "PUT", server.URL+"/api/foods/"+itoa(food.ID), map[string]any{"calories": 520})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var updated model.Food
	json.NewDecoder(resp.Body).Decode(&updated)
	resp.Body.Close()

	if updated.Calories != 520 {
		t.Errorf("expected calories 520, got %v", updated.Calories)
	}
	if updated.Protein != 15 || updated.Carbs != 45 || updated.Fat != 28 {
		t.Errorf("expected macros unchanged, got %v/%v/%v", updated.Protein, updated.Carbs, updated.Fat)
	}
	if updated.UpdatedAt.Before(food.UpdatedAt) {
		t.Error("expected updated_at to be refreshed")
	}
}

func TestUpdateFoodNotFound(t *testing.T) {
	server, _ := setupTestServer(t)

	resp := doJSON(t, "PUT", server.URL+"/api/foods/999", map[string]any{"calories": 1})
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestDeleteFood(t *testing.T) {
	server, database := setupTestServer(t)

	cal := 89.0
	food, _ := store.CreateFood(context.Background(), database, store.CreateFoodInput{Name: "Banana", Calories: &cal})

	resp := doJSON(t, "DELETE", server.URL+"/api/foods/"+itoa(food.ID), nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = doJSON(t, "GET", server.URL+"/api/foods/"+itoa(food.ID), nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = doJSON(t, "DELETE", server.URL+"/api/foods/"+itoa(food.ID), nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404 on repeated delete, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
