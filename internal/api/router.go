package api

import (
	"net/http"

	"github.com/jmoiron/sqlx"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(db *sqlx.DB) http.Handler {
	mux := http.NewServeMux()

	foods := &FoodsHandler{DB: db}

	mux.HandleFunc("GET /api/foods", foods.List)
	mux.HandleFunc("POST /api/foods", foods.Create)
	mux.HandleFunc("GET /api/foods/{id}", foods.Get)
	mux.HandleFunc("PUT /api/foods/{id}", foods.Update)
	mux.HandleFunc("DELETE /api/foods/{id}", foods.Delete)

	return mux
}
