package web

import (
	"net/http"

	"github.com/jmoiron/sqlx"

	webembed "github.com/lovrop/trailfood/web"
)

// NewRouter creates the web page router with all page routes registered.
func NewRouter(db *sqlx.DB) (http.Handler, error) {
	templates, err := LoadTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{
		DB:        db,
		Templates: templates,
	}

	mux := http.NewServeMux()

	// Static assets.
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(webembed.StaticFS()))))

	mux.HandleFunc("GET /{$}", s.Index)

	mux.HandleFunc("GET /add", s.AddFoodPage)
	mux.HandleFunc("POST /add", s.AddFoodSubmit)

	mux.HandleFunc("GET /edit/{id}", s.EditFoodPage)
	mux.HandleFunc("POST /edit/{id}", s.EditFoodSubmit)

	mux.HandleFunc("POST /delete/{id}", s.DeleteFoodSubmit)

	return mux, nil
}
