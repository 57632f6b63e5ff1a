package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MikeSquared-Agency/Showroom/internal/catalog"
	"github.com/MikeSquared-Agency/Showroom/internal/quiz"
)

type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// List returns the catalog narrowed by search, type and brand.
// GET /api/v1/catalog/cars
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	cars := catalog.Search(catalog.Cars(), catalog.Filter{
		Search: q.Get("search"),
		Type:   q.Get("type"),
		Brand:  q.Get("brand"),
	})
	writeJSON(w, http.StatusOK, cars)
}

// Get returns one car with its attribute profile.
// GET /api/v1/catalog/cars/{id}
func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	car, err := catalog.GetCar(chi.URLParam(r, "id"))
	if errors.Is(err, catalog.ErrUnknownCar) {
		writeError(w, http.StatusNotFound, "car not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp := map[string]interface{}{"car": car}
	if p, ok := catalog.Lookup(car.ID); ok {
		resp["profile"] = p
	}
	writeJSON(w, http.StatusOK, resp)
}

// Questions returns the behavioral quiz.
// GET /api/v1/quiz/questions
func (h *CatalogHandler) Questions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, quiz.Questions())
}
