package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/kim-mccallum/recipe-app-api/internal/utils"
	"github.com/kim-mccallum/recipe-app-api/models"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	allowedOrigins := h.allowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/recipes/{recipeID}", h.getRecipe)
		r.Get("/api/recipes/user/{userID}", h.getUserRecipes)
		r.Get("/api/users", h.getUsers)
		r.Post("/api/users/signup", h.signup)
		r.Post("/api/users/login", h.login)
	})

	// routes that require a valid bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/api/recipes", h.createRecipe)
		r.Patch("/api/recipes/{recipeID}", h.updateRecipe)
		r.Delete("/api/recipes/{recipeID}", h.deleteRecipe)
	})

	// stored images are served directly from disk
	router.Handle("/uploads/images/*", http.StripPrefix("/uploads/images/", http.FileServer(http.Dir(h.uploadsDir))))

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, models.MessageResponse{Message: "route not found"}, http.StatusNotFound)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
