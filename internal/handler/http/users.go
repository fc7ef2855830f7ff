package http

import (
	"net/http"

	"github.com/kim-mccallum/recipe-app-api/internal/logger"
	"github.com/kim-mccallum/recipe-app-api/internal/utils"
	"github.com/kim-mccallum/recipe-app-api/models"
)

func (h *Handler) getUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	users, err := h.services.UserService.GetUsers(ctx)
	if err != nil {
		log.Err(err).Msg("error occurred during getting users")
		writeError(w, err)
		return
	}

	// credentials never leave the service boundary
	public := make([]models.User, 0, len(users))
	for _, user := range users {
		public = append(public, user.Public())
	}

	utils.WriteJSON(w, models.UsersResponse{Users: public}, http.StatusOK)
}
