package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/kim-mccallum/recipe-app-api/internal/logger"
	"github.com/kim-mccallum/recipe-app-api/internal/utils"
	"github.com/kim-mccallum/recipe-app-api/models"
)

func (h *Handler) getRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	recipeID := chi.URLParam(r, "recipeID")

	recipe, err := h.services.RecipeService.GetRecipeByID(ctx, recipeID)
	if err != nil {
		log.Err(err).Str("recipe_id", recipeID).Msg("error occurred during getting recipe")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.RecipeResponse{Recipe: recipe}, http.StatusOK)
}

func (h *Handler) getUserRecipes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		log.Err(err).Msg("invalid user ID in path")
		utils.WriteJSON(w, models.MessageResponse{Message: "invalid user ID"}, http.StatusBadRequest)
		return
	}

	recipes, err := h.services.RecipeService.GetRecipesByUser(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("error occurred during getting user recipes")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.RecipesResponse{Recipes: recipes}, http.StatusOK)
}

func (h *Handler) createRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	creatorID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in context of an authorized request")
		utils.WriteJSON(w, models.MessageResponse{Message: http.StatusText(http.StatusUnauthorized)}, http.StatusUnauthorized)
		return
	}

	recipe, image, err := parseCreateRecipeRequest(r)
	if err != nil {
		log.Err(err).Msg("invalid create recipe request body")
		utils.WriteJSON(w, models.MessageResponse{Message: "invalid request body"}, http.StatusBadRequest)
		return
	}
	if image != nil {
		defer image.close()
	}

	recipe.CreatorID = creatorID

	createdRecipe, err := h.services.RecipeService.CreateRecipe(ctx, recipe, image.upload())
	if err != nil {
		log.Err(err).Msg("error occurred during creating recipe")
		writeError(w, err)
		return
	}

	log.Debug().Str("recipe_id", createdRecipe.ID).Int64("creator_id", creatorID).Msg("recipe created")

	utils.WriteJSON(w, models.RecipeResponse{Recipe: createdRecipe}, http.StatusCreated)
}

func (h *Handler) updateRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in context of an authorized request")
		utils.WriteJSON(w, models.MessageResponse{Message: http.StatusText(http.StatusUnauthorized)}, http.StatusUnauthorized)
		return
	}

	var update models.RecipeUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.MessageResponse{Message: "invalid request body"}, http.StatusBadRequest)
		return
	}

	// the path parameter is authoritative, the body may omit the ID
	update.ID = chi.URLParam(r, "recipeID")

	updatedRecipe, err := h.services.RecipeService.UpdateRecipe(ctx, userID, update)
	if err != nil {
		log.Err(err).Str("recipe_id", update.ID).Msg("error occurred during updating recipe")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.RecipeResponse{Recipe: updatedRecipe}, http.StatusOK)
}

func (h *Handler) deleteRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in context of an authorized request")
		utils.WriteJSON(w, models.MessageResponse{Message: http.StatusText(http.StatusUnauthorized)}, http.StatusUnauthorized)
		return
	}

	recipeID := chi.URLParam(r, "recipeID")

	if err := h.services.RecipeService.DeleteRecipe(ctx, userID, recipeID); err != nil {
		log.Err(err).Str("recipe_id", recipeID).Msg("error occurred during deleting recipe")
		writeError(w, err)
		return
	}

	log.Debug().Str("recipe_id", recipeID).Int64("user_id", userID).Msg("recipe deleted")

	utils.WriteJSON(w, models.MessageResponse{Message: "recipe deleted"}, http.StatusOK)
}

// parseCreateRecipeRequest reads the new recipe payload from r. Multipart
// form bodies may carry an optional photo under the "image" field; plain
// JSON bodies carry text fields only.
func parseCreateRecipeRequest(r *http.Request) (models.Recipe, *requestImage, error) {
	if !isMultipartForm(r) {
		var recipe models.Recipe
		if err := json.NewDecoder(r.Body).Decode(&recipe); err != nil {
			return models.Recipe{}, nil, err
		}
		return recipe, nil, nil
	}

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		return models.Recipe{}, nil, err
	}

	recipe := models.Recipe{
		Title:        r.FormValue("title"),
		Description:  r.FormValue("description"),
		Ingredients:  r.FormValue("ingredients"),
		Instructions: r.FormValue("instructions"),
	}

	image, err := imageFromForm(r)
	if err != nil {
		return models.Recipe{}, nil, err
	}

	return recipe, image, nil
}
