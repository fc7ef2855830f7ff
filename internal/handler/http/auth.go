package http

import (
	"encoding/json"
	"errors"
	"mime"
	"mime/multipart"
	"net/http"

	"github.com/kim-mccallum/recipe-app-api/internal/logger"
	"github.com/kim-mccallum/recipe-app-api/internal/utils"
	"github.com/kim-mccallum/recipe-app-api/models"
)

// maxMultipartMemory caps the in-memory part of multipart form parsing;
// larger file parts spill to temporary files.
const maxMultipartMemory = 1 << 20

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, image, err := parseSignupRequest(r)
	if err != nil {
		log.Err(err).Msg("invalid signup request body")
		utils.WriteJSON(w, models.MessageResponse{Message: "invalid request body"}, http.StatusBadRequest)
		return
	}
	if image != nil {
		defer image.close()
	}

	registeredUser, err := h.services.AuthService.SignupUser(ctx, user, image.upload())
	if err != nil {
		log.Err(err).Msg("error occurred during user signup")
		writeError(w, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteJSON(w, models.MessageResponse{Message: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
		return
	}

	log.Debug().Int64("id", registeredUser.UserID).Msg("user successfully signed up")

	utils.WriteJSON(w, models.AuthResponse{
		UserID: registeredUser.UserID,
		Email:  registeredUser.Email,
		Token:  token.SignedString,
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.MessageResponse{Message: "invalid request body"}, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		log.Err(err).Msg("error occurred during user login")
		writeError(w, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteJSON(w, models.MessageResponse{Message: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	utils.WriteJSON(w, models.AuthResponse{
		UserID: foundUser.UserID,
		Email:  foundUser.Email,
		Token:  token.SignedString,
	}, http.StatusOK)
}

// parseSignupRequest reads the signup payload from r. Multipart form bodies
// may carry an optional avatar image under the "image" field; plain JSON
// bodies carry credentials only.
func parseSignupRequest(r *http.Request) (models.User, *requestImage, error) {
	if !isMultipartForm(r) {
		var user models.User
		if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
			return models.User{}, nil, err
		}
		return user, nil, nil
	}

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		return models.User{}, nil, err
	}

	user := models.User{
		Name:     r.FormValue("name"),
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}

	image, err := imageFromForm(r)
	if err != nil {
		return models.User{}, nil, err
	}

	return user, image, nil
}

// requestImage pairs an uploaded multipart file with its metadata so callers
// can close it once the service is done reading.
type requestImage struct {
	file     multipart.File
	filename string
	size     int64
}

// upload converts the request image to the model the service layer accepts.
// A nil receiver yields a nil upload, meaning no image was attached.
func (i *requestImage) upload() *models.ImageUpload {
	if i == nil {
		return nil
	}
	return &models.ImageUpload{File: i.file, Filename: i.filename, Size: i.size}
}

func (i *requestImage) close() {
	if i != nil {
		i.file.Close()
	}
}

// imageFromForm extracts the optional "image" file part from an already
// parsed multipart form. A missing part is not an error.
func imageFromForm(r *http.Request) (*requestImage, error) {
	file, header, err := r.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &requestImage{file: file, filename: header.Filename, size: header.Size}, nil
}

func isMultipartForm(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return false
	}
	return mediaType == "multipart/form-data"
}
