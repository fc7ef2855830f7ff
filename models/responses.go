package models

// RecipeResponse wraps a single recipe for JSON serialization, matching the
// `{"recipe": ...}` body shape of the public API.
type RecipeResponse struct {
	Recipe Recipe `json:"recipe"`
}

// RecipesResponse wraps a recipe list for JSON serialization.
type RecipesResponse struct {
	Recipes []Recipe `json:"recipes"`
}

// UsersResponse wraps the user listing. Password material is stripped from
// every entry before it reaches this struct.
type UsersResponse struct {
	Users []User `json:"users"`
}

// AuthResponse is returned by signup and login: the identity the token
// asserts plus the signed bearer token itself.
type AuthResponse struct {
	UserID int64  `json:"userId"`
	Email  string `json:"email"`
	Token  string `json:"token"`
}

// MessageResponse is the uniform body for plain-confirmation and error
// responses: `{"message": ...}`.
type MessageResponse struct {
	Message string `json:"message"`
}
