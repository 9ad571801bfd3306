package handlers

import (
	"net/http"

	"github.com/ocastro/autoglass-mis/internal/adapters/http/dto"
	"github.com/ocastro/autoglass-mis/internal/ports"
)

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	auth ports.AuthService
}

// NewAuthHandler creates a new AuthHandler with the given service port.
func NewAuthHandler(auth ports.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login handles POST /api/v1/auth/login. Bad credentials, unknown
// usernames, and inactive accounts all produce the same 401.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, signed, err := h.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.LoginResponse{
		Token: signed,
		User:  dto.ToUserResponse(user),
	})
}
