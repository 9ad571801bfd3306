package handlers

import (
	"net/http"

	"github.com/ocastro/autoglass-mis/internal/adapters/http/dto"
	"github.com/ocastro/autoglass-mis/internal/domain/identity"
	"github.com/ocastro/autoglass-mis/internal/ports"
)

// UserHandler handles HTTP requests for user administration. All routes
// are admin-only; the role guard lives in the router.
type UserHandler struct {
	users ports.UserService
}

// NewUserHandler creates a new UserHandler with the given service port.
func NewUserHandler(users ports.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// ListUsers handles GET /api/v1/users.
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.ListUsers(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToUserListResponse(users))
}

// CreateUser handles POST /api/v1/users. New accounts start active.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.users.CreateUser(r.Context(), &identity.User{
		Username: req.Username,
		Email:    req.Email,
		Role:     identity.Role(req.Role),
		Active:   true,
	}, req.Password)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToUserResponse(created))
}

// UpdateUser handles PATCH /api/v1/users/{id}.
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateUserRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	update := ports.UserUpdate{
		Active:   req.Active,
		Password: req.Password,
	}
	if req.Role != nil {
		role := identity.Role(*req.Role)
		update.Role = &role
	}

	updated, err := h.users.UpdateUser(r.Context(), id, update)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToUserResponse(updated))
}
