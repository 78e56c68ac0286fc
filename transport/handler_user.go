package transport

import (
	"net/http"
	"strings"

	"github.com/browbeat/event-marketplace/constant"
	"github.com/browbeat/event-marketplace/model"
	utilsContext "github.com/browbeat/event-marketplace/utils/context"
	"github.com/browbeat/event-marketplace/utils/errors"
)

// CreateUser handler
// @Summary Register user
// @Description Create a user account. The password is never returned.
// @Tags Users
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 201 {object} model.User
// @Failure 400 {object} ErrorResponse
// @Router /api/users [post]
func (s *RestHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.Register(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}

// GetUser handler
// @Summary Get user
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} model.User
// @Failure 404 {object} ErrorResponse
// @Router /api/users/{id} [get]
func (s *RestHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, constant.ErrUserNotFound)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.GetUser(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdateUser handler
// @Summary Update user
// @Description Partial update; only the fields present in the body change.
// @Tags Users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body model.UserPatch true "Fields to change"
// @Success 200 {object} model.User
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/users/{id} [patch]
func (s *RestHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, constant.ErrUserNotFound)
	if err != nil {
		writeError(w, err)
		return
	}

	if _, err := s.UserApp.GetUser(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	var patch model.UserPatch
	if err := decodeAndValidate(r, &patch); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.UpdateUser(r.Context(), id, &patch)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetUserVendor handler
// @Summary Get the vendor owned by a user
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} model.Vendor
// @Failure 404 {object} ErrorResponse
// @Router /api/users/{id}/vendor [get]
func (s *RestHandler) GetUserVendor(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, constant.ErrVendorNotFound)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.VendorApp.GetVendorByUser(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Login handler
// @Summary Login user
// @Description Login with username and password and receive a session token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /api/auth/login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.Login(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Logout handler
// @Summary Logout
// @Tags Auth
// @Security BearerAuth
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Router /api/auth/logout [post]
func (s *RestHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if err := s.UserApp.Logout(r.Context(), token); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Me handler
// @Summary Current user
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} model.User
// @Failure 401 {object} ErrorResponse
// @Router /api/auth/me [get]
func (s *RestHandler) Me(w http.ResponseWriter, r *http.Request) {
	id, ok := utilsContext.GetUserID(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	res, err := s.UserApp.GetUser(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
