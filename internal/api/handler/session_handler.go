package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/artgallery/gallery-service/internal/api/metrics"
	"github.com/artgallery/gallery-service/internal/core/domain"
	"github.com/artgallery/gallery-service/internal/core/session"
)

// SessionHandler exposes the session store's four operations over HTTP.
type SessionHandler struct {
	store  *session.Store
	tokens *TokenIssuer
}

func NewSessionHandler(store *session.Store, tokens *TokenIssuer) *SessionHandler {
	return &SessionHandler{store: store, tokens: tokens}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password"`
}

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3,max=32"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Role     string `json:"role" validate:"required,oneof=artist enthusiast"`
	Bio      string `json:"bio"`
}

type updateProfileRequest struct {
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"full_name"`
	Bio      string `json:"bio"`
}

type sessionResponse struct {
	User        domain.Identity `json:"user"`
	AccessToken string          `json:"access_token,omitempty"`
	TokenType   string          `json:"token_type,omitempty"`
}

// Login authenticates against the roster and replaces the session.
//
// @Summary      Log in
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials (password optional in demo mode)"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/login [post]
func (h *SessionHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	if !h.store.Login(req.Username, req.Password) {
		metrics.LoginsTotal.WithLabelValues("failure", "none").Inc()
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unknown or inactive username"})
	}

	current, _ := h.store.Current()
	metrics.LoginsTotal.WithLabelValues("success", string(current.Role)).Inc()

	token, err := h.tokens.Issue(current)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sessionResponse{User: current, AccessToken: token, TokenType: "bearer"})
}

// Logout clears the session. Always succeeds.
//
// @Summary      Log out
// @Tags         session
// @Success      204  "session cleared"
// @Router       /auth/logout [post]
func (h *SessionHandler) Logout(c echo.Context) error {
	h.store.Logout()
	return c.NoContent(http.StatusNoContent)
}

// Register creates a new identity and auto-logs it in.
//
// @Summary      Register a new account
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account details"
// @Success      201   {object}  sessionResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /auth/register [post]
func (h *SessionHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	ok := h.store.Register(session.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		FullName: req.FullName,
		Role:     domain.Role(req.Role),
		Bio:      req.Bio,
	})
	if !ok {
		metrics.RegistrationsTotal.WithLabelValues("duplicate_username").Inc()
		return c.JSON(http.StatusConflict, map[string]string{"error": "username already taken"})
	}
	metrics.RegistrationsTotal.WithLabelValues("success").Inc()

	current, _ := h.store.Current()
	token, err := h.tokens.Issue(current)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, sessionResponse{User: current, AccessToken: token, TokenType: "bearer"})
}

// Me returns the current session identity.
//
// @Summary      Current profile
// @Tags         users
// @Produce      json
// @Success      200  {object}  domain.Identity
// @Failure      401  {object}  map[string]string
// @Router       /users/me [get]
func (h *SessionHandler) Me(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, identity)
}

// UpdateProfile updates the mutable fields of the current identity.
// Username, role, id, creation timestamp, and the active flag are immutable.
//
// @Summary      Update current profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      updateProfileRequest  true  "Profile fields"
// @Success      200   {object}  domain.Identity
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /users/me [put]
func (h *SessionHandler) UpdateProfile(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	identity.Email = req.Email
	identity.FullName = req.FullName
	identity.Bio = req.Bio
	h.store.UpdateIdentity(identity)

	current, _ := h.store.Current()
	return c.JSON(http.StatusOK, current)
}

// ListUsers returns the roster, optionally filtered by role.
//
// @Summary      List known users
// @Tags         users
// @Produce      json
// @Param        role  query     string  false  "Filter by role (artist|enthusiast)"
// @Success      200   {array}   domain.Identity
// @Router       /users [get]
func (h *SessionHandler) ListUsers(c echo.Context) error {
	roleFilter := c.QueryParam("role")

	roster := h.store.Roster()
	if roleFilter == "" {
		return c.JSON(http.StatusOK, roster)
	}

	filtered := make([]domain.Identity, 0, len(roster))
	for _, identity := range roster {
		if string(identity.Role) == roleFilter {
			filtered = append(filtered, identity)
		}
	}
	return c.JSON(http.StatusOK, filtered)
}
