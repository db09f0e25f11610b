package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GlebRadaev/spintracker/internal/converter"
	"github.com/GlebRadaev/spintracker/internal/domain"
	"github.com/GlebRadaev/spintracker/internal/dto"
	"github.com/GlebRadaev/spintracker/internal/service/authservice"
	"github.com/GlebRadaev/spintracker/pkg/auth"
	"github.com/GlebRadaev/spintracker/pkg/utils"
	"github.com/GlebRadaev/spintracker/pkg/validate"
)

type Service interface {
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	GetUser(ctx context.Context, userID int) (*domain.User, error)
	GenerateToken(userID int) (string, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register godoc
//
//	@Summary		Register a new user
//	@Description	Create a new user account and return a bearer token in the Authorization header
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Register request body"
//	@Success		200		{object}	utils.Response{data=dto.UserDTO}
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"Email already taken"
//	@Failure		422		{object}	utils.Response	"Validation failed"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := validate.Struct(req); errs != nil {
		utils.RespondWithValidationErrors(w, "The given data was invalid.", errs)
		return
	}

	user, err := h.authService.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, authservice.ErrEmailTaken) {
			utils.RespondWithError(w, http.StatusConflict, "The email has already been taken.")
			return
		}
		utils.RespondWithFailure(w, http.StatusInternalServerError, "Registration failed", "Internal server error")
		return
	}
	if !h.setToken(w, user.ID) {
		return
	}
	utils.RespondWithSuccess(w, http.StatusOK, "User successfully registered", converter.ToUserDTO(user))
}

// Login godoc
//
//	@Summary		Authenticate user
//	@Description	Log in with email and password and get a JWT token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	utils.Response{data=dto.UserDTO}
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		422		{object}	utils.Response	"Validation failed"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := validate.Struct(req); errs != nil {
		utils.RespondWithValidationErrors(w, "The given data was invalid.", errs)
		return
	}

	user, err := h.authService.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if !h.setToken(w, user.ID) {
		return
	}
	utils.RespondWithSuccess(w, http.StatusOK, "User successfully authenticated", converter.ToUserDTO(user))
}

// Me godoc
//
//	@Summary		Current user
//	@Description	Return the authenticated user
//	@Tags			Auth
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response{data=dto.UserDTO}
//	@Failure		401	{object}	utils.Response	"Unauthenticated"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthenticated")
		return
	}

	user, err := h.authService.GetUser(r.Context(), userID)
	if err != nil {
		utils.RespondWithDomainError(w, err, utils.ErrorTitles{
			NotFound: "User not found",
			Internal: "Failed to retrieve user",
		})
		return
	}
	utils.RespondWithSuccess(w, http.StatusOK, "User retrieved successfully", converter.ToUserDTO(user))
}

func (h *AuthHandler) setToken(w http.ResponseWriter, userID int) bool {
	token, err := h.authService.GenerateToken(userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return false
	}
	w.Header().Set("Authorization", "Bearer "+token)
	return true
}
