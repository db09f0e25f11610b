package spins

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/spintracker/internal/converter"
	"github.com/GlebRadaev/spintracker/internal/domain"
	"github.com/GlebRadaev/spintracker/pkg/auth"
	"github.com/GlebRadaev/spintracker/pkg/utils"
	"github.com/GlebRadaev/spintracker/pkg/validate"
)

// maxBodySize bounds a spin payload; a valid one is well under a kilobyte.
const maxBodySize = 64 << 10

type Service interface {
	AppendSpin(ctx context.Context, sessionID, userID int, input domain.SpinInput) (*domain.SessionDetails, error)
}

type SpinHandler struct {
	sessionService Service
}

func New(sessionService Service) *SpinHandler {
	return &SpinHandler{
		sessionService: sessionService,
	}
}

// AddSpin godoc
//
//	@Summary		Record a spin
//	@Description	Append a spin to an open session and return the updated session with the next recommended action
//	@Tags			Spins
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			sessionId	path		int					true	"Session ID"
//	@Param			request		body		dto.SpinRequestDTO	true	"Spin outcome"
//	@Success		201			{object}	utils.Response{data=dto.SessionDetailsDTO}
//	@Failure		400			{object}	utils.Response	"Cannot add spins to a closed session"
//	@Failure		401			{object}	utils.Response	"Unauthenticated"
//	@Failure		403			{object}	utils.Response	"Unauthorized access"
//	@Failure		404			{object}	utils.Response	"Session not found"
//	@Failure		422			{object}	utils.Response	"Validation failed"
//	@Failure		500			{object}	utils.Response	"Failed to add spin"
//	@Router			/api/sessions/{sessionId}/spins [post]
func (h *SpinHandler) AddSpin(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthenticated")
		return
	}

	sessionID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || sessionID <= 0 {
		utils.RespondWithFailure(w, http.StatusNotFound, "Session not found",
			"The requested session does not exist or you do not have permission to access it.")
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	input, errs, err := validate.Spin(body)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs != nil {
		utils.RespondWithValidationErrors(w, "The given data was invalid.", errs)
		return
	}

	details, err := h.sessionService.AppendSpin(r.Context(), sessionID, userID, input)
	if err != nil {
		utils.RespondWithDomainError(w, err, utils.ErrorTitles{
			NotFound:     "Session not found",
			InvalidState: "Invalid data provided",
			Internal:     "Failed to add spin",
		})
		return
	}
	utils.RespondWithSuccess(w, http.StatusCreated, "Spin added successfully", converter.ToSessionDetailsDTO(details))
}
