package sessions

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/spintracker/internal/converter"
	"github.com/GlebRadaev/spintracker/internal/domain"
	"github.com/GlebRadaev/spintracker/pkg/auth"
	"github.com/GlebRadaev/spintracker/pkg/utils"
)

type Service interface {
	CreateSession(ctx context.Context, userID int) (*domain.Session, error)
	ListSessions(ctx context.Context, userID int) ([]domain.Session, error)
	GetSessionDetails(ctx context.Context, sessionID, userID int, overrides domain.StrategyOverrides) (*domain.SessionDetails, error)
	CloseSession(ctx context.Context, sessionID, userID int) (*domain.SessionDetails, error)
	DeleteSession(ctx context.Context, sessionID, userID int) error
}

type SessionHandler struct {
	sessionService Service
}

func New(sessionService Service) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
	}
}

// CreateSession godoc
//
//	@Summary		Start a session
//	@Description	Open a new gaming session for the authenticated user
//	@Tags			Sessions
//	@Produce		json
//	@Security		BearerAuth
//	@Success		201	{object}	utils.Response{data=dto.SessionDTO}
//	@Failure		401	{object}	utils.Response	"Unauthenticated"
//	@Failure		500	{object}	utils.Response	"Failed to create session"
//	@Router			/api/sessions [post]
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthenticated")
		return
	}

	session, err := h.sessionService.CreateSession(r.Context(), userID)
	if err != nil {
		utils.RespondWithDomainError(w, err, utils.ErrorTitles{Internal: "Failed to create session"})
		return
	}
	utils.RespondWithSuccess(w, http.StatusCreated, "Session created successfully", converter.ToSessionDTO(session))
}

// ListSessions godoc
//
//	@Summary		List sessions
//	@Description	Return the user's sessions, newest first
//	@Tags			Sessions
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response{data=[]dto.SessionDTO}
//	@Success		204	"No sessions"
//	@Failure		401	{object}	utils.Response	"Unauthenticated"
//	@Failure		500	{object}	utils.Response	"Failed to retrieve sessions"
//	@Router			/api/sessions [get]
func (h *SessionHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthenticated")
		return
	}

	sessions, err := h.sessionService.ListSessions(r.Context(), userID)
	if err != nil {
		utils.RespondWithDomainError(w, err, utils.ErrorTitles{Internal: "Failed to retrieve sessions"})
		return
	}
	if len(sessions) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	utils.RespondWithSuccess(w, http.StatusOK, "Sessions retrieved successfully", converter.ToSessionDTOs(sessions))
}

// GetSession godoc
//
//	@Summary		Session details
//	@Description	Return the session with its spins, profit/loss data and the next recommended action
//	@Tags			Sessions
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id			path		int		true	"Session ID"
//	@Param			base_bet	query		number	false	"Base bet override"
//	@Param			max_bet		query		number	false	"Maximum bet override"
//	@Success		200			{object}	utils.Response{data=dto.SessionDetailsDTO}
//	@Failure		400			{object}	utils.Response	"Invalid strategy parameters"
//	@Failure		401			{object}	utils.Response	"Unauthenticated"
//	@Failure		403			{object}	utils.Response	"Unauthorized access"
//	@Failure		404			{object}	utils.Response	"Session not found"
//	@Failure		500			{object}	utils.Response	"Failed to retrieve session"
//	@Router			/api/sessions/{id} [get]
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	userID, sessionID, ok := identify(w, r)
	if !ok {
		return
	}

	overrides, err := parseOverrides(r)
	if err != nil {
		utils.RespondWithFailure(w, http.StatusBadRequest, "Invalid strategy parameters", err.Error())
		return
	}

	details, err := h.sessionService.GetSessionDetails(r.Context(), sessionID, userID, overrides)
	if err != nil {
		utils.RespondWithDomainError(w, err, utils.ErrorTitles{
			NotFound:         "Session not found",
			InvalidParameter: "Invalid strategy parameters",
			Internal:         "Failed to retrieve session",
		})
		return
	}
	utils.RespondWithSuccess(w, http.StatusOK, "Session retrieved successfully", converter.ToSessionDetailsDTO(details))
}

// CloseSession godoc
//
//	@Summary		Close a session
//	@Description	Mark an open session as ended
//	@Tags			Sessions
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"Session ID"
//	@Success		200	{object}	utils.Response{data=dto.SessionDetailsDTO}
//	@Failure		400	{object}	utils.Response	"Session is already closed"
//	@Failure		401	{object}	utils.Response	"Unauthenticated"
//	@Failure		403	{object}	utils.Response	"Unauthorized access"
//	@Failure		404	{object}	utils.Response	"Session not found"
//	@Failure		500	{object}	utils.Response	"Failed to close session"
//	@Router			/api/sessions/{id}/close [put]
func (h *SessionHandler) CloseSession(w http.ResponseWriter, r *http.Request) {
	userID, sessionID, ok := identify(w, r)
	if !ok {
		return
	}

	details, err := h.sessionService.CloseSession(r.Context(), sessionID, userID)
	if err != nil {
		utils.RespondWithDomainError(w, err, utils.ErrorTitles{
			NotFound:     "Session not found",
			InvalidState: "Invalid operation",
			Internal:     "Failed to close session",
		})
		return
	}
	utils.RespondWithSuccess(w, http.StatusOK, "Session closed successfully", converter.ToSessionDetailsDTO(details))
}

// DeleteSession godoc
//
//	@Summary		Delete a session
//	@Description	Remove a session together with its spins
//	@Tags			Sessions
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"Session ID"
//	@Success		200	{object}	utils.Response
//	@Failure		401	{object}	utils.Response	"Unauthenticated"
//	@Failure		403	{object}	utils.Response	"Unauthorized access"
//	@Failure		404	{object}	utils.Response	"Session not found"
//	@Failure		500	{object}	utils.Response	"Failed to delete session"
//	@Router			/api/sessions/{id} [delete]
func (h *SessionHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	userID, sessionID, ok := identify(w, r)
	if !ok {
		return
	}

	if err := h.sessionService.DeleteSession(r.Context(), sessionID, userID); err != nil {
		utils.RespondWithDomainError(w, err, utils.ErrorTitles{
			NotFound: "Session not found",
			Internal: "Failed to delete session",
		})
		return
	}
	utils.RespondWithSuccess(w, http.StatusOK, "Session deleted successfully", nil)
}

// identify reads the caller and the {id} route parameter. A malformed id
// cannot name a session, so it is reported as not found.
func identify(w http.ResponseWriter, r *http.Request) (userID, sessionID int, ok bool) {
	userID, ok = auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthenticated")
		return 0, 0, false
	}

	sessionID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || sessionID <= 0 {
		utils.RespondWithFailure(w, http.StatusNotFound, "Session not found",
			"The requested session does not exist or you do not have permission to access it.")
		return 0, 0, false
	}
	return userID, sessionID, true
}

func parseOverrides(r *http.Request) (domain.StrategyOverrides, error) {
	var overrides domain.StrategyOverrides
	query := r.URL.Query()

	for _, param := range []struct {
		key    string
		target **decimal.Decimal
	}{
		{"base_bet", &overrides.BaseBet},
		{"max_bet", &overrides.MaxBet},
	} {
		raw := query.Get(param.key)
		if raw == "" {
			continue
		}
		value, err := decimal.NewFromString(raw)
		if err != nil {
			return domain.StrategyOverrides{}, &invalidQueryError{param: param.key}
		}
		*param.target = &value
	}
	return overrides, nil
}

type invalidQueryError struct {
	param string
}

func (e *invalidQueryError) Error() string {
	return "The " + e.param + " parameter must be a valid number."
}
