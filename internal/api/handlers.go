package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/habitual/internal/error_values"
	"github.com/limbo/habitual/internal/service"
	"github.com/limbo/habitual/pkg/entity"
	"github.com/limbo/habitual/pkg/httputil"
	"github.com/sirupsen/logrus"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type DeleteAccountRequest struct {
	Password string `json:"password"`
}

type HabitRequest struct {
	Name         string  `json:"name"`
	Description  string  `json:"desc"`
	Category     string  `json:"category"`
	Frequency    string  `json:"frequency"`
	TargetCount  *int    `json:"target_count,omitempty"`
	ReminderTime *string `json:"reminder_time,omitempty"`
}

type GetHabitsResponse struct {
	UserID string          `json:"uid"`
	Page   int             `json:"page"`
	Limit  int             `json:"limit"`
	Habits []*entity.Habit `json:"habits"`
}

// writeServiceError maps error categories to statuses. 4xx bodies carry
// the error text so clients can tell causes apart.
func writeServiceError(w http.ResponseWriter, logger logrus.FieldLogger, op string, err error) {
	var status int
	switch {
	case errors.Is(err, errorvalues.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, errorvalues.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errorvalues.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, errorvalues.ErrForbidden):
		status = http.StatusForbidden
	default:
		logger.WithError(err).Errorf("%s error: service error", op)
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during "+op, nil)
		return
	}
	logger.WithError(err).Warnf("%s error", op)
	httputil.WriteErrorResponse(w, status, err.Error(), nil)
}

// Habits of other users look missing.
func hideForeignHabit(err error) error {
	if errors.Is(err, errorvalues.ErrWrongOwner) {
		return errorvalues.ErrHabitNotFound
	}
	return err
}

func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req RegisterRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Warn("registering error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	user, err := s.userService.Register(ctx, &service.RegisterRequest{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		writeServiceError(w, logger, "registration", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{
		"uid": user.ID.String(),
	})
	logger.Info("successful registration")
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Warn("login error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	user, err := s.userService.Login(ctx, req.Name, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Warn("login error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user with such name doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrWrongCredentials):
			logger.Warn("login error: wrong password")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "invalid username or password", nil)
		default:
			logger.WithError(err).Error("login error: service error")
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during login", nil)
		}
		return
	}
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.WithError(err).Error("login error: generating token error")
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"uid":   user.ID.String(),
		"token": token,
	})
	logger.Info("successful login")
}

func (s *Server) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req DeleteAccountRequest
	if err = httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err = s.userService.DeleteAccount(ctx, uid, req.Password); err != nil {
		if errors.Is(err, errorvalues.ErrWrongCredentials) {
			logger.Warn("account deletion error: wrong password")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "invalid password", nil)
			return
		}
		writeServiceError(w, logger, "account deletion", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("account deleted")
}

func (s *Server) CreateHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Warn("create habit error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req HabitRequest
	if err = httputil.DecodeJSON(r, &req); err != nil {
		logger.Warn("create habit error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	habit, err := s.habitService.CreateHabit(ctx, uid, &service.CreateHabitRequest{
		Name:         req.Name,
		Description:  req.Description,
		Category:     req.Category,
		Frequency:    req.Frequency,
		TargetCount:  req.TargetCount,
		ReminderTime: req.ReminderTime,
	})
	if err != nil {
		writeServiceError(w, logger, "habit creation", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, habit)
	logger.WithField("habit_id", habit.ID.String()).Info("habit created")
}

func (s *Server) GetHabits(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Warn("get habits error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 || limit > 50 {
		limit = 10
	}
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	offset := (page - 1) * limit
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	habits, err := s.habitService.GetUserHabits(ctx, uid, service.PaginationOpts{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		logger.WithError(err).Error("getting habits list error")
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting habits list", nil)
		return
	}
	if habits == nil {
		habits = []*entity.Habit{}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetHabitsResponse{
		UserID: uid.String(),
		Page:   page,
		Limit:  limit,
		Habits: habits,
	})
}

func (s *Server) GetHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, habitID, ok := habitRequestIDs(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	habit, err := s.habitService.GetHabit(ctx, habitID, uid)
	if err != nil {
		writeServiceError(w, logger, "getting habit", hideForeignHabit(err))
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, habit)
}

func (s *Server) UpdateHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, habitID, ok := habitRequestIDs(w, r)
	if !ok {
		return
	}
	var req HabitRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Warn("update habit error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	habit, err := s.habitService.UpdateHabit(ctx, habitID, uid, &service.UpdateHabitRequest{
		Name:         req.Name,
		Description:  req.Description,
		Category:     req.Category,
		Frequency:    req.Frequency,
		TargetCount:  req.TargetCount,
		ReminderTime: req.ReminderTime,
	})
	if err != nil {
		writeServiceError(w, logger, "habit update", hideForeignHabit(err))
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, habit)
	logger.WithField("habit_id", habitID.String()).Info("habit updated")
}

func (s *Server) DeleteHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, habitID, ok := habitRequestIDs(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err := s.habitService.DeleteHabit(ctx, habitID, uid); err != nil {
		writeServiceError(w, logger, "habit deletion", hideForeignHabit(err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.WithField("habit_id", habitID.String()).Info("habit deleted")
}

// habitRequestIDs reads the caller's uid and the {id} path value. On
// failure the response is already written.
func habitRequestIDs(w http.ResponseWriter, r *http.Request) (uuid.UUID, uuid.UUID, bool) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Warn("unauthorized request")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return uuid.UUID{}, uuid.UUID{}, false
	}
	habitID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Warn("invalid habit id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid habit id in path value", nil)
		return uuid.UUID{}, uuid.UUID{}, false
	}
	return uid, habitID, true
}
