package api

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/limbo/habitual/internal/service"
	"github.com/limbo/habitual/pkg/entity"
	"github.com/limbo/habitual/pkg/httputil"
)

// SubscribeRequest mirrors PushSubscription.toJSON() of the browser plus
// an optional habit target. Telegram endpoints ("tg:<chat id>") go
// without keys.
type SubscribeRequest struct {
	Endpoint string `json:"endpoint"`
	Keys     struct {
		P256dh string `json:"p256dh"`
		Auth   string `json:"auth"`
	} `json:"keys"`
	HabitID *string `json:"habit_id,omitempty"`
}

type UnsubscribeRequest struct {
	Endpoint string `json:"endpoint"`
}

func (s *Server) VAPIDKey(w http.ResponseWriter, r *http.Request) {
	if s.vapidPublicKey == "" {
		httputil.WriteErrorResponse(w, http.StatusNotFound, "web push is not configured", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"public_key": s.vapidPublicKey})
}

func (s *Server) Subscribe(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req SubscribeRequest
	if err = httputil.DecodeJSON(r, &req); err != nil {
		logger.Warn("subscribe error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	var habitID *uuid.UUID
	if req.HabitID != nil && *req.HabitID != "" {
		id, err := uuid.Parse(*req.HabitID)
		if err != nil {
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid habit id", nil)
			return
		}
		habitID = &id
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	sub, err := s.subscriptionService.Subscribe(ctx, uid, &service.SubscribeRequest{
		Endpoint: req.Endpoint,
		P256dh:   req.Keys.P256dh,
		Auth:     req.Keys.Auth,
		HabitID:  habitID,
	})
	if err != nil {
		writeServiceError(w, logger, "subscribe", hideForeignHabit(err))
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, sub)
	logger.Info("push subscription stored")
}

func (s *Server) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req UnsubscribeRequest
	if err = httputil.DecodeJSON(r, &req); err != nil || req.Endpoint == "" {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "endpoint is required", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err = s.subscriptionService.Unsubscribe(ctx, uid, req.Endpoint); err != nil {
		writeServiceError(w, logger, "unsubscribe", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) ListSubscriptions(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	subs, err := s.subscriptionService.List(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "listing subscriptions", err)
		return
	}
	if subs == nil {
		subs = []entity.Subscription{}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"subscriptions": subs})
}

func (s *Server) SendTestNotification(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	res, err := s.subscriptionService.SendTest(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "test notification", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, res)
	logger.WithField("sent", res.Sent).Info("test notification dispatched")
}
