package dashboard

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/naufalhakim/hr-management/internal/auth"
	"github.com/naufalhakim/hr-management/internal/transport"
	"github.com/naufalhakim/hr-management/pkg/logger"
)

type ServiceAPI interface {
	Overview(ctx context.Context) *Overview
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     service,
	}
}

// Overview never fails: aggregation errors degrade to zeroed stats.
func (h *Handler) Overview(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.SessionFromContext(r.Context())
	if !ok || session == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	overview := h.Service.Overview(r.Context())

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"stats":         overview.Stats,
		"recent_leaves": overview.RecentLeaves,
		"user":          session,
	})
}
