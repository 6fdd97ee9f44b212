package httpadapter

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"voidminer/internal/app/ports"
	"voidminer/internal/app/session"
)

type Handler struct {
	SessionUC      session.UseCase
	KPI            kpiSnapshotProvider
	AllowedOrigins []string
	Limiter        *ProfileLimiter
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware(h.AllowedOrigins))

	sessions := s.Group("/api/sessions/:profile", rateLimitMiddleware(h.Limiter))
	sessions.GET("", h.get)
	sessions.POST("/sync", h.sync)
	sessions.POST("/actions", h.action)
	sessions.GET("/world", h.world)

	s.GET("/healthz", h.health)
	s.GET("/ops/kpi", h.kpi)
}

func (h Handler) get(c context.Context, ctx *app.RequestContext) {
	resp, err := h.SessionUC.Get(c, ctx.Param("profile"))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) sync(c context.Context, ctx *app.RequestContext) {
	resp, err := h.SessionUC.Sync(c, ctx.Param("profile"))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) action(c context.Context, ctx *app.RequestContext) {
	var body session.Action
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	if body.Type == "" {
		writeErrorBody(ctx, consts.StatusBadRequest, "missing_action_type", "action type is required")
		return
	}

	resp, err := h.SessionUC.Act(c, ctx.Param("profile"), body)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) world(c context.Context, ctx *app.RequestContext) {
	resp, err := h.SessionUC.World(c, ctx.Param("profile"))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) health(_ context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, map[string]string{"status": "ok"})
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, session.ErrUnknownAction):
		writeErrorBody(ctx, consts.StatusBadRequest, "unknown_action", err.Error())
	case errors.Is(err, session.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	default:
		hlog.Errorf("unhandled request error: %v", err)
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
