package httpadapter

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

const corsAllowMethods = "GET,POST,OPTIONS"
const corsAllowHeaders = "Content-Type"

// allowedOrigin echoes the request origin when it is listed. An empty list
// allows any origin.
func allowedOrigin(origins []string, requestOrigin string) string {
	if len(origins) == 0 {
		return "*"
	}
	for _, o := range origins {
		if o == "*" || o == requestOrigin {
			return o
		}
	}
	return ""
}

func applyCORSHeaders(ctx *app.RequestContext, origins []string) {
	origin := allowedOrigin(origins, string(ctx.GetHeader("Origin")))
	if origin == "" {
		return
	}
	ctx.Response.Header.Set("Access-Control-Allow-Origin", origin)
	ctx.Response.Header.Set("Access-Control-Allow-Methods", corsAllowMethods)
	ctx.Response.Header.Set("Access-Control-Allow-Headers", corsAllowHeaders)
	ctx.Response.Header.Set("Access-Control-Max-Age", "600")
	if origin != "*" {
		ctx.Response.Header.Set("Vary", "Origin")
	}
}

func corsMiddleware(origins []string) app.HandlerFunc {
	return func(c context.Context, ctx *app.RequestContext) {
		applyCORSHeaders(ctx, origins)
		if string(ctx.Method()) == consts.MethodOptions {
			ctx.AbortWithStatus(consts.StatusNoContent)
			return
		}
		ctx.Next(c)
	}
}
