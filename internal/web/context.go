package web

import (
	"context"
	"net/http"

	"github.com/JonMunkholm/onboard/internal/core"
	webmw "github.com/JonMunkholm/onboard/internal/web/middleware"
)

// WithRequestMetadata adds IP and User-Agent to context for admin action logs.
func WithRequestMetadata(ctx context.Context, r *http.Request) context.Context {
	ctx = core.ContextWithIPAddress(ctx, webmw.ClientIP(r))
	ctx = core.ContextWithUserAgent(ctx, r.UserAgent())
	return ctx
}
