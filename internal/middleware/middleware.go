package middleware

import (
	"time"

	appcontext "github.com/SeakMengs/FontCatalog/internal/app_context"
	"github.com/gin-gonic/gin"
)

type Middleware struct {
	app *appcontext.Application
}

func NewMiddleware(app *appcontext.Application) *Middleware {
	return &Middleware{app: app}
}

// Logs every request through the application logger
func (m *Middleware) RequestLogger(ctx *gin.Context) {
	start := time.Now()

	ctx.Next()

	fields := []any{
		"method", ctx.Request.Method,
		"path", ctx.Request.URL.Path,
		"status", ctx.Writer.Status(),
		"latency", time.Since(start),
		"client_ip", ctx.ClientIP(),
	}

	if len(ctx.Errors) > 0 {
		m.app.Logger.Warnw(ctx.Errors.String(), fields...)
		return
	}

	m.app.Logger.Debugw("Request handled", fields...)
}
