package cli

import (
	"context"

	"github.com/thenoetrevino/dacite/internal/app"
)

type contextKey string

const appKey contextKey = "app"

// WithApp returns a context carrying application. Commands run with it use the
// App instead of opening the configured database.
func WithApp(ctx context.Context, application *app.App) context.Context {
	return context.WithValue(ctx, appKey, application)
}
