package dshl

import "context"

type ctxKey string

const (
	ctxKeyShell ctxKey = "shell"
)

// Attaches a Shell to a context. Shell.Call does this before invoking a command.
func WithShell(ctx context.Context, sh *Shell) context.Context {
	return context.WithValue(ctx, ctxKeyShell, sh)
}

// Returns the current shell, or nil outside of a command handler.
func GetShell(ctx context.Context) *Shell {
	sh, _ := ctx.Value(ctxKeyShell).(*Shell)
	return sh
}
