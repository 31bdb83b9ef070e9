package logging

import "context"

type contextKey string

const (
	commandKey contextKey = "command"
	scriptKey  contextKey = "script"
)

// WithCommand records the CLI command handling the request.
func WithCommand(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, commandKey, name)
}

// WithScript records the path of the command script being replayed.
func WithScript(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, scriptKey, path)
}

// GetCommand retrieves the command name from the context.
// Returns empty string if not present.
func GetCommand(ctx context.Context) string {
	if name, ok := ctx.Value(commandKey).(string); ok {
		return name
	}
	return ""
}

// GetScript retrieves the script path from the context.
// Returns empty string if not present.
func GetScript(ctx context.Context) string {
	if path, ok := ctx.Value(scriptKey).(string); ok {
		return path
	}
	return ""
}
