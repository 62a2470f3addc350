package envutil

import (
	"context"
	"os"
)

type envContextKey string

const overridesKey envContextKey = "overrides"

// WithEnvOverride returns a context in which key reads as value,
// regardless of the process environment.
func WithEnvOverride(ctx context.Context, key string, value string) context.Context {
	return WithEnvOverrides(ctx, map[string]string{key: value})
}

// WithEnvOverrides is WithEnvOverride for several keys at once. Later
// overrides shadow earlier ones.
func WithEnvOverrides(ctx context.Context, values map[string]string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	merged := make(map[string]string, len(values))

	for k, v := range getOverrides(ctx) {
		merged[k] = v
	}

	for k, v := range values {
		merged[k] = v
	}

	return context.WithValue(ctx, overridesKey, merged)
}

func getOverrides(ctx context.Context) map[string]string {
	if ctx == nil {
		return nil
	}

	m, _ := ctx.Value(overridesKey).(map[string]string)

	return m
}

// lookup checks the context overrides, then the process environment.
func lookup(ctx context.Context, key string) (string, bool) {
	if v, ok := getOverrides(ctx)[key]; ok {
		return v, true
	}

	return os.LookupEnv(key)
}
