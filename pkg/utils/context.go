package utils

import (
	"context"
)

type contextKey string

const (
	OperatorIDKey   contextKey = "operator_id"
	OperatorNameKey contextKey = "operator_name"
)

// SetOperatorContext stores the authenticated staff member's identity
// provider subject and display name on the request context.
func SetOperatorContext(ctx context.Context, subject, displayName string) context.Context {
	ctx = context.WithValue(ctx, OperatorIDKey, subject)
	ctx = context.WithValue(ctx, OperatorNameKey, displayName)
	return ctx
}

func GetOperatorIDFromContext(ctx context.Context) (string, bool) {
	idVal := ctx.Value(OperatorIDKey)
	if idVal == nil {
		return "", false
	}

	id, ok := idVal.(string)
	return id, ok
}

// GetOperatorNameFromContext returns the display name used for audit
// attribution. Falls back to "Unknown Staff" so audit rows never carry
// an empty actor.
func GetOperatorNameFromContext(ctx context.Context) string {
	nameVal := ctx.Value(OperatorNameKey)
	if nameVal == nil {
		return "Unknown Staff"
	}

	name, ok := nameVal.(string)
	if !ok || name == "" {
		return "Unknown Staff"
	}
	return name
}
