// Package ctxutil provides context utilities that can be safely imported anywhere.
// This package has no internal dependencies to avoid import cycles.
package ctxutil

import "context"

// OperatorKey is the context key for the operator name.
type OperatorKey struct{}

// DefaultOperator is reported when no operator is set.
const DefaultOperator = "operator"

// WithOperator returns a context carrying the name of the person at the keyboard.
func WithOperator(ctx context.Context, operator string) context.Context {
	return context.WithValue(ctx, OperatorKey{}, operator)
}

// OperatorFromContext returns the operator from context, or DefaultOperator.
func OperatorFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(OperatorKey{}).(string); ok && v != "" {
		return v
	}
	return DefaultOperator
}
