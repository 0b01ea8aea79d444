package context

import (
	"context"
	"log/slog"

	"rently/internal/domain/entity"

	"github.com/google/uuid"
)

// Caller is the authenticated account behind a request.
type Caller struct {
	AccountID uuid.UUID
	Role      entity.Role
}

// WithCaller returns a copy of ctx carrying caller. The request-scoped logger, when present,
// is re-derived with account_id and role so later log lines identify the caller.
func WithCaller(ctx context.Context, caller Caller) context.Context {
	ctx = context.WithValue(ctx, accountKey, caller)

	if logger := GetLogger(ctx); logger != nil {
		ctx = WithLogger(ctx, logger.With(
			slog.String("account_id", caller.AccountID.String()),
			slog.String("role", caller.Role.String()),
		))
	}

	return ctx
}

// CallerFromContext returns the authenticated caller. ok is false for anonymous requests.
func CallerFromContext(ctx context.Context) (caller Caller, ok bool) {
	caller, ok = ctx.Value(accountKey).(Caller)
	if !ok || caller.AccountID == uuid.Nil {
		return Caller{}, false
	}

	return caller, true
}
