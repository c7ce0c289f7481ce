package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/automaton/pkg/domain"
)

// AuditHooks returns lifecycle hooks that log every event at debug level.
func AuditHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnAccept: func(ctx context.Context, e *domain.AcceptEvent) {
			logger.DebugContext(ctx, "accept",
				"automaton", e.Automaton,
				"input", e.Input,
				"verdict", Verdict(e.Accepted),
				"path", e.Path,
				"reason", e.Reason,
			)
		},
		OnSwap: func(ctx context.Context, e *domain.SwapEvent) {
			logger.DebugContext(ctx, "swap",
				"automaton", e.Automaton,
				"a", e.A,
				"b", e.B,
			)
		},
	}
}
