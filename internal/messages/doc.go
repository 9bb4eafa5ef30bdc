// Package messages defines how kctx reports outcomes to people.
//
// # Layers
//
// The engine (internal/kubeconfig) returns typed errors and never formats text
// for humans. Each *kubeconfig.Error carries a Kind and the original cause.
//
// Surfaces (cmd/kctx, internal/picker) turn those errors into one short line
// with ForError, which appends a hint when the kind has an obvious fix:
//
//	if err := store.DeleteContext(ctx, name); err != nil {
//	    fmt.Fprintln(streams.ErrOut, messages.ForError(err))
//	}
//
// Inside the picker, outcomes travel as StatusMsg values produced by
// ErrorCmd, SuccessCmd and InfoCmd and are rendered by ui.RenderMessage.
//
// # Guidelines
//
// Be specific ("context \"prod\" not found", not "operation failed") and
// suggest the next step when there is one.
package messages
