package logging

import (
	"time"
)

// TimingContext holds timing information for manual Start/End tracking
type TimingContext struct {
	name      string
	startTime time.Time
	attrs     []any
}

// Start begins a timing measurement. Must be paired with End.
//
// Example:
//
//	t := logging.Start("kubeconfig write", "path", path)
//	// ... do work ...
//	logging.End(t)
func Start(name string, attrs ...any) TimingContext {
	return TimingContext{
		name:      name,
		startTime: time.Now(),
		attrs:     attrs,
	}
}

// End completes a timing measurement started with Start and logs the duration
func End(ctx TimingContext) {
	if !IsEnabled() {
		return
	}

	duration := time.Since(ctx.startTime)
	args := append([]any{"duration", duration.String(), "ms", duration.Milliseconds()}, ctx.attrs...)
	Get().Debug(ctx.name, args...)
}

// EndWithCount completes a timing measurement and logs the duration with an item count
func EndWithCount(ctx TimingContext, count int) {
	ctx.attrs = append(ctx.attrs, "count", count)
	End(ctx)
}
