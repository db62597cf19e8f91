// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers can register
// hooks at startup to receive events about pipeline stages, library writes,
// and API requests.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, not by libraries, so the core packages stay
// free of observability framework imports and any backend (OpenTelemetry,
// Prometheus, statsd, ...) can be plugged in behind the interfaces.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    observability.SetHTTPHooks(&myHTTPHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnParseStart(ctx, len(svgData))
//	// ... do parsing ...
//	observability.Pipeline().OnParseComplete(ctx, polylines, points, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the generation pipeline.
type PipelineHooks interface {
	// Parse events. Size is the SVG document size in bytes.
	OnParseStart(ctx context.Context, size int)
	OnParseComplete(ctx context.Context, polylines, points int, duration time.Duration, err error)

	// Generate events
	OnGenerateStart(ctx context.Context, polylines int)
	OnGenerateComplete(ctx context.Context, elements int, duration time.Duration, err error)
}

// =============================================================================
// Library Hooks
// =============================================================================

// LibraryHooks receives events from library tree writes.
type LibraryHooks interface {
	// OnElementWritten records one element document written into a library.
	OnElementWritten(kind, path string)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from the HTTP API.
type HTTPHooks interface {
	// OnRequest records an incoming request.
	OnRequest(ctx context.Context, method, path string)

	// OnResponse records a completed request.
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)

	// OnError records a request that failed before a result could be produced.
	OnError(ctx context.Context, method, path string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnParseStart(context.Context, int)                               {}
func (NoopPipelineHooks) OnParseComplete(context.Context, int, int, time.Duration, error) {}
func (NoopPipelineHooks) OnGenerateStart(context.Context, int)                            {}
func (NoopPipelineHooks) OnGenerateComplete(context.Context, int, time.Duration, error)   {}

// NoopLibraryHooks is a no-op implementation of LibraryHooks.
type NoopLibraryHooks struct{}

func (NoopLibraryHooks) OnElementWritten(string, string) {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, error)                 {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	libraryHooks  LibraryHooks  = NoopLibraryHooks{}
	httpHooks     HTTPHooks     = NoopHTTPHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any pipeline operations.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// SetLibraryHooks registers custom library hooks.
// This should be called once at application startup before any library writes.
func SetLibraryHooks(h LibraryHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		libraryHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup before the server starts.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Library returns the registered library hooks.
func Library() LibraryHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return libraryHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
	libraryHooks = NoopLibraryHooks{}
	httpHooks = NoopHTTPHooks{}
}
