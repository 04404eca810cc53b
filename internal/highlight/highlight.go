// Package highlight renders source code into HTML,
// loading the underlying highlighting engine lazily.
package highlight

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"braces.dev/errtrace"
)

// Engine formats source code into HTML markup.
// It reports an error for languages or themes it does not recognize.
type Engine interface {
	Format(content, language, theme string) (string, error)
}

// LoadFunc constructs an [Engine].
// It may be slow: implementations are free to hit the disk or the network.
type LoadFunc func(context.Context) (Engine, error)

// Renderer renders code blocks into HTML with a lazily-loaded [Engine].
//
// The engine is loaded at most once per Renderer
// no matter how many goroutines call [Renderer.Render] concurrently:
// the first caller starts the load,
// and everyone else waits on the same in-flight load.
// A failed load is not cached; a later Render will retry it.
type Renderer struct {
	// Load constructs the engine on first use.
	Load LoadFunc

	// Log receives diagnostics for failed renders.
	// If unset, diagnostics are dropped.
	Log *log.Logger

	mu      sync.Mutex
	pending *enginePromise
}

// enginePromise is the ownership slot for one engine load.
// done is closed when engine and err are set.
type enginePromise struct {
	done   chan struct{}
	engine Engine
	err    error
}

// Render renders content into HTML markup,
// highlighted for the given language and theme.
//
// Render never fails:
// if the engine cannot be loaded,
// or it rejects the language, theme, or content,
// Render returns the content escaped as plain text instead.
// Failures are reported to [Renderer.Log].
func (r *Renderer) Render(ctx context.Context, content, language, theme string) string {
	out, err := r.render(ctx, content, language, theme)
	if err != nil {
		r.logf("highlight (lang=%q, theme=%q): %v", language, theme, err)
		return Fallback(content)
	}
	return out
}

func (r *Renderer) render(ctx context.Context, content, language, theme string) (string, error) {
	engine, err := r.ensureLoaded(ctx)
	if err != nil {
		return "", err
	}
	return formatWithRecover(engine, content, language, theme)
}

// ensureLoaded returns the shared engine,
// starting the load if no load is in flight yet.
//
// The promise is recorded in the slot before the load runs,
// so concurrent callers always attach to the same load.
// ctx cancellation releases the caller, not the load:
// the load keeps running for whoever asks next.
func (r *Renderer) ensureLoaded(ctx context.Context) (Engine, error) {
	if r.Load == nil {
		return nil, errors.New("no engine loader configured")
	}

	r.mu.Lock()
	p := r.pending
	if p == nil {
		p = &enginePromise{done: make(chan struct{})}
		r.pending = p
		go p.fulfill(context.WithoutCancel(ctx), r.Load)
	}
	r.mu.Unlock()

	select {
	case <-p.done:
	case <-ctx.Done():
		return nil, errtrace.Wrap(ctx.Err())
	}

	if p.err != nil {
		// Cache successful loads only.
		// Clearing the slot lets a later call retry.
		r.mu.Lock()
		if r.pending == p {
			r.pending = nil
		}
		r.mu.Unlock()
		return nil, p.err
	}
	return p.engine, nil
}

func (p *enginePromise) fulfill(ctx context.Context, load LoadFunc) {
	defer close(p.done)
	defer func() {
		if pv := recover(); pv != nil {
			p.engine, p.err = nil, errtrace.Wrap(fmt.Errorf("engine load panicked: %v", pv))
		}
	}()

	engine, err := load(ctx)
	if err == nil && engine == nil {
		err = errors.New("engine loader returned nil")
	}
	p.engine, p.err = engine, err
}

// formatWithRecover confines panic recovery to the engine call
// so that bugs elsewhere still crash loudly.
func formatWithRecover(engine Engine, content, language, theme string) (out string, err error) {
	defer func() {
		if pv := recover(); pv != nil {
			out, err = "", errtrace.Wrap(fmt.Errorf("engine panicked: %v", pv))
		}
	}()
	return errtrace.Wrap2(engine.Format(content, language, theme))
}

// logf reports a diagnostic without ever disturbing the fallback path.
func (r *Renderer) logf(format string, args ...any) {
	if r.Log == nil {
		return
	}
	defer func() { _ = recover() }()
	r.Log.Printf(format, args...)
}
