// Package session implements the debug session coordinator: it owns
// the file registry, the breakpoint registry, and the thread table, wires
// CDP domain activation for each attached target, and dispatches the
// uniform command surface across whichever thread a command names.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/daabr/wasmdbg/internal/breakpoint"
	"github.com/daabr/wasmdbg/internal/cdpsession"
	"github.com/daabr/wasmdbg/internal/symbols"
	"github.com/daabr/wasmdbg/internal/thread"
	"github.com/daabr/wasmdbg/pkg/devtools/debugger"
	"github.com/daabr/wasmdbg/pkg/devtools/page"
	"github.com/daabr/wasmdbg/pkg/devtools/runtime"
	"github.com/daabr/wasmdbg/pkg/devtools/target"
)

// ThreadInfo is one GetThreadList row.
type ThreadInfo struct {
	ID      int
	State   thread.State
	Focused bool
}

// Session coordinates every Thread attached to one CDP browser connection.
type Session struct {
	ctx context.Context

	Registry    *symbols.Registry
	Breakpoints *breakpoint.Registry

	mu      sync.Mutex
	threads map[int]*thread.Thread
	nextID  int
	focused int

	serverRoot, webRoot string

	OnThreadStarted     func(id int)
	OnThreadExited      func(id int)
	OnBreakpointChanged func(breakpoint.Request, bool)
	OnStopped           func(threadID int)
	OnContinued         func(threadID int)
	OnTerminated        func()
	OnOutput            func(threadID int, text string)
}

// New returns a Session bound to ctx (the session-wide context from
// devtools.NewContext), with empty registries and no threads until
// Activate runs.
func New(ctx context.Context) *Session {
	return &Session{
		ctx:         ctx,
		Registry:    symbols.NewRegistry(),
		Breakpoints: breakpoint.NewRegistry(),
		threads:     map[int]*thread.Thread{},
	}
}

// SetPathRemap configures the optional serverRoot->webRoot stack-frame
// path rewrite.
func (s *Session) SetPathRemap(serverRoot, webRoot string) {
	s.serverRoot, s.webRoot = serverRoot, webRoot
}

func (s *Session) remap(file string) string {
	if s.serverRoot == "" || !strings.HasPrefix(file, s.serverRoot) {
		return file
	}
	return s.webRoot + strings.TrimPrefix(file, s.serverRoot)
}

// Activate performs the CDP handshake for the default thread (ID 0, the
// top-level debuggee): enable Debugger/Runtime, set the instrumentation
// breakpoint, enable Page and Target auto-attach, then run the waiting
// debuggee.
func (s *Session) Activate() error {
	proxy := cdpsession.New(s.ctx, "")
	t := thread.New(0, proxy, s.Registry, s.Breakpoints)

	if err := s.bringUp(proxy, t); err != nil {
		return err
	}

	if err := target.NewSetDiscoverTargets(true).Do(proxy.Context()); err != nil {
		return fmt.Errorf("session: Target.setDiscoverTargets: %w", err)
	}
	attach := target.NewSetAutoAttach(true, true)
	attach.SetFlatten(true)
	if err := attach.Do(proxy.Context()); err != nil {
		return fmt.Errorf("session: Target.setAutoAttach: %w", err)
	}

	s.mu.Lock()
	s.threads[0] = t
	s.nextID = 1
	s.focused = 0
	s.mu.Unlock()

	go s.watchAttachments()
	go s.watchNavigation()

	if err := runtime.NewRunIfWaitingForDebugger().Do(proxy.Context()); err != nil {
		log.Printf("session: runIfWaitingForDebugger: %v", err)
	}
	if s.OnThreadStarted != nil {
		s.OnThreadStarted(0)
	}
	return nil
}

// bringUp enables Debugger/Runtime/Console on t's proxy, arms the
// instrumentation breakpoint, and starts t's event watchers. Shared by the
// default thread (Activate) and every later attached target.
func (s *Session) bringUp(proxy *cdpsession.Proxy, t *thread.Thread) error {
	if _, err := debugger.NewEnable().Do(proxy.Context()); err != nil {
		return fmt.Errorf("session: Debugger.enable: %w", err)
	}
	if err := runtime.NewEnable().Do(proxy.Context()); err != nil {
		return fmt.Errorf("session: Runtime.enable: %w", err)
	}
	if _, err := debugger.NewSetInstrumentationBreakpoint("beforeScriptExecution").Do(proxy.Context()); err != nil {
		return fmt.Errorf("session: Debugger.setInstrumentationBreakpoint: %w", err)
	}
	if err := page.NewEnable().Do(proxy.Context()); err != nil {
		return fmt.Errorf("session: Page.enable: %w", err)
	}

	t.OnBreakpointChanged(func(req breakpoint.Request, verified bool) {
		if s.OnBreakpointChanged != nil {
			s.OnBreakpointChanged(req, verified)
		}
	})
	id := t.ID
	t.OnOutput(func(text string) {
		if s.OnOutput != nil {
			s.OnOutput(id, text)
		}
	})

	if err := t.WatchConsole(proxy.Context()); err != nil {
		log.Printf("session: thread %d: console watch failed: %v", id, err)
	}
	s.watchThread(proxy, t)
	return nil
}

// watchThread subscribes to the three Debugger events a Thread's state
// machine depends on and dispatches each to its handler as it arrives.
// Each event type gets its own forwarding goroutine so that, say, a slow
// paused handler on one thread never delays another thread's scriptParsed
// events. That means these three goroutines can call into the same Thread
// concurrently with each other and with a command dispatched from
// elsewhere (e.g. SetBreakPoint's reconcileAll). Thread itself is what
// enforces per-thread event ordering from there: every Handle* method takes
// its own lock, and HandlePaused's instrumentation-pause branch explicitly
// awaits any scriptParsed handling already in flight before proceeding.
func (s *Session) watchThread(proxy *cdpsession.Proxy, t *thread.Thread) {
	scriptParsed, err := proxy.SubscribeEvent("Debugger.scriptParsed")
	if err != nil {
		log.Printf("session: thread %d: subscribe scriptParsed: %v", t.ID, err)
		return
	}
	paused, err := proxy.SubscribeEvent("Debugger.paused")
	if err != nil {
		log.Printf("session: thread %d: subscribe paused: %v", t.ID, err)
		return
	}
	resumed, err := proxy.SubscribeEvent("Debugger.resumed")
	if err != nil {
		log.Printf("session: thread %d: subscribe resumed: %v", t.ID, err)
		return
	}

	go func() {
		for msg := range scriptParsed {
			var ev debugger.ScriptParsed
			if err := json.Unmarshal(msg.Params, &ev); err != nil {
				continue
			}
			if err := t.HandleScriptParsed(proxy.Context(), ev); err != nil {
				log.Printf("session: thread %d: scriptParsed: %v", t.ID, err)
			}
		}
	}()
	go func() {
		for msg := range paused {
			var ev debugger.Paused
			if err := json.Unmarshal(msg.Params, &ev); err != nil {
				continue
			}
			surfaced, err := t.HandlePaused(proxy.Context(), ev)
			if err != nil {
				log.Printf("session: thread %d: paused: %v", t.ID, err)
			}
			if surfaced && s.OnStopped != nil {
				s.OnStopped(t.ID)
			}
		}
	}()
	go func() {
		for range resumed {
			t.HandleResumed()
			if s.OnContinued != nil {
				s.OnContinued(t.ID)
			}
		}
	}()
}

// watchAttachments reacts to Target.attachedToTarget/detachedFromTarget on
// the default (unfiltered) session, allocating/retiring worker Threads.
func (s *Session) watchAttachments() {
	root := cdpsession.New(s.ctx, "")
	attached, err := root.SubscribeEvent("Target.attachedToTarget")
	if err != nil {
		log.Printf("session: subscribe attachedToTarget: %v", err)
		return
	}
	detached, err := root.SubscribeEvent("Target.detachedFromTarget")
	if err != nil {
		log.Printf("session: subscribe detachedFromTarget: %v", err)
		return
	}

	go func() {
		for msg := range attached {
			var ev target.AttachedToTarget
			if err := json.Unmarshal(msg.Params, &ev); err != nil {
				continue
			}
			s.onAttached(ev)
		}
	}()
	go func() {
		for msg := range detached {
			var ev target.DetachedFromTarget
			if err := json.Unmarshal(msg.Params, &ev); err != nil {
				continue
			}
			s.onDetached(ev)
		}
	}()
}

func (s *Session) onAttached(ev target.AttachedToTarget) {
	proxy := cdpsession.New(s.ctx, ev.SessionID)
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.mu.Unlock()

	t := thread.New(id, proxy, s.Registry, s.Breakpoints)
	if err := s.bringUp(proxy, t); err != nil {
		log.Printf("session: activating thread %d: %v", id, err)
		return
	}
	if err := t.UpdateBreakpoints(proxy.Context()); err != nil {
		log.Printf("session: thread %d: initial breakpoint reconciliation: %v", id, err)
	}
	if err := runtime.NewRunIfWaitingForDebugger().Do(proxy.Context()); err != nil {
		log.Printf("session: thread %d: runIfWaitingForDebugger: %v", id, err)
	}

	s.mu.Lock()
	s.threads[id] = t
	s.mu.Unlock()

	if s.OnThreadStarted != nil {
		s.OnThreadStarted(id)
	}
}

func (s *Session) onDetached(ev target.DetachedFromTarget) {
	s.mu.Lock()
	var removed int = -1
	for id, t := range s.threads {
		if t.Proxy.SessionID() == ev.SessionID {
			removed = id
			delete(s.threads, id)
			break
		}
	}
	s.mu.Unlock()

	if removed >= 0 && s.OnThreadExited != nil {
		s.OnThreadExited(removed)
	}
}

// watchNavigation resets the thread table and file registry on
// Page.loadEventFired: breakpoint intent survives, but resolved
// state does not.
func (s *Session) watchNavigation() {
	root := cdpsession.New(s.ctx, "")
	loaded, err := root.SubscribeEvent("Page.loadEventFired")
	if err != nil {
		log.Printf("session: subscribe loadEventFired: %v", err)
		return
	}
	for range loaded {
		s.mu.Lock()
		defaultThread := s.threads[0]
		var gone []int
		for id := range s.threads {
			if id != 0 {
				gone = append(gone, id)
				delete(s.threads, id)
			}
		}
		s.focused = 0
		s.mu.Unlock()

		if s.OnThreadExited != nil {
			for _, id := range gone {
				s.OnThreadExited(id)
			}
		}

		s.Registry.Reset()
		if defaultThread != nil {
			// The mirror's raw CDP IDs belong to the page that just went
			// away; resolution starts over as the new page's modules load.
			defaultThread.InvalidateResolutions()
			if err := defaultThread.UpdateBreakpoints(s.ctx); err != nil {
				log.Printf("session: post-navigation reconciliation: %v", err)
			}
		}
	}
}

// Deactivate disables the Debugger and Runtime domains on every thread (Page
// and Console stay enabled) and tears down the thread table, without
// closing the underlying transport so a session can be reactivated against
// a new target afterward.
func (s *Session) Deactivate() error {
	s.mu.Lock()
	threads := make([]*thread.Thread, 0, len(s.threads))
	for _, t := range s.threads {
		threads = append(threads, t)
	}
	s.threads = map[int]*thread.Thread{}
	s.mu.Unlock()

	var firstErr error
	for _, t := range threads {
		if err := debugger.NewDisable().Do(t.Proxy.Context()); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("session: Debugger.disable: %w", err)
		}
		if err := runtime.NewDisable().Do(t.Proxy.Context()); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("session: Runtime.disable: %w", err)
		}
	}
	if s.OnTerminated != nil {
		s.OnTerminated()
	}
	return firstErr
}

// JumpToPage navigates the default thread's target to url.
func (s *Session) JumpToPage(url string) error {
	t, err := s.threadByID(nil)
	if err != nil {
		return err
	}
	if _, err := page.NewNavigate(url).Do(t.Proxy.Context()); err != nil {
		return fmt.Errorf("session: Page.navigate: %w", err)
	}
	return nil
}

// SetFocusedThread selects which thread subsequent omitted-threadId
// commands target.
func (s *Session) SetFocusedThread(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.threads[id]; !ok {
		return fmt.Errorf("session: no such thread %d", id)
	}
	s.focused = id
	return nil
}

// GetThreadList returns every live thread, in ascending ID order.
func (s *Session) GetThreadList() []ThreadInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ThreadInfo, 0, len(s.threads))
	for id, t := range s.threads {
		out = append(out, ThreadInfo{ID: id, State: t.State(), Focused: id == s.focused})
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].ID < out[j-1].ID; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// threadByID returns the thread named by id, or the focused thread when id
// is nil; every command's threadId parameter is optional.
func (s *Session) threadByID(id *int) (*thread.Thread, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	target := s.focused
	if id != nil {
		target = *id
	}
	t, ok := s.threads[target]
	if !ok {
		return nil, fmt.Errorf("session: no such thread %d", target)
	}
	return t, nil
}
