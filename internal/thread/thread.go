// Package thread implements the per-CDP-session debugger state machine:
// one Thread per attached target, holding the Running/Paused state,
// a mirror of the breakpoint registry with per-thread resolved raw IDs, the
// last-pause stack-frame snapshot, and the CDP event subscriptions that
// drive it all.
package thread

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/daabr/wasmdbg/internal/breakpoint"
	"github.com/daabr/wasmdbg/internal/cdpsession"
	"github.com/daabr/wasmdbg/internal/symbols"
	"github.com/daabr/wasmdbg/internal/valuestore"
	"github.com/daabr/wasmdbg/pkg/devtools/debugger"
)

// State is a Thread's coarse execution state.
type State int

const (
	Running State = iota
	Paused
)

func (s State) String() string {
	if s == Paused {
		return "paused"
	}
	return "running"
}

// mirrorEntry is a ResolvedBreakpoint: a BreakpointRequest as mirrored by
// one Thread, plus that thread's own raw CDP breakpoint ID once verified.
type mirrorEntry struct {
	breakpoint.Request
	rawID    string
	verified bool
}

// Frame is one resolved stack entry, built on pause.
type Frame struct {
	Index        int
	FunctionName string
	File         string
	Line         int
	Instruction  symbols.Address // CDP columnNumber

	raw         debugger.CallFrame
	snapshot    *symbols.Snapshot // nil until lazily built
	snapshotErr error
	built       bool
}

// Thread is one CDP execution session: the main page (ID 0) or an attached
// worker.
//
// The engine behaves like a single-threaded cooperative executor: no core
// datum is ever touched by two concurrent tasks. In Go, the CDP event
// watchers (scriptParsed/paused/resumed, one goroutine each so that each
// event stream keeps arrival order without serializing unrelated threads
// against each other; see internal/session.watchThread) and a command
// dispatched from the front end can all reach the same Thread at once, so
// mu stands in for that single executor: every entry point below (each
// Handle* event callback, every workflow/inspection/breakpoint command)
// holds mu for its whole duration, including any CDP round trips it makes,
// so at most one of them is ever touching this Thread's state at a time.
// Internal helpers (buildFrames, focusedFrame, containerFor, snapshotFor,
// readMemory, the *Locked breakpoint helpers) assume the caller already
// holds mu and never (re-)lock it themselves, since sync.Mutex isn't
// reentrant.
type Thread struct {
	ID          int
	Proxy       *cdpsession.Proxy
	Registry    *symbols.Registry
	Breakpoints *breakpoint.Registry

	mu sync.Mutex

	state   State
	frames  []Frame
	focused int // index into frames

	mirror map[int]*mirrorEntry // keyed by breakpoint.Request.ID

	lastNotifiedFile string
	lastNotifiedLine int
	stepInProgress   bool
	lastStep         stepKind

	mem *MemoryEvaluator

	// scriptParsedDone is the in-flight scriptParsed handler's completion
	// handle: a paused event triggered while scriptParsed handling is
	// still in flight must await that completion before transitioning to
	// Paused. nil when no scriptParsed handler is currently running; set
	// by beginScriptParsed and closed by the returned finish func.
	scriptParsedDone chan struct{}

	onBreakpointChanged func(breakpoint.Request, bool)
	onOutput            func(string)
}

// New constructs a Thread bound to proxy, sharing the session's file and
// breakpoint registries.
func New(id int, proxy *cdpsession.Proxy, registry *symbols.Registry, breakpoints *breakpoint.Registry) *Thread {
	return &Thread{
		ID:          id,
		Proxy:       proxy,
		Registry:    registry,
		Breakpoints: breakpoints,
		state:       Running,
		mirror:      map[int]*mirrorEntry{},
	}
}

// State returns the thread's current coarse state.
func (t *Thread) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// OnBreakpointChanged registers the callback invoked when a mirrored entry
// transitions to verified.
func (t *Thread) OnBreakpointChanged(f func(breakpoint.Request, bool)) { t.onBreakpointChanged = f }

// OnOutput registers the callback invoked for console pass-through
// output (the debuggee's stdout/stderr).
func (t *Thread) OnOutput(f func(string)) { t.onOutput = f }

// beginScriptParsed records a fresh completion handle for an in-flight
// scriptParsed handler and returns the func that closes it. Paired with
// awaitScriptParsed on the instrumentation-pause path.
func (t *Thread) beginScriptParsed() func() {
	t.mu.Lock()
	done := make(chan struct{})
	t.scriptParsedDone = done
	t.mu.Unlock()
	return func() {
		t.mu.Lock()
		t.scriptParsedDone = nil
		t.mu.Unlock()
		close(done)
	}
}

// awaitScriptParsed blocks until any scriptParsed handler in flight at
// the moment of the call has finished. A no-op if none is in flight.
func (t *Thread) awaitScriptParsed() {
	t.mu.Lock()
	done := t.scriptParsedDone
	t.mu.Unlock()
	if done != nil {
		<-done
	}
}

// HandleScriptParsed processes a Debugger.scriptParsed event: for a
// WebAssembly script it fetches the bytecode and registers the module;
// for anything else it registers a synthetic non-WASM file entry so stack
// frames still display sensibly.
func (t *Thread) HandleScriptParsed(ctx context.Context, ev debugger.ScriptParsed) error {
	finish := t.beginScriptParsed()
	t.mu.Lock()
	defer finish()
	defer t.mu.Unlock()

	if ev.ScriptLanguage == nil || *ev.ScriptLanguage != debugger.ScriptLanguageWebAssembly {
		t.Registry.LoadNonWASM(ev.ScriptID, ev.URL)
		return nil
	}

	result, err := debugger.NewGetScriptSource(ev.ScriptID).Do(ctx)
	if err != nil {
		return fmt.Errorf("%w: getScriptSource(%s): %v", ErrCDPTransport, ev.ScriptID, err)
	}
	raw, err := base64.StdEncoding.DecodeString(result.Bytecode)
	if err != nil {
		return fmt.Errorf("%w: decoding wasm bytecode: %v", symbols.ErrModuleParse, err)
	}
	if _, err := t.Registry.Load(ev.ScriptID, ev.URL, raw); err != nil {
		log.Printf("thread %d: %s: %v", t.ID, symbols.ErrModuleParse, err)
	}
	return t.updateBreakpointsLocked(ctx)
}

// HandlePaused processes a Debugger.paused event: an instrumentation
// pause or a "Break on start" pause resumes
// immediately without surfacing to the user; a step pause that lands on
// the same source line as the last notification is silently re-issued;
// anything else transitions the thread to Paused and returns true.
func (t *Thread) HandlePaused(ctx context.Context, ev debugger.Paused) (bool, error) {
	if ev.Reason == "instrumentation" {
		// This pause must await any scriptParsed handling already in
		// flight before doing anything else, so a breakpoint set before
		// the module loaded is reconciled before the debuggee's first
		// instruction of that module runs.
		t.awaitScriptParsed()
		t.mu.Lock()
		defer t.mu.Unlock()
		if err := t.updateBreakpointsLocked(ctx); err != nil {
			log.Printf("thread %d: breakpoint reconciliation failed: %v", t.ID, err)
		}
		return false, t.resume(ctx)
	}
	if ev.Reason == "Break on start" {
		t.mu.Lock()
		defer t.mu.Unlock()
		return false, t.resume(ctx)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.buildFrames(ev.CallFrames)

	if t.stepInProgress && len(t.frames) > 0 {
		top := t.frames[0]
		if top.File == t.lastNotifiedFile && top.Line == t.lastNotifiedLine {
			return false, t.reissueStep(ctx)
		}
	}

	t.stepInProgress = false
	t.state = Paused
	t.focused = 0
	if len(t.frames) > 0 {
		t.lastNotifiedFile = t.frames[0].File
		t.lastNotifiedLine = t.frames[0].Line
	}
	t.mem = NewMemoryEvaluator(t.readMemory)
	return true, nil
}

// HandleResumed processes a Debugger.resumed event: the thread returns to
// Running and discards its paused-state memory cache.
func (t *Thread) HandleResumed() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = Running
	t.frames = nil
	t.mem = nil
}

// buildFrames resolves each CDP call frame's location through the
// registry into the last-pause snapshot list. Callers must hold t.mu.
func (t *Thread) buildFrames(raw []debugger.CallFrame) {
	frames := make([]Frame, 0, len(raw))
	for i, cf := range raw {
		file, line, ok := t.Registry.FindFileFromLocation(cf.Location.ScriptID, int(cf.Location.LineNumber), int(cf.Location.ColumnNumber))
		if !ok {
			file, line = cf.URL, int(cf.Location.LineNumber)+1
		}
		frames = append(frames, Frame{
			Index:        i,
			FunctionName: cf.FunctionName,
			File:         file,
			Line:         line,
			Instruction:  symbols.Address(cf.Location.ColumnNumber),
			raw:          cf,
		})
	}
	t.frames = frames
}

// GetStackFrames returns the last-pause snapshot.
func (t *Thread) GetStackFrames() []Frame {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Frame, len(t.frames))
	copy(out, t.frames)
	return out
}

// SetFocusedFrame selects which frame subsequent variable/evaluation
// commands target.
func (t *Thread) SetFocusedFrame(index int) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if index < 0 || index >= len(t.frames) {
		return fmt.Errorf("%w: frame index %d out of range", ErrProtocolViolation, index)
	}
	t.focused = index
	return nil
}

// ListVariable delegates to the focused frame's container at its
// instruction, optionally filtered to a single variable group.
func (t *Thread) ListVariable(groupID int) ([]symbols.Variable, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	frame, err := t.focusedFrame()
	if err != nil {
		return nil, err
	}
	container, ok := t.containerFor(frame)
	if !ok {
		return nil, nil
	}
	return container.VariablesAt(frame.Instruction, groupID), nil
}

// ListGlobalVariable returns global variables across every loaded module,
// or a group's members when groupID is non-zero.
func (t *Thread) ListGlobalVariable(groupID int) []symbols.Variable {
	t.mu.Lock()
	defer t.mu.Unlock()
	if groupID != 0 {
		frame, err := t.focusedFrame()
		if err == nil {
			if container, ok := t.containerFor(frame); ok {
				return container.GlobalVariables(groupID)
			}
		}
	}
	var out []symbols.Variable
	for _, id := range t.Registry.ScriptIDs() {
		file, ok := t.Registry.File(id)
		if !ok || file.Container == nil {
			continue
		}
		out = append(out, file.Container.GlobalVariables(0)...)
	}
	return out
}

// DumpVariable evaluates expr at the focused frame, building its typed
// value store lazily on first use.
func (t *Thread) DumpVariable(ctx context.Context, expr string) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	frame, err := t.focusedFrame()
	if err != nil {
		return "", err
	}
	container, ok := t.containerFor(frame)
	if !ok {
		return "<failure>", fmt.Errorf("%w: no symbols for current frame", symbols.ErrEvaluationFailure)
	}
	snap, err := t.snapshotFor(ctx, t.focused)
	if err != nil {
		return "<failure>", err
	}
	return container.Evaluate(expr, snap, frame.Instruction, t.mem)
}

// focusedFrame returns the currently focused frame. Callers must hold t.mu.
func (t *Thread) focusedFrame() (*Frame, error) {
	if t.state != Paused || len(t.frames) == 0 {
		return nil, fmt.Errorf("%w: thread %d is not paused", ErrProtocolViolation, t.ID)
	}
	if t.focused < 0 || t.focused >= len(t.frames) {
		return nil, fmt.Errorf("%w: focused frame %d out of range", ErrProtocolViolation, t.focused)
	}
	return &t.frames[t.focused], nil
}

// containerFor returns the DWARF container backing frame, if any. Callers
// must hold t.mu.
func (t *Thread) containerFor(frame *Frame) (*symbols.Container, bool) {
	file, ok := t.Registry.File(frame.raw.Location.ScriptID)
	if !ok || file.Container == nil {
		return nil, false
	}
	return file.Container, true
}

// snapshotFor builds (once, memoized) frame i's typed value store by
// reading its CDP scope chain. Callers must hold t.mu.
func (t *Thread) snapshotFor(ctx context.Context, i int) (symbols.Snapshot, error) {
	frame := &t.frames[i]
	if frame.built {
		if frame.snapshotErr != nil {
			return symbols.Snapshot{}, frame.snapshotErr
		}
		return *frame.snapshot, nil
	}

	var stackObjID, localsObjID, globalsObjID string
	for _, scope := range frame.raw.ScopeChain {
		switch scope.Type {
		case "wasm-expression-stack":
			stackObjID = scope.Object.ObjectID
		case "local":
			localsObjID = scope.Object.ObjectID
		case "global":
			globalsObjID = scope.Object.ObjectID
		}
	}

	snap, err := valuestore.BuildSnapshot(ctx, valuestore.LiveGetter, stackObjID, localsObjID, globalsObjID)
	frame.built = true
	if err != nil {
		frame.snapshotErr = err
		return symbols.Snapshot{}, err
	}
	frame.snapshot = &snap
	return snap, nil
}

// readMemory reads one linear-memory slice via CDP:
// evaluateOnCallFrame `Array.from(new Uint8Array(memories[0].buffer).subarray(a,b))`
// with returnByValue, on the focused call frame. Callers must hold t.mu
// (it is invoked synchronously from within the DWARF evaluator while
// DumpVariable holds the lock).
func (t *Thread) readMemory(address uint64, byteSize int) ([]byte, error) {
	frame, err := t.focusedFrame()
	if err != nil {
		return nil, err
	}
	expr := fmt.Sprintf("Array.from(new Uint8Array(memories[0].buffer).subarray(%d,%d))", address, address+uint64(byteSize))
	cmd := debugger.NewEvaluateOnCallFrame(frame.raw.CallFrameID, expr)
	cmd.SetReturnByValue(true)
	result, err := cmd.Do(t.Proxy.Context())
	if err != nil {
		return nil, fmt.Errorf("%w: evaluateOnCallFrame: %v", ErrCDPTransport, err)
	}
	if result.ExceptionDetails != nil {
		return nil, fmt.Errorf("%w: evaluateOnCallFrame raised an exception", ErrCDPTransport)
	}
	var bytes []int
	if err := json.Unmarshal(result.Result.Value, &bytes); err != nil {
		return nil, fmt.Errorf("%w: decoding memory slice: %v", ErrProtocolViolation, err)
	}
	out := make([]byte, len(bytes))
	for i, b := range bytes {
		out[i] = byte(b)
	}
	return out, nil
}
