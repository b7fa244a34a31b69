package thread

import (
	"context"
	"fmt"

	"github.com/daabr/wasmdbg/pkg/devtools/debugger"
)

// stepKind records which step command is currently in flight, so a
// same-line re-pause re-issues that exact step rather than
// defaulting to step-over.
type stepKind int

const (
	stepNone stepKind = iota
	stepOver
	stepInto
	stepOut
)

// UpdateBreakpoints reconciles this thread's mirror of the shared
// breakpoint registry against CDP in three steps. It
// runs after every module load and after every instrumentation pause,
// since either can be what makes a previously unresolvable file available.
func (t *Thread) UpdateBreakpoints(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.updateBreakpointsLocked(ctx)
}

// updateBreakpointsLocked is UpdateBreakpoints' implementation. Callers
// must already hold t.mu: HandleScriptParsed and HandlePaused's
// instrumentation branch call this directly, since they hold the lock for
// the rest of their own work and a second Lock() would deadlock.
//
//  1. adopt every registry entry this thread hasn't seen yet, unverified;
//  2. drop mirror entries whose registry request no longer exists,
//     removing their live CDP breakpoint first;
//  3. resolve every unverified entry whose file is now loaded, and notify
//     on each newly verified breakpoint.
func (t *Thread) updateBreakpointsLocked(ctx context.Context) error {
	live := map[int]struct{}{}
	for _, req := range t.Breakpoints.List() {
		live[req.ID] = struct{}{}
		if _, ok := t.mirror[req.ID]; !ok {
			t.mirror[req.ID] = &mirrorEntry{Request: req}
		}
	}

	for id, entry := range t.mirror {
		if _, ok := live[id]; ok {
			continue
		}
		if entry.verified {
			if err := debugger.NewRemoveBreakpoint(entry.rawID).Do(ctx); err != nil {
				return fmt.Errorf("%w: removeBreakpoint(%s): %v", ErrCDPTransport, entry.rawID, err)
			}
		}
		delete(t.mirror, id)
	}

	var firstErr error
	for _, entry := range t.mirror {
		if entry.verified {
			continue
		}
		scriptID, addr, ok := t.Registry.FindAddressFromFileLocation(entry.File, entry.Line)
		if !ok {
			continue
		}
		result, err := debugger.NewSetBreakpoint(debugger.Location{
			ScriptID:     scriptID,
			ColumnNumber: int64(addr),
		}).Do(ctx)
		if err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("%w: setBreakpoint(%s:%d): %v", ErrCDPTransport, entry.File, entry.Line, err)
			}
			continue
		}
		entry.rawID = result.BreakpointID
		entry.verified = true
		// Normalize the stored (file,line) to the container's canonical
		// form: the line the address actually maps back to, under DWARF's
		// own path spelling.
		if file, line, ok := t.Registry.FindFileFromLocation(scriptID, 0, int(addr)); ok {
			entry.File = file
			entry.Line = line
		}
		if t.onBreakpointChanged != nil {
			t.onBreakpointChanged(entry.Request, true)
		}
	}
	return firstErr
}

// InvalidateResolutions marks every mirrored breakpoint unverified and
// forgets its raw CDP ID. Called on page navigation: the raw IDs belong to
// the previous page's scripts, so the next reconciliation must resolve
// every entry from scratch once the new page's modules load.
func (t *Thread) InvalidateResolutions() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, entry := range t.mirror {
		entry.rawID = ""
		entry.verified = false
	}
}

// resume issues Debugger.resume; the thread's state transitions to Running
// once the corresponding Debugger.resumed event arrives (HandleResumed).
// Callers must hold t.mu (or, as in HandlePaused's early-return branches,
// not yet have mutated any state the lock protects).
func (t *Thread) resume(ctx context.Context) error {
	if err := debugger.NewResume().Do(ctx); err != nil {
		return fmt.Errorf("%w: resume: %v", ErrCDPTransport, err)
	}
	return nil
}

// Resume issues a user-requested continue.
func (t *Thread) Resume(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stepInProgress = false
	t.lastStep = stepNone
	return t.resume(ctx)
}

// StepOver, StepInto, and StepOut issue the corresponding CDP step command
// and arm step de-duplication: a pause landing back on the same source
// line is silently re-issued as the same step, since a single
// source line commonly spans several WebAssembly instructions.
func (t *Thread) StepOver(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stepInProgress = true
	t.lastStep = stepOver
	if err := debugger.NewStepOver().Do(ctx); err != nil {
		return fmt.Errorf("%w: stepOver: %v", ErrCDPTransport, err)
	}
	return nil
}

func (t *Thread) StepInto(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stepInProgress = true
	t.lastStep = stepInto
	if err := debugger.NewStepInto().Do(ctx); err != nil {
		return fmt.Errorf("%w: stepInto: %v", ErrCDPTransport, err)
	}
	return nil
}

func (t *Thread) StepOut(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stepInProgress = true
	t.lastStep = stepOut
	if err := debugger.NewStepOut().Do(ctx); err != nil {
		return fmt.Errorf("%w: stepOut: %v", ErrCDPTransport, err)
	}
	return nil
}

// reissueStep repeats whichever step command is currently in progress,
// used when a pause lands on the same line as the one last reported to
// the user: re-issuing anything other than the original step would
// silently change what the user asked for (e.g. downgrading a step-into
// to a step-over). Callers must hold t.mu.
func (t *Thread) reissueStep(ctx context.Context) error {
	var err error
	switch t.lastStep {
	case stepInto:
		err = debugger.NewStepInto().Do(ctx)
	case stepOut:
		err = debugger.NewStepOut().Do(ctx)
	default:
		err = debugger.NewStepOver().Do(ctx)
	}
	if err != nil {
		return fmt.Errorf("%w: re-issuing step: %v", ErrCDPTransport, err)
	}
	return nil
}
