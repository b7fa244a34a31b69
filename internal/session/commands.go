package session

import (
	"log"
	"strconv"
	"strings"

	"github.com/daabr/wasmdbg/internal/breakpoint"
	"github.com/daabr/wasmdbg/internal/symbols"
	"github.com/daabr/wasmdbg/internal/thread"
)

// StackFrame is a remapped Frame: the same data thread.Frame carries, with
// File passed through the session's optional serverRoot->webRoot rewrite.
type StackFrame struct {
	Index        int
	FunctionName string
	File         string
	Line         int
}

// GetStackFrames returns the named thread's (or the focused thread's, if
// threadID is nil) last-pause snapshot, after the serverRoot->webRoot remap.
func (s *Session) GetStackFrames(threadID *int) ([]StackFrame, error) {
	t, err := s.threadByID(threadID)
	if err != nil {
		return nil, err
	}
	frames := t.GetStackFrames()
	out := make([]StackFrame, len(frames))
	for i, f := range frames {
		out[i] = StackFrame{Index: f.Index, FunctionName: f.FunctionName, File: s.remap(f.File), Line: f.Line}
	}
	return out, nil
}

// SetFocusedFrame selects which stack frame subsequent inspection commands
// target, on the named (or focused) thread.
func (s *Session) SetFocusedFrame(threadID *int, index int) error {
	t, err := s.threadByID(threadID)
	if err != nil {
		return err
	}
	return t.SetFocusedFrame(index)
}

// ListVariable delegates to the named thread's focused frame.
func (s *Session) ListVariable(threadID *int, groupID int) ([]symbols.Variable, error) {
	t, err := s.threadByID(threadID)
	if err != nil {
		return nil, err
	}
	return t.ListVariable(groupID)
}

// ListGlobalVariable delegates to the named thread.
func (s *Session) ListGlobalVariable(threadID *int, groupID int) ([]symbols.Variable, error) {
	t, err := s.threadByID(threadID)
	if err != nil {
		return nil, err
	}
	return t.ListGlobalVariable(groupID), nil
}

// DumpVariable evaluates expr on the named thread's focused frame.
func (s *Session) DumpVariable(threadID *int, expr string) (string, error) {
	t, err := s.threadByID(threadID)
	if err != nil {
		return "", err
	}
	return t.DumpVariable(t.Proxy.Context(), expr)
}

// Continue, StepOver, StepInto, and StepOut issue the corresponding
// workflow command on the named (or focused) thread.
func (s *Session) Continue(threadID *int) error {
	t, err := s.threadByID(threadID)
	if err != nil {
		return err
	}
	return t.Resume(t.Proxy.Context())
}

func (s *Session) StepOver(threadID *int) error {
	t, err := s.threadByID(threadID)
	if err != nil {
		return err
	}
	return t.StepOver(t.Proxy.Context())
}

func (s *Session) StepInto(threadID *int) error {
	t, err := s.threadByID(threadID)
	if err != nil {
		return err
	}
	return t.StepInto(t.Proxy.Context())
}

func (s *Session) StepOut(threadID *int) error {
	t, err := s.threadByID(threadID)
	if err != nil {
		return err
	}
	return t.StepOut(t.Proxy.Context())
}

// SetBreakPoint inserts a breakpoint request into the shared registry and
// reconciles it on every live thread, so each one resolves the new intent
// against whatever modules it has loaded.
func (s *Session) SetBreakPoint(file string, line, column int) (int, error) {
	id := s.Breakpoints.Insert(file, line, column)
	s.reconcileAll()
	return id, nil
}

// RemoveBreakPoint removes one breakpoint by ID and reconciles every
// thread, which issues the matching CDP `removeBreakpoint` for any thread
// that had resolved it.
func (s *Session) RemoveBreakPoint(id int) error {
	s.Breakpoints.Remove(id)
	s.reconcileAll()
	return nil
}

// RemoveAllBreakPoints removes every breakpoint request naming path.
func (s *Session) RemoveAllBreakPoints(path string) error {
	s.Breakpoints.RemoveAllForFile(path)
	s.reconcileAll()
	return nil
}

// GetBreakPointsList returns every breakpoint request at location, which is
// either a bare file path or a "file:line" pair.
func (s *Session) GetBreakPointsList(location string) []breakpoint.Request {
	path := location
	line := 0
	if i := strings.LastIndexByte(location, ':'); i >= 0 {
		if n, err := strconv.Atoi(location[i+1:]); err == nil {
			path, line = location[:i], n
		}
	}
	reqs := s.Breakpoints.ForFile(path)
	if line == 0 {
		return reqs
	}
	out := reqs[:0:0]
	for _, req := range reqs {
		if req.Line == line {
			out = append(out, req)
		}
	}
	return out
}

func (s *Session) reconcileAll() {
	s.mu.Lock()
	threads := make([]*thread.Thread, 0, len(s.threads))
	for _, t := range s.threads {
		threads = append(threads, t)
	}
	s.mu.Unlock()

	for _, t := range threads {
		if err := t.UpdateBreakpoints(t.Proxy.Context()); err != nil {
			log.Printf("session: reconciling thread %d: %v", t.ID, err)
		}
	}
}
