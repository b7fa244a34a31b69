package session

import (
	"context"
	"testing"

	"github.com/daabr/wasmdbg/internal/cdpsession"
	"github.com/daabr/wasmdbg/internal/thread"
)

func newTestSession() *Session {
	return New(context.Background())
}

// addTestThread installs a bare thread directly into the table, bypassing
// Activate/bringUp (which require a live CDP transport).
func (s *Session) addTestThread(id int) *thread.Thread {
	proxy := cdpsession.New(context.Background(), "")
	t := thread.New(id, proxy, s.Registry, s.Breakpoints)
	s.mu.Lock()
	s.threads[id] = t
	if id+1 > s.nextID {
		s.nextID = id + 1
	}
	s.mu.Unlock()
	return t
}

func TestRemapRewritesServerRootPrefix(t *testing.T) {
	s := newTestSession()
	s.SetPathRemap("/srv/build", "http://localhost:8080")

	got := s.remap("/srv/build/src/main.c")
	if got != "http://localhost:8080/src/main.c" {
		t.Fatalf("remap() = %q, want rewritten path", got)
	}
}

func TestRemapLeavesUnrelatedPathsAlone(t *testing.T) {
	s := newTestSession()
	s.SetPathRemap("/srv/build", "http://localhost:8080")

	got := s.remap("/other/place/file.c")
	if got != "/other/place/file.c" {
		t.Fatalf("remap() = %q, want unchanged path", got)
	}
}

func TestRemapIsNoOpWhenUnconfigured(t *testing.T) {
	s := newTestSession()
	if got := s.remap("/srv/build/src/main.c"); got != "/srv/build/src/main.c" {
		t.Fatalf("remap() = %q, want unchanged path with no remap configured", got)
	}
}

func TestThreadByIDDefaultsToFocused(t *testing.T) {
	s := newTestSession()
	s.addTestThread(0)
	second := s.addTestThread(1)
	s.focused = 1

	got, err := s.threadByID(nil)
	if err != nil {
		t.Fatalf("threadByID(nil): %v", err)
	}
	if got != second {
		t.Fatalf("threadByID(nil) = thread %d, want the focused thread %d", got.ID, second.ID)
	}
}

func TestThreadByIDHonorsExplicitID(t *testing.T) {
	s := newTestSession()
	first := s.addTestThread(0)
	s.addTestThread(1)
	s.focused = 1

	id := 0
	got, err := s.threadByID(&id)
	if err != nil {
		t.Fatalf("threadByID(&0): %v", err)
	}
	if got != first {
		t.Fatalf("threadByID(&0) = thread %d, want thread 0", got.ID)
	}
}

func TestThreadByIDRejectsUnknownID(t *testing.T) {
	s := newTestSession()
	s.addTestThread(0)

	id := 7
	if _, err := s.threadByID(&id); err == nil {
		t.Fatal("threadByID(&7): want error for unknown thread, got nil")
	}
}

func TestSetFocusedThreadValidatesExistence(t *testing.T) {
	s := newTestSession()
	s.addTestThread(0)
	s.addTestThread(2)

	if err := s.SetFocusedThread(2); err != nil {
		t.Fatalf("SetFocusedThread(2): %v", err)
	}
	if s.focused != 2 {
		t.Fatalf("focused = %d, want 2", s.focused)
	}
	if err := s.SetFocusedThread(99); err == nil {
		t.Fatal("SetFocusedThread(99): want error for unknown thread, got nil")
	}
}

func TestGetThreadListIsSortedByID(t *testing.T) {
	s := newTestSession()
	s.addTestThread(3)
	s.addTestThread(0)
	s.addTestThread(1)
	s.focused = 1

	list := s.GetThreadList()
	if len(list) != 3 {
		t.Fatalf("GetThreadList() returned %d entries, want 3", len(list))
	}
	for i, want := range []int{0, 1, 3} {
		if list[i].ID != want {
			t.Fatalf("GetThreadList()[%d].ID = %d, want %d", i, list[i].ID, want)
		}
	}
	if !list[1].Focused {
		t.Fatal("GetThreadList(): thread 1 should be marked focused")
	}
}

func TestGetBreakPointsListDelegatesToRegistry(t *testing.T) {
	s := newTestSession()
	s.Breakpoints.Insert("main.c", 10, 0)
	s.Breakpoints.Insert("other.c", 5, 0)

	got := s.GetBreakPointsList("main.c")
	if len(got) != 1 || got[0].Line != 10 {
		t.Fatalf("GetBreakPointsList(main.c) = %+v, want one entry at line 10", got)
	}
}

func TestGetBreakPointsListFiltersByLine(t *testing.T) {
	s := newTestSession()
	s.Breakpoints.Insert("main.c", 4, 0)
	s.Breakpoints.Insert("main.c", 9, 0)

	got := s.GetBreakPointsList("main.c:4")
	if len(got) != 1 || got[0].Line != 4 {
		t.Fatalf("GetBreakPointsList(main.c:4) = %+v, want only the line-4 entry", got)
	}
	if all := s.GetBreakPointsList("main.c"); len(all) != 2 {
		t.Fatalf("GetBreakPointsList(main.c) = %+v, want both entries", all)
	}
}

func TestSetBreakPointInsertsIntoSharedRegistry(t *testing.T) {
	s := newTestSession()
	id, err := s.SetBreakPoint("main.c", 20, 0)
	if err != nil {
		t.Fatalf("SetBreakPoint: %v", err)
	}
	req, ok := s.Breakpoints.Get(id)
	if !ok || req.Line != 20 {
		t.Fatalf("Breakpoints.Get(%d) = %+v, %v, want a request at line 20", id, req, ok)
	}
}

func TestListGlobalVariableRejectsUnknownThread(t *testing.T) {
	s := newTestSession()
	id := 42
	if _, err := s.ListGlobalVariable(&id, 0); err == nil {
		t.Fatal("ListGlobalVariable: want error for unknown thread, got nil")
	}
}
