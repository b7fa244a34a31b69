package thread

import (
	"testing"

	"github.com/daabr/wasmdbg/internal/breakpoint"
	"github.com/daabr/wasmdbg/internal/symbols"
	"github.com/daabr/wasmdbg/pkg/devtools/debugger"
)

func newTestThread() *Thread {
	return New(0, nil, symbols.NewRegistry(), breakpoint.NewRegistry())
}

func TestStateString(t *testing.T) {
	if Running.String() != "running" || Paused.String() != "paused" {
		t.Fatalf("State.String() mismatch: %q %q", Running, Paused)
	}
}

func TestBuildFramesFallsBackToSyntheticLocationForUnregisteredScript(t *testing.T) {
	th := newTestThread()
	th.buildFrames([]debugger.CallFrame{
		{
			CallFrameID:  "frame-0",
			FunctionName: "main",
			URL:          "http://example.com/app.js",
			Location:     debugger.Location{ScriptID: "unknown-script", LineNumber: 4, ColumnNumber: 10},
		},
	})
	if len(th.frames) != 1 {
		t.Fatalf("buildFrames() produced %d frames, want 1", len(th.frames))
	}
	got := th.frames[0]
	if got.File != "http://example.com/app.js" || got.Line != 5 {
		t.Fatalf("buildFrames() fallback = %+v, want file=URL line=LineNumber+1", got)
	}
}

func TestBuildFramesResolvesThroughRegistry(t *testing.T) {
	th := newTestThread()
	th.Registry.LoadNonWASM("script-1", "http://example.com/app.js")
	th.buildFrames([]debugger.CallFrame{
		{FunctionName: "main", URL: "http://example.com/app.js", Location: debugger.Location{ScriptID: "script-1", LineNumber: 2}},
	})
	if th.frames[0].Line != 3 {
		t.Fatalf("frame line = %d, want 3 (LineNumber+1 for non-WASM file)", th.frames[0].Line)
	}
}

func TestFocusedFrameRejectsWhenRunning(t *testing.T) {
	th := newTestThread()
	if _, err := th.focusedFrame(); err == nil {
		t.Fatal("focusedFrame() on a running thread: want error, got nil")
	}
}

func TestSetFocusedFrameValidatesIndex(t *testing.T) {
	th := newTestThread()
	th.frames = []Frame{{Index: 0}, {Index: 1}}
	if err := th.SetFocusedFrame(1); err != nil {
		t.Fatalf("SetFocusedFrame(1): %v", err)
	}
	if err := th.SetFocusedFrame(5); err == nil {
		t.Fatal("SetFocusedFrame(5): want error for out-of-range index")
	}
}

func TestInvalidateResolutionsClearsVerification(t *testing.T) {
	th := newTestThread()
	id := th.Breakpoints.Insert("main.c", 4, 0)
	req, _ := th.Breakpoints.Get(id)
	th.mirror[id] = &mirrorEntry{Request: req, rawID: "raw-1", verified: true}

	th.InvalidateResolutions()

	entry := th.mirror[id]
	if entry.verified || entry.rawID != "" {
		t.Fatalf("InvalidateResolutions left entry %+v, want unverified with no raw ID", entry)
	}
}

func TestHandleResumedClearsPausedState(t *testing.T) {
	th := newTestThread()
	th.state = Paused
	th.frames = []Frame{{Index: 0}}
	th.mem = NewMemoryEvaluator(nil)

	th.HandleResumed()

	if th.state != Running || th.frames != nil || th.mem != nil {
		t.Fatalf("HandleResumed() left state=%v frames=%v mem=%v", th.state, th.frames, th.mem)
	}
}
