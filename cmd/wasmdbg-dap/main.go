// The wasmdbg-dap program is a thin Debug Adapter Protocol (DAP) server
// shell around internal/session.Session, translating the uniform command
// surface into DAP requests/responses/events. The adapter is a thin shell:
// all debugger logic lives in the engine packages it drives.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net"
	"path/filepath"
	"sync"

	"github.com/google/go-dap"

	"github.com/daabr/wasmdbg/internal/breakpoint"
	"github.com/daabr/wasmdbg/internal/session"
	"github.com/daabr/wasmdbg/internal/symbols"
	"github.com/daabr/wasmdbg/pkg/devtools"
)

func main() {
	listen := flag.String("listen", "127.0.0.1:4711", "address to listen for one DAP client connection")
	flag.Parse()

	ln, err := net.Listen("tcp", *listen)
	if err != nil {
		log.Fatalf("wasmdbg-dap: listen: %v", err)
	}
	log.Printf("wasmdbg-dap: listening on %s", *listen)

	for {
		conn, err := ln.Accept()
		if err != nil {
			log.Fatalf("wasmdbg-dap: accept: %v", err)
		}
		handleConn(conn)
	}
}

// Each variablesReference and frame Id DAP hands back is a single int, but
// our session needs (threadID, frame index) or (threadID, scope kind,
// group ID). These constants pack that context into the int DAP round-trips
// for us, so the adapter stays stateless between requests.
const (
	scopeLocals = iota
	scopeGlobals
	scopeGroup
)

func encodeFrameID(threadID, frameIndex int) int      { return threadID*1000 + frameIndex }
func decodeFrameID(id int) (threadID, frameIndex int) { return id / 1000, id % 1000 }

func encodeVarRef(threadID, kind, groupID int) int { return threadID*10_000_000 + groupID*4 + kind }
func decodeVarRef(ref int) (threadID, kind, groupID int) {
	kind = ref % 4
	rem := ref / 4
	groupID = rem % 2_500_000
	threadID = rem / 2_500_000
	return
}

// adapter holds the one DAP client connection's state: the output stream
// (serialized, since session event callbacks write from other goroutines
// concurrently with request handling) and the session they drive, once
// launch/attach establishes one.
type adapter struct {
	mu   sync.Mutex
	conn net.Conn
	seq  int

	sess   *session.Session
	cancel context.CancelFunc
}

func handleConn(conn net.Conn) {
	defer conn.Close()
	a := &adapter{conn: conn}
	defer func() {
		if a.cancel != nil {
			a.cancel()
		}
	}()

	reader := bufio.NewReader(conn)
	for {
		msg, err := dap.ReadProtocolMessage(reader)
		if err != nil {
			log.Printf("wasmdbg-dap: connection closed: %v", err)
			return
		}
		a.handleMessage(msg)
	}
}

func (a *adapter) nextSeq() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.seq++
	return a.seq
}

func (a *adapter) send(msg dap.Message) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := dap.WriteProtocolMessage(a.conn, msg); err != nil {
		log.Printf("wasmdbg-dap: write: %v", err)
	}
}

func (a *adapter) response(req dap.Request, success bool, message string) dap.Response {
	return dap.Response{
		ProtocolMessage: dap.ProtocolMessage{Seq: a.nextSeq(), Type: "response"},
		RequestSeq:      req.Seq,
		Success:         success,
		Command:         req.Command,
		Message:         message,
	}
}

func (a *adapter) errorResponse(req dap.Request, err error) {
	a.send(&dap.ErrorResponse{Response: a.response(req, false, err.Error())})
}

func (a *adapter) handleMessage(msg dap.Message) {
	switch req := msg.(type) {
	case *dap.InitializeRequest:
		a.onInitialize(req)
	case *dap.LaunchRequest:
		a.onLaunch(req)
	case *dap.AttachRequest:
		a.onAttach(req)
	case *dap.ConfigurationDoneRequest:
		a.send(&dap.ConfigurationDoneResponse{Response: a.response(req.Request, true, "")})
	case *dap.DisconnectRequest:
		a.onDisconnect(req)
	default:
		a.handleSessionMessage(msg)
	}
}

// handleSessionMessage covers every request that needs a live debug session,
// i.e. everything after launch/attach succeeded.
func (a *adapter) handleSessionMessage(msg dap.Message) {
	if a.sess == nil {
		if req, ok := msg.(dap.RequestMessage); ok {
			a.errorResponse(*req.GetRequest(), fmt.Errorf("no debug session: launch or attach first"))
		}
		return
	}
	switch req := msg.(type) {
	case *dap.SetBreakpointsRequest:
		a.onSetBreakpoints(req)
	case *dap.ThreadsRequest:
		a.onThreads(req)
	case *dap.StackTraceRequest:
		a.onStackTrace(req)
	case *dap.ScopesRequest:
		a.onScopes(req)
	case *dap.VariablesRequest:
		a.onVariables(req)
	case *dap.EvaluateRequest:
		a.onEvaluate(req)
	case *dap.ContinueRequest:
		a.onContinue(req)
	case *dap.NextRequest:
		a.onStep(req.Request, req.Arguments.ThreadId, a.sess.StepOver)
	case *dap.StepInRequest:
		a.onStep(req.Request, req.Arguments.ThreadId, a.sess.StepInto)
	case *dap.StepOutRequest:
		a.onStep(req.Request, req.Arguments.ThreadId, a.sess.StepOut)
	default:
		log.Printf("wasmdbg-dap: unhandled request type %T", msg)
	}
}

func (a *adapter) onInitialize(req *dap.InitializeRequest) {
	a.send(&dap.InitializeResponse{
		Response: a.response(req.Request, true, ""),
		Body: dap.Capabilities{
			SupportsConfigurationDoneRequest: true,
			SupportsEvaluateForHovers:        true,
		},
	})
	a.send(&dap.InitializedEvent{
		Event: dap.Event{ProtocolMessage: dap.ProtocolMessage{Seq: a.nextSeq(), Type: "event"}, Event: "initialized"},
	})
}

// launchArgs is this adapter's own launch/attach configuration: the page
// URL to debug and the optional source path remap, since DAP leaves
// launch/attach arguments entirely adapter-defined.
type launchArgs struct {
	Target     string `json:"target"`
	ServerRoot string `json:"serverRoot"`
	WebRoot    string `json:"webRoot"`
}

func (a *adapter) onLaunch(req *dap.LaunchRequest) {
	var args launchArgs
	if len(req.Arguments) > 0 {
		if err := json.Unmarshal(req.Arguments, &args); err != nil {
			a.errorResponse(req.Request, fmt.Errorf("parsing launch arguments: %w", err))
			return
		}
	}
	if err := a.startSession(args); err != nil {
		a.errorResponse(req.Request, err)
		return
	}
	a.send(&dap.LaunchResponse{Response: a.response(req.Request, true, "")})
}

func (a *adapter) onAttach(req *dap.AttachRequest) {
	var args launchArgs
	if len(req.Arguments) > 0 {
		if err := json.Unmarshal(req.Arguments, &args); err != nil {
			a.errorResponse(req.Request, fmt.Errorf("parsing attach arguments: %w", err))
			return
		}
	}
	if err := a.startSession(args); err != nil {
		a.errorResponse(req.Request, err)
		return
	}
	a.send(&dap.AttachResponse{Response: a.response(req.Request, true, "")})
}

// startSession brings up a fresh CDP browser session and Debug Session,
// wiring every session event to its DAP equivalent.
func (a *adapter) startSession(args launchArgs) error {
	ctx, cancel := context.WithCancel(context.Background())
	dctx, err := devtools.NewContext(ctx)
	if err != nil {
		cancel()
		return fmt.Errorf("starting browser: %w", err)
	}
	a.cancel = cancel

	sess := session.New(dctx)
	if args.ServerRoot != "" || args.WebRoot != "" {
		sess.SetPathRemap(args.ServerRoot, args.WebRoot)
	}

	sess.OnStopped = func(threadID int) {
		a.send(&dap.StoppedEvent{
			Event: dap.Event{ProtocolMessage: dap.ProtocolMessage{Seq: a.nextSeq(), Type: "event"}, Event: "stopped"},
			Body:  dap.StoppedEventBody{Reason: "breakpoint", ThreadId: threadID, AllThreadsStopped: false},
		})
	}
	sess.OnContinued = func(threadID int) {
		a.send(&dap.ContinuedEvent{
			Event: dap.Event{ProtocolMessage: dap.ProtocolMessage{Seq: a.nextSeq(), Type: "event"}, Event: "continued"},
			Body:  dap.ContinuedEventBody{ThreadId: threadID},
		})
	}
	sess.OnTerminated = func() {
		a.send(&dap.TerminatedEvent{
			Event: dap.Event{ProtocolMessage: dap.ProtocolMessage{Seq: a.nextSeq(), Type: "event"}, Event: "terminated"},
		})
	}
	sess.OnOutput = func(threadID int, text string) {
		a.send(&dap.OutputEvent{
			Event: dap.Event{ProtocolMessage: dap.ProtocolMessage{Seq: a.nextSeq(), Type: "event"}, Event: "output"},
			Body:  dap.OutputEventBody{Category: "stdout", Output: text + "\n"},
		})
	}
	sess.OnBreakpointChanged = func(req breakpoint.Request, verified bool) {
		a.send(&dap.BreakpointEvent{
			Event: dap.Event{ProtocolMessage: dap.ProtocolMessage{Seq: a.nextSeq(), Type: "event"}, Event: "breakpoint"},
			Body: dap.BreakpointEventBody{
				Reason: "changed",
				Breakpoint: dap.Breakpoint{
					Id:       req.ID,
					Verified: verified,
					Source:   &dap.Source{Path: req.File, Name: filepath.Base(req.File)},
					Line:     req.Line,
				},
			},
		})
	}
	sess.OnThreadStarted = func(id int) {
		a.send(&dap.ThreadEvent{
			Event: dap.Event{ProtocolMessage: dap.ProtocolMessage{Seq: a.nextSeq(), Type: "event"}, Event: "thread"},
			Body:  dap.ThreadEventBody{Reason: "started", ThreadId: id},
		})
	}
	sess.OnThreadExited = func(id int) {
		a.send(&dap.ThreadEvent{
			Event: dap.Event{ProtocolMessage: dap.ProtocolMessage{Seq: a.nextSeq(), Type: "event"}, Event: "thread"},
			Body:  dap.ThreadEventBody{Reason: "exited", ThreadId: id},
		})
	}

	if err := sess.Activate(); err != nil {
		cancel()
		return fmt.Errorf("activating session: %w", err)
	}
	if args.Target != "" {
		if err := sess.JumpToPage(args.Target); err != nil {
			return fmt.Errorf("jumping to %s: %w", args.Target, err)
		}
	}
	a.sess = sess
	return nil
}

func (a *adapter) onSetBreakpoints(req *dap.SetBreakpointsRequest) {
	path := req.Arguments.Source.Path
	if err := a.sess.RemoveAllBreakPoints(path); err != nil {
		a.errorResponse(req.Request, err)
		return
	}
	out := make([]dap.Breakpoint, 0, len(req.Arguments.Breakpoints))
	for _, bp := range req.Arguments.Breakpoints {
		id, err := a.sess.SetBreakPoint(path, bp.Line, bp.Column)
		if err != nil {
			a.errorResponse(req.Request, err)
			return
		}
		out = append(out, dap.Breakpoint{
			Id:       id,
			Verified: false,
			Source:   &dap.Source{Path: path, Name: filepath.Base(path)},
			Line:     bp.Line,
		})
	}
	a.send(&dap.SetBreakpointsResponse{
		Response: a.response(req.Request, true, ""),
		Body:     dap.SetBreakpointsResponseBody{Breakpoints: out},
	})
}

func (a *adapter) onThreads(req *dap.ThreadsRequest) {
	list := a.sess.GetThreadList()
	out := make([]dap.Thread, len(list))
	for i, t := range list {
		out[i] = dap.Thread{Id: t.ID, Name: fmt.Sprintf("thread %d", t.ID)}
	}
	a.send(&dap.ThreadsResponse{
		Response: a.response(req.Request, true, ""),
		Body:     dap.ThreadsResponseBody{Threads: out},
	})
}

func (a *adapter) onStackTrace(req *dap.StackTraceRequest) {
	threadID := req.Arguments.ThreadId
	frames, err := a.sess.GetStackFrames(&threadID)
	if err != nil {
		a.errorResponse(req.Request, err)
		return
	}
	out := make([]dap.StackFrame, len(frames))
	for i, f := range frames {
		out[i] = dap.StackFrame{
			Id:     encodeFrameID(threadID, f.Index),
			Name:   f.FunctionName,
			Source: &dap.Source{Path: f.File, Name: filepath.Base(f.File)},
			Line:   f.Line,
			Column: 1,
		}
	}
	a.send(&dap.StackTraceResponse{
		Response: a.response(req.Request, true, ""),
		Body:     dap.StackTraceResponseBody{StackFrames: out, TotalFrames: len(out)},
	})
}

func (a *adapter) onScopes(req *dap.ScopesRequest) {
	threadID, frameIndex := decodeFrameID(req.Arguments.FrameId)
	if err := a.sess.SetFocusedFrame(&threadID, frameIndex); err != nil {
		a.errorResponse(req.Request, err)
		return
	}
	scopes := []dap.Scope{
		{Name: "Locals", VariablesReference: encodeVarRef(threadID, scopeLocals, 0)},
		{Name: "Globals", VariablesReference: encodeVarRef(threadID, scopeGlobals, 0)},
	}
	a.send(&dap.ScopesResponse{
		Response: a.response(req.Request, true, ""),
		Body:     dap.ScopesResponseBody{Scopes: scopes},
	})
}

func (a *adapter) onVariables(req *dap.VariablesRequest) {
	threadID, kind, groupID := decodeVarRef(req.Arguments.VariablesReference)

	var vars []dapVar
	var err error
	if kind == scopeGlobals && groupID == 0 {
		vars, err = a.listGlobals(threadID)
	} else {
		vars, err = a.listLocals(threadID, groupID)
	}
	if err != nil {
		a.errorResponse(req.Request, err)
		return
	}

	out := make([]dap.Variable, len(vars))
	for i, v := range vars {
		ref := 0
		if v.childGroupID != 0 {
			ref = encodeVarRef(threadID, scopeGroup, v.childGroupID)
		}
		value := v.typeName
		if v.childGroupID == 0 {
			result, err := a.sess.DumpVariable(&threadID, v.name)
			if err != nil {
				// Surface the failure as the value, so one unevaluable
				// variable doesn't hide itself behind its type label or
				// fail the whole request.
				result = err.Error()
			}
			value = result
		}
		out[i] = dap.Variable{Name: v.name, Value: value, Type: v.typeName, VariablesReference: ref}
	}
	a.send(&dap.VariablesResponse{
		Response: a.response(req.Request, true, ""),
		Body:     dap.VariablesResponseBody{Variables: out},
	})
}

// dapVar is the subset of symbols.Variable the DAP variables translation
// needs, independent of whether it came from ListVariable or
// ListGlobalVariable.
type dapVar struct {
	name, typeName string
	childGroupID   int
}

func (a *adapter) listLocals(threadID, groupID int) ([]dapVar, error) {
	vars, err := a.sess.ListVariable(&threadID, groupID)
	if err != nil {
		return nil, err
	}
	return toDapVars(vars), nil
}

func (a *adapter) listGlobals(threadID int) ([]dapVar, error) {
	vars, err := a.sess.ListGlobalVariable(&threadID, 0)
	if err != nil {
		return nil, err
	}
	return toDapVars(vars), nil
}

func toDapVars(vars []symbols.Variable) []dapVar {
	out := make([]dapVar, len(vars))
	for i, v := range vars {
		name := v.DisplayName
		if name == "" {
			name = v.Name
		}
		out[i] = dapVar{name: name, typeName: v.Type.Name, childGroupID: v.ChildGroupID}
	}
	return out
}

func (a *adapter) onEvaluate(req *dap.EvaluateRequest) {
	var threadID *int
	if req.Arguments.FrameId != 0 {
		id, frameIndex := decodeFrameID(req.Arguments.FrameId)
		if err := a.sess.SetFocusedFrame(&id, frameIndex); err != nil {
			a.errorResponse(req.Request, err)
			return
		}
		threadID = &id
	}
	result, err := a.sess.DumpVariable(threadID, req.Arguments.Expression)
	if err != nil {
		a.errorResponse(req.Request, err)
		return
	}
	a.send(&dap.EvaluateResponse{
		Response: a.response(req.Request, true, ""),
		Body:     dap.EvaluateResponseBody{Result: result, VariablesReference: 0},
	})
}

func (a *adapter) onContinue(req *dap.ContinueRequest) {
	threadID := req.Arguments.ThreadId
	if err := a.sess.Continue(&threadID); err != nil {
		a.errorResponse(req.Request, err)
		return
	}
	a.send(&dap.ContinueResponse{
		Response: a.response(req.Request, true, ""),
		Body:     dap.ContinueResponseBody{AllThreadsContinued: false},
	})
}

func (a *adapter) onStep(req dap.Request, threadID int, step func(*int) error) {
	if err := step(&threadID); err != nil {
		a.errorResponse(req, err)
		return
	}
	a.send(&dap.Response{
		ProtocolMessage: dap.ProtocolMessage{Seq: a.nextSeq(), Type: "response"},
		RequestSeq:      req.Seq,
		Success:         true,
		Command:         req.Command,
	})
}

func (a *adapter) onDisconnect(req *dap.DisconnectRequest) {
	if a.sess != nil {
		if err := a.sess.Deactivate(); err != nil {
			log.Printf("wasmdbg-dap: deactivating: %v", err)
		}
	}
	if a.cancel != nil {
		a.cancel()
	}
	a.send(&dap.DisconnectResponse{Response: a.response(req.Request, true, "")})
}
