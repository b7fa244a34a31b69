// The wasmdbg program is an interactive command-line front end for the
// WebAssembly DWARF debugger bridge: a line-oriented REPL
// driving one internal/session.Session over a freshly launched CDP browser
// session.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/daabr/wasmdbg/internal/breakpoint"
	"github.com/daabr/wasmdbg/internal/session"
	"github.com/daabr/wasmdbg/internal/symbols"
	"github.com/daabr/wasmdbg/pkg/devtools"
)

func main() {
	target := flag.String("target", "", "URL to jump to once the debugger session is active")
	serverRoot := flag.String("server-root", "", "source path prefix on this machine, for path remapping")
	webRoot := flag.String("web-root", "", "corresponding URL prefix, for path remapping")
	historyFile := flag.String("history", "", "readline history file (default: no persistent history)")
	flag.Parse()

	ctx, err := devtools.NewContext(context.Background())
	if err != nil {
		log.Fatalf("wasmdbg: starting browser: %v", err)
	}
	defer devtools.Close(ctx)

	sess := session.New(ctx)
	if *serverRoot != "" || *webRoot != "" {
		sess.SetPathRemap(*serverRoot, *webRoot)
	}

	cli := &repl{sess: sess}
	sess.OnStopped = func(threadID int) {
		cli.focusedFrame = 0
		fmt.Printf("* thread %d stopped\n", threadID)
	}
	sess.OnContinued = func(threadID int) {
		fmt.Printf("* thread %d running\n", threadID)
	}
	sess.OnThreadStarted = func(id int) { fmt.Printf("* thread %d started\n", id) }
	sess.OnThreadExited = func(id int) { fmt.Printf("* thread %d exited\n", id) }
	sess.OnOutput = func(threadID int, text string) { fmt.Printf("[thread %d] %s\n", threadID, text) }
	sess.OnBreakpointChanged = func(req breakpoint.Request, verified bool) {
		fmt.Printf("* breakpoint %d (%s:%d) verified=%v\n", req.ID, req.File, req.Line, verified)
	}

	if err := sess.Activate(); err != nil {
		log.Fatalf("wasmdbg: activating session: %v", err)
	}
	if *target != "" {
		if err := sess.JumpToPage(*target); err != nil {
			log.Fatalf("wasmdbg: jumping to %s: %v", *target, err)
		}
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "(wasmdbg) ",
		HistoryFile: *historyFile,
	})
	if err != nil {
		log.Fatalf("wasmdbg: readline: %v", err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err == io.EOF || err == readline.ErrInterrupt {
			os.Exit(0)
		}
		if err != nil {
			log.Printf("wasmdbg: fatal input error: %v", err)
			os.Exit(1)
		}
		if quit := cli.dispatch(strings.TrimSpace(line)); quit {
			os.Exit(0)
		}
	}
}

// repl holds the CLI's local view of which frame `l` displays, since the
// session's uniform command surface only tracks the focused thread, not a
// displayed frame index for `l`.
type repl struct {
	sess         *session.Session
	focusedFrame int
}

func (c *repl) dispatch(line string) (quit bool) {
	if line == "" {
		return false
	}
	cmd, rest := line, ""
	if i := strings.IndexByte(line, ' '); i >= 0 {
		cmd, rest = line[:i], strings.TrimSpace(line[i+1:])
	}

	switch cmd {
	case "q":
		return true
	case "r":
		c.report(c.sess.JumpToPage(rest))
	case "b":
		c.setBreakpoint(rest)
	case "d":
		id, err := strconv.Atoi(rest)
		if err != nil {
			fmt.Printf("usage: d <id>\n")
			return false
		}
		c.report(c.sess.RemoveBreakPoint(id))
	case "n":
		c.report(c.sess.StepOver(nil))
	case "s":
		c.report(c.sess.StepInto(nil))
	case "u":
		c.report(c.sess.StepOut(nil))
	case "c":
		c.report(c.sess.Continue(nil))
	case "l":
		c.showSource()
	case "il":
		c.listVariables(false)
	case "ig":
		c.listVariables(true)
	case "p":
		c.dumpVariable(rest)
	case "t":
		c.threads(rest)
	case "f":
		c.setFocusedFrame(rest)
	default:
		fmt.Printf("unknown command %q\n", cmd)
	}
	return false
}

func (c *repl) report(err error) {
	if err != nil {
		fmt.Printf("error: %v\n", err)
	}
}

// setBreakpoint parses the `b <file>:<line>` command syntax.
func (c *repl) setBreakpoint(arg string) {
	i := strings.LastIndexByte(arg, ':')
	if i < 0 {
		fmt.Printf("usage: b <file>:<line>\n")
		return
	}
	file, lineStr := arg[:i], arg[i+1:]
	line, err := strconv.Atoi(lineStr)
	if err != nil {
		fmt.Printf("usage: b <file>:<line>\n")
		return
	}
	id, err := c.sess.SetBreakPoint(file, line, 0)
	if err != nil {
		c.report(err)
		return
	}
	fmt.Printf("breakpoint %d set at %s:%d (verified once a matching module is loaded)\n", id, file, line)
}

// showSource prints ±10 lines around the focused frame's line, tabs
// expanded to four spaces, the current line marked with `->`.
func (c *repl) showSource() {
	frames, err := c.sess.GetStackFrames(nil)
	if err != nil {
		c.report(err)
		return
	}
	if c.focusedFrame >= len(frames) {
		fmt.Println("not paused")
		return
	}
	frame := frames[c.focusedFrame]
	data, err := os.ReadFile(frame.File)
	if err != nil {
		fmt.Printf("cannot read %s: %v\n", frame.File, err)
		return
	}
	lines := strings.Split(string(data), "\n")
	start := frame.Line - 10
	if start < 1 {
		start = 1
	}
	end := frame.Line + 10
	if end > len(lines) {
		end = len(lines)
	}
	for n := start; n <= end; n++ {
		marker := "  "
		if n == frame.Line {
			marker = "->"
		}
		fmt.Printf("%s %4d  %s\n", marker, n, strings.ReplaceAll(lines[n-1], "\t", "    "))
	}
}

func (c *repl) listVariables(global bool) {
	if global {
		vars, err := c.sess.ListGlobalVariable(nil, 0)
		if err != nil {
			c.report(err)
			return
		}
		printVariables(vars)
		return
	}
	vars, err := c.sess.ListVariable(nil, 0)
	if err != nil {
		c.report(err)
		return
	}
	printVariables(vars)
}

func printVariables(vars []symbols.Variable) {
	for _, v := range vars {
		name := v.DisplayName
		if name == "" {
			name = v.Name
		}
		suffix := ""
		if v.ChildGroupID != 0 {
			suffix = fmt.Sprintf(" (group %d)", v.ChildGroupID)
		}
		fmt.Printf("  %s: %s%s\n", name, v.Type.Name, suffix)
	}
}

func (c *repl) dumpVariable(expr string) {
	if expr == "" {
		fmt.Printf("usage: p <expr>\n")
		return
	}
	value, err := c.sess.DumpVariable(nil, expr)
	if err != nil {
		fmt.Printf("<failure>: %v\n", err)
		return
	}
	fmt.Println(value)
}

func (c *repl) threads(arg string) {
	if arg == "" {
		for _, t := range c.sess.GetThreadList() {
			marker := "  "
			if t.Focused {
				marker = "->"
			}
			fmt.Printf("%s thread %d (%s)\n", marker, t.ID, t.State)
		}
		return
	}
	id, err := strconv.Atoi(arg)
	if err != nil {
		fmt.Printf("usage: t [id]\n")
		return
	}
	c.report(c.sess.SetFocusedThread(id))
}

func (c *repl) setFocusedFrame(arg string) {
	index, err := strconv.Atoi(arg)
	if err != nil {
		fmt.Printf("usage: f <index>\n")
		return
	}
	if err := c.sess.SetFocusedFrame(nil, index); err != nil {
		c.report(err)
		return
	}
	c.focusedFrame = index
}
