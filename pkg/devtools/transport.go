package devtools

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
)

// Error details passed within a CDP response message.
type Error struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// Error satisfies the Go error interface (https://golang.org/pkg/builtin/#error).
func (e *Error) Error() string {
	if e.Code == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (%d)", e.Message, e.Code)
}

// Message is a generic CDP message sent to or received from a browser.
type Message struct {
	ID        int64           `json:"id,omitempty"`
	SessionID string          `json:"sessionId,omitempty"`
	Method    string          `json:"method,omitempty"`
	Params    json.RawMessage `json:"params,omitempty"`
	Result    json.RawMessage `json:"result,omitempty"`
	Error     *Error          `json:"error,omitempty"`
}

type asyncMessage struct {
	requestMsg   Message
	responseChan chan<- *Message
}

// Parse and relay incoming CDP messages.
func parseAndRelay(s *Session, b []byte) {
	s.msgLog.Printf("<- %s\n", b)

	// Parse the raw JSON content.
	m := &Message{}
	if err := json.Unmarshal(b, m); err != nil {
		log.Printf("JSON error: %v", err)
		return
	}

	if len(m.Method) == 0 {
		// Solicited response: relay to the request caller.
		log.Printf("Received response: ID %d (%d bytes)", m.ID, len(b))
		if ch, ok := s.responseSubscribers[m.ID]; ok {
			ch <- m
		}
	} else {
		// Unsolicited event: relay to any subscribers.
		log.Printf("Received event: %q (%d bytes)", m.Method, len(b))
		if subscribers, ok := s.eventSubscribers[m.Method]; ok {
			for _, ch := range subscribers {
				ch <- m
			}
			switch len(subscribers) {
			case 1:
				log.Printf("Relayed to 1 subscriber")
			default:
				log.Printf("Relayed to %d subscribers", len(subscribers))
			}
		}
	}
}

// Asynchronously receive incoming CDP messages from the browser through a
// POSIX pipe on non-Windows operating systems, as long as the pipe is open.
// Called as a goroutine in the `start` function in `browser.go`.
func receiveFromPipe(s *Session) {
	// This scanner wraps the browser's POSIX pipe, which is closed when the
	// browser process ends (see the goroutine at the bottom of the `start`
	// function in `browser.go`).
	scanner := bufio.NewScanner(s.browserOutputReader)
	scanner.Split(scanMessages)
	for scanner.Scan() {
		b := scanner.Bytes()
		parseAndRelay(s, b)
	}
}

// Helper function based on `bufio.ScanLines`, using \0 instead of \n as a
// separator - see https://golang.org/pkg/bufio/#example_Scanner_custom.
func scanMessages(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, '\000'); i >= 0 {
		// We have a full \0-terminated message.
		return i + 1, data[0:i], nil
	}
	// If we're at EOF, we have a final, non-terminated message. Return it.
	if atEOF {
		return len(data), data, nil
	}
	// Request more data.
	return 0, nil, nil
}

// Asynchronously receive incoming CDP messages from the browser through a
// WebSocket on Windows operating systems, as long as the connection is open.
// Called as a goroutine in the `start` function in `browser.go`.
func receiveFromWebSocket(s *Session) {
	for {
		b, err := s.webSocket.Read()
		if err != nil {
			if err == io.EOF {
				log.Print("CDP WebSocket connection ended")
			} else {
				log.Printf("WARNING: failed to read incoming CDP message: %v", err)
			}
			return
		}
		parseAndRelay(s, b)
	}
}

func preSend(s *Session, async *asyncMessage) ([]byte, error) {
	// Discard malformed data.
	if len(async.requestMsg.Method) == 0 {
		log.Printf("Discarding malformed message: %#v", async.requestMsg)
		if async.responseChan != nil {
			m := &Message{ID: s.msgID, Error: &Error{}}
			m.Error.Message = fmt.Sprintf("malformed message: %#v", async.requestMsg)
			async.responseChan <- m
		}
		return nil, errors.New("malformed message")
	}
	// Construct the JSON message, and prepare to receive the response.
	async.requestMsg.ID = s.msgID
	b, err := json.Marshal(async.requestMsg)
	if err != nil {
		m := &Message{ID: s.msgID, Error: &Error{Message: err.Error()}}
		async.responseChan <- m
		return nil, errors.New(m.Error.Message)
	}

	s.responseSubscribers[s.msgID] = make(chan *Message)
	log.Printf("Sending: %s", b)
	return b, nil
}

func postSend(s *Session, async asyncMessage, b []byte) {
	// Wait for the response, clean-up, and relay back to the caller of devtools.Send.
	s.msgLog.Printf("-> %s\n", b)
	m := <-s.responseSubscribers[s.msgID]

	close(s.responseSubscribers[s.msgID])
	delete(s.responseSubscribers, m.ID)

	async.responseChan <- m
}

// Construct and send CDP messages to the browser through a POSIX pipe on non-Windows
// operating systems, in a thread-safe manner (https://blog.golang.org/codelab-share).
// Called in a goroutine in `session.go` as long as the browser is running.
func sendToPipe(s *Session, async asyncMessage) {
	b, err := preSend(s, &async)
	if err != nil {
		return // Already reported to the caller by preSend.
	}

	// Send the JSON message.
	n, err := s.browserInputWriter.Write(b)
	if err != nil {
		m := &Message{ID: s.msgID, Error: &Error{Message: err.Error()}}
		async.responseChan <- m
		return
	}
	if n < len(b) {
		m := &Message{ID: s.msgID, Error: &Error{}}
		m.Error.Message = fmt.Sprintf("sent %d bytes instead of %d", n, len(b))
		// Don't return like other errors - send \0 and expect an error result.
	}
	// Send \0 to mark the end of the message.
	n, err = s.browserInputWriter.Write([]byte("\000"))
	if err != nil {
		m := &Message{ID: s.msgID, Error: &Error{Message: err.Error()}}
		async.responseChan <- m
		return
	}
	if n != 1 {
		m := &Message{ID: s.msgID, Error: &Error{}}
		m.Error.Message = fmt.Sprintf(`sent %d bytes instead of one \0`, n)
		async.responseChan <- m
		return
	}

	postSend(s, async, b)
}

// Construct and send CDP messages to the browser through a WebSocket on Windows
// operating systems, in a thread-safe manner (https://blog.golang.org/codelab-share).
// Called in a goroutine in `session.go` as long as the browser is running.
func sendToWebSocket(s *Session, async asyncMessage) {
	b, err := preSend(s, &async)
	if err != nil {
		return // Already reported to the caller by preSend.
	}

	// Send the JSON message.
	err = s.webSocket.WriteText(b)
	if err != nil {
		m := &Message{ID: s.msgID, Error: &Error{Message: err.Error()}}
		async.responseChan <- m
		return
	}

	postSend(s, async, b)
}

// sessionIDKey tags a context with the CDP session ID to attach to outgoing
// messages, so that a single underlying transport (one browser connection,
// one message queue) can be shared by several attached targets at once - the
// main page and any number of workers. This is deliberately kept out of the
// devtools.Session struct itself (unlike the single mutable session ID field
// earlier revisions of this package used): that field is fine for a tool that
// only ever drives one attached tab, but a debugger that auto-attaches to
// every worker a page spawns needs one session ID per attached target,
// observed concurrently, not one shared mutable string.
type sessionIDKey struct{}

// WithSessionID returns a copy of ctx tagged with the given CDP session ID.
// Every command sent through the returned context carries this session ID,
// and SubscribeEventForSession only delivers events carrying it.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey{}, sessionID)
}

// SessionIDFromContext returns the CDP session ID tagged on ctx by
// WithSessionID, or "" if none was set (i.e. the top-level target).
func SessionIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(sessionIDKey{}).(string)
	return id
}

// effectiveSessionID resolves the session ID an outgoing message (or an
// event filter) should carry: the explicit WithSessionID tag when present,
// otherwise the session ID of the tab this transport attached to when it
// started. The fallback preserves the pre-multiplexing behavior, where
// every message was tagged with the one attached tab's session - callers
// that never mention session IDs still talk to that tab, not the browser.
func effectiveSessionID(ctx context.Context, s *Session) string {
	if id := SessionIDFromContext(ctx); id != "" {
		return id
	}
	if s.SessionID != nil {
		return s.SessionID.Read()
	}
	return ""
}

// Send constructs and sends a CDP message to the browser associated with the
// given context, tagged with the session ID (if any) carried by the context,
// and returns a channel that receives exactly one response message.
// Multiple goroutines may call this function simultaneously.
func Send(ctx context.Context, method string, params json.RawMessage) (chan *Message, error) {
	s, ok := FromContext(ctx)
	if !ok {
		return nil, errors.New("context not initialized with devtools.NewContext")
	}
	// https://github.com/aslushnikov/getting-started-with-cdp#targets--sessions
	m := Message{Method: method, SessionID: effectiveSessionID(ctx, s), Params: params}
	ch := make(chan *Message, 1)
	go func() { s.msgQ <- asyncMessage{requestMsg: m, responseChan: ch} }()
	return ch, nil
}

// SendAndWait is like Send, but blocks until the browser responds.
func SendAndWait(ctx context.Context, method string, params json.RawMessage) (*Message, error) {
	ch, err := Send(ctx, method, params)
	if err != nil {
		return nil, err
	}
	m := <-ch
	return m, nil
}

// SubscribeEvent returns a channel to receive event messages of the given
// type from the browser associated with the given context, regardless of
// which attached target (session) they originated from.
func SubscribeEvent(ctx context.Context, name string) (chan *Message, error) {
	s, ok := FromContext(ctx)
	if !ok {
		return nil, errors.New("context not initialized with devtools.NewContext")
	}
	ch := make(chan *Message, 16)
	s.eventSubscribers[name] = append(s.eventSubscribers[name], ch)
	return ch, nil
}

// SubscribeEventForSession is like SubscribeEvent, but only delivers events
// whose session ID matches the one tagged on ctx by WithSessionID (including
// the top-level target, tagged with ""). The returned channel is owned by
// the caller. The forwarding goroutine only exits when the underlying,
// unfiltered subscription channel is closed, and nothing in this package
// closes it, so each call leaves a goroutine running; callers driving many
// short-lived targets should prefer a long-lived proxy instead of
// subscribing per command.
func SubscribeEventForSession(ctx context.Context, name string) (chan *Message, error) {
	s, ok := FromContext(ctx)
	if !ok {
		return nil, errors.New("context not initialized with devtools.NewContext")
	}
	raw, err := SubscribeEvent(ctx, name)
	if err != nil {
		return nil, err
	}
	want := effectiveSessionID(ctx, s)
	filtered := make(chan *Message, 16)
	go func() {
		defer close(filtered)
		for m := range raw {
			if m.SessionID == want {
				filtered <- m
			}
		}
	}()
	return filtered, nil
}

// TODO: unsubscribe.
