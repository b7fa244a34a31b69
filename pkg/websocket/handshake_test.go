package websocket_test

import (
	"context"
	"crypto/sha1"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/daabr/wasmdbg/pkg/websocket"
)

// acceptFor computes the Sec-WebSocket-Accept value a well-behaved server
// answers r's challenge key with.
func acceptFor(r *http.Request) string {
	h := sha1.New()
	h.Write([]byte(r.Header.Get("Sec-WebSocket-Key")))
	h.Write([]byte("258EAFA5-E914-47DA-95CA-C5AB0DC85B11"))
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}

// handshakeAgainst runs Handshake against a test server whose upgrade
// response is produced by respond, and reports whether it succeeded.
func handshakeAgainst(t *testing.T, respond http.HandlerFunc) error {
	t.Helper()
	ts := httptest.NewServer(respond)
	defer ts.Close()

	addr := strings.TrimPrefix(ts.URL, "http://")
	_, err := websocket.Handshake(context.Background(), addr, "/devtools/browser/0")
	return err
}

func TestHandshake(t *testing.T) {
	// Each case mutates one aspect of an otherwise well-formed upgrade
	// response; only the untouched baseline (and the one with a harmless
	// extra header) should succeed.
	tests := []struct {
		desc    string
		mutate  func(http.Header, *http.Request)
		status  int
		wantErr bool
	}{
		{"well-formed upgrade", nil, http.StatusSwitchingProtocols, false},
		{
			"harmless extra header",
			func(h http.Header, r *http.Request) { h.Add("Foo", "Bar") },
			http.StatusSwitchingProtocols, false,
		},
		{"upgrade refused", nil, http.StatusOK, true},
		{
			"wrong Upgrade header",
			func(h http.Header, r *http.Request) { h.Set("Upgrade", "FOO") },
			http.StatusSwitchingProtocols, true,
		},
		{
			"missing Upgrade header",
			func(h http.Header, r *http.Request) { h.Del("Upgrade") },
			http.StatusSwitchingProtocols, true,
		},
		{
			"wrong Connection header",
			func(h http.Header, r *http.Request) { h.Set("Connection", "BAR") },
			http.StatusSwitchingProtocols, true,
		},
		{
			"missing Connection header",
			func(h http.Header, r *http.Request) { h.Del("Connection") },
			http.StatusSwitchingProtocols, true,
		},
		{
			"wrong accept key",
			func(h http.Header, r *http.Request) { h.Set("Sec-WebSocket-Accept", "BAZ") },
			http.StatusSwitchingProtocols, true,
		},
		{
			"missing accept key",
			func(h http.Header, r *http.Request) { h.Del("Sec-WebSocket-Accept") },
			http.StatusSwitchingProtocols, true,
		},
	}
	for _, tc := range tests {
		t.Run(tc.desc, func(t *testing.T) {
			err := handshakeAgainst(t, func(w http.ResponseWriter, r *http.Request) {
				h := w.Header()
				h.Add("Upgrade", "websocket")
				h.Add("Connection", "Upgrade")
				h.Add("Sec-WebSocket-Accept", acceptFor(r))
				if tc.mutate != nil {
					tc.mutate(h, r)
				}
				w.WriteHeader(tc.status)
			})
			if tc.wantErr && err == nil {
				t.Error("Handshake() succeeded, want an error")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("Handshake(): %v", err)
			}
		})
	}
}
