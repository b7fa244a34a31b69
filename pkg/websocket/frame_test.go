package websocket

import (
	"io"
	"net"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// pipeConn returns a Conn over an in-memory pipe, plus the raw server end
// for tests to script the remote side with.
func pipeConn(t *testing.T) (*Conn, net.Conn) {
	t.Helper()
	server, client := net.Pipe()
	t.Cleanup(func() {
		server.Close()
		client.Close()
	})
	return newConn(client), server
}

// unmask reverses client-side masking in place, given a full frame whose
// masking key starts at keyOffset.
func unmask(frame []byte, keyOffset int) []byte {
	key := frame[keyOffset : keyOffset+4]
	payload := frame[keyOffset+4:]
	for i := range payload {
		payload[i] ^= key[i%4]
	}
	return payload
}

func TestReadSingleTextFrame(t *testing.T) {
	conn, server := pipeConn(t)
	go server.Write([]byte{0x81, 0x03, 'a', 'b', 'c'})

	got, err := conn.Read()
	if err != nil {
		t.Fatalf("Read(): %v", err)
	}
	if !cmp.Equal(got, []byte("abc")) {
		t.Errorf("Read() = %#v, want %q", got, "abc")
	}
}

func TestReadEmptyFrame(t *testing.T) {
	conn, server := pipeConn(t)
	go server.Write([]byte{0x81, 0x00})

	got, err := conn.Read()
	if err != nil {
		t.Fatalf("Read(): %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Read() = %#v, want an empty message", got)
	}
}

func TestReadReassemblesFragments(t *testing.T) {
	conn, server := pipeConn(t)
	go server.Write([]byte{
		0x01, 0x01, 0xaa, // Text fragment, FIN clear.
		0x00, 0x02, 0xbb, 0xcc, // Continuation, FIN clear.
		0x80, 0x03, 0xdd, 0xee, 0xff, // Continuation, FIN set.
	})

	got, err := conn.Read()
	if err != nil {
		t.Fatalf("Read(): %v", err)
	}
	want := []byte{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}
	if !cmp.Equal(got, want) {
		t.Errorf("Read() = %#v, want %#v", got, want)
	}
}

func TestReadAnswersPingMidMessage(t *testing.T) {
	conn, server := pipeConn(t)
	pong := make(chan []byte, 1)
	go func() {
		server.Write([]byte{
			0x01, 0x01, 0xaa, // Text fragment, FIN clear.
			0x89, 0x04, 'p', 'i', 'n', 'g', // Ping with a payload to echo.
			0x8a, 0x00, // Unsolicited pong, dropped.
			0x80, 0x01, 0xbb, // Final continuation.
		})
		b := make([]byte, 2+4+4)
		if _, err := io.ReadFull(server, b); err != nil {
			t.Errorf("reading the pong reply: %v", err)
		}
		pong <- b
	}()

	got, err := conn.Read()
	if err != nil {
		t.Fatalf("Read(): %v", err)
	}
	if want := []byte{0xaa, 0xbb}; !cmp.Equal(got, want) {
		t.Errorf("Read() = %#v, want %#v", got, want)
	}

	reply := <-pong
	if reply[0] != 0x8a { // FIN, pong.
		t.Errorf("pong reply header = %#x, want 0x8a", reply[0])
	}
	if reply[1] != 0x84 { // Masked, 4-byte payload.
		t.Errorf("pong reply length byte = %#x, want 0x84", reply[1])
	}
	if got := unmask(reply, 2); !cmp.Equal(got, []byte("ping")) {
		t.Errorf("pong reply payload = %q, want %q", got, "ping")
	}
}

func TestReadExtendedLength16(t *testing.T) {
	conn, server := pipeConn(t)
	want := make([]byte, 1024)
	want[0], want[1023] = 0x01, 0x02
	go func() {
		server.Write(append([]byte{0x81, 0x7e, 0x04, 0x00}, want...))
	}()

	got, err := conn.Read()
	if err != nil {
		t.Fatalf("Read(): %v", err)
	}
	if !cmp.Equal(got, want) {
		t.Errorf("Read() returned %d bytes, want %d", len(got), len(want))
	}
}

func TestReadExtendedLength64(t *testing.T) {
	conn, server := pipeConn(t)
	want := make([]byte, 1024*1024)
	want[0], want[len(want)-1] = 0x01, 0x02
	go func() {
		hdr := []byte{0x81, 0x7f, 0, 0, 0, 0, 0, 0x10, 0, 0} // 1 MiB, big-endian.
		server.Write(append(hdr, want...))
	}()

	got, err := conn.Read()
	if err != nil {
		t.Fatalf("Read(): %v", err)
	}
	if !cmp.Equal(got, want) {
		t.Errorf("Read() returned %d bytes, want %d", len(got), len(want))
	}
}

func TestReadFailsTheConnectionOnProtocolViolations(t *testing.T) {
	tests := []struct {
		desc string
		b    []byte
	}{
		{"nonzero reserved bits", []byte{0x70, 0x00}},
		{"unknown opcode", []byte{0x83, 0x00}},
		{"masked server frame", []byte{0x80, 0x80}},
	}
	for _, tc := range tests {
		t.Run(tc.desc, func(t *testing.T) {
			conn, server := pipeConn(t)
			go func() {
				server.Write(tc.b)
				io.Copy(io.Discard, server) // Absorb the close frame.
			}()

			if got, err := conn.Read(); err == nil {
				t.Errorf("Read() = %#v, want a %s error", got, tc.desc)
			}
		})
	}
}

func TestReadSurfacesServerClose(t *testing.T) {
	conn, server := pipeConn(t)
	go func() {
		// Close frame: status 1001, reason "reason".
		server.Write([]byte{0x88, 0x08, 0x03, 0xe9, 'r', 'e', 'a', 's', 'o', 'n'})
		io.Copy(io.Discard, server) // Absorb the close echo.
	}()

	if got, err := conn.Read(); err == nil {
		t.Errorf("Read() = %#v, want a connection-closed error", got)
	}
}

func TestReadReturnsEOFWhenConnectionEnds(t *testing.T) {
	conn, server := pipeConn(t)
	server.Close()

	if _, err := conn.Read(); err != io.EOF {
		t.Errorf("Read() error = %v, want io.EOF", err)
	}
}

func TestWriteTextMasksThePayload(t *testing.T) {
	conn, server := pipeConn(t)
	go conn.WriteText([]byte("hello"))

	b := make([]byte, 2+4+5)
	if _, err := io.ReadFull(server, b); err != nil {
		t.Fatalf("reading the written frame: %v", err)
	}
	if b[0] != 0x81 { // FIN, text.
		t.Errorf("frame header = %#x, want 0x81", b[0])
	}
	if b[1] != 0x85 { // Masked, 5-byte payload.
		t.Errorf("frame length byte = %#x, want 0x85", b[1])
	}
	if got := unmask(b, 2); !cmp.Equal(got, []byte("hello")) {
		t.Errorf("unmasked payload = %q, want %q", got, "hello")
	}
}

func TestWriteTextExtendedLength16(t *testing.T) {
	conn, server := pipeConn(t)
	go conn.WriteText(make([]byte, 1024))

	b := make([]byte, 2+2+4+1024)
	if _, err := io.ReadFull(server, b); err != nil {
		t.Fatalf("reading the written frame: %v", err)
	}
	if b[1] != 0xfe { // Masked, 16-bit extended length.
		t.Errorf("frame length byte = %#x, want 0xfe", b[1])
	}
	if b[2] != 0x04 || b[3] != 0x00 {
		t.Errorf("extended length = %#x %#x, want 0x04 0x00", b[2], b[3])
	}
}

func TestWriteTextExtendedLength64(t *testing.T) {
	conn, server := pipeConn(t)
	go conn.WriteText(make([]byte, 1024*1024))

	b := make([]byte, 2+8+4+1024*1024)
	if _, err := io.ReadFull(server, b); err != nil {
		t.Fatalf("reading the written frame: %v", err)
	}
	if b[1] != 0xff { // Masked, 64-bit extended length.
		t.Errorf("frame length byte = %#x, want 0xff", b[1])
	}
}
