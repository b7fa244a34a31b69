package symbols

import (
	"fmt"
	"testing"
)

// fakeMemory is a MemoryReader backed by a fixed address->bytes map, for
// evaluator tests that don't need a live CDP connection.
type fakeMemory struct {
	bytes map[uint64][]byte
}

func (f fakeMemory) ReadMemory(address uint64, byteSize int) ([]byte, error) {
	b, ok := f.bytes[address]
	if !ok {
		return nil, fmt.Errorf("fakeMemory: no bytes at %#x", address)
	}
	if len(b) > byteSize {
		b = b[:byteSize]
	}
	return b, nil
}

func TestULEB128RoundTrip(t *testing.T) {
	cases := []uint64{0, 1, 127, 128, 300, 1 << 33}
	for _, want := range cases {
		encoded := encodeULEB128(want)
		got, n := uleb128(encoded)
		if got != want || n != len(encoded) {
			t.Errorf("uleb128(%v) = (%d, %d), want (%d, %d)", encoded, got, n, want, len(encoded))
		}
	}
}

func TestSLEB128(t *testing.T) {
	cases := []int64{0, 1, -1, 63, -64, 1000, -1000}
	for _, want := range cases {
		encoded := encodeSLEB128(want)
		got, n := sleb128(encoded)
		if got != want || n != len(encoded) {
			t.Errorf("sleb128(%v) = (%d, %d), want (%d, %d)", encoded, got, n, want, len(encoded))
		}
	}
}

func encodeULEB128(v uint64) []byte {
	var out []byte
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		out = append(out, b)
		if v == 0 {
			return out
		}
	}
}

func encodeSLEB128(v int64) []byte {
	var out []byte
	more := true
	for more {
		b := byte(v & 0x7f)
		v >>= 7
		if (v == 0 && b&0x40 == 0) || (v == -1 && b&0x40 != 0) {
			more = false
		} else {
			b |= 0x80
		}
		out = append(out, b)
	}
	return out
}

func TestEvalLocationWasmLocal(t *testing.T) {
	c := &Container{}
	// DW_OP_WASM_location(kind=0 local, index=1)
	expr := []byte{opWasmLocation, 0x00, 0x01}
	snap := Snapshot{Locals: []Value{{Kind: KindI32, I32: 10}, {Kind: KindI32, I32: 42}}}

	got, err := c.evalLocation(expr, snap)
	if err != nil {
		t.Fatalf("evalLocation: %v", err)
	}
	if got.kind != locRegister || got.reg.I32 != 42 {
		t.Fatalf("evalLocation = %+v, want local[1] = 42", got)
	}
}

func TestEvalLocationUnsupportedOpcode(t *testing.T) {
	c := &Container{}
	_, err := c.evalLocation([]byte{0xFF}, Snapshot{})
	if err == nil {
		t.Fatal("expected an error for an unsupported opcode")
	}
}

func TestEvaluateVariableNotInScope(t *testing.T) {
	c := &Container{groupCache: map[int][]Variable{}}
	_, err := c.Evaluate("nope", Snapshot{}, 0, nil)
	if err == nil {
		t.Fatal("expected an error when the variable isn't in any scope")
	}
}

func TestParseExpressionArrayIndexing(t *testing.T) {
	accessors, derefs, err := parseExpression("arr[2].y")
	if err != nil {
		t.Fatalf("parseExpression: %v", err)
	}
	if derefs != 0 {
		t.Fatalf("derefs = %d, want 0", derefs)
	}
	if len(accessors) != 3 {
		t.Fatalf("got %d accessors, want 3: %+v", len(accessors), accessors)
	}
	if accessors[0].kind != accessField || accessors[0].name != "arr" {
		t.Fatalf("accessors[0] = %+v, want field arr", accessors[0])
	}
	if accessors[1].kind != accessIndex || accessors[1].index != 2 {
		t.Fatalf("accessors[1] = %+v, want index 2", accessors[1])
	}
	if accessors[2].kind != accessField || accessors[2].name != "y" {
		t.Fatalf("accessors[2] = %+v, want field y", accessors[2])
	}
}

func TestParseExpressionRejectsUnterminatedIndex(t *testing.T) {
	if _, _, err := parseExpression("arr[2"); err == nil {
		t.Fatal("expected an error for an unterminated '['")
	}
}

func TestEvaluateArrayIndexing(t *testing.T) {
	arrGroup := 5
	zero := int64(0)
	c := &Container{
		groupCache: map[int][]Variable{
			arrGroup: {{Name: "*", DisplayName: "*", MemberOffset: &zero, Type: TypeRef{ByteSize: 4, Encoding: EncodingSigned}}},
		},
		globals: []Variable{
			{Name: "arr", DisplayName: "arr", ChildGroupID: arrGroup, Type: TypeRef{IsComposite: true}, Location: []byte{opAddr, 0, 0, 0, 0}},
		},
	}
	mem := fakeMemory{bytes: map[uint64][]byte{8: {99, 0, 0, 0}}}

	got, err := c.Evaluate("arr[2]", Snapshot{}, 0, mem)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if got != "99" {
		t.Fatalf("Evaluate(arr[2]) = %q, want %q", got, "99")
	}
}

func TestEvaluateReadsTerminalMemoryMember(t *testing.T) {
	structGroup := 2
	offset := int64(4)
	c := &Container{
		groupCache: map[int][]Variable{
			structGroup: {{Name: "count", DisplayName: "count", MemberOffset: &offset, Type: TypeRef{ByteSize: 4, Encoding: EncodingSigned}}},
		},
		globals: []Variable{
			{Name: "s", DisplayName: "s", ChildGroupID: structGroup, Type: TypeRef{IsComposite: true}, Location: []byte{opAddr, 0, 0, 0, 0}},
		},
	}
	mem := fakeMemory{bytes: map[uint64][]byte{4: {7, 0, 0, 0}}}

	got, err := c.Evaluate("s.count", Snapshot{}, 0, mem)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if got != "7" {
		t.Fatalf("Evaluate(s.count) = %q, want %q (the member's value, not its address)", got, "7")
	}
}

func TestEvaluateDereferencesWithPointeeWidth(t *testing.T) {
	pointee := TypeRef{ByteSize: 8, Encoding: EncodingSigned}
	c := &Container{
		globals: []Variable{
			{
				Name: "p", DisplayName: "p",
				Type:     TypeRef{IsPointer: true, IsComposite: true, ByteSize: 4, Pointee: &pointee},
				Location: []byte{opWasmLocation, 0x00, 0x00},
			},
		},
	}
	snap := Snapshot{Locals: []Value{{Kind: KindI32, I32: 16}}}
	mem := fakeMemory{bytes: map[uint64][]byte{16: {0, 0, 0, 0, 1, 0, 0, 0}}} // 4294967296, doesn't fit in i32

	got, err := c.Evaluate("*p", snap, 0, mem)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if got != "4294967296" {
		t.Fatalf("Evaluate(*p) = %q, want %q (full 8-byte pointee width, not truncated to i32)", got, "4294967296")
	}
}

func TestPathSuffixMatch(t *testing.T) {
	tests := []struct {
		candidate, query string
		want             bool
	}{
		{"/build/src/Main.cpp", "Main.cpp", true},
		{"/build/src/Main.cpp", "src/Main.cpp", true},
		{"/build/src/Main.cpp", "Other.cpp", false},
		{"Main.cpp", "Main.cpp", true},
	}
	for _, tc := range tests {
		if got := pathSuffixMatch(tc.candidate, tc.query); got != tc.want {
			t.Errorf("pathSuffixMatch(%q, %q) = %v, want %v", tc.candidate, tc.query, got, tc.want)
		}
	}
}
