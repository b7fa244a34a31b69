package wasmbin

import (
	"testing"
)

func appendVarUint32(b []byte, v uint32) []byte {
	for {
		c := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			c |= 0x80
		}
		b = append(b, c)
		if v == 0 {
			return b
		}
	}
}

func buildModule(customName string, customBody []byte, codeBody []byte) []byte {
	m := append([]byte{}, magic...)
	m = append(m, 1, 0, 0, 0) // version 1

	if customName != "" {
		section := []byte{}
		section = appendVarUint32(section, uint32(len(customName)))
		section = append(section, customName...)
		section = append(section, customBody...)
		m = append(m, byte(sectionCustom))
		m = appendVarUint32(m, uint32(len(section)))
		m = append(m, section...)
	}

	m = append(m, byte(sectionCode))
	m = appendVarUint32(m, uint32(len(codeBody)))
	m = append(m, codeBody...)
	return m
}

func TestParseExtractsDebugSection(t *testing.T) {
	data := buildModule(".debug_line", []byte{1, 2, 3}, []byte{0x01, 0xAA})
	mod, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	debug := mod.DebugSections()
	got, ok := debug[".debug_line"]
	if !ok {
		t.Fatalf("missing .debug_line section, got sections: %v", mod.CustomSections)
	}
	if string(got) != string([]byte{1, 2, 3}) {
		t.Fatalf("section contents = %v, want [1 2 3]", got)
	}
}

func TestParseIgnoresNonDebugCustomSections(t *testing.T) {
	data := buildModule("name", []byte{0xFF}, []byte{0x00}) // 0 functions
	mod, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(mod.DebugSections()) != 0 {
		t.Fatalf("expected no debug sections, got %v", mod.DebugSections())
	}
	if _, ok := mod.CustomSections["name"]; !ok {
		t.Fatalf("expected 'name' custom section to still be recorded")
	}
}

func TestParseComputesCodeSectionOffset(t *testing.T) {
	codeBody := []byte{0x01, 0xAA, 0xBB} // 1 function, 2 bytes of body
	data := buildModule("", nil, codeBody)
	mod, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	// The function body bytes (0xAA, 0xBB) should start at CodeSectionOffset.
	got := data[mod.CodeSectionOffset : mod.CodeSectionOffset+2]
	if got[0] != 0xAA || got[1] != 0xBB {
		t.Fatalf("CodeSectionOffset = %d, bytes there = %v, want [0xAA 0xBB]", mod.CodeSectionOffset, got)
	}
}

func TestParseRejectsBadMagic(t *testing.T) {
	if _, err := Parse([]byte("not wasm")); err == nil {
		t.Fatal("expected an error for malformed magic")
	}
}
