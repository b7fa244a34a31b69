package symbols

import "testing"

func newTestContainer() *Container {
	c := &Container{
		linesByFile: map[string][]lineRow{},
		groupCache:  map[int][]Variable{},
	}
	rows := []lineRow{
		{addr: 0x10, file: "main.c", line: 4},
		{addr: 0x20, file: "main.c", line: 5},
		{addr: 0x30, file: "main.c", line: 6},
		{addr: 0x40, endOfSeq: true},
	}
	c.linesByAddr = rows
	for _, r := range rows {
		if r.file != "" {
			c.linesByFile[r.file] = append(c.linesByFile[r.file], r)
		}
	}
	return c
}

func TestAddressToLineExactMatch(t *testing.T) {
	c := newTestContainer()
	file, line, ok := c.AddressToLine(0x20)
	if !ok || file != "main.c" || line != 5 {
		t.Fatalf("AddressToLine(0x20) = (%q, %d, %v), want (main.c, 5, true)", file, line, ok)
	}
}

func TestAddressToLineBetweenRows(t *testing.T) {
	c := newTestContainer()
	// 0x25 falls between the row at 0x20 and 0x30: the greatest row with
	// address <= query wins.
	_, line, ok := c.AddressToLine(0x25)
	if !ok || line != 5 {
		t.Fatalf("AddressToLine(0x25) line = %d, ok = %v, want 5, true", line, ok)
	}
}

func TestAddressToLinePastEndOfSequence(t *testing.T) {
	c := newTestContainer()
	if _, _, ok := c.AddressToLine(0x45); ok {
		t.Fatal("AddressToLine past end_sequence should report not found")
	}
}

func TestAddressToLineBeforeFirstRow(t *testing.T) {
	c := newTestContainer()
	if _, _, ok := c.AddressToLine(0x05); ok {
		t.Fatal("AddressToLine before the first row should report not found")
	}
}

func TestLineToAddressSmallestMatchingLine(t *testing.T) {
	c := newTestContainer()
	addr, ok := c.LineToAddress("main.c", 5)
	if !ok || addr != 0x20 {
		t.Fatalf("LineToAddress(main.c, 5) = (0x%x, %v), want (0x20, true)", addr, ok)
	}
}

func TestLineToAddressRoundsUpToNextRow(t *testing.T) {
	c := newTestContainer()
	// Drop the line-5 row so line 5 falls in a gap between the rows for
	// lines 4 and 6: the request should land on the next row at or after
	// it, per the smallest-address-among-smallest-line->=-requested rule.
	rows := c.linesByFile["main.c"]
	c.linesByFile["main.c"] = []lineRow{rows[0], rows[2]}
	addr, ok := c.LineToAddress("main.c", 5)
	if !ok || addr != 0x30 {
		t.Fatalf("LineToAddress(main.c, 5) = (0x%x, %v), want (0x30, true)", addr, ok)
	}
}

func TestLineToAddressSuffixMatch(t *testing.T) {
	c := newTestContainer()
	c.linesByFile["/build/src/main.c"] = c.linesByFile["main.c"]
	delete(c.linesByFile, "main.c")
	addr, ok := c.LineToAddress("src/main.c", 6)
	if !ok || addr != 0x30 {
		t.Fatalf("LineToAddress(src/main.c, 6) = (0x%x, %v), want (0x30, true)", addr, ok)
	}
}

func TestVariablesAtFiltersByRange(t *testing.T) {
	inner := &Scope{Ranges: [][2]Address{{0x10, 0x20}}, Variables: []Variable{{Name: "x", DisplayName: "x"}}}
	outer := &Scope{Ranges: [][2]Address{{0x00, 0x30}}, Variables: []Variable{{Name: "y", DisplayName: "y"}}, Children: []*Scope{inner}}
	c := &Container{scopes: []*Scope{outer}, groupCache: map[int][]Variable{}}

	inRange := c.VariablesAt(0x15, 0)
	if len(inRange) != 2 {
		t.Fatalf("VariablesAt(0x15) returned %d variables, want 2 (outer + inner)", len(inRange))
	}

	outOfRange := c.VariablesAt(0x25, 0)
	if len(outOfRange) != 1 {
		t.Fatalf("VariablesAt(0x25) returned %d variables, want 1 (outer only)", len(outOfRange))
	}
}

func TestNewContainerWithNoDebugSections(t *testing.T) {
	// A minimal valid module: magic + version, no sections at all.
	data := []byte{0x00, 0x61, 0x73, 0x6d, 1, 0, 0, 0}
	c, err := NewContainer(data)
	if err != nil {
		t.Fatalf("NewContainer: %v", err)
	}
	if _, _, ok := c.AddressToLine(0); ok {
		t.Fatal("a module with no DWARF should resolve no addresses")
	}
	if got := c.GlobalVariables(0); got != nil {
		t.Fatalf("GlobalVariables on a DWARF-less module = %v, want nil", got)
	}
}
