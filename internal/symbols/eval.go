package symbols

import (
	"debug/dwarf"
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MemoryReader resolves a "required memory slice" request against the
// debuggee's linear memory. internal/thread's MemoryEvaluator satisfies
// this, caching reads for the lifetime of a paused state and coalescing
// concurrent requests for the same address.
//
// The design describes evaluation as suspend-and-resume: the evaluator
// returns a slice descriptor, the caller fills it and re-enters. Since every
// CDP round trip in this repo is already a blocking call over a channel
// (pkg/devtools.SendAndWait), the evaluator instead calls back into mem
// synchronously; the net effect (forward progress guaranteed after each
// fulfilled slice, a hop ceiling against cycles) is the same.
type MemoryReader interface {
	ReadMemory(address uint64, byteSize int) ([]byte, error)
}

// maxPointerHops bounds pointer-chain chasing, so evaluation terminates
// even on cyclic data.
const maxPointerHops = 20

const failureSentinel = "<failure>"

// Evaluate resolves expr (a variable name, optionally with dotted member
// access or array indexing) against the variables in scope at addr, using
// snap for register/stack values and mem for any memory hops the location
// expression or a pointer dereference requires.
func (c *Container) Evaluate(expr string, snap Snapshot, addr Address, mem MemoryReader) (string, error) {
	accessors, derefs, err := parseExpression(expr)
	if err != nil {
		return failureSentinel, err
	}
	if len(accessors) == 0 {
		return failureSentinel, fmt.Errorf("%w: empty expression", ErrEvaluationFailure)
	}

	cur, ok := c.lookupVariable(accessors[0].name, addr)
	if !ok {
		return failureSentinel, fmt.Errorf("%w: %q not in scope", ErrEvaluationFailure, accessors[0].name)
	}

	val, err := c.evalLocation(cur.Location, snap)
	if err != nil {
		return failureSentinel, err
	}

	hops := 0
	curType := cur.Type
	for i := 0; i < derefs; i++ {
		hops++
		if hops > maxPointerHops {
			return failureSentinel, fmt.Errorf("%w: exceeded %d pointer hops", ErrEvaluationFailure, maxPointerHops)
		}
		if val.kind == locMemoryAddress {
			// The pointer itself lives in linear memory: load its stored
			// value first, then follow it. Two reads, two hops.
			val, err = c.resolveValue(val, TypeRef{ByteSize: curType.ByteSize}, mem)
			if err != nil {
				return failureSentinel, err
			}
			hops++
			if hops > maxPointerHops {
				return failureSentinel, fmt.Errorf("%w: exceeded %d pointer hops", ErrEvaluationFailure, maxPointerHops)
			}
		}
		pointee := TypeRef{Encoding: EncodingSigned, ByteSize: 4}
		if curType.Pointee != nil {
			pointee = *curType.Pointee
		}
		size := int(pointee.ByteSize)
		if size <= 0 {
			size = 4 // wasm32 pointer/untyped-pointee width
		}
		bytes, err := mem.ReadMemory(val.asAddress(), size)
		if err != nil {
			return failureSentinel, fmt.Errorf("%w: %v", ErrEvaluationFailure, err)
		}
		val = locVal{kind: locRegister, reg: decodeValue(bytes, pointee)}
		curType = pointee
	}

	for _, acc := range accessors[1:] {
		hops++
		if hops > maxPointerHops {
			return failureSentinel, fmt.Errorf("%w: exceeded %d pointer hops", ErrEvaluationFailure, maxPointerHops)
		}
		switch acc.kind {
		case accessIndex:
			elem, err := c.indexElement(cur, acc.index)
			if err != nil {
				return failureSentinel, err
			}
			cur = elem
		default:
			if cur.ChildGroupID == 0 {
				return failureSentinel, fmt.Errorf("%w: %q has no members", ErrEvaluationFailure, cur.DisplayName)
			}
			members := c.groupMembers(cur.ChildGroupID)
			found := false
			for _, m := range members {
				if m.DisplayName == acc.name || m.Name == acc.name {
					cur = m
					found = true
					break
				}
			}
			if !found {
				return failureSentinel, fmt.Errorf("%w: no member %q", ErrEvaluationFailure, acc.name)
			}
		}
		if cur.MemberOffset != nil {
			val = locVal{kind: locMemoryAddress, addr: val.asAddress() + uint64(*cur.MemberOffset)}
			continue
		}
		val, err = c.evalLocation(cur.Location, snap)
		if err != nil {
			return failureSentinel, err
		}
	}

	// A value that's still a bare memory address at this point is a
	// terminal scalar leaf (a struct field, array element, or plain
	// variable whose location put it in linear memory rather than a
	// register) that's never actually been read: fetch and decode it
	// using the leaf's own type before formatting.
	if !cur.Type.IsComposite && val.kind == locMemoryAddress {
		val, err = c.resolveValue(val, cur.Type, mem)
		if err != nil {
			return failureSentinel, err
		}
	}

	return val.format(), nil
}

// resolveValue fetches and decodes a value still described as a pending
// memory address, using t to pick the read width and interpret the bytes.
func (c *Container) resolveValue(val locVal, t TypeRef, mem MemoryReader) (locVal, error) {
	if val.kind != locMemoryAddress {
		return val, nil
	}
	size := int(t.ByteSize)
	if size <= 0 {
		size = 4
	}
	bytes, err := mem.ReadMemory(val.addr, size)
	if err != nil {
		return locVal{}, fmt.Errorf("%w: %v", ErrEvaluationFailure, err)
	}
	return locVal{kind: locRegister, reg: decodeValue(bytes, t)}, nil
}

// indexElement resolves cur[idx], synthesizing a Variable addressed at the
// array/pointer's element-0 pseudo-member offset plus idx*elementSize, so
// a following field accessor (e.g. arr[2].x) composes against the right
// base address and, via the element's ChildGroupID, the right field
// layout, since pointee/element types get the same recursive lazy
// expansion named struct members do.
func (c *Container) indexElement(cur Variable, idx int64) (Variable, error) {
	if cur.ChildGroupID == 0 {
		return Variable{}, fmt.Errorf("%w: %q is not indexable", ErrEvaluationFailure, cur.DisplayName)
	}
	members := c.groupMembers(cur.ChildGroupID)
	if len(members) == 0 {
		return Variable{}, fmt.Errorf("%w: %q has no element type", ErrEvaluationFailure, cur.DisplayName)
	}
	elem := members[0]
	elemSize := elem.Type.ByteSize
	if elemSize <= 0 {
		elemSize = 4
	}
	offset := idx * elemSize
	if elem.MemberOffset != nil {
		offset += *elem.MemberOffset
	}
	elem.Name = fmt.Sprintf("[%d]", idx)
	elem.DisplayName = elem.Name
	elem.MemberOffset = &offset
	return elem, nil
}

// accessorKind tags one step of a parsed expression's accessor chain.
type accessorKind int

const (
	accessField accessorKind = iota
	accessIndex
)

// accessor is one "." field step or "[N]" index step of a parsed
// expression, in source order.
type accessor struct {
	kind  accessorKind
	name  string
	index int64
}

// parseExpression parses "*p.x[2].y" style expressions into the leading
// dereference count and the flattened accessor chain: the first accessor
// is always the base variable name; any following accessors are field or
// index steps in source order.
func parseExpression(expr string) ([]accessor, int, error) {
	expr = strings.TrimSpace(expr)
	derefs := 0
	for strings.HasPrefix(expr, "*") {
		derefs++
		expr = expr[1:]
	}
	if expr == "" {
		return nil, derefs, nil
	}

	var out []accessor
	for _, raw := range strings.Split(expr, ".") {
		accs, err := parseAccessorSegment(raw)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, accs...)
	}
	return out, derefs, nil
}

// parseAccessorSegment parses one dot-separated segment, e.g. "x" or
// "arr[2][3]", into a field accessor optionally followed by one or more
// index accessors.
func parseAccessorSegment(seg string) ([]accessor, error) {
	name := seg
	rest := ""
	if i := strings.IndexByte(seg, '['); i >= 0 {
		name, rest = seg[:i], seg[i:]
	}
	if name == "" {
		return nil, fmt.Errorf("%w: empty name in %q", ErrEvaluationFailure, seg)
	}
	out := []accessor{{kind: accessField, name: name}}

	for len(rest) > 0 {
		if rest[0] != '[' {
			return nil, fmt.Errorf("%w: malformed index in %q", ErrEvaluationFailure, seg)
		}
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return nil, fmt.Errorf("%w: unterminated '[' in %q", ErrEvaluationFailure, seg)
		}
		idx, err := strconv.ParseInt(strings.TrimSpace(rest[1:end]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid array index in %q: %v", ErrEvaluationFailure, seg, err)
		}
		out = append(out, accessor{kind: accessIndex, index: idx})
		rest = rest[end+1:]
	}
	return out, nil
}

// lookupVariable searches in-scope locals (nearest scope first) then
// globals for a variable matching name, using DisplayName per the design
// notes' resolution of the mangled/demangled open question.
func (c *Container) lookupVariable(name string, addr Address) (Variable, bool) {
	for _, scope := range c.scopes {
		if v, ok := searchScope(scope, addr, name); ok {
			return v, true
		}
	}
	for _, g := range c.globals {
		if g.DisplayName == name || g.Name == name {
			return g, true
		}
	}
	return Variable{}, false
}

func searchScope(s *Scope, addr Address, name string) (Variable, bool) {
	if !s.contains(addr) {
		return Variable{}, false
	}
	for _, child := range s.Children {
		if v, ok := searchScope(child, addr, name); ok {
			return v, true
		}
	}
	for _, v := range s.Variables {
		if v.DisplayName == name || v.Name == name {
			return v, true
		}
	}
	return Variable{}, false
}

// locValKind tags whether a location evaluation landed on a register value
// (already resolved) or a linear-memory address still needing a dereference
// by the caller.
type locValKind int

const (
	locRegister locValKind = iota
	locMemoryAddress
)

type locVal struct {
	kind locValKind
	reg  Value
	addr uint64
}

func (v locVal) asAddress() uint64 {
	if v.kind == locMemoryAddress {
		return v.addr
	}
	return uint64(v.reg.I32)
}

func (v locVal) format() string {
	if v.kind == locMemoryAddress {
		return fmt.Sprintf("0x%x", v.addr)
	}
	switch v.reg.Kind {
	case KindI32:
		return strconv.FormatInt(int64(v.reg.I32), 10)
	case KindI64:
		return strconv.FormatInt(v.reg.I64, 10)
	case KindF32:
		return strconv.FormatFloat(float64(v.reg.F32), 'g', -1, 32)
	case KindF64:
		return strconv.FormatFloat(v.reg.F64, 'g', -1, 64)
	default:
		return failureSentinel
	}
}

// padLE returns b truncated or zero-extended to exactly n bytes, for
// decoding a read narrower or wider than the kind being assembled (a
// memory read already comes back sized to the type, but a defensive pad
// keeps a mismatched read from panicking on the binary.LittleEndian call).
func padLE(b []byte, n int) []byte {
	if len(b) >= n {
		return b[:n]
	}
	out := make([]byte, n)
	copy(out, b)
	return out
}

// decodeValue interprets bytes (little-endian, as read from linear memory)
// as t's scalar kind: a float encoding decodes as f32/f64 by size, anything
// else decodes as i32 or i64 by size, defaulting to i32 (wasm32's pointer
// width) when t carries no usable size.
func decodeValue(bytes []byte, t TypeRef) Value {
	size := int(t.ByteSize)
	if size <= 0 {
		size = len(bytes)
	}
	if size <= 0 {
		size = 4
	}

	if t.Encoding == EncodingFloat {
		if size <= 4 {
			return Value{Kind: KindF32, F32: math.Float32frombits(binary.LittleEndian.Uint32(padLE(bytes, 4)))}
		}
		return Value{Kind: KindF64, F64: math.Float64frombits(binary.LittleEndian.Uint64(padLE(bytes, 8)))}
	}
	if size > 4 {
		return Value{Kind: KindI64, I64: int64(binary.LittleEndian.Uint64(padLE(bytes, 8)))}
	}
	return Value{Kind: KindI32, I32: int32(binary.LittleEndian.Uint32(padLE(bytes, 4)))}
}

// DWARF opcodes this evaluator understands. WASM_location is LLVM's vendor
// extension (operand 0 = local, 1 = global, 2 = operand stack) for
// addressing WebAssembly's register-like storage from a location
// expression; the rest are the generic opcodes needed to walk a frame-base
// offset or an already-computed address.
const (
	opAddr         = 0x03
	opDeref        = 0x06
	opConstu       = 0x10
	opPlusUconst   = 0x23
	opFbreg        = 0x91
	opWasmLocation = 0xed
)

// evalLocation runs the DWARF stack machine subset needed for WebAssembly
// locals/globals/stack/memory addressing and returns either a resolved
// register value or a memory address.
func (c *Container) evalLocation(expr []byte, snap Snapshot) (locVal, error) {
	if len(expr) == 0 {
		return locVal{}, fmt.Errorf("%w: empty location expression", ErrEvaluationFailure)
	}

	var stack []uint64
	push := func(v uint64) { stack = append(stack, v) }
	pop := func() uint64 {
		if len(stack) == 0 {
			return 0
		}
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return v
	}

	i := 0
	for i < len(expr) {
		op := expr[i]
		i++
		switch op {
		case opWasmLocation:
			kind, n := uleb128(expr[i:])
			i += n
			idx, n := uleb128(expr[i:])
			i += n
			switch kind {
			case 0: // local
				if int(idx) >= len(snap.Locals) {
					return locVal{}, fmt.Errorf("%w: local %d out of range", ErrEvaluationFailure, idx)
				}
				return locVal{kind: locRegister, reg: snap.Locals[idx]}, nil
			case 1: // global
				if int(idx) >= len(snap.Globals) {
					return locVal{}, fmt.Errorf("%w: global %d out of range", ErrEvaluationFailure, idx)
				}
				return locVal{kind: locRegister, reg: snap.Globals[idx]}, nil
			case 2: // operand stack
				if int(idx) >= len(snap.Stack) {
					return locVal{}, fmt.Errorf("%w: stack slot %d out of range", ErrEvaluationFailure, idx)
				}
				return locVal{kind: locRegister, reg: snap.Stack[idx]}, nil
			default:
				return locVal{}, fmt.Errorf("%w: unknown WASM_location kind %d", ErrEvaluationFailure, kind)
			}
		case opAddr:
			if i+4 > len(expr) {
				return locVal{}, fmt.Errorf("%w: truncated DW_OP_addr", ErrEvaluationFailure)
			}
			push(uint64(binary.LittleEndian.Uint32(expr[i : i+4])))
			i += 4
		case opConstu:
			v, n := uleb128(expr[i:])
			i += n
			push(v)
		case opPlusUconst:
			v, n := uleb128(expr[i:])
			i += n
			push(pop() + v)
		case opFbreg:
			v, n := sleb128(expr[i:])
			i += n
			// Frame base resolution (DW_AT_frame_base) isn't tracked by
			// this container; treat the module's sole linear memory as
			// based at 0, matching the common case of a LLVM-emitted
			// stack-pointer-relative frame base of 0 at function entry.
			push(uint64(v))
		case opDeref:
			return locVal{kind: locMemoryAddress, addr: pop()}, nil
		default:
			return locVal{}, fmt.Errorf("%w: unsupported opcode 0x%x", ErrEvaluationFailure, op)
		}
	}

	if len(stack) == 0 {
		return locVal{}, fmt.Errorf("%w: location expression produced no value", ErrEvaluationFailure)
	}
	return locVal{kind: locMemoryAddress, addr: stack[len(stack)-1]}, nil
}

// expandComposite materializes a composite variable's member list, given
// the composite's type DIE offset. Struct/union members are read as
// sibling TagMember DIEs of the type, each becoming a Variable addressed by
// MemberOffset rather than a location expression (their address depends on
// the live parent, unknowable at parse time; see Variable.MemberOffset).
// Pointers and arrays, which don't enumerate named members, synthesize a
// single pseudo-member representing the pointee / element 0.
func (c *Container) expandComposite(typeOff dwarf.Offset, baseLoc []byte) []Variable {
	ent := c.typesByOffset[typeOff]
	if ent == nil {
		ent = c.lookupEntry(typeOff)
	}
	if ent == nil {
		return nil
	}

	switch ent.Tag {
	case dwarf.TagPointerType, dwarf.TagArrayType:
		elemOff, ok := ent.Val(dwarf.AttrType).(dwarf.Offset)
		if !ok {
			return nil
		}
		c.nextGroupID++
		zero := int64(0)
		member := Variable{
			Name:         "*",
			DisplayName:  "*",
			Type:         c.resolveType(elemOff),
			MemberOffset: &zero,
			GroupID:      c.nextGroupID,
		}
		if member.Type.IsComposite {
			c.nextGroupID++
			member.ChildGroupID = c.nextGroupID
			c.pendingComposite = append(c.pendingComposite, pendingGroup{groupID: member.ChildGroupID, typeOffset: elemOff})
		}
		return []Variable{member}
	case dwarf.TagStructType, dwarf.TagUnionType:
		return c.structMembers(ent)
	default:
		return nil
	}
}

// structMembers reads a struct/union type DIE's TagMember children, each
// carrying a DW_AT_data_member_location giving its byte offset from the
// enclosing struct's address.
func (c *Container) structMembers(structEnt *dwarf.Entry) []Variable {
	r := c.data.Reader()
	r.Seek(structEnt.Offset)
	if _, err := r.Next(); err != nil {
		return nil
	}
	if !structEnt.Children {
		return nil
	}

	var members []Variable
	for {
		child, err := r.Next()
		if err != nil || child == nil || child.Tag == 0 {
			break
		}
		if child.Tag != dwarf.TagMember {
			r.SkipChildren()
			continue
		}
		name, _ := child.Val(dwarf.AttrName).(string)
		if name == "" {
			continue
		}
		var offset int64
		switch loc := child.Val(dwarf.AttrDataMemberLoc).(type) {
		case int64:
			offset = loc
		case []byte:
			// DW_FORM_block-encoded location, almost always a single
			// DW_OP_plus_uconst <offset> for struct members.
			if len(loc) > 1 && loc[0] == opPlusUconst {
				v, _ := uleb128(loc[1:])
				offset = int64(v)
			}
		}
		c.nextGroupID++
		v := Variable{
			Name:         name,
			DisplayName:  name,
			MemberOffset: &offset,
			GroupID:      c.nextGroupID,
		}
		if typeOff, ok := child.Val(dwarf.AttrType).(dwarf.Offset); ok {
			v.Type = c.resolveType(typeOff)
			if v.Type.IsComposite {
				c.nextGroupID++
				v.ChildGroupID = c.nextGroupID
				c.pendingComposite = append(c.pendingComposite, pendingGroup{groupID: v.ChildGroupID, typeOffset: typeOff})
			}
		}
		members = append(members, v)
	}
	return members
}

func uleb128(b []byte) (uint64, int) {
	var result uint64
	var shift uint
	n := 0
	for n < len(b) {
		byt := b[n]
		result |= uint64(byt&0x7f) << shift
		n++
		if byt&0x80 == 0 {
			break
		}
		shift += 7
	}
	return result, n
}

func sleb128(b []byte) (int64, int) {
	var result int64
	var shift uint
	n := 0
	var byt byte
	for n < len(b) {
		byt = b[n]
		result |= int64(byt&0x7f) << shift
		shift += 7
		n++
		if byt&0x80 == 0 {
			break
		}
	}
	if shift < 64 && byt&0x40 != 0 {
		result |= -1 << shift
	}
	return result, n
}
