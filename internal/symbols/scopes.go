package symbols

import "debug/dwarf"

// buildScopes walks every compilation unit once, the way wzprof's
// dwarfparser.parseCompileUnit/parseAny/parseSubprogram walk the entry tree
// (recursing into namespaces and lexical blocks, collecting subprograms),
// but instead of flattening to source-offset ranges we build a scope tree:
// each TagSubprogram/TagLexicalBlock/TagInlinedSubroutine becomes a Scope
// node with its own variable list, nested under its lexical parent. The
// tree is built bottom-up per the design notes: children are fully formed
// before being attached to their parent, so no scope is half-built when
// referenced.
func (c *Container) buildScopes() error {
	r := c.data.Reader()
	for {
		ent, err := r.Next()
		if err != nil {
			return err
		}
		if ent == nil {
			break
		}
		if ent.Tag != dwarf.TagCompileUnit {
			r.SkipChildren()
			continue
		}
		if err := c.walkCompileUnit(r, ent); err != nil {
			return err
		}
	}
	return nil
}

func (c *Container) walkCompileUnit(r *dwarf.Reader, cu *dwarf.Entry) error {
	for {
		ent, err := r.Next()
		if err != nil {
			return err
		}
		if ent == nil || ent.Tag == 0 {
			return nil
		}
		switch ent.Tag {
		case dwarf.TagSubprogram:
			scope, err := c.walkScope(r, ent, nil)
			if err != nil {
				return err
			}
			if scope != nil {
				c.scopes = append(c.scopes, scope)
			}
		case dwarf.TagVariable:
			if v, ok := c.buildVariable(ent); ok {
				c.globals = append(c.globals, v)
			}
			r.SkipChildren()
		case dwarf.TagTypedef, dwarf.TagStructType, dwarf.TagUnionType, dwarf.TagArrayType, dwarf.TagPointerType, dwarf.TagBaseType:
			c.typesByOffset[ent.Offset] = ent
			r.SkipChildren()
		default:
			r.SkipChildren()
		}
	}
}

// walkScope turns one TagSubprogram/TagLexicalBlock/TagInlinedSubroutine
// entry and its children into a Scope, recursing into nested lexical
// blocks. Variable and formal-parameter children become the scope's
// Variables; nested scope-bearing children become its Children.
func (c *Container) walkScope(r *dwarf.Reader, ent *dwarf.Entry, parent *Scope) (*Scope, error) {
	ranges, err := c.data.Ranges(ent)
	if err != nil {
		ranges = nil
	}
	scope := &Scope{Parent: parent}
	if name, ok := ent.Val(dwarf.AttrName).(string); ok {
		scope.Name = name
	}
	for _, pcr := range ranges {
		scope.Ranges = append(scope.Ranges, [2]Address{Address(pcr[0]), Address(pcr[1])})
	}

	if !ent.Children {
		return scope, nil
	}
	for {
		child, err := r.Next()
		if err != nil {
			return nil, err
		}
		if child == nil || child.Tag == 0 {
			break
		}
		switch child.Tag {
		case dwarf.TagLexDwarfBlock, dwarf.TagInlinedSubroutine:
			nested, err := c.walkScope(r, child, scope)
			if err != nil {
				return nil, err
			}
			if nested != nil {
				scope.Children = append(scope.Children, nested)
			}
		case dwarf.TagFormalParameter, dwarf.TagVariable:
			if v, ok := c.buildVariable(child); ok {
				scope.Variables = append(scope.Variables, v)
			}
			r.SkipChildren()
		case dwarf.TagTypedef, dwarf.TagStructType, dwarf.TagUnionType, dwarf.TagArrayType, dwarf.TagPointerType, dwarf.TagBaseType:
			c.typesByOffset[child.Offset] = child
			r.SkipChildren()
		default:
			r.SkipChildren()
		}
	}
	return scope, nil
}

// buildVariable resolves one TagVariable/TagFormalParameter entry into a
// Variable, assigning group IDs per the design: every variable gets a
// GroupID, and a composite type additionally gets a ChildGroupID whose
// members are computed lazily on first expansion request (see
// Container.groupMembers and expandComposite in eval.go).
func (c *Container) buildVariable(ent *dwarf.Entry) (Variable, bool) {
	name, _ := ent.Val(dwarf.AttrName).(string)
	if name == "" {
		return Variable{}, false
	}

	loc, _ := ent.Val(dwarf.AttrLocation).([]byte)

	c.nextGroupID++
	v := Variable{
		Name:        name,
		DisplayName: demangle(name),
		Location:    loc,
		GroupID:     c.nextGroupID,
	}

	if typeOff, ok := ent.Val(dwarf.AttrType).(dwarf.Offset); ok {
		v.Type = c.resolveType(typeOff)
		if v.Type.IsComposite {
			c.nextGroupID++
			v.ChildGroupID = c.nextGroupID
			c.pendingComposite = append(c.pendingComposite, pendingGroup{groupID: v.ChildGroupID, typeOffset: typeOff, baseLoc: loc})
		}
	}
	return v, true
}

// demangle produces a variable's DisplayName. It returns name unchanged in
// every case: no Itanium demangling is done, so a "_Z"-prefixed name keeps
// its mangled spelling as its DisplayName.
func demangle(name string) string {
	if len(name) > 2 && name[:2] == "_Z" {
		return name // full demangling not attempted; expression lookup still uses Name as a fallback
	}
	return name
}

// pendingGroup records a composite variable's child-group expansion,
// computed lazily the first time a caller asks for that group (see
// Container.groupMembers / expandComposite in eval.go) rather than eagerly at
// parse time, matching the "lazily expand" requirement in the design.
type pendingGroup struct {
	groupID    int
	typeOffset dwarf.Offset
	baseLoc    []byte
}
