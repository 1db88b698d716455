package types

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/you-not-fish/lobster/internal/rtabi"
)

// Subobject is a slot in a class layout: the base class subobject or an
// object-typed data member.
type Subobject struct {
	Name   string // member name, or the base class name
	Type   Type
	Index  int  // member index, -1 for the base subobject
	IsBase bool // base class subobject
}

// Key returns the Record key holding the subobject's value.
func (so Subobject) Key() string {
	if so.IsBase {
		return BaseKey(so.Name)
	}
	return so.Name
}

// BaseKey returns the Record key of the base class subobject of a class
// derived from className. No member name can spell it.
func BaseKey(className string) string { return "::" + className }

// ClassDef is the definition shared by all qualified variants of a class
// type. It is mutable until Complete is called.
type ClassDef struct {
	ctx  *Context
	id   int // raw identity; see ClassTable.Find
	name string
	base *Class

	members     []*Var
	memberMap   map[string]*Var
	objMembers  []*Var
	subobjects  []Subobject
	size        int64
	reallyEmpty bool // size is the placeholder for an empty class

	constructors []*FuncObj
	destructor   *FuncObj
	scope        *Scope

	complete     bool
	tempComplete bool
}

// Class represents a class type. Identity is nominal: two class types are
// similar iff their definitions share a class identity.
type Class struct {
	typ
	def *ClassDef
}

// Def returns the shared class definition.
func (c *Class) Def() *ClassDef {
	return c.def
}

// Name returns the class name.
func (c *Class) Name() string {
	return c.def.name
}

// ID returns the class identity. Merged classes report the same ID.
func (c *Class) ID() int {
	return c.def.ctx.classes.Find(c.def.id)
}

// BaseClass returns the base class, or nil.
func (c *Class) BaseClass() *Class {
	return c.def.base
}

// Scope returns the class member scope.
func (c *Class) Scope() *Scope {
	return c.def.scope
}

// Members returns all data members in declaration order, including
// members that take no part in the layout.
func (c *Class) Members() []*Var {
	return c.def.members
}

// Member returns the data member with the given name, or nil.
func (c *Class) Member(name string) *Var {
	return c.def.memberMap[name]
}

// HasMember reports whether name is declared in the class or, unless
// noBase is set, in one of its base classes.
func (c *Class) HasMember(name string, noBase bool) bool {
	return c.def.scope.SingleLookup(name, LookupOptions{Own: true, NoBase: noBase}) != nil
}

// ObjectMembers returns the member subobjects in layout order.
func (c *Class) ObjectMembers() []*Var {
	return c.def.objMembers
}

// Subobjects returns the base subobject, if any, followed by the member
// subobjects. This is the canonical order for copying and encoding.
func (c *Class) Subobjects() []Subobject {
	return c.def.subobjects
}

// ReallyZeroSize reports whether the class has no base and no member
// subobjects; its size of 1 is then only a placeholder.
func (c *Class) ReallyZeroSize() bool {
	return c.def.reallyEmpty
}

// Size implements Type.
func (c *Class) Size() int64 {
	return c.def.size
}

// String implements Type.
func (c *Class) String() string {
	return TypeString(c, false, "")
}

func (c *Class) withQualifiers(q Qualifiers) Type {
	d := *c
	d.cv = q
	return &d
}

// Complete marks the class definition as finished. Afterwards members,
// constructors and destructors can no longer be added.
func (c *Class) Complete() {
	c.def.complete = true
	Logger().Debug("class completed",
		zap.String("class", c.def.name),
		zap.Int64("size", c.def.size))
}

// SetTemporarilyComplete lets a class under definition be used where a
// complete type is required, e.g. for members referring to the class
// itself.
func (c *Class) SetTemporarilyComplete() {
	c.def.tempComplete = true
}

// UnsetTemporarilyComplete reverts SetTemporarilyComplete.
func (c *Class) UnsetTemporarilyComplete() {
	c.def.tempComplete = false
}

func (c *Class) mustBeOpen(op string) {
	if c.def.complete {
		panic(fmt.Sprintf("types: %s on completed class %s", op, c.def.name))
	}
}

// AddMember appends a data member. Object-typed members become member
// subobjects and grow the class; others are only declared in the scope.
// It panics if the class already declares the name.
func (c *Class) AddMember(v *Var) {
	c.mustBeOpen("AddMember")
	d := c.def
	if prev := d.scope.Insert(v); prev != nil {
		panic(fmt.Sprintf("types: member %s redeclared in class %s", v.name, d.name))
	}
	d.members = append(d.members, v)
	d.memberMap[v.name] = v
	if !IsObjectType(v.typ) {
		return
	}
	if d.reallyEmpty {
		d.size = 0
		d.reallyEmpty = false
	}
	v.index = len(d.objMembers)
	d.objMembers = append(d.objMembers, v)
	d.subobjects = append(d.subobjects, Subobject{Name: v.name, Type: v.typ, Index: v.index})
	d.size += v.typ.Size()
	d.ctx.noteSize(d.size)
}

// AddConstructor registers a constructor. Constructors are declared in
// the class scope under a name no identifier can spell.
func (c *Class) AddConstructor(f *FuncObj) {
	c.mustBeOpen("AddConstructor")
	c.def.constructors = append(c.def.constructors, f)
	c.def.scope.insert(constructorKey(c.def.name), f)
}

// AddDestructor registers the destructor.
func (c *Class) AddDestructor(f *FuncObj) {
	c.mustBeOpen("AddDestructor")
	c.def.destructor = f
	c.def.scope.insert(destructorKey(c.def.name), f)
}

// Constructors returns the registered constructors.
func (c *Class) Constructors() []*FuncObj {
	return c.def.constructors
}

func constructorKey(className string) string { return className + "\x00" }
func destructorKey(className string) string  { return "~" + className }

func (c *Class) ownFunc(name string, params ...Type) *FuncObj {
	obj := c.def.scope.SingleLookup(name, LookupOptions{
		Own: true, NoBase: true, ExactMatch: true, ParamTypes: params,
	})
	f, _ := obj.(*FuncObj)
	return f
}

// DefaultConstructor returns the constructor taking no arguments, or nil.
func (c *Class) DefaultConstructor() *FuncObj {
	return c.ownFunc(constructorKey(c.def.name))
}

// CopyConstructor returns the constructor taking a const reference to the
// class or, unless requireConst is set, a non-const reference.
func (c *Class) CopyConstructor(requireConst bool) *FuncObj {
	key := constructorKey(c.def.name)
	if f := c.ownFunc(key, newReference(CVQualified(c, true, false))); f != nil {
		return f
	}
	if requireConst {
		return nil
	}
	return c.ownFunc(key, newReference(CVUnqualified(c)))
}

// AssignmentOperator returns the operator= taking the class by value or
// by const reference or, unless requireConst is set, by non-const
// reference.
func (c *Class) AssignmentOperator(requireConst bool) *FuncObj {
	if f := c.ownFunc("operator=", CVUnqualified(c)); f != nil {
		return f
	}
	if f := c.ownFunc("operator=", newReference(CVQualified(c, true, false))); f != nil {
		return f
	}
	if requireConst {
		return nil
	}
	return c.ownFunc("operator=", newReference(CVUnqualified(c)))
}

// Destructor returns the destructor, or nil.
func (c *Class) Destructor() *FuncObj {
	obj := c.def.scope.SingleLookup(destructorKey(c.def.name), LookupOptions{Own: true, NoBase: true})
	f, _ := obj.(*FuncObj)
	return f
}

// IsDerivedFrom reports whether base is a direct or indirect base class
// of c.
func (c *Class) IsDerivedFrom(base *Class) bool {
	for b := c.def.base; b != nil; b = b.def.base {
		if SimilarType(base, b) {
			return true
		}
	}
	return false
}

// ClassTable assigns class identities and merges them when a forward
// declaration and its definition turn out to denote the same class.
// Merged identities form a union-find set whose root is the smallest id.
type ClassTable struct {
	parent []int
	names  []string
}

func (t *ClassTable) add(name string) int {
	id := len(t.parent)
	t.parent = append(t.parent, id)
	t.names = append(t.names, name)
	return id
}

// Len returns the number of identities assigned.
func (t *ClassTable) Len() int {
	return len(t.parent)
}

// Find returns the representative identity of id.
func (t *ClassTable) Find(id int) int {
	root := id
	for t.parent[root] != root {
		root = t.parent[root]
	}
	for t.parent[id] != root {
		t.parent[id], id = root, t.parent[id]
	}
	return root
}

// Union merges the sets of a and b and returns the new representative,
// which is the smaller of the two roots.
func (t *ClassTable) Union(a, b int) int {
	ra, rb := t.Find(a), t.Find(b)
	if ra == rb {
		return ra
	}
	if rb < ra {
		ra, rb = rb, ra
	}
	t.parent[rb] = ra
	return ra
}

func newClassDef(ctx *Context, name string, base *Class) *ClassDef {
	d := &ClassDef{
		ctx:         ctx,
		id:          ctx.classes.add(name),
		name:        name,
		base:        base,
		memberMap:   make(map[string]*Var),
		size:        rtabi.SizeEmptyClass,
		reallyEmpty: true,
	}
	var baseScope *Scope
	if base != nil {
		baseScope = base.def.scope
		d.subobjects = append(d.subobjects, Subobject{Name: base.def.name, Type: base, Index: -1, IsBase: true})
		d.size = base.Size()
		d.reallyEmpty = false
	}
	d.scope = NewClassScope(ctx.universe, baseScope, name)
	return d
}

// Name returns the class name registered for id.
func (t *ClassTable) Name(id int) string {
	return t.names[id]
}
