package value

import "github.com/google/uuid"

// superKey caches a super-dispatched, already-bound method by the
// superclass that declared it and the method name (spec.md §4.6,
// "superclass-method caching keyed by (superclass name, method name)").
type superKey struct {
	SuperclassName string
	Method         string
}

// Instance is a runtime object: a class plus its own field values
// (spec.md §4.6). ID is an opaque identity tag, grounded on funvibe-funxy's
// use of google/uuid for runtime object identity — two Instances are never
// equal (value.Equals uses pointer identity), ID exists purely so logging
// and diagnostics can name an instance without printing its address.
type Instance struct {
	ID     uuid.UUID
	Class  *Class
	fields map[string]Value

	// Per-instance bound-method cache: once `this.method` is bound to this
	// instance's closure frame, the same *Function is reused for every
	// subsequent access (spec.md §4.6, "bound-method caching on instances").
	boundMethods map[string]*Function
	superBound   map[superKey]*Function
}

// NewInstance creates a fresh, fieldless instance of class.
func NewInstance(class *Class) *Instance {
	return &Instance{
		ID:     uuid.New(),
		Class:  class,
		fields: make(map[string]Value),
	}
}

func (*Instance) Type() string { return "instance" }

func (i *Instance) String() string { return i.Class.Name + " instance" }

// Field reads a previously-set field. It does not consult methods; the
// field/method resolution order lives in internal/interpreter's Get
// implementation, which needs environment access that this package doesn't
// have.
func (i *Instance) Field(name string) (Value, bool) {
	v, ok := i.fields[name]
	return v, ok
}

// SetField assigns a field, creating it if absent (spec.md §4.6: fields are
// not declared ahead of time).
func (i *Instance) SetField(name string, v Value) {
	i.fields[name] = v
}

// CachedMethod returns a previously-bound method, if any.
func (i *Instance) CachedMethod(name string) (*Function, bool) {
	m, ok := i.boundMethods[name]
	return m, ok
}

// CacheMethod stores a freshly-bound method for reuse.
func (i *Instance) CacheMethod(name string, fn *Function) {
	if i.boundMethods == nil {
		i.boundMethods = make(map[string]*Function)
	}
	i.boundMethods[name] = fn
}

// CachedSuperMethod returns a previously-bound super method, if any.
func (i *Instance) CachedSuperMethod(superclassName, method string) (*Function, bool) {
	m, ok := i.superBound[superKey{superclassName, method}]
	return m, ok
}

// CacheSuperMethod stores a freshly-bound super method for reuse.
func (i *Instance) CacheSuperMethod(superclassName, method string, fn *Function) {
	if i.superBound == nil {
		i.superBound = make(map[superKey]*Function)
	}
	i.superBound[superKey{superclassName, method}] = fn
}
