package value

// Class is a runtime class value (spec.md §4.6). Methods holds only the
// methods declared directly on this class; lookups that cross into a
// superclass go through FindMethod.
type Class struct {
	Name       string
	Superclass *Class // nil for a class with no `< Superclass` clause
	Methods    map[string]*Function
}

func (*Class) Type() string { return "class" }

func (c *Class) String() string { return c.Name }

// FindMethod looks up name on c, then walks the superclass chain
// (spec.md §4.6, "method lookup"). It returns nil if no class in the chain
// declares the method.
func (c *Class) FindMethod(name string) *Function {
	for cls := c; cls != nil; cls = cls.Superclass {
		if m, ok := cls.Methods[name]; ok {
			return m
		}
	}
	return nil
}

// Arity is the instantiation arity: the arity of `init` if the class (or an
// ancestor) declares one, else zero (spec.md §4.6).
func (c *Class) Arity() int {
	if init := c.FindMethod("init"); init != nil {
		return init.Arity()
	}
	return 0
}
