package interpreter

import (
	"github.com/cwbudde/loxwalk/internal/ast"
	"github.com/cwbudde/loxwalk/internal/value"
)

func (in *Interpreter) evalCall(n *ast.Call) (value.Value, error) {
	callee, err := in.evalExpr(n.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]value.Value, len(n.Arguments))
	for i, a := range n.Arguments {
		v, err := in.evalExpr(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	return in.callValue(callee, args, n.Paren.Line)
}

// callValue implements spec.md §4.3's call dispatch across the three
// callable variants, plus the fallback error for anything else.
func (in *Interpreter) callValue(callee value.Value, args []value.Value, line int) (value.Value, error) {
	switch fn := callee.(type) {
	case *value.Function:
		if len(args) != fn.Arity() {
			return nil, in.runtimeErr(line, "Expected %d arguments but got %d.", fn.Arity(), len(args))
		}
		return in.callUserFunction(fn, args, line)
	case *value.NativeFunction:
		if len(args) != fn.Arity {
			return nil, in.runtimeErr(line, "Expected %d arguments but got %d.", fn.Arity, len(args))
		}
		result, nativeErr := fn.Fn(args)
		if nativeErr != nil {
			return nil, in.runtimeErr(line, "%s: %s", fn.Name, nativeErr.Error())
		}
		return result, nil
	case *value.Class:
		return in.instantiate(fn, args, line)
	default:
		return nil, in.runtimeErr(line, "Can only call functions and classes.")
	}
}

// callUserFunction is the user-function call protocol (spec.md §4.5).
func (in *Interpreter) callUserFunction(fn *value.Function, args []value.Value, line int) (value.Value, error) {
	if err := in.calls.Push(fn.Declaration.Name.Lexeme, line); err != nil {
		return nil, err
	}
	defer in.calls.Pop()
	in.callCount++

	restore := in.env.Checkout(fn.ClosureID)
	defer restore()

	in.env.Push()
	defer in.env.Pop()

	for i, p := range fn.Declaration.Params {
		in.env.Define(p.Lexeme, args[i])
	}

	ctrl, err := in.execStmts(fn.Declaration.Body)
	if err != nil {
		return nil, err
	}

	if fn.IsInitializer {
		// "this" was bound one frame above the parameter frame we just
		// pushed, by bindMethod — regardless of how deeply the body's own
		// blocks nested and unwound, execStmts leaves us back at exactly
		// that parameter frame, so distance 1 always reaches it.
		this, ok := in.env.Get("this", distance(1))
		if !ok {
			return nil, in.runtimeErr(line, "internal error: initializer has no bound 'this'")
		}
		return this, nil
	}

	if ctrl.kind == ctrlReturn {
		return ctrl.value, nil
	}
	return value.Nil, nil
}

// instantiate implements the `Class` callee case of spec.md §4.3: construct
// an Instance, run `init` if the class declares one, and return the
// instance (never the initializer's own result, which bindMethod/
// callUserFunction always forces to `this` anyway).
func (in *Interpreter) instantiate(class *value.Class, args []value.Value, line int) (value.Value, error) {
	if len(args) != class.Arity() {
		return nil, in.runtimeErr(line, "Expected %d arguments but got %d.", class.Arity(), len(args))
	}
	instance := value.NewInstance(class)
	if init := class.FindMethod("init"); init != nil {
		bound := in.bindMethod(init, instance)
		if _, err := in.callUserFunction(bound, args, line); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

// bindMethod implements spec.md §4.5's bind(instance): a fresh frame under
// the method's own closure, containing only `this`, frozen so it survives
// past the current block (the instance may outlive it).
func (in *Interpreter) bindMethod(method *value.Function, instance *value.Instance) *value.Function {
	restore := in.env.Checkout(method.ClosureID)
	defer restore()

	in.env.Push()
	in.env.Define("this", instance)
	frozen := in.env.RetainCurrent()
	in.env.Pop()

	return &value.Function{
		Declaration:   method.Declaration,
		ClosureID:     frozen,
		IsInitializer: method.IsInitializer,
	}
}

func (in *Interpreter) evalGet(n *ast.Get) (value.Value, error) {
	obj, err := in.evalExpr(n.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*value.Instance)
	if !ok {
		return nil, in.runtimeErr(n.Name.Line, "Only instances have properties.")
	}
	return in.getProperty(instance, n.Name.Lexeme, n.Name.Line)
}

// getProperty implements Instance.get (spec.md §4.6).
func (in *Interpreter) getProperty(instance *value.Instance, name string, line int) (value.Value, error) {
	if v, ok := instance.Field(name); ok {
		return v, nil
	}
	if m, ok := instance.CachedMethod(name); ok {
		return m, nil
	}
	if method := instance.Class.FindMethod(name); method != nil {
		bound := in.bindMethod(method, instance)
		instance.CacheMethod(name, bound)
		return bound, nil
	}
	return nil, in.runtimeErr(line, "Undefined property '%s'.", name)
}

func (in *Interpreter) evalSet(n *ast.Set) (value.Value, error) {
	obj, err := in.evalExpr(n.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*value.Instance)
	if !ok {
		return nil, in.runtimeErr(n.Name.Line, "Only instances have fields.")
	}
	v, err := in.evalExpr(n.Value)
	if err != nil {
		return nil, err
	}
	instance.SetField(n.Name.Lexeme, v)
	return v, nil
}

// evalSuper implements spec.md §4.3's Super evaluation: the superclass
// value sits at the resolved distance, `this` one scope tighter.
func (in *Interpreter) evalSuper(n *ast.Super) (value.Value, error) {
	if n.ScopeOffset == nil {
		return nil, in.runtimeErr(n.Keyword.Line, "internal error: unresolved 'super'")
	}
	superVal, ok := in.env.Get("super", n.ScopeOffset)
	if !ok {
		return nil, in.runtimeErr(n.Keyword.Line, "Undefined variable 'super'.")
	}
	superclass, ok := superVal.(*value.Class)
	if !ok {
		return nil, in.runtimeErr(n.Keyword.Line, "internal error: 'super' is not a class")
	}

	thisDistance := *n.ScopeOffset - 1
	thisVal, ok := in.env.Get("this", distance(thisDistance))
	if !ok {
		return nil, in.runtimeErr(n.Keyword.Line, "Undefined variable 'this'.")
	}
	instance, ok := thisVal.(*value.Instance)
	if !ok {
		return nil, in.runtimeErr(n.Keyword.Line, "internal error: 'this' is not an instance")
	}

	if cached, ok := instance.CachedSuperMethod(superclass.Name, n.Method.Lexeme); ok {
		return cached, nil
	}
	method := superclass.FindMethod(n.Method.Lexeme)
	if method == nil {
		return nil, in.runtimeErr(n.Method.Line, "Undefined property '%s'.", n.Method.Lexeme)
	}
	bound := in.bindMethod(method, instance)
	instance.CacheSuperMethod(superclass.Name, n.Method.Lexeme, bound)
	return bound, nil
}
