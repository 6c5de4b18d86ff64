package interpreter

import (
	"github.com/cwbudde/loxwalk/internal/ast"
	"github.com/cwbudde/loxwalk/internal/token"
	"github.com/cwbudde/loxwalk/internal/value"
)

func (in *Interpreter) evalExpr(e ast.Expr) (value.Value, error) {
	switch n := e.(type) {
	case *ast.Literal:
		return literalValue(n.Value), nil
	case *ast.Grouping:
		return in.evalExpr(n.Expression)
	case *ast.Unary:
		return in.evalUnary(n)
	case *ast.Binary:
		return in.evalBinary(n)
	case *ast.Logical:
		return in.evalLogical(n)
	case *ast.Var:
		return in.evalVar(n)
	case *ast.Assign:
		return in.evalAssign(n)
	case *ast.Call:
		return in.evalCall(n)
	case *ast.Get:
		return in.evalGet(n)
	case *ast.Set:
		return in.evalSet(n)
	case *ast.This:
		return in.evalThis(n)
	case *ast.Super:
		return in.evalSuper(n)
	default:
		panic("interpreter: unhandled expression type")
	}
}

func literalValue(v any) value.Value {
	switch lit := v.(type) {
	case nil:
		return value.Nil
	case float64:
		return value.Number(lit)
	case string:
		return value.Str(lit)
	case bool:
		return value.Bool(lit)
	default:
		return value.Nil
	}
}

func (in *Interpreter) evalUnary(n *ast.Unary) (value.Value, error) {
	right, err := in.evalExpr(n.Right)
	if err != nil {
		return nil, err
	}
	switch n.Operator.Type {
	case token.Minus:
		num, ok := right.(value.Number)
		if !ok {
			return nil, in.runtimeErr(n.Operator.Line, "Operand must be a number.")
		}
		return -num, nil
	case token.Bang:
		return value.Bool(!value.IsTruthy(right)), nil
	default:
		panic("interpreter: unhandled unary operator")
	}
}

func (in *Interpreter) evalBinary(n *ast.Binary) (value.Value, error) {
	left, err := in.evalExpr(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.evalExpr(n.Right)
	if err != nil {
		return nil, err
	}

	switch n.Operator.Type {
	case token.Plus:
		if ln, ok := left.(value.Number); ok {
			if rn, ok := right.(value.Number); ok {
				return ln + rn, nil
			}
		}
		if ls, ok := left.(value.Str); ok {
			if rs, ok := right.(value.Str); ok {
				return ls + rs, nil
			}
		}
		return nil, in.runtimeErr(n.Operator.Line, "Operands must be two numbers or two strings.")
	case token.Minus:
		ln, rn, ok := numberPair(left, right)
		if !ok {
			return nil, in.runtimeErr(n.Operator.Line, "Operands must be numbers.")
		}
		return ln - rn, nil
	case token.Star:
		ln, rn, ok := numberPair(left, right)
		if !ok {
			return nil, in.runtimeErr(n.Operator.Line, "Operands must be numbers.")
		}
		return ln * rn, nil
	case token.Slash:
		ln, rn, ok := numberPair(left, right)
		if !ok {
			return nil, in.runtimeErr(n.Operator.Line, "Operands must be numbers.")
		}
		// lhs / rhs: the mathematically expected direction (see
		// Open Question decisions in DESIGN.md).
		return ln / rn, nil
	case token.Greater:
		ln, rn, ok := numberPair(left, right)
		if !ok {
			return nil, in.runtimeErr(n.Operator.Line, "Operands must be numbers.")
		}
		return value.Bool(ln > rn), nil
	case token.GreaterEqual:
		ln, rn, ok := numberPair(left, right)
		if !ok {
			return nil, in.runtimeErr(n.Operator.Line, "Operands must be numbers.")
		}
		return value.Bool(ln >= rn), nil
	case token.Less:
		ln, rn, ok := numberPair(left, right)
		if !ok {
			return nil, in.runtimeErr(n.Operator.Line, "Operands must be numbers.")
		}
		return value.Bool(ln < rn), nil
	case token.LessEqual:
		ln, rn, ok := numberPair(left, right)
		if !ok {
			return nil, in.runtimeErr(n.Operator.Line, "Operands must be numbers.")
		}
		return value.Bool(ln <= rn), nil
	case token.EqualEqual:
		return value.Bool(value.Equals(left, right)), nil
	case token.BangEqual:
		return value.Bool(!value.Equals(left, right)), nil
	default:
		panic("interpreter: unhandled binary operator")
	}
}

func numberPair(l, r value.Value) (value.Number, value.Number, bool) {
	ln, ok := l.(value.Number)
	if !ok {
		return 0, 0, false
	}
	rn, ok := r.(value.Number)
	if !ok {
		return 0, 0, false
	}
	return ln, rn, true
}

// evalLogical short-circuits and returns the deciding operand itself, not a
// forced bool (spec.md §4.3).
func (in *Interpreter) evalLogical(n *ast.Logical) (value.Value, error) {
	left, err := in.evalExpr(n.Left)
	if err != nil {
		return nil, err
	}
	if n.Operator.Type == token.Or {
		if value.IsTruthy(left) {
			return left, nil
		}
	} else {
		if !value.IsTruthy(left) {
			return left, nil
		}
	}
	return in.evalExpr(n.Right)
}

func (in *Interpreter) evalVar(n *ast.Var) (value.Value, error) {
	v, ok := in.env.Get(n.Name.Lexeme, n.ScopeOffset)
	if !ok {
		return nil, in.runtimeErr(n.Name.Line, "Undefined variable '%s'.", n.Name.Lexeme)
	}
	return v, nil
}

func (in *Interpreter) evalAssign(n *ast.Assign) (value.Value, error) {
	v, err := in.evalExpr(n.Value)
	if err != nil {
		return nil, err
	}
	if !in.env.Assign(n.Name.Lexeme, v, n.ScopeOffset) {
		return nil, in.runtimeErr(n.Name.Line, "Undefined variable '%s'.", n.Name.Lexeme)
	}
	return v, nil
}

func (in *Interpreter) evalThis(n *ast.This) (value.Value, error) {
	v, ok := in.env.Get(n.Keyword.Lexeme, n.ScopeOffset)
	if !ok {
		return nil, in.runtimeErr(n.Keyword.Line, "Undefined variable 'this'.")
	}
	return v, nil
}
