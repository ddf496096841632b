package golet

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

type binding struct {
	name  string
	value Value
}

type function struct {
	name   string
	params []string
	body   Node
	native Fn
}

// Env holds the variable and function bindings visible to the expression
// being evaluated. Both are stacks: entering a let, a call or a function
// definition pushes, leaving it pops, and lookup scans from the top so a
// newer binding shadows an older one. An Env must not be shared between
// goroutines.
type Env struct {
	vars  []binding
	fncs  []function
	log   logrus.FieldLogger
	depth int
}

type Option func(*Env)

// WithLogger sends evaluation traces to l at debug level.
func WithLogger(l logrus.FieldLogger) Option {
	return func(e *Env) {
		e.log = l
	}
}

// WithBuiltins makes the native functions available. User definitions
// shadow them.
func WithBuiltins() Option {
	return func(e *Env) {
		for _, name := range builtinNames() {
			b := builtins[name]
			e.fncs = append(e.fncs, function{
				name:   name,
				params: b.params,
				native: b.fn,
			})
		}
	}
}

func NewEnv(opts ...Option) *Env {
	l := logrus.New()
	l.Out = io.Discard
	e := &Env{
		log: l,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate evaluates node in an empty environment.
func Evaluate(node Node) (Value, error) {
	return NewEnv().Eval(node)
}

// Eval evaluates node. The environment is left as it was found, whether
// evaluation succeeds, fails, or panics with an ArithmeticError.
func (e *Env) Eval(node Node) (Value, error) {
	if node == nil {
		return Value{}, ErrNothingToEval
	}
	return e.eval(node)
}

// Load evaluates a declaration-only chain and keeps its bindings, so that
// later calls to Eval can see them. Nothing is kept if loading fails.
func (e *Env) Load(node Node) error {
	nv, nf := len(e.vars), len(e.fncs)
	ok := false
	defer func() {
		if !ok {
			e.vars = e.vars[:nv]
			e.fncs = e.fncs[:nf]
		}
	}()
	for node != nil {
		switch n := node.(type) {
		case *Let:
			v, err := e.eval(n.Value)
			if err != nil {
				return err
			}
			e.vars = append(e.vars, binding{name: n.Name, value: v})
			node = n.Then
		case *FuncDef:
			e.fncs = append(e.fncs, function{name: n.Name, params: n.Params, body: n.Body})
			node = n.Then
		default:
			return fmt.Errorf("only declarations can be loaded, found %v", node)
		}
	}
	ok = true
	return nil
}

// Vars returns the names of the visible variables, oldest first.
func (e *Env) Vars() []string {
	names := make([]string, len(e.vars))
	for i, b := range e.vars {
		names[i] = b.name
	}
	return names
}

// Funcs returns the names of the visible functions, oldest first.
func (e *Env) Funcs() []string {
	names := make([]string, len(e.fncs))
	for i, f := range e.fncs {
		names[i] = f.name
	}
	return names
}

func (e *Env) lookupVar(name string) (Value, bool) {
	for i := len(e.vars) - 1; i >= 0; i-- {
		if e.vars[i].name == name {
			return e.vars[i].value, true
		}
	}
	return Value{}, false
}

func (e *Env) lookupFunc(name string) (function, bool) {
	for i := len(e.fncs) - 1; i >= 0; i-- {
		if e.fncs[i].name == name {
			return e.fncs[i], true
		}
	}
	return function{}, false
}

func (e *Env) eval(node Node) (Value, error) {
	switch n := node.(type) {
	case *Number:
		return n.Value, nil
	case *Negate:
		v, err := e.eval(n.X)
		if err != nil {
			return Value{}, err
		}
		return v.Neg(), nil
	case *Binary:
		lhs, err := e.eval(n.Left)
		if err != nil {
			return Value{}, err
		}
		rhs, err := e.eval(n.Right)
		if err != nil {
			return Value{}, err
		}
		switch n.Op {
		case OpAdd:
			return lhs.Add(rhs), nil
		case OpSub:
			return lhs.Sub(rhs), nil
		case OpMul:
			return lhs.Mul(rhs), nil
		case OpDiv:
			return lhs.Div(rhs), nil
		}
		return Value{}, fmt.Errorf("invalid operator: %v", n.Op)
	case *Ident:
		v, ok := e.lookupVar(n.Name)
		if !ok {
			return Value{}, &VariableNotFoundError{Name: n.Name}
		}
		return v, nil
	case *Let:
		return e.evalLet(n)
	case *Call:
		return e.call(n)
	case *FuncDef:
		return e.evalFuncDef(n)
	}
	return Value{}, fmt.Errorf("cannot evaluate %v", node)
}

func (e *Env) evalLet(n *Let) (Value, error) {
	// The new name is not visible to its own right-hand side.
	v, err := e.eval(n.Value)
	if err != nil {
		return Value{}, err
	}
	e.log.WithFields(logrus.Fields{
		"name":  n.Name,
		"value": v,
		"depth": e.depth,
	}).Debug("let")
	e.vars = append(e.vars, binding{name: n.Name, value: v})
	defer func() {
		e.vars = e.vars[:len(e.vars)-1]
	}()
	if n.Then == nil {
		return Value{}, ErrNothingToEval
	}
	return e.eval(n.Then)
}

func (e *Env) evalFuncDef(n *FuncDef) (Value, error) {
	e.fncs = append(e.fncs, function{
		name:   n.Name,
		params: n.Params,
		body:   n.Body,
	})
	defer func() {
		e.fncs = e.fncs[:len(e.fncs)-1]
	}()
	if n.Then == nil {
		return Value{}, ErrNothingToEval
	}
	return e.eval(n.Then)
}

func (e *Env) call(n *Call) (Value, error) {
	fn, ok := e.lookupFunc(n.Name)
	if !ok {
		return Value{}, &FunctionNotInScopeError{Name: n.Name}
	}
	if len(fn.params) != len(n.Args) {
		return Value{}, &WrongNumArgsError{
			Name:     n.Name,
			Expected: len(fn.params),
			Found:    len(n.Args),
		}
	}

	// Arguments see the caller's scope and are evaluated left to right.
	args := make([]Value, len(n.Args))
	for i, arg := range n.Args {
		v, err := e.eval(arg)
		if err != nil {
			return Value{}, err
		}
		args[i] = v
	}
	e.log.WithFields(logrus.Fields{
		"func":  n.Name,
		"args":  args,
		"depth": e.depth,
	}).Debug("call")

	if fn.native != nil {
		return fn.native(args)
	}

	base := len(e.vars)
	for i, name := range fn.params {
		e.vars = append(e.vars, binding{name: name, value: args[i]})
	}
	e.depth++
	defer func() {
		e.vars = e.vars[:base]
		e.depth--
	}()
	return e.eval(fn.body)
}
