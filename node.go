package golet

import (
	"bytes"
	"fmt"
	"strings"
)

// Node is an element of the syntax tree built by Parse. Every node is owned
// by its parent and is never modified after construction.
type Node interface {
	fmt.Stringer
	node()
}

type Op int

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
)

func (op Op) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	}
	return "?"
}

// Number is a literal.
type Number struct {
	Value Value
}

// Negate is prefix minus.
type Negate struct {
	X Node
}

// Binary is one of + - * /.
type Binary struct {
	Op    Op
	Left  Node
	Right Node
}

// Ident refers to a variable bound by an enclosing let or a parameter.
type Ident struct {
	Name string
}

// Let binds Name to Value for the evaluation of Then. Then is nil when the
// binding is the last thing in the program.
type Let struct {
	Name  string
	Value Node
	Then  Node
}

// Call invokes a function with arguments evaluated in the caller's scope.
type Call struct {
	Name string
	Args []Node
}

// FuncDef defines Name for the evaluation of Then.
type FuncDef struct {
	Name   string
	Params []string
	Body   Node
	Then   Node
}

// BadExpr stands in for a syntactically broken region that the parser
// skipped. It only appears in trees that failed to parse and is never
// returned to callers.
type BadExpr struct {
	Pos, End int
}

func (*Number) node()  {}
func (*Negate) node()  {}
func (*Binary) node()  {}
func (*Ident) node()   {}
func (*Let) node()     {}
func (*Call) node()    {}
func (*FuncDef) node() {}
func (*BadExpr) node() {}

func (n *Number) String() string {
	return n.Value.GoString()
}

func (n *Negate) String() string {
	return fmt.Sprintf("(- %v)", n.X)
}

func (n *Binary) String() string {
	return fmt.Sprintf("(%v %v %v)", n.Op, n.Left, n.Right)
}

func (n *Ident) String() string {
	return n.Name
}

func (n *Let) String() string {
	if n.Then == nil {
		return fmt.Sprintf("(let %s %v)", n.Name, n.Value)
	}
	return fmt.Sprintf("(let %s %v %v)", n.Name, n.Value, n.Then)
}

func (n *Call) String() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "(call %s", n.Name)
	for _, arg := range n.Args {
		fmt.Fprintf(&buf, " %v", arg)
	}
	buf.WriteString(")")
	return buf.String()
}

func (n *FuncDef) String() string {
	params := "(" + strings.Join(n.Params, " ") + ")"
	if n.Then == nil {
		return fmt.Sprintf("(func %s %s %v)", n.Name, params, n.Body)
	}
	return fmt.Sprintf("(func %s %s %v %v)", n.Name, params, n.Body, n.Then)
}

func (n *BadExpr) String() string {
	return "<bad>"
}

// IsDecl reports whether n is a chain of let/func declarations with no
// trailing expression.
func IsDecl(n Node) bool {
	for {
		switch x := n.(type) {
		case *Let:
			if x.Then == nil {
				return true
			}
			n = x.Then
		case *FuncDef:
			if x.Then == nil {
				return true
			}
			n = x.Then
		default:
			return false
		}
	}
}
