package golet

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// ParseError describes one syntax defect. Pos and End are byte offsets into
// the source; Line and Col are 1-based.
type ParseError struct {
	Pos, End  int
	Line, Col int
	Found     string
	Expected  []string
	Msg       string
}

func (e *ParseError) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = "unexpected " + e.Found
		switch len(e.Expected) {
		case 0:
		case 1:
			msg += ", expected " + e.Expected[0]
		default:
			msg += ", expected one of: " + strings.Join(e.Expected, ", ")
		}
	}
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Col, msg)
}

func formatParseErrors(es []error) string {
	lines := make([]string, len(es))
	for i, e := range es {
		lines[i] = e.Error()
	}
	return strings.Join(lines, "\n")
}

// ParseErrors returns the individual syntax errors carried by an error
// returned from Parse.
func ParseErrors(err error) []*ParseError {
	var merr *multierror.Error
	if !errors.As(err, &merr) {
		var perr *ParseError
		if errors.As(err, &perr) {
			return []*ParseError{perr}
		}
		return nil
	}
	var ret []*ParseError
	for _, e := range merr.Errors {
		var perr *ParseError
		if errors.As(e, &perr) {
			ret = append(ret, perr)
		}
	}
	return ret
}

// ErrNothingToEval is returned when a program ends in a declaration.
var ErrNothingToEval = errors.New("last line should be something to evaluate!")

type VariableNotFoundError struct {
	Name string
}

func (e *VariableNotFoundError) Error() string {
	return fmt.Sprintf("cannot find variable %s in scope", e.Name)
}

type FunctionNotInScopeError struct {
	Name string
}

func (e *FunctionNotInScopeError) Error() string {
	return fmt.Sprintf("cannot find function `%s` in scope", e.Name)
}

type WrongNumArgsError struct {
	Name     string
	Expected int
	Found    int
}

func (e *WrongNumArgsError) Error() string {
	return fmt.Sprintf("wrong number of arguments given for function `%s`. Expected %d, found %d", e.Name, e.Expected, e.Found)
}

// ArithmeticError is the panic value of an arithmetic fault. It is not
// one of the errors returned by Eval and the interpreter never recovers it.
type ArithmeticError struct {
	Msg string
}

func (e *ArithmeticError) Error() string {
	return e.Msg
}

var ErrDivideByZero = &ArithmeticError{Msg: "attempt to divide by zero"}
