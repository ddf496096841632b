package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattn/golet"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func testEnv(t *testing.T) *golet.Env {
	t.Helper()
	log := newLogger(&bytes.Buffer{}, false)
	env, err := newEnv(DefaultConfig(), log)
	require.NoError(t, err)
	return env
}

func TestExecute(t *testing.T) {
	tests := []struct {
		src    string
		code   int
		stdout string
		stderr string
	}{
		{
			src:    "1 + 2",
			code:   exitOK,
			stdout: "3\n",
		},
		{
			src:    "square(1.5)",
			code:   exitOK,
			stdout: "2.25\n",
		},
		{
			src:    "x",
			code:   exitEval,
			stderr: "error: cannot find variable x in scope\n",
		},
		{
			src:    "1 / 0",
			code:   exitFault,
			stderr: "fatal: attempt to divide by zero\n",
		},
		{
			src:  "(1 + ) * (2 * )",
			code: exitParse,
			stderr: "Parse error: 1:6: unexpected ')', expected one of: number, identifier, '(', '-'\n" +
				"Parse error: 1:15: unexpected ')', expected one of: number, identifier, '(', '-'\n",
		},
		{
			src:    "let x = 1;",
			code:   exitEval,
			stderr: "error: last line should be something to evaluate!\n",
		},
	}
	for _, test := range tests {
		var stdout, stderr bytes.Buffer
		code := execute(&stdout, &stderr, testEnv(t), test.src, false, false)
		assert.Equal(t, test.code, code, test.src)
		assert.Equal(t, test.stdout, stdout.String(), test.src)
		assert.Equal(t, test.stderr, stderr.String(), test.src)
	}
}

func TestExecuteDumpAST(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := execute(&stdout, &stderr, testEnv(t), "1 + 2", true, false)
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "3\n", stdout.String())
	assert.Contains(t, stderr.String(), "golet.Binary")
}

func TestEvaluate(t *testing.T) {
	env := golet.NewEnv()
	_, _, err := evaluate(env, &golet.Call{Name: "boom"}, false)
	assert.Equal(t, &golet.FunctionNotInScopeError{Name: "boom"}, err)

	div := &golet.Binary{
		Op:    golet.OpDiv,
		Left:  &golet.Number{Value: golet.IntValue(1)},
		Right: &golet.Number{Value: golet.IntValue(0)},
	}
	_, _, err = evaluate(env, div, false)
	require.IsType(t, &faultError{}, err)
	assert.EqualError(t, err, "attempt to divide by zero")

	_, loaded, err := evaluate(env, &golet.Let{Name: "z", Value: &golet.Number{Value: golet.IntValue(2)}}, true)
	require.NoError(t, err)
	assert.True(t, loaded)
	assert.Equal(t, []string{"z"}, env.Vars())
}

func TestReplLine(t *testing.T) {
	env := testEnv(t)
	var stdout, stderr bytes.Buffer

	assert.True(t, replLine(&stdout, &stderr, env, "let x = 2;", false))
	assert.Equal(t, "ok\n", stdout.String())
	stdout.Reset()

	assert.True(t, replLine(&stdout, &stderr, env, "func triple(a) { a * 3 }", false))
	stdout.Reset()

	assert.True(t, replLine(&stdout, &stderr, env, "triple(x) + 1", false))
	assert.Equal(t, "7\n", stdout.String())
	stdout.Reset()

	assert.True(t, replLine(&stdout, &stderr, env, "let y = 1 / 0;", false))
	assert.Equal(t, "fatal: attempt to divide by zero\n", stderr.String())
	stderr.Reset()

	assert.True(t, replLine(&stdout, &stderr, env, ":env", false))
	assert.Contains(t, stdout.String(), "vars:  x\n")
	assert.Contains(t, stdout.String(), "triple\n")
	stdout.Reset()

	assert.True(t, replLine(&stdout, &stderr, env, "y", false))
	assert.Equal(t, "error: cannot find variable y in scope\n", stderr.String())

	stdout.Reset()
	stderr.Reset()
	assert.True(t, replLine(&stdout, &stderr, env, ":ast let a = 1; -a * 2.0", false))
	assert.Equal(t, "(let a 1 (* (- a) 2.0))\n", stdout.String())
	assert.True(t, replLine(&stdout, &stderr, env, ":ast 1 +", false))
	assert.Equal(t, "Parse error: 1:4: unexpected end of input, expected one of: number, identifier, '(', '-'\n", stderr.String())

	assert.False(t, replLine(&stdout, &stderr, env, ":quit", false))
}

func TestNewEnv(t *testing.T) {
	log := newLogger(&bytes.Buffer{}, false)
	cfg := DefaultConfig()
	cfg.Prelude = false
	cfg.Builtins = false
	env, err := newEnv(cfg, log)
	require.NoError(t, err)
	assert.Empty(t, env.Funcs())

	cfg.Builtins = true
	env, err = newEnv(cfg, log)
	require.NoError(t, err)
	assert.Contains(t, env.Funcs(), "sqrt")
	assert.NotContains(t, env.Funcs(), "square")
}

func TestNewLogger(t *testing.T) {
	assert.Equal(t, logrus.WarnLevel, newLogger(&bytes.Buffer{}, false).Level)
	assert.Equal(t, logrus.DebugLevel, newLogger(&bytes.Buffer{}, true).Level)
}
