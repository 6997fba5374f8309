package interp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minilang/parser"
)

func runSource(t *testing.T, src, stdin string) (string, error) {
	t.Helper()
	p, err := parser.New(src)
	require.NoError(t, err)
	prog, err := p.Parse()
	require.NoError(t, err)

	var out bytes.Buffer
	ip := New(prog.Funcs, strings.NewReader(stdin), &out)
	err = ip.Run(prog.Items)
	return out.String(), err
}

func TestCallTakesTheUntakenBranchsTrailingReturn(t *testing.T) {
	out, err := runSource(t, `
function f(boolean cond): int {
  if (cond) {
    return 7;
  }
  return 0;
}
println(f(false));
`, "")
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)
}

func TestRecursiveCallSharesFunctionTable(t *testing.T) {
	out, err := runSource(t, `
function fact(int n): int {
  if (n < 2) {
    return 1;
  }
  return n * fact(n - 1);
}
println(fact(5));
`, "")
	require.NoError(t, err)
	assert.Equal(t, "120\n", out)
}

func TestEachCallGetsFreshParameterFrame(t *testing.T) {
	out, err := runSource(t, `
function inc(int n): int {
  n = n + 1;
  return n;
}
int a = inc(1);
int b = inc(2);
println(a);
println(b);
`, "")
	require.NoError(t, err)
	assert.Equal(t, "2\n3\n", out)
}

func TestBlockScopeDoesNotLeakOutward(t *testing.T) {
	out, err := runSource(t, `
int x = 1;
{
  int x = 2;
  println(x);
}
println(x);
`, "")
	require.NoError(t, err)
	assert.Equal(t, "2\n1\n", out)
}
