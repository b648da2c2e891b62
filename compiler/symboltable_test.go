package compiler

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSymbolTableAllocatesSequentially(t *testing.T) {
	st := NewSymbolTable()
	require.Equal(t, 0, st.Resolve("a"))
	require.Equal(t, 1, st.Resolve("b"))
	require.Equal(t, 2, st.Resolve("c"))
	require.Equal(t, 3, st.NbWires())
}

func TestSymbolTableReusesWires(t *testing.T) {
	st := NewSymbolTable()
	require.Equal(t, 0, st.Resolve("x"))
	require.Equal(t, 1, st.Resolve("y"))
	require.Equal(t, 0, st.Resolve("x"))
	require.Equal(t, 1, st.Resolve("y"))
	require.Equal(t, 2, st.NbWires())
}

func TestSymbolTableExport(t *testing.T) {
	st := NewSymbolTable()
	st.Resolve("a")
	st.Resolve("b")
	st.Resolve("c")

	require.Equal(t, []string{"a", "b", "c"}, st.Names())
	require.Equal(t, map[string]int{"a": 0, "b": 1, "c": 2}, st.Wires())
	require.Equal(t, "b", st.NameOf(1))

	w, ok := st.Lookup("c")
	require.True(t, ok)
	require.Equal(t, 2, w)
	_, ok = st.Lookup("z")
	require.False(t, ok)
}
