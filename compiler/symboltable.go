package compiler

// SymbolTable maps variable names to wire indices. The first occurrence
// of a name allocates the next sequential index; later occurrences
// return the same index unchanged. Allocation order is therefore
// first-occurrence order in the source text, which is part of the
// compiler's observable contract: key generation depends on identical
// sources producing identical wire numbering.
//
// A SymbolTable serves a single compilation pass and is not safe for
// concurrent use.
type SymbolTable struct {
	wires map[string]int
	names []string
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{wires: make(map[string]int)}
}

// Resolve returns the wire index for name, allocating the next one on
// first occurrence.
func (st *SymbolTable) Resolve(name string) int {
	if w, ok := st.wires[name]; ok {
		return w
	}
	w := len(st.names)
	st.wires[name] = w
	st.names = append(st.names, name)
	return w
}

// Lookup returns the wire index for name without allocating.
func (st *SymbolTable) Lookup(name string) (int, bool) {
	w, ok := st.wires[name]
	return w, ok
}

// NameOf returns the variable bound to the given wire.
func (st *SymbolTable) NameOf(wire int) string {
	return st.names[wire]
}

// NbWires returns the number of allocated wires.
func (st *SymbolTable) NbWires() int {
	return len(st.names)
}

// Names returns the variable names in allocation order; the index of a
// name equals its wire.
func (st *SymbolTable) Names() []string {
	names := make([]string, len(st.names))
	copy(names, st.names)
	return names
}

// Wires returns a copy of the name to wire map.
func (st *SymbolTable) Wires() map[string]int {
	wires := make(map[string]int, len(st.wires))
	for name, w := range st.wires {
		wires[name] = w
	}
	return wires
}
