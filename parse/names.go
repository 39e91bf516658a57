package parse

// Names assigns dense sequential indices to distinct names in first-seen
// order. It is owned by whatever parsing result needs stable small integer
// identifiers for parsed names; there is no process-wide counter, so two
// independent parses never share or leak identifiers.
type Names struct {
	index map[string]int
	names []string
}

// NewNames returns an empty name arena.
func NewNames() *Names {
	return &Names{index: make(map[string]int)}
}

// Intern returns the index of name, assigning the next sequential index on
// first sight.
func (n *Names) Intern(name string) int {
	if i, ok := n.index[name]; ok {
		return i
	}
	i := len(n.names)
	n.index[name] = i
	n.names = append(n.names, name)

	return i
}

// Lookup returns the index previously assigned to name, reporting false
// when the name was never interned. It never assigns.
func (n *Names) Lookup(name string) (int, bool) {
	i, ok := n.index[name]
	return i, ok
}

// Name returns the name holding index i, reporting false for an index the
// arena never handed out.
func (n *Names) Name(i int) (string, bool) {
	if i < 0 || i >= len(n.names) {
		return "", false
	}
	return n.names[i], true
}

// Len returns the number of distinct names interned so far.
func (n *Names) Len() int { return len(n.names) }

// Interning wraps a string-producing parser so its value is interned into
// the arena and the parser yields the assigned index instead.
func Interning(n *Names, p Parser[string]) Parser[int] {
	return Map(p, n.Intern)
}
