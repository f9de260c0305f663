package lexicon

import (
	"fmt"
	"sort"
	"strings"
)

// Automaton is a flattened minimal acyclic automaton over UTF-8 byte
// keys. Shared prefixes and shared suffixes collapse into common
// states. Each accepted key has a stable ordinal equal to its rank in
// byte-sorted key order, so a parallel array can hold per-key metadata.
type Automaton struct {
	states []state
	edges  []edge
}

// state is one automaton node. Count is the number of accepted keys
// reachable through this state, which makes ordinal computation a walk.
type state struct {
	EdgeStart uint32
	Count     uint32
	EdgeCount uint16
	Final     bool
}

type edge struct {
	Target uint32
	Label  byte
}

// Len returns the number of accepted keys.
func (a *Automaton) Len() int {
	if len(a.states) == 0 {
		return 0
	}
	return int(a.states[0].Count)
}

// Index returns the ordinal of key in sorted key order. The walk does
// not allocate.
func (a *Automaton) Index(key string) (int, bool) {
	if len(a.states) == 0 {
		return 0, false
	}
	cur := uint32(0)
	idx := 0
	for i := 0; i < len(key); i++ {
		b := key[i]
		st := &a.states[cur]
		if st.Final {
			idx++
		}
		found := false
		end := st.EdgeStart + uint32(st.EdgeCount)
		for e := st.EdgeStart; e < end; e++ {
			ed := a.edges[e]
			if ed.Label < b {
				idx += int(a.states[ed.Target].Count)
				continue
			}
			if ed.Label == b {
				cur = ed.Target
				found = true
			}
			break
		}
		if !found {
			return 0, false
		}
	}
	if a.states[cur].Final {
		return idx, true
	}
	return 0, false
}

// Accepts reports whether key is in the automaton.
func (a *Automaton) Accepts(key string) bool {
	_, ok := a.Index(key)
	return ok
}

// Walk visits every accepted key in sorted order along with its
// ordinal. Used by suggestion scans; not a hot path.
func (a *Automaton) Walk(visit func(key string, ordinal int)) {
	if len(a.states) == 0 {
		return
	}
	var buf []byte
	ordinal := 0
	var rec func(cur uint32)
	rec = func(cur uint32) {
		st := a.states[cur]
		if st.Final {
			visit(string(buf), ordinal)
			ordinal++
		}
		end := st.EdgeStart + uint32(st.EdgeCount)
		for e := st.EdgeStart; e < end; e++ {
			buf = append(buf, a.edges[e].Label)
			rec(a.edges[e].Target)
			buf = buf[:len(buf)-1]
		}
	}
	rec(0)
}

// ---------- construction ----------

type buildNode struct {
	edges []buildEdge
	final bool
	id    int
}

type buildEdge struct {
	label  byte
	target *buildNode
}

func (n *buildNode) lastEdge() *buildEdge {
	if len(n.edges) == 0 {
		return nil
	}
	return &n.edges[len(n.edges)-1]
}

// builder constructs a minimal automaton incrementally from keys fed in
// strict byte-sorted order.
type builder struct {
	root     *buildNode
	register map[string]*buildNode
	prevKey  string
	nextID   int
	inserted int
}

func newBuilder() *builder {
	return &builder{
		root:     &buildNode{id: -1},
		register: make(map[string]*buildNode),
		nextID:   1,
	}
}

func (b *builder) insert(key string) error {
	if b.inserted > 0 && key <= b.prevKey {
		return fmt.Errorf("keys out of order: %q after %q", key, b.prevKey)
	}
	// walk the common prefix along the frozen path
	node := b.root
	i := 0
	for i < len(key) {
		last := node.lastEdge()
		if last == nil || last.label != key[i] {
			break
		}
		node = last.target
		i++
	}
	if len(node.edges) > 0 {
		b.replaceOrRegister(node)
	}
	for ; i < len(key); i++ {
		child := &buildNode{id: -1}
		node.edges = append(node.edges, buildEdge{label: key[i], target: child})
		node = child
	}
	node.final = true
	b.prevKey = key
	b.inserted++
	return nil
}

func (b *builder) replaceOrRegister(node *buildNode) {
	last := node.lastEdge()
	child := last.target
	if len(child.edges) > 0 {
		b.replaceOrRegister(child)
	}
	sig := b.signature(child)
	if existing, ok := b.register[sig]; ok {
		last.target = existing
		return
	}
	child.id = b.nextID
	b.nextID++
	b.register[sig] = child
}

func (b *builder) signature(n *buildNode) string {
	var sb strings.Builder
	if n.final {
		sb.WriteByte('1')
	} else {
		sb.WriteByte('0')
	}
	for _, e := range n.edges {
		fmt.Fprintf(&sb, "|%d:%d", e.label, e.target.id)
	}
	return sb.String()
}

// finish minimizes the remaining path and flattens the graph.
func (b *builder) finish() *Automaton {
	if len(b.root.edges) > 0 {
		b.replaceOrRegister(b.root)
	}
	counts := make(map[*buildNode]uint32)
	var count func(n *buildNode) uint32
	count = func(n *buildNode) uint32 {
		if c, ok := counts[n]; ok {
			return c
		}
		var c uint32
		if n.final {
			c = 1
		}
		for _, e := range n.edges {
			c += count(e.target)
		}
		counts[n] = c
		return c
	}
	count(b.root)

	index := make(map[*buildNode]uint32)
	order := []*buildNode{}
	var assign func(n *buildNode)
	assign = func(n *buildNode) {
		if _, ok := index[n]; ok {
			return
		}
		index[n] = uint32(len(order))
		order = append(order, n)
		for _, e := range n.edges {
			assign(e.target)
		}
	}
	assign(b.root)

	a := &Automaton{states: make([]state, len(order))}
	for i, n := range order {
		a.states[i] = state{
			EdgeStart: uint32(len(a.edges)),
			EdgeCount: uint16(len(n.edges)),
			Final:     n.final,
			Count:     counts[n],
		}
		for _, e := range n.edges {
			a.edges = append(a.edges, edge{Label: e.label, Target: 0})
		}
	}
	// second pass: targets now have indexes
	pos := 0
	for _, n := range order {
		for _, e := range n.edges {
			a.edges[pos].Target = index[e.target]
			pos++
		}
	}
	return a
}

// buildAutomaton builds a minimal automaton from keys, which are sorted
// and deduplicated first. The output depends only on the key set.
func buildAutomaton(keys []string) (*Automaton, error) {
	sorted := make([]string, len(keys))
	copy(sorted, keys)
	sort.Strings(sorted)
	b := newBuilder()
	for i, k := range sorted {
		if i > 0 && k == sorted[i-1] {
			continue
		}
		if err := b.insert(k); err != nil {
			return nil, err
		}
	}
	return b.finish(), nil
}
