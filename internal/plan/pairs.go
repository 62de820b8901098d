package plan

// Pair maps a target file to the source file that donates its base name.
type Pair struct {
	Target string `yaml:"target"`
	Source string `yaml:"source"`
}

// PairMap is an insertion-ordered, one-to-one mapping from target names to
// source names. It is the caller-side bookkeeping for interactive pairing;
// the planner does not rely on its guarantees.
type PairMap struct {
	pairs []Pair
}

// NewPairMap builds a PairMap by calling Set for each pair in order, so
// later pairs displace earlier ones that share a target or a source.
func NewPairMap(pairs []Pair) *PairMap {
	m := &PairMap{}
	for _, p := range pairs {
		m.Set(p.Target, p.Source)
	}
	return m
}

// Set pairs target with source. Any existing pair for target and any pair
// already using source are removed first; the new pair goes last.
func (m *PairMap) Set(target, source string) {
	kept := m.pairs[:0]
	for _, p := range m.pairs {
		if p.Target == target || p.Source == source {
			continue
		}
		kept = append(kept, p)
	}
	m.pairs = append(kept, Pair{Target: target, Source: source})
}

// Get returns the source paired with target.
func (m *PairMap) Get(target string) (string, bool) {
	for _, p := range m.pairs {
		if p.Target == target {
			return p.Source, true
		}
	}
	return "", false
}

// Delete removes the pair for target and reports whether one existed.
func (m *PairMap) Delete(target string) bool {
	return m.remove(func(p Pair) bool { return p.Target == target })
}

// DeleteSource removes the pair that uses source and reports whether one
// existed.
func (m *PairMap) DeleteSource(source string) bool {
	return m.remove(func(p Pair) bool { return p.Source == source })
}

func (m *PairMap) remove(match func(Pair) bool) bool {
	for i, p := range m.pairs {
		if match(p) {
			m.pairs = append(m.pairs[:i], m.pairs[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of pairs.
func (m *PairMap) Len() int { return len(m.pairs) }

// Pairs returns a copy of the pairs in insertion order.
func (m *PairMap) Pairs() []Pair {
	out := make([]Pair, len(m.pairs))
	copy(out, m.pairs)
	return out
}

// Reset removes every pair.
func (m *PairMap) Reset() { m.pairs = nil }

// PairInOrder pairs targets[i] with sources[i] for the first
// min(len(targets), len(sources)) entries.
func PairInOrder(targets, sources []string) *PairMap {
	n := min(len(targets), len(sources))
	m := &PairMap{}
	for i := 0; i < n; i++ {
		m.Set(targets[i], sources[i])
	}
	return m
}
