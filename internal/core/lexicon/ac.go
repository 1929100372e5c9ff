package lexicon

// Byte-level Aho-Corasick automaton over the lexicon. Words and text are UTF-8,
// so every match starts and ends on a rune boundary of the scanned text

type acNode struct {
	next   map[byte]int
	fail   int
	output []int // word ids ending at this node
}

type automaton struct {
	nodes []acNode
}

func newAutomaton() *automaton {
	return &automaton{nodes: []acNode{{next: map[byte]int{}}}}
}

func (a *automaton) add(word []byte, id int) {
	if len(word) == 0 {
		return
	}
	state := 0
	for _, b := range word {
		nxt, ok := a.nodes[state].next[b]
		if !ok {
			nxt = len(a.nodes)
			a.nodes[state].next[b] = nxt
			a.nodes = append(a.nodes, acNode{next: map[byte]int{}})
		}
		state = nxt
	}
	a.nodes[state].output = append(a.nodes[state].output, id)
}

// build computes failure links breadth first and merges outputs along them
func (a *automaton) build() {
	q := make([]int, 0, len(a.nodes))
	for _, s := range a.nodes[0].next {
		a.nodes[s].fail = 0
		q = append(q, s)
	}
	for qi := 0; qi < len(q); qi++ {
		r := q[qi]
		for b, s := range a.nodes[r].next {
			q = append(q, s)
			f := a.nodes[r].fail
			for f != 0 {
				if _, ok := a.nodes[f].next[b]; ok {
					break
				}
				f = a.nodes[f].fail
			}
			if nxt, ok := a.nodes[f].next[b]; ok && nxt != s {
				a.nodes[s].fail = nxt
			} else {
				a.nodes[s].fail = 0
			}
			a.nodes[s].output = append(a.nodes[s].output, a.nodes[a.nodes[s].fail].output...)
		}
	}
}

// findAll calls cb(end, id) for every word occurrence; end is exclusive.
// Returning false from cb stops the scan
func (a *automaton) findAll(text []byte, cb func(end, id int) bool) {
	state := 0
	for i, b := range text {
		for state != 0 {
			if _, ok := a.nodes[state].next[b]; ok {
				break
			}
			state = a.nodes[state].fail
		}
		if nxt, ok := a.nodes[state].next[b]; ok {
			state = nxt
		}
		for _, id := range a.nodes[state].output {
			if !cb(i+1, id) {
				return
			}
		}
	}
}
