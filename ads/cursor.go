package ads

import "github.com/katalvlaran/lsharp/tree"

// Cursor drives a DecisionTree step by step: a coroutine-like object
// over (last output -> next input). It holds no concurrency of its
// own — each call is a plain synchronous advance of an internal
// pointer, matching the engine's single-threaded execution model.
type Cursor struct {
	dt      *DecisionTree
	cur     *node
	started bool
	done    bool
}

// NewCursor creates a Cursor positioned at the root of dt.
func NewCursor(dt *DecisionTree) *Cursor {
	return &Cursor{dt: dt}
}

// ResetToRoot restarts the cursor from the DecisionTree's root.
func (c *Cursor) ResetToRoot() {
	c.cur = nil
	c.started = false
	c.done = false
}

// Start returns the first input to send, or ("", false) if the
// DecisionTree is already a leaf (the candidate set was a singleton
// and no query is needed at all).
func (c *Cursor) Start() (string, bool) {
	c.started = true
	c.cur = c.dt.root
	if c.cur.isLeaf {
		c.done = true
		return "", false
	}
	return c.cur.input, true
}

// NextInput advances the cursor by the last-observed output and
// returns the next input to send, or ("", false) if the DecisionTree
// has reached a leaf (the candidate has been identified).
//
// NextInput must be preceded by exactly one call to Start.
func (c *Cursor) NextInput(lastOutput string) (string, bool) {
	if !c.started {
		panic("ads: NextInput called before Start")
	}
	if c.done {
		return "", false
	}
	next, ok := c.cur.branches[lastOutput]
	if !ok {
		// The observed output was never recorded for any surviving
		// candidate at this branch: the decision tree cannot resolve
		// further along this path.
		c.done = true
		return "", false
	}
	c.cur = next
	if c.cur.isLeaf {
		c.done = true
		return "", false
	}
	return c.cur.input, true
}

// Resolved returns the identified candidate Node once the cursor has
// reached a leaf, or (nil, false) while still in progress.
func (c *Cursor) Resolved() (*tree.Node, bool) {
	if c.cur != nil && c.cur.isLeaf {
		return c.cur.leaf, true
	}
	return nil, false
}
