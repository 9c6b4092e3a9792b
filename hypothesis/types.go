package hypothesis

import (
	"errors"
	"sort"
)

// ErrUnknownState indicates an operation referenced a state not
// present in the Mealy machine's States.
var ErrUnknownState = errors.New("hypothesis: unknown state")

// Mealy is a deterministic Mealy machine: states, a single initial
// state, a transition function δ(state, input) -> state, and an
// output function λ(state, input) -> output.
//
// Transitions and Outputs are addressed as
// Transitions[state][input] and Outputs[state][input]. A state is
// well-formed only if both maps are fully defined for every input of
// the alphabet the machine was built over; construction-time callers
// (package lsharp) are responsible for that completeness.
type Mealy struct {
	Init        string
	States      []string
	Transitions map[string]map[string]string
	Outputs     map[string]map[string]string
}

// New creates an empty Mealy machine with the given initial state
// already registered.
func New(init string) *Mealy {
	return &Mealy{
		Init:        init,
		States:      []string{init},
		Transitions: map[string]map[string]string{init: {}},
		Outputs:     map[string]map[string]string{init: {}},
	}
}

// AddState registers state if not already present.
func (m *Mealy) AddState(state string) {
	if _, ok := m.Transitions[state]; ok {
		return
	}
	m.States = append(m.States, state)
	m.Transitions[state] = map[string]string{}
	m.Outputs[state] = map[string]string{}
}

// SetTransition records δ(state, input) = next and λ(state, input) =
// output, registering state if necessary.
func (m *Mealy) SetTransition(state, input, output, next string) {
	m.AddState(state)
	m.Transitions[state][input] = next
	m.Outputs[state][input] = output
}

// SortedStates returns a defensive, sorted copy of m.States, used
// wherever deterministic state enumeration matters (the oracle's
// transition cover and characterization set, the CLI's printout).
func (m *Mealy) SortedStates() []string {
	out := make([]string, len(m.States))
	copy(out, m.States)
	sort.Strings(out)
	return out
}

// Step returns the output and next state for (state, input), or
// ("", "", false) if either is undefined.
func (m *Mealy) Step(state, input string) (output, next string, ok bool) {
	outs, ok := m.Outputs[state]
	if !ok {
		return "", "", false
	}
	trans := m.Transitions[state]
	output, ok1 := outs[input]
	next, ok2 := trans[input]
	if !ok1 || !ok2 {
		return "", "", false
	}
	return output, next, true
}

// RunFrom simulates inputs from the given starting state, returning
// the output sequence and the resulting state. ok is false if any
// step along the way is undefined.
func (m *Mealy) RunFrom(state string, inputs []string) (outputs []string, final string, ok bool) {
	outputs = make([]string, 0, len(inputs))
	cur := state
	for _, in := range inputs {
		out, next, stepOK := m.Step(cur, in)
		if !stepOK {
			return nil, "", false
		}
		outputs = append(outputs, out)
		cur = next
	}
	return outputs, cur, true
}

// Run simulates inputs from Init.
func (m *Mealy) Run(inputs []string) (outputs []string, final string, ok bool) {
	return m.RunFrom(m.Init, inputs)
}
