package sul

import (
	"fmt"

	"github.com/katalvlaran/lsharp/hypothesis"
)

// MealySUL presents a hypothesis.Mealy as a SUL, counting queries and
// steps as it goes. This is the reference SUL implementation used by
// this repository's own tests and demo scenarios; a real SUL wrapping
// a live process or network session would implement the same
// interface directly instead of going through hypothesis.Mealy.
type MealySUL struct {
	m       *hypothesis.Mealy
	cur     string
	active  bool
	queries int
	steps   int
}

// NewMealySUL wraps m as a SUL.
func NewMealySUL(m *hypothesis.Mealy) *MealySUL {
	return &MealySUL{m: m}
}

// Pre resets the session to the machine's initial state.
func (s *MealySUL) Pre() {
	s.cur = s.m.Init
	s.active = true
}

// Post ends the current session.
func (s *MealySUL) Post() {
	s.active = false
}

// Step advances by one input from the current state.
func (s *MealySUL) Step(input string) (string, error) {
	if !s.active {
		return "", ErrNoActiveSession
	}
	out, next, ok := s.m.Step(s.cur, input)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidInput, input)
	}
	s.cur = next
	s.steps++
	return out, nil
}

// Query runs Pre, steps through inputs in order, then Post, returning
// every output observed.
func (s *MealySUL) Query(inputs []string) ([]string, error) {
	s.queries++
	s.Pre()
	defer s.Post()
	outputs := make([]string, 0, len(inputs))
	for _, in := range inputs {
		out, err := s.Step(in)
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, out)
	}
	return outputs, nil
}

// Queries returns the total number of Query calls so far.
func (s *MealySUL) Queries() int {
	return s.queries
}

// Steps returns the total number of successful Step calls so far,
// across all sessions, including those issued from inside Query.
func (s *MealySUL) Steps() int {
	return s.steps
}
