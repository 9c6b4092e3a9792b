package sul

import "errors"

// ErrInvalidInput is returned by Step/Query when the given input is
// not a member of the SUL's alphabet.
var ErrInvalidInput = errors.New("sul: invalid input")

// ErrNoActiveSession is returned by Step when called before Pre or
// after Post.
var ErrNoActiveSession = errors.New("sul: no active session")

// SUL is the contract the learner and the oracle drive: a
// sequentially-consistent black-box Mealy machine, reset by Pre and
// released by Post, stepped one input at a time by Step.
//
// Implementations need not be safe for concurrent use; the learner
// never overlaps two sessions on the same SUL (spec §5).
type SUL interface {
	// Pre begins a fresh session, returning the SUL to its initial
	// state.
	Pre()
	// Post ends the current session. Step is undefined after Post
	// until the next Pre.
	Post()
	// Step advances the current session by one input and returns the
	// corresponding output.
	Step(input string) (string, error)
	// Query runs Pre, then Step for every input in sequence, then
	// Post, returning the full output sequence. Every implementation
	// supplies its own; *MealySUL's is exactly Pre/Step*/Post.
	Query(inputs []string) ([]string, error)
}
