package sul

import "github.com/katalvlaran/lsharp/hypothesis"

// The three demo machines below are the literal SULs of the seed test
// suite: single-state identity, two-state toggle, and the three-state
// machine requiring separation. cmd/lsharpctl's --demo flag selects
// among them by name.

// DemoSingleStateIdentity returns a one-state machine over {a, b}
// where both inputs always yield output "0".
func DemoSingleStateIdentity() *MealySUL {
	m := hypothesis.New("s0")
	m.SetTransition("s0", "a", "0", "s0")
	m.SetTransition("s0", "b", "0", "s0")
	return NewMealySUL(m)
}

// DemoTwoStateToggle returns a two-state machine over {a} that flips
// output on every "a": s0 -a/0-> s1, s1 -a/1-> s0.
func DemoTwoStateToggle() *MealySUL {
	m := hypothesis.New("s0")
	m.SetTransition("s0", "a", "0", "s1")
	m.SetTransition("s1", "a", "1", "s0")
	return NewMealySUL(m)
}

// DemoThreeStateSeparation returns a three-state machine over {a, b}
// whose states s1 and s2 differ on both "a" and "b", so their
// lexicographically-first witness is "a":
//
//	s0 -a/0-> s1, s0 -b/0-> s0
//	s1 -a/0-> s2, s1 -b/1-> s0
//	s2 -a/1-> s2, s2 -b/0-> s0
func DemoThreeStateSeparation() *MealySUL {
	m := hypothesis.New("s0")
	m.SetTransition("s0", "a", "0", "s1")
	m.SetTransition("s0", "b", "0", "s0")
	m.SetTransition("s1", "a", "0", "s2")
	m.SetTransition("s1", "b", "1", "s0")
	m.SetTransition("s2", "a", "1", "s2")
	m.SetTransition("s2", "b", "0", "s0")
	return NewMealySUL(m)
}
