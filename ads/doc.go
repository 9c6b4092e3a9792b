// Package ads builds and drives Adaptive Distinguishing Sequences: a
// branching decision tree over inputs and observed outputs that
// identifies which member of a candidate set of observation-tree
// nodes a live SUL session is actually in. At each level the first
// input (in sorted order) that splits the group is used; the tree is
// not minimised for depth.
//
// Build constructs the decision tree ahead of time from the
// candidates' recorded behavior; Cursor then drives it step by step,
// each call folding in the last output and returning the next input
// to send (or signalling completion).
package ads
