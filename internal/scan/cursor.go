package scan

import "math"

// Unbounded is the sentinel budget for scans without a length limit.
const Unbounded = math.MaxInt

// state threads the read position and the character budget through the
// scanning stages. The cursor only ever advances.
type state struct {
	pos        int  // cursor into the input
	cnt        int  // characters counted against the current stage budget
	max        int  // budget; Unbounded when no limit applies
	countFixed bool // sign and radix prefix characters count toward the budget
}

// beginStage resets the budget counter at the start of a scanning
// stage: to the cursor when sign/prefix characters count toward the
// limit, to zero when they are free.
func (s *state) beginStage() {
	if s.countFixed {
		s.cnt = s.pos
	} else {
		s.cnt = 0
	}
}

// within reports whether the stage may consume another character.
func (s *state) within() bool {
	return s.cnt < s.max
}

// advance consumes one character, moving the cursor and the budget
// counter together.
func (s *state) advance() {
	s.pos++
	s.cnt++
}

// skip moves the cursor past n characters outside any budget gate,
// used for the sign and radix prefix.
func (s *state) skip(n int) {
	s.pos += n
}
