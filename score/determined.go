package score

import "fmt"

// Determined is a resolved score suitable for reporting. A win or loss carries
// the exact number of moves to the outcome. A tie with MovesToWin() == 0 is a
// guaranteed tie, otherwise it is only proven tied for that many moves.
type Determined struct {
	value      Value
	movesToWin uint32
}

// DeterminedTie is a tie proven for depth moves. depth must be nonzero.
func DeterminedTie(depth uint32) Determined {
	if depth == 0 {
		panic("score: determined tie needs a nonzero depth, use GuaranteedDeterminedTie")
	}
	return Determined{value: Tied, movesToWin: depth}
}

func GuaranteedDeterminedTie() Determined {
	return Determined{value: Tied}
}

func DeterminedWin(movesToWin uint32) Determined {
	return Determined{value: CurrentPlayerWins, movesToWin: movesToWin}
}

func DeterminedLose(movesToWin uint32) Determined {
	return Determined{value: OtherPlayerWins, movesToWin: movesToWin}
}

// FromScore resolves a score. It returns false if the score carries no usable
// information, or if it proves a win or loss without proving that there is no
// faster one.
func FromScore(s Score) (Determined, bool) {
	switch {
	case s.HasNoInfo(), s.IsAncestor():
		return Determined{}, false
	case s.IsGuaranteedTie():
		return GuaranteedDeterminedTie(), true
	case s.IsTie():
		return DeterminedTie(s.TurnCountTie()), true
	}

	depth := s.DeterminedDepth()
	if s.TurnCountTie()+1 != depth {
		return Determined{}, false
	}
	return Determined{value: s.ScoreAt(depth), movesToWin: depth}, true
}

func (d Determined) Value() Value {
	return d.value
}

func (d Determined) MovesToWin() uint32 {
	return d.movesToWin
}

func (d Determined) IsGuaranteedTie() bool {
	return d.value == Tied && d.movesToWin == 0
}

// Truncated drops any certainty d claims beyond depth moves: a win or loss
// further away than depth becomes a tie to depth, and a tie is proven to at
// most depth. A tie to depth 0 has no representation, so truncating to 0
// returns d unchanged.
func (d Determined) Truncated(depth uint32) Determined {
	if depth == 0 {
		return d
	}
	if d.value == Tied {
		if d.movesToWin == 0 {
			return DeterminedTie(depth)
		}
		return DeterminedTie(min(d.movesToWin, depth))
	}
	if d.movesToWin > depth {
		return DeterminedTie(depth)
	}
	return d
}

func (d Determined) String() string {
	switch {
	case d.value == CurrentPlayerWins:
		return fmt.Sprintf("[cur:%d]", d.movesToWin)
	case d.value == OtherPlayerWins:
		return fmt.Sprintf("[oth:%d]", d.movesToWin)
	case d.movesToWin == 0:
		return "[tie]"
	default:
		return fmt.Sprintf("[tie:%d]", d.movesToWin)
	}
}
