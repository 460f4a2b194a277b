package score

import "fmt"

type MemoState uint8

const (
	// Unknown is the zero value: nothing has been recorded.
	Unknown MemoState = iota
	// InProgress marks a position whose score is being computed further up
	// the current search.
	InProgress
	Known
)

func (m MemoState) String() string {
	switch m {
	case Unknown:
		return "unknown"
	case InProgress:
		return "in-progress"
	case Known:
		return "known"
	default:
		return fmt.Sprintf("MemoState(%d)", uint8(m))
	}
}

// Memo is a transposition table slot. It keeps the in-progress marker out of
// the Score value space so a computed score can never be mistaken for it.
type Memo struct {
	state MemoState
	score Score
}

func InProgressMemo() Memo {
	return Memo{state: InProgress}
}

func KnownMemo(s Score) Memo {
	if s.IsAncestor() {
		panic("score: ancestor marker stored as a known score")
	}
	return Memo{state: Known, score: s}
}

func (m Memo) State() MemoState {
	return m.state
}

// Score returns the recorded score, if one is known.
func (m Memo) Score() (Score, bool) {
	return m.score, m.state == Known
}

// Merge folds s into the memo. A known compatible score is merged with s;
// anything else is replaced by s.
func (m Memo) Merge(s Score) Memo {
	if m.state == Known && m.score.Compatible(s) {
		return KnownMemo(m.score.Merge(s))
	}
	return KnownMemo(s)
}

func (m Memo) String() string {
	if m.state == Known {
		return m.score.String()
	}
	return "[" + m.state.String() + "]"
}
