// Package score implements the packed partial-minimax score shared by game
// solvers, together with the algebra used to combine results of searches run
// to different depths.
package score

import (
	"errors"
	"fmt"
)

// Layout, least significant bit first:
//
//	   31          30 - 22    21   -   11      10   -   0
//	+-----------+----------+---------------+---------------+
//	| cur wins? |  unused  | win count - 1 | tie count     |
//	+-----------+----------+---------------+---------------+
//
// A win field of all ones means no decided outcome has been found.
const (
	tieBits  = 11
	tieShift = 0
	// MaxTieDepth is the tie horizon of a guaranteed tie.
	MaxTieDepth = 1<<tieBits - 1
	tieMask     = MaxTieDepth << tieShift

	winBits  = 11
	winShift = tieShift + tieBits
	noWin    = 1<<winBits - 1
	winMask  = noWin << winShift
	// MaxWinDepth is the deepest forced outcome a Score can carry.
	MaxWinDepth = noWin - 1

	unusedBits  = 9
	unusedShift = winShift + winBits
	unusedMask  = (1<<unusedBits - 1) << unusedShift

	curPlayerWinsShift = unusedShift + unusedBits
	curPlayerWinsMask  = 1 << curPlayerWinsShift
)

var (
	ErrInvalid      = errors.New("invalid score")
	ErrUndetermined = errors.New("depth is not determined by score")
	ErrIncompatible = errors.New("scores are incompatible")
)

// Score records how deep into the future a position is proven tied, and at
// which depth (if any) a forced win for one of the players has been proven.
//
// For any search depth d <= TurnCountTie() the position is a tie. For any
// d >= TurnCountWin(), when TurnCountWin() != 0, the position is won by the
// current player if CurPlayerWins(), else by the other player. Depths in
// between are undetermined.
//
// The zero value is not meaningful; use NoInfo for an empty score.
type Score struct {
	data uint32
}

var (
	noInfo   = Score{data: winMask}
	ancestor = Score{data: curPlayerWinsMask | winMask}
)

// Validate reports whether New would accept the given fields.
func Validate(curPlayerWins bool, turnCountTie, turnCountWin uint32) error {
	switch {
	case turnCountTie > MaxTieDepth:
		return fmt.Errorf("%w: tie depth %d exceeds %d", ErrInvalid, turnCountTie, MaxTieDepth)
	case turnCountWin > MaxWinDepth:
		return fmt.Errorf("%w: win depth %d exceeds %d", ErrInvalid, turnCountWin, MaxWinDepth)
	case turnCountWin == 0 && curPlayerWins:
		return fmt.Errorf("%w: tied score cannot have the current player winning", ErrInvalid)
	case turnCountWin != 0 && turnCountTie >= turnCountWin:
		return fmt.Errorf("%w: tie depth %d overlaps win depth %d", ErrInvalid, turnCountTie, turnCountWin)
	}
	return nil
}

// New constructs a score from its fields. A turnCountWin of 0 means no decided
// outcome is known. It panics if the fields are out of range or overlap.
func New(curPlayerWins bool, turnCountTie, turnCountWin uint32) Score {
	if err := Validate(curPlayerWins, turnCountTie, turnCountWin); err != nil {
		panic(err)
	}
	storedWin := uint32(noWin)
	if turnCountWin != 0 {
		storedWin = turnCountWin - 1
	}
	return Score{data: pack(curPlayerWins, turnCountTie, storedWin)}
}

// Win is a forced win for the current player in turnCountWin moves, without
// any claim that no faster win exists.
func Win(turnCountWin uint32) Score {
	mustBeDecided(turnCountWin)
	return New(true, 0, turnCountWin)
}

// OptimalWin is a forced win for the current player in turnCountWin moves,
// where it is also known there is no faster way to force a win.
func OptimalWin(turnCountWin uint32) Score {
	mustBeDecided(turnCountWin)
	return New(true, turnCountWin-1, turnCountWin)
}

// Lose is a forced win for the other player in turnCountLose moves.
func Lose(turnCountLose uint32) Score {
	mustBeDecided(turnCountLose)
	return New(false, 0, turnCountLose)
}

// OptimalLose is a forced win for the other player in turnCountLose moves,
// where it is also known the other player cannot win any faster.
func OptimalLose(turnCountLose uint32) Score {
	mustBeDecided(turnCountLose)
	return New(false, turnCountLose-1, turnCountLose)
}

// Tie is a position with no forced win for either player in turnCountTie
// moves.
func Tie(turnCountTie uint32) Score {
	return New(false, turnCountTie, 0)
}

// GuaranteedTie is a position with no forced win at any depth.
func GuaranteedTie() Score {
	return Tie(MaxTieDepth)
}

// NoInfo carries no information. It is equal to Tie(0).
func NoInfo() Score {
	return noInfo
}

// Ancestor marks a position whose score is currently being computed further up
// the search. No other constructor produces this value. Prefer Memo for new
// code.
func Ancestor() Score {
	return ancestor
}

func mustBeDecided(turnCount uint32) {
	if turnCount == 0 {
		panic(fmt.Errorf("%w: decided score needs a nonzero turn count", ErrInvalid))
	}
}

// FromBits reconstructs a score from its raw packed word, rejecting words no
// constructor could have produced.
func FromBits(bits uint32) (Score, error) {
	s := Score{data: bits}
	if s == ancestor {
		return s, nil
	}
	if bits&unusedMask != 0 {
		return noInfo, fmt.Errorf("%w: unused bits set in %#08x", ErrInvalid, bits)
	}
	if s.storedWin() == MaxWinDepth {
		return noInfo, fmt.Errorf("%w: win field out of range in %#08x", ErrInvalid, bits)
	}
	if err := Validate(s.CurPlayerWins(), s.TurnCountTie(), s.TurnCountWin()); err != nil {
		return noInfo, err
	}
	return s, nil
}

// Bits returns the raw packed word.
func (s Score) Bits() uint32 {
	return s.data
}

func (s Score) CurPlayerWins() bool {
	return s.data&curPlayerWinsMask != 0
}

func (s Score) TurnCountTie() uint32 {
	return (s.data & tieMask) >> tieShift
}

// TurnCountWin returns the depth of the decided outcome, or 0 if there is none.
func (s Score) TurnCountWin() uint32 {
	stored := s.storedWin()
	if stored == noWin {
		return 0
	}
	return stored + 1
}

func (s Score) storedWin() uint32 {
	return (s.data & winMask) >> winShift
}

// IsTie is true when no decided outcome is known.
func (s Score) IsTie() bool {
	return s.data&(winMask|curPlayerWinsMask) == winMask
}

func (s Score) IsGuaranteedTie() bool {
	return s.data&tieMask == tieMask
}

// IsWin is true when a forced win for the current player is known.
func (s Score) IsWin() bool {
	return s.CurPlayerWins() && s != ancestor
}

// IsLoss is true when a forced win for the other player is known.
func (s Score) IsLoss() bool {
	return !s.IsTie() && !s.CurPlayerWins()
}

func (s Score) IsAncestor() bool {
	return s == ancestor
}

func (s Score) HasNoInfo() bool {
	return s == noInfo
}

// DeterminedDepth is the deepest search depth this score carries any
// certainty about.
func (s Score) DeterminedDepth() uint32 {
	return max(s.TurnCountTie(), s.TurnCountWin())
}

// Determined is true if a full search to searchDepth is guaranteed to
// reproduce the outcome this score already encodes.
func (s Score) Determined(searchDepth uint32) bool {
	if s == ancestor {
		return false
	}
	if searchDepth <= s.TurnCountTie() || s.IsGuaranteedTie() {
		return true
	}
	win := s.TurnCountWin()
	return win != 0 && searchDepth >= win
}

// ScoreAt returns the outcome of the game given depth moves to play. The
// caller must ensure Determined(depth); it panics otherwise. Use ValueAt when
// the depth comes from an untrusted source.
func (s Score) ScoreAt(depth uint32) Value {
	if depth <= s.TurnCountTie() || s.IsGuaranteedTie() {
		return Tied
	}
	if win := s.TurnCountWin(); win != 0 && depth >= win {
		if s.CurPlayerWins() {
			return CurrentPlayerWins
		}
		return OtherPlayerWins
	}
	panic(fmt.Sprintf("score: resolving %v at undetermined depth %d", s, depth))
}

// ValueAt is the checked form of ScoreAt.
func (s Score) ValueAt(depth uint32) (Value, error) {
	if !s.Determined(depth) {
		return Tied, fmt.Errorf("%w: %v at depth %d", ErrUndetermined, s, depth)
	}
	return s.ScoreAt(depth), nil
}

// Backstep transforms a score of a position into how it appears from the
// position one move before it: a win for one player in n moves becomes a win
// for the other player in n + 1 moves.
func (s Score) Backstep() Score {
	if s == ancestor {
		panic("score: backstep of ancestor")
	}
	var add, flip uint32
	if !s.IsTie() {
		if s.TurnCountWin() >= MaxWinDepth {
			panic(fmt.Sprintf("score: backstep of %v overflows the win depth", s))
		}
		add += 1 << winShift
		flip = curPlayerWinsMask
	}
	if !s.IsGuaranteedTie() {
		add += 1 << tieShift
	}
	return Score{data: (s.data + add) ^ flip}
}

// Forwardstep is the inverse of Backstep: it transforms a score of a position
// into how it appears from the position one move after it.
func (s Score) Forwardstep() Score {
	if s == ancestor {
		panic("score: forwardstep of ancestor")
	}
	var sub, flip uint32
	if !s.IsTie() {
		flip = curPlayerWinsMask
		if s.storedWin() != 0 {
			sub += 1 << winShift
		}
	}
	if !s.IsGuaranteedTie() && s.TurnCountTie() != 0 {
		sub += 1 << tieShift
	}
	return Score{data: (s.data - sub) ^ flip}
}

// Compatible is true if the two scores make no contradicting claims about
// any depth, in which case they can be merged.
func (s Score) Compatible(other Score) bool {
	if s == ancestor || other == ancestor {
		return false
	}
	agree := s.IsTie() || other.IsTie() || s.CurPlayerWins() == other.CurPlayerWins()
	return s.storedWin() >= other.TurnCountTie() &&
		other.storedWin() >= s.TurnCountTie() &&
		agree
}

// Merge combines the information of two compatible scores. It panics if the
// scores are incompatible.
func (s Score) Merge(other Score) Score {
	if s == ancestor || other == ancestor {
		panic("score: merge with ancestor")
	}
	if !s.Compatible(other) {
		panic(fmt.Sprintf("score: merging incompatible scores %v and %v", s, other))
	}
	tie := max(s.data&tieMask, other.data&tieMask)
	win := min(s.data&winMask, other.data&winMask)
	curPlayerWins := (s.data | other.data) & curPlayerWinsMask
	return Score{data: tie | win | curPlayerWins}
}

// TryMerge is the checked form of Merge.
func (s Score) TryMerge(other Score) (Score, error) {
	if s == ancestor || other == ancestor || !s.Compatible(other) {
		return noInfo, fmt.Errorf("%w: %v and %v", ErrIncompatible, s, other)
	}
	return s.Merge(other), nil
}

// Better is true if this score is strictly better than other for the current
// player. Wins beat ties beat losses; faster wins, slower losses and deeper
// tie proofs are preferred.
func (s Score) Better(other Score) bool {
	return orderKey(s.data) > orderKey(other.data)
}

// orderKey flips the win field of scores won by the current player, so a
// single unsigned comparison orders faster wins above slower ones.
func orderKey(data uint32) uint32 {
	if data&curPlayerWinsMask != 0 {
		return data ^ winMask
	}
	return data
}

// Cmp returns -1, 0 or +1 as s is worse than, equal to or better than other.
func (s Score) Cmp(other Score) int {
	switch {
	case s.Better(other):
		return 1
	case s == other:
		return 0
	default:
		return -1
	}
}

// BreakEarly builds the score of a position where not every move was
// explored. A proven win or loss keeps its exact distance, but the tie region
// is dropped since unexplored moves may hide a faster forced outcome.
func (s Score) BreakEarly() Score {
	if s == ancestor {
		return s
	}
	return Score{data: s.data &^ tieMask}
}

func (s Score) String() string {
	tie := s.TurnCountTie()
	switch {
	case s == ancestor:
		return "[ancestor]"
	case s.IsGuaranteedTie():
		return "[tie:∞]"
	case s.IsTie():
		return fmt.Sprintf("[tie:%d]", tie)
	case s.CurPlayerWins():
		return fmt.Sprintf("[tie:%d,cur:%d]", tie, s.TurnCountWin())
	default:
		return fmt.Sprintf("[tie:%d,oth:%d]", tie, s.TurnCountWin())
	}
}

func pack(curPlayerWins bool, turnCountTie, storedWin uint32) uint32 {
	var data uint32
	if curPlayerWins {
		data |= curPlayerWinsMask
	}
	return data | turnCountTie<<tieShift | storedWin<<winShift
}
