package game

// Status labels the game state derived from the current position. It is
// never stored independently: every mutation recomputes it from "whose
// turn, what legal moves exist, is the king attacked".
type Status int

const (
	Normal Status = iota
	Check
	Checkmate
	Stalemate
	Draw
)

func (s Status) String() string {
	switch s {
	case Normal:
		return "normal"
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case Draw:
		return "draw"
	}
	return "unknown"
}
