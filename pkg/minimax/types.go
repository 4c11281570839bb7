package minimax

// Other types, which didn't fit to the state or search files

// Any move signature the search can hand back to the game, must be comparable
// so the players can validate input against the legal move list
type MoveLike comparable

// Participant whose turn it is, there are always exactly two of them
type Turn uint8

const (
	NoTurn  Turn = 0
	Player1 Turn = 1
	Player2 Turn = 2
)

// The other participant, NoTurn stays NoTurn
func (t Turn) Opponent() Turn {
	if t == NoTurn {
		return NoTurn
	}
	return 3 - t
}

func (t Turn) String() string {
	switch t {
	case Player1:
		return "player 1"
	case Player2:
		return "player 2"
	}
	return "none"
}

// Signed terminal value of a zero-sum game, seen from player 1's perspective
type Score int

const (
	Win2 Score = -1
	Draw Score = 0
	Win1 Score = 1
)

// Final (player 1, player 2) scores of a game, where both participants
// maximize their own component instead of a shared value
type ScorePair [2]int

// Score of given participant
func (p ScorePair) Of(t Turn) int {
	return p[t-1]
}
