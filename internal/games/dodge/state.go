package dodge

// GameState holds the score of one run.
type GameState struct {
	score    int
	winScore int
}

// NewGameState creates a zero score that wins at winScore.
func NewGameState(winScore int) *GameState {
	return &GameState{winScore: winScore}
}

// Score returns the current score.
func (s *GameState) Score() int {
	return s.score
}

// WinScore returns the victory threshold.
func (s *GameState) WinScore() int {
	return s.winScore
}

// Add increases the score and returns the new total.
// Negative amounts are ignored; the score never decreases.
func (s *GameState) Add(points int) int {
	if points > 0 {
		s.score += points
	}
	return s.score
}

// Won reports whether the score has reached the threshold.
func (s *GameState) Won() bool {
	return s.score >= s.winScore
}
