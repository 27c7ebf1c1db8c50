package dodge

// Messages shown to the user when a run ends.
const (
	MsgGameOver = "Ouch! Game over."
	MsgVictory  = "You win!"
)

// Notifier tells the user a run has ended.
type Notifier interface {
	Notify(message string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(message string)

// Notify calls f(message).
func (f NotifierFunc) Notify(message string) {
	f(message)
}

// ScoreDisplay shows the current score. It is called after every change.
type ScoreDisplay interface {
	SetScoreText(score int)
}

// ScoreDisplayFunc adapts a function to ScoreDisplay.
type ScoreDisplayFunc func(score int)

// SetScoreText calls f(score).
func (f ScoreDisplayFunc) SetScoreText(score int) {
	f(score)
}

var (
	nopNotifier     = NotifierFunc(func(string) {})
	nopScoreDisplay = ScoreDisplayFunc(func(int) {})
)
