package vapesort

// Progress is the scoring state carried between drops.
type Progress struct {
	Score      int
	Streak     int
	Multiplier int
}

type Scoring struct {
	Reward  int `yaml:"reward"`
	Penalty int `yaml:"penalty"`
}

var DefaultScoring = Scoring{Reward: 10, Penalty: 5}

func NewProgress() Progress {
	return Progress{Multiplier: 1}
}

// ApplyDisposalOutcome scores one drop that reached a bin. A match pays
// reward*multiplier and then re-derives the multiplier from the new streak;
// a mismatch costs the flat penalty and clears the streak.
func ApplyDisposalOutcome(p Progress, matched bool, s Scoring) Progress {
	if !matched {
		p.Score -= s.Penalty
		p.Streak = 0
		p.Multiplier = 1
		return p
	}

	p.Score += s.Reward * p.Multiplier
	p.Streak++
	p.Multiplier = multiplierFor(p.Streak)
	return p
}

func multiplierFor(streak int) int {
	if streak >= 1 {
		return 2
	}
	return 1
}

type Outcome string

const (
	OutcomeCorrect Outcome = "correct"
	OutcomeWrong   Outcome = "wrong"
	OutcomeMissed  Outcome = "missed"
	// OutcomeTooHigh is a drop inside a lane but above the bin. It is silent.
	OutcomeTooHigh Outcome = "too-high"
)

type DisposalResult struct {
	Item     *Item
	Bin      *Bin
	BinIndex int
	Outcome  Outcome
	Delta    int
	Progress Progress
}
