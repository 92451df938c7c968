package tetris

// ScoringRules controls how many points a clearing lock is worth.
type ScoringRules struct {
	ClearBase   int // Points for a clear with no streak
	StreakBonus int // Extra points per consecutive clearing lock before this one
}

// SpeedRules derives the gravity interval from the score.
type SpeedRules struct {
	BaseInterval  int  // Frames between gravity steps at score 0
	PointsPerStep int  // Score needed to shave one frame off the interval
	MinInterval   int  // Fastest allowed interval
	Progression   bool // When false the interval stays at BaseInterval
}

// DefaultScoringRules returns 3000 points per clear plus 200 per streak step.
func DefaultScoringRules() ScoringRules {
	return ScoringRules{ClearBase: 3000, StreakBonus: 200}
}

// DefaultSpeedRules returns an interval of 40 frames, one frame faster per
// 1000 points, never below 3.
func DefaultSpeedRules() SpeedRules {
	return SpeedRules{BaseInterval: 40, PointsPerStep: 1000, MinInterval: 3, Progression: true}
}

// Scorer tracks the score and the clear streak.
type Scorer struct {
	rules  ScoringRules
	score  int
	streak int
}

// NewScorer creates a scorer at zero.
func NewScorer(rules ScoringRules) *Scorer {
	return &Scorer{rules: rules}
}

// Award records one lock event that cleared the given number of rows and
// returns the points it earned. A clearing lock scores
// ClearBase + StreakBonus*streak and extends the streak; a lock that
// clears nothing resets the streak.
func (s *Scorer) Award(cleared int) int {
	if cleared <= 0 {
		s.streak = 0
		return 0
	}
	points := s.rules.ClearBase + s.rules.StreakBonus*s.streak
	s.score += points
	s.streak++
	return points
}

// Score returns the accumulated score.
func (s *Scorer) Score() int { return s.score }

// Streak returns the number of consecutive clearing locks.
func (s *Scorer) Streak() int { return s.streak }

// Interval returns the number of frames between gravity steps for a score.
func (r SpeedRules) Interval(score int) int {
	if !r.Progression || r.PointsPerStep <= 0 {
		return max(r.BaseInterval, r.MinInterval)
	}
	return max(r.BaseInterval-score/r.PointsPerStep, r.MinInterval)
}

// Level converts an interval into the displayed level, starting at 1.
func (r SpeedRules) Level(interval int) int {
	return r.BaseInterval + 1 - interval
}
