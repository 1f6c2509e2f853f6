package manager

// StateManager keeps per-process round bookkeeping. Nothing here is
// written to disk.
type StateManager struct {
	round        int
	foodEaten    int
	steps        int
	elapsed      float64
	highScore    int
	scoreHistory []int
}

func NewStateManager() *StateManager {
	return &StateManager{
		round:        1,
		scoreHistory: make([]int, 0),
	}
}

// RecordStep counts a successful movement step in the current round.
func (sm *StateManager) RecordStep() {
	sm.steps++
}

// RecordFood counts food eaten in the current round.
func (sm *StateManager) RecordFood() {
	sm.foodEaten++
}

// AddTime accumulates simulated seconds for the current round.
func (sm *StateManager) AddTime(dt float64) {
	sm.elapsed += dt
}

// EndRound closes the current round with its final snake length.
func (sm *StateManager) EndRound(length int) {
	sm.UpdateScore(length)
	sm.AddToHistory(length)
}

// NextRound resets the per-round counters.
func (sm *StateManager) NextRound() {
	sm.round++
	sm.foodEaten = 0
	sm.steps = 0
	sm.elapsed = 0
}

func (sm *StateManager) UpdateScore(score int) {
	if score > sm.highScore {
		sm.highScore = score
	}
}

func (sm *StateManager) AddToHistory(score int) {
	sm.scoreHistory = append(sm.scoreHistory, score)
}

func (sm *StateManager) Round() int {
	return sm.round
}

func (sm *StateManager) FoodEaten() int {
	return sm.foodEaten
}

func (sm *StateManager) Steps() int {
	return sm.steps
}

func (sm *StateManager) Elapsed() float64 {
	return sm.elapsed
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}

func (sm *StateManager) GetScoreHistory() []int {
	return sm.scoreHistory
}
