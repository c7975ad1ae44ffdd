// internal/component/match_state.go
package component

// MatchState — фаза матча
type MatchState int

const (
	LoadoutState MatchState = iota // выбор оружия
	PlayState                      // идёт бой
	WinState                       // замок противника разрушен
	LoseState                      // замок игрока разрушен
)

func (s MatchState) String() string {
	switch s {
	case LoadoutState:
		return "loadout"
	case PlayState:
		return "play"
	case WinState:
		return "win"
	case LoseState:
		return "lose"
	default:
		return "unknown"
	}
}

// Finished — матч завершён победой или поражением.
func (s MatchState) Finished() bool {
	return s == WinState || s == LoseState
}
