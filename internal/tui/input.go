package tui

import "github.com/gdamore/tcell/v2"

// Action — команда игрока с клавиатуры.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionSlot1 // выбор оружия или спавн, в зависимости от экрана
	ActionSlot2
	ActionSlot3
	ActionStart
	ActionRestart
	ActionPause
)

// ActionFor переводит нажатие в команду.
func ActionFor(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyEnter:
		return ActionStart
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return ActionQuit
		case '1':
			return ActionSlot1
		case '2':
			return ActionSlot2
		case '3':
			return ActionSlot3
		case ' ':
			return ActionStart
		case 'r', 'R':
			return ActionRestart
		case 'p', 'P':
			return ActionPause
		}
	}
	return ActionNone
}

// Slot — номер слота 0..2 для ActionSlotN, иначе -1.
func (a Action) Slot() int {
	switch a {
	case ActionSlot1:
		return 0
	case ActionSlot2:
		return 1
	case ActionSlot3:
		return 2
	}
	return -1
}
