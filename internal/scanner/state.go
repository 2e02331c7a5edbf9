package scanner

import "fmt"

// State is the dispatcher state
type State int

const (
	// StateIdle - камера выключена, сканирование не идёт
	StateIdle State = iota
	// StateScanning - камера включена, ждём декодированную строку
	StateScanning
	// StateProcessing - строка расшифровывается и обрабатывается, камера выключена
	StateProcessing
	// StateNavigated - скан завершился переходом на другой экран
	StateNavigated
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateScanning:
		return "scanning"
	case StateProcessing:
		return "processing"
	case StateNavigated:
		return "navigated"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

var allowedTransitions = map[State][]State{
	StateIdle:       {StateScanning},
	StateScanning:   {StateIdle, StateProcessing},
	StateProcessing: {StateScanning, StateIdle, StateNavigated},
	StateNavigated:  {StateScanning, StateIdle},
}

func isAllowedTransition(from, to State) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func validateTransition(from, to State) error {
	if !isAllowedTransition(from, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	return nil
}
