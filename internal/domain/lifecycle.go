package domain

import "math"

// Event is a lifecycle event applied to a rental record.
type Event string

const (
	EventReserve Event = "reserve"
	EventStart   Event = "start"
	EventFinish  Event = "finish"
	EventCancel  Event = "cancel"
)

// transitions maps (current state, event) to the next state. Anything not
// listed here is an illegal transition.
var transitions = map[RentalStatus]map[Event]RentalStatus{
	RentalCreated: {
		EventReserve: RentalReserved,
		EventStart:   RentalStarted,
		EventCancel:  RentalCancelled,
	},
	RentalReserved: {
		EventStart:  RentalStarted,
		EventCancel: RentalCancelled,
	},
	RentalStarted: {
		EventFinish: RentalFinished,
		EventCancel: RentalCancelled,
	},
}

// Transition returns the state that applying event in state from yields.
// Illegal transitions fail with a *TransitionError wrapping
// ErrInvalidTransition; they are never silently ignored.
func Transition(from RentalStatus, event Event) (RentalStatus, error) {
	if next, ok := transitions[from][event]; ok {
		return next, nil
	}
	return from, &TransitionError{From: from, Event: event}
}

// ValidateMileage gates the finish transition: the proposed end odometer
// must be a finite, non-negative reading strictly greater than the start
// odometer.
func ValidateMileage(startKm int, endKm float64) error {
	if math.IsNaN(endKm) || math.IsInf(endKm, 0) || endKm < 0 {
		return ErrInvalidMileage
	}
	if int(endKm) <= startKm {
		return ErrInvalidMileage
	}
	return nil
}
