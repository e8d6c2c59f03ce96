package service

// Action is the closed set of job lifecycle actions. The wire string is only
// mapped to one of these at the handler boundary; from here on dispatch is a
// type switch and an unknown action cannot exist.
type Action interface {
	Name() string
}

type AcceptAction struct{}

func (AcceptAction) Name() string { return "ACCEPT" }

// StartAction carries the proof-of-work payload. Coordinates are pointers so
// an absent value can be told apart from zero.
type StartAction struct {
	PhotoRef string
	GpsLat   *float64
	GpsLng   *float64
}

func (StartAction) Name() string { return "START" }

type CompleteAction struct{}

func (CompleteAction) Name() string { return "COMPLETE" }

type CancelAction struct {
	Reason string
}

func (CancelAction) Name() string { return "CANCEL" }
