package screencapture

import "fmt"

// State is a stage of the capture pipeline.
type State string

const (
	StateIdle           State = "idle"
	StateValidating     State = "validating"
	StateEnumerating    State = "enumerating"
	StateCapturing      State = "capturing"
	StateCompositing    State = "compositing"
	StatePostProcessing State = "post-processing"
	StateEncoding       State = "encoding"
	StateDone           State = "done"
	StateError          State = "error"
)

// transitions lists where each state may go next, StateError aside.
// Encoding goes back to Capturing for the next monitor in ModeEach.
var transitions = map[State][]State{
	StateIdle:           {StateValidating},
	StateValidating:     {StateEnumerating, StateCapturing},
	StateEnumerating:    {StateCapturing},
	StateCapturing:      {StateCompositing, StatePostProcessing},
	StateCompositing:    {StatePostProcessing},
	StatePostProcessing: {StateEncoding},
	StateEncoding:       {StateDone, StateCapturing},
}

// Update updates current state, s, to next and runs f in it. If the
// transition isn't allowed, f isn't run. If f fails, s moves to StateError.
func (s *State) Update(next State, f func() error) error {
	if err := s.check(next); err != nil {
		return err
	}

	*s = next
	if f == nil {
		return nil
	}
	if err := f(); err != nil {
		*s = StateError
		return err
	}
	return nil
}

func (s *State) check(next State) error {
	if next == StateError && *s != StateDone {
		return nil
	}
	for _, allowed := range transitions[*s] {
		if allowed == next {
			return nil
		}
	}
	return fmt.Errorf("invalid state: can't go from %s to %s", *s, next)
}
