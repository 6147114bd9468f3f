package input

import "fmt"

// Pin is a digital input line. Get reports whether the line is electrically high.
type Pin interface {
	Get() (bool, error)
}

// State is the pressed/released reading of both buttons for one frame.
type State struct {
	A bool
	B bool
}

// Sampler reads two active-low buttons.
type Sampler struct {
	A Pin
	B Pin
}

// Sample reads both buttons. A pressed button pulls its line low.
func (s *Sampler) Sample() (State, error) {
	a, err := pressed(s.A, "A")
	if err != nil {
		return State{}, err
	}
	b, err := pressed(s.B, "B")
	if err != nil {
		return State{}, err
	}
	return State{A: a, B: b}, nil
}

func pressed(p Pin, name string) (bool, error) {
	high, err := p.Get()
	if err != nil {
		return false, fmt.Errorf("button %s: %w", name, err)
	}
	return !high, nil
}

// Released is a pin whose button is never pressed.
type Released struct{}

// Get always reports a high line.
func (Released) Get() (bool, error) { return true, nil }
