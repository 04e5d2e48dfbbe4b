package world

import (
	"errors"
	"fmt"
	"sync"
)

const (
	// Default generation parameters.
	DefaultRockRate   = 0.5
	DefaultIterations = 4
	DefaultThreshold  = 5
	DefaultRadius     = 1
	DefaultSize       = 50
)

var (
	// ErrInvalidParams is returned when a parameter is outside its allowed range.
	ErrInvalidParams = errors.New("invalid generation parameters")
	// ErrParamsFrozen is returned when process parameters are changed after generation started.
	ErrParamsFrozen = errors.New("generation parameters are frozen after first use")
)

// Params holds the cellular automaton tunables.
type Params struct {
	RockRate   float64 // R: probability an initial cell is rock
	Iterations int     // N: number of smoothing passes
	Threshold  int     // T: rock neighbors needed for a cell to become rock
	Radius     int     // M: Moore neighborhood range
	Size       int     // S: grid side length
}

// DefaultParams returns the standard cave parameters.
func DefaultParams() Params {
	return Params{
		RockRate:   DefaultRockRate,
		Iterations: DefaultIterations,
		Threshold:  DefaultThreshold,
		Radius:     DefaultRadius,
		Size:       DefaultSize,
	}
}

// Validate reports whether every parameter is within range.
func (p Params) Validate() error {
	switch {
	case p.RockRate < 0 || p.RockRate > 1:
		return fmt.Errorf("%w: rock rate %v not in [0,1]", ErrInvalidParams, p.RockRate)
	case p.Iterations < 0:
		return fmt.Errorf("%w: iterations %d is negative", ErrInvalidParams, p.Iterations)
	case p.Threshold < 0:
		return fmt.Errorf("%w: threshold %d is negative", ErrInvalidParams, p.Threshold)
	case p.Radius < 0:
		return fmt.Errorf("%w: radius %d is negative", ErrInvalidParams, p.Radius)
	case p.Size < 1:
		return fmt.Errorf("%w: size %d must be positive", ErrInvalidParams, p.Size)
	}
	return nil
}

// processParams are the parameters used by NewMap. They may be replaced with
// Configure until the first grid is synthesized from them.
var processParams = struct {
	sync.Mutex
	params Params
	frozen bool
}{params: DefaultParams()}

// Configure installs the process-wide parameters. It fails once any map built
// from the process parameters has synthesized a grid.
func Configure(p Params) error {
	if err := p.Validate(); err != nil {
		return err
	}
	processParams.Lock()
	defer processParams.Unlock()
	if processParams.frozen {
		return ErrParamsFrozen
	}
	processParams.params = p
	return nil
}

// ProcessParams returns the current process-wide parameters.
func ProcessParams() Params {
	processParams.Lock()
	defer processParams.Unlock()
	return processParams.params
}

// freezeProcessParams marks the process parameters as in use.
func freezeProcessParams() {
	processParams.Lock()
	processParams.frozen = true
	processParams.Unlock()
}
