// Package state holds the UI state of a single page as an immutable value and
// the pure reducer that moves it between phases.
package state

import (
	"strings"

	"github.com/nguyentantai21042004/script-refine/internal/refiner"
)

// State is treated as an immutable value: Reduce returns a new State and never
// mutates Result in place.
type State struct {
	InputTranscript string
	IsProcessing    bool
	Result          *refiner.Result
	Error           string
	Options         refiner.Options
	Touched         bool
}

// Initial returns the state shown when the page mounts
func Initial(opts refiner.Options) State {
	return State{Options: opts}
}

func (s State) blankInput() bool {
	return strings.TrimSpace(s.InputTranscript) == ""
}

const (
	OptionAddHeadings = "addHeadings"
	OptionSEOFocus    = "seoFocus"
)

// Event is something that happened to the page
type Event interface {
	isEvent()
}

type InputChanged struct {
	Text string
}

type OptionToggled struct {
	Name string
}

type Submitted struct{}

type Succeeded struct {
	Result *refiner.Result
}

type Failed struct {
	Message string
}

func (InputChanged) isEvent()  {}
func (OptionToggled) isEvent() {}
func (Submitted) isEvent()     {}
func (Succeeded) isEvent()     {}
func (Failed) isEvent()        {}

// Effect tells the caller what side effect a transition requires
type Effect int

const (
	EffectNone Effect = iota
	// EffectProcess: call the refiner with the new state's input and options.
	EffectProcess
)
