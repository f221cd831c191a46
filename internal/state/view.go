package state

import "github.com/nguyentantai21042004/script-refine/internal/refiner"

type Phase string

const (
	PhaseEmpty   Phase = "empty"
	PhaseEditing Phase = "editing"
	PhaseLoading Phase = "loading"
	PhaseDone    Phase = "done"
	PhaseFailed  Phase = "failed"
)

// View is what the page renders. It is derived from State and never stored.
type View struct {
	Phase       Phase           `json:"phase"`
	Input       string          `json:"inputTranscript"`
	Options     refiner.Options `json:"options"`
	Result      *refiner.Result `json:"result,omitempty"`
	Error       string          `json:"error,omitempty"`
	CanSubmit   bool            `json:"canSubmit"`
	ShowOverlay bool            `json:"showOverlay"`
	CanCopy     bool            `json:"canCopy"`
}

// PhaseOf reports the observable phase of s
func PhaseOf(s State) Phase {
	switch {
	case s.IsProcessing:
		return PhaseLoading
	case s.Error != "":
		return PhaseFailed
	case s.Result != nil:
		return PhaseDone
	case s.Touched:
		return PhaseEditing
	default:
		return PhaseEmpty
	}
}

// Project renders s into a View
func Project(s State) View {
	v := View{
		Phase:       PhaseOf(s),
		Input:       s.InputTranscript,
		Options:     s.Options,
		Error:       s.Error,
		CanSubmit:   !s.blankInput() && !s.IsProcessing,
		ShowOverlay: s.IsProcessing,
	}
	if s.Result != nil && s.Error == "" {
		v.Result = s.Result
		v.CanCopy = s.Result.CleanedText != ""
	}
	return v
}
