package state

import "github.com/nguyentantai21042004/script-refine/internal/refiner"

// Reduce applies e to s. It is pure: the same inputs always give the same output.
func Reduce(s State, e Event) (State, Effect) {
	switch e := e.(type) {
	case InputChanged:
		s.InputTranscript = e.Text
		s.Touched = true
		return s, EffectNone

	case OptionToggled:
		switch e.Name {
		case OptionAddHeadings:
			s.Options.AddHeadings = !s.Options.AddHeadings
		case OptionSEOFocus:
			s.Options.SEOFocus = !s.Options.SEOFocus
		}
		return s, EffectNone

	case Submitted:
		if s.blankInput() || s.IsProcessing {
			return s, EffectNone
		}
		s.IsProcessing = true
		s.Error = ""
		return s, EffectProcess

	case Succeeded:
		if !s.IsProcessing {
			return s, EffectNone
		}
		s.IsProcessing = false
		if e.Result == nil {
			// A completed call without a result still has to leave Loading.
			s.Result = nil
			s.Error = refiner.GenericErrorMessage
			return s, EffectNone
		}
		s.Result = e.Result
		s.Error = ""
		return s, EffectNone

	case Failed:
		if !s.IsProcessing {
			return s, EffectNone
		}
		s.IsProcessing = false
		s.Result = nil
		s.Error = e.Message
		return s, EffectNone
	}

	return s, EffectNone
}
