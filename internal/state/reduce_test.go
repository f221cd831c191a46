package state

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nguyentantai21042004/script-refine/internal/refiner"
)

var catsResult = &refiner.Result{
	CleanedText:      "Today we're going to talk about cats.",
	SEOKeywords:      []string{"cats", "pets"},
	ReadabilityScore: "Grade 6",
	WordCount:        6,
}

func defaults() State {
	return Initial(refiner.Options{AddHeadings: true, SEOFocus: true})
}

func apply(s State, events ...Event) State {
	for _, e := range events {
		s, _ = Reduce(s, e)
	}
	return s
}

func TestInitialIsEmpty(t *testing.T) {
	s := defaults()

	assert.Equal(t, PhaseEmpty, PhaseOf(s))
	assert.True(t, s.Options.AddHeadings)
	assert.True(t, s.Options.SEOFocus)
	assert.False(t, Project(s).CanSubmit)
}

func TestBlankSubmitIsNoop(t *testing.T) {
	for _, input := range []string{"", " ", "\n\t  \r\n"} {
		t.Run("input "+input, func(t *testing.T) {
			before := apply(defaults(), InputChanged{Text: input})

			after, effect := Reduce(before, Submitted{})

			assert.Equal(t, EffectNone, effect)
			assert.Equal(t, before, after)
		})
	}
}

func TestBlankSubmitKeepsDoneState(t *testing.T) {
	before := apply(defaults(), InputChanged{Text: "hello"}, Submitted{}, Succeeded{Result: catsResult}, InputChanged{Text: "  "})

	after, effect := Reduce(before, Submitted{})

	assert.Equal(t, EffectNone, effect)
	assert.Equal(t, before, after)
	assert.Equal(t, PhaseDone, PhaseOf(after))
}

func TestSubmitStartsLoadingOnce(t *testing.T) {
	s := apply(defaults(), InputChanged{Text: "00:01 so uh today"})
	assert.Equal(t, PhaseEditing, PhaseOf(s))
	assert.True(t, Project(s).CanSubmit)

	s, effect := Reduce(s, Submitted{})
	assert.Equal(t, EffectProcess, effect)
	assert.Equal(t, PhaseLoading, PhaseOf(s))
	assert.False(t, Project(s).CanSubmit)
	assert.True(t, Project(s).ShowOverlay)

	again, effect := Reduce(s, Submitted{})
	assert.Equal(t, EffectNone, effect)
	assert.Equal(t, s, again)
}

func TestSubmitClearsPriorError(t *testing.T) {
	s := apply(defaults(), InputChanged{Text: "x"}, Submitted{}, Failed{Message: refiner.GenericErrorMessage})
	assert.Equal(t, PhaseFailed, PhaseOf(s))

	s, effect := Reduce(s, Submitted{})

	assert.Equal(t, EffectProcess, effect)
	assert.Empty(t, s.Error)
	assert.Equal(t, PhaseLoading, PhaseOf(s))
}

func TestSuccessShowsResultVerbatim(t *testing.T) {
	s := apply(defaults(), InputChanged{Text: "00:01 so uh today we're gonna talk about cats"}, Submitted{}, Succeeded{Result: catsResult})

	v := Project(s)
	assert.Equal(t, PhaseDone, v.Phase)
	assert.Equal(t, catsResult, v.Result)
	assert.Empty(t, v.Error)
	assert.False(t, s.IsProcessing)
	assert.True(t, v.CanCopy)
}

func TestFailureDropsPriorResult(t *testing.T) {
	s := apply(defaults(), InputChanged{Text: "x"}, Submitted{}, Succeeded{Result: catsResult}, Submitted{}, Failed{Message: refiner.GenericErrorMessage})

	v := Project(s)
	assert.Equal(t, PhaseFailed, v.Phase)
	assert.Nil(t, s.Result)
	assert.Nil(t, v.Result)
	assert.Equal(t, refiner.GenericErrorMessage, v.Error)
	assert.False(t, v.CanCopy)
}

func TestResultAndErrorNeverBothSet(t *testing.T) {
	sequences := [][]Event{
		{InputChanged{Text: "x"}, Submitted{}, Succeeded{Result: catsResult}},
		{InputChanged{Text: "x"}, Submitted{}, Failed{Message: "e"}},
		{InputChanged{Text: "x"}, Submitted{}, Failed{Message: "e"}, Submitted{}, Succeeded{Result: catsResult}},
		{InputChanged{Text: "x"}, Submitted{}, Succeeded{Result: catsResult}, Submitted{}, Failed{Message: "e"}},
		{Succeeded{Result: catsResult}, Failed{Message: "e"}},
	}

	for _, seq := range sequences {
		s := defaults()
		for _, e := range seq {
			s, _ = Reduce(s, e)
			assert.False(t, s.Result != nil && s.Error != "", "state %+v after %T", s, e)
		}
	}
}

func TestCompletionOutsideLoadingIgnored(t *testing.T) {
	s := apply(defaults(), InputChanged{Text: "x"})

	after := apply(s, Succeeded{Result: catsResult}, Failed{Message: "late"})

	assert.Equal(t, s, after)
}

func TestToggleOptions(t *testing.T) {
	tests := []struct {
		name string
		opt  string
		want refiner.Options
	}{
		{"headings", OptionAddHeadings, refiner.Options{AddHeadings: false, SEOFocus: true}},
		{"seo", OptionSEOFocus, refiner.Options{AddHeadings: true, SEOFocus: false}},
		{"unknown", "fontSize", refiner.Options{AddHeadings: true, SEOFocus: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, effect := Reduce(defaults(), OptionToggled{Name: tt.opt})
			assert.Equal(t, EffectNone, effect)
			assert.Equal(t, tt.want, s.Options)
		})
	}
}

func TestToggleDuringLoadingAppliesToNextSubmit(t *testing.T) {
	s := apply(defaults(), InputChanged{Text: "x"}, Submitted{}, OptionToggled{Name: OptionAddHeadings})

	assert.True(t, s.IsProcessing)
	assert.False(t, s.Options.AddHeadings)
}

func TestSucceededWithoutResultFails(t *testing.T) {
	s := apply(defaults(), InputChanged{Text: "hello"}, Submitted{}, Succeeded{Result: nil})

	assert.False(t, s.IsProcessing)
	assert.Equal(t, PhaseFailed, PhaseOf(s))
	assert.Equal(t, refiner.GenericErrorMessage, s.Error)
	assert.True(t, Project(s).CanSubmit)
}
