package domain

import (
	"fmt"

	apperrors "careernav/internal/platform/errors"
)

const TotalSteps = 4

const (
	StepIdentity = iota + 1
	StepSkills
	StepAptitude
	StepAspirations
)

// Transition is the outcome of a Next request.
type Transition int

const (
	Blocked Transition = iota
	Advanced
	Completed
)

// Draft is the in-progress wizard form. The step only ever moves by one and
// stays within [1, TotalSteps].
type Draft struct {
	step        int
	name        string
	education   Education
	stream      string
	skills      string
	aspirations string
	answers     map[int]string
}

func NewDraft() Draft {
	return Draft{step: StepIdentity, answers: map[int]string{}}
}

func (d Draft) Step() int                  { return d.step }
func (d Draft) Name() string               { return d.name }
func (d Draft) Education() Education       { return d.education }
func (d Draft) Stream() string             { return d.stream }
func (d Draft) Skills() string             { return d.skills }
func (d Draft) Aspirations() string        { return d.aspirations }
func (d Draft) StreamPolicy() StreamPolicy { return d.education.StreamPolicy() }

// Progress is the fraction of steps reached, for the progress bar.
func (d Draft) Progress() float64 {
	return float64(d.step) / float64(TotalSteps)
}

func (d Draft) Answers() map[int]string {
	out := make(map[int]string, len(d.answers))
	for k, v := range d.answers {
		out[k] = v
	}
	return out
}

func (d Draft) Answered() int { return len(d.answers) }

// Score counts correct aptitude answers. It is informational only.
func (d Draft) Score() int {
	n := 0
	for i, q := range Questions {
		if d.answers[i] == q.Answer {
			n++
		}
	}
	return n
}

func (d *Draft) SetName(name string) { d.name = name }

// SetEducation selects a level and always clears the stream.
func (d *Draft) SetEducation(e Education) {
	d.education = e
	d.stream = ""
}

func (d *Draft) SetStream(stream string) error {
	policy := d.education.StreamPolicy()
	if !policy.Accepts(stream) {
		return fmt.Errorf("stream %q not allowed for %q: %w", stream, d.education, apperrors.ErrInvalidInput)
	}
	d.stream = stream
	return nil
}

func (d *Draft) SetSkills(raw string)      { d.skills = raw }
func (d *Draft) SetAspirations(raw string) { d.aspirations = raw }

func (d *Draft) Answer(question int, option string) error {
	if question < 0 || question >= len(Questions) {
		return fmt.Errorf("question %d out of range: %w", question, apperrors.ErrInvalidInput)
	}
	if !Questions[question].HasOption(option) {
		return fmt.Errorf("option %q not offered for question %d: %w", option, question, apperrors.ErrInvalidInput)
	}
	if d.answers == nil {
		d.answers = map[int]string{}
	}
	d.answers[question] = option
	return nil
}

// CanAdvance reports whether the current step is complete. Only presence is
// checked: raw text is not parsed and quiz answers are not graded.
func (d Draft) CanAdvance() bool {
	switch d.step {
	case StepIdentity:
		return d.name != "" && d.education != EducationUnset && d.stream != ""
	case StepSkills:
		return d.skills != ""
	case StepAptitude:
		return len(d.answers) >= len(Questions)
	case StepAspirations:
		return d.aspirations != ""
	default:
		return false
	}
}

func (d Draft) CanGoBack() bool { return d.step > StepIdentity }

// Back moves one step back. It is a no-op on the first step.
func (d *Draft) Back() bool {
	if !d.CanGoBack() {
		return false
	}
	d.step--
	return true
}

// Next advances one step when the current step is complete. On the last step
// it finalizes the draft into a Profile and resets the draft.
func (d *Draft) Next() (Transition, Profile) {
	if !d.CanAdvance() {
		return Blocked, Profile{}
	}
	if d.step < TotalSteps {
		d.step++
		return Advanced, Profile{}
	}
	profile := d.finalize()
	*d = NewDraft()
	return Completed, profile
}

func (d Draft) finalize() Profile {
	return Profile{
		Name:        d.name,
		Education:   string(d.education),
		Stream:      d.stream,
		Skills:      SplitList(d.skills),
		Aspirations: SplitList(d.aspirations),
	}
}
