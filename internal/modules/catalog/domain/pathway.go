package domain

// Pathway is the dashboard's local copy of the recommended steps. Only the
// Completed flag changes, and only through Toggle.
type Pathway struct {
	steps []PathwayStep
}

func NewPathway(steps []PathwayStep) Pathway {
	return Pathway{steps: append([]PathwayStep(nil), steps...)}
}

func (p Pathway) Steps() []PathwayStep {
	return append([]PathwayStep(nil), p.steps...)
}

func (p Pathway) Len() int { return len(p.steps) }

// Toggle flips the completed flag of the given step number. It reports false
// when no such step exists.
func (p *Pathway) Toggle(step int) bool {
	for i := range p.steps {
		if p.steps[i].Step == step {
			p.steps[i].Completed = !p.steps[i].Completed
			return true
		}
	}
	return false
}

func (p Pathway) Completed() int {
	n := 0
	for _, s := range p.steps {
		if s.Completed {
			n++
		}
	}
	return n
}

// Progress is the completed share in percent, 0 for an empty pathway.
func (p Pathway) Progress() float64 {
	if len(p.steps) == 0 {
		return 0
	}
	return float64(p.Completed()) / float64(len(p.steps)) * 100
}
