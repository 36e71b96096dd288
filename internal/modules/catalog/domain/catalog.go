package domain

import (
	"fmt"
	"strings"
)

type Mode string

const (
	ModeOnline  Mode = "Online"
	ModeOffline Mode = "Offline"
	ModeHybrid  Mode = "Hybrid"
)

func (m Mode) Validate() error {
	switch m {
	case ModeOnline, ModeOffline, ModeHybrid:
		return nil
	default:
		return fmt.Errorf("unsupported delivery mode %q", string(m))
	}
}

type Program struct {
	ID               string
	Name             string
	NSQF             int
	Provider         string
	Duration         string
	Description      string
	LearningOutcomes []string
	PotentialJobs    []string
}

type PathwayStep struct {
	Step        int
	ProgramName string
	NSQFLevel   int
	Duration    string
	Mode        Mode
	Completed   bool
}

// Learner is a row of the admin users table. Progress is display text.
type Learner struct {
	ID        int
	Name      string
	Education string
	Skills    []string
	Progress  string
}

type Post struct {
	Title    string
	Category string
	Excerpt  string
}

// Dataset is the complete read-only mock catalog.
type Dataset struct {
	Learners []Learner
	Programs []Program
	Pathway  []PathwayStep
	Posts    []Post
}

func (d Dataset) Validate() error {
	programIDs := make(map[string]struct{}, len(d.Programs))
	for _, p := range d.Programs {
		if strings.TrimSpace(p.ID) == "" || strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("program id and name are required")
		}
		if _, dup := programIDs[p.ID]; dup {
			return fmt.Errorf("duplicate program id %q", p.ID)
		}
		programIDs[p.ID] = struct{}{}
	}
	learnerIDs := make(map[int]struct{}, len(d.Learners))
	for _, l := range d.Learners {
		if _, dup := learnerIDs[l.ID]; dup {
			return fmt.Errorf("duplicate learner id %d", l.ID)
		}
		learnerIDs[l.ID] = struct{}{}
	}
	steps := make(map[int]struct{}, len(d.Pathway))
	for _, s := range d.Pathway {
		if s.Step <= 0 {
			return fmt.Errorf("pathway step must be positive, got %d", s.Step)
		}
		if _, dup := steps[s.Step]; dup {
			return fmt.Errorf("duplicate pathway step %d", s.Step)
		}
		steps[s.Step] = struct{}{}
		if err := s.Mode.Validate(); err != nil {
			return fmt.Errorf("pathway step %d: %w", s.Step, err)
		}
	}
	return nil
}
