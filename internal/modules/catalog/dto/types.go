package dto

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
	Mode        string
	Completed   bool
}

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

type PathwayOutput struct {
	Steps     []PathwayStep
	Completed int
	Progress  float64
}
