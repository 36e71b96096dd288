package dto

import "time"

type FetchState struct {
	ProgramName string
	Status      string
	Text        string
	Cause       string
	Generation  uint64
	RequestID   string
	StartedAt   time.Time
	FinishedAt  time.Time
}

func (s FetchState) Loading() bool { return s.Status == "loading" }
func (s FetchState) Failed() bool  { return s.Status == "error" }

type Result struct {
	Generation uint64
	Text       string
	Err        error
}

type Block struct {
	Kind string
	Text string
}

// Rendered is a formatted response: classified lines plus the equivalent
// CommonMark document for terminal renderers.
type Rendered struct {
	Blocks   []Block
	Markdown string
}

type DescribeOutput struct {
	State    FetchState
	Rendered Rendered
}
