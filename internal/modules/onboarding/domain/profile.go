package domain

import "strings"

// Profile is the finished output of the wizard. Treat it as a value: it is
// never edited after creation.
type Profile struct {
	Name        string
	Education   string
	Stream      string
	Skills      []string
	Aspirations []string
}

// SplitList splits comma-delimited input, trims every token and drops empty
// ones. Order and duplicates are preserved.
func SplitList(raw string) []string {
	out := []string{}
	for _, part := range strings.Split(raw, ",") {
		if token := strings.TrimSpace(part); token != "" {
			out = append(out, token)
		}
	}
	return out
}
