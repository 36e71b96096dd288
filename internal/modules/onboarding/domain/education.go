package domain

type Education string

const (
	EducationUnset          Education = ""
	EducationHighSchool     Education = "High School (+2)"
	EducationDiploma        Education = "Diploma"
	EducationGraduation     Education = "Graduation"
	EducationPostGraduation Education = "Post Graduation"
	EducationPhD            Education = "Ph.D"
)

// Educations lists the selectable levels in display order.
var Educations = []Education{
	EducationHighSchool,
	EducationDiploma,
	EducationGraduation,
	EducationPostGraduation,
	EducationPhD,
}

func ParseEducation(raw string) (Education, bool) {
	if raw == "" {
		return EducationUnset, true
	}
	for _, e := range Educations {
		if string(e) == raw {
			return e, true
		}
	}
	return EducationUnset, false
}

type StreamKind int

const (
	StreamNone StreamKind = iota
	StreamChoice
	StreamText
)

func (k StreamKind) String() string {
	switch k {
	case StreamChoice:
		return "choice"
	case StreamText:
		return "text"
	default:
		return "none"
	}
}

// StreamPolicy describes how the stream field is collected for an education
// level.
type StreamPolicy struct {
	Kind    StreamKind
	Label   string
	Options []string
}

var streamChoices = map[Education][]string{
	EducationHighSchool: {"Science", "Commerce", "Arts"},
	EducationGraduation: {"B.Tech", "B.Sc.", "B.A.", "B.Com.", "BCA"},
}

func (e Education) StreamPolicy() StreamPolicy {
	switch e {
	case EducationHighSchool, EducationGraduation:
		return StreamPolicy{
			Kind:    StreamChoice,
			Label:   "Stream",
			Options: append([]string(nil), streamChoices[e]...),
		}
	case EducationDiploma, EducationPostGraduation, EducationPhD:
		return StreamPolicy{Kind: StreamText, Label: "Specialization"}
	case EducationUnset:
		return StreamPolicy{Kind: StreamNone}
	default:
		return StreamPolicy{Kind: StreamNone}
	}
}

// Accepts reports whether stream is a value the policy can hold. The empty
// stream is always accepted.
func (p StreamPolicy) Accepts(stream string) bool {
	if stream == "" {
		return true
	}
	switch p.Kind {
	case StreamText:
		return true
	case StreamChoice:
		for _, o := range p.Options {
			if o == stream {
				return true
			}
		}
	}
	return false
}
