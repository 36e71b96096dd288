package dto

// Field names a free-form wizard input.
type Field string

const (
	FieldName        Field = "name"
	FieldEducation   Field = "education"
	FieldStream      Field = "stream"
	FieldSkills      Field = "skills"
	FieldAspirations Field = "aspirations"
)

type Question struct {
	Prompt  string
	Options []string
}

type DraftOutput struct {
	Step        int
	TotalSteps  int
	Progress    float64
	Name        string
	Education   string
	Stream      string
	Skills      string
	Aspirations string

	StreamKind    string
	StreamLabel   string
	StreamOptions []string

	Answers    map[int]string
	Score      int
	CanAdvance bool
	CanGoBack  bool
	FinalStep  bool
}

type Profile struct {
	Name        string
	Education   string
	Stream      string
	Skills      []string
	Aspirations []string
}

type AdvanceOutput struct {
	Draft     DraftOutput
	Completed bool
	Profile   Profile
	Score     int
}
