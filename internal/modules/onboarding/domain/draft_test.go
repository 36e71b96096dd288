package domain

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "careernav/internal/platform/errors"
)

func fillStepOne(t *testing.T, d *Draft) {
	t.Helper()
	d.SetName("Ananya Sharma")
	d.SetEducation(EducationGraduation)
	require.NoError(t, d.SetStream("B.Tech"))
}

func answerAll(t *testing.T, d *Draft) {
	t.Helper()
	for i, q := range Questions {
		require.NoError(t, d.Answer(i, q.Options[0]))
	}
}

func TestNewDraftStartsAtStepOne(t *testing.T) {
	t.Parallel()
	d := NewDraft()
	require.Equal(t, 1, d.Step())
	require.False(t, d.CanAdvance())
	require.False(t, d.CanGoBack())
	require.InDelta(t, 0.25, d.Progress(), 1e-9)
}

func TestStepOneRequiresNameEducationAndStream(t *testing.T) {
	t.Parallel()
	d := NewDraft()
	d.SetName("Ananya")
	require.False(t, d.CanAdvance())
	d.SetEducation(EducationDiploma)
	require.False(t, d.CanAdvance(), "stream still empty")
	require.NoError(t, d.SetStream("Computer Science"))
	require.True(t, d.CanAdvance())

	tr, _ := d.Next()
	require.Equal(t, Advanced, tr)
	require.Equal(t, 2, d.Step())
}

func TestBlockedNextDoesNotMove(t *testing.T) {
	t.Parallel()
	d := NewDraft()
	tr, p := d.Next()
	require.Equal(t, Blocked, tr)
	require.Equal(t, Profile{}, p)
	require.Equal(t, 1, d.Step())
}

func TestEducationChangeAlwaysClearsStream(t *testing.T) {
	t.Parallel()
	for _, from := range Educations {
		for _, to := range append([]Education{EducationUnset}, Educations...) {
			d := NewDraft()
			d.SetEducation(from)
			policy := d.StreamPolicy()
			stream := "Anything"
			if policy.Kind == StreamChoice {
				stream = policy.Options[0]
			}
			require.NoError(t, d.SetStream(stream))
			d.SetEducation(to)
			require.Empty(t, d.Stream(), "%q -> %q", from, to)
		}
	}
}

func TestStreamPolicyPerEducation(t *testing.T) {
	t.Parallel()
	require.Equal(t, []string{"Science", "Commerce", "Arts"}, EducationHighSchool.StreamPolicy().Options)
	require.Equal(t, []string{"B.Tech", "B.Sc.", "B.A.", "B.Com.", "BCA"}, EducationGraduation.StreamPolicy().Options)
	for _, e := range []Education{EducationDiploma, EducationPostGraduation, EducationPhD} {
		require.Equal(t, StreamText, e.StreamPolicy().Kind)
		require.Equal(t, "Specialization", e.StreamPolicy().Label)
	}
	require.Equal(t, StreamNone, EducationUnset.StreamPolicy().Kind)
	require.Equal(t, StreamNone, Education("Bootcamp").StreamPolicy().Kind)
}

func TestSetStreamRejectsValuesOutsidePolicy(t *testing.T) {
	t.Parallel()
	d := NewDraft()
	require.True(t, errors.Is(d.SetStream("Science"), apperrors.ErrInvalidInput), "no education selected")

	d.SetEducation(EducationHighSchool)
	require.Error(t, d.SetStream("B.Tech"))
	require.Empty(t, d.Stream())
	require.NoError(t, d.SetStream("Arts"))
	require.NoError(t, d.SetStream(""))
	require.Empty(t, d.Stream())
}

func TestSkillsAndAspirationsNeedRawText(t *testing.T) {
	t.Parallel()
	d := NewDraft()
	fillStepOne(t, &d)
	d.Next()

	require.False(t, d.CanAdvance())
	d.SetSkills(",,")
	require.True(t, d.CanAdvance(), "raw text is not parsed before advancing")
	d.Next()
	require.Equal(t, StepAptitude, d.Step())
}

func TestAptitudeNeedsEveryQuestionAnsweredNotCorrect(t *testing.T) {
	t.Parallel()
	d := NewDraft()
	fillStepOne(t, &d)
	d.Next()
	d.SetSkills("Python")
	d.Next()

	require.NoError(t, d.Answer(0, "20"))
	require.NoError(t, d.Answer(1, "Ample"))
	require.False(t, d.CanAdvance())
	require.NoError(t, d.Answer(2, "5%"))
	require.True(t, d.CanAdvance())
	require.Equal(t, 0, d.Score())

	require.NoError(t, d.Answer(0, "25"))
	require.Equal(t, 3, d.Answered())
	require.Equal(t, 1, d.Score())

	require.Error(t, d.Answer(3, "25"))
	require.Error(t, d.Answer(-1, "25"))
	require.Error(t, d.Answer(0, "26"))
}

func TestBackIsNeverValidated(t *testing.T) {
	t.Parallel()
	d := NewDraft()
	require.False(t, d.Back(), "back from step 1 is a no-op")
	require.Equal(t, 1, d.Step())

	fillStepOne(t, &d)
	d.Next()
	d.SetName("")
	require.True(t, d.Back())
	require.Equal(t, 1, d.Step())
}

func TestNextOnLastStepCompletesAndResets(t *testing.T) {
	t.Parallel()
	d := NewDraft()
	fillStepOne(t, &d)
	d.Next()
	d.SetSkills("a, b ,,c")
	d.Next()
	answerAll(t, &d)
	d.Next()
	require.Equal(t, TotalSteps, d.Step())
	d.SetAspirations("Work in IT, Start my own business, Work in IT")

	tr, p := d.Next()
	require.Equal(t, Completed, tr)
	require.Equal(t, Profile{
		Name:        "Ananya Sharma",
		Education:   "Graduation",
		Stream:      "B.Tech",
		Skills:      []string{"a", "b", "c"},
		Aspirations: []string{"Work in IT", "Start my own business", "Work in IT"},
	}, p)
	require.Equal(t, 1, d.Step(), "draft is discarded after completion")
	require.Empty(t, d.Name())
}

func TestSplitList(t *testing.T) {
	t.Parallel()
	require.Equal(t, []string{"a", "b", "c"}, SplitList("a, b ,,c"))
	require.Equal(t, []string{}, SplitList(" , ,"))
	require.Equal(t, []string{"x", "x"}, SplitList("x,x"))
}

func TestRandomWalkKeepsStepInBounds(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(7))
	d := NewDraft()
	for i := 0; i < 5000; i++ {
		switch rng.Intn(8) {
		case 0:
			d.Back()
		case 1:
			d.Next()
		case 2:
			d.SetName([]string{"", "Ravi"}[rng.Intn(2)])
		case 3:
			d.SetEducation(append([]Education{EducationUnset}, Educations...)[rng.Intn(len(Educations)+1)])
			require.Empty(t, d.Stream())
		case 4:
			if p := d.StreamPolicy(); p.Kind == StreamChoice {
				_ = d.SetStream(p.Options[rng.Intn(len(p.Options))])
			} else {
				_ = d.SetStream("Mechanical")
			}
		case 5:
			d.SetSkills([]string{"", "Go"}[rng.Intn(2)])
		case 6:
			q := rng.Intn(len(Questions))
			_ = d.Answer(q, Questions[q].Options[rng.Intn(len(Questions[q].Options))])
		case 7:
			d.SetAspirations([]string{"", "Teach"}[rng.Intn(2)])
		}
		require.GreaterOrEqual(t, d.Step(), 1)
		require.LessOrEqual(t, d.Step(), TotalSteps)
	}
}
