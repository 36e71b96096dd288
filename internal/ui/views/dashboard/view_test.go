package dashboard

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	careerdetaildto "careernav/internal/modules/careerdetail/dto"
	catalogdto "careernav/internal/modules/catalog/dto"
)

type fakePathway struct{}

func (fakePathway) RecommendedPathway(context.Context) (catalogdto.PathwayOutput, error) {
	return catalogdto.PathwayOutput{Steps: []catalogdto.PathwayStep{
		{Step: 1, ProgramName: "Certified Python Programmer", NSQFLevel: 4, Duration: "3 Months", Mode: "Online"},
		{Step: 2, ProgramName: "Advanced Diploma in Data Analytics", NSQFLevel: 5, Duration: "6 Months", Mode: "Hybrid"},
	}}, nil
}

func (fakePathway) TogglePathwayStep(current catalogdto.PathwayOutput, step int) (catalogdto.PathwayOutput, error) {
	current.Steps[step-1].Completed = !current.Steps[step-1].Completed
	return current, nil
}

type fakeDetails struct {
	opened []string
	name   string
	closes int
	gen    uint64
}

func (f *fakeDetails) Open(_ context.Context, programName string) (careerdetaildto.FetchState, func() careerdetaildto.Result) {
	f.opened = append(f.opened, programName)
	f.name = programName
	f.gen++
	gen := f.gen
	return careerdetaildto.FetchState{ProgramName: programName, Status: "loading", Generation: gen},
		func() careerdetaildto.Result { return careerdetaildto.Result{Generation: gen, Text: "**Overview**"} }
}

func (f *fakeDetails) Apply(result careerdetaildto.Result) (careerdetaildto.FetchState, bool) {
	if result.Generation != f.gen {
		return careerdetaildto.FetchState{}, false
	}
	if result.Err != nil {
		return careerdetaildto.FetchState{ProgramName: f.name, Status: "error", Text: "Could not load details. " + result.Err.Error(), Generation: f.gen}, true
	}
	return careerdetaildto.FetchState{ProgramName: f.name, Status: "success", Text: result.Text, Generation: f.gen}, true
}

func (f *fakeDetails) Close() careerdetaildto.FetchState {
	f.closes++
	f.gen++
	return careerdetaildto.FetchState{Status: "idle", Generation: f.gen}
}

func (f *fakeDetails) Format(text string) careerdetaildto.Rendered {
	return careerdetaildto.Rendered{Markdown: text}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func loaded(t *testing.T, details *fakeDetails) Model {
	t.Helper()
	m := New(fakePathway{}, details)
	m.Activate(nil)
	pathway, _ := fakePathway{}.RecommendedPathway(context.Background())
	m, _ = m.Update(PathwayLoadedMsg{Pathway: pathway})
	return m
}

func TestEnterOpensModalForSelectedStep(t *testing.T) {
	t.Parallel()
	details := &fakeDetails{}
	m := loaded(t, details)

	m, _ = m.Update(key("down"))
	m, cmd := m.Update(key("enter"))
	if cmd == nil || !m.ModalOpen() {
		t.Fatalf("enter must open the modal and start a fetch")
	}
	if len(details.opened) != 1 || details.opened[0] != "Advanced Diploma in Data Analytics" {
		t.Fatalf("unexpected opens: %v", details.opened)
	}
	if !m.Fetch().Loading() {
		t.Fatalf("expected loading state, got %q", m.Fetch().Status)
	}
}

func TestSpaceTogglesStepCompletion(t *testing.T) {
	t.Parallel()
	m := loaded(t, &fakeDetails{})
	m, _ = m.Update(key(" "))
	if !m.Pathway().Steps[0].Completed {
		t.Fatalf("space must mark the selected step complete")
	}
}

func TestRetryRefetchesSameProgram(t *testing.T) {
	t.Parallel()
	details := &fakeDetails{}
	m := loaded(t, details)
	m, _ = m.Update(key("enter"))

	m, _ = m.Update(DetailsResultMsg{Result: careerdetaildto.Result{Generation: details.gen, Err: errors.New("quota exceeded")}})
	if !m.Fetch().Failed() {
		t.Fatalf("expected error state, got %q", m.Fetch().Status)
	}
	if !strings.Contains(m.View(), "r: retry") {
		t.Fatalf("error modal must offer retry:\n%s", m.View())
	}

	m, cmd := m.Update(key("r"))
	if cmd == nil {
		t.Fatalf("retry must start a new fetch")
	}
	if len(details.opened) != 2 || details.opened[1] != "Certified Python Programmer" {
		t.Fatalf("retry must reopen the same program: %v", details.opened)
	}
	if !m.Fetch().Loading() {
		t.Fatalf("retry must return to loading, got %q", m.Fetch().Status)
	}
}

func TestEscClosesModalAndCancelsFetch(t *testing.T) {
	t.Parallel()
	details := &fakeDetails{}
	m := loaded(t, details)
	m, _ = m.Update(key("enter"))
	staleGen := details.gen

	m, _ = m.Update(key("esc"))
	if m.ModalOpen() {
		t.Fatalf("esc must close the modal")
	}
	if details.closes != 1 {
		t.Fatalf("esc must close the fetch, closes=%d", details.closes)
	}

	m, _ = m.Update(DetailsResultMsg{Result: careerdetaildto.Result{Generation: staleGen, Text: "late"}})
	if m.ModalOpen() || m.Fetch().Text == "late" {
		t.Fatalf("a result after close must be dropped")
	}
}

func TestSpinnerTicksOnlyWhileFetching(t *testing.T) {
	t.Parallel()
	details := &fakeDetails{}
	m := loaded(t, details)

	if _, cmd := m.Update(m.spinner.Tick()); cmd != nil {
		t.Fatalf("idle dashboard must not keep ticking")
	}

	m, _ = m.Update(key("enter"))
	if _, cmd := m.Update(m.spinner.Tick()); cmd == nil {
		t.Fatalf("spinner must tick while details are loading")
	}

	m, _ = m.Update(DetailsResultMsg{Result: careerdetaildto.Result{Generation: details.gen, Text: "**Overview**"}})
	if m.Fetch().Loading() {
		t.Fatalf("expected success state")
	}
	if _, cmd := m.Update(m.spinner.Tick()); cmd != nil {
		t.Fatalf("spinner must stop once the fetch settles")
	}
}
