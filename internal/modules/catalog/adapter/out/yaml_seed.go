package out

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"careernav/internal/modules/catalog/domain"
	catalogout "careernav/internal/modules/catalog/port/out"
)

//go:embed seed.yaml
var embeddedSeed []byte

type seedFile struct {
	Learners []struct {
		ID        int      `yaml:"id"`
		Name      string   `yaml:"name"`
		Education string   `yaml:"education"`
		Skills    []string `yaml:"skills"`
		Progress  string   `yaml:"progress"`
	} `yaml:"learners"`
	Programs []struct {
		ID               string   `yaml:"id"`
		Name             string   `yaml:"name"`
		NSQF             int      `yaml:"nsqf"`
		Provider         string   `yaml:"provider"`
		Duration         string   `yaml:"duration"`
		Description      string   `yaml:"description"`
		LearningOutcomes []string `yaml:"learning_outcomes"`
		PotentialJobs    []string `yaml:"potential_jobs"`
	} `yaml:"programs"`
	Pathway []struct {
		Step        int    `yaml:"step"`
		ProgramName string `yaml:"program_name"`
		NSQFLevel   int    `yaml:"nsqf_level"`
		Duration    string `yaml:"duration"`
		Mode        string `yaml:"mode"`
		Completed   bool   `yaml:"completed"`
	} `yaml:"pathway"`
	Posts []struct {
		Title    string `yaml:"title"`
		Category string `yaml:"category"`
		Excerpt  string `yaml:"excerpt"`
	} `yaml:"posts"`
}

// YAMLSeed decodes the mock dataset from the embedded seed or, when path is
// set, from a file on disk.
type YAMLSeed struct {
	path string
}

func NewYAMLSeed(path string) catalogout.SeedSource {
	return &YAMLSeed{path: path}
}

func (s *YAMLSeed) Load(_ context.Context) (domain.Dataset, error) {
	raw := embeddedSeed
	if s.path != "" {
		b, err := os.ReadFile(s.path)
		if err != nil {
			return domain.Dataset{}, fmt.Errorf("read catalog seed: %w", err)
		}
		raw = b
	}
	return decodeSeed(raw)
}

func decodeSeed(raw []byte) (domain.Dataset, error) {
	var f seedFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return domain.Dataset{}, fmt.Errorf("decode catalog seed: %w", err)
	}

	ds := domain.Dataset{}
	for _, l := range f.Learners {
		ds.Learners = append(ds.Learners, domain.Learner{
			ID:        l.ID,
			Name:      l.Name,
			Education: l.Education,
			Skills:    l.Skills,
			Progress:  l.Progress,
		})
	}
	for _, p := range f.Programs {
		ds.Programs = append(ds.Programs, domain.Program{
			ID:               p.ID,
			Name:             p.Name,
			NSQF:             p.NSQF,
			Provider:         p.Provider,
			Duration:         p.Duration,
			Description:      p.Description,
			LearningOutcomes: p.LearningOutcomes,
			PotentialJobs:    p.PotentialJobs,
		})
	}
	for _, s := range f.Pathway {
		ds.Pathway = append(ds.Pathway, domain.PathwayStep{
			Step:        s.Step,
			ProgramName: s.ProgramName,
			NSQFLevel:   s.NSQFLevel,
			Duration:    s.Duration,
			Mode:        domain.Mode(s.Mode),
			Completed:   s.Completed,
		})
	}
	for _, p := range f.Posts {
		ds.Posts = append(ds.Posts, domain.Post{Title: p.Title, Category: p.Category, Excerpt: p.Excerpt})
	}
	if err := ds.Validate(); err != nil {
		return domain.Dataset{}, fmt.Errorf("invalid catalog seed: %w", err)
	}
	return ds, nil
}
