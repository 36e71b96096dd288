package out

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"careernav/internal/modules/catalog/domain"
	catalogout "careernav/internal/modules/catalog/port/out"
	apperrors "careernav/internal/platform/errors"
	"careernav/internal/platform/slug"

	_ "modernc.org/sqlite"
)

// SQLiteIndex keeps the mock dataset in an in-memory SQLite database. Nothing
// is written to disk; the index lives as long as the process.
type SQLiteIndex struct {
	db *sql.DB
}

func NewSQLiteIndex(ctx context.Context, dataset domain.Dataset) (*SQLiteIndex, error) {
	db, err := sql.Open("sqlite", "file::memory:")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// Every pooled connection would otherwise see its own empty database.
	db.SetMaxOpenConns(1)

	idx := &SQLiteIndex{db: db}
	if err := idx.ensureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := idx.load(ctx, dataset); err != nil {
		_ = db.Close()
		return nil, err
	}
	return idx, nil
}

var _ catalogout.CatalogStore = (*SQLiteIndex)(nil)

func (s *SQLiteIndex) Close() error {
	return s.db.Close()
}

func (s *SQLiteIndex) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS learners (
  id INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  education TEXT NOT NULL,
  skills TEXT NOT NULL,
  progress TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS programs (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  slug TEXT NOT NULL,
  nsqf INTEGER NOT NULL,
  provider TEXT NOT NULL,
  duration TEXT NOT NULL,
  description TEXT NOT NULL,
  outcomes TEXT NOT NULL,
  jobs TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS programs_slug ON programs(slug);
CREATE TABLE IF NOT EXISTS pathway (
  step INTEGER PRIMARY KEY,
  program_name TEXT NOT NULL,
  nsqf_level INTEGER NOT NULL,
  duration TEXT NOT NULL,
  mode TEXT NOT NULL,
  completed INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS posts (
  seq INTEGER PRIMARY KEY,
  title TEXT NOT NULL,
  category TEXT NOT NULL,
  excerpt TEXT NOT NULL
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create catalog tables: %w", err)
	}
	return nil
}

func (s *SQLiteIndex) load(ctx context.Context, ds domain.Dataset) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin catalog load: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, l := range ds.Learners {
		skills, err := encodeList(l.Skills)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO learners (id, name, education, skills, progress) VALUES (?, ?, ?, ?, ?)`,
			l.ID, l.Name, l.Education, skills, l.Progress,
		); err != nil {
			return fmt.Errorf("insert learner %d: %w", l.ID, err)
		}
	}
	for _, p := range ds.Programs {
		outcomes, err := encodeList(p.LearningOutcomes)
		if err != nil {
			return err
		}
		jobs, err := encodeList(p.PotentialJobs)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO programs (id, name, slug, nsqf, provider, duration, description, outcomes, jobs) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			p.ID, p.Name, slug.Make(p.Name), p.NSQF, p.Provider, p.Duration, p.Description, outcomes, jobs,
		); err != nil {
			return fmt.Errorf("insert program %s: %w", p.ID, err)
		}
	}
	for _, st := range ds.Pathway {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO pathway (step, program_name, nsqf_level, duration, mode, completed) VALUES (?, ?, ?, ?, ?, ?)`,
			st.Step, st.ProgramName, st.NSQFLevel, st.Duration, string(st.Mode), st.Completed,
		); err != nil {
			return fmt.Errorf("insert pathway step %d: %w", st.Step, err)
		}
	}
	for i, p := range ds.Posts {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO posts (seq, title, category, excerpt) VALUES (?, ?, ?, ?)`,
			i, p.Title, p.Category, p.Excerpt,
		); err != nil {
			return fmt.Errorf("insert post %q: %w", p.Title, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit catalog load: %w", err)
	}
	return nil
}

func (s *SQLiteIndex) Learners(ctx context.Context) ([]domain.Learner, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, education, skills, progress FROM learners ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query learners: %w", err)
	}
	defer rows.Close()

	var out []domain.Learner
	for rows.Next() {
		var l domain.Learner
		var skills string
		if err := rows.Scan(&l.ID, &l.Name, &l.Education, &skills, &l.Progress); err != nil {
			return nil, fmt.Errorf("scan learner: %w", err)
		}
		if l.Skills, err = decodeList(skills); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

const programColumns = `id, name, nsqf, provider, duration, description, outcomes, jobs`

func (s *SQLiteIndex) Programs(ctx context.Context) ([]domain.Program, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+programColumns+` FROM programs ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query programs: %w", err)
	}
	defer rows.Close()

	var out []domain.Program
	for rows.Next() {
		p, err := scanProgram(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// FindProgram matches ref against the program id, its exact name or the slug
// of its name.
func (s *SQLiteIndex) FindProgram(ctx context.Context, ref string) (domain.Program, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+programColumns+` FROM programs WHERE id = ? OR name = ? OR slug = ? ORDER BY id LIMIT 1`,
		ref, ref, slug.Make(ref),
	)
	p, err := scanProgram(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Program{}, fmt.Errorf("program %q: %w", ref, apperrors.ErrNotFound)
	}
	return p, err
}

func (s *SQLiteIndex) Pathway(ctx context.Context) ([]domain.PathwayStep, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT step, program_name, nsqf_level, duration, mode, completed FROM pathway ORDER BY step`)
	if err != nil {
		return nil, fmt.Errorf("query pathway: %w", err)
	}
	defer rows.Close()

	var out []domain.PathwayStep
	for rows.Next() {
		var st domain.PathwayStep
		var mode string
		if err := rows.Scan(&st.Step, &st.ProgramName, &st.NSQFLevel, &st.Duration, &mode, &st.Completed); err != nil {
			return nil, fmt.Errorf("scan pathway step: %w", err)
		}
		st.Mode = domain.Mode(mode)
		out = append(out, st)
	}
	return out, rows.Err()
}

func (s *SQLiteIndex) Posts(ctx context.Context) ([]domain.Post, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT title, category, excerpt FROM posts ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("query posts: %w", err)
	}
	defer rows.Close()

	var out []domain.Post
	for rows.Next() {
		var p domain.Post
		if err := rows.Scan(&p.Title, &p.Category, &p.Excerpt); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProgram(row scanner) (domain.Program, error) {
	var p domain.Program
	var outcomes, jobs string
	if err := row.Scan(&p.ID, &p.Name, &p.NSQF, &p.Provider, &p.Duration, &p.Description, &outcomes, &jobs); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Program{}, err
		}
		return domain.Program{}, fmt.Errorf("scan program: %w", err)
	}
	var err error
	if p.LearningOutcomes, err = decodeList(outcomes); err != nil {
		return domain.Program{}, err
	}
	if p.PotentialJobs, err = decodeList(jobs); err != nil {
		return domain.Program{}, err
	}
	return p, nil
}

func encodeList(values []string) (string, error) {
	if values == nil {
		values = []string{}
	}
	b, err := json.Marshal(values)
	if err != nil {
		return "", fmt.Errorf("encode list: %w", err)
	}
	return string(b), nil
}

func decodeList(raw string) ([]string, error) {
	var values []string
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil, fmt.Errorf("decode list: %w", err)
	}
	return values, nil
}
