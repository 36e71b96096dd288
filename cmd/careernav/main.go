package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"careernav/internal/bootstrap"
	careerdetaildto "careernav/internal/modules/careerdetail/dto"
	"careernav/internal/platform/config"
	"careernav/internal/platform/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootOptions struct {
	configPath string
	offline    bool
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "careernav",
		Short:         "AI career navigator for vocational learners",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI(opts)
		},
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default: user config dir)")
	root.PersistentFlags().BoolVar(&opts.offline, "offline", false, "compose career details from the local catalog")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(newTUICmd(opts))
	root.AddCommand(newProgramsCmd(opts))
	root.AddCommand(newLearnersCmd(opts))
	root.AddCommand(newProgramCmd(opts))
	root.AddCommand(newPathwayCmd(opts))
	root.AddCommand(newPostsCmd(opts))
	root.AddCommand(newDetailsCmd(opts))
	return root
}

func loadApp(opts *rootOptions, interactive bool) (*bootstrap.App, error) {
	cfg, err := config.New(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.offline {
		cfg.AI.Offline = true
	}
	logger, err := logging.New(cfg.Log, logging.Options{Verbose: opts.verbose, Interactive: interactive})
	if err != nil {
		return nil, err
	}
	return bootstrap.New(context.Background(), cfg, logger)
}

func runTUI(opts *rootOptions) error {
	app, err := loadApp(opts, true)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()
	return bootstrap.RunTUI(app)
}

func newTUICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the career navigator terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI(opts)
		},
	}
}

func newProgramsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "programs",
		Short: "List training programs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(opts, false)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			programs, err := app.CatalogCLI.ListPrograms(cmd.Context())
			if err != nil {
				return err
			}
			for _, p := range programs {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\tNSQF %d\t%s\t%s\n", p.ID, p.Name, p.NSQF, p.Provider, p.Duration)
			}
			return nil
		},
	}
}

func newProgramCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "program <id|name>",
		Short: "Show one training program",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(opts, false)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			p, err := app.CatalogCLI.GetProgram(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "%s (%s)\nProvider: %s\nNSQF Level: %d\nDuration: %s\n\n%s\n", p.Name, p.ID, p.Provider, p.NSQF, p.Duration, p.Description)
			_, _ = fmt.Fprintln(w, "\nLearning outcomes:")
			for _, o := range p.LearningOutcomes {
				_, _ = fmt.Fprintf(w, "  • %s\n", o)
			}
			_, _ = fmt.Fprintln(w, "\nPotential job roles:")
			for _, j := range p.PotentialJobs {
				_, _ = fmt.Fprintf(w, "  • %s\n", j)
			}
			return nil
		},
	}
}

func newLearnersCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "learners",
		Short: "List registered learners",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(opts, false)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			learners, err := app.CatalogCLI.ListLearners(cmd.Context())
			if err != nil {
				return err
			}
			for _, l := range learners {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%s\t%s\n", l.ID, l.Name, l.Education, strings.Join(l.Skills, ", "), l.Progress)
			}
			return nil
		},
	}
}

func newPathwayCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "pathway",
		Short: "Show the recommended learning pathway",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(opts, false)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			pathway, err := app.CatalogCLI.RecommendedPathway(cmd.Context())
			if err != nil {
				return err
			}
			for _, s := range pathway.Steps {
				mark := " "
				if s.Completed {
					mark = "x"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "[%s] %d. %s (NSQF %d, %s, %s)\n", mark, s.Step, s.ProgramName, s.NSQFLevel, s.Duration, s.Mode)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "progress: %d/%d (%.0f%%)\n", pathway.Completed, len(pathway.Steps), pathway.Progress)
			return nil
		},
	}
}

func newPostsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "posts",
		Short: "List career blog posts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(opts, false)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			posts, err := app.CatalogCLI.ListPosts(cmd.Context())
			if err != nil {
				return err
			}
			for _, p := range posts {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s\n", p.Category, p.Title)
			}
			return nil
		},
	}
}

func newDetailsCmd(opts *rootOptions) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "details <program>",
		Short: "Generate a career overview for a program",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(opts, false)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.DetailsCLI.Describe(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "Career Details: %s\n\n", out.State.ProgramName)
			if raw {
				_, _ = fmt.Fprintln(w, out.Rendered.Markdown)
			} else {
				printBlocks(w, out.Rendered.Blocks)
			}
			if out.State.Failed() {
				return fmt.Errorf("career details unavailable: %s", out.State.Cause)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&raw, "markdown", false, "print the overview as markdown")
	return cmd
}

func printBlocks(w io.Writer, blocks []careerdetaildto.Block) {
	for _, b := range blocks {
		switch b.Kind {
		case "heading":
			_, _ = fmt.Fprintf(w, "\n%s\n%s\n", b.Text, strings.Repeat("-", len(b.Text)))
		case "list-item":
			_, _ = fmt.Fprintf(w, "  • %s\n", b.Text)
		default:
			_, _ = fmt.Fprintln(w, b.Text)
		}
	}
}
