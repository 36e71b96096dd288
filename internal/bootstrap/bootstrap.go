package bootstrap

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	careerdetailinadapter "careernav/internal/modules/careerdetail/adapter/in"
	careerdetailoutadapter "careernav/internal/modules/careerdetail/adapter/out"
	careerdetailout "careernav/internal/modules/careerdetail/port/out"
	careerdetailservice "careernav/internal/modules/careerdetail/service"
	careerdetailusecase "careernav/internal/modules/careerdetail/usecase"
	cataloginadapter "careernav/internal/modules/catalog/adapter/in"
	catalogoutadapter "careernav/internal/modules/catalog/adapter/out"
	catalogin "careernav/internal/modules/catalog/port/in"
	catalogservice "careernav/internal/modules/catalog/service"
	catalogusecase "careernav/internal/modules/catalog/usecase"
	navigationinadapter "careernav/internal/modules/navigation/adapter/in"
	navigationoutadapter "careernav/internal/modules/navigation/adapter/out"
	navigationdomain "careernav/internal/modules/navigation/domain"
	navigationservice "careernav/internal/modules/navigation/service"
	navigationusecase "careernav/internal/modules/navigation/usecase"
	onboardinginadapter "careernav/internal/modules/onboarding/adapter/in"
	onboardingusecase "careernav/internal/modules/onboarding/usecase"
	"careernav/internal/platform/clock"
	"careernav/internal/platform/config"
	"careernav/internal/platform/id"
	uiapp "careernav/internal/ui/app"
)

type App struct {
	Logger *zap.Logger

	CatalogCLI    cataloginadapter.CLIHandler
	CatalogTUI    cataloginadapter.TUIHandler
	DetailsCLI    careerdetailinadapter.CLIHandler
	DetailsTUI    careerdetailinadapter.TUIHandler
	NavigationTUI navigationinadapter.TUIHandler
	OnboardingTUI onboardinginadapter.TUIHandler

	closers []func() error
}

func New(ctx context.Context, cfg config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	dataset, err := catalogoutadapter.NewYAMLSeed(cfg.Catalog.SeedPath).Load(ctx)
	if err != nil {
		return nil, err
	}
	index, err := catalogoutadapter.NewSQLiteIndex(ctx, dataset)
	if err != nil {
		return nil, fmt.Errorf("new catalog index: %w", err)
	}
	catalogUC := catalogusecase.NewInteractor(catalogservice.NewCatalogService(index))

	generator, err := newGenerator(ctx, cfg, catalogUC, logger)
	if err != nil {
		_ = index.Close()
		return nil, err
	}
	fetchSvc := careerdetailservice.NewFetchService(generator, clock.SystemClock{}, cfg.AI.Timeout, logger)
	detailsUC := careerdetailusecase.NewFlow(fetchSvc, id.UUID{})

	navigationUC := navigationusecase.NewInteractor(navigationservice.NewController(
		navigationdomain.DefaultCredentials,
		navigationoutadapter.NewZapRecorder(logger),
	))
	onboardingUC := onboardingusecase.NewInteractor(logger)

	return &App{
		Logger:        logger,
		CatalogCLI:    cataloginadapter.NewCLIHandler(catalogUC),
		CatalogTUI:    cataloginadapter.NewTUIHandler(catalogUC),
		DetailsCLI:    careerdetailinadapter.NewCLIHandler(detailsUC),
		DetailsTUI:    careerdetailinadapter.NewTUIHandler(detailsUC),
		NavigationTUI: navigationinadapter.NewTUIHandler(navigationUC),
		OnboardingTUI: onboardinginadapter.NewTUIHandler(onboardingUC),
		closers:       []func() error{index.Close},
	}, nil
}

// newGenerator picks Gemini when an API key is configured and offline mode is
// off; otherwise details are composed from the local catalog.
func newGenerator(ctx context.Context, cfg config.Config, catalog catalogin.Usecase, logger *zap.Logger) (careerdetailout.Generator, error) {
	if cfg.UseOffline() {
		logger.Info("using offline career details generator")
		return careerdetailoutadapter.NewOfflineGenerator(catalog), nil
	}
	gen, err := careerdetailoutadapter.NewGeminiGenerator(ctx, cfg.AI.APIKey, cfg.AI.Model)
	if err != nil {
		return nil, fmt.Errorf("new gemini generator: %w", err)
	}
	logger.Info("using gemini career details generator", zap.String("model", cfg.AI.Model))
	return gen, nil
}

func (a *App) Close() error {
	var first error
	for _, c := range a.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	_ = a.Logger.Sync()
	return first
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.NavigationTUI, app.OnboardingTUI, app.CatalogTUI, app.DetailsTUI)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
