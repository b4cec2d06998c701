package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/skopia/astrodaily/internal/config"
	"github.com/skopia/astrodaily/internal/database"
	"github.com/skopia/astrodaily/internal/domain"
	"github.com/skopia/astrodaily/internal/favorites"
	"github.com/skopia/astrodaily/internal/logger"
	"github.com/skopia/astrodaily/internal/nasa"
	"github.com/skopia/astrodaily/internal/notification"
	"github.com/skopia/astrodaily/internal/repository"
)

// App holds the wired-up application: one repository instance owning the
// entry cache, the favorites service over SQLite, and the optional webhook
// notifier.
type App struct {
	log          zerolog.Logger
	config       *domain.Config
	db           *database.DB
	repo         *repository.Repository
	favorites    favorites.Service
	notification domain.NotificationService
}

// NewApp initializes all dependencies. The returned App must be closed.
func NewApp(logLevel string) (*App, error) {
	log := logger.NewWithLevel(logLevel)

	cfg, err := config.Load(log)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.NewDB(cfg.DataDir, log)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	apodService := nasa.NewService(log, cfg)
	repo := repository.NewRepository(log, apodService)

	favoriteRepo := database.NewFavoriteRepo(log, db, cfg.MaxFavorites)
	exportRepo := repository.NewFileRepository(log)
	favoritesService := favorites.NewService(log, favoriteRepo, exportRepo)

	notificationService := notification.NewService(log, cfg.DiscordWebhookURL)

	return &App{
		log:          log,
		config:       cfg,
		db:           db,
		repo:         repo,
		favorites:    favoritesService,
		notification: notificationService,
	}, nil
}

// Close releases the database handle.
func (a *App) Close() error {
	return a.db.Close()
}

// Today finds the most recent published entry via the backward scan and, when
// notify is set, announces it (or the failure) on the configured webhook.
func (a *App) Today(ctx context.Context, notify bool) (entry domain.Entry, actualDate domain.Date, err error) {
	defer func() {
		if err != nil && notify {
			if notifyErr := a.notification.SendError(ctx, err); notifyErr != nil {
				a.log.Warn().Err(notifyErr).Msg("Failed to send error notification")
			}
		}
	}()

	entry, actualDate, err = a.repo.GetCurrentEntry(ctx)
	if err != nil {
		return domain.Entry{}, domain.Date{}, err
	}

	if notify {
		if notifyErr := a.notification.SendNewEntry(ctx, entry, actualDate); notifyErr != nil {
			a.log.Warn().Err(notifyErr).Msg("Failed to send notification")
		}
	}

	return entry, actualDate, nil
}

// Fetch returns the entry for one date, served from cache when possible.
func (a *App) Fetch(ctx context.Context, date domain.Date) (domain.Entry, error) {
	return a.repo.GetEntry(ctx, date)
}

// Range returns the published entries in [start, end].
func (a *App) Range(ctx context.Context, start, end domain.Date) ([]domain.Entry, error) {
	return a.repo.GetRange(ctx, start, end)
}

// Favorites exposes the favorites service to the CLI layer.
func (a *App) Favorites() favorites.Service {
	return a.favorites
}

// ToggleFavoriteByDate fetches the entry for date (cache first) and toggles
// its favorite state.
func (a *App) ToggleFavoriteByDate(ctx context.Context, date domain.Date) (domain.Entry, bool, error) {
	entry, err := a.repo.GetEntry(ctx, date)
	if err != nil {
		return domain.Entry{}, false, err
	}

	favorited, err := a.favorites.Toggle(ctx, entry)
	if err != nil {
		return domain.Entry{}, false, err
	}

	return entry, favorited, nil
}

// AddFavoriteByDate fetches the entry for date and favorites it.
func (a *App) AddFavoriteByDate(ctx context.Context, date domain.Date) (domain.Entry, error) {
	entry, err := a.repo.GetEntry(ctx, date)
	if err != nil {
		return domain.Entry{}, err
	}

	if err := a.favorites.Add(ctx, entry); err != nil {
		return domain.Entry{}, err
	}

	return entry, nil
}
