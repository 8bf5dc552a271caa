package service

import (
	"context"
	"errors"
	"fmt"

	"gamesync/backend/internal/hltb"
	"gamesync/backend/internal/models"
	"gamesync/backend/internal/repository"
	"gamesync/backend/internal/steam"
	"gamesync/backend/internal/storage"
	"gamesync/backend/internal/upstream"

	"github.com/rs/zerolog/log"
)

var (
	// ErrHLTBNotFound means the search returned no game.
	ErrHLTBNotFound = errors.New("HLTB not found")
	// ErrHLTBUnavailable means HLTB answered with a non-2xx status.
	ErrHLTBUnavailable = errors.New("HLTB fetch failed")
	// ErrHLTBFailed means the search could not be completed or decoded.
	ErrHLTBFailed = errors.New("HLTB request failed")
	// ErrStore wraps every persistence failure.
	ErrStore = errors.New("store write failed")
)

const coverContentType = "image/jpeg"

// GameStore is the persistence the service needs.
type GameStore interface {
	UpsertByAppID(ctx context.Context, appID int64, patch models.GamePatch) (*models.Game, error)
	FindByHLTBID(ctx context.Context, hltbID int64) (*models.Game, error)
	FindByName(ctx context.Context, name string) (*models.Game, error)
	Create(ctx context.Context, game *models.Game) error
	Save(ctx context.Context, game *models.Game) error
}

// Storefront fetches store metadata and cover art.
type Storefront interface {
	GetAppDetails(ctx context.Context, appID int64) (*steam.AppDetails, error)
	GetCover(ctx context.Context, appID int64) ([]byte, error)
}

// TimeLookup searches completion-time statistics by title.
type TimeLookup interface {
	Search(ctx context.Context, name string) (*hltb.Game, error)
}

// ImageStore persists cover images.
type ImageStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
}

// GameService enriches game rows from the storefront and HLTB.
type GameService struct {
	store  GameStore
	steam  Storefront
	hltb   TimeLookup
	images ImageStore
}

// NewGameService wires a GameService.
func NewGameService(store GameStore, storefront Storefront, times TimeLookup, images ImageStore) *GameService {
	return &GameService{store: store, steam: storefront, hltb: times, images: images}
}

// EnrichByAppID copies the cover, gathers storefront and HLTB data and
// upserts the row keyed by appID. Only the store write can fail the call.
func (s *GameService) EnrichByAppID(ctx context.Context, appID int64) (*models.Game, error) {
	logger := log.Ctx(ctx).With().Int64("appid", appID).Logger()

	if err := s.uploadCover(ctx, appID); err != nil {
		logger.Warn().Err(err).Msg("cover upload skipped")
	}

	var patch models.GamePatch
	details, err := s.steam.GetAppDetails(ctx, appID)
	if err != nil {
		logger.Warn().Err(err).Msg("steam fetch failed")
	} else {
		patch = details.Patch()
	}

	if patch.Name != nil {
		game, err := s.hltb.Search(ctx, *patch.Name)
		switch {
		case errors.Is(err, hltb.ErrNotFound):
			logger.Info().Str("name", *patch.Name).Msg("no hltb match")
		case err != nil:
			logger.Warn().Err(err).Msg("hltb fetch failed")
		default:
			patch = patch.Merge(game.Patch())
		}
	}

	game, err := s.store.UpsertByAppID(ctx, appID, patch)
	if err != nil {
		logger.Error().Err(err).Msg("upsert failed")
		return nil, fmt.Errorf("%w: %w", ErrStore, err)
	}
	return game, nil
}

// EnrichByName looks up name on HLTB and merges the completion times into
// the matching row, resolved by HLTB id first and name second. A new row
// is inserted when nothing matches.
func (s *GameService) EnrichByName(ctx context.Context, name string) (*models.Game, error) {
	logger := log.Ctx(ctx).With().Str("name", name).Logger()

	result, err := s.hltb.Search(ctx, name)
	if err != nil {
		switch {
		case errors.Is(err, hltb.ErrNotFound):
			return nil, ErrHLTBNotFound
		case upstream.IsStatus(err):
			logger.Warn().Err(err).Msg("hltb fetch failed")
			return nil, fmt.Errorf("%w: %w", ErrHLTBUnavailable, err)
		default:
			logger.Error().Err(err).Msg("hltb request failed")
			return nil, fmt.Errorf("%w: %w", ErrHLTBFailed, err)
		}
	}
	times := result.Patch().TimesOnly()

	existing, err := s.resolve(ctx, result, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStore, err)
	}

	if existing == nil {
		game := &models.Game{Name: name}
		times.ApplyTo(game)
		if err := s.store.Create(ctx, game); err != nil {
			logger.Error().Err(err).Msg("insert failed")
			return nil, fmt.Errorf("%w: %w", ErrStore, err)
		}
		return game, nil
	}

	times.ApplyTo(existing)
	if err := s.store.Save(ctx, existing); err != nil {
		logger.Error().Err(err).Uint("id", existing.ID).Msg("update failed")
		return nil, fmt.Errorf("%w: %w", ErrStore, err)
	}
	return existing, nil
}

// resolve finds the row to update, or returns nil when there is none.
func (s *GameService) resolve(ctx context.Context, result *hltb.Game, name string) (*models.Game, error) {
	if result.ID != nil {
		game, err := s.store.FindByHLTBID(ctx, *result.ID)
		if err == nil {
			return game, nil
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
	}

	game, err := s.store.FindByName(ctx, name)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	return game, err
}

func (s *GameService) uploadCover(ctx context.Context, appID int64) error {
	data, err := s.steam.GetCover(ctx, appID)
	if err != nil {
		return err
	}
	return s.images.Put(ctx, storage.CoverKey(appID), data, coverContentType)
}
