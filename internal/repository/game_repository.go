package repository

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"gamesync/backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound is returned when no game matches a lookup.
var ErrNotFound = errors.New("game not found")

// GameRepository persists games through gorm.
type GameRepository struct {
	db *gorm.DB
}

// NewGameRepository creates a GameRepository.
func NewGameRepository(db *gorm.DB) *GameRepository {
	return &GameRepository{db: db}
}

// UpsertByAppID inserts a row for appID or, when one exists, updates only
// the columns set in patch. The stored row is returned.
func (r *GameRepository) UpsertByAppID(ctx context.Context, appID int64, patch models.GamePatch) (*models.Game, error) {
	row := models.Game{AppID: &appID}
	patch.ApplyTo(&row)

	columns := []string{"updated_at"}
	for col := range patch.Columns() {
		columns = append(columns, col)
	}
	slices.Sort(columns)

	var game *models.Game
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "appid"}},
			DoUpdates: clause.AssignmentColumns(columns),
		}).Create(&row).Error
		if err != nil {
			return err
		}
		game, err = NewGameRepository(tx).FindByAppID(ctx, appID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("upsert game %d: %w", appID, err)
	}
	return game, nil
}

// FindByHLTBID returns the first game carrying the given HLTB id.
func (r *GameRepository) FindByHLTBID(ctx context.Context, hltbID int64) (*models.Game, error) {
	return r.first(ctx, "hltb_id = ?", hltbID)
}

// FindByName matches names case-insensitively.
func (r *GameRepository) FindByName(ctx context.Context, name string) (*models.Game, error) {
	return r.first(ctx, "LOWER(name) = LOWER(?)", name)
}

// FindByAppID returns the game for a Steam app id.
func (r *GameRepository) FindByAppID(ctx context.Context, appID int64) (*models.Game, error) {
	return r.first(ctx, "appid = ?", appID)
}

// Create inserts a new game.
func (r *GameRepository) Create(ctx context.Context, game *models.Game) error {
	if err := r.db.WithContext(ctx).Create(game).Error; err != nil {
		return fmt.Errorf("create game %q: %w", game.Name, err)
	}
	return nil
}

// Save writes every column of an existing game.
func (r *GameRepository) Save(ctx context.Context, game *models.Game) error {
	if err := r.db.WithContext(ctx).Save(game).Error; err != nil {
		return fmt.Errorf("save game %d: %w", game.ID, err)
	}
	return nil
}

func (r *GameRepository) first(ctx context.Context, query string, args ...any) (*models.Game, error) {
	var game models.Game
	err := r.db.WithContext(ctx).Where(query, args...).Order("id").First(&game).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find game: %w", err)
	}
	return &game, nil
}
