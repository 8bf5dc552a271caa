package handler

import (
	"context"
	"errors"
	"math"
	"net/http"
	"strings"

	"gamesync/backend/internal/models"
	"gamesync/backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// region --- DTOs ---

const (
	TypeSteam = "steam"
	TypeHLTB  = "hltb"
)

// EnrichInput is the enrich request body. Fields are untyped so that a
// wrongly typed field is reported as invalid rather than as bad JSON.
type EnrichInput struct {
	Type  any `json:"type" swaggertype:"string" enums:"steam,hltb" example:"steam"`
	AppID any `json:"appid" swaggertype:"integer" example:"1145360"`
	Name  any `json:"name" swaggertype:"string" example:"Hades"`
}

// PaginatedGameResponse defines the structure for a paginated list of games.
type PaginatedGameResponse struct {
	Data []models.Game `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

// endregion

// Enricher runs the enrichment flows.
type Enricher interface {
	EnrichByAppID(ctx context.Context, appID int64) (*models.Game, error)
	EnrichByName(ctx context.Context, name string) (*models.Game, error)
}

// GameHandler serves the game endpoints.
type GameHandler struct {
	enricher Enricher
	db       *gorm.DB
}

// NewGameHandler creates a GameHandler. db backs the read-only listing.
func NewGameHandler(enricher Enricher, db *gorm.DB) *GameHandler {
	return &GameHandler{enricher: enricher, db: db}
}

// EnrichGame godoc
// @Summary      Enrich a game record
// @Description  Fetches Steam metadata, the cover image and HowLongToBeat times for a Steam app id
// @Description  (`{"appid": 123}`), or HowLongToBeat times for a title (`{"type": "hltb", "name": "..."}`),
// @Description  and merges them into the stored row. Unknown upstream values never overwrite stored ones.
// @Tags         games
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        input body EnrichInput true "Game key"
// @Success      200  {object}  models.Game
// @Failure      400  {string}  string "Invalid JSON, missing field or HLTB not found"
// @Failure      401  {string}  string "Unauthorized"
// @Failure      404  {string}  string "HLTB fetch failed"
// @Failure      405  {string}  string "POST required"
// @Failure      500  {string}  string "Store write failed"
// @Router       /games/enrich [post]
func (h *GameHandler) EnrichGame(c *gin.Context) {
	var input EnrichInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.String(http.StatusBadRequest, "Invalid JSON")
		return
	}

	kind, ok := requestType(input.Type)
	if !ok {
		c.String(http.StatusBadRequest, "Missing or invalid type")
		return
	}

	var (
		game *models.Game
		err  error
	)
	switch kind {
	case TypeHLTB:
		name, ok := nameValue(input.Name)
		if !ok {
			c.String(http.StatusBadRequest, "Missing or invalid name")
			return
		}
		game, err = h.enricher.EnrichByName(c.Request.Context(), name)
	default:
		appID, ok := appIDValue(input.AppID)
		if !ok {
			c.String(http.StatusBadRequest, "Missing or invalid appid")
			return
		}
		game, err = h.enricher.EnrichByAppID(c.Request.Context(), appID)
	}
	if err != nil {
		status, msg := errorStatus(err)
		log.Ctx(c.Request.Context()).Warn().Err(err).Int("status", status).Msg("enrich failed")
		c.String(status, msg)
		return
	}

	c.JSON(http.StatusOK, game)
}

// GetGames godoc
// @Summary      List stored games
// @Description  Retrieves a paginated list of enriched games, optionally filtered by name.
// @Tags         games
// @Produce      json
// @Security     ApiKeyAuth
// @Param        q     query  string  false  "Search query for game name"
// @Param        page  query  int     false  "Page number" default(1)
// @Param        limit query  int     false  "Items per page" default(10)
// @Success      200 {object} PaginatedGameResponse
// @Failure      401 {string} string "Unauthorized"
// @Failure      500 {object} ErrorResponse
// @Router       /games [get]
func (h *GameHandler) GetGames(c *gin.Context) {
	query := h.db.WithContext(c.Request.Context()).Order("id")
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(q)+"%")
	}

	result, err := Paginate[models.Game](query, PageFromQuery(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve games"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// requestType defaults a missing type to steam.
func requestType(v any) (string, bool) {
	if v == nil {
		return TypeSteam, true
	}
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	switch s {
	case TypeSteam, TypeHLTB:
		return s, true
	}
	return "", false
}

// appIDValue accepts positive integral JSON numbers only.
func appIDValue(v any) (int64, bool) {
	f, ok := v.(float64)
	if !ok || f < 1 || f != math.Trunc(f) || f > 1<<53 {
		return 0, false
	}
	return int64(f), true
}

func nameValue(v any) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}

func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrHLTBNotFound):
		return http.StatusBadRequest, "HLTB not found"
	case errors.Is(err, service.ErrHLTBUnavailable):
		return http.StatusNotFound, "HLTB fetch failed"
	case errors.Is(err, service.ErrHLTBFailed):
		return http.StatusInternalServerError, "HLTB request failed"
	default:
		return http.StatusInternalServerError, "Store write failed"
	}
}
