package handlers

import (
	"net/http"

	"github.com/yoapunto/yoapunto-api/services"
)

type GameHandler struct {
	gameService      services.GameService
	thumbnailService services.ThumbnailService
}

func NewGameHandler(gameService services.GameService, thumbnailService services.ThumbnailService) *GameHandler {
	return &GameHandler{
		gameService:      gameService,
		thumbnailService: thumbnailService,
	}
}

// CreateGame godoc
// @Summary Create a game
// @Tags games
// @Accept json
// @Produce json
// @Param game body services.CreateGameInput true "Game"
// @Success 200 {object} models.Game
// @Failure 422 {object} map[string]interface{}
// @Router /games [post]
func (h *GameHandler) CreateGame(w http.ResponseWriter, r *http.Request) {
	var input services.CreateGameInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	game, err := h.gameService.Create(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, game, nil)
}

// ListGames godoc
// @Summary List active games
// @Tags games
// @Produce json
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size" default(100)
// @Success 200 {array} models.Game
// @Router /games [get]
func (h *GameHandler) ListGames(w http.ResponseWriter, r *http.Request) {
	skip, limit, err := getPagination(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	games, err := h.gameService.List(r.Context(), skip, limit)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, games, nil)
}

// GetGame godoc
// @Summary Get a game by id
// @Tags games
// @Produce json
// @Param game_id path int true "Game ID"
// @Success 200 {object} models.Game
// @Failure 404 {object} map[string]interface{}
// @Router /games/{game_id} [get]
func (h *GameHandler) GetGame(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "game_id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	game, err := h.gameService.GetByID(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, game, nil)
}

// UpdateGame godoc
// @Summary Partially update a game
// @Tags games
// @Accept json
// @Produce json
// @Param game_id path int true "Game ID"
// @Param game body services.UpdateGameInput true "Fields to change"
// @Success 200 {object} models.Game
// @Failure 404 {object} map[string]interface{}
// @Router /games/{game_id} [put]
func (h *GameHandler) UpdateGame(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "game_id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.UpdateGameInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	game, err := h.gameService.Update(r.Context(), id, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, game, nil)
}

// DeactivateGame godoc
// @Summary Soft-delete a game
// @Tags games
// @Produce json
// @Param game_id path int true "Game ID"
// @Success 200 {object} models.Game
// @Failure 404 {object} map[string]interface{}
// @Router /games/{game_id} [delete]
func (h *GameHandler) DeactivateGame(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "game_id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	game, err := h.gameService.Deactivate(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, game, nil)
}

// UploadThumbnail godoc
// @Summary Upload a game thumbnail
// @Tags games
// @Accept multipart/form-data
// @Produce json
// @Param game_id path int true "Game ID"
// @Param thumbnail formData file true "Image file"
// @Success 200 {object} models.Game
// @Security BearerAuth
// @Router /games/{game_id}/thumbnail [post]
func (h *GameHandler) UploadThumbnail(w http.ResponseWriter, r *http.Request) {
	if h.thumbnailService == nil {
		errorResponse(w, r, http.StatusServiceUnavailable, "thumbnail storage is not configured")
		return
	}

	id, err := getIDFromURL(r, "game_id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	file, header, err := formFile(r, "thumbnail")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	defer file.Close()

	game, err := h.thumbnailService.UploadGameThumbnail(r.Context(), id, file, header.Header.Get("Content-Type"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, game, nil)
}
