package handlers

import (
	"net/http"

	"github.com/yoapunto/yoapunto-api/services"
)

type ClubGameHandler struct {
	clubGameService services.ClubGameService
}

func NewClubGameHandler(clubGameService services.ClubGameService) *ClubGameHandler {
	return &ClubGameHandler{clubGameService: clubGameService}
}

// AddGameToClub godoc
// @Summary Associate a game with a club
// @Tags club-games
// @Produce json
// @Param club_id path int true "Club ID"
// @Param game_id path int true "Game ID"
// @Success 200 {object} models.ClubGame
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /clubs/{club_id}/games/{game_id} [post]
func (h *ClubGameHandler) AddGameToClub(w http.ResponseWriter, r *http.Request) {
	clubID, gameID, err := pairFromURL(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	link, err := h.clubGameService.Add(r.Context(), clubID, gameID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, link, nil)
}

// RemoveGameFromClub godoc
// @Summary Disassociate a game from a club
// @Tags club-games
// @Produce json
// @Param club_id path int true "Club ID"
// @Param game_id path int true "Game ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /clubs/{club_id}/games/{game_id} [delete]
func (h *ClubGameHandler) RemoveGameFromClub(w http.ResponseWriter, r *http.Request) {
	clubID, gameID, err := pairFromURL(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.clubGameService.Remove(r.Context(), clubID, gameID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, jsonResponse{"message": "game removed from club"}, nil)
}

// ListClubGames godoc
// @Summary List the active games associated with a club
// @Tags club-games
// @Produce json
// @Param club_id path int true "Club ID"
// @Success 200 {array} models.Game
// @Failure 404 {object} map[string]interface{}
// @Router /clubs/{club_id}/games [get]
func (h *ClubGameHandler) ListClubGames(w http.ResponseWriter, r *http.Request) {
	clubID, err := getIDFromURL(r, "club_id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	games, err := h.clubGameService.ListForClub(r.Context(), clubID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, games, nil)
}

// GetClubGame godoc
// @Summary Get one game associated with a club
// @Tags club-games
// @Produce json
// @Param club_id path int true "Club ID"
// @Param game_id path int true "Game ID"
// @Success 200 {object} models.Game
// @Failure 404 {object} map[string]interface{}
// @Router /clubs/{club_id}/games/{game_id} [get]
func (h *ClubGameHandler) GetClubGame(w http.ResponseWriter, r *http.Request) {
	clubID, gameID, err := pairFromURL(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	game, err := h.clubGameService.GetForClub(r.Context(), clubID, gameID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, game, nil)
}

func pairFromURL(r *http.Request) (clubID, gameID int, err error) {
	clubID, err = getIDFromURL(r, "club_id")
	if err != nil {
		return 0, 0, err
	}
	gameID, err = getIDFromURL(r, "game_id")
	if err != nil {
		return 0, 0, err
	}
	return clubID, gameID, nil
}
