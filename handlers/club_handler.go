package handlers

import (
	"net/http"

	"github.com/yoapunto/yoapunto-api/services"
)

type ClubHandler struct {
	clubService      services.ClubService
	thumbnailService services.ThumbnailService
}

// NewClubHandler wires club endpoints. thumbnailService may be nil when no
// object storage is configured; the upload endpoint then reports 503.
func NewClubHandler(clubService services.ClubService, thumbnailService services.ThumbnailService) *ClubHandler {
	return &ClubHandler{
		clubService:      clubService,
		thumbnailService: thumbnailService,
	}
}

// CreateClub godoc
// @Summary Create a club
// @Tags clubs
// @Accept json
// @Produce json
// @Param club body services.CreateClubInput true "Club"
// @Success 200 {object} models.Club
// @Failure 422 {object} map[string]interface{}
// @Router /clubs [post]
func (h *ClubHandler) CreateClub(w http.ResponseWriter, r *http.Request) {
	var input services.CreateClubInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	club, err := h.clubService.Create(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, club, nil)
}

// ListClubs godoc
// @Summary List active clubs
// @Tags clubs
// @Produce json
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size" default(100)
// @Success 200 {array} models.Club
// @Router /clubs [get]
func (h *ClubHandler) ListClubs(w http.ResponseWriter, r *http.Request) {
	skip, limit, err := getPagination(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	clubs, err := h.clubService.List(r.Context(), skip, limit)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, clubs, nil)
}

// GetClub godoc
// @Summary Get a club by id
// @Tags clubs
// @Produce json
// @Param club_id path int true "Club ID"
// @Success 200 {object} models.Club
// @Failure 404 {object} map[string]interface{}
// @Router /clubs/{club_id} [get]
func (h *ClubHandler) GetClub(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "club_id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	club, err := h.clubService.GetByID(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, club, nil)
}

// UpdateClub godoc
// @Summary Partially update a club
// @Tags clubs
// @Accept json
// @Produce json
// @Param club_id path int true "Club ID"
// @Param club body services.UpdateClubInput true "Fields to change"
// @Success 200 {object} models.Club
// @Failure 404 {object} map[string]interface{}
// @Router /clubs/{club_id} [put]
func (h *ClubHandler) UpdateClub(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "club_id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.UpdateClubInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	club, err := h.clubService.Update(r.Context(), id, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, club, nil)
}

// DeactivateClub godoc
// @Summary Soft-delete a club
// @Tags clubs
// @Produce json
// @Param club_id path int true "Club ID"
// @Success 200 {object} models.Club
// @Failure 404 {object} map[string]interface{}
// @Router /clubs/{club_id} [delete]
func (h *ClubHandler) DeactivateClub(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "club_id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	club, err := h.clubService.Deactivate(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, club, nil)
}

// UploadThumbnail godoc
// @Summary Upload a club thumbnail
// @Tags clubs
// @Accept multipart/form-data
// @Produce json
// @Param club_id path int true "Club ID"
// @Param thumbnail formData file true "Image file"
// @Success 200 {object} models.Club
// @Security BearerAuth
// @Router /clubs/{club_id}/thumbnail [post]
func (h *ClubHandler) UploadThumbnail(w http.ResponseWriter, r *http.Request) {
	if h.thumbnailService == nil {
		errorResponse(w, r, http.StatusServiceUnavailable, "thumbnail storage is not configured")
		return
	}

	id, err := getIDFromURL(r, "club_id")
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

	club, err := h.thumbnailService.UploadClubThumbnail(r.Context(), id, file, header.Header.Get("Content-Type"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, club, nil)
}
