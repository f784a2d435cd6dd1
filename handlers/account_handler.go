package handlers

import (
	"net/http"

	"github.com/yoapunto/yoapunto-api/services"
)

type AccountHandler struct {
	accountService services.AccountService
}

func NewAccountHandler(accountService services.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// CreateAccount godoc
// @Summary Create an account
// @Tags accounts
// @Accept json
// @Produce json
// @Param account body services.CreateAccountInput true "Account"
// @Success 200 {object} models.Account
// @Failure 400 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Router /accounts [post]
func (h *AccountHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var input services.CreateAccountInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	account, err := h.accountService.Create(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, account, nil)
}

// ListAccounts godoc
// @Summary List active accounts
// @Tags accounts
// @Produce json
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size" default(100)
// @Success 200 {array} models.Account
// @Router /accounts [get]
func (h *AccountHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	skip, limit, err := getPagination(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	accounts, err := h.accountService.List(r.Context(), skip, limit)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, accounts, nil)
}

// GetAccount godoc
// @Summary Get an account by id, with its club
// @Tags accounts
// @Produce json
// @Param id path int true "Account ID"
// @Success 200 {object} models.Account
// @Failure 404 {object} map[string]interface{}
// @Router /accounts/{id} [get]
func (h *AccountHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	account, err := h.accountService.GetByID(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, account, nil)
}

// ListAccountsByClub godoc
// @Summary List active accounts belonging to a club
// @Tags accounts
// @Produce json
// @Param club_id path int true "Club ID"
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size" default(100)
// @Success 200 {array} models.Account
// @Failure 404 {object} map[string]interface{}
// @Router /accounts/club/{club_id} [get]
func (h *AccountHandler) ListAccountsByClub(w http.ResponseWriter, r *http.Request) {
	clubID, err := getIDFromURL(r, "club_id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	skip, limit, err := getPagination(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	accounts, err := h.accountService.ListByClub(r.Context(), clubID, skip, limit)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, accounts, nil)
}

// UpdateAccount godoc
// @Summary Partially update an account
// @Tags accounts
// @Accept json
// @Produce json
// @Param id path int true "Account ID"
// @Param account body services.UpdateAccountInput true "Fields to change"
// @Success 200 {object} models.Account
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /accounts/{id} [put]
func (h *AccountHandler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.UpdateAccountInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	account, err := h.accountService.Update(r.Context(), id, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, account, nil)
}

// UpdatePassword godoc
// @Summary Change an account's password
// @Tags accounts
// @Accept json
// @Produce json
// @Param id path int true "Account ID"
// @Param passwords body services.UpdatePasswordInput true "Current and new password"
// @Success 200 {object} models.Account
// @Failure 404 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Router /accounts/{id}/password [put]
func (h *AccountHandler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.UpdatePasswordInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	account, err := h.accountService.UpdatePassword(r.Context(), id, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, account, nil)
}

// DeactivateAccount godoc
// @Summary Soft-delete an account
// @Tags accounts
// @Produce json
// @Param id path int true "Account ID"
// @Success 200 {object} models.Account
// @Failure 404 {object} map[string]interface{}
// @Router /accounts/{id} [delete]
func (h *AccountHandler) DeactivateAccount(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	account, err := h.accountService.Deactivate(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, account, nil)
}
