package handlers

import "net/http"

// HealthCheck godoc
// @Summary Service liveness message
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, jsonResponse{"message": "yoapunto api is running"}, nil)
}
