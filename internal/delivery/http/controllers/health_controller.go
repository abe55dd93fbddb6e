package controllers

import (
	"database/sql"
	"net/http"

	"eventboard/internal/delivery/http/helpers"
)

type HealthController struct {
	DB *sql.DB
}

func NewHealthController(db *sql.DB) *HealthController {
	return &HealthController{DB: db}
}

// HealthReport is the data payload of GET /health.
type HealthReport struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// Health godoc
// @Summary Service health
// @Description Reports service liveness and database connectivity.
// @Tags health
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the health report"
// @Failure 503 {object} helpers.APIResponse
// @Router /health [get]
func (c *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	if err := c.DB.PingContext(r.Context()); err != nil {
		helpers.WriteJSONError(w, http.StatusServiceUnavailable, "database unreachable")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, HealthReport{Status: "ok", Database: "up"})
}
