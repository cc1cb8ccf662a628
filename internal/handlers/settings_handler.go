package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"inventory-backend/internal/services"
)

type SettingsHandler struct {
	settings *services.SettingsService
	log      logrus.FieldLogger
}

func NewSettingsHandler(settings *services.SettingsService, log logrus.FieldLogger) *SettingsHandler {
	return &SettingsHandler{settings: settings, log: log}
}

type saveSettingsRequest struct {
	Codes map[string]interface{} `json:"codes"`
}

// POST /api/settings
func (h *SettingsHandler) SaveSettings(c *gin.Context) {
	var req saveSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid settings format"})
		return
	}

	if err := h.settings.Save(c.Request.Context(), req.Codes); err != nil {
		respondError(c, h.log, err, "Settings not found", "Failed to save settings")
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Settings saved successfully"})
}

// GET /api/settings
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	codes, err := h.settings.Get(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err, "Settings not found", "Failed to fetch settings")
		return
	}

	c.JSON(http.StatusOK, codes)
}

// DELETE /api/settings/price-codes
func (h *SettingsHandler) DeletePriceCodes(c *gin.Context) {
	if err := h.settings.Delete(c.Request.Context()); err != nil {
		respondError(c, h.log, err, "Settings not found", "Failed to delete price codes")
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "All price codes deleted successfully"})
}
