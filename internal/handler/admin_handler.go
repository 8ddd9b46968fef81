package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/amalanberkah/internal/service"
	"github.com/gin-gonic/gin"
)

// AdminStats returns the dashboard headline aggregates.
func (a *API) AdminStats(c *gin.Context) {
	stats, err := a.analytics.Stats()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal memuat statistik")
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

// AdminUsers returns the per-user stats table.
func (a *API) AdminUsers(c *gin.Context) {
	users, err := a.analytics.Users()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal memuat pengguna")
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// AdminExportUsers streams the user table as an xlsx download.
func (a *API) AdminExportUsers(c *gin.Context) {
	data, err := a.analytics.ExportUsersXLSX()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal membuat ekspor")
		return
	}

	filename := fmt.Sprintf("pengguna-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

type updateSettingsRequest struct {
	AppName    *string `json:"appName"`
	AppLogo    *string `json:"appLogo"`
	AppFavicon *string `json:"appFavicon"`
}

// AdminUpdateSettings persists branding changes. Omitted fields are left
// untouched.
func (a *API) AdminUpdateSettings(c *gin.Context) {
	var payload updateSettingsRequest
	if !bindJSON(c, &payload, "Pengaturan tidak valid") {
		return
	}

	settings, err := a.settings.Update(service.AppSettingsInput{
		AppName:    payload.AppName,
		AppLogo:    payload.AppLogo,
		AppFavicon: payload.AppFavicon,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidImage) {
			respondError(c, http.StatusBadRequest, "Gambar tidak valid")
			return
		}
		respondError(c, http.StatusInternalServerError, "Gagal menyimpan pengaturan")
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}
