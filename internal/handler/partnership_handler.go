package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/amalanberkah/internal/db"
	"github.com/amalanberkah/internal/service"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type inviteRequest struct {
	PartnerID string `json:"partnerId"`
	Email     string `json:"email"`
}

// InvitePartner creates a pending partnership. The partner may be
// addressed by id or by email.
func (a *API) InvitePartner(c *gin.Context) {
	userID := currentUserID(c)

	var payload inviteRequest
	if !bindJSON(c, &payload, "Partner wajib diisi") {
		return
	}

	partnerID := strings.TrimSpace(payload.PartnerID)
	if partnerID == "" && payload.Email != "" {
		var partner db.User
		email := strings.ToLower(strings.TrimSpace(payload.Email))
		if err := a.db.Where("email = ?", email).First(&partner).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				respondError(c, http.StatusNotFound, "Partner tidak ditemukan")
				return
			}
			respondError(c, http.StatusInternalServerError, "Gagal mengirim undangan")
			return
		}
		partnerID = partner.ID
	}
	if partnerID == "" {
		respondError(c, http.StatusBadRequest, "Partner wajib diisi")
		return
	}

	row, err := a.partnerships.Invite(userID, partnerID)
	switch {
	case errors.Is(err, service.ErrSelfInvite):
		respondError(c, http.StatusBadRequest, "Tidak bisa mengundang diri sendiri")
	case errors.Is(err, service.ErrPartnerNotFound):
		respondError(c, http.StatusNotFound, "Partner tidak ditemukan")
	case errors.Is(err, service.ErrPartnershipExists):
		respondError(c, http.StatusConflict, "Sudah ada kemitraan aktif atau undangan tertunda")
	case err != nil:
		respondError(c, http.StatusInternalServerError, "Gagal mengirim undangan")
	default:
		c.JSON(http.StatusCreated, gin.H{"partnership": row})
	}
}

// PendingInvitations lists the caller's pending rows split by direction.
func (a *API) PendingInvitations(c *gin.Context) {
	inv, err := a.partnerships.Pending(currentUserID(c))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal memuat undangan")
		return
	}
	c.JSON(http.StatusOK, gin.H{"sent": inv.Sent, "received": inv.Received})
}

// AcceptInvitation transitions a pending invitation to accepted. An
// already-handled invitation is reported as applied=false, not an error.
func (a *API) AcceptInvitation(c *gin.Context) {
	a.resolveInvitation(c, a.partnerships.Accept)
}

// RejectInvitation transitions a pending invitation to rejected.
func (a *API) RejectInvitation(c *gin.Context) {
	a.resolveInvitation(c, a.partnerships.Reject)
}

func (a *API) resolveInvitation(c *gin.Context, resolve func(string, uint) (service.MutationResult, error)) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Undangan tidak valid")
		return
	}

	result, err := resolve(currentUserID(c), id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal memproses undangan")
		return
	}
	c.JSON(http.StatusOK, gin.H{"applied": result == service.MutationApplied})
}

// CurrentPartnership returns the caller's accepted partnership plus the
// partner's account summary, or nulls when unpaired.
func (a *API) CurrentPartnership(c *gin.Context) {
	userID := currentUserID(c)

	row, err := a.partnerships.Current(userID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal memuat kemitraan")
		return
	}
	if row == nil {
		c.JSON(http.StatusOK, gin.H{"partnership": nil, "partner": nil})
		return
	}

	var partner db.User
	payload := gin.H{"partnership": row, "partner": nil}
	if err := a.db.Where("id = ?", row.PartnerOf(userID)).First(&partner).Error; err == nil {
		payload["partner"] = userPayload(partner)
	}
	c.JSON(http.StatusOK, payload)
}

// PartnerProgress returns the accepted partner's document read-only.
func (a *API) PartnerProgress(c *gin.Context) {
	userID := currentUserID(c)
	partnerID := c.Param("id")

	st, err := a.partnerships.PartnerProgress(userID, partnerID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal memuat data partner")
		return
	}
	if st == nil {
		ok, err := a.partnerships.Accepted(userID, partnerID)
		if err != nil || !ok {
			respondError(c, http.StatusForbidden, "Tidak ada kemitraan aktif dengan pengguna ini")
			return
		}
		// Accepted partner without a document yet.
		c.JSON(http.StatusOK, gin.H{"state": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": st})
}
