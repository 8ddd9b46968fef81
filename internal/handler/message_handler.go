package handler

import (
	"errors"
	"net/http"

	"github.com/amalanberkah/internal/service"
	"github.com/gin-gonic/gin"
)

type sendMessageRequest struct {
	PartnerID string `json:"partnerId"`
	Body      string `json:"body"`
}

// SendMessage appends a motivational message to the partner thread.
func (a *API) SendMessage(c *gin.Context) {
	var payload sendMessageRequest
	if !bindJSON(c, &payload, "Pesan tidak valid") {
		return
	}

	msg, err := a.messages.Send(currentUserID(c), payload.PartnerID, payload.Body)
	switch {
	case errors.Is(err, service.ErrEmptyMessage):
		respondError(c, http.StatusBadRequest, "Pesan tidak boleh kosong")
	case errors.Is(err, service.ErrNoPartnership):
		respondError(c, http.StatusForbidden, "Tidak ada kemitraan aktif dengan pengguna ini")
	case err != nil:
		respondError(c, http.StatusInternalServerError, "Gagal mengirim pesan")
	default:
		c.JSON(http.StatusCreated, gin.H{"message": msg})
	}
}

// MessageThread returns the whole conversation with partnerID ascending
// by creation time, plus the caller's unread count.
func (a *API) MessageThread(c *gin.Context) {
	userID := currentUserID(c)
	partnerID := c.Param("id")

	thread, err := a.messages.Thread(userID, partnerID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal memuat pesan")
		return
	}

	unread, err := a.messages.UnreadCount(userID, partnerID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal memuat pesan")
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": thread, "unread": unread})
}

// MarkMessageRead flips one received message to read. A repeat call or a
// message addressed to someone else reports applied=false.
func (a *API) MarkMessageRead(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Pesan tidak valid")
		return
	}

	applied, err := a.messages.MarkRead(currentUserID(c), id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal memperbarui pesan")
		return
	}
	c.JSON(http.StatusOK, gin.H{"applied": applied})
}
