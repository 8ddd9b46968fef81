package service

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/amalanberkah/internal/db"
	"github.com/amalanberkah/internal/metrics"
	"github.com/amalanberkah/internal/realtime"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
	"gorm.io/gorm"
)

var (
	// ErrNoPartnership is returned when messaging without an accepted
	// partnership with the addressed user.
	ErrNoPartnership = errors.New("partnership not found or not accepted")
	// ErrEmptyMessage is returned when the trimmed body is empty.
	ErrEmptyMessage = errors.New("message is empty")
)

var (
	messageMarkdown = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify),
		goldmark.WithRendererOptions(html.WithHardWraps()),
	)
	messageSanitizer = bluemonday.UGCPolicy()
)

// MessageService is the append-only motivational chat between partners.
type MessageService struct {
	db           *gorm.DB
	partnerships *PartnershipService
	hub          *realtime.Hub
}

// NewMessageService constructs a MessageService.
func NewMessageService(gdb *gorm.DB, partnerships *PartnershipService, hub *realtime.Hub) *MessageService {
	return &MessageService{db: gdb, partnerships: partnerships, hub: hub}
}

// RenderedMessage is a stored message plus its sanitized HTML body.
type RenderedMessage struct {
	db.Message
	HTML string `json:"html"`
}

// Send appends a message to the thread with partnerID. The accepted
// partnership is verified on every send, defending against stale UI state.
func (s *MessageService) Send(userID, partnerID, body string) (*db.Message, error) {
	trimmed := strings.TrimSpace(body)
	if trimmed == "" {
		return nil, ErrEmptyMessage
	}

	ok, err := s.partnerships.Accepted(userID, partnerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNoPartnership
	}

	msg := db.Message{SenderID: userID, ReceiverID: partnerID, Body: trimmed}
	if err := s.db.Create(&msg).Error; err != nil {
		return nil, fmt.Errorf("send message: %w", err)
	}

	metrics.MessagesSent.Inc()
	if s.hub != nil {
		s.hub.Publish(userID, realtime.EventMessages)
		s.hub.Publish(partnerID, realtime.EventMessages)
	}
	return &msg, nil
}

// Thread returns the full two-party conversation ascending by creation
// time, each body rendered to sanitized HTML.
func (s *MessageService) Thread(userID, partnerID string) ([]RenderedMessage, error) {
	var rows []db.Message
	if err := s.db.
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userID, partnerID, partnerID, userID).
		Order("created_at ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load messages: %w", err)
	}

	thread := make([]RenderedMessage, 0, len(rows))
	for _, row := range rows {
		thread = append(thread, RenderedMessage{Message: row, HTML: renderMessageHTML(row.Body)})
	}
	return thread, nil
}

// MarkRead flips one message to read. Only the receiver may flip it, and
// only unread to read; anything else affects zero rows and is reported as
// applied=false rather than an error.
func (s *MessageService) MarkRead(userID string, messageID uint) (bool, error) {
	res := s.db.Model(&db.Message{}).
		Where("id = ?", messageID).
		Where("receiver_id = ?", userID).
		Where("read = ?", false).
		Update("read", true)
	if res.Error != nil {
		return false, fmt.Errorf("mark message read: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// UnreadCount reports how many messages await the user from partnerID.
func (s *MessageService) UnreadCount(userID, partnerID string) (int64, error) {
	var count int64
	if err := s.db.Model(&db.Message{}).
		Where("receiver_id = ? AND sender_id = ? AND read = ?", userID, partnerID, false).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count unread: %w", err)
	}
	return count, nil
}

func renderMessageHTML(body string) string {
	var buf bytes.Buffer
	if err := messageMarkdown.Convert([]byte(body), &buf); err != nil {
		return messageSanitizer.Sanitize(body)
	}
	return strings.TrimSpace(string(messageSanitizer.SanitizeBytes(buf.Bytes())))
}
