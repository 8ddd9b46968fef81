package handler

import (
	"io"

	"github.com/amalanberkah/internal/metrics"
	"github.com/amalanberkah/internal/realtime"
	"github.com/amalanberkah/internal/state"
	"github.com/gin-contrib/sse"
	"github.com/gin-gonic/gin"
)

// Events is the SSE stream pushing change notifications to the signed-in
// user. Each event carries a fresh snapshot of the resource that changed;
// the subscription lives exactly as long as the request.
func (a *API) Events(c *gin.Context) {
	userID := currentUserID(c)

	events, cancel := a.hub.Subscribe(userID)
	defer cancel()

	metrics.EventStreams.Inc()
	defer metrics.EventStreams.Dec()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	// Initial snapshot so a reconnecting client converges without waiting
	// for the next mutation.
	c.Render(-1, sse.Event{Event: realtime.EventProgress, Data: a.eventPayload(userID, realtime.EventProgress)})
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		select {
		case event, ok := <-events:
			if !ok {
				return false
			}
			sse.Encode(w, sse.Event{Event: event.Kind, Data: a.eventPayload(userID, event.Kind)})
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

// eventPayload re-fetches the resource named by kind. Events are
// snapshots, not deltas: the latest fetch always wins on the client.
func (a *API) eventPayload(userID, kind string) gin.H {
	switch kind {
	case realtime.EventProgress:
		st, err := a.currentState(userID)
		if err != nil {
			return gin.H{"kind": kind}
		}
		if st == nil {
			fresh := state.NewAppState(state.Today())
			st = &fresh
		}
		return gin.H{"kind": kind, "state": st}

	case realtime.EventPartnership:
		payload := gin.H{"kind": kind}
		if row, err := a.partnerships.Current(userID); err == nil {
			payload["partnership"] = row
		}
		if inv, err := a.partnerships.Pending(userID); err == nil {
			payload["sent"] = inv.Sent
			payload["received"] = inv.Received
		}
		return payload

	case realtime.EventMessages:
		payload := gin.H{"kind": kind}
		row, err := a.partnerships.Current(userID)
		if err != nil || row == nil {
			return payload
		}
		partnerID := row.PartnerOf(userID)
		if thread, err := a.messages.Thread(userID, partnerID); err == nil {
			payload["messages"] = thread
		}
		if unread, err := a.messages.UnreadCount(userID, partnerID); err == nil {
			payload["unread"] = unread
		}
		return payload
	}

	return gin.H{"kind": kind}
}
