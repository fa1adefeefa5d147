package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"multi-tenant-bot-relay/internal/bot"
	"multi-tenant-bot-relay/internal/model"
)

// processTimeout bounds the background processing of one delivery.
const processTimeout = 2 * time.Minute

// HandleWebhook processes POST /webhook/:tenantID.
//
// The platform expects a fast 200, so the delivery is acknowledged
// immediately after authentication and the events run in a background
// goroutine. Per-event failures never change the response: a non-2xx would
// make the platform redeliver the whole batch.
func (h *Handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()
	tenantID := c.Param("tenantID")

	cfg, err := h.botUC.Get(ctx, tenantID)
	if err != nil {
		if errors.Is(err, bot.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown tenant"})
			return
		}
		h.l.Errorf(ctx, "webhook: tenant lookup %s: %v", tenantID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	// The exact raw bytes, before any parsing touches them.
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.l.Errorf(ctx, "webhook: read body for %s: %v", tenantID, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable body"})
		return
	}

	signature := c.GetHeader("X-Signature")
	if !VerifySignature(body, signature, cfg.ChannelSecret) {
		h.l.Warnf(ctx, "webhook: signature verification failed for %s", tenantID)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
		return
	}

	if h.limiter != nil {
		if err := h.limiter.Allow(tenantID); err != nil {
			h.l.Warnf(ctx, "webhook: %v", err)
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
	}

	var payload model.WebhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		h.l.Errorf(ctx, "webhook: parse body for %s: %v", tenantID, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	go h.processEvents(cfg, payload.Events)

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// HandleProbe processes GET /webhook/:tenantID, a liveness/identity check.
func (h *Handler) HandleProbe(c *gin.Context) {
	ctx := c.Request.Context()
	tenantID := c.Param("tenantID")

	cfg, err := h.botUC.Get(ctx, tenantID)
	if err != nil {
		if errors.Is(err, bot.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown tenant"})
			return
		}
		h.l.Errorf(ctx, "webhook: tenant lookup %s: %v", tenantID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":         cfg.ID,
		"name":       cfg.Name,
		"skill_type": cfg.SkillType,
		"status":     "active",
	})
}

// processEvents runs a delivery's events with per-event isolation: one
// failing event is logged and never aborts its siblings.
func (h *Handler) processEvents(cfg model.BotConfig, events []model.Event) {
	ctx, cancel := context.WithTimeout(context.Background(), processTimeout)
	defer cancel()

	for _, ev := range events {
		if err := h.processEvent(ctx, cfg, ev); err != nil {
			h.l.Errorf(ctx, "webhook: event %s for tenant %s: %v", ev.Kind(), cfg.ID, err)
		}
	}
}

func (h *Handler) processEvent(ctx context.Context, cfg model.BotConfig, ev model.Event) error {
	userID := ev.Source.UserID

	switch ev.Kind() {
	case model.KindTextMessage:
		return h.chatUC.HandleTextMessage(ctx, cfg, userID, ev.ReplyToken, ev.Message.Text)
	case model.KindAudioMessage:
		return h.chatUC.HandleAudioMessage(ctx, cfg, userID, ev.ReplyToken, ev.Message.ID)
	case model.KindFollow:
		return h.chatUC.HandleFollow(ctx, cfg, userID, ev.ReplyToken)
	case model.KindOther:
		h.l.Debugf(ctx, "webhook: ignoring event type %s for tenant %s", ev.Type, cfg.ID)
		return nil
	default:
		return nil
	}
}
