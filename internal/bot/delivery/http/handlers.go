package http

import (
	"crypto/subtle"
	"errors"

	"github.com/gin-gonic/gin"

	"multi-tenant-bot-relay/internal/bot"
	"multi-tenant-bot-relay/pkg/response"
)

const adminKeyHeader = "X-Admin-Key"

type registerReq struct {
	Name          string `json:"name"`
	SkillType     string `json:"skill_type"`
	AccessToken   string `json:"access_token"`
	ChannelSecret string `json:"channel_secret"`
	SystemPrompt  string `json:"system_prompt"`
}

type registerResp struct {
	TenantID   string `json:"tenantId"`
	WebhookURL string `json:"webhookUrl"`
}

type updatePromptReq struct {
	SystemPrompt string `json:"system_prompt"`
}

// authorize checks the admin key header. Empty configured key means the gate
// is off.
func (h *Handler) authorize(c *gin.Context) bool {
	if h.adminKey == "" {
		return true
	}
	got := c.GetHeader(adminKeyHeader)
	if subtle.ConstantTimeCompare([]byte(got), []byte(h.adminKey)) != 1 {
		response.Unauthorized(c)
		return false
	}
	return true
}

// Health handles the admin-scoped health check. Not gated: monitors probe it
// without credentials.
// @Summary Admin API health
// @Tags Bots
// @Produce json
// @Success 200 {object} response.Resp "Healthy"
// @Router /api/health [get]
func (h *Handler) Health(c *gin.Context) {
	response.OK(c, gin.H{"status": "healthy"})
}

// Register handles tenant registration
// @Summary Register a bot
// @Description Register a new tenant bot and derive its webhook URL
// @Tags Bots
// @Accept json
// @Produce json
// @Param body body registerReq true "Bot registration"
// @Success 200 {object} response.Resp "Registered"
// @Failure 400 {object} response.Resp "Validation error"
// @Failure 409 {object} response.Resp "Tenant id already taken"
// @Router /api/register [post]
func (h *Handler) Register(c *gin.Context) {
	ctx := c.Request.Context()
	if !h.authorize(c) {
		return
	}

	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}

	out, err := h.uc.Register(ctx, bot.RegisterInput{
		Name:          req.Name,
		SkillType:     req.SkillType,
		AccessToken:   req.AccessToken,
		ChannelSecret: req.ChannelSecret,
		SystemPrompt:  req.SystemPrompt,
	})
	if err != nil {
		h.mapError(c, err, "register")
		return
	}

	response.OK(c, registerResp{
		TenantID:   out.TenantID,
		WebhookURL: out.WebhookURL,
	})
}

// List handles bot listing
// @Summary List bots
// @Description List all registered bots with credentials redacted
// @Tags Bots
// @Produce json
// @Success 200 {object} response.Resp "Bots"
// @Router /api/bots [get]
func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	if !h.authorize(c) {
		return
	}

	bots, err := h.uc.List(ctx)
	if err != nil {
		h.mapError(c, err, "list")
		return
	}

	response.OK(c, gin.H{"bots": bots, "count": len(bots)})
}

// UpdatePrompt handles system prompt replacement
// @Summary Update a bot's system prompt
// @Tags Bots
// @Accept json
// @Produce json
// @Param id path string true "Tenant id"
// @Param body body updatePromptReq true "New prompt"
// @Success 200 {object} response.Resp "Updated"
// @Failure 404 {object} response.Resp "Unknown tenant"
// @Router /api/bots/{id} [put]
func (h *Handler) UpdatePrompt(c *gin.Context) {
	ctx := c.Request.Context()
	if !h.authorize(c) {
		return
	}

	var req updatePromptReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}

	tenantID := c.Param("id")
	if err := h.uc.UpdatePrompt(ctx, tenantID, req.SystemPrompt); err != nil {
		h.mapError(c, err, "update prompt")
		return
	}

	response.OK(c, gin.H{"id": tenantID, "updated": true})
}

// Remove handles tenant deletion
// @Summary Remove a bot
// @Tags Bots
// @Produce json
// @Param id path string true "Tenant id"
// @Success 200 {object} response.Resp "Removed"
// @Failure 404 {object} response.Resp "Unknown tenant"
// @Router /api/bots/{id} [delete]
func (h *Handler) Remove(c *gin.Context) {
	ctx := c.Request.Context()
	if !h.authorize(c) {
		return
	}

	tenantID := c.Param("id")
	if err := h.uc.Remove(ctx, tenantID); err != nil {
		h.mapError(c, err, "remove")
		return
	}

	response.OK(c, gin.H{"id": tenantID, "removed": true})
}

func (h *Handler) mapError(c *gin.Context, err error, op string) {
	switch {
	case errors.Is(err, bot.ErrValidation):
		response.BadRequest(c, err)
	case errors.Is(err, bot.ErrDuplicate):
		response.Conflict(c, err)
	case errors.Is(err, bot.ErrNotFound):
		response.NotFound(c, err)
	default:
		h.l.Errorf(c.Request.Context(), "admin: %s: %v", op, err)
		response.InternalError(c)
	}
}
