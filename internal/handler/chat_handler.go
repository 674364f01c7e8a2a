package handler

import (
	"net/http"
	"strconv"

	"Asamblea_Hub/internal/service"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	svc *service.ChatService
}

type MessageReq struct {
	Text string `form:"text" json:"text" binding:"required"`
}

func NewChatHandler(svc *service.ChatService) *ChatHandler {
	return &ChatHandler{svc: svc}
}

func (h *ChatHandler) ListConversations(c *gin.Context) {
	conversations, err := h.svc.ListConversations(c.Request.Context(), userID(c))
	if err != nil {
		fail(c, err, "No se pudo obtener las conversaciones.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "list": conversations})
}

func (h *ChatHandler) GetConversation(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	conversation, err := h.svc.GetConversation(c.Request.Context(), userID(c), id)
	if err != nil {
		fail(c, err, "No se pudo obtener la conversación.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "conversation": conversation})
}

func (h *ChatHandler) SendMessage(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	var req MessageReq
	if err := c.ShouldBind(&req); err != nil {
		invalidParams(c)
		return
	}

	sent, err := h.svc.SendMessage(c.Request.Context(), userID(c), id, req.Text)
	if err != nil {
		fail(c, err, "No se pudo enviar el mensaje.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "sent": sent})
}
