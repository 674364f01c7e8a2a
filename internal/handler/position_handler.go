package handler

import (
	"net/http"
	"strconv"

	"Asamblea_Hub/internal/service"

	"github.com/gin-gonic/gin"
)

type PositionHandler struct {
	svc *service.PositionService
}

type PositionReq struct {
	Name        string `form:"name" json:"name" binding:"required,min=2"`
	Description string `form:"description" json:"description" binding:"required"`
	IconName    string `form:"iconName" json:"iconName" binding:"required"`
	AssemblyID  uint64 `form:"assemblyId" json:"assemblyId"`
}

func NewPositionHandler(svc *service.PositionService) *PositionHandler {
	return &PositionHandler{svc: svc}
}

func (h *PositionHandler) List(c *gin.Context) {
	positions, err := h.svc.List()
	if err != nil {
		fail(c, err, "No se pudo obtener la lista de posiciones.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "list": positions})
}

func (h *PositionHandler) Add(c *gin.Context) {
	var req PositionReq
	if err := c.ShouldBind(&req); err != nil {
		invalidParams(c)
		return
	}

	if _, err := h.svc.Add(req.Name, req.Description, req.IconName, req.AssemblyID); err != nil {
		fail(c, err, "No se pudo añadir la posición.")
		return
	}
	ok(c, "Posición añadida correctamente.")
}

func (h *PositionHandler) Update(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	var req PositionReq
	if err := c.ShouldBind(&req); err != nil {
		invalidParams(c)
		return
	}

	if err := h.svc.Update(id, req.Name, req.Description, req.IconName); err != nil {
		fail(c, err, "No se pudo actualizar la posición.")
		return
	}
	ok(c, "Posición actualizada correctamente.")
}

func (h *PositionHandler) Delete(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	if err := h.svc.Delete(id); err != nil {
		fail(c, err, "No se pudo eliminar la posición.")
		return
	}
	ok(c, "Posición eliminada correctamente.")
}
