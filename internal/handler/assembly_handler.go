package handler

import (
	"net/http"
	"strconv"

	"Asamblea_Hub/internal/service"

	"github.com/gin-gonic/gin"
)

type AssemblyHandler struct {
	svc *service.AssemblyService
}

type AssemblyReq struct {
	Title     string `form:"title" json:"title" binding:"required,min=3"`
	StartDate string `form:"startDate" json:"startDate" binding:"required"`
	EndDate   string `form:"endDate" json:"endDate" binding:"required"`
	Type      string `form:"type" json:"type" binding:"omitempty,oneof=regional circuito"`
}

type AssemblyUpdateReq struct {
	Title        string   `form:"title" json:"title" binding:"required,min=3"`
	StartDate    string   `form:"startDate" json:"startDate" binding:"required"`
	EndDate      string   `form:"endDate" json:"endDate" binding:"required"`
	VolunteerIDs []uint64 `form:"volunteerIds" json:"volunteerIds"`
}

type AssociateReq struct {
	VolunteerID uint64 `form:"volunteerId" json:"volunteerId" binding:"required"`
}

func NewAssemblyHandler(svc *service.AssemblyService) *AssemblyHandler {
	return &AssemblyHandler{svc: svc}
}

// List devuelve las asambleas con sus voluntarios asociados.
func (h *AssemblyHandler) List(c *gin.Context) {
	assemblies, err := h.svc.ListPopulated()
	if err != nil {
		fail(c, err, "No se pudo obtener la lista de asambleas.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "list": assemblies})
}

func (h *AssemblyHandler) Add(c *gin.Context) {
	var req AssemblyReq
	if err := c.ShouldBind(&req); err != nil {
		invalidParams(c)
		return
	}

	if _, err := h.svc.Add(req.Title, req.StartDate, req.EndDate, req.Type); err != nil {
		fail(c, err, "No se pudo crear la asamblea.")
		return
	}
	ok(c, "Asamblea creada correctamente.")
}

func (h *AssemblyHandler) Update(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	var req AssemblyUpdateReq
	if err := c.ShouldBind(&req); err != nil {
		invalidParams(c)
		return
	}

	if err := h.svc.Update(id, req.Title, req.StartDate, req.EndDate, req.VolunteerIDs); err != nil {
		fail(c, err, "No se pudo actualizar la asamblea.")
		return
	}
	ok(c, "Asamblea actualizada correctamente.")
}

func (h *AssemblyHandler) Associate(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	var req AssociateReq
	if err := c.ShouldBind(&req); err != nil {
		invalidParams(c)
		return
	}

	if err := h.svc.AssociateVolunteer(id, req.VolunteerID); err != nil {
		fail(c, err, "No se pudo asociar el voluntario.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
