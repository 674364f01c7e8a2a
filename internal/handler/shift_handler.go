package handler

import (
	"net/http"
	"strconv"
	"time"

	"Asamblea_Hub/internal/service"

	"github.com/gin-gonic/gin"
)

type ShiftHandler struct {
	svc *service.ShiftService
}

type ShiftReq struct {
	PositionID  uint64 `form:"positionId" json:"positionId" binding:"required"`
	VolunteerID string `form:"volunteerId" json:"volunteerId"`
	Date        string `form:"date" json:"date" binding:"required"`
	StartTime   string `form:"startTime" json:"startTime" binding:"required"`
	EndTime     string `form:"endTime" json:"endTime" binding:"required"`
	AssemblyID  uint64 `form:"assemblyId" json:"assemblyId" binding:"required"`
}

type AssignReq struct {
	VolunteerID string `form:"volunteerId" json:"volunteerId"`
}

type RejectReq struct {
	VolunteerID uint64 `form:"volunteerId" json:"volunteerId" binding:"required"`
	Reason      string `form:"reason" json:"reason"`
}

func NewShiftHandler(svc *service.ShiftService) *ShiftHandler {
	return &ShiftHandler{svc: svc}
}

func (h *ShiftHandler) List(c *gin.Context) {
	shifts, err := h.svc.ListPopulated(c.Request.Context())
	if err != nil {
		fail(c, err, "No se pudo obtener la lista de turnos.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "list": shifts})
}

func (h *ShiftHandler) Add(c *gin.Context) {
	var req ShiftReq
	if err := c.ShouldBind(&req); err != nil {
		invalidParams(c)
		return
	}

	volunteerID, valid := parseNullableID(req.VolunteerID)
	if !valid {
		invalidParams(c)
		return
	}

	if _, err := h.svc.Add(c.Request.Context(), req.PositionID, volunteerID, req.Date, req.StartTime, req.EndTime, req.AssemblyID); err != nil {
		fail(c, err, "No se pudo añadir el turno.")
		return
	}
	ok(c, "Turno creado correctamente.")
}

// Days lista los días de calendario de la asamblea disponibles para crear turnos.
func (h *ShiftHandler) Days(c *gin.Context) {
	assemblyID, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	days, err := h.svc.AssemblyDays(assemblyID)
	if err != nil {
		fail(c, err, "No se pudo obtener los días de la asamblea.")
		return
	}

	list := make([]string, 0, len(days))
	for _, d := range days {
		list = append(list, d.Format(time.DateOnly))
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "list": list})
}

func (h *ShiftHandler) Assign(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	var req AssignReq
	if err := c.ShouldBind(&req); err != nil {
		invalidParams(c)
		return
	}

	volunteerID, valid := parseNullableID(req.VolunteerID)
	if !valid {
		invalidParams(c)
		return
	}

	if err := h.svc.Assign(c.Request.Context(), id, volunteerID); err != nil {
		fail(c, err, "No se pudo asignar el voluntario.")
		return
	}
	ok(c, "Voluntario asignado correctamente.")
}

func (h *ShiftHandler) Reject(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	var req RejectReq
	if err := c.ShouldBind(&req); err != nil {
		invalidParams(c)
		return
	}

	if _, err := h.svc.Reject(c.Request.Context(), id, req.Reason); err != nil {
		fail(c, err, "No se pudo rechazar el turno.")
		return
	}
	ok(c, "Turno rechazado.")
}

// El formulario envía "null" o vacío cuando el turno queda sin voluntario.
func parseNullableID(raw string) (*uint64, bool) {
	if raw == "" || raw == "null" {
		return nil, true
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, false
	}
	return &id, true
}
