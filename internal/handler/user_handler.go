package handler

import (
	"net/http"
	"strconv"

	"Asamblea_Hub/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	svc *service.UserService
}

type VolunteerReq struct {
	Name  string `form:"name" json:"name" binding:"required,min=2"`
	Email string `form:"email" json:"email" binding:"required,email"`
	Phone string `form:"phone" json:"phone" binding:"required"`
	Role  string `form:"role" json:"role" binding:"required,oneof=admin volunteer"`
}

type ProfileReq struct {
	Name  string `form:"name" json:"name" binding:"required,min=2"`
	Email string `form:"email" json:"email" binding:"required,email"`
	Phone string `form:"phone" json:"phone" binding:"required"`
}

func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.svc.List()
	if err != nil {
		fail(c, err, "No se pudo obtener la lista de usuarios.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "list": users})
}

func (h *UserHandler) Get(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	user, err := h.svc.Get(id)
	if err != nil {
		fail(c, err, "No se pudo encontrar al usuario.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

func (h *UserHandler) Add(c *gin.Context) {
	var req VolunteerReq
	if err := c.ShouldBind(&req); err != nil {
		invalidParams(c)
		return
	}

	if _, err := h.svc.AddVolunteer(req.Name, req.Email, req.Phone, req.Role); err != nil {
		fail(c, err, "No se pudo añadir el voluntario.")
		return
	}
	ok(c, "Voluntario añadido correctamente.")
}

func (h *UserHandler) Update(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	var req VolunteerReq
	if err := c.ShouldBind(&req); err != nil {
		invalidParams(c)
		return
	}

	if err := h.svc.UpdateVolunteer(id, req.Name, req.Email, req.Phone, req.Role); err != nil {
		fail(c, err, "No se pudo actualizar el voluntario.")
		return
	}
	ok(c, "Voluntario actualizado correctamente.")
}

// UpdateProfile actualiza los datos del usuario autenticado y devuelve el
// registro resultante.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req ProfileReq
	if err := c.ShouldBind(&req); err != nil {
		invalidParams(c)
		return
	}

	user, err := h.svc.UpdateProfile(userID(c), req.Name, req.Email, req.Phone)
	if err != nil {
		fail(c, err, "No se pudo actualizar el perfil.")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Perfil actualizado correctamente.",
		"user":    user,
	})
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	if err := h.svc.Delete(id); err != nil {
		fail(c, err, "No se pudo eliminar el voluntario.")
		return
	}
	ok(c, "Voluntario eliminado correctamente.")
}
