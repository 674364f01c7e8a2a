package handler

import (
	"errors"
	"net/http"

	"Asamblea_Hub/internal/service"

	"github.com/gin-gonic/gin"
)

// Errores de dominio que se devuelven tal cual al usuario; cualquier otro
// fallo se cubre con el mensaje genérico de la operación.
var domainErrors = []error{
	service.ErrBadCredentials,
	service.ErrUserNotFound,
	service.ErrPositionNotFound,
	service.ErrAssemblyNotFound,
	service.ErrAssemblyDates,
	service.ErrInvalidDate,
	service.ErrShiftNotFound,
	service.ErrShiftTimes,
	service.ErrRejectWithout,
	service.ErrInvalidShift,
	service.ErrConversationNotFound,
	service.ErrNotParticipant,
	service.ErrEmptyMessage,
}

func fail(c *gin.Context, err error, fallback string) {
	for _, domain := range domainErrors {
		if errors.Is(err, domain) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": fallback})
}

func ok(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": message})
}

func invalidParams(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Datos no válidos."})
}

func userID(c *gin.Context) uint64 {
	v, _ := c.Get("user_id")
	id, _ := v.(uint64)
	return id
}
