package router

import (
	"Asamblea_Hub/internal/handler"
	"Asamblea_Hub/internal/middleware"
	"Asamblea_Hub/internal/pkg"
	"Asamblea_Hub/internal/repository/redis"
	"Asamblea_Hub/internal/service"

	"github.com/gin-gonic/gin"
)

// Deps agrupa lo que necesitan los handlers; se construye en main.
type Deps struct {
	Auth       *service.AuthService
	Users      *service.UserService
	Positions  *service.PositionService
	Assemblies *service.AssemblyService
	Shifts     *service.ShiftService
	Chat       *service.ChatService
	JWT        *pkg.JWTManager
	Sessions   *redis.SessionRepository
}

func InitRouter(d Deps) *gin.Engine {
	r := gin.Default()

	auth := handler.NewAuthHandler(d.Auth)
	user := handler.NewUserHandler(d.Users)
	position := handler.NewPositionHandler(d.Positions)
	assembly := handler.NewAssemblyHandler(d.Assemblies)
	shift := handler.NewShiftHandler(d.Shifts)
	chat := handler.NewChatHandler(d.Chat)

	authRequired := middleware.AuthMiddleware(d.JWT, d.Sessions)
	adminOnly := middleware.AdminOnly()

	// acceso
	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/login", auth.Login)
		authGroup.POST("/refresh", auth.Refresh)
		authGroup.POST("/logout", authRequired, auth.Logout)
	}

	// usuarios y perfil
	userGroup := r.Group("/api/users")
	userGroup.Use(authRequired)
	{
		userGroup.GET("", user.List)
		userGroup.GET("/:id", user.Get)
		userGroup.POST("", adminOnly, user.Add)
		userGroup.PUT("/:id", adminOnly, user.Update)
		userGroup.DELETE("/:id", adminOnly, user.Delete)
	}
	r.PUT("/api/profile", authRequired, user.UpdateProfile)

	// posiciones
	positionGroup := r.Group("/api/positions")
	positionGroup.Use(authRequired)
	{
		positionGroup.GET("", position.List)
		positionGroup.POST("", adminOnly, position.Add)
		positionGroup.PUT("/:id", adminOnly, position.Update)
		positionGroup.DELETE("/:id", adminOnly, position.Delete)
	}

	// asambleas
	assemblyGroup := r.Group("/api/assemblies")
	assemblyGroup.Use(authRequired)
	{
		assemblyGroup.GET("", assembly.List)
		assemblyGroup.POST("", adminOnly, assembly.Add)
		assemblyGroup.PUT("/:id", adminOnly, assembly.Update)
		assemblyGroup.POST("/:id/volunteers", adminOnly, assembly.Associate)
		assemblyGroup.GET("/:id/days", shift.Days)
	}

	// turnos
	shiftGroup := r.Group("/api/shifts")
	shiftGroup.Use(authRequired)
	{
		shiftGroup.GET("", shift.List)
		shiftGroup.POST("", adminOnly, shift.Add)
		shiftGroup.POST("/:id/assign", adminOnly, shift.Assign)
		shiftGroup.POST("/:id/reject", shift.Reject)
	}

	// chat
	chatGroup := r.Group("/api/conversations")
	chatGroup.Use(authRequired)
	{
		chatGroup.GET("", chat.ListConversations)
		chatGroup.GET("/:id", chat.GetConversation)
		chatGroup.POST("/:id/messages", chat.SendMessage)
	}

	return r
}
