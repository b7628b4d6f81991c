package router

import (
	"github.com/gin-gonic/gin"

	"club-hub/internal/handler"
	"club-hub/internal/middleware"
	"club-hub/internal/pkg"
	"club-hub/internal/repository/redis"
	"club-hub/internal/service"
)

func InitRouter(storage *service.StorageService, producer *pkg.EventProducer, smtpCfg pkg.SMTPConfig) *gin.Engine {
	r := gin.Default()

	emailSvc := service.NewEmailService(smtpCfg)
	authRequired := middleware.AuthMiddleware(&redis.UserRepository{})
	user := handler.NewUserHandler(service.NewUserService(emailSvc))
	email := handler.NewEmailHandler(emailSvc)
	club := handler.NewClubHandler(service.NewClubService(storage, producer))
	member := handler.NewMemberHandler(service.NewMemberService())
	accounting := handler.NewAccountingHandler(service.NewAccountingService(storage))
	operationLog := handler.NewOperationLogHandler(service.NewOperationLogService(storage))

	// 上传的图片/附件直接按路径访问
	r.Static("/static", storage.BasePath())

	// 认证相关接口
	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/signup", user.Signup)
		authGroup.POST("/token", user.Login)
		authGroup.POST("/refresh", user.TokenRefresh)
		authGroup.POST("/reset", user.ResetPassword)
	}

	// 登录态接口
	authedGroup := r.Group("/api/auth")
	authedGroup.Use(authRequired)
	{
		authedGroup.POST("/logout", user.Logout)
		authedGroup.POST("/change-password", user.ChangePassword)
	}

	// 邮件相关接口
	emailGroup := r.Group("/api/email")
	{
		emailGroup.POST("/reset/code", email.SendResetCode)
	}

	// 社团公开接口
	clubGroup := r.Group("/api/clubs")
	{
		clubGroup.POST("", club.Create)
		clubGroup.GET("", club.List)
		clubGroup.POST("/join", club.Join)
		clubGroup.GET("/:id", club.Get)

		clubGroup.GET("/:id/members", member.List)
		clubGroup.GET("/:id/accounting", accounting.List)
		clubGroup.GET("/:id/logs", operationLog.List)
		clubGroup.GET("/:id/logs/:log_id", operationLog.Get)
	}

	// 社团写接口统一要求登录
	clubAuthGroup := r.Group("/api/clubs")
	clubAuthGroup.Use(authRequired)
	{
		clubAuthGroup.PATCH("/:id", club.Update)
		clubAuthGroup.DELETE("/:id", club.Delete)

		clubAuthGroup.POST("/:id/members", member.Create)
		clubAuthGroup.PATCH("/:id/members/:member_id", member.Update)
		clubAuthGroup.DELETE("/:id/members/:member_id", member.Delete)

		clubAuthGroup.POST("/:id/accounting", accounting.Create)
		clubAuthGroup.PATCH("/:id/accounting/:entry_id", accounting.Update)
		clubAuthGroup.DELETE("/:id/accounting/:entry_id", accounting.Delete)

		clubAuthGroup.POST("/:id/logs", operationLog.Create)
	}

	return r
}
