// file: routes/router.go
package routes

import (
	"github.com/bhvym-sudo/AlgoNetHackathonPortal/controllers"
	"github.com/bhvym-sudo/AlgoNetHackathonPortal/middlewares"
	"github.com/bhvym-sudo/AlgoNetHackathonPortal/models"
	"github.com/bhvym-sudo/AlgoNetHackathonPortal/services"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	apiV1 := r.Group("/api/v1")
	{
		authRoutes := apiV1.Group("/auth")
		{
			authRoutes.POST("/admin/login", controllers.AdminLogin)
			authRoutes.POST("/admin/logout", controllers.AdminLogout)
			authRoutes.POST("/evaluator/login", controllers.EvaluatorLogin)
			authRoutes.POST("/evaluator/logout", controllers.EvaluatorLogout)
		}

		// 公开接口
		apiV1.GET("/problems", controllers.GetProblemList)
		apiV1.GET("/settings", controllers.GetSettings)
		apiV1.GET("/teams/:teamId", middlewares.SessionTryAuthMiddleware(), controllers.GetTeam)

		// 报名与学生端：不登录，由轮次开关放行（管理员会话可绕过）
		apiV1.POST("/teams/register",
			middlewares.SessionTryAuthMiddleware(),
			middlewares.FeatureGateMiddleware(services.SnapshotStudentRound1),
			controllers.RegisterTeam)
		apiV1.PUT("/teams/:teamId/student",
			middlewares.SessionTryAuthMiddleware(),
			controllers.StudentUpdateTeam)
		apiV1.POST("/teams/:teamId/uploads",
			middlewares.SessionTryAuthMiddleware(),
			middlewares.FeatureGateMiddleware(services.SnapshotStudentRound2),
			controllers.UploadFile)
		apiV1.POST("/teams/:teamId/submit-project",
			middlewares.SessionTryAuthMiddleware(),
			middlewares.FeatureGateMiddleware(services.SnapshotStudentRound2),
			controllers.SubmitProject)

		// 评委端
		evaluatorRoutes := apiV1.Group("")
		evaluatorRoutes.Use(middlewares.SessionAuthMiddleware(models.RoleEvaluator))
		{
			evaluatorRoutes.GET("/teams", controllers.GetAllTeams)
			evaluatorRoutes.GET("/results", controllers.GetResults)
			evaluatorRoutes.GET("/teams/:teamId/files", controllers.ListTeamFiles)
			evaluatorRoutes.GET("/teams/:teamId/files/:fileName", controllers.DownloadTeamFile)
			evaluatorRoutes.PUT("/teams/:teamId/evaluator", controllers.EvaluatorUpdateTeam)
			evaluatorRoutes.POST("/teams/:teamId/evaluation", controllers.SaveEvaluation)
		}

		// 管理员端
		adminRoutes := apiV1.Group("/admin")
		adminRoutes.Use(middlewares.SessionAuthMiddleware(models.RoleAdmin))
		{
			adminRoutes.PUT("/settings", controllers.UpdateSettings)
			adminRoutes.GET("/teams", controllers.AdminGetTeams)
			adminRoutes.DELETE("/teams", controllers.AdminDeleteAllTeams)
			adminRoutes.GET("/teams/:teamId/changes", controllers.GetTeamChanges)
			adminRoutes.POST("/problems", controllers.CreateProblem)
			adminRoutes.PUT("/problems/:id", controllers.UpdateProblem)
			adminRoutes.DELETE("/problems/:id", controllers.DeleteProblem)
		}
	}

	return r
}
