package cmd

import (
	"context"
	"log"

	"github.com/Aayush-wellness/AWLTaskManger-sub001/config"
	"github.com/Aayush-wellness/AWLTaskManger-sub001/database"
	"github.com/Aayush-wellness/AWLTaskManger-sub001/handler"
	"github.com/Aayush-wellness/AWLTaskManger-sub001/middleware"
	"github.com/Aayush-wellness/AWLTaskManger-sub001/repository"
	"github.com/Aayush-wellness/AWLTaskManger-sub001/service"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

// startServerCmd represents the start command
var startServerCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the API server",
	Long:  `Starts the HTTP server that serves the task management API`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		mongoClient, err := database.NewMongoClient(context.Background(), cfg.MongoURI)
		if err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		mongoDb := mongoClient.Database(cfg.Database)

		//init repo
		userRepo := repository.NewUserRepo(mongoDb)
		notificationRepo := repository.NewNotificationRepo(mongoDb)
		departmentRepo := repository.NewDepartmentRepo(mongoDb.Collection("departments"))
		projectRepo := repository.NewProjectRepo(mongoDb.Collection("projects"))
		vendorRepo := repository.NewVendorRepo(mongoDb.Collection("vendors"))

		//init service
		hub := service.NewNotificationHub()
		notificationService := service.NewNotificationService(notificationRepo, userRepo, hub)
		taskService := service.NewTaskService(userRepo, notificationService)
		userService := service.NewUserService(userRepo)
		departmentService := service.NewDepartmentService(departmentRepo)
		projectService := service.NewProjectService(projectRepo)
		vendorService := service.NewVendorService(vendorRepo)
		dashboardService := service.NewDashboardService(userRepo, departmentRepo, projectRepo, vendorRepo, notificationRepo)

		// Initialize handlers
		corsHandler := handler.NewCorsHandler(cfg.CORSOrigin)
		loginHandler := handler.NewLoginHandler(userService)
		profileHandler := handler.NewProfileHandler(userService)
		taskHandler := handler.NewTaskHandler(taskService, userService)
		notificationHandler := handler.NewNotificationHandler(notificationService, hub)
		employeeHandler := handler.NewEmployeeHandler(userService)
		departmentHandler := handler.NewDepartmentHandler(departmentService)
		projectHandler := handler.NewProjectHandler(projectService)
		vendorHandler := handler.NewVendorHandler(vendorService)
		dashboardHandler := handler.NewDashboardHandler(dashboardService)

		// Setup Gin router
		if cfg.GinReleaseMode {
			gin.SetMode(gin.ReleaseMode)
		}
		router := gin.Default()

		// Apply global middleware
		router.Use(corsHandler.CorsMiddleware)

		apiV1 := router.Group("/api/v1")
		apiV1.POST("/register", loginHandler.HandleRegister)
		apiV1.POST("/login", loginHandler.HandleLogin)

		// Protected user routes
		userRoutes := apiV1.Group("/")
		userRoutes.Use(middleware.AuthMiddleware)
		{
			userRoutes.GET("/profile", profileHandler.HandleGetProfile)
			userRoutes.PUT("/profile", profileHandler.HandleUpdateProfile)

			userRoutes.POST("/tasks", taskHandler.HandleAddTask)
			userRoutes.GET("/tasks", taskHandler.HandleListTasks)
			userRoutes.PUT("/tasks/:taskId", taskHandler.HandleUpdateTask)
			userRoutes.DELETE("/tasks/:taskId", taskHandler.HandleDeleteTask)

			userRoutes.GET("/notifications", notificationHandler.HandleList)
			userRoutes.PUT("/notifications", notificationHandler.HandleMarkAllRead)
			userRoutes.PUT("/notifications/:notificationId/read", notificationHandler.HandleMarkRead)
			userRoutes.DELETE("/notifications/:notificationId", notificationHandler.HandleDelete)
			userRoutes.POST("/notifications/assign", notificationHandler.HandleCreateAssignment)
			userRoutes.GET("/ws/notifications", notificationHandler.HandleStream)

			userRoutes.GET("/departments", departmentHandler.HandleList)
			userRoutes.GET("/projects", projectHandler.HandleList)
			userRoutes.GET("/vendors", vendorHandler.HandleList)

			userRoutes.GET("/dashboard", dashboardHandler.HandleEmployeeDashboard)
		}

		// Admin routes - require admin authentication
		adminRoutes := router.Group("/admin/api/v1")
		adminRoutes.Use(middleware.AdminAuthMiddleware)
		{
			adminRoutes.POST("/employees", employeeHandler.HandleCreateEmployee)
			adminRoutes.GET("/employees", employeeHandler.HandleListEmployees)
			adminRoutes.GET("/employees/:employeeId", employeeHandler.HandleGetEmployee)
			adminRoutes.PUT("/employees/:employeeId", employeeHandler.HandleUpdateEmployee)
			adminRoutes.DELETE("/employees/:employeeId", employeeHandler.HandleDeleteEmployee)

			adminRoutes.POST("/employees/:employeeId/tasks", taskHandler.HandleAssignTask)
			adminRoutes.PUT("/employees/:employeeId/tasks/:taskId", taskHandler.HandleUpdateEmployeeTask)

			adminRoutes.POST("/departments", departmentHandler.HandleCreate)
			adminRoutes.GET("/departments/:departmentId", departmentHandler.HandleGet)
			adminRoutes.PUT("/departments/:departmentId", departmentHandler.HandleUpdate)
			adminRoutes.DELETE("/departments/:departmentId", departmentHandler.HandleDelete)

			adminRoutes.POST("/projects", projectHandler.HandleCreate)
			adminRoutes.GET("/projects/:projectId", projectHandler.HandleGet)
			adminRoutes.PUT("/projects/:projectId", projectHandler.HandleUpdate)
			adminRoutes.DELETE("/projects/:projectId", projectHandler.HandleDelete)

			adminRoutes.POST("/vendors", vendorHandler.HandleCreate)
			adminRoutes.GET("/vendors/:vendorId", vendorHandler.HandleGet)
			adminRoutes.PUT("/vendors/:vendorId", vendorHandler.HandleUpdate)
			adminRoutes.DELETE("/vendors/:vendorId", vendorHandler.HandleDelete)

			adminRoutes.GET("/dashboard", dashboardHandler.HandleAdminDashboard)
		}

		log.Printf("Starting server on port %s...\n", cfg.Port)
		if err := router.Run(":" + cfg.Port); err != nil {
			log.Fatal("Server error:", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(startServerCmd)
	startServerCmd.Flags().StringP("config", "c", "config/config.yaml", "config file")
}
