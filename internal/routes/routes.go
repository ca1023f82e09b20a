package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"document-system/internal/controllers"
	"document-system/internal/repositories"
	"document-system/internal/services"
	"document-system/pkg/config"
	"document-system/pkg/filestorage"
	"document-system/pkg/middleware"
	"document-system/pkg/service"
)

func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, redisClient *redis.Client, jwtSvc service.JWTService, logger *zap.Logger, cfg *config.Config) {
	logger.Info("InitRouter: начало создания маршрутов")

	// --- 0. ОБЩИЕ КОМПОНЕНТЫ ---
	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, logger)
	fileStorage, err := filestorage.NewLocalFileStorage(cfg.Upload.BasePath)
	if err != nil {
		logger.Fatal("не удалось создать файловое хранилище", zap.Error(err))
	}
	txManager := repositories.NewTxManager(dbConn)

	// --- 1. РЕПОЗИТОРИИ ---
	documentRepo := repositories.NewDocumentRepository(dbConn)
	departmentRepo := repositories.NewDepartmentRepository(dbConn, logger)
	commentRepo := repositories.NewDocumentCommentRepository(dbConn)
	attachmentRepo := repositories.NewAttachmentRepository(dbConn)
	historyRepo := repositories.NewDocumentHistoryRepository(dbConn)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	// --- 2. СЕРВИСЫ ---
	documentService := services.NewDocumentService(documentRepo, departmentRepo, historyRepo, txManager, logger)
	departmentService := services.NewDepartmentService(departmentRepo, cacheRepo, cfg.Cache.DepartmentsTTL, logger)
	commentService := services.NewDocumentCommentService(commentRepo, documentRepo, logger)
	attachmentService := services.NewAttachmentService(attachmentRepo, documentRepo, fileStorage, logger)
	historyService := services.NewDocumentHistoryService(historyRepo, documentRepo, logger)
	reportService := services.NewReportService(documentRepo, logger)

	// --- 3. КОНТРОЛЛЕРЫ ---
	documentCtrl := controllers.NewDocumentController(documentService, logger)
	departmentCtrl := controllers.NewDepartmentController(departmentService, logger)
	commentCtrl := controllers.NewDocumentCommentController(commentService, logger)
	attachmentCtrl := controllers.NewAttachmentController(attachmentService, logger)
	historyCtrl := controllers.NewDocumentHistoryController(historyService, logger)
	reportCtrl := controllers.NewReportController(reportService, logger)

	// --- 4. РОУТЕРЫ ---
	secureGroup := api.Group("", authMW.Auth)

	runDocumentRouter(secureGroup, documentCtrl)
	runDepartmentRouter(secureGroup, departmentCtrl)
	runDocumentCommentRouter(secureGroup, commentCtrl)
	runAttachmentRouter(secureGroup, attachmentCtrl)
	runDocumentHistoryRouter(secureGroup, historyCtrl)
	runReportRouter(secureGroup, reportCtrl)

	logger.Info("InitRouter: создание маршрутов завершено")
}
