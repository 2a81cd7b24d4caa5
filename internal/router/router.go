// Package router wires repositories, services and handlers into the HTTP engine.
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"taskboard-api/internal/client"
	"taskboard-api/internal/handler"
	"taskboard-api/internal/lock"
	"taskboard-api/internal/metrics"
	"taskboard-api/internal/middleware"
	"taskboard-api/internal/repository"
	"taskboard-api/internal/service"
)

// Config holds the dependencies of the HTTP engine
type Config struct {
	DB       *gorm.DB
	Redis    *redis.Client
	Logger   *zap.Logger
	BasePath string

	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer // defaults to prometheus.DefaultGatherer

	Storage     client.FileStorage
	UploadDir   string // served under /uploads when set
	MaxFileSize int64

	Locker         lock.Locker // defaults to an in-process locker
	AllowedOrigins []string
}

// Setup builds the gin engine with every route registered
func Setup(cfg Config) *gin.Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	locker := cfg.Locker
	if locker == nil {
		locker = lock.NewLocalLocker()
	}
	gatherer := cfg.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	r := gin.New()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}

	// Repositories
	tx := repository.NewTransactor(cfg.DB)
	boardRepo := repository.NewBoardRepository(cfg.DB)
	listRepo := repository.NewListRepository(cfg.DB)
	cardRepo := repository.NewCardRepository(cfg.DB)
	labelRepo := repository.NewLabelRepository(cfg.DB)
	memberRepo := repository.NewMemberRepository(cfg.DB)
	checklistRepo := repository.NewChecklistRepository(cfg.DB)
	attachmentRepo := repository.NewAttachmentRepository(cfg.DB)
	commentRepo := repository.NewCommentRepository(cfg.DB)
	userRepo := repository.NewUserRepository(cfg.DB)

	// Services
	boardService := service.NewBoardService(boardRepo, tx, cfg.Metrics, logger)
	listService := service.NewListService(listRepo, boardRepo, tx, locker, logger)
	cardService := service.NewCardService(cardRepo, listRepo, tx, locker, cfg.Metrics, logger)
	labelService := service.NewLabelService(labelRepo, boardRepo, cardRepo, tx, logger)
	memberService := service.NewMemberService(memberRepo, cardRepo, userRepo, tx, logger)
	checklistService := service.NewChecklistService(checklistRepo, cardRepo, tx, locker, logger)
	attachmentService := service.NewAttachmentService(attachmentRepo, cardRepo, cfg.Storage, tx, cfg.MaxFileSize, cfg.Metrics, logger)
	commentService := service.NewCommentService(commentRepo, cardRepo, userRepo, tx, logger)
	userService := service.NewUserService(userRepo, tx, logger)

	// Handlers
	boardHandler := handler.NewBoardHandler(boardService)
	listHandler := handler.NewListHandler(listService)
	cardHandler := handler.NewCardHandler(cardService)
	labelHandler := handler.NewLabelHandler(labelService)
	memberHandler := handler.NewMemberHandler(memberService)
	checklistHandler := handler.NewChecklistHandler(checklistService)
	attachmentHandler := handler.NewAttachmentHandler(attachmentService)
	commentHandler := handler.NewCommentHandler(commentService)
	userHandler := handler.NewUserHandler(userService)
	healthHandler := handler.NewHealthHandler(cfg.DB, cfg.Redis)

	// Operational endpoints
	metricsHandler := gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	r.GET("/health", healthHandler.Health)
	r.GET("/ready", healthHandler.Ready)
	r.GET("/metrics", metricsHandler)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if cfg.UploadDir != "" {
		r.Static(client.UploadURLPrefix, cfg.UploadDir)
	}

	api := r.Group(cfg.BasePath)
	{
		if cfg.BasePath != "" && cfg.BasePath != "/" {
			api.GET("/health", healthHandler.Health)
			api.GET("/ready", healthHandler.Ready)
			api.GET("/metrics", metricsHandler)
		}

		boards := api.Group("/boards")
		{
			boards.GET("", boardHandler.GetBoards)
			boards.POST("", boardHandler.CreateBoard)
			boards.GET("/:id", boardHandler.GetBoard)
			boards.PUT("/:id", boardHandler.UpdateBoard)
			boards.DELETE("/:id", boardHandler.DeleteBoard)
		}

		lists := api.Group("/lists")
		{
			lists.GET("/board/:boardId", listHandler.GetListsByBoard)
			lists.POST("", listHandler.CreateList)
			lists.PUT("/reorder", listHandler.ReorderLists)
			lists.GET("/:id", listHandler.GetList)
			lists.PUT("/:id", listHandler.UpdateList)
			lists.DELETE("/:id", listHandler.DeleteList)
		}

		cards := api.Group("/cards")
		{
			cards.GET("/list/:listId", cardHandler.GetCardsByList)
			cards.POST("", cardHandler.CreateCard)
			cards.PUT("/reorder", cardHandler.ReorderCards)
			cards.GET("/:id", cardHandler.GetCard)
			cards.PUT("/:id", cardHandler.UpdateCard)
			cards.DELETE("/:id", cardHandler.DeleteCard)
			cards.PUT("/:id/move", cardHandler.MoveCard)

			cards.POST("/:id/labels", labelHandler.AttachLabel)
			cards.DELETE("/:id/labels/:labelId", labelHandler.DetachLabel)

			cards.POST("/:id/members", memberHandler.AttachMember)
			cards.DELETE("/:id/members/:userId", memberHandler.DetachMember)

			cards.POST("/:id/checklists", checklistHandler.CreateChecklist)
			cards.PUT("/checklists/:checklistId", checklistHandler.UpdateChecklist)
			cards.DELETE("/checklists/:checklistId", checklistHandler.DeleteChecklist)
			cards.POST("/checklists/:checklistId/items", checklistHandler.CreateItem)
			cards.PUT("/checklist-items/:itemId", checklistHandler.UpdateItem)
			cards.DELETE("/checklist-items/:itemId", checklistHandler.DeleteItem)

			cards.POST("/:id/attachments", attachmentHandler.UploadAttachment)
			cards.DELETE("/attachments/:attachmentId", attachmentHandler.DeleteAttachment)

			cards.GET("/:id/comments", commentHandler.GetComments)
			cards.POST("/:id/comments", commentHandler.CreateComment)
			cards.PUT("/comments/:commentId", commentHandler.UpdateComment)
			cards.DELETE("/comments/:commentId", commentHandler.DeleteComment)
		}

		labels := api.Group("/labels")
		{
			labels.GET("/board/:boardId", labelHandler.GetLabelsByBoard)
			labels.POST("", labelHandler.CreateLabel)
			labels.PUT("/:id", labelHandler.UpdateLabel)
			labels.DELETE("/:id", labelHandler.DeleteLabel)
		}

		users := api.Group("/users")
		{
			users.GET("", userHandler.GetUsers)
			users.GET("/:id", userHandler.GetUser)
		}

		api.GET("/search/cards", cardHandler.SearchCards)
	}

	return r
}
