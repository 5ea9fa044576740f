package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"realm-server/internal/engine"
	"realm-server/internal/version"
	"realm-server/pkg/api"
	"realm-server/pkg/logger"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	Engine *engine.GameService
	Port   string

	// ctx живёт дольше любого запроса: им пользуются клиенты после апгрейда
	ctx context.Context
}

func New(engine *engine.GameService, port string) *Server {
	return &Server{
		Engine: engine,
		Port:   port,
		ctx:    context.Background(),
	}
}

// Router собирает маршруты. Отдельно от Run, чтобы его можно было поднять в httptest.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), enableCORS())

	r.GET("/ws", s.handleWS)
	r.GET("/health", s.handleHealth)
	r.GET("/version", s.handleVersion)

	// Debug Routes
	NewDebugHandler(s.Engine).RegisterRoutes(r.Group("/debug"))

	return r
}

// Run запускает HTTP сервер и останавливает его при отмене ctx
func (s *Server) Run(ctx context.Context) error {
	s.ctx = ctx
	srv := &http.Server{
		Addr:    ":" + s.Port,
		Handler: s.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Log.Infof("Realm server running on :%s", s.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	logger.Log.Info("HTTP server stopped")
	return nil
}

func enableCORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Разрешаем запросы с фронтенда
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// handleWS обрабатывает подключение по WebSocket.
// ?encoding=msgpack переключает соединение на бинарные кадры.
func (s *Server) handleWS(c *gin.Context) {
	enc := api.ParseEncoding(c.Query("encoding"))

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Log.WithError(err).Error("Upgrade error")
		return
	}

	client := NewClient(s.Engine, conn, enc)
	client.log.Info("Client connected")
	s.Engine.Hub.SendTo(client.Session, api.ServerMessage{Type: api.MsgLog, Message: welcomeText})

	// Запускаем пампы
	go client.writePump()
	go client.readPump(s.ctx)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

func (s *Server) handleVersion(c *gin.Context) {
	c.JSON(http.StatusOK, version.Info())
}
