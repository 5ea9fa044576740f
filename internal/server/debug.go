package server

import (
	"net/http"

	"realm-server/internal/engine"

	"github.com/gin-gonic/gin"
)

// DebugHandler отдаёт последний опубликованный снимок.
// Живой мир отсюда не читается: им владеет только игровой цикл.
type DebugHandler struct {
	Service *engine.GameService
}

func NewDebugHandler(s *engine.GameService) *DebugHandler {
	return &DebugHandler{Service: s}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(g *gin.RouterGroup) {
	g.GET("/state", h.handleState)
	g.GET("/entities", h.handleEntities)
	g.GET("/teams", h.handleTeams)
}

// /debug/state - снимок целиком
func (h *DebugHandler) handleState(c *gin.Context) {
	state := h.Service.Latest()
	if state == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no snapshot yet"})
		return
	}
	c.JSON(http.StatusOK, state)
}

// /debug/entities?type=mob - игроки и объекты, опционально с фильтром по типу
func (h *DebugHandler) handleEntities(c *gin.Context) {
	state := h.Service.Latest()
	if state == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no snapshot yet"})
		return
	}

	typ := c.Query("type")
	out := gin.H{"tick": state.Tick}
	if typ == "" || typ == "player" {
		out["players"] = state.Players
	}
	if typ != "player" {
		objects := state.Objects[:0:0]
		for _, o := range state.Objects {
			if typ == "" || o.Type == typ {
				objects = append(objects, o)
			}
		}
		out["objects"] = objects
	}
	c.JSON(http.StatusOK, out)
}

// /debug/teams - команды из снимка
func (h *DebugHandler) handleTeams(c *gin.Context) {
	state := h.Service.Latest()
	if state == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no snapshot yet"})
		return
	}
	c.JSON(http.StatusOK, state.Teams)
}
