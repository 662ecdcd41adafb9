package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.trai.ch/tide/internal/core/domain"
	"go.trai.ch/tide/internal/engine/stats"
)

const headerRequestID = "X-Request-ID"

var uuidString = uuid.NewString

type errorBody struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

type nodesBody struct {
	Nodes []string `json:"nodes"`
}

type healthBody struct {
	Status string `json:"status"`
}

func (s *Server) handleRoute(c *gin.Context) {
	origin := c.Query("origin")
	destination := c.Query("destination")

	switch {
	case origin == "" || destination == "":
		s.fail(c, http.StatusBadRequest, domain.ErrEmptyLocation)
		return
	case origin == destination:
		s.fail(c, http.StatusBadRequest, domain.ErrSameLocation)
		return
	}

	res, err := s.svc.Resolve(c.Request.Context(), origin, destination)
	if err != nil {
		s.fail(c, statusFor(err), err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (s *Server) handleNodes(c *gin.Context) {
	nodes, err := s.svc.Nodes(c.Request.Context())
	if err != nil {
		s.fail(c, statusFor(err), err)
		return
	}

	names := make([]string, len(nodes))
	for i, n := range nodes {
		names[i] = n.Name
	}
	c.JSON(http.StatusOK, nodesBody{Nodes: names})
}

func (s *Server) handleStats(c *gin.Context) {
	top := stats.DefaultTop
	if raw := c.Query("top"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, errorBody{Error: "top must be a positive integer"})
			return
		}
		top = n
	}

	st, err := s.svc.Stats(c.Request.Context(), top)
	if err != nil {
		s.fail(c, statusFor(err), err)
		return
	}
	c.JSON(http.StatusOK, st)
}

func (s *Server) handleHealth(c *gin.Context) {
	if err := s.svc.Ping(c.Request.Context()); err != nil {
		s.fail(c, http.StatusServiceUnavailable, err)
		return
	}
	c.JSON(http.StatusOK, healthBody{Status: "ok"})
}

// fail writes an error response. Server-side failures are logged with the full chain.
func (s *Server) fail(c *gin.Context, status int, err error) {
	if status >= http.StatusInternalServerError {
		s.logger.Error(err)
	}

	msg := err.Error()
	if errors.Is(err, domain.ErrStoreUnavailable) {
		msg = domain.ErrStoreUnavailable.Error()
	}
	c.AbortWithStatusJSON(status, errorBody{Error: msg, RequestID: c.GetString(headerRequestID)})
}

func statusFor(err error) int {
	if errors.Is(err, domain.ErrStoreUnavailable) {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}
