package rest

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"golang.org/x/time/rate"
	"voyager.com/handparser/logging"
	"voyager.com/handparser/parser"
)

var restLogger = logging.GetZeroLogger("rest::rest", nil)

var limiter = rate.NewLimiter(rate.Limit(50), 100)

// APP error definition
type appError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type parseRequest struct {
	Room string `json:"room"`
	Text string `json:"text"`
}

// RunRestServer blocks serving the parse API on the given port.
func RunRestServer(portNo uint) error {
	return newRouter().Run(fmt.Sprintf(":%d", portNo))
}

func newRouter() *gin.Engine {
	r := gin.Default()
	r.GET("/ready", checkReady)
	r.POST("/parse", parseHand)
	return r
}

func checkReady(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}

func parseHand(c *gin.Context) {
	requestID := uuid.New().String()
	if !limiter.Allow() {
		c.JSON(http.StatusTooManyRequests, appError{
			Code:    http.StatusTooManyRequests,
			Message: "Too many requests",
		})
		return
	}

	var req parseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, appError{
			Code:    http.StatusBadRequest,
			Message: fmt.Sprintf("Invalid request body: %v", err),
		})
		return
	}

	hand, err := parser.Parse(req.Room, req.Text)
	if err != nil {
		restLogger.Error().
			Str(logging.RequestIDKey, requestID).
			Str(logging.RoomKey, req.Room).
			Msgf("Failed to parse hand: %v", err)
		c.JSON(http.StatusUnprocessableEntity, appError{
			Code:    http.StatusUnprocessableEntity,
			Message: err.Error(),
		})
		return
	}

	data, err := jsoniter.Marshal(hand)
	if err != nil {
		c.JSON(http.StatusInternalServerError, appError{
			Code:    http.StatusInternalServerError,
			Message: "Internal Server Error",
		})
		return
	}
	restLogger.Info().
		Str(logging.RequestIDKey, requestID).
		Str(logging.RoomKey, req.Room).
		Str(logging.HandIDKey, hand.ID).
		Msg("parsed hand")
	c.Data(http.StatusOK, "application/json", data)
}
