package apitypes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Response is the envelope returned by every API endpoint
type Response struct {
	Status    int       `json:"status"`
	Message   string    `json:"message"`
	Error     string    `json:"error,omitempty"`
	Data      any       `json:"data,omitempty"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
}

// NewSuccessResponse creates a 200 response wrapping the given data
func NewSuccessResponse(message string, data any) Response {
	return Response{
		Status:    http.StatusOK,
		Message:   message,
		Data:      data,
		RequestID: uuid.NewString(),
		Timestamp: time.Now().UTC(),
	}
}

// NewErrorResponse creates an error response with the given status code
func NewErrorResponse(status int, message string, err error) Response {
	res := Response{
		Status:    status,
		Message:   message,
		RequestID: uuid.NewString(),
		Timestamp: time.Now().UTC(),
	}
	if err != nil {
		res.Error = err.Error()
	}
	return res
}

// AsGinResponse returns the response in the form gin's JSON method expects
func (r Response) AsGinResponse() (int, any) {
	return r.Status, r
}

// NoRouteHandler returns a standard 404 response for unregistered paths
func NoRouteHandler(c *gin.Context) {
	c.JSON(NewErrorResponse(http.StatusNotFound, "Route not found", nil).AsGinResponse())
}
