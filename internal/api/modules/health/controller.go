package health

import (
	"github.com/finresearch/bigdata-agent/internal/api/apitypes"
	"github.com/gin-gonic/gin"
)

// Return status of the API
func getStatus(c *gin.Context) {
	res := apitypes.NewSuccessResponse("OK", nil)
	c.JSON(res.AsGinResponse())
}
