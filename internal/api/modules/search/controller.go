package search

import (
	"errors"
	"net/http"

	"github.com/finresearch/bigdata-agent/internal/api/apitypes"
	"github.com/finresearch/bigdata-agent/internal/bigdata"
	"github.com/finresearch/bigdata-agent/internal/search"
	"github.com/gin-gonic/gin"
)

// PostNewsSearch handles POST requests to search news coverage
func PostNewsSearch(c *gin.Context) {
	var req search.NewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(apitypes.NewErrorResponse(http.StatusBadRequest, "Could not parse request body", err).AsGinResponse())
		return
	}

	results, err := service.SearchNews(c.Request.Context(), req)
	if err != nil {
		c.JSON(searchErrorResponse(err).AsGinResponse())
		return
	}

	c.JSON(apitypes.NewSuccessResponse("News search completed", results).AsGinResponse())
}

// PostTranscriptSearch handles POST requests to search call transcripts
func PostTranscriptSearch(c *gin.Context) {
	var req search.TranscriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(apitypes.NewErrorResponse(http.StatusBadRequest, "Could not parse request body", err).AsGinResponse())
		return
	}

	results, err := service.SearchTranscripts(c.Request.Context(), req)
	if err != nil {
		c.JSON(searchErrorResponse(err).AsGinResponse())
		return
	}

	c.JSON(apitypes.NewSuccessResponse("Transcript search completed", results).AsGinResponse())
}

// PostFilingSearch handles POST requests to search regulatory filings
func PostFilingSearch(c *gin.Context) {
	var req search.FilingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(apitypes.NewErrorResponse(http.StatusBadRequest, "Could not parse request body", err).AsGinResponse())
		return
	}

	results, err := service.SearchFilings(c.Request.Context(), req)
	if err != nil {
		c.JSON(searchErrorResponse(err).AsGinResponse())
		return
	}

	c.JSON(apitypes.NewSuccessResponse("Filing search completed", results).AsGinResponse())
}

// PostUniversalSearch handles POST requests to search across all content
func PostUniversalSearch(c *gin.Context) {
	var req search.UniversalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(apitypes.NewErrorResponse(http.StatusBadRequest, "Could not parse request body", err).AsGinResponse())
		return
	}

	results, err := service.SearchAll(c.Request.Context(), req)
	if err != nil {
		c.JSON(searchErrorResponse(err).AsGinResponse())
		return
	}

	c.JSON(apitypes.NewSuccessResponse("Universal search completed", results).AsGinResponse())
}

// PostEntityLookup handles POST requests to look up knowledge graph entities
func PostEntityLookup(c *gin.Context) {
	var req search.KnowledgeGraphRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(apitypes.NewErrorResponse(http.StatusBadRequest, "Could not parse request body", err).AsGinResponse())
		return
	}

	entities, err := service.LookupEntities(c.Request.Context(), req)
	if err != nil {
		c.JSON(searchErrorResponse(err).AsGinResponse())
		return
	}

	c.JSON(apitypes.NewSuccessResponse("Entity lookup completed", entities).AsGinResponse())
}

// searchErrorResponse maps service errors to HTTP status codes
func searchErrorResponse(err error) apitypes.Response {
	var vErr *search.ValidationError
	if errors.As(err, &vErr) {
		return apitypes.NewErrorResponse(http.StatusBadRequest, "Invalid search request", err)
	}

	var aErr *bigdata.AuthenticationError
	if errors.As(err, &aErr) {
		return apitypes.NewErrorResponse(http.StatusUnauthorized, "Provider authentication failed", err)
	}

	var sErr *bigdata.SearchError
	if errors.As(err, &sErr) {
		return apitypes.NewErrorResponse(http.StatusBadGateway, "Provider search failed", err)
	}

	return apitypes.NewErrorResponse(http.StatusInternalServerError, "Search failed", err)
}
