package search

import (
	"github.com/finresearch/bigdata-agent/internal/search"
	"github.com/gin-gonic/gin"
)

var service *search.Service

// Init wires the search service into the module's controllers
func Init(svc *search.Service) {
	service = svc
}

// Register routes for the search module
func RegisterRoutes(g *gin.RouterGroup) {
	group := g.Group("/search")

	group.POST("/news", PostNewsSearch)              // Search news coverage
	group.POST("/transcripts", PostTranscriptSearch) // Search call transcripts
	group.POST("/filings", PostFilingSearch)         // Search regulatory filings
	group.POST("/universal", PostUniversalSearch)    // Search across all content
	group.POST("/entities", PostEntityLookup)        // Look up knowledge graph entities
}
