package research

import (
	"context"
	"time"

	"github.com/finresearch/bigdata-agent/internal/search"
	"github.com/finresearch/bigdata-agent/pkg/agent"
	"github.com/finresearch/bigdata-agent/pkg/utils"
	"github.com/nlpodyssey/openai-agents-go/agents"
)

// ResearchAgent exposes the financial-data search operations as tools for
// the agent framework: news, transcripts, filings, universal search, and
// knowledge-graph entity lookup
type ResearchAgent struct {
	agent      *agents.Agent
	config     *utils.Config
	search     *search.Service
	basePrompt string
}

// NewResearchAgent creates a new research agent on top of a search service.
// The service owns the vendor session; the agent only translates tool calls.
func NewResearchAgent(svc *search.Service, config *utils.Config) (*ResearchAgent, error) {
	if config == nil {
		config = agent.LoadAgentConfig("research-agent")
	}

	ra := &ResearchAgent{
		config: config,
		search: svc,
	}

	// Load instructions from file with fallback to the embedded version
	path := config.Get("RESEARCH_SYSPROMPT_PATH")
	ra.basePrompt = defaultInstructions
	if path != "" {
		ra.basePrompt = utils.LoadPromptWithFallback(path, defaultInstructions)
	}

	// Create the underlying agent
	ra.agent = agents.New("research-agent").
		WithModel(config.Get("MODEL"))

	// Register tools
	ra.registerTools()

	return ra, nil
}

// Agent returns the underlying openai-agents-go instance with instructions
// rebuilt against the current wall clock, so named date windows in the
// model's tool calls line up with today
func (ra *ResearchAgent) Agent() *agents.Agent {
	now := time.Now()

	builder := agent.NewPromptBuilder(ra.basePrompt)
	builder.AddContext("Today's date: " + now.Format("2006-01-02"))
	builder.AddContext("Time: " + now.Format("15:04:05 MST"))

	return ra.agent.WithInstructions(builder.Build())
}

// ID returns the agent identifier
func (ra *ResearchAgent) ID() string {
	return "research-agent"
}

// Config returns the agent configuration
func (ra *ResearchAgent) Config() *utils.Config {
	return ra.config
}

// ShouldDryRun determines if the agent should run tools without touching
// the vendor service
func (ra *ResearchAgent) ShouldDryRun(ctx context.Context) bool {
	return ra.config.GetBool("DRY_RUN")
}
