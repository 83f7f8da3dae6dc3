package agent

import (
	"context"
	"fmt"

	"github.com/mjoubert/finboard"
	"github.com/mjoubert/finboard/quote"
	"github.com/mjoubert/finboard/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// newFacilitator creates the expert in charge of the conversation.
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skills from the Tools and ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here primarily to understand his portfolio: what it is worth,
			what taxes a sale would cost, where his prices might go.

			Devise a plan of questions to ask each expert and come up with the best response to the user's request.

			The user will assume that you know his holdings, check the portfolio first to understand what they are.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewAnalyst is the market analyst, grounded in Google Search.
func NewAnalyst() *Expert {
	return &Expert{
		Name: "Analyst",
		Description: `This is an expert market analyst,
		very well aware of financial products and institutions,
		and of the latest news about companies and funds.
		Ask the Analyst whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert market analyst. You can search and find anything related to
			financial institutions, companies, markets and funds. You leverage Google Search to
			ground your assertions in a solid truth.
			You can get the latest news too, and you know how to relate them to the user's request.
				`}}},
		},
	}
}

// NewAdvisor is the portfolio advisor: it answers through the calculation
// engine, over the user's actual portfolio and live quotes.
func NewAdvisor(p finboard.Portfolio, src finboard.QuoteProvider) *Expert {
	lib := advisorFunctions(p, src)

	return &Expert{
		Name: "Advisor",
		Description: `This is the portfolio Advisor. He has access to the user's actual
		portfolio and to live market data. He can value the portfolio, estimate
		capital-gains taxes on a position, find tax-loss-harvesting candidates,
		summarize the market and forecast a ticker's price.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are the advisor in charge of the user's portfolio.
				You know how to use the Tools to compute relevant figures about the user's wealth.
				You are part of a team of experts; yours is everything computed from the user's
				own positions. Pardon their approximate language and figure out what they meant.

				All tax figures are simplified estimates, always say so when you quote one.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements Function from a declaration and a closure.
type Func struct {
	Decl *genai.FunctionDeclaration
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func errResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

func okResponse(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"output": output,
		},
	}
}

func stringArg(args map[string]any, name string) (string, error) {
	v, ok := args[name]
	if !ok {
		return "", fmt.Errorf("missing argument %q", name)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("argument %q is not a string but %T", name, v)
	}
	return s, nil
}

// advisorFunctions binds the engine operations to the advisor's toolbox.
func advisorFunctions(p finboard.Portfolio, src finboard.QuoteProvider) []Function {
	valuation := &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Valuation",
			Description: `Valuation prices every position of the user's portfolio and returns
			a markdown table with values, daily changes and allocation percentages.`,
			Parameters: &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted valuation of the whole portfolio.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			v, err := finboard.ValuePortfolio(p, src)
			if err != nil {
				return errResponse(id, "Valuation", err)
			}
			return okResponse(id, "Valuation", renderer.ValuationMarkdown(v))
		},
	}

	market := &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "MarketSummary",
			Description: `MarketSummary returns the current level and daily change of the major
			indices, plus today's most volatile stocks of a fixed watchlist.`,
			Parameters: &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted market summary.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			out := renderer.MarketSummaryMarkdown(quote.MarketSummary(src)) +
				"\n" + renderer.TrendingMarkdown(quote.Trending(src, 5))
			return okResponse(id, "MarketSummary", out)
		},
	}

	gains := &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "CapitalGains",
			Description: `CapitalGains estimates the tax the user would pay selling one of his
			equity positions today, using its recorded cost basis and holding period.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"ticker": {
						Type:        genai.TypeString,
						Description: "The ticker of the equity position, e.g. AAPL.",
					},
				},
				Required: []string{"ticker"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted capital-gains estimate.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			ticker, err := stringArg(args, "ticker")
			if err != nil {
				return errResponse(id, "CapitalGains", err)
			}
			h, ok := p.Equities[ticker]
			if !ok {
				return errResponse(id, "CapitalGains", fmt.Errorf("no equity position %q in the portfolio", ticker))
			}
			current := h.CurrentPrice
			if current.IsZero() {
				history, err := src.History(ticker, 2)
				if err != nil || len(history) == 0 {
					return errResponse(id, "CapitalGains", fmt.Errorf("no current price for %q", ticker))
				}
				current = finboard.NewMoney(history[len(history)-1].Close, "USD")
			}
			r, err := finboard.CapitalGains(h.PurchasePrice, current, h.Quantity, h.HoldingDays, finboard.DefaultRates())
			if err != nil {
				return errResponse(id, "CapitalGains", err)
			}
			return okResponse(id, "CapitalGains", renderer.CapitalGainsMarkdown(ticker, r))
		},
	}

	harvest := &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Harvest",
			Description: `Harvest scans the portfolio for tax-loss-harvesting candidates,
			positions whose unrealized loss could offset taxable income.`,
			Parameters: &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted list of harvesting candidates.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			opps := finboard.HarvestOpportunities(p, finboard.DefaultRates())
			return okResponse(id, "Harvest", renderer.HarvestMarkdown(opps))
		},
	}

	forecast := &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Forecast",
			Description: `Forecast runs a Monte Carlo price simulation for a ticker over the
			next days, calibrated on its price history.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"ticker": {
						Type:        genai.TypeString,
						Description: "The ticker to forecast, e.g. AAPL.",
					},
					"days": {
						Type:        genai.TypeNumber,
						Description: "The horizon in business days, 30 by default.",
					},
				},
				Required: []string{"ticker"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted forecast with confidence bands.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			ticker, err := stringArg(args, "ticker")
			if err != nil {
				return errResponse(id, "Forecast", err)
			}
			horizon := 30
			if v, ok := args["days"].(float64); ok && v > 0 {
				horizon = int(v)
			}
			history, err := src.History(ticker, 180)
			if err != nil {
				return errResponse(id, "Forecast", err)
			}
			r, err := finboard.Forecast(ticker, history, horizon, finboard.DefaultForecastPaths, finboard.DefaultForecastConfidence, nil)
			if err != nil {
				return errResponse(id, "Forecast", err)
			}
			return okResponse(id, "Forecast", renderer.ForecastMarkdown(r))
		},
	}

	return []Function{valuation, market, gains, harvest, forecast}
}
