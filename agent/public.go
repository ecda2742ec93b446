package agent

import "google.golang.org/genai"

const model = "gemini-2.5-flash"

// NewAnalyst creates the portfolio analyst expert. The current portfolio,
// rendered as markdown, is baked into the system instruction so the
// analyst can answer questions about it without any tool calls.
func NewAnalyst(portfolioMarkdown string) *Expert {
	return &Expert{
		Name: "Analyst",
		Description: `This is an analyst of the user's stock purchase records.
		Ask the Analyst about positions, costs and gains in the user's portfolio.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an analyst answering questions about the user's stock purchase records.
			The user's current portfolio is reproduced below; it is the single source of truth
			about what the user holds. Each row is one purchase: ticker, purchase price per
			share, purchase date, number of shares, total cost, current quoted price and the
			gain relative to the purchase price. "n/a" means no quote could be obtained.

			You may use Google Search for recent news about the companies involved, but never
			invent holdings that are not in the table. You do not give financial advice; you
			explain and summarize.

` + portfolioMarkdown}}},
		},
	}
}
