package domain

// LLMInsightsOutput contains the structured output from the LLM.
// @Description LLM-generated cycle insights.
type LLMInsightsOutput struct {
	// Summary of the current cycle (2-3 sentences)
	Summary string `json:"summary" example:"You are on day 10 of a 28 day cycle..."`
	// Observations about the recorded entries (2-5 items)
	Observations []string `json:"observations"`
	// Practical, non-medical suggestions (2-4 items)
	Guidance []string `json:"guidance"`
}

// InsightsContext is the context object sent to the LLM.
type InsightsContext struct {
	Latest     LatestPredictionResponse `json:"latest"`
	Stats      PeriodEntryStats         `json:"stats"`
	Conditions []Condition              `json:"conditions"`
}

// InsightsResponse is the response for the insights endpoint.
// @Description Cycle insights response.
type InsightsResponse struct {
	Latest   LatestPredictionResponse `json:"latest"`
	Stats    PeriodEntryStats         `json:"stats"`
	Insights LLMInsightsOutput        `json:"insights"`
	// Trace ID of the request, present when tracing is enabled
	TraceID string `json:"trace_id,omitempty"`
}
