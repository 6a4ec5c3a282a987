package domain

// InsightsOutput is the structured output returned by the LLM.
// @Description LLM-generated commentary on a schedule.
type InsightsOutput struct {
	Summary         string   `json:"summary"`
	Observations    []string `json:"observations"`
	Recommendations []string `json:"recommendations"`
}

// InsightsContext is the payload sent to the LLM.
type InsightsContext struct {
	ScheduleName string           `json:"scheduleName"`
	View         ViewType         `json:"view"`
	From         string           `json:"from"`
	To           string           `json:"to"`
	Slots        []TimeSlot       `json:"slots"`
	Analysis     ScheduleAnalysis `json:"analysis"`
}

// InsightsResponse is the response for the insights endpoint.
// @Description Schedule analysis with LLM commentary.
type InsightsResponse struct {
	Analysis ScheduleAnalysis `json:"analysis"`
	Insights InsightsOutput   `json:"insights"`
	// Trace ID of the request, when tracing is enabled
	TraceID string `json:"traceId,omitempty"`
}
