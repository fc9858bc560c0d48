package models

// Disclaimer is the exact sentence every quality insight must carry,
// regardless of what the model produced.
const Disclaimer = "This insight is general guidance and not a technical or engineering assessment."

// Risk levels a quality insight may report.
const (
	RiskLow    = "LOW"
	RiskMedium = "MEDIUM"
	RiskHigh   = "HIGH"
)

// QualityInsight is the structured output of the quality-insight mode.
type QualityInsight struct {
	RiskLevel           string   `json:"riskLevel"`
	RiskInterpretation  string   `json:"riskInterpretation"`
	KeyPoints           []string `json:"keyPoints"`
	Actions             []string `json:"actions"`
	ClarifyingQuestions []string `json:"clarifyingQuestions"`
	Disclaimer          string   `json:"disclaimer"`
}

// AnalysisResult is a free-text analysis plus its rendered HTML form.
// RenderedMarkup is empty only when PlainText is empty.
type AnalysisResult struct {
	PlainText      string `json:"plain_text"`
	RenderedMarkup string `json:"rendered_markup"`
}
