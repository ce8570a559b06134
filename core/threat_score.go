package core

// ThreatScore holds the component scores computed for a campaign. By
// convention there is exactly one score per campaign; the store resolves
// lookups by campaign id and returns the first match.
type ThreatScore struct {
	ID                     string                 `json:"id"`
	CampaignID             string                 `json:"campaign_id"`
	CoordinationScore      float64                `json:"coordination_score"`
	BotInvolvementScore    float64                `json:"bot_involvement_score"`
	ContentSimilarityScore float64                `json:"content_similarity_score"`
	TimingPatternScore     float64                `json:"timing_pattern_score"`
	NetworkDensityScore    float64                `json:"network_density_score"`
	OverallThreatScore     float64                `json:"overall_threat_score"`
	DetectionMethod        string                 `json:"detection_method"`
	AnalyzedAt             string                 `json:"analyzed_at"`
	AnalysisMetadata       map[string]interface{} `json:"analysis_metadata,omitempty"`
}

// Clone returns a deep copy of the threat score.
func (t ThreatScore) Clone() ThreatScore {
	c := t
	if t.AnalysisMetadata != nil {
		c.AnalysisMetadata = make(map[string]interface{}, len(t.AnalysisMetadata))
		for k, v := range t.AnalysisMetadata {
			c.AnalysisMetadata[k] = v
		}
	}
	return c
}
