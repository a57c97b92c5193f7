package logging

// Standard attribute keys shared by every fuzzyratio logger.
const (
	FieldComponent      = "component"
	FieldAlgorithm      = "algorithm"
	FieldDecisionType   = "decision_type"
	FieldDecisionResult = "decision_result"
	FieldDecisionReason = "decision_reason"
	FieldScore          = "score"
	FieldLengthRatio    = "length_ratio"
	FieldFlags          = "flags"
	FieldConfigPath     = "config_path"
)
