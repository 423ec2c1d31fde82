package models

// User is the authenticated account as reported by the auth backend.
type User struct {
	Id       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// AnalysisResult is what an emotion analysis produces, remote or local.
type AnalysisResult struct {
	Emotion   EmotionScores `json:"emotion"`
	Sentiment float64       `json:"sentiment"`
}
