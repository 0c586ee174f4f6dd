package domain

import "time"

type SocialPost struct {
	ID        int       `json:"id"`
	Text      string    `json:"text"`
	User      string    `json:"user"`
	Platform  string    `json:"platform"`
	Timestamp time.Time `json:"timestamp"`
	Location  Location  `json:"location"`
}

type AnalyzeRequest struct {
	Text string `json:"text" validate:"required"`
}
