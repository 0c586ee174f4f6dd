package domain

type VoteType string

const (
	VoteUp   VoteType = "upvote"
	VoteDown VoteType = "downvote"
)

type VoteRequest struct {
	VoteType VoteType `json:"voteType" validate:"required,oneof=upvote downvote"`
}

type VoteResult struct {
	Score     int `json:"score"`
	Upvotes   int `json:"upvotes"`
	Downvotes int `json:"downvotes"`
}
