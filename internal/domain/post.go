package domain

import (
	"time"

	"github.com/google/uuid"
)

type PostType string

const (
	PostHazard     PostType = "hazard"
	PostDiscussion PostType = "discussion"
	PostNews       PostType = "news"
	PostUpdate     PostType = "update"
)

type PostStatus string

const (
	PostReported   PostStatus = "reported"
	PostVerified   PostStatus = "verified"
	PostInProgress PostStatus = "in_progress"
	PostResolved   PostStatus = "resolved"
	PostFalseAlarm PostStatus = "false_alarm"
)

type MediaKind string

const (
	MediaImage    MediaKind = "image"
	MediaVideo    MediaKind = "video"
	MediaDocument MediaKind = "document"
)

type Media struct {
	URL     string    `json:"url"`
	Kind    MediaKind `json:"kind"`
	Caption string    `json:"caption,omitempty"`
}

// Votes holds the two disjoint voter sets and the derived score.
// Invariant: a user id appears in at most one of Upvoters/Downvoters,
// and Score == len(Upvoters) - len(Downvoters).
type Votes struct {
	Upvoters   []uuid.UUID `json:"upvotes"`
	Downvoters []uuid.UUID `json:"downvotes"`
	Score      int         `json:"score"`
}

type Shares struct {
	Count int         `json:"count"`
	Users []uuid.UUID `json:"users"`
}

type Annotation struct {
	IsDisasterRelated bool     `json:"isDisasterRelated"`
	Confidence        float64  `json:"confidence"`
	Keywords          []string `json:"keywords"`
	Sentiment         string   `json:"sentiment"`
	Urgency           string   `json:"urgency,omitempty"`
}

type Post struct {
	ID           uuid.UUID   `json:"id"`
	Title        string      `json:"title"`
	Content      string      `json:"content"`
	AuthorID     uuid.UUID   `json:"authorId"`
	Author       *PublicUser `json:"author,omitempty"`
	Type         PostType    `json:"type"`
	HazardType   HazardType  `json:"hazardType,omitempty"`
	Location     Location    `json:"location"`
	Severity     Severity    `json:"severity"`
	Status       PostStatus  `json:"status"`
	Media        []Media     `json:"media"`
	Votes        Votes       `json:"votes"`
	Shares       Shares      `json:"shares"`
	Comments     []Comment   `json:"comments,omitempty"`
	CommentCount int         `json:"commentCount"`
	Tags         []string    `json:"tags"`
	NLP          *Annotation `json:"nlpAnalysis,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

type CreatePostRequest struct {
	Title        string     `json:"title" validate:"required,max=200"`
	Content      string     `json:"content" validate:"required,max=5000"`
	Type         PostType   `json:"type" validate:"required,oneof=hazard discussion news update"`
	HazardType   HazardType `json:"hazardType" validate:"omitempty,oneof=tsunami storm_surge high_waves swell_surge coastal_current abnormal_sea other"`
	Lng          *float64   `json:"longitude" validate:"required,lng"`
	Lat          *float64   `json:"latitude" validate:"required,lat"`
	LocationName string     `json:"locationName"`
	Severity     Severity   `json:"severity" validate:"omitempty,oneof=low medium high critical"`
	Tags         []string   `json:"tags"`
	Media        []Media    `json:"media" validate:"max=5"`
}

type PostFilter struct {
	Type       PostType
	HazardType HazardType
	Severity   Severity
}

type ListPostsResponse struct {
	Posts       []*Post `json:"posts"`
	TotalPages  int     `json:"totalPages"`
	CurrentPage int     `json:"currentPage"`
}

type SharePostRequest struct {
	Platform string `json:"platform" validate:"required,oneof=twitter facebook"`
}

type ShareResponse struct {
	URL        string `json:"url"`
	ShareCount int    `json:"shareCount"`
}
