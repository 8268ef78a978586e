package constant

// Remedy moderation status. Only approved remedies are visible to non-owners.
const (
	RemedyStatusPending  = "pending"
	RemedyStatusApproved = "approved"
)

// Content types recognized by the AI filter log.
const (
	ContentTypeReview           = "review"
	ContentTypeCommunityPost    = "community_post"
	ContentTypeCommunityComment = "community_comment"
)

var ValidContentTypes = []string{
	ContentTypeReview,
	ContentTypeCommunityPost,
	ContentTypeCommunityComment,
}

// Reaction directions.
type ReactionDirection int

const (
	ReactionLike ReactionDirection = iota
	ReactionDislike
)

// Pagination defaults for list endpoints.
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// TrendingLimit caps the trending remedies listing.
const TrendingLimit = 100
