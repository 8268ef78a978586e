package model

// AIFilterLogEntity represents the ai_filter_logs table entity, an
// append-mostly audit trail of flagged content.
type AIFilterLogEntity struct {
	ID          uint64 `db:"id" json:"id"`
	ContentType string `db:"content_type" json:"content_type"`
	ContentID   uint64 `db:"content_id" json:"content_id"`
	FlaggedFor  string `db:"flagged_for" json:"flagged_for"`
}

// AILogFilter narrows log listings; only allow-listed keys translate to SQL.
type AILogFilter struct {
	ContentType string
	FlaggedFor  string
	Page        int
	Limit       int
}

type CreateAILogRequest struct {
	ContentType string `json:"content_type" validate:"required,oneof=review community_post community_comment"`
	ContentID   uint64 `json:"content_id" validate:"required,gt=0"`
	FlaggedFor  string `json:"flagged_for" validate:"required"`
}

// AILogPatch carries the mutable log fields; nil means keep current.
type AILogPatch struct {
	ContentType *string `json:"content_type" validate:"omitempty,oneof=review community_post community_comment"`
	ContentID   *uint64 `json:"content_id" validate:"omitempty,gt=0"`
	FlaggedFor  *string `json:"flagged_for"`
}

func (p *AILogPatch) Empty() bool {
	return p.ContentType == nil && p.ContentID == nil && p.FlaggedFor == nil
}
