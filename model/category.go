package model

// CategoryEntity represents the categories table entity
type CategoryEntity struct {
	ID          uint64 `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description"`
	Img         string `db:"img" json:"img"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	Img         string `json:"img" validate:"required,url"`
}

// CategoryPatch carries the mutable category fields; nil means keep current.
type CategoryPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Img         *string `json:"img"`
}

func (p *CategoryPatch) Empty() bool {
	return p.Name == nil && p.Description == nil && p.Img == nil
}
