package blog

import (
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/trezcool/maneno/core"
)

const defaultCategory = "vocabulary"

// Post is a blog article. List queries omit Content (summary projection);
// detail reads by slug carry the whole article.
type Post struct {
	ID         string           `json:"id" db:"id"`
	Title      string           `json:"title" db:"title"`
	Slug       string           `json:"slug" db:"slug"`
	Content    string           `json:"content,omitempty" db:"content"`
	Excerpt    null.String      `json:"excerpt" db:"excerpt"`
	CoverImage null.String      `json:"coverImage" db:"cover_image"`
	Category   string           `json:"category" db:"category"`
	Tags       core.StringSlice `json:"tags" db:"tags"`
	Published  bool             `json:"published" db:"published"`
	Featured   bool             `json:"featured" db:"featured"`
	ReadTime   null.Int         `json:"readTime" db:"read_time"` // minutes
	CreatedAt  time.Time        `json:"createdAt" db:"created_at"` // UTC
	UpdatedAt  time.Time        `json:"updatedAt" db:"updated_at"` // UTC
}

// NewPost contains information needed to create a new Post.
type NewPost struct {
	Title      string   `json:"title" validate:"required"`
	Slug       string   `json:"slug" validate:"required"`
	Content    string   `json:"content" validate:"required"`
	Excerpt    string   `json:"excerpt"`
	CoverImage string   `json:"coverImage" validate:"omitempty,url"`
	Category   string   `json:"category"`
	Tags       []string `json:"tags"`
	Published  bool     `json:"published"`
	Featured   bool     `json:"featured"`
	ReadTime   *int     `json:"readTime" validate:"omitempty,min=1"`
}

func (np *NewPost) Validate(svc *Service) error {
	np.Title = core.CleanString(np.Title)
	np.Slug = core.CleanString(np.Slug, true /* lower */)
	np.Category = core.CleanString(np.Category, true /* lower */)

	if err := core.Validate.Struct(np); err != nil {
		return err
	}
	return svc.checkSlugUniqueness(np.Slug)
}

// QueryFilter applies an AND operation on its non-zero fields.
type QueryFilter struct {
	Published *bool  `query:"published"`
	Featured  bool   `query:"featured"`
	Category  string `query:"category"`
	Limit     int    `query:"limit"`
}

func (qf *QueryFilter) Clean() {
	qf.Category = core.CleanString(qf.Category, true /* lower */)
}
