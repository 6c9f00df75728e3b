package blog

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/maneno/core"
)

var (
	// errors
	ErrNotFound   = errors.New("post not found")
	ErrSlugExists = errors.New("a post with this slug already exists")
)

const defaultLimit = 10

type (
	Repository interface {
		CheckSlugUniqueness(ctx context.Context, slug string) error
		// FilterPosts returns summary projections (no Content) ordered by
		// creation time, most recent first.
		FilterPosts(ctx context.Context, filter QueryFilter) ([]Post, error)
		GetPostBySlug(ctx context.Context, slug string) (Post, error)
		CreatePost(ctx context.Context, post Post) (Post, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) checkSlugUniqueness(slug string) error {
	if err := svc.repo.CheckSlugUniqueness(context.Background(), slug); err != nil {
		if err == ErrSlugExists {
			return core.NewValidationError(err, core.FieldError{Field: "slug", Error: err.Error()})
		}
		return err
	}
	return nil
}

func (svc *Service) Filter(ctx context.Context, filter QueryFilter) ([]Post, error) {
	filter.Clean()
	if filter.Limit <= 0 {
		filter.Limit = defaultLimit
	}
	posts, err := svc.repo.FilterPosts(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "filtering posts")
	}
	return posts, nil
}

func (svc *Service) GetBySlug(ctx context.Context, slug string) (Post, error) {
	return svc.repo.GetPostBySlug(ctx, core.CleanString(slug, true /* lower */))
}

func (svc *Service) Create(ctx context.Context, np NewPost) (Post, error) {
	now := time.Now().UTC()
	post := Post{
		Title:      np.Title,
		Slug:       np.Slug,
		Content:    np.Content,
		Excerpt:    null.NewString(np.Excerpt, np.Excerpt != ""),
		CoverImage: null.NewString(np.CoverImage, np.CoverImage != ""),
		Category:   np.Category,
		Tags:       core.StringSlice(np.Tags),
		Published:  np.Published,
		Featured:   np.Featured,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if np.ReadTime != nil {
		post.ReadTime = null.IntFrom(*np.ReadTime)
	}
	if post.Category == "" {
		post.Category = defaultCategory
	}
	if post.Tags == nil {
		post.Tags = core.StringSlice{}
	}
	return svc.repo.CreatePost(ctx, post)
}
