package sqlxrepos

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/trezcool/maneno/core"
	"github.com/trezcool/maneno/core/blog"
)

const pqUniqueViolation = "23505"

var postOrdering = core.DBOrdering{Field: "created_at"} // newest first

type blogRepository struct {
	db *sqlx.DB
}

var _ blog.Repository = (*blogRepository)(nil) // interface compliance check

func NewBlogRepository(db *sqlx.DB) *blogRepository {
	return &blogRepository{db: db}
}

func (repo *blogRepository) CheckSlugUniqueness(ctx context.Context, slug string) error {
	var exists bool
	err := repo.db.GetContext(ctx, &exists, "SELECT EXISTS (SELECT 1 FROM blog_posts WHERE slug = $1)", slug)
	if err != nil {
		return errors.Wrap(err, "checking slug uniqueness")
	}
	if exists {
		return blog.ErrSlugExists
	}
	return nil
}

func (repo *blogRepository) FilterPosts(ctx context.Context, filter blog.QueryFilter) ([]blog.Post, error) {
	var (
		conds []string
		args  []interface{}
	)
	addCond := func(cond string, arg interface{}) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.Published != nil {
		addCond("published = $%d", *filter.Published)
	}
	if filter.Featured {
		addCond("featured = $%d", true)
	}
	if filter.Category != "" {
		addCond("category = $%d", filter.Category)
	}

	// summary projection: content is omitted from list queries
	query := `
		SELECT id, title, slug, excerpt, cover_image, category, tags,
			published, featured, read_time, created_at, updated_at
		FROM blog_posts`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	args = append(args, filter.Limit)
	query += fmt.Sprintf(" ORDER BY %s LIMIT $%d", postOrdering, len(args))

	posts := make([]blog.Post, 0, filter.Limit)
	if err := repo.db.SelectContext(ctx, &posts, query, args...); err != nil {
		return nil, errors.Wrap(err, "querying posts")
	}
	return posts, nil
}

func (repo *blogRepository) GetPostBySlug(ctx context.Context, slug string) (blog.Post, error) {
	var post blog.Post
	err := repo.db.GetContext(ctx, &post, "SELECT * FROM blog_posts WHERE slug = $1", slug)
	if err != nil {
		if err == sql.ErrNoRows {
			return blog.Post{}, blog.ErrNotFound
		}
		return blog.Post{}, errors.Wrap(err, "getting post")
	}
	return post, nil
}

func (repo *blogRepository) CreatePost(ctx context.Context, post blog.Post) (blog.Post, error) {
	post.ID = uuid.New().String()

	query := `
		INSERT INTO blog_posts (
			id, title, slug, content, excerpt, cover_image, category, tags,
			published, featured, read_time, created_at, updated_at
		) VALUES (
			:id, :title, :slug, :content, :excerpt, :cover_image, :category, :tags,
			:published, :featured, :read_time, :created_at, :updated_at
		)`
	if _, err := repo.db.NamedExecContext(ctx, query, post); err != nil {
		if pqErr, ok := errors.Cause(err).(*pq.Error); ok && string(pqErr.Code) == pqUniqueViolation {
			return blog.Post{}, blog.ErrSlugExists
		}
		return blog.Post{}, errors.Wrap(err, "inserting post")
	}
	return post, nil
}
