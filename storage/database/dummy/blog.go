package dummydb

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/trezcool/maneno/core/blog"
)

type blogRepository struct {
	db *blogTable
}

var _ blog.Repository = (*blogRepository)(nil) // interface compliance check

func NewBlogRepository(db *DB) blog.Repository {
	return &blogRepository{db: db.blog}
}

func (repo *blogRepository) CheckSlugUniqueness(_ context.Context, slug string) error {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, post := range repo.db.table {
		if post.Slug == slug {
			return blog.ErrSlugExists
		}
	}
	return nil
}

func (repo *blogRepository) FilterPosts(_ context.Context, filter blog.QueryFilter) ([]blog.Post, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	posts := make([]blog.Post, 0, len(repo.db.table))
	for _, post := range repo.db.table {
		if filter.Published != nil && post.Published != *filter.Published {
			continue
		}
		if filter.Featured && !post.Featured {
			continue
		}
		if filter.Category != "" && post.Category != filter.Category {
			continue
		}
		summary := *post
		summary.Content = "" // summary projection
		posts = append(posts, summary)
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].CreatedAt.After(posts[j].CreatedAt) })
	if len(posts) > filter.Limit {
		posts = posts[:filter.Limit]
	}
	return posts, nil
}

func (repo *blogRepository) GetPostBySlug(_ context.Context, slug string) (blog.Post, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, post := range repo.db.table {
		if post.Slug == slug {
			return *post, nil
		}
	}
	return blog.Post{}, blog.ErrNotFound
}

func (repo *blogRepository) CreatePost(_ context.Context, post blog.Post) (blog.Post, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	for _, p := range repo.db.table {
		if p.Slug == post.Slug {
			return blog.Post{}, blog.ErrSlugExists
		}
	}
	post.ID = uuid.New().String()
	repo.db.table[post.ID] = &post
	return post, nil
}
