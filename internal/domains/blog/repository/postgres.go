package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/chrisakin/Katherine-Akintade-Website/internal/domains/blog"
	"github.com/chrisakin/Katherine-Akintade-Website/internal/infrastructure/database"
)

type postgresRepository struct {
	db *database.PostgresDB
}

func NewPostgresRepository(db *database.PostgresDB) blog.Repository {
	return &postgresRepository{db: db}
}

const postColumns = `id, title, slug, content, excerpt, category, published, published_at, created_at`

func (r *postgresRepository) List(ctx context.Context) ([]blog.BlogPost, error) {
	query := `SELECT ` + postColumns + ` FROM blog_posts ORDER BY created_at DESC`
	return r.queryPosts(ctx, query)
}

func (r *postgresRepository) ListPublished(ctx context.Context) ([]blog.BlogPost, error) {
	query := `SELECT ` + postColumns + ` FROM blog_posts WHERE published = true ORDER BY created_at DESC`
	return r.queryPosts(ctx, query)
}

func (r *postgresRepository) Get(ctx context.Context, id uuid.UUID) (*blog.BlogPost, error) {
	query := `SELECT ` + postColumns + ` FROM blog_posts WHERE id = $1`
	return r.queryPost(ctx, query, id)
}

func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*blog.BlogPost, error) {
	query := `SELECT ` + postColumns + ` FROM blog_posts WHERE slug = $1 AND published = true`
	return r.queryPost(ctx, query, slug)
}

func (r *postgresRepository) Insert(ctx context.Context, post *blog.BlogPost) error {
	query := `
		INSERT INTO blog_posts (id, title, slug, content, excerpt, category, published, published_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.Pool.Exec(ctx, query,
		post.ID, post.Title, post.Slug, post.Content, post.Excerpt,
		post.Category, post.Published, post.PublishedAt, post.CreatedAt)
	return err
}

func (r *postgresRepository) Update(ctx context.Context, post *blog.BlogPost) error {
	query := `
		UPDATE blog_posts
		SET title = $2, slug = $3, content = $4, excerpt = $5, category = $6,
		    published = $7, published_at = $8
		WHERE id = $1`
	tag, err := r.db.Pool.Exec(ctx, query,
		post.ID, post.Title, post.Slug, post.Content, post.Excerpt,
		post.Category, post.Published, post.PublishedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return blog.ErrNotFound
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return blog.ErrNotFound
	}
	return nil
}

func (r *postgresRepository) queryPost(ctx context.Context, query string, arg interface{}) (*blog.BlogPost, error) {
	var post blog.BlogPost
	err := r.db.Pool.QueryRow(ctx, query, arg).Scan(
		&post.ID, &post.Title, &post.Slug, &post.Content, &post.Excerpt,
		&post.Category, &post.Published, &post.PublishedAt, &post.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, blog.ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (r *postgresRepository) queryPosts(ctx context.Context, query string) ([]blog.BlogPost, error) {
	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []blog.BlogPost
	for rows.Next() {
		var post blog.BlogPost
		if err := rows.Scan(
			&post.ID, &post.Title, &post.Slug, &post.Content, &post.Excerpt,
			&post.Category, &post.Published, &post.PublishedAt, &post.CreatedAt); err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}
