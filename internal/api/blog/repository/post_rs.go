package blogRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"RBCDigital/internal/api/blog"
	"RBCDigital/internal/entity"
	contextPkg "RBCDigital/pkg/context"
)

type BlogPostDB struct {
	ID               sql.NullString `db:"id"`
	Title            sql.NullString `db:"title"`
	Slug             sql.NullString `db:"slug"`
	Content          sql.NullString `db:"content"`
	Excerpt          sql.NullString `db:"excerpt"`
	Author           sql.NullString `db:"author"`
	CoverImage       sql.NullString `db:"cover_image"`
	AdditionalImages pq.StringArray `db:"additional_images"`
	AudioURL         sql.NullString `db:"audio_url"`
	ReadingTime      sql.NullString `db:"reading_time"`
	Tags             pq.StringArray `db:"tags"`
	ExternalID       sql.NullString `db:"external_id"`
	PublishedAt      sql.NullTime   `db:"published_at"`
	CreatedAt        time.Time      `db:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at"`
}

func (r *postsRepository) CreatePost(ctx context.Context, post entity.BlogPost) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryCreatePost, r.postArgs(post))
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreatePost named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		if mapped := mapUniqueViolation(err); mapped != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"slug":       post.Slug,
				"error":      err.Error(),
			}).Warn("CreatePost unique constraint violation")
			return mapped
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating blog post")
		return err
	}

	return nil
}

func (r *postsRepository) GetPostBySlug(ctx context.Context, slug string) (entity.BlogPost, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var post BlogPostDB

	argsKV := map[string]interface{}{
		"slug": slug,
	}

	query, args, err := sqlx.Named(queryGetPostBySlug, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetPostBySlug named query preparation err")
		return entity.BlogPost{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&post); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"slug":       slug,
			}).Warn("GetPostBySlug no rows found")
			return entity.BlogPost{}, blog.ErrPostNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetPostBySlug execution err")
		return entity.BlogPost{}, err
	}

	return r.makePost(post), nil
}

func (r *postsRepository) GetPostByExternalID(ctx context.Context, externalID string) (entity.BlogPost, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var post BlogPostDB

	argsKV := map[string]interface{}{
		"external_id": externalID,
	}

	query, args, err := sqlx.Named(queryGetPostByExternalID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetPostByExternalID named query preparation err")
		return entity.BlogPost{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&post); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.BlogPost{}, blog.ErrPostNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetPostByExternalID execution err")
		return entity.BlogPost{}, err
	}

	return r.makePost(post), nil
}

func (r *postsRepository) GetAllPosts(ctx context.Context, limit, offset int) ([]entity.BlogPost, int, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var postsList []BlogPostDB
	var total int

	countQuery, countArgs, err := sqlx.Named(queryCountAllPosts, map[string]interface{}{})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountAllPosts named query preparation err")
		return nil, 0, err
	}

	countQuery = r.q.Rebind(countQuery)

	if err := r.q.QueryRowxContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountAllPosts execution err")
		return nil, 0, err
	}

	argsKV := map[string]interface{}{
		"limit":  limit,
		"offset": offset,
	}

	query, args, err := sqlx.Named(queryGetAllPosts, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllPosts named query preparation err")
		return nil, 0, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &postsList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllPosts execution err")
		return nil, 0, err
	}

	posts := make([]entity.BlogPost, 0, len(postsList))
	for _, postDB := range postsList {
		posts = append(posts, r.makePost(postDB))
	}

	return posts, total, nil
}

func (r *postsRepository) UpdatePost(ctx context.Context, post entity.BlogPost) error {
	requestID := contextPkg.GetRequestID(ctx)

	argsKV := r.postArgs(post)
	argsKV["updated_at"] = time.Now()
	delete(argsKV, "created_at")
	delete(argsKV, "slug")
	delete(argsKV, "external_id")

	query, args, err := sqlx.Named(queryUpdatePost, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdatePost named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdatePost execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdatePost rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         post.ID,
		}).Warn("UpdatePost no rows affected")
		return blog.ErrPostNotFound
	}

	return nil
}

func (r *postsRepository) DeletePost(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeletePost, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeletePost named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeletePost execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeletePost rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Warn("DeletePost no rows affected")
		return blog.ErrPostNotFound
	}

	return nil
}

// UpsertByExternalID inserts or refreshes the local mirror row for a CMS
// entry, keyed by external_id.
func (r *postsRepository) UpsertByExternalID(ctx context.Context, post entity.BlogPost) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryUpsertByExternalID, r.postArgs(post))
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpsertByExternalID named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		if mapped := mapUniqueViolation(err); mapped != nil {
			r.log.WithFields(logrus.Fields{
				"request_id":  requestID,
				"external_id": post.ExternalID,
				"slug":        post.Slug,
				"error":       err.Error(),
			}).Warn("UpsertByExternalID unique constraint violation")
			return mapped
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpsertByExternalID execution err")
		return err
	}

	return nil
}

func (r *postsRepository) postArgs(post entity.BlogPost) map[string]interface{} {
	var externalID interface{}
	if post.ExternalID != "" {
		externalID = post.ExternalID
	}

	var publishedAt interface{}
	if !post.PublishedAt.IsZero() {
		publishedAt = post.PublishedAt
	}

	return map[string]interface{}{
		"id":                post.ID,
		"title":             post.Title,
		"slug":              post.Slug,
		"content":           post.Content,
		"excerpt":           post.Excerpt,
		"author":            post.Author,
		"cover_image":       post.CoverImage,
		"additional_images": pq.StringArray(post.AdditionalImages),
		"audio_url":         post.AudioURL,
		"reading_time":      post.ReadingTime,
		"tags":              pq.StringArray(post.Tags),
		"external_id":       externalID,
		"published_at":      publishedAt,
		"created_at":        post.CreatedAt,
		"updated_at":        post.UpdatedAt,
	}
}

func (r *postsRepository) makePost(post BlogPostDB) entity.BlogPost {
	var publishedAt time.Time
	if post.PublishedAt.Valid {
		publishedAt = post.PublishedAt.Time
	}

	return entity.BlogPost{
		ID:               post.ID.String,
		Title:            post.Title.String,
		Slug:             post.Slug.String,
		Content:          post.Content.String,
		Excerpt:          post.Excerpt.String,
		Author:           post.Author.String,
		CoverImage:       post.CoverImage.String,
		AdditionalImages: []string(post.AdditionalImages),
		AudioURL:         post.AudioURL.String,
		ReadingTime:      post.ReadingTime.String,
		Tags:             []string(post.Tags),
		ExternalID:       post.ExternalID.String,
		PublishedAt:      publishedAt,
		CreatedAt:        post.CreatedAt,
		UpdatedAt:        post.UpdatedAt,
	}
}

func mapUniqueViolation(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != "23505" {
		return nil
	}

	switch pqErr.Constraint {
	case "blog_posts_slug_key":
		return blog.ErrSlugTaken
	case "blog_posts_external_id_key":
		return blog.ErrExternalLinkTaken
	default:
		return blog.ErrInvalidPostData
	}
}
