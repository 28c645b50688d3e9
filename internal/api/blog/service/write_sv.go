package blogService

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"RBCDigital/internal/api/blog"
	"RBCDigital/internal/entity"
	"RBCDigital/pkg/cms"
	contextPkg "RBCDigital/pkg/context"
)

// CreatePost writes to the CMS when one is configured, otherwise straight to
// the persistent store. Unlike reads, a write with no healthy target fails.
func (s *blogService) CreatePost(ctx context.Context, req blog.CreatePostRequest) (blog.PostResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	slug := req.Slug
	if slug == "" {
		slug = s.utils.Slugify(req.Title)
	}

	readingTime := req.ReadingTime
	if readingTime == "" {
		readingTime = s.utils.EstimateReadingTime(req.Content)
	}

	var publishedAt time.Time
	if req.PublishedAt != "" {
		parsed, err := time.Parse(time.RFC3339, req.PublishedAt)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id":   requestID,
				"published_at": req.PublishedAt,
			}).Warn("Invalid publishedAt value")
			return blog.PostResponse{}, blog.ErrInvalidPostData
		}
		publishedAt = parsed
	}

	if s.source.Enabled() {
		created, err := s.source.CreatePost(ctx, cms.Post{
			Title:       req.Title,
			Slug:        slug,
			Content:     req.Content,
			Excerpt:     req.Excerpt,
			Author:      req.Author,
			CoverImage:  req.CoverImage,
			AudioURL:    req.AudioURL,
			ReadingTime: readingTime,
			Tags:        req.Tags,
			PublishedAt: publishedAt,
		})
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"source":     s.source.Name(),
				"slug":       slug,
				"error":      err.Error(),
			}).Error("Content source create failed")
			return blog.PostResponse{}, blog.ErrSourceUnavailable
		}

		s.mirrorPosts(requestID, []cms.Post{*created})
		s.invalidateCaches(ctx, created.Slug)

		record := s.fromCMS(*created)
		record.AdditionalImages = req.AdditionalImages
		return s.makeResponse(ctx, record), nil
	}

	repo, err := s.blogRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("No write target for blog post")
		return blog.PostResponse{}, err
	}
	defer repo.Rollback()

	postID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return blog.PostResponse{}, err
	}

	now := time.Now()
	post := entity.BlogPost{
		ID:               postID,
		Title:            req.Title,
		Slug:             slug,
		Content:          req.Content,
		Excerpt:          req.Excerpt,
		Author:           req.Author,
		CoverImage:       req.CoverImage,
		AdditionalImages: req.AdditionalImages,
		AudioURL:         req.AudioURL,
		ReadingTime:      readingTime,
		Tags:             req.Tags,
		PublishedAt:      publishedAt,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := repo.Posts.CreatePost(ctx, post); err != nil {
		if errors.Is(err, blog.ErrSlugTaken) {
			return blog.PostResponse{}, err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"slug":       slug,
			"error":      err.Error(),
		}).Error("Failed to create blog post")
		return blog.PostResponse{}, blog.ErrCreatePost
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return blog.PostResponse{}, blog.ErrCreatePost
	}

	s.invalidateCaches(ctx, slug)
	return s.makeResponse(ctx, post), nil
}

// UpdatePostBySlug patches whichever tier owns the entry. CMS-owned posts
// are patched remotely and the change is mirrored down; store-owned posts
// are patched in place. Entries that only exist in the built-in catalog are
// read-only.
func (s *blogService) UpdatePostBySlug(ctx context.Context, slug string, req blog.UpdatePostRequest) (blog.PostResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	var publishedAt *time.Time
	if req.PublishedAt != "" {
		parsed, err := time.Parse(time.RFC3339, req.PublishedAt)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id":   requestID,
				"published_at": req.PublishedAt,
			}).Warn("Invalid publishedAt value")
			return blog.PostResponse{}, blog.ErrInvalidPostData
		}
		publishedAt = &parsed
	}

	if s.source.Enabled() {
		cmsPost, err := s.source.GetPostBySlug(ctx, slug)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"source":     s.source.Name(),
				"slug":       slug,
				"error":      err.Error(),
			}).Warn("Content source lookup failed during update, falling back")
		} else if cmsPost != nil {
			fields := cms.UpdateFields{
				Title:       req.Title,
				Content:     req.Content,
				Excerpt:     req.Excerpt,
				Author:      req.Author,
				CoverImage:  req.CoverImage,
				AudioURL:    req.AudioURL,
				ReadingTime: req.ReadingTime,
				Tags:        req.Tags,
				PublishedAt: publishedAt,
			}

			if err := s.source.UpdatePost(ctx, cmsPost.ExternalID, fields); err != nil {
				s.log.WithFields(logrus.Fields{
					"request_id":  requestID,
					"source":      s.source.Name(),
					"external_id": cmsPost.ExternalID,
					"error":       err.Error(),
				}).Error("Content source update failed")
				return blog.PostResponse{}, blog.ErrUpdatePost
			}

			updated := applyUpdate(*cmsPost, fields)
			s.mirrorPosts(requestID, []cms.Post{updated})
			s.invalidateCaches(ctx, slug)

			return s.makeResponse(ctx, s.fromCMS(updated)), nil
		}
	}

	repo, err := s.blogRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"slug":       slug,
			"error":      err.Error(),
		}).Warn("No write target for blog post update")
		if _, ok := s.seed.GetBySlug(slug); ok {
			return blog.PostResponse{}, blog.ErrStoreUnavailable
		}
		return blog.PostResponse{}, blog.ErrPostNotFound
	}
	defer repo.Rollback()

	existing, err := repo.Posts.GetPostBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, blog.ErrPostNotFound) {
			if _, ok := s.seed.GetBySlug(slug); ok {
				s.log.WithFields(logrus.Fields{
					"request_id": requestID,
					"slug":       slug,
				}).Warn("Update rejected, entry exists only in built-in catalog")
				return blog.PostResponse{}, blog.ErrStoreUnavailable
			}
			return blog.PostResponse{}, blog.ErrPostNotFound
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"slug":       slug,
			"error":      err.Error(),
		}).Error("Failed to load blog post for update")
		return blog.PostResponse{}, blog.ErrUpdatePost
	}

	merged := mergeUpdate(existing, req, publishedAt)

	if err := repo.Posts.UpdatePost(ctx, merged); err != nil {
		if errors.Is(err, blog.ErrPostNotFound) {
			return blog.PostResponse{}, err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"slug":       slug,
			"error":      err.Error(),
		}).Error("Failed to update blog post")
		return blog.PostResponse{}, blog.ErrUpdatePost
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return blog.PostResponse{}, blog.ErrUpdatePost
	}

	merged.UpdatedAt = time.Now()
	s.invalidateCaches(ctx, slug)
	return s.makeResponse(ctx, merged), nil
}

// DeletePost removes an entry from the persistent store. CMS entries and the
// built-in catalog are never deleted through the API.
func (s *blogService) DeletePost(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("No write target for blog post delete")
		return err
	}
	defer repo.Rollback()

	existing, err := repo.Posts.GetPostBySlug(ctx, id)
	if err == nil {
		// The route accepts either an id or a slug.
		id = existing.ID
	}

	if err := repo.Posts.DeletePost(ctx, id); err != nil {
		if errors.Is(err, blog.ErrPostNotFound) {
			return err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to delete blog post")
		return blog.ErrDeletePost
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return blog.ErrDeletePost
	}

	if existing.Slug != "" {
		s.invalidateCaches(ctx, existing.Slug)
	}
	return nil
}

func applyUpdate(post cms.Post, fields cms.UpdateFields) cms.Post {
	if fields.Title != "" {
		post.Title = fields.Title
	}
	if fields.Content != "" {
		post.Content = fields.Content
	}
	if fields.Excerpt != "" {
		post.Excerpt = fields.Excerpt
	}
	if fields.Author != "" {
		post.Author = fields.Author
	}
	if fields.CoverImage != "" {
		post.CoverImage = fields.CoverImage
	}
	if fields.AudioURL != "" {
		post.AudioURL = fields.AudioURL
	}
	if fields.ReadingTime != "" {
		post.ReadingTime = fields.ReadingTime
	}
	if fields.Tags != nil {
		post.Tags = fields.Tags
	}
	if fields.PublishedAt != nil {
		post.PublishedAt = *fields.PublishedAt
	}
	post.UpdatedAt = time.Now()
	return post
}

func mergeUpdate(post entity.BlogPost, req blog.UpdatePostRequest, publishedAt *time.Time) entity.BlogPost {
	if req.Title != "" {
		post.Title = req.Title
	}
	if req.Content != "" {
		post.Content = req.Content
	}
	if req.Excerpt != "" {
		post.Excerpt = req.Excerpt
	}
	if req.Author != "" {
		post.Author = req.Author
	}
	if req.CoverImage != "" {
		post.CoverImage = req.CoverImage
	}
	if req.AdditionalImages != nil {
		post.AdditionalImages = req.AdditionalImages
	}
	if req.AudioURL != "" {
		post.AudioURL = req.AudioURL
	}
	if req.ReadingTime != "" {
		post.ReadingTime = req.ReadingTime
	}
	if req.Tags != nil {
		post.Tags = req.Tags
	}
	if publishedAt != nil {
		post.PublishedAt = *publishedAt
	}
	return post
}

func (s *blogService) invalidateCaches(ctx context.Context, slug string) {
	if !s.cache.Enabled() {
		return
	}

	keys := []string{postCacheKey(slug)}
	// List caches are keyed per page; the first pages cover the common case
	// and the short TTL catches the rest.
	for page := 1; page <= 5; page++ {
		keys = append(keys, listCacheKey(page, 25))
	}
	_ = s.cache.Delete(ctx, keys...)
}
