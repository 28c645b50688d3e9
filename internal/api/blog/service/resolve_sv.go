package blogService

import (
	"errors"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"RBCDigital/internal/api/blog"
	"RBCDigital/internal/entity"
	"RBCDigital/pkg/cms"
	contextPkg "RBCDigital/pkg/context"
)

// GetAllPosts resolves the catalog through the source chain. The remote CMS
// answers first, then the local store, then the built-in catalog. Reads never
// fail: any tier that errors or comes back empty hands over to the next one.
func (s *blogService) GetAllPosts(ctx context.Context, page, pageSize int) (*blog.PostListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 25
	}

	cacheKey := listCacheKey(page, pageSize)
	if s.cache.Enabled() {
		var cached blog.PostListResponse
		if hit, err := s.cache.GetJSON(ctx, cacheKey, &cached); err == nil && hit {
			return &cached, nil
		}
	}

	if s.source.Enabled() {
		cmsPosts, pagination, err := s.source.ListPosts(ctx, page, pageSize)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"source":     s.source.Name(),
				"error":      err.Error(),
			}).Warn("Content source list failed, falling back")
		} else if len(cmsPosts) > 0 {
			s.mirrorPosts(requestID, cmsPosts)

			response := &blog.PostListResponse{
				Data: make([]blog.PostResponse, 0, len(cmsPosts)),
				Meta: blog.ListMeta{
					Pagination: blog.Pagination{
						Page:      pagination.Page,
						PageSize:  pagination.PageSize,
						PageCount: pagination.PageCount,
						Total:     pagination.Total,
					},
				},
			}
			for _, post := range cmsPosts {
				response.Data = append(response.Data, s.makeResponse(ctx, s.fromCMS(post)))
			}

			s.cacheList(ctx, cacheKey, response)
			return response, nil
		}
	}

	posts := s.resolveLocalPosts(ctx, requestID)

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].EffectivePublishedAt().After(posts[j].EffectivePublishedAt())
	})

	total := len(posts)
	pageCount := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	response := &blog.PostListResponse{
		Data: make([]blog.PostResponse, 0, end-start),
		Meta: blog.ListMeta{
			Pagination: blog.Pagination{
				Page:      page,
				PageSize:  pageSize,
				PageCount: pageCount,
				Total:     total,
			},
		},
	}
	for _, post := range posts[start:end] {
		response.Data = append(response.Data, s.makeResponse(ctx, post))
	}

	s.cacheList(ctx, cacheKey, response)
	return response, nil
}

const storeReadBatch = 100

// resolveLocalPosts reads the persistent store and decides whether its
// catalog can stand alone. The read pages through the whole table in
// batches. A thin or partially populated store is merged over the built-in
// catalog so the blog never looks empty.
func (s *blogService) resolveLocalPosts(ctx context.Context, requestID string) []entity.BlogPost {
	repo, err := s.blogRepo.NewClient(false)
	if err != nil {
		if !errors.Is(err, blog.ErrStoreUnavailable) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to create repository client")
		}
		return s.seed.List()
	}

	storePosts, total, err := repo.Posts.GetAllPosts(ctx, storeReadBatch, 0)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Store read failed, serving built-in catalog")
		return s.seed.List()
	}

	for len(storePosts) < total {
		batch, _, err := repo.Posts.GetAllPosts(ctx, storeReadBatch, len(storePosts))
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"offset":     len(storePosts),
				"error":      err.Error(),
			}).Warn("Store read failed mid-catalog, serving partial result")
			break
		}
		if len(batch) == 0 {
			break
		}
		storePosts = append(storePosts, batch...)
	}

	if len(storePosts) == 0 {
		return s.seed.List()
	}

	if s.storeIsComplete(storePosts) {
		return storePosts
	}

	merged := s.seed.List()
	bySlug := make(map[string]int, len(merged))
	for i, post := range merged {
		bySlug[post.Slug] = i
	}
	for _, post := range storePosts {
		if i, ok := bySlug[post.Slug]; ok {
			merged[i] = post
		} else {
			merged = append(merged, post)
		}
	}

	return merged
}

func (s *blogService) storeIsComplete(posts []entity.BlogPost) bool {
	if len(posts) < s.minComplete {
		return false
	}
	for _, post := range posts {
		if post.CoverImage == "" || !strings.HasPrefix(post.CoverImage, "http") {
			return false
		}
	}
	return true
}

// GetPostBySlug walks the same chain as GetAllPosts for a single entry. Only
// a miss in every tier surfaces as not found.
func (s *blogService) GetPostBySlug(ctx context.Context, slug string) (blog.PostResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	cacheKey := postCacheKey(slug)
	if s.cache.Enabled() {
		var cached blog.PostResponse
		if hit, err := s.cache.GetJSON(ctx, cacheKey, &cached); err == nil && hit {
			return cached, nil
		}
	}

	if s.source.Enabled() {
		cmsPost, err := s.source.GetPostBySlug(ctx, slug)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"source":     s.source.Name(),
				"slug":       slug,
				"error":      err.Error(),
			}).Warn("Content source lookup failed, falling back")
		} else if cmsPost != nil {
			s.mirrorPosts(requestID, []cms.Post{*cmsPost})

			response := s.makeResponse(ctx, s.fromCMS(*cmsPost))
			s.cachePost(ctx, cacheKey, response)
			return response, nil
		}
	}

	repo, err := s.blogRepo.NewClient(false)
	if err == nil {
		post, err := repo.Posts.GetPostBySlug(ctx, slug)
		if err == nil {
			response := s.makeResponse(ctx, post)
			s.cachePost(ctx, cacheKey, response)
			return response, nil
		}
		if !errors.Is(err, blog.ErrPostNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"slug":       slug,
				"error":      err.Error(),
			}).Warn("Store lookup failed, serving built-in catalog")
		}
	}

	post, ok := s.seed.GetBySlug(slug)
	if !ok {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"slug":       slug,
		}).Warn("Blog post not found in any source")
		return blog.PostResponse{}, blog.ErrPostNotFound
	}

	response := s.makeResponse(ctx, post)
	s.cachePost(ctx, cacheKey, response)
	return response, nil
}

func (s *blogService) cacheList(ctx context.Context, key string, response *blog.PostListResponse) {
	if !s.cache.Enabled() {
		return
	}
	_ = s.cache.SetJSON(ctx, key, response, listCacheTTL)
}

func (s *blogService) cachePost(ctx context.Context, key string, response blog.PostResponse) {
	if !s.cache.Enabled() {
		return
	}
	_ = s.cache.SetJSON(ctx, key, response, postCacheTTL)
}
