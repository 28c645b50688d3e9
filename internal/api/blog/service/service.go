package blogService

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"RBCDigital/internal/api/blog"
	blogRepository "RBCDigital/internal/api/blog/repository"
	"RBCDigital/internal/entity"
	"RBCDigital/internal/seed"
	"RBCDigital/pkg/cms"
	contextPkg "RBCDigital/pkg/context"
	"RBCDigital/pkg/redis"
	"RBCDigital/pkg/s3"
	"RBCDigital/pkg/utils"
)

type IBlogService interface {
	GetAllPosts(ctx context.Context, page, pageSize int) (*blog.PostListResponse, error)
	GetPostBySlug(ctx context.Context, slug string) (blog.PostResponse, error)
	CreatePost(ctx context.Context, req blog.CreatePostRequest) (blog.PostResponse, error)
	UpdatePostBySlug(ctx context.Context, slug string, req blog.UpdatePostRequest) (blog.PostResponse, error)
	DeletePost(ctx context.Context, id string) error
}

type blogService struct {
	log         *logrus.Logger
	blogRepo    blogRepository.Repository
	source      cms.Source
	seed        seed.Provider
	cache       redis.ICache
	s3Client    s3.ItfS3
	utils       utils.IUtils
	minComplete int
}

func NewBlogService(
	log *logrus.Logger,
	blogRepo blogRepository.Repository,
	source cms.Source,
	seedProvider seed.Provider,
	cache redis.ICache,
	s3Client s3.ItfS3,
	utils utils.IUtils,
) IBlogService {
	minComplete := 3
	if v, err := strconv.Atoi(os.Getenv("MIN_COMPLETE_POSTS")); err == nil && v > 0 {
		minComplete = v
	}

	return &blogService{
		log:         log,
		blogRepo:    blogRepo,
		source:      source,
		seed:        seedProvider,
		cache:       cache,
		s3Client:    s3Client,
		utils:       utils,
		minComplete: minComplete,
	}
}

const (
	listCacheTTL = time.Minute
	postCacheTTL = 5 * time.Minute
)

func postCacheKey(slug string) string {
	return "blog:post:" + slug
}

func listCacheKey(page, pageSize int) string {
	return "blog:posts:" + strconv.Itoa(page) + ":" + strconv.Itoa(pageSize)
}

func (s *blogService) fromCMS(post cms.Post) entity.BlogPost {
	return entity.BlogPost{
		ID:               post.ExternalID,
		Title:            post.Title,
		Slug:             post.Slug,
		Content:          post.Content,
		Excerpt:          post.Excerpt,
		Author:           post.Author,
		CoverImage:       post.CoverImage,
		AdditionalImages: []string{},
		AudioURL:         post.AudioURL,
		ReadingTime:      post.ReadingTime,
		Tags:             post.Tags,
		ExternalID:       post.ExternalID,
		PublishedAt:      post.PublishedAt,
		CreatedAt:        post.CreatedAt,
		UpdatedAt:        post.UpdatedAt,
	}
}

func (s *blogService) makeResponse(ctx context.Context, post entity.BlogPost) blog.PostResponse {
	coverImage := s.resolveAssetURL(ctx, post.CoverImage)

	additionalImages := make([]string, 0, len(post.AdditionalImages))
	for _, img := range post.AdditionalImages {
		additionalImages = append(additionalImages, s.resolveAssetURL(ctx, img))
	}

	tags := post.Tags
	if tags == nil {
		tags = []string{}
	}

	return blog.PostResponse{
		ID:               post.ID,
		Title:            post.Title,
		Slug:             post.Slug,
		Content:          post.Content,
		Excerpt:          post.Excerpt,
		Author:           post.Author,
		CoverImage:       coverImage,
		AdditionalImages: additionalImages,
		AudioURL:         post.AudioURL,
		ReadingTime:      post.ReadingTime,
		Tags:             tags,
		ExternalID:       post.ExternalID,
		PublishedAt:      post.EffectivePublishedAt(),
		CreatedAt:        post.CreatedAt,
		UpdatedAt:        post.UpdatedAt,
	}
}

// resolveAssetURL swaps bucket keys for presigned links. Absolute URLs pass
// through untouched.
func (s *blogService) resolveAssetURL(ctx context.Context, url string) string {
	if url == "" || strings.HasPrefix(url, "http") || s.s3Client == nil {
		return url
	}

	requestID := contextPkg.GetRequestID(ctx)

	presigned, err := s.s3Client.PresignUrl(url)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"asset":      url,
			"error":      err.Error(),
		}).Warn("Failed to create presigned URL for asset")
		return url
	}
	return presigned
}
