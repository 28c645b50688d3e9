package cms

import (
	"context"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// Post is the neutral shape both headless CMS backends are translated into.
type Post struct {
	ExternalID  string
	Title       string
	Slug        string
	Content     string
	Excerpt     string
	Author      string
	CoverImage  string
	AudioURL    string
	ReadingTime string
	Tags        []string
	PublishedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Pagination struct {
	Page      int
	PageSize  int
	PageCount int
	Total     int
}

// UpdateFields carries a partial update; zero-valued fields are not sent
// to the remote service.
type UpdateFields struct {
	Title       string
	Content     string
	Excerpt     string
	Author      string
	CoverImage  string
	AudioURL    string
	ReadingTime string
	Tags        []string
	PublishedAt *time.Time
}

// Source abstracts a remote headless content service. Reads swallow
// unavailability and return empty results, the remote being optional
// infrastructure. Writes propagate failures.
type Source interface {
	Name() string
	Enabled() bool
	ListPosts(ctx context.Context, page, pageSize int) ([]Post, Pagination, error)
	GetPostBySlug(ctx context.Context, slug string) (*Post, error)
	CreatePost(ctx context.Context, post Post) (*Post, error)
	UpdatePost(ctx context.Context, externalID string, fields UpdateFields) error
}

// FromEnv selects the configured backend. Sanity is the default; Strapi is
// kept as the drop-in alternative.
func FromEnv(log *logrus.Logger) Source {
	switch os.Getenv("CONTENT_SOURCE") {
	case "strapi":
		return NewStrapi(log)
	default:
		return NewSanity(log)
	}
}

func paginate(total, page, pageSize int) (int, int, Pagination) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	pageCount := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return start, end, Pagination{
		Page:      page,
		PageSize:  pageSize,
		PageCount: pageCount,
		Total:     total,
	}
}

func parseTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}
	}
	return t
}
