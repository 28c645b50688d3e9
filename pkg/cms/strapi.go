package cms

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

type strapiSource struct {
	baseURL string
	token   string
	client  *http.Client
	log     *logrus.Logger
}

// NewStrapi builds a client for a Strapi articles collection. The REST
// endpoints speak the {data, meta.pagination} envelope.
func NewStrapi(log *logrus.Logger) Source {
	baseURL := os.Getenv("STRAPI_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:1337"
	}

	return &strapiSource{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   os.Getenv("STRAPI_API_TOKEN"),
		client:  &http.Client{Timeout: 10 * time.Second},
		log:     log,
	}
}

func (s *strapiSource) Name() string {
	return "strapi"
}

// Enabled requires the write token. Without it the local database is the
// intended source of truth even when the Strapi URL is reachable.
func (s *strapiSource) Enabled() bool {
	return s.token != ""
}

type strapiArticle struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Slug    string `json:"slug"`
	Content string `json:"content"`
	Excerpt string `json:"excerpt"`
	Author  string `json:"author"`
	Cover   *struct {
		URL             string `json:"url"`
		AlternativeText string `json:"alternativeText"`
	} `json:"cover"`
	PublishedAt string `json:"publishedAt"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

type strapiListEnvelope struct {
	Data []strapiArticle `json:"data"`
	Meta struct {
		Pagination struct {
			Page      int `json:"page"`
			PageSize  int `json:"pageSize"`
			PageCount int `json:"pageCount"`
			Total     int `json:"total"`
		} `json:"pagination"`
	} `json:"meta"`
}

func (s *strapiSource) ListPosts(ctx context.Context, page, pageSize int) ([]Post, Pagination, error) {
	params := url.Values{}
	params.Set("pagination[page]", strconv.Itoa(page))
	params.Set("pagination[pageSize]", strconv.Itoa(pageSize))
	params.Set("sort", "publishedAt:desc")
	params.Set("populate", "*")

	var envelope strapiListEnvelope
	if err := s.get(ctx, "/api/articles?"+params.Encode(), &envelope); err != nil {
		s.log.WithFields(logrus.Fields{
			"source": s.Name(),
			"error":  err.Error(),
		}).Warn("Strapi unavailable, returning empty page")
		return nil, Pagination{Page: page, PageSize: pageSize}, nil
	}

	posts := make([]Post, 0, len(envelope.Data))
	for _, article := range envelope.Data {
		posts = append(posts, s.makePost(article))
	}

	return posts, Pagination{
		Page:      envelope.Meta.Pagination.Page,
		PageSize:  envelope.Meta.Pagination.PageSize,
		PageCount: envelope.Meta.Pagination.PageCount,
		Total:     envelope.Meta.Pagination.Total,
	}, nil
}

func (s *strapiSource) GetPostBySlug(ctx context.Context, slug string) (*Post, error) {
	params := url.Values{}
	params.Set("filters[slug][$eq]", slug)
	params.Set("populate", "*")

	var envelope strapiListEnvelope
	if err := s.get(ctx, "/api/articles?"+params.Encode(), &envelope); err != nil {
		s.log.WithFields(logrus.Fields{
			"source": s.Name(),
			"slug":   slug,
			"error":  err.Error(),
		}).Warn("Strapi unavailable, returning no result")
		return nil, nil
	}

	if len(envelope.Data) == 0 {
		return nil, nil
	}

	post := s.makePost(envelope.Data[0])
	return &post, nil
}

func (s *strapiSource) CreatePost(ctx context.Context, post Post) (*Post, error) {
	body := map[string]interface{}{
		"title":   post.Title,
		"slug":    post.Slug,
		"content": post.Content,
		"excerpt": post.Excerpt,
		"author":  post.Author,
	}
	if !post.PublishedAt.IsZero() {
		body["publishedAt"] = post.PublishedAt.UTC().Format(time.RFC3339)
	}

	var envelope struct {
		Data strapiArticle `json:"data"`
	}
	if err := s.send(ctx, http.MethodPost, "/api/articles", map[string]interface{}{"data": body}, &envelope); err != nil {
		return nil, fmt.Errorf("failed to create article in Strapi: %w", err)
	}

	created := s.makePost(envelope.Data)

	// Strapi does not carry the richer media fields; keep what the caller
	// supplied so the mirrored row stays complete.
	created.AudioURL = post.AudioURL
	created.ReadingTime = post.ReadingTime
	created.Tags = post.Tags
	if created.CoverImage == "" {
		created.CoverImage = post.CoverImage
	}

	return &created, nil
}

func (s *strapiSource) UpdatePost(ctx context.Context, externalID string, fields UpdateFields) error {
	set := map[string]interface{}{}
	if fields.Title != "" {
		set["title"] = fields.Title
	}
	if fields.Content != "" {
		set["content"] = fields.Content
	}
	if fields.Excerpt != "" {
		set["excerpt"] = fields.Excerpt
	}
	if fields.Author != "" {
		set["author"] = fields.Author
	}
	if fields.PublishedAt != nil {
		set["publishedAt"] = fields.PublishedAt.UTC().Format(time.RFC3339)
	}

	if len(set) == 0 {
		return nil
	}

	path := "/api/articles/" + url.PathEscape(externalID)
	if err := s.send(ctx, http.MethodPut, path, map[string]interface{}{"data": set}, nil); err != nil {
		return fmt.Errorf("failed to update article in Strapi: %w", err)
	}
	return nil
}

func (s *strapiSource) get(ctx context.Context, path string, dest interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path, nil)
	if err != nil {
		return err
	}
	s.setHeaders(req)

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("strapi returned status %d: %s", resp.StatusCode, string(body))
	}

	return jsoniter.NewDecoder(resp.Body).Decode(dest)
}

func (s *strapiSource) send(ctx context.Context, method, path string, body interface{}, dest interface{}) error {
	payload, err := jsoniter.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	s.setHeaders(req)

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("strapi returned status %d: %s", resp.StatusCode, string(raw))
	}

	if dest == nil {
		return nil
	}
	return jsoniter.NewDecoder(resp.Body).Decode(dest)
}

func (s *strapiSource) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
}

func (s *strapiSource) makePost(article strapiArticle) Post {
	coverImage := ""
	if article.Cover != nil && article.Cover.URL != "" {
		coverImage = article.Cover.URL
		if strings.HasPrefix(coverImage, "/") {
			coverImage = s.baseURL + coverImage
		}
	}

	publishedAt := parseTime(article.PublishedAt)
	createdAt := parseTime(article.CreatedAt)
	if publishedAt.IsZero() {
		publishedAt = createdAt
	}

	return Post{
		ExternalID:  strconv.FormatInt(article.ID, 10),
		Title:       article.Title,
		Slug:        article.Slug,
		Content:     article.Content,
		Excerpt:     article.Excerpt,
		Author:      article.Author,
		CoverImage:  coverImage,
		Tags:        []string{},
		PublishedAt: publishedAt,
		CreatedAt:   createdAt,
		UpdatedAt:   parseTime(article.UpdatedAt),
	}
}
