package cms

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

const sanityPostProjection = `{
	_id,
	title,
	"slug": slug.current,
	excerpt,
	content,
	author,
	coverImage,
	audioUrl,
	readingTime,
	tags,
	publishedAt,
	_createdAt,
	_updatedAt
}`

type sanitySource struct {
	baseURL string
	dataset string
	token   string
	client  *http.Client
	log     *logrus.Logger
}

// NewSanity builds a client for the Sanity HTTP API. Reads go through GROQ
// queries against the query endpoint, writes through the mutate endpoint.
func NewSanity(log *logrus.Logger) Source {
	projectID := os.Getenv("SANITY_PROJECT_ID")

	dataset := os.Getenv("SANITY_DATASET")
	if dataset == "" {
		dataset = "production"
	}

	apiVersion := os.Getenv("SANITY_API_VERSION")
	if apiVersion == "" {
		apiVersion = "2024-08-07"
	}

	baseURL := os.Getenv("SANITY_BASE_URL")
	if baseURL == "" && projectID != "" {
		baseURL = fmt.Sprintf("https://%s.api.sanity.io/v%s", projectID, apiVersion)
	}

	return &sanitySource{
		baseURL: baseURL,
		dataset: dataset,
		token:   os.Getenv("SANITY_API_TOKEN"),
		client:  &http.Client{Timeout: 10 * time.Second},
		log:     log,
	}
}

func (s *sanitySource) Name() string {
	return "sanity"
}

func (s *sanitySource) Enabled() bool {
	return s.baseURL != "" && s.token != ""
}

type sanityDocument struct {
	ID          string              `json:"_id"`
	Title       string              `json:"title"`
	Slug        string              `json:"slug"`
	Excerpt     string              `json:"excerpt"`
	Content     jsoniter.RawMessage `json:"content"`
	Author      string              `json:"author"`
	CoverImage  string              `json:"coverImage"`
	AudioURL    string              `json:"audioUrl"`
	ReadingTime string              `json:"readingTime"`
	Tags        []string            `json:"tags"`
	PublishedAt string              `json:"publishedAt"`
	CreatedAt   string              `json:"_createdAt"`
	UpdatedAt   string              `json:"_updatedAt"`
}

func (s *sanitySource) ListPosts(ctx context.Context, page, pageSize int) ([]Post, Pagination, error) {
	groq := fmt.Sprintf(`*[_type == "blogPost"] | order(publishedAt desc) %s`, sanityPostProjection)

	var docs []sanityDocument
	if err := s.query(ctx, groq, nil, &docs); err != nil {
		s.log.WithFields(logrus.Fields{
			"source": s.Name(),
			"error":  err.Error(),
		}).Warn("Sanity unavailable, returning empty page")
		return nil, Pagination{Page: page, PageSize: pageSize}, nil
	}

	start, end, meta := paginate(len(docs), page, pageSize)

	posts := make([]Post, 0, end-start)
	for _, doc := range docs[start:end] {
		posts = append(posts, s.makePost(doc))
	}

	return posts, meta, nil
}

func (s *sanitySource) GetPostBySlug(ctx context.Context, slug string) (*Post, error) {
	groq := fmt.Sprintf(`*[_type == "blogPost" && slug.current == $slug][0] %s`, sanityPostProjection)

	var doc *sanityDocument
	if err := s.query(ctx, groq, map[string]string{"slug": slug}, &doc); err != nil {
		s.log.WithFields(logrus.Fields{
			"source": s.Name(),
			"slug":   slug,
			"error":  err.Error(),
		}).Warn("Sanity unavailable, returning no result")
		return nil, nil
	}

	if doc == nil || doc.ID == "" {
		return nil, nil
	}

	post := s.makePost(*doc)
	return &post, nil
}

func (s *sanitySource) CreatePost(ctx context.Context, post Post) (*Post, error) {
	doc := map[string]interface{}{
		"_type": "blogPost",
		"title": post.Title,
		"slug": map[string]interface{}{
			"_type":   "slug",
			"current": post.Slug,
		},
		"excerpt":     post.Excerpt,
		"content":     textToBlocks(post.Content),
		"author":      post.Author,
		"coverImage":  post.CoverImage,
		"audioUrl":    post.AudioURL,
		"readingTime": post.ReadingTime,
		"tags":        post.Tags,
	}

	publishedAt := post.PublishedAt
	if publishedAt.IsZero() {
		publishedAt = time.Now()
	}
	doc["publishedAt"] = publishedAt.UTC().Format(time.RFC3339)

	ids, err := s.mutate(ctx, []map[string]interface{}{{"create": doc}})
	if err != nil {
		return nil, fmt.Errorf("failed to create post in Sanity: %w", err)
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("sanity mutate returned no document id")
	}

	created := post
	created.ExternalID = ids[0]
	created.PublishedAt = publishedAt
	now := time.Now()
	created.CreatedAt = now
	created.UpdatedAt = now

	return &created, nil
}

func (s *sanitySource) UpdatePost(ctx context.Context, externalID string, fields UpdateFields) error {
	set := map[string]interface{}{}
	if fields.Title != "" {
		set["title"] = fields.Title
	}
	if fields.Content != "" {
		set["content"] = textToBlocks(fields.Content)
	}
	if fields.Excerpt != "" {
		set["excerpt"] = fields.Excerpt
	}
	if fields.Author != "" {
		set["author"] = fields.Author
	}
	if fields.CoverImage != "" {
		set["coverImage"] = fields.CoverImage
	}
	if fields.AudioURL != "" {
		set["audioUrl"] = fields.AudioURL
	}
	if fields.ReadingTime != "" {
		set["readingTime"] = fields.ReadingTime
	}
	if fields.Tags != nil {
		set["tags"] = fields.Tags
	}
	if fields.PublishedAt != nil {
		set["publishedAt"] = fields.PublishedAt.UTC().Format(time.RFC3339)
	}

	if len(set) == 0 {
		return nil
	}

	patch := map[string]interface{}{
		"patch": map[string]interface{}{
			"id":  externalID,
			"set": set,
		},
	}

	if _, err := s.mutate(ctx, []map[string]interface{}{patch}); err != nil {
		return fmt.Errorf("failed to update post in Sanity: %w", err)
	}
	return nil
}

func (s *sanitySource) query(ctx context.Context, groq string, params map[string]string, dest interface{}) error {
	values := url.Values{}
	values.Set("query", groq)
	for key, value := range params {
		encoded, err := jsoniter.Marshal(value)
		if err != nil {
			return err
		}
		values.Set("$"+key, string(encoded))
	}

	endpoint := fmt.Sprintf("%s/data/query/%s?%s", s.baseURL, s.dataset, values.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("sanity query returned status %d: %s", resp.StatusCode, string(body))
	}

	var envelope struct {
		Result jsoniter.RawMessage `json:"result"`
	}
	if err := jsoniter.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return err
	}
	if len(envelope.Result) == 0 {
		return nil
	}

	return jsoniter.Unmarshal(envelope.Result, dest)
}

func (s *sanitySource) mutate(ctx context.Context, mutations []map[string]interface{}) ([]string, error) {
	payload, err := jsoniter.Marshal(map[string]interface{}{"mutations": mutations})
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/data/mutate/%s?returnIds=true", s.baseURL, s.dataset)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.token)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("sanity mutate returned status %d: %s", resp.StatusCode, string(body))
	}

	var envelope struct {
		Results []struct {
			ID string `json:"id"`
		} `json:"results"`
	}
	if err := jsoniter.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(envelope.Results))
	for _, result := range envelope.Results {
		ids = append(ids, result.ID)
	}
	return ids, nil
}

func (s *sanitySource) makePost(doc sanityDocument) Post {
	publishedAt := parseTime(doc.PublishedAt)
	createdAt := parseTime(doc.CreatedAt)
	if publishedAt.IsZero() {
		publishedAt = createdAt
	}

	tags := doc.Tags
	if tags == nil {
		tags = []string{}
	}

	return Post{
		ExternalID:  doc.ID,
		Title:       doc.Title,
		Slug:        doc.Slug,
		Content:     flattenPortableText(doc.Content),
		Excerpt:     doc.Excerpt,
		Author:      doc.Author,
		CoverImage:  doc.CoverImage,
		AudioURL:    doc.AudioURL,
		ReadingTime: doc.ReadingTime,
		Tags:        tags,
		PublishedAt: publishedAt,
		CreatedAt:   createdAt,
		UpdatedAt:   parseTime(doc.UpdatedAt),
	}
}
