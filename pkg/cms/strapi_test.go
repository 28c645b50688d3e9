package cms

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStrapiTest(t *testing.T, handler http.HandlerFunc) (*strapiSource, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return &strapiSource{
		baseURL: server.URL,
		token:   "test-token",
		client:  server.Client(),
		log:     logger,
	}, server
}

func TestStrapiListPosts(t *testing.T) {
	source, server := newStrapiTest(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/articles", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("pagination[page]"))
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"data": [
				{
					"id": 7,
					"title": "From Strapi",
					"slug": "from-strapi",
					"content": "Body text.",
					"excerpt": "Short.",
					"author": "Strapi Author",
					"cover": {"url": "/uploads/cover.jpg"},
					"publishedAt": "2025-02-01T08:00:00Z",
					"createdAt": "2025-01-30T08:00:00Z",
					"updatedAt": "2025-02-01T08:00:00Z"
				}
			],
			"meta": {"pagination": {"page": 1, "pageSize": 25, "pageCount": 1, "total": 1}}
		}`))
	})

	posts, pagination, err := source.ListPosts(context.Background(), 1, 25)
	require.NoError(t, err)
	require.Len(t, posts, 1)

	post := posts[0]
	assert.Equal(t, "7", post.ExternalID)
	assert.Equal(t, "from-strapi", post.Slug)
	assert.Equal(t, server.URL+"/uploads/cover.jpg", post.CoverImage, "relative cover URL must be absolutized")
	assert.Equal(t, time.Date(2025, time.February, 1, 8, 0, 0, 0, time.UTC), post.PublishedAt)
	assert.Equal(t, 1, pagination.Total)
}

func TestStrapiListPostsUnavailable(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	source := &strapiSource{
		baseURL: "http://127.0.0.1:1",
		token:   "test-token",
		client:  &http.Client{Timeout: 200 * time.Millisecond},
		log:     logger,
	}

	posts, pagination, err := source.ListPosts(context.Background(), 1, 25)
	require.NoError(t, err, "an unreachable CMS must read as empty, not as an error")
	assert.Empty(t, posts)
	assert.Equal(t, 1, pagination.Page)
}

func TestStrapiGetPostBySlug(t *testing.T) {
	source, _ := newStrapiTest(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "missing-post", r.URL.Query().Get("filters[slug][$eq]"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data": [], "meta": {"pagination": {"page": 1, "pageSize": 25, "pageCount": 0, "total": 0}}}`))
	})

	post, err := source.GetPostBySlug(context.Background(), "missing-post")
	require.NoError(t, err)
	assert.Nil(t, post)
}

func TestStrapiCreatePost(t *testing.T) {
	var received map[string]interface{}

	source, _ := newStrapiTest(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, jsoniter.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data": {"id": 42, "title": "Created", "slug": "created", "content": "Body.", "createdAt": "2025-03-01T00:00:00Z"}}`))
	})

	created, err := source.CreatePost(context.Background(), Post{
		Title:       "Created",
		Slug:        "created",
		Content:     "Body.",
		ReadingTime: "2 min read",
		Tags:        []string{"One"},
		CoverImage:  "https://example.com/cover.jpg",
	})
	require.NoError(t, err)

	data, ok := received["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Created", data["title"])

	assert.Equal(t, "42", created.ExternalID)
	assert.Equal(t, "2 min read", created.ReadingTime)
	assert.Equal(t, []string{"One"}, created.Tags)
	assert.Equal(t, "https://example.com/cover.jpg", created.CoverImage)
}

func TestStrapiCreatePostError(t *testing.T) {
	source, _ := newStrapiTest(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := source.CreatePost(context.Background(), Post{Title: "Nope", Slug: "nope"})
	require.Error(t, err, "write failures must propagate")
}

func TestStrapiUpdatePost(t *testing.T) {
	var received map[string]interface{}

	source, _ := newStrapiTest(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/articles/42", r.URL.Path)
		require.NoError(t, jsoniter.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	})

	err := source.UpdatePost(context.Background(), "42", UpdateFields{Title: "Renamed"})
	require.NoError(t, err)

	data, ok := received["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Renamed", data["title"])
	_, hasContent := data["content"]
	assert.False(t, hasContent, "untouched fields must not be sent")
}
