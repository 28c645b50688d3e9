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

func newSanityTest(t *testing.T, handler http.HandlerFunc) *sanitySource {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return &sanitySource{
		baseURL: server.URL,
		dataset: "production",
		token:   "test-token",
		client:  server.Client(),
		log:     logger,
	}
}

func TestSanityListPosts(t *testing.T) {
	source := newSanityTest(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/data/query/production", r.URL.Path)
		assert.Contains(t, r.URL.Query().Get("query"), `_type == "blogPost"`)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result": [
			{
				"_id": "doc-1",
				"title": "Sanity Post",
				"slug": "sanity-post",
				"excerpt": "Short.",
				"content": [{"_type":"block","children":[{"_type":"span","text":"Rich body."}]}],
				"author": "Sanity Author",
				"coverImage": "https://cdn.sanity.io/images/cover.jpg",
				"readingTime": "5 min read",
				"tags": ["CMS"],
				"publishedAt": "2025-04-01T12:00:00Z",
				"_createdAt": "2025-03-28T12:00:00Z",
				"_updatedAt": "2025-04-01T12:00:00Z"
			},
			{
				"_id": "doc-2",
				"title": "No Publish Date",
				"slug": "no-publish-date",
				"content": "Plain body.",
				"_createdAt": "2025-03-30T12:00:00Z"
			}
		]}`))
	})

	posts, pagination, err := source.ListPosts(context.Background(), 1, 25)
	require.NoError(t, err)
	require.Len(t, posts, 2)

	first := posts[0]
	assert.Equal(t, "doc-1", first.ExternalID)
	assert.Equal(t, "Rich body.", first.Content, "portable text must be flattened")
	assert.Equal(t, []string{"CMS"}, first.Tags)

	second := posts[1]
	assert.Equal(t, "Plain body.", second.Content)
	assert.Equal(t, time.Date(2025, time.March, 30, 12, 0, 0, 0, time.UTC), second.PublishedAt,
		"publishedAt must fall back to the creation time")
	assert.NotNil(t, second.Tags)

	assert.Equal(t, 2, pagination.Total)
	assert.Equal(t, 1, pagination.PageCount)
}

func TestSanityListPostsPaginatesInMemory(t *testing.T) {
	source := newSanityTest(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result": [
			{"_id": "a", "title": "A", "slug": "a", "content": "x", "_createdAt": "2025-01-03T00:00:00Z"},
			{"_id": "b", "title": "B", "slug": "b", "content": "x", "_createdAt": "2025-01-02T00:00:00Z"},
			{"_id": "c", "title": "C", "slug": "c", "content": "x", "_createdAt": "2025-01-01T00:00:00Z"}
		]}`))
	})

	posts, pagination, err := source.ListPosts(context.Background(), 2, 2)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "c", posts[0].ExternalID)
	assert.Equal(t, 2, pagination.Page)
	assert.Equal(t, 2, pagination.PageCount)
	assert.Equal(t, 3, pagination.Total)
}

func TestSanityGetPostBySlugMiss(t *testing.T) {
	source := newSanityTest(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, `"missing"`, r.URL.Query().Get("$slug"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result": null}`))
	})

	post, err := source.GetPostBySlug(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, post)
}

func TestSanityGetPostBySlugUnavailable(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	source := &sanitySource{
		baseURL: "http://127.0.0.1:1",
		dataset: "production",
		token:   "test-token",
		client:  &http.Client{Timeout: 200 * time.Millisecond},
		log:     logger,
	}

	post, err := source.GetPostBySlug(context.Background(), "anything")
	require.NoError(t, err, "an unreachable CMS must read as a miss, not as an error")
	assert.Nil(t, post)
}

func TestSanityCreatePost(t *testing.T) {
	var received map[string]interface{}

	source := newSanityTest(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/data/mutate/production", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("returnIds"))
		require.NoError(t, jsoniter.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results": [{"id": "doc-new"}]}`))
	})

	created, err := source.CreatePost(context.Background(), Post{
		Title:   "Fresh Post",
		Slug:    "fresh-post",
		Content: "Body text.",
	})
	require.NoError(t, err)
	assert.Equal(t, "doc-new", created.ExternalID)
	assert.False(t, created.PublishedAt.IsZero())

	mutations, ok := received["mutations"].([]interface{})
	require.True(t, ok)
	require.Len(t, mutations, 1)

	create, ok := mutations[0].(map[string]interface{})["create"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "blogPost", create["_type"])

	slug, ok := create["slug"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "fresh-post", slug["current"])
}

func TestSanityUpdatePostSendsOnlyChangedFields(t *testing.T) {
	var received map[string]interface{}

	source := newSanityTest(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, jsoniter.NewDecoder(r.Body).Decode(&received))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results": [{"id": "doc-1"}]}`))
	})

	err := source.UpdatePost(context.Background(), "doc-1", UpdateFields{Excerpt: "New excerpt."})
	require.NoError(t, err)

	mutations := received["mutations"].([]interface{})
	patch := mutations[0].(map[string]interface{})["patch"].(map[string]interface{})
	assert.Equal(t, "doc-1", patch["id"])

	set := patch["set"].(map[string]interface{})
	assert.Equal(t, "New excerpt.", set["excerpt"])
	_, hasTitle := set["title"]
	assert.False(t, hasTitle)
}

func TestSanityCreatePostError(t *testing.T) {
	source := newSanityTest(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := source.CreatePost(context.Background(), Post{Title: "Nope", Slug: "nope"})
	require.Error(t, err, "write failures must propagate")
}
