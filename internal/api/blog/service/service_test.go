package blogService

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"RBCDigital/internal/api/blog"
	blogRepository "RBCDigital/internal/api/blog/repository"
	"RBCDigital/internal/entity"
	"RBCDigital/internal/seed"
	"RBCDigital/pkg/cms"
	"RBCDigital/pkg/utils"
)

type fakeSource struct {
	enabled bool
	posts   []cms.Post
	listErr error
	getErr  error

	mu      sync.Mutex
	created []cms.Post
	updates map[string]cms.UpdateFields
}

func (f *fakeSource) Name() string  { return "fake" }
func (f *fakeSource) Enabled() bool { return f.enabled }

func (f *fakeSource) ListPosts(_ context.Context, page, pageSize int) ([]cms.Post, cms.Pagination, error) {
	if f.listErr != nil {
		return nil, cms.Pagination{}, f.listErr
	}
	return f.posts, cms.Pagination{
		Page:      page,
		PageSize:  pageSize,
		PageCount: 1,
		Total:     len(f.posts),
	}, nil
}

func (f *fakeSource) GetPostBySlug(_ context.Context, slug string) (*cms.Post, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for i := range f.posts {
		if f.posts[i].Slug == slug {
			post := f.posts[i]
			return &post, nil
		}
	}
	return nil, nil
}

func (f *fakeSource) CreatePost(_ context.Context, post cms.Post) (*cms.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	post.ExternalID = "ext-created"
	post.CreatedAt = time.Now()
	post.UpdatedAt = time.Now()
	f.created = append(f.created, post)
	f.posts = append(f.posts, post)
	return &post, nil
}

func (f *fakeSource) UpdatePost(_ context.Context, externalID string, fields cms.UpdateFields) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updates == nil {
		f.updates = make(map[string]cms.UpdateFields)
	}
	f.updates[externalID] = fields
	return nil
}

type fakePostsStore struct {
	mu         sync.Mutex
	bySlug     map[string]entity.BlogPost
	byExternal map[string]entity.BlogPost
	readErr    error
	createErr  error
	upserts    int
}

func newFakeStore() *fakePostsStore {
	return &fakePostsStore{
		bySlug:     make(map[string]entity.BlogPost),
		byExternal: make(map[string]entity.BlogPost),
	}
}

func (f *fakePostsStore) CreatePost(_ context.Context, post entity.BlogPost) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	if _, exists := f.bySlug[post.Slug]; exists {
		return blog.ErrSlugTaken
	}
	f.bySlug[post.Slug] = post
	return nil
}

func (f *fakePostsStore) GetPostBySlug(_ context.Context, slug string) (entity.BlogPost, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.readErr != nil {
		return entity.BlogPost{}, f.readErr
	}
	post, ok := f.bySlug[slug]
	if !ok {
		return entity.BlogPost{}, blog.ErrPostNotFound
	}
	return post, nil
}

func (f *fakePostsStore) GetPostByExternalID(_ context.Context, externalID string) (entity.BlogPost, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	post, ok := f.byExternal[externalID]
	if !ok {
		return entity.BlogPost{}, blog.ErrPostNotFound
	}
	return post, nil
}

func (f *fakePostsStore) GetAllPosts(_ context.Context, limit, offset int) ([]entity.BlogPost, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.readErr != nil {
		return nil, 0, f.readErr
	}
	posts := make([]entity.BlogPost, 0, len(f.bySlug))
	for _, post := range f.bySlug {
		posts = append(posts, post)
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].Slug < posts[j].Slug })

	total := len(posts)
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return posts[offset:end], total, nil
}

func (f *fakePostsStore) UpdatePost(_ context.Context, post entity.BlogPost) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for slug, existing := range f.bySlug {
		if existing.ID == post.ID {
			post.Slug = existing.Slug
			f.bySlug[slug] = post
			return nil
		}
	}
	return blog.ErrPostNotFound
}

func (f *fakePostsStore) DeletePost(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for slug, existing := range f.bySlug {
		if existing.ID == id {
			delete(f.bySlug, slug)
			return nil
		}
	}
	return blog.ErrPostNotFound
}

func (f *fakePostsStore) UpsertByExternalID(_ context.Context, post entity.BlogPost) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.upserts++
	f.byExternal[post.ExternalID] = post
	f.bySlug[post.Slug] = post
	return nil
}

func (f *fakePostsStore) upsertCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.upserts
}

type fakeRepo struct {
	unavailable bool
	store       *fakePostsStore
}

func (f *fakeRepo) NewClient(tx bool) (blogRepository.Client, error) {
	if f.unavailable {
		return blogRepository.Client{}, blog.ErrStoreUnavailable
	}
	return blogRepository.Client{
		Posts:    f.store,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

type noCache struct{}

func (noCache) Enabled() bool { return false }
func (noCache) SetJSON(context.Context, string, interface{}, time.Duration) error {
	return nil
}
func (noCache) GetJSON(context.Context, string, interface{}) (bool, error) { return false, nil }
func (noCache) Delete(context.Context, ...string) error                    { return nil }

func newTestService(source *fakeSource, repo *fakeRepo) IBlogService {
	logger := logrus.New()
	return NewBlogService(logger, repo, source, seed.New(), noCache{}, nil, utils.New())
}

func cmsFixture() []cms.Post {
	return []cms.Post{
		{
			ExternalID:  "ext-1",
			Title:       "Remote Post One",
			Slug:        "remote-post-one",
			Content:     "Body one.",
			Author:      "Remote Author",
			CoverImage:  "https://example.com/one.jpg",
			ReadingTime: "3 min read",
			Tags:        []string{"Remote"},
			PublishedAt: time.Date(2025, time.January, 10, 9, 0, 0, 0, time.UTC),
			CreatedAt:   time.Date(2025, time.January, 10, 9, 0, 0, 0, time.UTC),
		},
		{
			ExternalID:  "ext-2",
			Title:       "Remote Post Two",
			Slug:        "remote-post-two",
			Content:     "Body two.",
			Author:      "Remote Author",
			CoverImage:  "https://example.com/two.jpg",
			ReadingTime: "4 min read",
			Tags:        []string{"Remote"},
			PublishedAt: time.Date(2025, time.January, 12, 9, 0, 0, 0, time.UTC),
			CreatedAt:   time.Date(2025, time.January, 12, 9, 0, 0, 0, time.UTC),
		},
	}
}

func TestGetAllPostsFromCMS(t *testing.T) {
	store := newFakeStore()
	source := &fakeSource{enabled: true, posts: cmsFixture()}
	svc := newTestService(source, &fakeRepo{store: store})

	result, err := svc.GetAllPosts(context.Background(), 1, 25)
	require.NoError(t, err)

	require.Len(t, result.Data, 2)
	assert.Equal(t, "remote-post-one", result.Data[0].Slug)
	assert.Equal(t, "ext-1", result.Data[0].ExternalID)
	assert.Equal(t, 2, result.Meta.Pagination.Total)

	require.Eventually(t, func() bool {
		return store.upsertCount() == 2
	}, 2*time.Second, 10*time.Millisecond, "CMS entries should be mirrored into the store")
}

func TestGetAllPostsSeedFallback(t *testing.T) {
	source := &fakeSource{enabled: false}
	svc := newTestService(source, &fakeRepo{unavailable: true})

	result, err := svc.GetAllPosts(context.Background(), 1, 25)
	require.NoError(t, err)

	assert.Equal(t, 11, result.Meta.Pagination.Total)
	require.Len(t, result.Data, 11)

	slugs := make(map[string]bool)
	for _, post := range result.Data {
		slugs[post.Slug] = true
	}
	assert.True(t, slugs["5-digital-marketing-strategies-local-business-growth"])
}

func TestGetAllPostsCMSErrorFallsThrough(t *testing.T) {
	source := &fakeSource{enabled: true, listErr: errors.New("connection refused")}
	svc := newTestService(source, &fakeRepo{unavailable: true})

	result, err := svc.GetAllPosts(context.Background(), 1, 25)
	require.NoError(t, err)
	assert.Equal(t, 11, result.Meta.Pagination.Total)
}

func TestGetAllPostsStoreReadErrorFallsThrough(t *testing.T) {
	store := newFakeStore()
	store.readErr = errors.New("connection reset")
	svc := newTestService(&fakeSource{}, &fakeRepo{store: store})

	result, err := svc.GetAllPosts(context.Background(), 1, 25)
	require.NoError(t, err)
	assert.Equal(t, 11, result.Meta.Pagination.Total)
}

func TestGetAllPostsMergesThinStore(t *testing.T) {
	store := newFakeStore()
	store.bySlug["5-digital-marketing-strategies-local-business-growth"] = entity.BlogPost{
		ID:          "store-1",
		Title:       "Edited Title From Store",
		Slug:        "5-digital-marketing-strategies-local-business-growth",
		Content:     "Edited body.",
		CoverImage:  "https://example.com/edited.jpg",
		PublishedAt: time.Date(2024, time.December, 1, 10, 0, 0, 0, time.UTC),
	}

	svc := newTestService(&fakeSource{}, &fakeRepo{store: store})

	result, err := svc.GetAllPosts(context.Background(), 1, 25)
	require.NoError(t, err)

	assert.Equal(t, 11, result.Meta.Pagination.Total)

	seen := make(map[string]int)
	var mergedTitle string
	for _, post := range result.Data {
		seen[post.Slug]++
		if post.Slug == "5-digital-marketing-strategies-local-business-growth" {
			mergedTitle = post.Title
		}
	}
	for slug, count := range seen {
		assert.Equal(t, 1, count, "duplicate slug %s after merge", slug)
	}
	assert.Equal(t, "Edited Title From Store", mergedTitle)
}

func TestGetAllPostsPagination(t *testing.T) {
	svc := newTestService(&fakeSource{}, &fakeRepo{unavailable: true})

	result, err := svc.GetAllPosts(context.Background(), 2, 5)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Meta.Pagination.Page)
	assert.Equal(t, 5, result.Meta.Pagination.PageSize)
	assert.Equal(t, 3, result.Meta.Pagination.PageCount)
	assert.Equal(t, 11, result.Meta.Pagination.Total)
	assert.Len(t, result.Data, 5)
}

func TestGetAllPostsLargeStore(t *testing.T) {
	store := newFakeStore()
	for i := 0; i < 120; i++ {
		slug := fmt.Sprintf("stored-post-%03d", i)
		store.bySlug[slug] = entity.BlogPost{
			ID:          fmt.Sprintf("store-%03d", i),
			Title:       fmt.Sprintf("Stored Post %d", i),
			Slug:        slug,
			Content:     "Body.",
			CoverImage:  "https://example.com/cover.jpg",
			PublishedAt: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(i) * time.Hour),
		}
	}

	svc := newTestService(&fakeSource{}, &fakeRepo{store: store})

	result, err := svc.GetAllPosts(context.Background(), 1, 25)
	require.NoError(t, err)
	assert.Equal(t, 120, result.Meta.Pagination.Total)
	assert.Equal(t, 5, result.Meta.Pagination.PageCount)

	lastPage, err := svc.GetAllPosts(context.Background(), 5, 25)
	require.NoError(t, err)
	require.Len(t, lastPage.Data, 20, "entries past the first store batch must stay reachable")
}

func TestGetPostBySlugFromCMS(t *testing.T) {
	store := newFakeStore()
	source := &fakeSource{enabled: true, posts: cmsFixture()}
	svc := newTestService(source, &fakeRepo{store: store})

	post, err := svc.GetPostBySlug(context.Background(), "remote-post-two")
	require.NoError(t, err)
	assert.Equal(t, "Remote Post Two", post.Title)
	assert.Equal(t, "ext-2", post.ExternalID)

	require.Eventually(t, func() bool {
		return store.upsertCount() == 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestGetPostBySlugSeedFallback(t *testing.T) {
	svc := newTestService(&fakeSource{}, &fakeRepo{unavailable: true})

	post, err := svc.GetPostBySlug(context.Background(), "local-seo-secrets-2025")
	require.NoError(t, err)
	assert.Equal(t, "Jennifer Chen", post.Author)
	assert.Empty(t, post.ExternalID, "local-only entries carry no external link")
}

func TestGetPostBySlugNotFound(t *testing.T) {
	svc := newTestService(&fakeSource{}, &fakeRepo{unavailable: true})

	_, err := svc.GetPostBySlug(context.Background(), "no-such-slug")
	require.Error(t, err)
	assert.ErrorIs(t, err, blog.ErrPostNotFound)
}

func TestCreatePostLocalStore(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(&fakeSource{}, &fakeRepo{store: store})

	post, err := svc.CreatePost(context.Background(), blog.CreatePostRequest{
		Title:   "A Fresh Look At Landing Pages",
		Content: "Landing pages convert when they answer one question well.",
	})
	require.NoError(t, err)

	assert.Equal(t, "a-fresh-look-at-landing-pages", post.Slug)
	assert.Equal(t, "1 min read", post.ReadingTime)
	assert.NotEmpty(t, post.ID)

	stored, err := store.GetPostBySlug(context.Background(), post.Slug)
	require.NoError(t, err)
	assert.Equal(t, "A Fresh Look At Landing Pages", stored.Title)
}

func TestCreatePostViaCMS(t *testing.T) {
	store := newFakeStore()
	source := &fakeSource{enabled: true}
	svc := newTestService(source, &fakeRepo{store: store})

	post, err := svc.CreatePost(context.Background(), blog.CreatePostRequest{
		Title:   "Published Remotely",
		Content: "Body.",
	})
	require.NoError(t, err)
	assert.Equal(t, "ext-created", post.ID)

	source.mu.Lock()
	created := len(source.created)
	source.mu.Unlock()
	assert.Equal(t, 1, created)
}

func TestCreatePostNoWriteTarget(t *testing.T) {
	svc := newTestService(&fakeSource{}, &fakeRepo{unavailable: true})

	_, err := svc.CreatePost(context.Background(), blog.CreatePostRequest{
		Title:   "Nowhere To Go",
		Content: "Body.",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, blog.ErrStoreUnavailable)
}

func TestCreatePostSlugConflict(t *testing.T) {
	store := newFakeStore()
	store.bySlug["taken-slug"] = entity.BlogPost{ID: "x", Slug: "taken-slug"}
	svc := newTestService(&fakeSource{}, &fakeRepo{store: store})

	_, err := svc.CreatePost(context.Background(), blog.CreatePostRequest{
		Title:   "Taken Slug",
		Slug:    "taken-slug",
		Content: "Body.",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, blog.ErrSlugTaken)
}

func TestUpdatePostMergesOnlyProvidedFields(t *testing.T) {
	store := newFakeStore()
	store.bySlug["existing-post"] = entity.BlogPost{
		ID:      "store-1",
		Title:   "Original Title",
		Slug:    "existing-post",
		Content: "Original content.",
		Excerpt: "Original excerpt.",
		Author:  "Original Author",
	}

	svc := newTestService(&fakeSource{}, &fakeRepo{store: store})

	post, err := svc.UpdatePostBySlug(context.Background(), "existing-post", blog.UpdatePostRequest{
		Excerpt: "New excerpt.",
	})
	require.NoError(t, err)

	assert.Equal(t, "New excerpt.", post.Excerpt)
	assert.Equal(t, "Original Title", post.Title)
	assert.Equal(t, "Original content.", post.Content)
	assert.Equal(t, "Original Author", post.Author)
}

func TestUpdatePostSeedOnlyEntryIsReadOnly(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(&fakeSource{}, &fakeRepo{store: store})

	_, err := svc.UpdatePostBySlug(context.Background(), "local-seo-secrets-2025", blog.UpdatePostRequest{
		Title: "Should Not Apply",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, blog.ErrStoreUnavailable)
}

func TestUpdatePostNotFound(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(&fakeSource{}, &fakeRepo{store: store})

	_, err := svc.UpdatePostBySlug(context.Background(), "missing-everywhere", blog.UpdatePostRequest{
		Title: "Nope",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, blog.ErrPostNotFound)
}

func TestUpdatePostViaCMS(t *testing.T) {
	store := newFakeStore()
	source := &fakeSource{enabled: true, posts: cmsFixture()}
	svc := newTestService(source, &fakeRepo{store: store})

	post, err := svc.UpdatePostBySlug(context.Background(), "remote-post-one", blog.UpdatePostRequest{
		Title: "Renamed Remotely",
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed Remotely", post.Title)

	source.mu.Lock()
	fields, ok := source.updates["ext-1"]
	source.mu.Unlock()
	require.True(t, ok)
	assert.Equal(t, "Renamed Remotely", fields.Title)
	assert.Empty(t, fields.Content)
}

func TestDeletePost(t *testing.T) {
	store := newFakeStore()
	store.bySlug["doomed-post"] = entity.BlogPost{ID: "store-9", Slug: "doomed-post"}
	svc := newTestService(&fakeSource{}, &fakeRepo{store: store})

	require.NoError(t, svc.DeletePost(context.Background(), "store-9"))

	_, err := store.GetPostBySlug(context.Background(), "doomed-post")
	assert.ErrorIs(t, err, blog.ErrPostNotFound)
}

func TestDeletePostNotFound(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(&fakeSource{}, &fakeRepo{store: store})

	err := svc.DeletePost(context.Background(), "missing")
	assert.ErrorIs(t, err, blog.ErrPostNotFound)
}
