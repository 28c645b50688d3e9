package blog

import "time"

type CreatePostRequest struct {
	Title            string   `json:"title" validate:"required,min=1,max=200"`
	Slug             string   `json:"slug" validate:"omitempty,max=200"`
	Content          string   `json:"content" validate:"required"`
	Excerpt          string   `json:"excerpt" validate:"omitempty,max=500"`
	Author           string   `json:"author" validate:"omitempty,max=100"`
	CoverImage       string   `json:"coverImage" validate:"omitempty"`
	AdditionalImages []string `json:"additionalImages" validate:"omitempty"`
	AudioURL         string   `json:"audioUrl" validate:"omitempty"`
	ReadingTime      string   `json:"readingTime" validate:"omitempty,max=50"`
	Tags             []string `json:"tags" validate:"omitempty"`
	PublishedAt      string   `json:"publishedAt" validate:"omitempty"`
}

type UpdatePostRequest struct {
	Title            string   `json:"title" validate:"omitempty,min=1,max=200"`
	Content          string   `json:"content" validate:"omitempty"`
	Excerpt          string   `json:"excerpt" validate:"omitempty,max=500"`
	Author           string   `json:"author" validate:"omitempty,max=100"`
	CoverImage       string   `json:"coverImage" validate:"omitempty"`
	AdditionalImages []string `json:"additionalImages" validate:"omitempty"`
	AudioURL         string   `json:"audioUrl" validate:"omitempty"`
	ReadingTime      string   `json:"readingTime" validate:"omitempty,max=50"`
	Tags             []string `json:"tags" validate:"omitempty"`
	PublishedAt      string   `json:"publishedAt" validate:"omitempty"`
}

// PostResponse always carries the full field set. Optional fields serialize
// as empty values rather than disappearing, so clients never branch on
// presence.
type PostResponse struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Slug             string    `json:"slug"`
	Content          string    `json:"content"`
	Excerpt          string    `json:"excerpt"`
	Author           string    `json:"author"`
	CoverImage       string    `json:"coverImage"`
	AdditionalImages []string  `json:"additionalImages"`
	AudioURL         string    `json:"audioUrl"`
	ReadingTime      string    `json:"readingTime"`
	Tags             []string  `json:"tags"`
	ExternalID       string    `json:"externalId"`
	PublishedAt      time.Time `json:"publishedAt"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

type Pagination struct {
	Page      int `json:"page"`
	PageSize  int `json:"pageSize"`
	PageCount int `json:"pageCount"`
	Total     int `json:"total"`
}

type ListMeta struct {
	Pagination Pagination `json:"pagination"`
}

type PostListResponse struct {
	Data []PostResponse `json:"data"`
	Meta ListMeta       `json:"meta"`
}

type PostEnvelope struct {
	Data PostResponse `json:"data"`
}

type CreatePostResponse struct {
	Success bool         `json:"success"`
	Post    PostResponse `json:"post"`
}

type UpdatePostResponse struct {
	Success bool         `json:"success"`
	Data    PostResponse `json:"data"`
}
