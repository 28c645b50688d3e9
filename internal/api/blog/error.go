package blog

import "RBCDigital/pkg/response"

var (
	ErrPostNotFound      = response.NewError(404, "Blog post not found")
	ErrSlugTaken         = response.NewError(409, "a post with this slug already exists")
	ErrExternalLinkTaken = response.NewError(409, "a post is already linked to this external entry")
	ErrStoreUnavailable  = response.NewError(503, "no writable content store configured")
	ErrSourceUnavailable = response.NewError(503, "content source is unavailable")
	ErrCreatePost        = response.NewError(500, "failed to create blog post")
	ErrUpdatePost        = response.NewError(500, "failed to update blog post")
	ErrDeletePost        = response.NewError(500, "failed to delete blog post")
	ErrInvalidPostData   = response.NewError(400, "invalid blog post data")
)
