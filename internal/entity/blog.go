package entity

import "time"

// BlogPost is the normalized content record. PublishedAt may be zero, in
// which case CreatedAt is the effective publish time. ExternalID links the
// row to its counterpart in the headless CMS and is empty for posts that
// only ever lived locally.
type BlogPost struct {
	ID               string    `db:"id"`
	Title            string    `db:"title"`
	Slug             string    `db:"slug"`
	Content          string    `db:"content"`
	Excerpt          string    `db:"excerpt"`
	Author           string    `db:"author"`
	CoverImage       string    `db:"cover_image"`
	AdditionalImages []string  `db:"additional_images"`
	AudioURL         string    `db:"audio_url"`
	ReadingTime      string    `db:"reading_time"`
	Tags             []string  `db:"tags"`
	ExternalID       string    `db:"external_id"`
	PublishedAt      time.Time `db:"published_at"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

// EffectivePublishedAt falls back to CreatedAt when no publish time was set.
func (p BlogPost) EffectivePublishedAt() time.Time {
	if p.PublishedAt.IsZero() {
		return p.CreatedAt
	}
	return p.PublishedAt
}
