package blogRepository

const (
	queryCreatePost = `
		INSERT INTO blog_posts (
			id,
			title,
			slug,
			content,
			excerpt,
			author,
			cover_image,
			additional_images,
			audio_url,
			reading_time,
			tags,
			external_id,
			published_at,
			created_at,
			updated_at
		) VALUES (
			:id,
			:title,
			:slug,
			:content,
			:excerpt,
			:author,
			:cover_image,
			:additional_images,
			:audio_url,
			:reading_time,
			:tags,
			:external_id,
			:published_at,
			:created_at,
			:updated_at
		)
	`

	queryGetPostBySlug = `
		SELECT
			id,
			title,
			slug,
			content,
			excerpt,
			author,
			cover_image,
			additional_images,
			audio_url,
			reading_time,
			tags,
			external_id,
			published_at,
			created_at,
			updated_at
		FROM blog_posts
		WHERE slug = :slug
	`

	queryGetPostByExternalID = `
		SELECT
			id,
			title,
			slug,
			content,
			excerpt,
			author,
			cover_image,
			additional_images,
			audio_url,
			reading_time,
			tags,
			external_id,
			published_at,
			created_at,
			updated_at
		FROM blog_posts
		WHERE external_id = :external_id
	`

	queryGetAllPosts = `
		SELECT
			id,
			title,
			slug,
			content,
			excerpt,
			author,
			cover_image,
			additional_images,
			audio_url,
			reading_time,
			tags,
			external_id,
			published_at,
			created_at,
			updated_at
		FROM blog_posts
		ORDER BY COALESCE(published_at, created_at) DESC
		LIMIT :limit OFFSET :offset
	`

	queryCountAllPosts = `
		SELECT COUNT(*)
		FROM blog_posts
	`

	queryUpdatePost = `
		UPDATE blog_posts
		SET
			title = CASE WHEN :title = '' THEN title ELSE :title END,
			content = CASE WHEN :content = '' THEN content ELSE :content END,
			excerpt = CASE WHEN :excerpt = '' THEN excerpt ELSE :excerpt END,
			author = CASE WHEN :author = '' THEN author ELSE :author END,
			cover_image = CASE WHEN :cover_image = '' THEN cover_image ELSE :cover_image END,
			additional_images = :additional_images,
			audio_url = CASE WHEN :audio_url = '' THEN audio_url ELSE :audio_url END,
			reading_time = CASE WHEN :reading_time = '' THEN reading_time ELSE :reading_time END,
			tags = :tags,
			published_at = :published_at,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeletePost = `
		DELETE FROM blog_posts
		WHERE id = :id
	`

	queryUpsertByExternalID = `
		INSERT INTO blog_posts (
			id,
			title,
			slug,
			content,
			excerpt,
			author,
			cover_image,
			additional_images,
			audio_url,
			reading_time,
			tags,
			external_id,
			published_at,
			created_at,
			updated_at
		) VALUES (
			:id,
			:title,
			:slug,
			:content,
			:excerpt,
			:author,
			:cover_image,
			:additional_images,
			:audio_url,
			:reading_time,
			:tags,
			:external_id,
			:published_at,
			:created_at,
			:updated_at
		)
		ON CONFLICT (external_id) DO UPDATE
		SET
			title = EXCLUDED.title,
			slug = EXCLUDED.slug,
			content = EXCLUDED.content,
			excerpt = EXCLUDED.excerpt,
			author = EXCLUDED.author,
			cover_image = EXCLUDED.cover_image,
			additional_images = EXCLUDED.additional_images,
			audio_url = EXCLUDED.audio_url,
			reading_time = EXCLUDED.reading_time,
			tags = EXCLUDED.tags,
			published_at = EXCLUDED.published_at,
			updated_at = EXCLUDED.updated_at
	`
)
