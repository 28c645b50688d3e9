package blogService

import (
	stdcontext "context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"RBCDigital/internal/api/blog"
	"RBCDigital/pkg/cms"
	contextPkg "RBCDigital/pkg/context"
)

const mirrorTimeout = 15 * time.Second

// mirrorPosts copies CMS entries into the persistent store in the
// background. The copy is best effort: a failure is logged and the request
// that triggered it is never affected.
func (s *blogService) mirrorPosts(requestID string, posts []cms.Post) {
	if len(posts) == 0 {
		return
	}

	go func() {
		ctx, cancel := stdcontext.WithTimeout(stdcontext.Background(), mirrorTimeout)
		defer cancel()
		ctx = contextPkg.WithRequestID(ctx, requestID)

		repo, err := s.blogRepo.NewClient(false)
		if err != nil {
			if !errors.Is(err, blog.ErrStoreUnavailable) {
				s.log.WithFields(logrus.Fields{
					"request_id": requestID,
					"error":      err.Error(),
				}).Warn("Mirror skipped, repository client unavailable")
			}
			return
		}

		for _, cmsPost := range posts {
			if cmsPost.ExternalID == "" || cmsPost.Slug == "" {
				continue
			}

			record := s.fromCMS(cmsPost)

			id, err := s.utils.NewULIDFromTimestamp(time.Now())
			if err != nil {
				s.log.WithFields(logrus.Fields{
					"request_id": requestID,
					"error":      err.Error(),
				}).Warn("Mirror skipped entry, failed to generate ULID")
				continue
			}
			record.ID = id

			now := time.Now()
			if record.CreatedAt.IsZero() {
				record.CreatedAt = now
			}
			record.UpdatedAt = now

			if err := repo.Posts.UpsertByExternalID(ctx, record); err != nil {
				s.log.WithFields(logrus.Fields{
					"request_id":  requestID,
					"external_id": cmsPost.ExternalID,
					"slug":        cmsPost.Slug,
					"error":       err.Error(),
				}).Warn("Failed to mirror CMS entry into store")
			}
		}
	}()
}
