package blogRepository

import (
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"RBCDigital/internal/api/blog"
	"RBCDigital/internal/entity"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

// New wraps the database handle. A nil handle is allowed and means no
// persistent store is configured, in which case NewClient reports the store
// as unavailable and callers degrade to their fallback sources.
func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	if r.DB == nil {
		return Client{}, blog.ErrStoreUnavailable
	}

	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Posts:    &postsRepository{q: sqlExecutor, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

type Client struct {
	Posts interface {
		CreatePost(ctx context.Context, post entity.BlogPost) error
		GetPostBySlug(ctx context.Context, slug string) (entity.BlogPost, error)
		GetPostByExternalID(ctx context.Context, externalID string) (entity.BlogPost, error)
		GetAllPosts(ctx context.Context, limit, offset int) ([]entity.BlogPost, int, error)
		UpdatePost(ctx context.Context, post entity.BlogPost) error
		DeletePost(ctx context.Context, id string) error
		UpsertByExternalID(ctx context.Context, post entity.BlogPost) error
	}

	Commit   func() error
	Rollback func() error
}

type postsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
