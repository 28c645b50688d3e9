package leadsRepository

import (
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"RBCDigital/internal/api/leads"
	"RBCDigital/internal/entity"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

// New wraps the database handle. Lead capture has no fallback tier: without
// a database, NewClient reports the store unavailable and submissions fail.
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
		return Client{}, leads.ErrLeadStoreUnavailable
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
		Contacts: &contactsRepository{q: sqlExecutor, log: r.log},
		Bookings: &bookingsRepository{q: sqlExecutor, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

type Client struct {
	Contacts interface {
		CreateContact(ctx context.Context, contact entity.Contact) error
		GetAllContacts(ctx context.Context) ([]entity.Contact, error)
	}

	Bookings interface {
		CreateBooking(ctx context.Context, booking entity.Booking) error
		GetAllBookings(ctx context.Context) ([]entity.Booking, error)
	}

	Commit   func() error
	Rollback func() error
}

type contactsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type bookingsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
