package leadsService

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"RBCDigital/internal/api/leads"
	leadsRepository "RBCDigital/internal/api/leads/repository"
	"RBCDigital/pkg/hubspot"
	"RBCDigital/pkg/smtp"
	"RBCDigital/pkg/utils"
)

type ILeadsService interface {
	CreateContact(ctx context.Context, req leads.CreateContactRequest) (leads.ContactResponse, error)
	CreateBooking(ctx context.Context, req leads.CreateBookingRequest) (leads.BookingResponse, error)
	GetAllContacts(ctx context.Context) (*leads.ContactListResponse, error)
	GetAllBookings(ctx context.Context) (*leads.BookingListResponse, error)
}

type leadsService struct {
	log       *logrus.Logger
	leadsRepo leadsRepository.Repository
	crm       hubspot.ItfHubspot
	mailer    smtp.ItfSmtp
	utils     utils.IUtils
}

func NewLeadsService(
	log *logrus.Logger,
	leadsRepo leadsRepository.Repository,
	crm hubspot.ItfHubspot,
	mailer smtp.ItfSmtp,
	utils utils.IUtils,
) ILeadsService {
	return &leadsService{
		log:       log,
		leadsRepo: leadsRepo,
		crm:       crm,
		mailer:    mailer,
		utils:     utils,
	}
}
