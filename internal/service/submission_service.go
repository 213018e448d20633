package service

import (
	"context"

	"instituteCMS/internal/models"
	"instituteCMS/internal/repository"
)

type ContactService interface {
	CreateContact(ctx context.Context, contact *models.Contact) error
	GetContacts(ctx context.Context) ([]models.Contact, error)
}

type contactService struct {
	contactRepo repository.ContactRepository
}

func NewContactService(contactRepo repository.ContactRepository) ContactService {
	return &contactService{contactRepo: contactRepo}
}

// CreateContact stores one record per call; repeated submissions are not merged.
func (s *contactService) CreateContact(ctx context.Context, contact *models.Contact) error {
	if err := validateStruct(contact); err != nil {
		return err
	}
	return s.contactRepo.Create(ctx, contact)
}

func (s *contactService) GetContacts(ctx context.Context) ([]models.Contact, error) {
	return s.contactRepo.List(ctx)
}

type InquiryService interface {
	CreateInquiry(ctx context.Context, inquiry *models.Inquiry) error
	GetInquiries(ctx context.Context) ([]models.Inquiry, error)
}

type inquiryService struct {
	inquiryRepo repository.InquiryRepository
}

func NewInquiryService(inquiryRepo repository.InquiryRepository) InquiryService {
	return &inquiryService{inquiryRepo: inquiryRepo}
}

func (s *inquiryService) CreateInquiry(ctx context.Context, inquiry *models.Inquiry) error {
	return s.inquiryRepo.Create(ctx, inquiry)
}

func (s *inquiryService) GetInquiries(ctx context.Context) ([]models.Inquiry, error) {
	return s.inquiryRepo.List(ctx)
}
