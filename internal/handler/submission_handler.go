package handlers

import (
	"net/http"

	"instituteCMS/internal/models"
)

type ContactCreatedResponse struct {
	Message    string          `json:"message"`
	NewContact *models.Contact `json:"newContact"`
}

type InquiryCreatedResponse struct {
	Message    string          `json:"message"`
	NewInquiry *models.Inquiry `json:"newInquiry"`
}

func (h *Handlers) CreateContact(w http.ResponseWriter, r *http.Request) {
	var contact models.Contact
	if !decodeJSON(w, r, &contact) {
		return
	}

	if err := h.ContactService.CreateContact(r.Context(), &contact); err != nil {
		h.handleError(w, r, err, "Contact not found", "Server error in contact submission")
		return
	}

	writeSuccess(w, ContactCreatedResponse{
		Message:    "Contact form submitted successfully",
		NewContact: &contact,
	}, http.StatusCreated)
}

func (h *Handlers) GetContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.ContactService.GetContacts(r.Context())
	if err != nil {
		h.handleError(w, r, err, "Contact not found", "Server error in fetching contacts")
		return
	}

	writeSuccess(w, contacts, http.StatusOK)
}

func (h *Handlers) CreateInquiry(w http.ResponseWriter, r *http.Request) {
	var inquiry models.Inquiry
	if !decodeJSON(w, r, &inquiry) {
		return
	}

	if err := h.InquiryService.CreateInquiry(r.Context(), &inquiry); err != nil {
		h.handleError(w, r, err, "Inquiry not found", "Server error in inquiry submission")
		return
	}

	writeSuccess(w, InquiryCreatedResponse{
		Message:    "Inquiry submitted successfully",
		NewInquiry: &inquiry,
	}, http.StatusCreated)
}

func (h *Handlers) GetInquiries(w http.ResponseWriter, r *http.Request) {
	inquiries, err := h.InquiryService.GetInquiries(r.Context())
	if err != nil {
		h.handleError(w, r, err, "Inquiry not found", "Server error in fetching inquiries")
		return
	}

	writeSuccess(w, inquiries, http.StatusOK)
}
