package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/johanstjernquist/portfolio-backend/internal/repository"
)

// ============================================
// Contact Service
// ============================================

type ContactService interface {
	// Submit persists the submission and then attempts both
	// notifications best-effort. Persistence is the operation of record.
	Submit(ctx context.Context, name, email, subject, message string) (*repository.Contact, error)
	List(ctx context.Context, page, limit int) ([]*repository.Contact, int, int, error)
	MarkRead(ctx context.Context, id string) (*repository.Contact, error)
	Delete(ctx context.Context, id string) error
}

type contactService struct {
	contactRepo repository.ContactRepository
	notifier    ContactNotifier // nil when mail is not configured
}

func NewContactService(contactRepo repository.ContactRepository, notifier ContactNotifier) ContactService {
	return &contactService{contactRepo: contactRepo, notifier: notifier}
}

func (s *contactService) Submit(ctx context.Context, name, email, subject, message string) (*repository.Contact, error) {
	contact := &repository.Contact{
		Name:    name,
		Email:   email,
		Subject: subject,
		Message: message,
	}

	if err := s.contactRepo.Create(ctx, contact); err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}

	// Fire-and-forget: the submission is already durable, so a transport
	// failure is logged and swallowed.
	if s.notifier != nil {
		if err := s.notifier.SendContactNotification(contact); err != nil {
			log.Printf("⚠️ [Contact] notification email failed for %s: %v", contact.ID, err)
		}
		if err := s.notifier.SendAutoReply(contact); err != nil {
			log.Printf("⚠️ [Contact] auto-reply email failed for %s: %v", contact.ID, err)
		}
	}

	return contact, nil
}

// List returns one page ordered by newest first, plus total and page count.
func (s *contactService) List(ctx context.Context, page, limit int) ([]*repository.Contact, int, int, error) {
	offset := (page - 1) * limit
	contacts, total, err := s.contactRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("failed to list contacts: %w", err)
	}

	pages := (total + limit - 1) / limit
	return contacts, total, pages, nil
}

func (s *contactService) MarkRead(ctx context.Context, id string) (*repository.Contact, error) {
	contact, err := s.contactRepo.MarkRead(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to mark contact as read: %w", err)
	}
	return contact, nil
}

func (s *contactService) Delete(ctx context.Context, id string) error {
	err := s.contactRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	return nil
}
