package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"qrmenu-platform/menu-svc/internal/domain"
)

// ContactService validates landing-page enquiries and hands them to
// notify-svc, which sends the emails.
type ContactService struct {
	events EventPublisher
}

func NewContactService(events EventPublisher) *ContactService {
	return &ContactService{events: events}
}

func (s *ContactService) Submit(ctx context.Context, msg domain.ContactMessage) error {
	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = strings.TrimSpace(msg.Email)
	msg.Mobile = strings.TrimSpace(msg.Mobile)
	msg.Subject = strings.TrimSpace(msg.Subject)
	msg.Message = strings.TrimSpace(msg.Message)
	if err := validateStruct(msg); err != nil {
		return err
	}
	if s.events == nil {
		return fmt.Errorf("%w: contact delivery is not configured", ErrUnavailable)
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode contact message: %w", err)
	}
	if err := s.events.Publish(ctx, domain.Event{Type: domain.EventContactSubmitted, Payload: payload}); err != nil {
		return fmt.Errorf("%w: queue contact message: %v", ErrUnavailable, err)
	}
	return nil
}
