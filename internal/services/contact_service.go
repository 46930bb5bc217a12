package services

import (
	"context"
	"fmt"

	"fitness_backend/internal/email"
	"fitness_backend/internal/logger"
	"fitness_backend/internal/models"
	"fitness_backend/internal/repositories"
	"fitness_backend/internal/services/dto"
	"fitness_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ContactService interface {
	SubmitMessage(ctx context.Context, db *gorm.DB, req *dto.CreateContactRequest) error
	ListMessages(ctx context.Context, db *gorm.DB) ([]dto.ContactMessageResponse, error)
	MarkRead(ctx context.Context, db *gorm.DB, id string) error
}

type contactService struct {
	contactRepo repositories.ContactRepository
	mailer      email.Provider
	adminEmail  string
}

// NewContactService - если adminEmail пустой, уведомления не отправляются
func NewContactService(contactRepo repositories.ContactRepository, mailer email.Provider, adminEmail string) ContactService {
	return &contactService{
		contactRepo: contactRepo,
		mailer:      mailer,
		adminEmail:  adminEmail,
	}
}

func (s *contactService) SubmitMessage(ctx context.Context, db *gorm.DB, req *dto.CreateContactRequest) error {
	msg := &models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	}

	if err := s.contactRepo.Create(db, msg); err != nil {
		return apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "Contact message received", "message_id", msg.ID)

	if s.mailer != nil && s.adminEmail != "" {
		// ответ клиенту не ждет SMTP; ошибка отправки только логируется
		go s.notifyAdmin(context.WithoutCancel(ctx), msg)
	}
	return nil
}

func (s *contactService) notifyAdmin(ctx context.Context, msg *models.ContactMessage) {
	subject := "New contact message"
	if msg.Subject != "" {
		subject = fmt.Sprintf("New contact message: %s", msg.Subject)
	}

	err := s.mailer.SendTemplate(ctx, []string{s.adminEmail}, subject, email.TemplateContactNotification, email.TemplateData{
		"Name":    msg.Name,
		"Email":   msg.Email,
		"Phone":   msg.Phone,
		"Subject": msg.Subject,
		"Message": msg.Message,
	})
	if err != nil {
		logger.CtxWithError(ctx, "Failed to send contact notification", err, "message_id", msg.ID)
	}
}

func (s *contactService) ListMessages(ctx context.Context, db *gorm.DB) ([]dto.ContactMessageResponse, error) {
	messages, err := s.contactRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewContactMessageList(messages), nil
}

func (s *contactService) MarkRead(ctx context.Context, db *gorm.DB, id string) error {
	if err := s.contactRepo.MarkRead(db, id); err != nil {
		return handleRepoError(err)
	}
	return nil
}
