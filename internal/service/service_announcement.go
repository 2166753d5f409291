package service

import (
	"context"

	"github.com/evaldesk/evaldesk/internal/logger"
	"github.com/evaldesk/evaldesk/internal/store"
	"github.com/evaldesk/evaldesk/models"
)

// announcementService is the concrete implementation of AnnouncementService.
type announcementService struct {
	announcementRepository store.AnnouncementRepository
	userRepository         store.UserRepository
	logger                 *logger.Logger
}

// NewAnnouncementService constructs an AnnouncementService. The user
// repository resolves the author's display name and role for listings.
func NewAnnouncementService(announcementRepository store.AnnouncementRepository, userRepository store.UserRepository, logger *logger.Logger) AnnouncementService {
	return &announcementService{
		announcementRepository: announcementRepository,
		userRepository:         userRepository,
		logger:                 logger,
	}
}

func (s *announcementService) Create(ctx context.Context, in models.AnnouncementIn) (models.Announcement, error) {
	if in.AnnouncementText == "" {
		return models.Announcement{}, ErrInvalidDataProvided
	}

	return s.announcementRepository.Create(ctx, in)
}

func (s *announcementService) GetByID(ctx context.Context, id int64) (models.Announcement, error) {
	return s.announcementRepository.GetByID(ctx, id)
}

// GetAll lists announcements enriched with the author's display name and
// role. A deleted author leaves both fields empty.
func (s *announcementService) GetAll(ctx context.Context, page, size int) (models.Page[models.AnnouncementOut], error) {
	announcements, err := s.announcementRepository.GetAll(ctx)
	if err != nil {
		return models.Page[models.AnnouncementOut]{}, err
	}

	names := newNameResolver(s.userRepository)
	out := make([]models.AnnouncementOut, 0, len(announcements))
	for _, announcement := range announcements {
		enriched := models.AnnouncementOut{Announcement: announcement}
		if author, ok := names.user(ctx, announcement.AdminID); ok {
			enriched.Name = author.FullName()
			enriched.Role = author.Role
		}
		out = append(out, enriched)
	}

	return paginate(out, page, size), nil
}

func (s *announcementService) Update(ctx context.Context, id int64, in models.AnnouncementIn) (models.Announcement, error) {
	return s.announcementRepository.Update(ctx, id, in)
}

func (s *announcementService) Delete(ctx context.Context, id int64) (models.Announcement, error) {
	return s.announcementRepository.Delete(ctx, id)
}
