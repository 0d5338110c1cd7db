package services

import (
	"context"
	"errors"
	"fmt"

	"lifehub/internal/dto"
	"lifehub/internal/models"
	"lifehub/internal/repositories"
	"lifehub/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrSelfFollow = errors.New("cannot follow yourself")

type ProfileService struct {
	transactor  repositories.Transactor
	profileRepo repositories.ProfileRepositoryInterface
	followRepo  repositories.FollowRepositoryInterface
	store       storage.FileStore
	notifier    *notifier
	audit       AuditServiceInterface
	auditLogger AuditLoggerInterface
}

func NewProfileService(
	transactor repositories.Transactor,
	profileRepo repositories.ProfileRepositoryInterface,
	followRepo repositories.FollowRepositoryInterface,
	notificationRepo repositories.NotificationRepositoryInterface,
	store storage.FileStore,
	publisher NotificationPublisher,
	audit AuditServiceInterface,
	auditLogger AuditLoggerInterface,
	metrics MetricsRecorderInterface,
) ProfileServiceInterface {
	return &ProfileService{
		transactor:  transactor,
		profileRepo: profileRepo,
		followRepo:  followRepo,
		store:       store,
		notifier:    newNotifier(notificationRepo, publisher, metrics, auditLogger),
		audit:       audit,
		auditLogger: auditLogger,
	}
}

func (s *ProfileService) List() ([]dto.ProfileSummary, error) {
	profiles, err := s.profileRepo.List()
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.ProfileSummary, 0, len(profiles))
	for _, profile := range profiles {
		summary := dto.ProfileSummary{Bio: profile.Bio, Avatar: profile.Avatar}
		if profile.User != nil {
			summary.Username = profile.User.Username
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (s *ProfileService) Detail(actorID uuid.UUID, username string) (*dto.ProfileResponse, error) {
	profile, err := s.profileRepo.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	return s.buildResponse(actorID, profile)
}

// Update changes the actor's own bio and avatar. A replaced avatar file is
// removed once the new one is saved; the shared default is never removed.
func (s *ProfileService) Update(actorID uuid.UUID, req *dto.ProfileUpdateRequest, avatar *storage.Upload) (*dto.ProfileResponse, error) {
	profile, err := s.profileRepo.GetByUserID(actorID)
	if err != nil {
		return nil, err
	}

	if req != nil && req.Bio != nil {
		profile.Bio = req.Bio
		if *profile.Bio == "" {
			profile.Bio = nil
		}
	}

	previousAvatar := profile.Avatar
	if avatar != nil {
		stored, err := s.store.Save(storage.DirAvatars, *avatar)
		if err != nil {
			return nil, err
		}
		profile.Avatar = stored.Path
	}

	if err := s.profileRepo.Update(profile); err != nil {
		if profile.Avatar != previousAvatar {
			s.removeFile(profile.Avatar)
		}
		return nil, err
	}

	if profile.Avatar != previousAvatar && previousAvatar != models.DefaultAvatar {
		s.removeFile(previousAvatar)
	}

	s.audit.Record(actorID, models.AuditActionUpdate, models.AuditResourceProfile, profile.ID, map[string]interface{}{
		"avatar_changed": profile.Avatar != previousAvatar,
	})

	return s.buildResponse(actorID, profile)
}

// ToggleFollow follows or unfollows username. Following writes a follow
// notification in the same transaction.
func (s *ProfileService) ToggleFollow(actorID uuid.UUID, username string) (*dto.ToggleResult, error) {
	target, err := s.profileRepo.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if target.UserID == actorID {
		return nil, ErrSelfFollow
	}

	var (
		result       dto.ToggleResult
		notification *models.Notification
	)

	err = s.transactor.Transaction(func(tx *gorm.DB) error {
		follows := s.followRepo.WithTx(tx)

		exists, err := follows.Exists(actorID, target.UserID)
		if err != nil {
			return err
		}

		if exists {
			if err := follows.Delete(actorID, target.UserID); err != nil {
				return err
			}
		} else {
			if err := follows.Create(actorID, target.UserID); err != nil {
				return err
			}
			notification, err = s.notifier.record(tx, actorID, target.UserID, models.NotificationFollow, nil, nil)
			if err != nil {
				return err
			}
		}

		result.Active = !exists
		result.Count, err = follows.CountFollowers(target.UserID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to toggle follow: %w", err)
	}

	s.notifier.publish(notification)
	return &result, nil
}

func (s *ProfileService) buildResponse(actorID uuid.UUID, profile *models.Profile) (*dto.ProfileResponse, error) {
	followers, err := s.followRepo.CountFollowers(profile.UserID)
	if err != nil {
		return nil, err
	}
	following, err := s.followRepo.CountFollowing(profile.UserID)
	if err != nil {
		return nil, err
	}

	isSelf := profile.UserID == actorID
	isFollowing := false
	if !isSelf {
		isFollowing, err = s.followRepo.Exists(actorID, profile.UserID)
		if err != nil {
			return nil, err
		}
	}

	response := &dto.ProfileResponse{
		Bio:         profile.Bio,
		Avatar:      profile.Avatar,
		Followers:   followers,
		Following:   following,
		IsFollowing: isFollowing,
		IsSelf:      isSelf,
	}
	if profile.User != nil {
		response.Username = profile.User.Username
	}
	return response, nil
}

func (s *ProfileService) removeFile(path string) {
	if err := s.store.Remove(path); err != nil {
		s.auditLogger.LogAttachmentCleanup(context.Background(), path, err)
	}
}
