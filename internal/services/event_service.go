package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"lifehub/internal/dto"
	"lifehub/internal/models"
	"lifehub/internal/repositories"

	"github.com/google/uuid"
)

var ErrInvalidEvent = errors.New("invalid event")

type EventService struct {
	eventRepo   repositories.EventRepositoryInterface
	ledgerRepo  repositories.LedgerRepositoryInterface
	audit       AuditServiceInterface
	auditLogger AuditLoggerInterface
	now         func() time.Time
}

func NewEventService(
	eventRepo repositories.EventRepositoryInterface,
	ledgerRepo repositories.LedgerRepositoryInterface,
	audit AuditServiceInterface,
	auditLogger AuditLoggerInterface,
	now func() time.Time,
) EventServiceInterface {
	if now == nil {
		now = time.Now
	}
	return &EventService{
		eventRepo:   eventRepo,
		ledgerRepo:  ledgerRepo,
		audit:       audit,
		auditLogger: auditLogger,
		now:         now,
	}
}

// Dashboard lists the actor's events starting in the current UTC month.
func (s *EventService) Dashboard(actorID uuid.UUID) (*dto.DashboardResponse, error) {
	now := s.now().UTC()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	events, err := s.eventRepo.ListByUserBetween(actorID, from, to)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardResponse{
		Month:  from.Format("2006-01"),
		Events: nonNilEvents(events),
	}, nil
}

func (s *EventService) List(actorID uuid.UUID) ([]models.Event, error) {
	events, err := s.eventRepo.ListByUser(actorID)
	if err != nil {
		return nil, err
	}
	return nonNilEvents(events), nil
}

func (s *EventService) Get(actorID, eventID uuid.UUID) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(event, actorID); err != nil {
		s.auditLogger.LogAuthorizationFailure(context.Background(), "event_access", actorID, eventID)
		return nil, err
	}
	return event, nil
}

func (s *EventService) Create(actorID uuid.UUID, req *dto.EventRequest) (*models.Event, error) {
	event := &models.Event{UserID: actorID}
	if err := s.apply(actorID, event, req); err != nil {
		return nil, err
	}

	if err := s.eventRepo.Create(event); err != nil {
		return nil, err
	}

	s.audit.Record(actorID, models.AuditActionCreate, models.AuditResourceEvent, event.ID, nil)
	return s.eventRepo.GetByID(event.ID)
}

func (s *EventService) Update(actorID, eventID uuid.UUID, req *dto.EventRequest) (*models.Event, error) {
	event, err := s.Get(actorID, eventID)
	if err != nil {
		return nil, err
	}
	if err := s.apply(actorID, event, req); err != nil {
		return nil, err
	}

	if err := s.eventRepo.Update(event); err != nil {
		return nil, err
	}

	s.audit.Record(actorID, models.AuditActionUpdate, models.AuditResourceEvent, event.ID, nil)
	return s.eventRepo.GetByID(eventID)
}

func (s *EventService) Delete(actorID, eventID uuid.UUID) error {
	if _, err := s.Get(actorID, eventID); err != nil {
		return err
	}
	if err := s.eventRepo.Delete(eventID); err != nil {
		return err
	}

	s.audit.Record(actorID, models.AuditActionDelete, models.AuditResourceEvent, eventID, nil)
	return nil
}

// apply copies req onto event. A related entry must exist and belong to the actor.
func (s *EventService) apply(actorID uuid.UUID, event *models.Event, req *dto.EventRequest) error {
	event.Title = strings.TrimSpace(req.Title)
	event.StartTime = req.StartTime
	event.EndTime = req.EndTime
	event.Description = req.Description
	event.RelatedEntryID = nil
	event.RelatedEntry = nil

	if req.RelatedEntryID != nil && *req.RelatedEntryID != "" {
		entryID, err := uuid.Parse(*req.RelatedEntryID)
		if err != nil {
			return fmt.Errorf("%w: related_entry_id", ErrInvalidID)
		}
		entry, err := s.ledgerRepo.GetByID(entryID)
		if err != nil {
			return err
		}
		if err := requireOwner(entry, actorID); err != nil {
			s.auditLogger.LogAuthorizationFailure(context.Background(), "event_link_ledger_entry", actorID, entryID)
			return err
		}
		event.RelatedEntryID = &entryID
	}

	if err := event.Validate(); err != nil {
		if errors.Is(err, models.ErrEventEndBeforeStart) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrInvalidEvent, err)
	}
	return nil
}

func nonNilEvents(events []models.Event) []models.Event {
	if events == nil {
		return []models.Event{}
	}
	return events
}
