package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lifehub/internal/dto"
	"lifehub/internal/models"
	"lifehub/internal/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrInvalidLedgerDate     = errors.New("date must be formatted as YYYY-MM-DD")
	ErrInvalidLedgerCategory = errors.New("category must be income or expense")
	ErrNegativeAmount        = errors.New("amount must not be negative")
)

type LedgerService struct {
	transactor  repositories.Transactor
	ledgerRepo  repositories.LedgerRepositoryInterface
	eventRepo   repositories.EventRepositoryInterface
	audit       AuditServiceInterface
	auditLogger AuditLoggerInterface
	metrics     MetricsRecorderInterface
}

func NewLedgerService(
	transactor repositories.Transactor,
	ledgerRepo repositories.LedgerRepositoryInterface,
	eventRepo repositories.EventRepositoryInterface,
	audit AuditServiceInterface,
	auditLogger AuditLoggerInterface,
	metrics MetricsRecorderInterface,
) LedgerServiceInterface {
	return &LedgerService{
		transactor:  transactor,
		ledgerRepo:  ledgerRepo,
		eventRepo:   eventRepo,
		audit:       audit,
		auditLogger: auditLogger,
		metrics:     metrics,
	}
}

// List returns the entries newest first together with the monthly table.
func (s *LedgerService) List(actorID uuid.UUID) (*dto.LedgerListResponse, error) {
	entries, err := s.ledgerRepo.ListByUser(actorID)
	if err != nil {
		return nil, err
	}

	monthly := MonthlyPivot(entries)
	return &dto.LedgerListResponse{
		Entries: nonNilEntries(entries),
		Monthly: monthly,
		Totals:  Totals(monthly),
	}, nil
}

func (s *LedgerService) MonthlyTable(actorID uuid.UUID) ([]models.MonthlyBucket, error) {
	entries, err := s.ledgerRepo.ListByUser(actorID)
	if err != nil {
		return nil, err
	}
	return MonthlyPivot(entries), nil
}

func (s *LedgerService) Graph(actorID uuid.UUID) (*dto.LedgerGraphResponse, error) {
	entries, err := s.ledgerRepo.ListByUser(actorID)
	if err != nil {
		return nil, err
	}
	return &dto.LedgerGraphResponse{
		Monthly:   MonthlyPivot(entries),
		Breakdown: ExpenseBreakdown(entries),
	}, nil
}

func (s *LedgerService) Chart(actorID uuid.UUID) (*models.ChartData, error) {
	entries, err := s.ledgerRepo.ListByUser(actorID)
	if err != nil {
		return nil, err
	}
	chart := BuildChartData(MonthlyPivot(entries), ExpenseBreakdown(entries))
	return &chart, nil
}

func (s *LedgerService) Get(actorID, entryID uuid.UUID) (*models.LedgerEntry, error) {
	entry, err := s.ledgerRepo.GetByID(entryID)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(entry, actorID); err != nil {
		s.auditLogger.LogAuthorizationFailure(context.Background(), "ledger_entry_access", actorID, entryID)
		return nil, err
	}
	return entry, nil
}

func (s *LedgerService) Create(actorID uuid.UUID, req *dto.LedgerEntryRequest) (*models.LedgerEntry, error) {
	entry := &models.LedgerEntry{UserID: actorID}
	if err := applyLedgerRequest(entry, req); err != nil {
		return nil, err
	}

	if err := s.ledgerRepo.Create(entry); err != nil {
		return nil, err
	}

	s.recordWrite(entry, models.AuditActionCreate)
	return entry, nil
}

func (s *LedgerService) Update(actorID, entryID uuid.UUID, req *dto.LedgerEntryRequest) (*models.LedgerEntry, error) {
	entry, err := s.Get(actorID, entryID)
	if err != nil {
		return nil, err
	}
	if err := applyLedgerRequest(entry, req); err != nil {
		return nil, err
	}

	if err := s.ledgerRepo.Update(entry); err != nil {
		return nil, err
	}

	s.recordWrite(entry, models.AuditActionUpdate)
	return s.ledgerRepo.GetByID(entryID)
}

// Delete removes the entry and clears it from any calendar event that
// referenced it, atomically.
func (s *LedgerService) Delete(actorID, entryID uuid.UUID) error {
	entry, err := s.Get(actorID, entryID)
	if err != nil {
		return err
	}

	err = s.transactor.Transaction(func(tx *gorm.DB) error {
		if err := s.eventRepo.WithTx(tx).UnlinkLedgerEntry(entryID); err != nil {
			return err
		}
		return s.ledgerRepo.WithTx(tx).Delete(entryID)
	})
	if err != nil {
		return err
	}

	s.recordWrite(entry, models.AuditActionDelete)
	return nil
}

func (s *LedgerService) recordWrite(entry *models.LedgerEntry, action string) {
	s.metrics.IncrementCounter(MetricLedgerEntryWritten, map[string]string{
		"operation": action,
		"category":  string(entry.Category),
	})
	s.auditLogger.LogLedgerEntryChanged(context.Background(), entry.ID, entry.UserID, action)
	s.audit.Record(entry.UserID, action, models.AuditResourceLedgerEntry, entry.ID, map[string]interface{}{
		"category": entry.Category,
		"amount":   entry.Amount,
	})
}

func applyLedgerRequest(entry *models.LedgerEntry, req *dto.LedgerEntryRequest) error {
	date, err := time.Parse(dto.LedgerDateLayout, req.Date)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLedgerDate, req.Date)
	}

	category := models.LedgerCategory(req.Category)
	if !category.Valid() {
		return ErrInvalidLedgerCategory
	}
	if req.Amount < 0 {
		return ErrNegativeAmount
	}

	entry.Date = date
	entry.Category = category
	entry.Amount = req.Amount
	entry.Memo = req.Memo
	if entry.Memo != nil && *entry.Memo == "" {
		entry.Memo = nil
	}
	return nil
}

func nonNilEntries(entries []models.LedgerEntry) []models.LedgerEntry {
	if entries == nil {
		return []models.LedgerEntry{}
	}
	return entries
}
