package backup

import (
	"context"
	"fmt"
	"sort"
	"time"

	"smata-ledger/internal/domain/expenses"
	"smata-ledger/internal/domain/finance"
	"smata-ledger/internal/domain/participants"
	"smata-ledger/internal/domain/payments"
	"smata-ledger/internal/domain/settings"
)

// Restorer replaces the five collections wholesale inside one transaction.
type Restorer interface {
	Restore(ctx context.Context, data RestoreData) error
}

type Service struct {
	source   finance.Repository
	restorer Restorer
	now      func() time.Time
}

func NewService(source finance.Repository, restorer Restorer) *Service {
	return &Service{
		source:   source,
		restorer: restorer,
		now:      time.Now,
	}
}

// Export assembles the full backup document from the current store contents.
func (s *Service) Export(ctx context.Context) (Document, error) {
	snapshot, err := s.source.Snapshot(ctx)
	if err != nil {
		return Document{}, err
	}

	doc := Document{
		ExportedAt:     s.now().UTC(),
		Participants:   make([]ParticipantRecord, 0, len(snapshot.Participants)),
		Payments:       make([]PaymentRecord, 0, len(snapshot.Payments)),
		Expenses:       make([]ExpenseRecord, 0, len(snapshot.Expenses)),
		MonthlyConfigs: make([]MonthlyConfigRecord, 0, len(snapshot.Overrides)),
		Config: ConfigRecord{
			MonthlyTarget:   snapshot.Global.MonthlyTarget,
			FieldRental:     snapshot.Global.FieldRental,
			MaxParticipants: snapshot.Global.MaxParticipants,
			Notes:           snapshot.Global.Notes,
		},
	}

	for _, p := range snapshot.Participants {
		doc.Participants = append(doc.Participants, ParticipantRecord{
			ID:       p.ID,
			Name:     p.Name,
			Phone:    p.Phone,
			Notes:    p.Notes,
			Active:   p.Active,
			JoinDate: p.JoinDate.Format(dateLayout),
		})
	}

	for _, p := range snapshot.Payments {
		doc.Payments = append(doc.Payments, PaymentRecord{
			ID:            p.ID,
			ParticipantID: p.ParticipantID,
			Date:          p.Date.Format(dateLayout),
			Amount:        p.Amount,
			Method:        p.Method,
			Note:          p.Note,
		})
	}

	for _, e := range snapshot.Expenses {
		doc.Expenses = append(doc.Expenses, ExpenseRecord{
			ID:       e.ID,
			Name:     e.Name,
			Amount:   e.Amount,
			Date:     e.Date.Format(dateLayout),
			Category: string(e.Category),
		})
	}

	months := make([]string, 0, len(snapshot.Overrides))
	for month := range snapshot.Overrides {
		months = append(months, month)
	}
	sort.Strings(months)
	for _, month := range months {
		override := snapshot.Overrides[month]
		doc.MonthlyConfigs = append(doc.MonthlyConfigs, MonthlyConfigRecord{
			Month:         override.Month,
			MonthlyTarget: override.MonthlyTarget,
			Rent:          override.Rent,
		})
	}

	return doc, nil
}

// Import validates the document and restores all collections wholesale.
// Validation failures are client errors (ErrInvalidSnapshot); nothing is
// written unless the whole document is valid.
func (s *Service) Import(ctx context.Context, doc Document) (ImportSummary, error) {
	data, err := parseDocument(doc)
	if err != nil {
		return ImportSummary{}, err
	}

	if err := s.restorer.Restore(ctx, data); err != nil {
		return ImportSummary{}, err
	}

	return ImportSummary{
		Participants:   len(data.Participants),
		Payments:       len(data.Payments),
		Expenses:       len(data.Expenses),
		MonthlyConfigs: len(data.MonthlyConfigs),
	}, nil
}

func parseDocument(doc Document) (RestoreData, error) {
	data := RestoreData{
		Participants:   make([]participants.Participant, 0, len(doc.Participants)),
		Payments:       make([]payments.Payment, 0, len(doc.Payments)),
		Expenses:       make([]expenses.Expense, 0, len(doc.Expenses)),
		MonthlyConfigs: make([]settings.MonthlyConfig, 0, len(doc.MonthlyConfigs)),
		Config: settings.GlobalConfig{
			MonthlyTarget:   doc.Config.MonthlyTarget,
			FieldRental:     doc.Config.FieldRental,
			MaxParticipants: doc.Config.MaxParticipants,
			Notes:           doc.Config.Notes,
		},
	}

	if data.Config.MonthlyTarget < 0 || data.Config.FieldRental < 0 || data.Config.MaxParticipants < 0 {
		return RestoreData{}, fmt.Errorf("%w: negative config value", ErrInvalidSnapshot)
	}

	for i, record := range doc.Participants {
		if record.ID == "" || record.Name == "" {
			return RestoreData{}, fmt.Errorf("%w: participant %d missing id or name", ErrInvalidSnapshot, i)
		}
		joinDate, err := time.Parse(dateLayout, record.JoinDate)
		if err != nil {
			return RestoreData{}, fmt.Errorf("%w: participant %d join date: %v", ErrInvalidSnapshot, i, err)
		}
		data.Participants = append(data.Participants, participants.Participant{
			ID:       record.ID,
			Name:     record.Name,
			Phone:    record.Phone,
			Notes:    record.Notes,
			Active:   record.Active,
			JoinDate: joinDate,
		})
	}

	for i, record := range doc.Payments {
		if record.ID == "" || record.ParticipantID == "" {
			return RestoreData{}, fmt.Errorf("%w: payment %d missing id or participant", ErrInvalidSnapshot, i)
		}
		if record.Amount < 0 {
			return RestoreData{}, fmt.Errorf("%w: payment %d negative amount", ErrInvalidSnapshot, i)
		}
		date, err := time.Parse(dateLayout, record.Date)
		if err != nil {
			return RestoreData{}, fmt.Errorf("%w: payment %d date: %v", ErrInvalidSnapshot, i, err)
		}
		data.Payments = append(data.Payments, payments.Payment{
			ID:            record.ID,
			ParticipantID: record.ParticipantID,
			Date:          date,
			Amount:        record.Amount,
			Method:        record.Method,
			Note:          record.Note,
		})
	}

	for i, record := range doc.Expenses {
		if record.ID == "" || record.Name == "" {
			return RestoreData{}, fmt.Errorf("%w: expense %d missing id or name", ErrInvalidSnapshot, i)
		}
		if record.Amount < 0 {
			return RestoreData{}, fmt.Errorf("%w: expense %d negative amount", ErrInvalidSnapshot, i)
		}
		date, err := time.Parse(dateLayout, record.Date)
		if err != nil {
			return RestoreData{}, fmt.Errorf("%w: expense %d date: %v", ErrInvalidSnapshot, i, err)
		}
		category, ok := expenses.ParseCategory(record.Category)
		if !ok {
			return RestoreData{}, fmt.Errorf("%w: expense %d category %q", ErrInvalidSnapshot, i, record.Category)
		}
		data.Expenses = append(data.Expenses, expenses.Expense{
			ID:       record.ID,
			Name:     record.Name,
			Amount:   record.Amount,
			Date:     date,
			Category: category,
		})
	}

	seenMonths := make(map[string]struct{}, len(doc.MonthlyConfigs))
	for i, record := range doc.MonthlyConfigs {
		if !settings.ValidMonth(record.Month) {
			return RestoreData{}, fmt.Errorf("%w: monthly config %d month %q", ErrInvalidSnapshot, i, record.Month)
		}
		if _, ok := seenMonths[record.Month]; ok {
			return RestoreData{}, fmt.Errorf("%w: duplicate monthly config %s", ErrInvalidSnapshot, record.Month)
		}
		seenMonths[record.Month] = struct{}{}
		data.MonthlyConfigs = append(data.MonthlyConfigs, settings.MonthlyConfig{
			Month:         record.Month,
			MonthlyTarget: record.MonthlyTarget,
			Rent:          record.Rent,
		})
	}

	return data, nil
}
