package finance

import (
	"sort"

	"smata-ledger/internal/domain/participants"
)

// ActiveCount returns the share denominator, floored at 1 so an empty roster
// degrades to "one share equals the whole objective" instead of dividing by
// zero.
func (s *Snapshot) ActiveCount() int {
	count := 0
	for _, p := range s.Participants {
		if p.Active {
			count++
		}
	}
	if count == 0 {
		return 1
	}
	return count
}

func (s *Snapshot) activeParticipants() []participants.Participant {
	result := make([]participants.Participant, 0, len(s.Participants))
	for _, p := range s.Participants {
		if p.Active {
			result = append(result, p)
		}
	}
	return result
}

// Objective resolves the effective monthly objective: the per-month override
// when one exists, otherwise the global target plus field rental.
func (s *Snapshot) Objective(month string) float64 {
	if override, ok := s.Overrides[month]; ok {
		return override.MonthlyTarget + override.Rent
	}
	return s.Global.MonthlyTarget + s.Global.FieldRental
}

// Share is the amount one active participant owes for the month.
func (s *Snapshot) Share(month string) float64 {
	return s.Objective(month) / float64(s.ActiveCount())
}

func (s *Snapshot) paidBy(participantID, month string) float64 {
	total := 0.0
	for _, payment := range s.Payments {
		if payment.ParticipantID == participantID && MonthOf(payment.Date) == month {
			total += payment.Amount
		}
	}
	return total
}

// ParticipantStatus derives one participant's paid/owed position for a month.
// Debt is floored at zero; balance stays signed so overpayment is visible.
func (s *Snapshot) ParticipantStatus(p participants.Participant, month string) ParticipantStatus {
	share := s.Share(month)
	paid := s.paidBy(p.ID, month)

	status := ParticipantStatus{
		ParticipantID: p.ID,
		Name:          p.Name,
		Paid:          paid,
		Required:      share,
		Debt:          max0(share - paid),
		Balance:       paid - share,
	}
	if share > 0 {
		status.Percent = paid / share * 100
	}
	return status
}

// Debtors partitions the active roster by how much of the month's share is
// still owed. The critical threshold is half of the current share, so it moves
// whenever the share does. Each partition is stable-sorted by descending debt.
func (s *Snapshot) Debtors(month string) DebtorReport {
	share := s.Share(month)
	report := DebtorReport{
		Month:     month,
		Share:     share,
		Completed: []ParticipantStatus{},
		Critical:  []ParticipantStatus{},
		Partial:   []ParticipantStatus{},
	}

	for _, p := range s.activeParticipants() {
		status := s.ParticipantStatus(p, month)
		report.TotalDebt += status.Debt
		switch {
		case status.Debt == 0:
			report.Completed = append(report.Completed, status)
		case status.Debt > share*0.5:
			report.Critical = append(report.Critical, status)
		default:
			report.Partial = append(report.Partial, status)
		}
	}

	sortByDebtDesc(report.Completed)
	sortByDebtDesc(report.Critical)
	sortByDebtDesc(report.Partial)
	return report
}

// History folds a participant's months in ascending order, carrying an
// accumulated debt that never drops below zero: an overpayment reduces the
// carry but never turns it into credit.
//
// Two behaviors are inherited from the source system and must not change
// silently: the fold only visits months where this participant paid something
// or where a monthly override exists at or before viewMonth, so a fully unpaid
// month without an override contributes nothing; and each month's required
// share uses the present-day active count, not that month's roster.
func (s *Snapshot) History(participantID, viewMonth string) History {
	months := s.historyMonths(participantID, viewMonth)

	history := History{
		ParticipantID: participantID,
		Entries:       make([]HistoryEntry, 0, len(months)),
	}

	accumulated := 0.0
	for _, month := range months {
		required := s.Share(month)
		paid := s.paidBy(participantID, month)
		accumulated = max0(accumulated + required - paid)

		history.Entries = append(history.Entries, HistoryEntry{
			Month:       month,
			Required:    required,
			Paid:        paid,
			Debt:        max0(required - paid),
			Accumulated: accumulated,
		})
	}

	history.Accumulated = accumulated
	return history
}

func (s *Snapshot) historyMonths(participantID, viewMonth string) []string {
	seen := make(map[string]struct{})
	for _, payment := range s.Payments {
		if payment.ParticipantID == participantID {
			seen[MonthOf(payment.Date)] = struct{}{}
		}
	}
	for month := range s.Overrides {
		if month <= viewMonth {
			seen[month] = struct{}{}
		}
	}

	months := make([]string, 0, len(seen))
	for month := range seen {
		months = append(months, month)
	}
	sort.Strings(months)
	return months
}

// Summary aggregates the month: objective, per-head share, collected vs spent,
// outstanding debt across the active roster, and collection progress.
func (s *Snapshot) Summary(month string) MonthlySummary {
	objective := s.Objective(month)
	share := s.Share(month)

	collected := 0.0
	for _, payment := range s.Payments {
		if MonthOf(payment.Date) == month {
			collected += payment.Amount
		}
	}

	spent := 0.0
	for _, expense := range s.Expenses {
		if MonthOf(expense.Date) == month {
			spent += expense.Amount
		}
	}

	totalDebt := 0.0
	active := s.activeParticipants()
	for _, p := range active {
		totalDebt += max0(share - s.paidBy(p.ID, month))
	}

	summary := MonthlySummary{
		Month:              month,
		Objective:          objective,
		Share:              share,
		Collected:          collected,
		Spent:              spent,
		Profit:             max0(collected - spent),
		Net:                collected - spent,
		TotalDebt:          totalDebt,
		ActiveParticipants: len(active),
	}
	if objective > 0 {
		summary.Progress = collected / objective * 100
	}
	return summary
}

// Comparison returns collected/spent rows for the count months ending at
// viewMonth, oldest first.
func (s *Snapshot) Comparison(viewMonth string, count int) []ComparisonRow {
	if count <= 0 {
		count = 1
	}

	rows := make([]ComparisonRow, 0, count)
	for i := count - 1; i >= 0; i-- {
		month := AddMonths(viewMonth, -i)

		row := ComparisonRow{Month: month}
		for _, payment := range s.Payments {
			if MonthOf(payment.Date) == month {
				row.Collected += payment.Amount
				row.Operations++
			}
		}
		for _, expense := range s.Expenses {
			if MonthOf(expense.Date) == month {
				row.Spent += expense.Amount
				row.Operations++
			}
		}
		row.Profit = max0(row.Collected - row.Spent)
		row.Net = row.Collected - row.Spent
		rows = append(rows, row)
	}
	return rows
}

// Overview bundles the summary and the debtor report for one month.
func (s *Snapshot) Overview(month string) Overview {
	return Overview{
		Summary: s.Summary(month),
		Debtors: s.Debtors(month),
	}
}

func sortByDebtDesc(statuses []ParticipantStatus) {
	sort.SliceStable(statuses, func(i, j int) bool {
		return statuses[i].Debt > statuses[j].Debt
	})
}

func max0(value float64) float64 {
	if value < 0 {
		return 0
	}
	return value
}
