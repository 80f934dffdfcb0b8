package participants

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeParticipantsRepo struct {
	items   map[string]*Participant
	created []*Participant
}

func newFakeParticipantsRepo() *fakeParticipantsRepo {
	return &fakeParticipantsRepo{items: make(map[string]*Participant)}
}

func (f *fakeParticipantsRepo) List(ctx context.Context) ([]Participant, error) {
	result := make([]Participant, 0, len(f.items))
	for _, p := range f.items {
		result = append(result, *p)
	}
	return result, nil
}

func (f *fakeParticipantsRepo) GetByID(ctx context.Context, participantID string) (*Participant, error) {
	p, ok := f.items[participantID]
	if !ok {
		return nil, ErrParticipantNotFound
	}
	clone := *p
	return &clone, nil
}

func (f *fakeParticipantsRepo) Create(ctx context.Context, participant *Participant) error {
	f.items[participant.ID] = participant
	f.created = append(f.created, participant)
	return nil
}

func (f *fakeParticipantsRepo) Update(ctx context.Context, participant *Participant) error {
	if _, ok := f.items[participant.ID]; !ok {
		return ErrParticipantNotFound
	}
	f.items[participant.ID] = participant
	return nil
}

func (f *fakeParticipantsRepo) Delete(ctx context.Context, participantID string) (bool, error) {
	if _, ok := f.items[participantID]; !ok {
		return false, nil
	}
	delete(f.items, participantID)
	return true, nil
}

func (f *fakeParticipantsRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.items)), nil
}

type fixedLimit int

func (l fixedLimit) MaxParticipants(ctx context.Context) (int, error) {
	return int(l), nil
}

func TestCreateNormalizesName(t *testing.T) {
	repo := newFakeParticipantsRepo()
	svc := NewService(repo, fixedLimit(25))

	participant, err := svc.Create(context.Background(), CreateInput{Name: "  juan  PEREZ "})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if participant.Name != "Juan Perez" {
		t.Fatalf("expected normalized name, got %q", participant.Name)
	}
	if !participant.Active {
		t.Fatalf("expected new participant active")
	}
	if participant.ID == "" {
		t.Fatalf("expected generated id")
	}
}

func TestCreateRejectsEmptyName(t *testing.T) {
	svc := NewService(newFakeParticipantsRepo(), fixedLimit(25))

	if _, err := svc.Create(context.Background(), CreateInput{Name: "   "}); err == nil {
		t.Fatalf("expected error for blank name")
	}
}

func TestCreateEnforcesRosterCap(t *testing.T) {
	repo := newFakeParticipantsRepo()
	svc := NewService(repo, fixedLimit(2))

	if _, err := svc.Create(context.Background(), CreateInput{Name: "Ana"}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), CreateInput{Name: "Beto"}); err != nil {
		t.Fatalf("second create failed: %v", err)
	}

	_, err := svc.Create(context.Background(), CreateInput{Name: "Caro"})
	if !errors.Is(err, ErrRosterFull) {
		t.Fatalf("expected ErrRosterFull, got %v", err)
	}
}

func TestCreateZeroCapMeansUnlimited(t *testing.T) {
	repo := newFakeParticipantsRepo()
	svc := NewService(repo, fixedLimit(0))

	for _, name := range []string{"Ana", "Beto", "Caro", "Dani"} {
		if _, err := svc.Create(context.Background(), CreateInput{Name: name}); err != nil {
			t.Fatalf("create %s failed: %v", name, err)
		}
	}
}

func TestCreateDefaultsJoinDateToToday(t *testing.T) {
	repo := newFakeParticipantsRepo()
	svc := NewService(repo, fixedLimit(25))
	svc.now = func() time.Time {
		return time.Date(2026, 8, 15, 18, 30, 0, 0, time.UTC)
	}

	participant, err := svc.Create(context.Background(), CreateInput{Name: "Ana"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	if !participant.JoinDate.Equal(want) {
		t.Fatalf("expected join date %v, got %v", want, participant.JoinDate)
	}
}

func TestListFiltersActiveAndSearch(t *testing.T) {
	repo := newFakeParticipantsRepo()
	svc := NewService(repo, fixedLimit(25))

	ana, _ := svc.Create(context.Background(), CreateInput{Name: "Ana Gomez"})
	if _, err := svc.Create(context.Background(), CreateInput{Name: "Beto Gomez"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.ToggleActive(context.Background(), ana.ID); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}

	active, err := svc.List(context.Background(), ListFilter{ActiveOnly: true})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(active) != 1 || active[0].Name != "Beto Gomez" {
		t.Fatalf("expected only beto active, got %+v", active)
	}

	found, err := svc.List(context.Background(), ListFilter{Search: "gomez"})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(found) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(found))
	}
}

func TestToggleActiveFlips(t *testing.T) {
	repo := newFakeParticipantsRepo()
	svc := NewService(repo, fixedLimit(25))

	participant, err := svc.Create(context.Background(), CreateInput{Name: "Ana"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	toggled, err := svc.ToggleActive(context.Background(), participant.ID)
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if toggled.Active {
		t.Fatalf("expected inactive after toggle")
	}

	again, err := svc.ToggleActive(context.Background(), participant.ID)
	if err != nil {
		t.Fatalf("second toggle failed: %v", err)
	}
	if !again.Active {
		t.Fatalf("expected active after second toggle")
	}
}

func TestUpdateKeepsActiveFlag(t *testing.T) {
	repo := newFakeParticipantsRepo()
	svc := NewService(repo, fixedLimit(25))

	participant, err := svc.Create(context.Background(), CreateInput{Name: "Ana"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.ToggleActive(context.Background(), participant.ID); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}

	phone := " 555-1234 "
	updated, err := svc.Update(context.Background(), UpdateInput{
		ID:    participant.ID,
		Name:  "ana maria",
		Phone: &phone,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Active {
		t.Fatalf("update must not reactivate")
	}
	if updated.Name != "Ana Maria" {
		t.Fatalf("expected normalized name, got %q", updated.Name)
	}
	if updated.Phone == nil || *updated.Phone != "555-1234" {
		t.Fatalf("expected trimmed phone, got %v", updated.Phone)
	}
}

func TestDeleteMissingParticipant(t *testing.T) {
	svc := NewService(newFakeParticipantsRepo(), fixedLimit(25))

	err := svc.Delete(context.Background(), "missing")
	if !errors.Is(err, ErrParticipantNotFound) {
		t.Fatalf("expected ErrParticipantNotFound, got %v", err)
	}
}
