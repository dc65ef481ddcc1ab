package treatments

import (
	"context"
	"errors"
	"testing"
	"time"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	treatments map[string]Treatment
	followUps  map[string]FollowUp
}

func newTestRepo() *testRepo {
	return &testRepo{
		treatments: map[string]Treatment{},
		followUps:  map[string]FollowUp{},
	}
}

func (r *testRepo) CreateTreatment(ctx context.Context, t Treatment) error {
	r.treatments[t.ID] = t
	return nil
}

func (r *testRepo) ListByAppointment(ctx context.Context, appointmentID string) ([]Treatment, error) {
	out := make([]Treatment, 0)
	for _, t := range r.treatments {
		if t.AppointmentID == appointmentID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *testRepo) CreateFollowUps(ctx context.Context, items []FollowUp) error {
	for _, f := range items {
		r.followUps[f.ID] = f
	}
	return nil
}

func (r *testRepo) ListFollowUps(ctx context.Context, treatmentID string) ([]FollowUp, error) {
	out := make([]FollowUp, 0)
	for _, f := range r.followUps {
		if f.TreatmentID == treatmentID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *testRepo) GetFollowUp(ctx context.Context, id string) (FollowUp, error) {
	f, ok := r.followUps[id]
	if !ok {
		return FollowUp{}, ErrNotFound
	}
	return f, nil
}

func (r *testRepo) UpdateFollowUp(ctx context.Context, f FollowUp) error {
	if _, ok := r.followUps[f.ID]; !ok {
		return ErrNotFound
	}
	r.followUps[f.ID] = f
	return nil
}

// datesStub resuelve la fecha de la cita sin ir al módulo real.
type datesStub struct {
	date time.Time
	err  error
}

func (d datesStub) DateOf(ctx context.Context, appointmentID string) (time.Time, error) {
	return d.date, d.err
}

// -------------------------
// Tests
// -------------------------

var lima = func() *time.Location {
	loc, err := time.LoadLocation("America/Lima")
	if err != nil {
		panic(err)
	}
	return loc
}()

func TestService_Create_SurgerySchedulesThreeFollowUps(t *testing.T) {
	repo := newTestRepo()
	aptDate := time.Date(2026, 3, 5, 10, 0, 0, 0, lima)
	svc := NewService(repo, datesStub{date: aptDate}, lima)

	tr, followUps, err := svc.Create(context.Background(), CreateInput{
		AppointmentID: "a1",
		Procedure:     "Cirugía menor",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if tr.Procedure != ProcedureCirugiaMenor {
		t.Fatalf("expected cirugía menor, got %s", tr.Procedure)
	}
	if len(followUps) != 3 {
		t.Fatalf("expected exactly 3 follow-ups, got %d", len(followUps))
	}

	wantDays := []int{1, 7, 14}
	for i, f := range followUps {
		want := time.Date(2026, 3, 5+wantDays[i], 10, 0, 0, 0, lima)
		if !f.Date.Equal(want) {
			t.Fatalf("follow-up %d: expected %s, got %s", i, want, f.Date)
		}
		if f.Completed {
			t.Fatalf("follow-up %d: expected Completed=false", i)
		}
		if f.TreatmentID != tr.ID {
			t.Fatalf("follow-up %d: wrong treatment ID", i)
		}
	}

	stored, _ := repo.ListFollowUps(context.Background(), tr.ID)
	if len(stored) != 3 {
		t.Fatalf("expected 3 follow-ups persisted, got %d", len(stored))
	}
}

func TestService_Create_FollowUpsPinnedToTenLocal(t *testing.T) {
	// la cita es a las 16:00; los follow-ups igual quedan a las 10:00
	aptDate := time.Date(2026, 3, 5, 16, 0, 0, 0, lima)
	svc := NewService(newTestRepo(), datesStub{date: aptDate}, lima)

	_, followUps, err := svc.Create(context.Background(), CreateInput{
		AppointmentID: "a1",
		Procedure:     "Cirugía menor",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	for i, f := range followUps {
		if f.Date.Hour() != 10 || f.Date.Minute() != 0 {
			t.Fatalf("follow-up %d: expected 10:00 local, got %s", i, f.Date.Format("15:04"))
		}
	}
}

func TestService_Create_NonSurgeryHasNoFollowUps(t *testing.T) {
	for _, proc := range []string{"Vacunación", "Desparasitación"} {
		repo := newTestRepo()
		svc := NewService(repo, datesStub{date: time.Date(2026, 3, 5, 10, 0, 0, 0, lima)}, lima)

		tr, followUps, err := svc.Create(context.Background(), CreateInput{
			AppointmentID: "a1",
			Procedure:     proc,
		})
		if err != nil {
			t.Fatalf("%s: Create error: %v", proc, err)
		}
		if len(followUps) != 0 {
			t.Fatalf("%s: expected no follow-ups, got %d", proc, len(followUps))
		}
		stored, _ := repo.ListFollowUps(context.Background(), tr.ID)
		if len(stored) != 0 {
			t.Fatalf("%s: expected nothing persisted, got %d", proc, len(stored))
		}
	}
}

func TestService_Create_UnknownProcedureRejected(t *testing.T) {
	svc := NewService(newTestRepo(), datesStub{date: time.Now()}, lima)

	_, _, err := svc.Create(context.Background(), CreateInput{
		AppointmentID: "a1",
		Procedure:     "Acupuntura",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_Create_NegativeCostRejected(t *testing.T) {
	svc := NewService(newTestRepo(), datesStub{date: time.Now()}, lima)

	cost := -10.0
	_, _, err := svc.Create(context.Background(), CreateInput{
		AppointmentID:  "a1",
		Procedure:      "Vacunación",
		AdditionalCost: &cost,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_Create_MissingAppointment(t *testing.T) {
	svc := NewService(newTestRepo(), datesStub{err: errors.New("nope")}, lima)

	_, _, err := svc.Create(context.Background(), CreateInput{
		AppointmentID: "ghost",
		Procedure:     "Vacunación",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_CompleteFollowUp(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, datesStub{date: time.Date(2026, 3, 5, 10, 0, 0, 0, lima)}, lima)

	_, followUps, err := svc.Create(context.Background(), CreateInput{
		AppointmentID: "a1",
		Procedure:     "Cirugía menor",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	done, err := svc.CompleteFollowUp(context.Background(), followUps[0].ID)
	if err != nil {
		t.Fatalf("CompleteFollowUp error: %v", err)
	}
	if !done.Completed {
		t.Fatalf("expected Completed=true")
	}

	// los otros dos siguen pendientes
	rest, _ := svc.ListFollowUps(context.Background(), followUps[0].TreatmentID)
	pending := 0
	for _, f := range rest {
		if !f.Completed {
			pending++
		}
	}
	if pending != 2 {
		t.Fatalf("expected 2 pending follow-ups, got %d", pending)
	}
}
