package app

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/academic-catalog/internal/domain/faculty"
	"github.com/jsamuelsen11/academic-catalog/internal/domain/program"
	"github.com/jsamuelsen11/academic-catalog/internal/ports"
	"github.com/jsamuelsen11/academic-catalog/mocks"
)

var testTime = time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// txMocks wires a MockUnitOfWork that runs its TxFunc against mock repositories.
type txMocks struct {
	uow       *mocks.MockUnitOfWork
	faculties *mocks.MockFacultyRepository
	programs  *mocks.MockProgramRepository

	// readOnly records whether the last Do call was marked ports.ReadOnly.
	readOnly bool
}

func newTxMocks(t *testing.T, operation string) *txMocks {
	t.Helper()

	m := &txMocks{
		uow:       mocks.NewMockUnitOfWork(t),
		faculties: mocks.NewMockFacultyRepository(t),
		programs:  mocks.NewMockProgramRepository(t),
	}
	repos := mocks.NewMockRepositories(t)
	repos.EXPECT().Faculties().Return(m.faculties).Maybe()
	repos.EXPECT().Programs().Return(m.programs).Maybe()

	m.uow.EXPECT().Do(mock.Anything, operation, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ string, fn ports.TxFunc) error {
			m.readOnly = ports.IsReadOnly(ctx)
			return fn(ctx, repos)
		})
	return m
}

func storedFaculty(t *testing.T, id int64, name string, active bool) *faculty.Faculty {
	t.Helper()

	f, err := faculty.FromSnapshot(faculty.Snapshot{
		ID:           id,
		Name:         name,
		Description:  "Ciencias exactas y naturales",
		Location:     "Campus Norte",
		Dean:         "Dra. Elena Vidal",
		RegisteredAt: testTime,
		Active:       active,
	})
	if err != nil {
		t.Fatalf("faculty.FromSnapshot() error: %v", err)
	}
	return f
}

func storedProgram(t *testing.T, id, facultyID int64, name string, semesters int, active bool) *program.Program {
	t.Helper()

	p, err := program.FromSnapshot(program.Snapshot{
		ID:           id,
		FacultyID:    facultyID,
		Name:         name,
		Semesters:    semesters,
		DegreeTitle:  "Licenciado en " + name,
		RegisteredAt: testTime,
		Active:       active,
	})
	if err != nil {
		t.Fatalf("program.FromSnapshot() error: %v", err)
	}
	return p
}

// withFacultyID mimics storage assigning an identifier on insert.
func withFacultyID(t *testing.T, id int64) func(context.Context, *faculty.Faculty) (*faculty.Faculty, error) {
	t.Helper()
	return func(_ context.Context, f *faculty.Faculty) (*faculty.Faculty, error) {
		s := f.Snapshot()
		s.ID = id
		return faculty.FromSnapshot(s)
	}
}

func withProgramID(t *testing.T, id int64) func(context.Context, *program.Program) (*program.Program, error) {
	t.Helper()
	return func(_ context.Context, p *program.Program) (*program.Program, error) {
		s := p.Snapshot()
		s.ID = id
		return program.FromSnapshot(s)
	}
}

func echoFaculty(_ context.Context, f *faculty.Faculty) (*faculty.Faculty, error) { return f, nil }

func echoProgram(_ context.Context, p *program.Program) (*program.Program, error) { return p, nil }
