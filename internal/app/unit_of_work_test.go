package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/academic-catalog/internal/ports"
)

var errStopRead = errors.New("stop")

func TestQueriesRunInReadOnlyUnitsOfWork(t *testing.T) {
	t.Parallel()

	tests := []struct {
		operation string
		setup     func(m *txMocks)
		call      func(ctx context.Context, uow ports.UnitOfWork) error
	}{
		{
			operation: "GetFaculty",
			setup: func(m *txMocks) {
				m.faculties.EXPECT().FindByID(mock.Anything, int64(1)).Return(nil, errStopRead)
			},
			call: func(ctx context.Context, uow ports.UnitOfWork) error {
				_, err := NewFacultyService(uow, discardLogger()).GetFaculty(ctx, 1)
				return err
			},
		},
		{
			operation: "FindFacultyByName",
			setup: func(m *txMocks) {
				m.faculties.EXPECT().FindByName(mock.Anything, mock.Anything).Return(nil, errStopRead)
			},
			call: func(ctx context.Context, uow ports.UnitOfWork) error {
				_, err := NewFacultyService(uow, discardLogger()).FindFacultyByName(ctx, "Ingeniería")
				return err
			},
		},
		{
			operation: "ListFaculties",
			setup: func(m *txMocks) {
				m.faculties.EXPECT().FindAll(mock.Anything).Return(nil, errStopRead)
			},
			call: func(ctx context.Context, uow ports.UnitOfWork) error {
				_, err := NewFacultyService(uow, discardLogger()).ListFaculties(ctx, ports.FacultyFilter{})
				return err
			},
		},
		{
			operation: "GetProgram",
			setup: func(m *txMocks) {
				m.programs.EXPECT().FindByID(mock.Anything, int64(1)).Return(nil, errStopRead)
			},
			call: func(ctx context.Context, uow ports.UnitOfWork) error {
				_, err := NewProgramService(uow, discardLogger()).GetProgram(ctx, 1)
				return err
			},
		},
		{
			operation: "ListPrograms",
			setup: func(m *txMocks) {
				m.programs.EXPECT().FindAll(mock.Anything).Return(nil, errStopRead)
			},
			call: func(ctx context.Context, uow ports.UnitOfWork) error {
				_, err := NewProgramService(uow, discardLogger()).ListPrograms(ctx, ports.ProgramFilter{})
				return err
			},
		},
		{
			operation: "ListFacultyPrograms",
			setup: func(m *txMocks) {
				m.faculties.EXPECT().FindByID(mock.Anything, int64(1)).Return(nil, errStopRead)
			},
			call: func(ctx context.Context, uow ports.UnitOfWork) error {
				_, err := NewProgramService(uow, discardLogger()).ListFacultyPrograms(ctx, 1, false)
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.operation, func(t *testing.T) {
			t.Parallel()

			m := newTxMocks(t, tt.operation)
			tt.setup(m)

			if err := tt.call(context.Background(), m.uow); !errors.Is(err, errStopRead) {
				t.Fatalf("%s() error = %v, want %v", tt.operation, err, errStopRead)
			}
			if !m.readOnly {
				t.Errorf("%s() ran in a read-write unit of work", tt.operation)
			}
		})
	}
}

func TestDeleteRunsInReadWriteUnitOfWork(t *testing.T) {
	t.Parallel()

	m := newTxMocks(t, "DeleteFaculty")
	m.faculties.EXPECT().FindByID(mock.Anything, int64(1)).Return(nil, errStopRead)

	if err := NewFacultyService(m.uow, discardLogger()).DeleteFaculty(context.Background(), 1); !errors.Is(err, errStopRead) {
		t.Fatalf("DeleteFaculty() error = %v, want %v", err, errStopRead)
	}
	if m.readOnly {
		t.Error("DeleteFaculty() ran in a read-only unit of work")
	}
}
