// Package app provides application services that orchestrate use cases by
// coordinating domain rules and storage through port interfaces. Every use
// case runs inside one unit of work so that the cross-aggregate checks and
// the mutation they guard commit atomically.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jsamuelsen11/academic-catalog/internal/domain"
	"github.com/jsamuelsen11/academic-catalog/internal/domain/academic"
	"github.com/jsamuelsen11/academic-catalog/internal/domain/catalog"
	"github.com/jsamuelsen11/academic-catalog/internal/domain/faculty"
	"github.com/jsamuelsen11/academic-catalog/internal/ports"
)

// Compile-time check that FacultyService implements ports.FacultyService.
var _ ports.FacultyService = (*FacultyService)(nil)

// FacultyService implements ports.FacultyService.
type FacultyService struct {
	uow    ports.UnitOfWork
	logger *slog.Logger
}

// NewFacultyService creates a FacultyService that runs each use case through uow.
// A nil logger discards output.
func NewFacultyService(uow ports.UnitOfWork, logger *slog.Logger) *FacultyService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &FacultyService{
		uow:    uow,
		logger: logger,
	}
}

// RegisterFaculty creates an active faculty after checking its name is unused.
func (s *FacultyService) RegisterFaculty(ctx context.Context, cmd ports.RegisterFaculty) (*ports.FacultyView, error) {
	s.logger.InfoContext(ctx, "registering faculty", slog.String("name", cmd.Name))

	name, err := academic.NewName(cmd.Name)
	if err != nil {
		return nil, err
	}
	f, err := faculty.New(name, cmd.Description, cmd.Location, cmd.Dean)
	if err != nil {
		return nil, err
	}

	var view *ports.FacultyView
	err = s.uow.Do(ctx, "RegisterFaculty", func(ctx context.Context, repos ports.Repositories) error {
		exists, err := repos.Faculties().ExistsByName(ctx, name)
		if err != nil {
			return fmt.Errorf("checking faculty name: %w", err)
		}
		if exists {
			return domain.NewValidationError(domain.KindDuplicateName, "name", "a faculty with this name already exists")
		}

		saved, err := repos.Faculties().Save(ctx, f)
		if err != nil {
			return fmt.Errorf("saving faculty: %w", err)
		}
		view = &ports.FacultyView{Faculty: saved}
		return nil
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to register faculty",
			slog.String("operation", "RegisterFaculty"),
			slog.String("name", name.String()),
			slog.Any("error", err),
		)
		return nil, err
	}

	return view, nil
}

// GetFaculty returns a faculty with its active program count.
func (s *FacultyService) GetFaculty(ctx context.Context, id int64) (*ports.FacultyView, error) {
	s.logger.InfoContext(ctx, "fetching faculty", slog.Int64("id", id))

	var view *ports.FacultyView
	err := s.uow.Do(ports.ReadOnly(ctx), "GetFaculty", func(ctx context.Context, repos ports.Repositories) error {
		f, err := repos.Faculties().FindByID(ctx, id)
		if err != nil {
			return err
		}
		view, err = facultyView(ctx, repos, f)
		return err
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch faculty",
			slog.String("operation", "GetFaculty"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	return view, nil
}

// FindFacultyByName normalizes name and looks it up.
func (s *FacultyService) FindFacultyByName(ctx context.Context, name string) (*ports.FacultyView, error) {
	s.logger.InfoContext(ctx, "searching faculty by name", slog.String("name", name))

	n, err := academic.NewName(name)
	if err != nil {
		return nil, err
	}

	var view *ports.FacultyView
	err = s.uow.Do(ports.ReadOnly(ctx), "FindFacultyByName", func(ctx context.Context, repos ports.Repositories) error {
		f, err := repos.Faculties().FindByName(ctx, n)
		if err != nil {
			return err
		}
		view, err = facultyView(ctx, repos, f)
		return err
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to find faculty by name",
			slog.String("operation", "FindFacultyByName"),
			slog.String("name", n.String()),
			slog.Any("error", err),
		)
		return nil, err
	}

	return view, nil
}

// ListFaculties returns faculties matching filter, each with its active
// program count.
func (s *FacultyService) ListFaculties(ctx context.Context, filter ports.FacultyFilter) ([]ports.FacultyView, error) {
	s.logger.InfoContext(ctx, "listing faculties",
		slog.Bool("active_only", filter.ActiveOnly),
		slog.String("location", filter.Location),
	)

	var views []ports.FacultyView
	err := s.uow.Do(ports.ReadOnly(ctx), "ListFaculties", func(ctx context.Context, repos ports.Repositories) error {
		faculties, err := findFaculties(ctx, repos.Faculties(), filter)
		if err != nil {
			return err
		}

		views = make([]ports.FacultyView, 0, len(faculties))
		for _, f := range faculties {
			v, err := facultyView(ctx, repos, f)
			if err != nil {
				return err
			}
			views = append(views, *v)
		}
		return nil
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list faculties",
			slog.String("operation", "ListFaculties"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return views, nil
}

// UpdateFaculty replaces the faculty's name, description, and location.
func (s *FacultyService) UpdateFaculty(ctx context.Context, id int64, cmd ports.UpdateFaculty) (*ports.FacultyView, error) {
	s.logger.InfoContext(ctx, "updating faculty", slog.Int64("id", id))

	name, err := academic.NewName(cmd.Name)
	if err != nil {
		return nil, err
	}

	view, err := s.mutate(ctx, "UpdateFaculty", id, func(ctx context.Context, repos ports.Repositories, f *faculty.Faculty) error {
		taken, err := repos.Faculties().ExistsByNameExcludingID(ctx, name, id)
		if err != nil {
			return fmt.Errorf("checking faculty name: %w", err)
		}
		if taken {
			return domain.NewValidationError(domain.KindDuplicateName, "name", "a faculty with this name already exists")
		}
		return f.UpdateInfo(name, cmd.Description, cmd.Location)
	})
	if err != nil {
		return nil, err
	}

	return view, nil
}

// ChangeDean replaces the faculty's dean.
func (s *FacultyService) ChangeDean(ctx context.Context, id int64, dean string) (*ports.FacultyView, error) {
	s.logger.InfoContext(ctx, "changing faculty dean", slog.Int64("id", id))

	return s.mutate(ctx, "ChangeDean", id, func(_ context.Context, _ ports.Repositories, f *faculty.Faculty) error {
		return f.ChangeDean(dean)
	})
}

// ActivateFaculty moves an inactive faculty to active.
func (s *FacultyService) ActivateFaculty(ctx context.Context, id int64) (*ports.FacultyView, error) {
	s.logger.InfoContext(ctx, "activating faculty", slog.Int64("id", id))

	return s.mutate(ctx, "ActivateFaculty", id, func(_ context.Context, _ ports.Repositories, f *faculty.Faculty) error {
		return f.Activate()
	})
}

// DeactivateFaculty moves an active faculty to inactive once none of its
// programs is active.
func (s *FacultyService) DeactivateFaculty(ctx context.Context, id int64) (*ports.FacultyView, error) {
	s.logger.InfoContext(ctx, "deactivating faculty", slog.Int64("id", id))

	return s.mutate(ctx, "DeactivateFaculty", id, func(ctx context.Context, repos ports.Repositories, f *faculty.Faculty) error {
		v := catalog.NewValidator(repos.Faculties(), repos.Programs())
		if err := v.EnsureFacultyDeactivation(ctx, id); err != nil {
			return err
		}
		return f.Deactivate()
	})
}

// DeleteFaculty removes a faculty that has no programs and is inactive.
func (s *FacultyService) DeleteFaculty(ctx context.Context, id int64) error {
	s.logger.InfoContext(ctx, "deleting faculty", slog.Int64("id", id))

	err := s.uow.Do(ctx, "DeleteFaculty", func(ctx context.Context, repos ports.Repositories) error {
		f, err := repos.Faculties().FindByID(ctx, id)
		if err != nil {
			return err
		}

		v := catalog.NewValidator(repos.Faculties(), repos.Programs())
		if err := v.EnsureFacultyDeletion(ctx, id); err != nil {
			return err
		}
		if f.IsActive() {
			return &domain.InvalidStateError{Kind: domain.StateFacultyActive, Entity: domain.EntityFaculty, ID: id}
		}

		return repos.Faculties().DeleteByID(ctx, id)
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to delete faculty",
			slog.String("operation", "DeleteFaculty"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return err
	}

	return nil
}

// facultyMutation changes a loaded faculty; the caller persists it.
type facultyMutation func(ctx context.Context, repos ports.Repositories, f *faculty.Faculty) error

// mutate loads faculty id, applies fn, and saves the result in one unit of work.
func (s *FacultyService) mutate(ctx context.Context, operation string, id int64, fn facultyMutation) (*ports.FacultyView, error) {
	var view *ports.FacultyView
	err := s.uow.Do(ctx, operation, func(ctx context.Context, repos ports.Repositories) error {
		f, err := repos.Faculties().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := fn(ctx, repos, f); err != nil {
			return err
		}

		saved, err := repos.Faculties().Save(ctx, f)
		if err != nil {
			return fmt.Errorf("saving faculty: %w", err)
		}
		view, err = facultyView(ctx, repos, saved)
		return err
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to change faculty",
			slog.String("operation", operation),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	return view, nil
}

func findFaculties(ctx context.Context, repo ports.FacultyRepository, filter ports.FacultyFilter) ([]*faculty.Faculty, error) {
	var (
		faculties []*faculty.Faculty
		err       error
	)
	switch location := strings.TrimSpace(filter.Location); {
	case location != "":
		faculties, err = repo.FindByLocation(ctx, location)
	case filter.ActiveOnly:
		return repo.FindAllActive(ctx)
	default:
		return repo.FindAll(ctx)
	}
	if err != nil || !filter.ActiveOnly {
		return faculties, err
	}

	active := faculties[:0]
	for _, f := range faculties {
		if f.IsActive() {
			active = append(active, f)
		}
	}
	return active, nil
}

func facultyView(ctx context.Context, repos ports.Repositories, f *faculty.Faculty) (*ports.FacultyView, error) {
	n, err := catalog.NewValidator(repos.Faculties(), repos.Programs()).CountActivePrograms(ctx, f.ID())
	if err != nil {
		return nil, err
	}
	return &ports.FacultyView{Faculty: f, ActivePrograms: n}, nil
}
