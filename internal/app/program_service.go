package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/text/cases"

	"github.com/jsamuelsen11/academic-catalog/internal/domain"
	"github.com/jsamuelsen11/academic-catalog/internal/domain/academic"
	"github.com/jsamuelsen11/academic-catalog/internal/domain/catalog"
	"github.com/jsamuelsen11/academic-catalog/internal/domain/program"
	"github.com/jsamuelsen11/academic-catalog/internal/ports"
)

// Compile-time check that ProgramService implements ports.ProgramService.
var _ ports.ProgramService = (*ProgramService)(nil)

// ProgramService implements ports.ProgramService.
type ProgramService struct {
	uow    ports.UnitOfWork
	logger *slog.Logger
}

// NewProgramService creates a ProgramService that runs each use case through uow.
// A nil logger discards output.
func NewProgramService(uow ports.UnitOfWork, logger *slog.Logger) *ProgramService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ProgramService{
		uow:    uow,
		logger: logger,
	}
}

// RegisterProgram creates an active program under an active faculty.
func (s *ProgramService) RegisterProgram(ctx context.Context, cmd ports.RegisterProgram) (*ports.ProgramView, error) {
	s.logger.InfoContext(ctx, "registering program",
		slog.Int64("faculty_id", cmd.FacultyID),
		slog.String("name", cmd.Name),
	)

	name, err := academic.NewName(cmd.Name)
	if err != nil {
		return nil, err
	}
	duration, err := academic.NewDuration(cmd.Semesters)
	if err != nil {
		return nil, err
	}

	var view *ports.ProgramView
	err = s.uow.Do(ctx, "RegisterProgram", func(ctx context.Context, repos ports.Repositories) error {
		v := catalog.NewValidator(repos.Faculties(), repos.Programs())
		if err := v.ValidateProgramCreation(ctx, cmd.FacultyID, name); err != nil {
			return err
		}

		p, err := program.New(cmd.FacultyID, name, cmd.Description, duration, cmd.DegreeTitle)
		if err != nil {
			return err
		}
		saved, err := repos.Programs().Save(ctx, p)
		if err != nil {
			return fmt.Errorf("saving program: %w", err)
		}
		view, err = programView(ctx, repos, saved)
		return err
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to register program",
			slog.String("operation", "RegisterProgram"),
			slog.Int64("faculty_id", cmd.FacultyID),
			slog.String("name", name.String()),
			slog.Any("error", err),
		)
		return nil, err
	}

	return view, nil
}

// GetProgram returns a program with its faculty's name.
func (s *ProgramService) GetProgram(ctx context.Context, id int64) (*ports.ProgramView, error) {
	s.logger.InfoContext(ctx, "fetching program", slog.Int64("id", id))

	var view *ports.ProgramView
	err := s.uow.Do(ports.ReadOnly(ctx), "GetProgram", func(ctx context.Context, repos ports.Repositories) error {
		p, err := repos.Programs().FindByID(ctx, id)
		if err != nil {
			return err
		}
		view, err = programView(ctx, repos, p)
		return err
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch program",
			slog.String("operation", "GetProgram"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	return view, nil
}

// ListPrograms returns programs matching filter.
func (s *ProgramService) ListPrograms(ctx context.Context, filter ports.ProgramFilter) ([]ports.ProgramView, error) {
	s.logger.InfoContext(ctx, "listing programs",
		slog.Bool("active_only", filter.ActiveOnly),
		slog.String("classification", string(filter.Classification)),
	)

	if err := validateProgramFilter(filter); err != nil {
		return nil, err
	}

	var views []ports.ProgramView
	err := s.uow.Do(ports.ReadOnly(ctx), "ListPrograms", func(ctx context.Context, repos ports.Repositories) error {
		programs, err := findPrograms(ctx, repos.Programs(), filter)
		if err != nil {
			return err
		}
		views, err = programViews(ctx, repos, programs)
		return err
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list programs",
			slog.String("operation", "ListPrograms"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return views, nil
}

// ListFacultyPrograms returns the programs of one faculty.
func (s *ProgramService) ListFacultyPrograms(ctx context.Context, facultyID int64, activeOnly bool) ([]ports.ProgramView, error) {
	s.logger.InfoContext(ctx, "listing faculty programs",
		slog.Int64("faculty_id", facultyID),
		slog.Bool("active_only", activeOnly),
	)

	var views []ports.ProgramView
	err := s.uow.Do(ports.ReadOnly(ctx), "ListFacultyPrograms", func(ctx context.Context, repos ports.Repositories) error {
		f, err := repos.Faculties().FindByID(ctx, facultyID)
		if err != nil {
			return err
		}

		var programs []*program.Program
		if activeOnly {
			programs, err = repos.Programs().FindActiveByFacultyID(ctx, facultyID)
		} else {
			programs, err = repos.Programs().FindByFacultyID(ctx, facultyID)
		}
		if err != nil {
			return err
		}

		views = make([]ports.ProgramView, 0, len(programs))
		for _, p := range programs {
			views = append(views, ports.ProgramView{Program: p, FacultyName: f.Name().String()})
		}
		return nil
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list faculty programs",
			slog.String("operation", "ListFacultyPrograms"),
			slog.Int64("faculty_id", facultyID),
			slog.Any("error", err),
		)
		return nil, err
	}

	return views, nil
}

// UpdateProgram replaces name, description, duration, and degree title.
func (s *ProgramService) UpdateProgram(ctx context.Context, id int64, cmd ports.UpdateProgram) (*ports.ProgramView, error) {
	s.logger.InfoContext(ctx, "updating program", slog.Int64("id", id))

	name, err := academic.NewName(cmd.Name)
	if err != nil {
		return nil, err
	}
	duration, err := academic.NewDuration(cmd.Semesters)
	if err != nil {
		return nil, err
	}

	return s.mutate(ctx, "UpdateProgram", id, func(ctx context.Context, repos ports.Repositories, p *program.Program) error {
		taken, err := repos.Programs().ExistsByNameExcludingID(ctx, name, id)
		if err != nil {
			return fmt.Errorf("checking program name: %w", err)
		}
		if taken {
			return domain.NewValidationError(domain.KindDuplicateName, "name", "a program with this name already exists")
		}
		return p.UpdateAcademicInfo(name, cmd.Description, duration, cmd.DegreeTitle)
	})
}

// ChangeDuration sets a new length in semesters.
func (s *ProgramService) ChangeDuration(ctx context.Context, id int64, semesters int) (*ports.ProgramView, error) {
	s.logger.InfoContext(ctx, "changing program duration",
		slog.Int64("id", id),
		slog.Int("semesters", semesters),
	)

	duration, err := academic.NewDuration(semesters)
	if err != nil {
		return nil, err
	}

	return s.mutate(ctx, "ChangeDuration", id, func(_ context.Context, _ ports.Repositories, p *program.Program) error {
		return p.ChangeDuration(duration)
	})
}

// ChangeFaculty moves an inactive program under another active faculty.
func (s *ProgramService) ChangeFaculty(ctx context.Context, id, facultyID int64) (*ports.ProgramView, error) {
	s.logger.InfoContext(ctx, "moving program",
		slog.Int64("id", id),
		slog.Int64("faculty_id", facultyID),
	)

	return s.mutate(ctx, "ChangeFaculty", id, func(ctx context.Context, repos ports.Repositories, p *program.Program) error {
		v := catalog.NewValidator(repos.Faculties(), repos.Programs())
		if err := v.EnsureFacultyChange(ctx, p, facultyID); err != nil {
			return err
		}
		return p.MoveToFaculty(facultyID)
	})
}

// ActivateProgram moves an inactive program to active while its faculty is active.
func (s *ProgramService) ActivateProgram(ctx context.Context, id int64) (*ports.ProgramView, error) {
	s.logger.InfoContext(ctx, "activating program", slog.Int64("id", id))

	return s.mutate(ctx, "ActivateProgram", id, func(ctx context.Context, repos ports.Repositories, p *program.Program) error {
		if err := p.Activate(); err != nil {
			return err
		}
		return catalog.NewValidator(repos.Faculties(), repos.Programs()).EnsureProgramActivation(ctx, p)
	})
}

// DeactivateProgram moves an active program to inactive.
func (s *ProgramService) DeactivateProgram(ctx context.Context, id int64) (*ports.ProgramView, error) {
	s.logger.InfoContext(ctx, "deactivating program", slog.Int64("id", id))

	return s.mutate(ctx, "DeactivateProgram", id, func(_ context.Context, _ ports.Repositories, p *program.Program) error {
		return p.Deactivate()
	})
}

// DeleteProgram removes an inactive program.
func (s *ProgramService) DeleteProgram(ctx context.Context, id int64) error {
	s.logger.InfoContext(ctx, "deleting program", slog.Int64("id", id))

	err := s.uow.Do(ctx, "DeleteProgram", func(ctx context.Context, repos ports.Repositories) error {
		p, err := repos.Programs().FindByID(ctx, id)
		if err != nil {
			return err
		}
		v := catalog.NewValidator(repos.Faculties(), repos.Programs())
		if err := v.EnsureProgramDeletion(p); err != nil {
			return err
		}
		return repos.Programs().DeleteByID(ctx, id)
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to delete program",
			slog.String("operation", "DeleteProgram"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return err
	}

	return nil
}

type programMutation func(ctx context.Context, repos ports.Repositories, p *program.Program) error

// mutate loads program id, applies fn, and saves the result in one unit of work.
func (s *ProgramService) mutate(ctx context.Context, operation string, id int64, fn programMutation) (*ports.ProgramView, error) {
	var view *ports.ProgramView
	err := s.uow.Do(ctx, operation, func(ctx context.Context, repos ports.Repositories) error {
		p, err := repos.Programs().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := fn(ctx, repos, p); err != nil {
			return err
		}

		saved, err := repos.Programs().Save(ctx, p)
		if err != nil {
			return fmt.Errorf("saving program: %w", err)
		}
		view, err = programView(ctx, repos, saved)
		return err
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to change program",
			slog.String("operation", operation),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	return view, nil
}

func validateProgramFilter(filter ports.ProgramFilter) error {
	if filter.Classification != "" && !filter.Classification.IsValid() {
		return domain.NewValidationError(domain.KindMalformed, "classification", "must be one of short, standard, long")
	}
	if filter.MinSemesters < 0 || filter.MaxSemesters < 0 {
		return domain.NewValidationError(domain.KindMalformed, "semesters", "bounds must not be negative")
	}
	if filter.MinSemesters > 0 && filter.MaxSemesters > 0 && filter.MinSemesters > filter.MaxSemesters {
		return domain.NewValidationError(domain.KindMalformed, "semesters", "min_semesters must not exceed max_semesters")
	}
	return nil
}

// findPrograms applies every filter field together. The narrowest storage
// query is chosen first; the remaining predicates run over its result.
func findPrograms(ctx context.Context, repo ports.ProgramRepository, filter ports.ProgramFilter) ([]*program.Program, error) {
	var (
		programs []*program.Program
		err      error
	)
	title := strings.TrimSpace(filter.TitleContains)
	lo, hi, ranged := semesterRange(filter)
	switch {
	case ranged && lo > hi:
		return []*program.Program{}, nil
	case ranged:
		programs, err = repo.FindByDurationRange(ctx, lo, hi)
	case title != "":
		programs, err = repo.FindByDegreeTitleContaining(ctx, title)
		title = ""
	case filter.ActiveOnly:
		return repo.FindAllActive(ctx)
	default:
		return repo.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	fold := cases.Fold()
	needle := fold.String(title)
	out := programs[:0]
	for _, p := range programs {
		if filter.ActiveOnly && !p.IsActive() {
			continue
		}
		if needle != "" && !strings.Contains(fold.String(p.DegreeTitle()), needle) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// semesterRange intersects the classification's range with the explicit
// bounds. ranged is false when the filter constrains duration not at all.
func semesterRange(filter ports.ProgramFilter) (lo, hi int, ranged bool) {
	lo, hi = academic.MinSemesters, academic.MaxSemesters
	if filter.Classification != "" {
		lo, hi = filter.Classification.SemesterRange()
		ranged = true
	}
	if filter.MinSemesters > 0 {
		lo = max(lo, filter.MinSemesters)
		ranged = true
	}
	if filter.MaxSemesters > 0 {
		hi = min(hi, filter.MaxSemesters)
		ranged = true
	}
	return lo, hi, ranged
}

func programView(ctx context.Context, repos ports.Repositories, p *program.Program) (*ports.ProgramView, error) {
	f, err := repos.Faculties().FindByID(ctx, p.FacultyID())
	if err != nil {
		return nil, fmt.Errorf("loading faculty of program %d: %w", p.ID(), err)
	}
	return &ports.ProgramView{Program: p, FacultyName: f.Name().String()}, nil
}

// programViews resolves faculty names with one lookup per distinct faculty.
func programViews(ctx context.Context, repos ports.Repositories, programs []*program.Program) ([]ports.ProgramView, error) {
	names := make(map[int64]string)
	views := make([]ports.ProgramView, 0, len(programs))
	for _, p := range programs {
		name, ok := names[p.FacultyID()]
		if !ok {
			f, err := repos.Faculties().FindByID(ctx, p.FacultyID())
			if err != nil {
				return nil, fmt.Errorf("loading faculty of program %d: %w", p.ID(), err)
			}
			name = f.Name().String()
			names[p.FacultyID()] = name
		}
		views = append(views, ports.ProgramView{Program: p, FacultyName: name})
	}
	return views, nil
}
