package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	businessdomain "github.com/smallbiznis/tycoon/internal/business/domain"
	"github.com/smallbiznis/tycoon/internal/clock"
	"github.com/smallbiznis/tycoon/internal/employee/domain"
	"github.com/smallbiznis/tycoon/internal/rng"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB           *gorm.DB
	Log          *zap.Logger
	GenID        *snowflake.Node
	Clock        clock.Clock
	Random       rng.Source
	Repo         domain.Repository
	BusinessRepo businessdomain.Repository
}

type Service struct {
	db           *gorm.DB
	log          *zap.Logger
	genID        *snowflake.Node
	clock        clock.Clock
	random       rng.Source
	repo         domain.Repository
	businessRepo businessdomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:           p.DB,
		log:          p.Log.Named("employee.service"),
		genID:        p.GenID,
		clock:        p.Clock,
		random:       p.Random,
		repo:         p.Repo,
		businessRepo: p.BusinessRepo,
	}
}

func (s *Service) Hire(ctx context.Context, req domain.HireEmployeeRequest) (domain.Employee, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || len(name) > 100 {
		return domain.Employee{}, domain.ErrInvalidName
	}
	position := strings.TrimSpace(req.Position)
	if position == "" || len(position) > 100 {
		return domain.Employee{}, domain.ErrInvalidPosition
	}
	if req.Salary <= 0 {
		return domain.Employee{}, domain.ErrInvalidSalary
	}

	business, err := s.businessRepo.FindByID(ctx, s.db, req.BusinessID)
	if err != nil {
		return domain.Employee{}, err
	}
	if business == nil {
		return domain.Employee{}, domain.ErrBusinessNotFound
	}

	generated := generateTraits(position, s.random)

	employee := domain.Employee{
		ID:                s.genID.Generate(),
		BusinessID:        req.BusinessID,
		Name:              name,
		Position:          position,
		Salary:            req.Salary,
		ProductivityScore: generated.productivity,
		MoraleScore:       generated.morale,
		ExperienceLevel:   generated.experience,
		HiredAt:           s.clock.Now(),
		IsActive:          true,
	}

	if err := s.repo.Insert(ctx, s.db, &employee); err != nil {
		return domain.Employee{}, err
	}

	s.log.Info("employee hired",
		zap.String("employee_id", employee.ID.String()),
		zap.String("business_id", employee.BusinessID.String()),
		zap.String("position", employee.Position),
	)
	return employee, nil
}

func (s *Service) ListByBusiness(ctx context.Context, req domain.ListEmployeesRequest) ([]domain.Employee, error) {
	businessID, err := s.parseID(req.BusinessID)
	if err != nil {
		return nil, err
	}

	employees, err := s.repo.ListByBusiness(ctx, s.db, businessID)
	if err != nil {
		return nil, err
	}
	if employees == nil {
		employees = []domain.Employee{}
	}
	return employees, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateEmployeeRequest) (domain.Employee, error) {
	if req.ID == 0 {
		return domain.Employee{}, domain.ErrInvalidID
	}

	fields := map[string]any{}
	if req.Salary != nil {
		if *req.Salary <= 0 {
			return domain.Employee{}, domain.ErrInvalidSalary
		}
		fields["salary"] = *req.Salary
	}
	if req.ProductivityScore != nil {
		if *req.ProductivityScore < 0 || *req.ProductivityScore > domain.MaxScore {
			return domain.Employee{}, domain.ErrInvalidScore
		}
		fields["productivity_score"] = *req.ProductivityScore
	}
	if req.MoraleScore != nil {
		if *req.MoraleScore < 0 || *req.MoraleScore > domain.MaxScore {
			return domain.Employee{}, domain.ErrInvalidScore
		}
		fields["morale_score"] = *req.MoraleScore
	}
	if req.ExperienceLevel != nil {
		if *req.ExperienceLevel < domain.MinExperience || *req.ExperienceLevel > domain.MaxExperience {
			return domain.Employee{}, domain.ErrInvalidExperience
		}
		fields["experience_level"] = *req.ExperienceLevel
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}

	var updated domain.Employee
	err := s.db.Transaction(func(tx *gorm.DB) error {
		employee, err := s.repo.FindByID(ctx, tx, req.ID)
		if err != nil {
			return err
		}
		if employee == nil {
			return domain.ErrNotFound
		}

		if err := s.repo.UpdateFields(ctx, tx, req.ID, fields); err != nil {
			return err
		}

		reloaded, err := s.repo.FindByID(ctx, tx, req.ID)
		if err != nil {
			return err
		}
		updated = *reloaded
		return nil
	})
	if err != nil {
		return domain.Employee{}, err
	}
	return updated, nil
}

func (s *Service) parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
