package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/tycoon/internal/employee/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, employee *domain.Employee) error {
	return db.WithContext(ctx).Create(employee).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Employee, error) {
	var employee domain.Employee
	err := db.WithContext(ctx).
		Where("id = ?", id).
		Take(&employee).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &employee, nil
}

func (r *repo) ListByBusiness(ctx context.Context, db *gorm.DB, businessID snowflake.ID) ([]domain.Employee, error) {
	var employees []domain.Employee
	err := db.WithContext(ctx).
		Model(&domain.Employee{}).
		Where("business_id = ?", businessID).
		Order("hired_at desc, id desc").
		Find(&employees).Error
	if err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *repo) UpdateFields(ctx context.Context, db *gorm.DB, id snowflake.ID, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return db.WithContext(ctx).
		Model(&domain.Employee{}).
		Where("id = ?", id).
		Updates(fields).Error
}
