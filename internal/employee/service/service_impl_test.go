package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	businessdomain "github.com/smallbiznis/tycoon/internal/business/domain"
	businessrepository "github.com/smallbiznis/tycoon/internal/business/repository"
	"github.com/smallbiznis/tycoon/internal/clock"
	"github.com/smallbiznis/tycoon/internal/employee/domain"
	"github.com/smallbiznis/tycoon/internal/employee/repository"
	"github.com/smallbiznis/tycoon/internal/rng"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatal(err)
	}
	if err := db.AutoMigrate(&businessdomain.Business{}, &domain.Employee{}); err != nil {
		t.Fatal(err)
	}
	return db
}

type fixture struct {
	db       *gorm.DB
	svc      domain.Service
	clk      *clock.FakeClock
	business businessdomain.Business
}

func newFixture(t *testing.T, random rng.Source) *fixture {
	t.Helper()
	db := newTestDB(t)
	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatal(err)
	}
	clk := clock.NewFakeClock(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))

	business := businessdomain.Business{
		ID:        node.Generate(),
		PlayerID:  node.Generate(),
		Name:      "Acme",
		Industry:  businessdomain.IndustryTechnology,
		IsActive:  true,
		CreatedAt: clk.Now(),
	}
	if err := db.Create(&business).Error; err != nil {
		t.Fatal(err)
	}

	svc := New(Params{
		DB:           db,
		Log:          zap.NewNop(),
		GenID:        node,
		Clock:        clk,
		Random:       random,
		Repo:         repository.Provide(),
		BusinessRepo: businessrepository.Provide(),
	})
	return &fixture{db: db, svc: svc, clk: clk, business: business}
}

func TestHireEmployee(t *testing.T) {
	f := newFixture(t, &rng.Fixed{Floats: []float64{0.5, 0.5}, Ints: []int{0}})

	employee, err := f.svc.Hire(context.Background(), domain.HireEmployeeRequest{
		BusinessID: f.business.ID,
		Name:       "Bob",
		Position:   "Developer",
		Salary:     4500,
	})
	assert.NoError(t, err)
	assert.Equal(t, f.business.ID, employee.BusinessID)
	assert.InDelta(t, 1.2, employee.ProductivityScore, 1e-9)
	assert.InDelta(t, 0.9, employee.MoraleScore, 1e-9)
	assert.Equal(t, 2, employee.ExperienceLevel)
	assert.Equal(t, f.clk.Now(), employee.HiredAt)
	assert.True(t, employee.IsActive)
}

func TestHireEmployeeValidation(t *testing.T) {
	f := newFixture(t, &rng.Fixed{})

	_, err := f.svc.Hire(context.Background(), domain.HireEmployeeRequest{
		BusinessID: f.business.ID,
		Name:       "",
		Position:   "manager",
		Salary:     100,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidName)

	_, err = f.svc.Hire(context.Background(), domain.HireEmployeeRequest{
		BusinessID: f.business.ID,
		Name:       "Bob",
		Position:   "manager",
		Salary:     0,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidSalary)
}

func TestHireEmployeeBusinessNotFound(t *testing.T) {
	f := newFixture(t, &rng.Fixed{})

	_, err := f.svc.Hire(context.Background(), domain.HireEmployeeRequest{
		BusinessID: snowflake.ID(777777),
		Name:       "Bob",
		Position:   "manager",
		Salary:     100,
	})
	assert.ErrorIs(t, err, domain.ErrBusinessNotFound)
}

func TestListEmployeesNewestFirst(t *testing.T) {
	f := newFixture(t, &rng.Fixed{Floats: []float64{0.5, 0.5}, Ints: []int{0}})

	first, err := f.svc.Hire(context.Background(), domain.HireEmployeeRequest{
		BusinessID: f.business.ID,
		Name:       "First",
		Position:   "intern",
		Salary:     1000,
	})
	assert.NoError(t, err)

	f.clk.Advance(time.Hour)
	second, err := f.svc.Hire(context.Background(), domain.HireEmployeeRequest{
		BusinessID: f.business.ID,
		Name:       "Second",
		Position:   "intern",
		Salary:     1000,
	})
	assert.NoError(t, err)

	employees, err := f.svc.ListByBusiness(context.Background(), domain.ListEmployeesRequest{
		BusinessID: f.business.ID.String(),
	})
	assert.NoError(t, err)
	assert.Len(t, employees, 2)
	assert.Equal(t, second.ID, employees[0].ID)
	assert.Equal(t, first.ID, employees[1].ID)
}

func TestUpdateEmployeeBounds(t *testing.T) {
	f := newFixture(t, &rng.Fixed{Floats: []float64{0.5, 0.5}, Ints: []int{0}})

	employee, err := f.svc.Hire(context.Background(), domain.HireEmployeeRequest{
		BusinessID: f.business.ID,
		Name:       "Bob",
		Position:   "designer",
		Salary:     3000,
	})
	assert.NoError(t, err)

	bad := 2.5
	_, err = f.svc.Update(context.Background(), domain.UpdateEmployeeRequest{
		ID:                employee.ID,
		ProductivityScore: &bad,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidScore)

	badExp := 11
	_, err = f.svc.Update(context.Background(), domain.UpdateEmployeeRequest{
		ID:              employee.ID,
		ExperienceLevel: &badExp,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidExperience)

	salary := 5000.0
	inactive := false
	updated, err := f.svc.Update(context.Background(), domain.UpdateEmployeeRequest{
		ID:       employee.ID,
		Salary:   &salary,
		IsActive: &inactive,
	})
	assert.NoError(t, err)
	assert.Equal(t, salary, updated.Salary)
	assert.False(t, updated.IsActive)

	_, err = f.svc.Update(context.Background(), domain.UpdateEmployeeRequest{
		ID: snowflake.ID(123123),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
