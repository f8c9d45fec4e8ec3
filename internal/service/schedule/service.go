package schedule

import (
	"context"
	"time"

	"github.com/serviceportals/ops-backend-go/internal/domain/employee"
	"github.com/serviceportals/ops-backend-go/internal/domain/schedule"
	"github.com/serviceportals/ops-backend-go/internal/pkg/jwt"
)

type ScheduleServiceImpl struct {
	entries   schedule.Repository
	employees employee.Repository
}

func NewScheduleService(entries schedule.Repository, employees employee.Repository) schedule.Service {
	return &ScheduleServiceImpl{entries: entries, employees: employees}
}

func (s *ScheduleServiceImpl) Create(ctx context.Context, p jwt.Principal, req schedule.CreateEntryRequest) (schedule.Entry, error) {
	if _, err := s.employees.GetByID(ctx, req.EmployeeID, p.UnitID); err != nil {
		return schedule.Entry{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	e := schedule.Entry{
		UnitID:     p.UnitID,
		EmployeeID: req.EmployeeID,
		Date:       date,
		Shift:      req.Shift,
		Notes:      req.Notes,
	}

	return s.entries.Create(ctx, e)
}

func (s *ScheduleServiceImpl) ListByDate(ctx context.Context, p jwt.Principal, date time.Time) ([]schedule.Entry, error) {
	return s.entries.ListByDate(ctx, p.UnitID, date)
}

// ListByEmployee implements schedule.Service. Employees can only read
// their own schedule.
func (s *ScheduleServiceImpl) ListByEmployee(ctx context.Context, p jwt.Principal, employeeID string, from, to time.Time) ([]schedule.Entry, error) {
	if p.Role == jwt.RoleEmployee {
		employeeID = p.ID
	}
	return s.entries.ListByEmployee(ctx, p.UnitID, employeeID, from, to)
}

func (s *ScheduleServiceImpl) Update(ctx context.Context, p jwt.Principal, req schedule.UpdateEntryRequest) (schedule.Entry, error) {
	e, err := s.entries.GetByID(ctx, req.ID, p.UnitID)
	if err != nil {
		return schedule.Entry{}, err
	}

	if req.Date != nil {
		date, _ := time.Parse("2006-01-02", *req.Date)
		e.Date = date
	}
	if req.Shift != nil {
		e.Shift = *req.Shift
	}
	if req.Notes != nil {
		e.Notes = req.Notes
	}

	if err := s.entries.Update(ctx, e); err != nil {
		return schedule.Entry{}, err
	}

	return e, nil
}

func (s *ScheduleServiceImpl) Delete(ctx context.Context, p jwt.Principal, id string) error {
	return s.entries.Delete(ctx, id, p.UnitID)
}
