package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/simpeg-app/simpeg-backend-go/internal/domain/employee"
	"github.com/simpeg-app/simpeg-backend-go/internal/domain/master/department"
	"github.com/simpeg-app/simpeg-backend-go/internal/domain/master/position"
	"github.com/simpeg-app/simpeg-backend-go/internal/domain/user"
	"github.com/simpeg-app/simpeg-backend-go/internal/pkg/database"
)

type EmployeeServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	userRepo       user.UserRepository
	positionRepo   position.PositionRepository
	departmentRepo department.DepartmentRepository
	tx             database.TxManager
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	userRepo user.UserRepository,
	positionRepo position.PositionRepository,
	departmentRepo department.DepartmentRepository,
	tx database.TxManager,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo:   employeeRepo,
		userRepo:       userRepo,
		positionRepo:   positionRepo,
		departmentRepo: departmentRepo,
		tx:             tx,
	}
}

// Promote implements employee.EmployeeService. The employee row and the
// user's role change commit together.
func (s *EmployeeServiceImpl) Promote(ctx context.Context, req employee.PromoteRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	userData, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if userData.IsEmployed() {
		return employee.EmployeeResponse{}, employee.ErrAlreadyEmployee
	}
	if !userData.Role.CanTransitionTo(user.RoleEmployee) {
		return employee.EmployeeResponse{}, user.ErrRoleTransitionDenied
	}

	if _, err := s.positionRepo.GetByID(ctx, req.PositionID); err != nil {
		return employee.EmployeeResponse{}, err
	}
	if _, err := s.departmentRepo.GetByID(ctx, req.DepartmentID); err != nil {
		return employee.EmployeeResponse{}, err
	}

	joinDate := time.Now()
	if req.JoinDate != nil {
		joinDate, err = time.Parse("2006-01-02", *req.JoinDate)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to parse join_date: %w", err)
		}
	}

	var created employee.Employee
	err = s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		created, err = s.employeeRepo.Create(txCtx, employee.Employee{
			UserID:       req.UserID,
			PositionID:   req.PositionID,
			DepartmentID: req.DepartmentID,
			JoinDate:     joinDate,
			IsActive:     true,
		})
		if err != nil {
			return err
		}

		if err := s.userRepo.UpdateRole(txCtx, req.UserID, user.RoleEmployee); err != nil {
			return fmt.Errorf("failed to promote user role: %w", err)
		}
		return nil
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return s.GetEmployee(ctx, created.ID)
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(e), nil
}

// GetEmployeeByUser implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployeeByUser(ctx context.Context, userID string) (employee.EmployeeResponse, error) {
	e, err := s.employeeRepo.GetByUserID(ctx, userID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(e), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, employee.ToResponse(e))
	}
	return responses, nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	e, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.PositionID != nil {
		if _, err := s.positionRepo.GetByID(ctx, *req.PositionID); err != nil {
			return employee.EmployeeResponse{}, err
		}
		e.PositionID = *req.PositionID
	}
	if req.DepartmentID != nil {
		if _, err := s.departmentRepo.GetByID(ctx, *req.DepartmentID); err != nil {
			return employee.EmployeeResponse{}, err
		}
		e.DepartmentID = *req.DepartmentID
	}
	if req.IsActive != nil {
		e.IsActive = *req.IsActive
	}

	if err := s.employeeRepo.Update(ctx, e); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return s.GetEmployee(ctx, e.ID)
}
