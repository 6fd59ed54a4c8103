package master

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/simpeg-app/simpeg-backend-go/internal/domain/master/department"
	"github.com/simpeg-app/simpeg-backend-go/internal/domain/master/position"
)

// MasterService bundles the two reference-data services; departments and
// positions change together rarely enough that one service covers both.
type MasterServiceImpl struct {
	departmentRepo department.DepartmentRepository
	positionRepo   position.PositionRepository
}

func NewMasterService(departmentRepo department.DepartmentRepository, positionRepo position.PositionRepository) *MasterServiceImpl {
	return &MasterServiceImpl{
		departmentRepo: departmentRepo,
		positionRepo:   positionRepo,
	}
}

var (
	_ department.DepartmentService = (*MasterServiceImpl)(nil)
	_ position.PositionService     = (*MasterServiceImpl)(nil)
)

// CreateDepartment implements department.DepartmentService.
func (s *MasterServiceImpl) CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	created, err := s.departmentRepo.Create(ctx, department.Department{Name: req.Name})
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	return department.DepartmentResponse{ID: created.ID, Name: created.Name}, nil
}

// GetDepartment implements department.DepartmentService.
func (s *MasterServiceImpl) GetDepartment(ctx context.Context, id string) (department.DepartmentResponse, error) {
	d, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	return department.DepartmentResponse{ID: d.ID, Name: d.Name}, nil
}

// ListDepartments implements department.DepartmentService.
func (s *MasterServiceImpl) ListDepartments(ctx context.Context) ([]department.DepartmentResponse, error) {
	departments, err := s.departmentRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]department.DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		responses = append(responses, department.DepartmentResponse{ID: d.ID, Name: d.Name})
	}
	return responses, nil
}

// DeleteDepartment implements department.DepartmentService.
func (s *MasterServiceImpl) DeleteDepartment(ctx context.Context, id string) error {
	return s.departmentRepo.Delete(ctx, id)
}

// CreatePosition implements position.PositionService.
func (s *MasterServiceImpl) CreatePosition(ctx context.Context, req position.CreatePositionRequest) (position.PositionResponse, error) {
	if err := req.Validate(); err != nil {
		return position.PositionResponse{}, err
	}

	salary, err := decimal.NewFromString(req.Salary)
	if err != nil {
		return position.PositionResponse{}, err
	}

	if _, err := s.departmentRepo.GetByID(ctx, req.DepartmentID); err != nil {
		return position.PositionResponse{}, err
	}

	created, err := s.positionRepo.Create(ctx, position.Position{
		Name:         req.Name,
		DepartmentID: req.DepartmentID,
		Salary:       salary,
	})
	if err != nil {
		return position.PositionResponse{}, err
	}

	return toPositionResponse(created), nil
}

// GetPosition implements position.PositionService.
func (s *MasterServiceImpl) GetPosition(ctx context.Context, id string) (position.PositionResponse, error) {
	p, err := s.positionRepo.GetByID(ctx, id)
	if err != nil {
		return position.PositionResponse{}, err
	}
	return toPositionResponse(p), nil
}

// ListPositions implements position.PositionService.
func (s *MasterServiceImpl) ListPositions(ctx context.Context) ([]position.PositionResponse, error) {
	positions, err := s.positionRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]position.PositionResponse, 0, len(positions))
	for _, p := range positions {
		responses = append(responses, toPositionResponse(p))
	}
	return responses, nil
}

// DeletePosition implements position.PositionService.
func (s *MasterServiceImpl) DeletePosition(ctx context.Context, id string) error {
	return s.positionRepo.Delete(ctx, id)
}

func toPositionResponse(p position.Position) position.PositionResponse {
	return position.PositionResponse{
		ID:             p.ID,
		Name:           p.Name,
		DepartmentID:   p.DepartmentID,
		DepartmentName: p.DepartmentName,
		Salary:         p.Salary.String(),
	}
}
