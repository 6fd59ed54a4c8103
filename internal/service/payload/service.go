package payload

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/simpeg-app/simpeg-backend-go/internal/domain/employee"
	"github.com/simpeg-app/simpeg-backend-go/internal/domain/master/position"
	"github.com/simpeg-app/simpeg-backend-go/internal/domain/payload"
)

type PayloadServiceImpl struct {
	payloadRepo  payload.PayloadRepository
	employeeRepo employee.EmployeeRepository
	positionRepo position.PositionRepository
}

func NewPayloadService(
	payloadRepo payload.PayloadRepository,
	employeeRepo employee.EmployeeRepository,
	positionRepo position.PositionRepository,
) payload.PayloadService {
	return &PayloadServiceImpl{
		payloadRepo:  payloadRepo,
		employeeRepo: employeeRepo,
		positionRepo: positionRepo,
	}
}

// Upsert implements payload.PayloadService.
func (s *PayloadServiceImpl) Upsert(ctx context.Context, req payload.UpsertPayloadRequest) (payload.PayloadResponse, error) {
	if err := req.Validate(); err != nil {
		return payload.PayloadResponse{}, err
	}

	employeeData, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return payload.PayloadResponse{}, err
	}

	var salary decimal.Decimal
	if req.Salary != nil {
		salary, err = decimal.NewFromString(*req.Salary)
		if err != nil {
			return payload.PayloadResponse{}, err
		}
	} else {
		// Fall back to the base salary attached to the position
		positionData, err := s.positionRepo.GetByID(ctx, employeeData.PositionID)
		if err != nil {
			return payload.PayloadResponse{}, err
		}
		salary = positionData.Salary
	}

	bonus := decimal.Zero
	if req.Bonus != "" {
		bonus, err = decimal.NewFromString(req.Bonus)
		if err != nil {
			return payload.PayloadResponse{}, err
		}
	}
	reduction := decimal.Zero
	if req.Reduction != "" {
		reduction, err = decimal.NewFromString(req.Reduction)
		if err != nil {
			return payload.PayloadResponse{}, err
		}
	}

	upserted, err := s.payloadRepo.Upsert(ctx, payload.Payload{
		Month:        req.Month,
		EmployeeID:   employeeData.ID,
		DepartmentID: employeeData.DepartmentID,
		Salary:       salary,
		Bonus:        bonus,
		Reduction:    reduction,
	})
	if err != nil {
		return payload.PayloadResponse{}, err
	}

	return payload.ToResponse(upserted), nil
}

// GetByEmployeeAndMonth implements payload.PayloadService.
func (s *PayloadServiceImpl) GetByEmployeeAndMonth(ctx context.Context, employeeID, month string) (payload.PayloadResponse, error) {
	p, err := s.payloadRepo.GetByEmployeeAndMonth(ctx, employeeID, month)
	if err != nil {
		return payload.PayloadResponse{}, err
	}
	return payload.ToResponse(p), nil
}

// ListByMonth implements payload.PayloadService.
func (s *PayloadServiceImpl) ListByMonth(ctx context.Context, month string) ([]payload.PayloadResponse, error) {
	payloads, err := s.payloadRepo.ListByMonth(ctx, month)
	if err != nil {
		return nil, err
	}

	responses := make([]payload.PayloadResponse, 0, len(payloads))
	for _, p := range payloads {
		responses = append(responses, payload.ToResponse(p))
	}
	return responses, nil
}
