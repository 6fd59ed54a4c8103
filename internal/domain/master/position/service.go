package position

import "context"

type PositionService interface {
	CreatePosition(ctx context.Context, req CreatePositionRequest) (PositionResponse, error)
	GetPosition(ctx context.Context, id string) (PositionResponse, error)
	ListPositions(ctx context.Context) ([]PositionResponse, error)
	DeletePosition(ctx context.Context, id string) error
}
