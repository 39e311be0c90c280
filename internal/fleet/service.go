package fleet

import (
	"context"
	"strings"
)

const defaultTotalSeats = 50

type Service interface {
	CreateBus(ctx context.Context, req CreateBusRequest) (*BusResponse, error)
	GetAllBuses(ctx context.Context) ([]BusResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateBus(ctx context.Context, req CreateBusRequest) (*BusResponse, error) {
	totalSeats := req.TotalSeats
	if totalSeats == 0 {
		totalSeats = defaultTotalSeats
	}

	layout := req.LayoutType
	if layout == "" {
		layout = "2x3"
	}

	bus := &Bus{
		BusName:     strings.TrimSpace(req.BusName),
		PlateNumber: strings.TrimSpace(req.PlateNumber),
		TotalSeats:  totalSeats,
		LayoutType:  layout,
	}

	if err := s.repo.Create(ctx, bus); err != nil {
		return nil, err
	}

	resp := bus.ToResponse()
	return &resp, nil
}

func (s *service) GetAllBuses(ctx context.Context) ([]BusResponse, error) {
	buses, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]BusResponse, 0, len(buses))
	for _, bus := range buses {
		responses = append(responses, bus.ToResponse())
	}
	return responses, nil
}
