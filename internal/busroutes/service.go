package busroutes

import (
	"context"
	"strings"
)

type Service interface {
	CreateRoute(ctx context.Context, req CreateRouteRequest) (*RouteResponse, error)
	GetAllRoutes(ctx context.Context) ([]RouteResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateRoute(ctx context.Context, req CreateRouteRequest) (*RouteResponse, error) {
	route := &Route{
		FromCity: strings.TrimSpace(req.FromCity),
		ToCity:   strings.TrimSpace(req.ToCity),
	}

	if err := s.repo.Create(ctx, route); err != nil {
		return nil, err
	}

	resp := route.ToResponse()
	return &resp, nil
}

func (s *service) GetAllRoutes(ctx context.Context) ([]RouteResponse, error) {
	routes, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]RouteResponse, 0, len(routes))
	for _, route := range routes {
		responses = append(responses, route.ToResponse())
	}
	return responses, nil
}
