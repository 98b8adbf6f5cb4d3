package usecase

import (
	"context"
	"fmt"

	"supplier_report/internal/domain/entities"
	"supplier_report/internal/usecase/interfaces"
)

type IProviderUseCase interface {
	ListProviders(ctx context.Context) ([]entities.Provider, error)
}

type ProviderUseCase struct {
	gateway interfaces.IReportGateway
}

var _ IProviderUseCase = (*ProviderUseCase)(nil)

func NewProviderUseCase(gateway interfaces.IReportGateway) *ProviderUseCase {
	return &ProviderUseCase{gateway: gateway}
}

func (u *ProviderUseCase) ListProviders(ctx context.Context) ([]entities.Provider, error) {
	providers, err := u.gateway.ListProviders(ctx)
	if err != nil {
		return nil, fmt.Errorf("provider_usecase.ListProviders: %w", err)
	}
	return providers, nil
}
