package usecase

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"supplier_report/internal/domain/entities"
	mock_interfaces "supplier_report/internal/usecase/interfaces/mocks"
)

func TestProviderUseCase_ListProviders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gw := mock_interfaces.NewMockIReportGateway(ctrl)
	uc := NewProviderUseCase(gw)

	t.Run("success", func(t *testing.T) {
		gw.EXPECT().ListProviders(gomock.Any()).Return([]entities.Provider{{ID: 1, CompanyName: "Acme"}}, nil)
		got, err := uc.ListProviders(context.Background())
		if err != nil || len(got) != 1 {
			t.Fatalf("unexpected result: %+v %v", got, err)
		}
	})

	t.Run("gateway error is wrapped", func(t *testing.T) {
		boom := errors.New("boom")
		gw.EXPECT().ListProviders(gomock.Any()).Return(nil, boom)
		if _, err := uc.ListProviders(context.Background()); !errors.Is(err, boom) {
			t.Fatalf("expected wrapped error, got %v", err)
		}
	})
}
