package lager_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ep-bau/ep-system/internal/application/dto"
	applager "github.com/ep-bau/ep-system/internal/application/lager"
	"github.com/ep-bau/ep-system/internal/domain"
	"github.com/ep-bau/ep-system/internal/domain/entity"
	domlager "github.com/ep-bau/ep-system/internal/domain/lager"
)

func TestWareGetByIDUnbekannt(t *testing.T) {
	wareRepo := &fakeWareRepo{waren: map[string]*entity.Ware{}}
	uc := applager.NewWareUseCase(wareRepo, &fakeLogRepo{})

	resp, err := uc.GetByID("gibt-es-nicht")
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	resp, err = uc.GetByBarcode("0000000000000")
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Update("gibt-es-nicht", dto.UpdateWareRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestWareGetByIDVorhanden(t *testing.T) {
	wareRepo := &fakeWareRepo{waren: map[string]*entity.Ware{
		"w-1": {
			ID:             "w-1",
			Name:           "Kabeltrommel",
			Einheit:        entity.EinheitStueck,
			Bestand:        decimal.NewFromInt(10),
			Mindestbestand: decimal.NewFromInt(3),
			Status:         domlager.StatusVerfuegbar,
		},
	}}
	uc := applager.NewWareUseCase(wareRepo, &fakeLogRepo{})

	resp, err := uc.GetByID("w-1")
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "Kabeltrommel", resp.Name)
}
