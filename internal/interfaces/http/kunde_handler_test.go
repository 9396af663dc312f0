package http

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ep-bau/ep-system/internal/application/dto"
	"github.com/ep-bau/ep-system/internal/application/usecase"
	"github.com/ep-bau/ep-system/internal/domain/entity"
)

type fakeKundeRepo struct {
	kunden map[string]*entity.Kunde
}

func newFakeKundeRepo() *fakeKundeRepo {
	return &fakeKundeRepo{kunden: map[string]*entity.Kunde{}}
}

func (r *fakeKundeRepo) Create(k *entity.Kunde) error {
	r.kunden[k.ID] = k
	return nil
}

func (r *fakeKundeRepo) GetByID(id string) (*entity.Kunde, error) {
	return r.kunden[id], nil
}

func (r *fakeKundeRepo) Update(k *entity.Kunde) error {
	r.kunden[k.ID] = k
	return nil
}

func (r *fakeKundeRepo) List(limit, offset int) ([]*entity.Kunde, error) {
	var list []*entity.Kunde
	for _, k := range r.kunden {
		list = append(list, k)
	}
	return list, nil
}

func (r *fakeKundeRepo) Delete(id string) error {
	delete(r.kunden, id)
	return nil
}

func buildKundeApp(repo *fakeKundeRepo) *fiber.App {
	h := NewKundeHandler(usecase.NewKundeUseCase(repo))
	app := fiber.New()
	app.Get("/api/kunden/:id", h.GetByID)
	app.Put("/api/kunden/:id", h.Update)
	return app
}

func TestKundeHandlerGetByID(t *testing.T) {
	repo := newFakeKundeRepo()
	now := time.Now()
	repo.kunden["k-1"] = &entity.Kunde{
		ID:        "k-1",
		Firma:     "Huber Bau GmbH",
		CreatedAt: now,
		UpdatedAt: now,
	}
	app := buildKundeApp(repo)

	t.Run("vorhandener kunde", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/kunden/k-1", nil), -1)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		var body dto.KundeResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "Huber Bau GmbH", body.Firma)
	})

	// Unbekannte IDs müssen 404 liefern, nicht 200 mit null-Body.
	t.Run("unbekannter kunde", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/kunden/gibt-es-nicht", nil), -1)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

		var body dto.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "NOT_FOUND", body.Code)
	})
}

func TestKundeHandlerUpdateUnbekannt(t *testing.T) {
	app := buildKundeApp(newFakeKundeRepo())

	req := httptest.NewRequest("PUT", "/api/kunden/gibt-es-nicht", strings.NewReader(`{"firma":"Neu"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
