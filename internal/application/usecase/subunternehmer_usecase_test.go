package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ep-bau/ep-system/internal/application/dto"
	"github.com/ep-bau/ep-system/internal/application/usecase"
	"github.com/ep-bau/ep-system/internal/domain"
	"github.com/ep-bau/ep-system/internal/domain/entity"
)

type fakeSubunternehmerRepo struct {
	eintraege map[string]*entity.Subunternehmer
}

func newFakeSubunternehmerRepo() *fakeSubunternehmerRepo {
	return &fakeSubunternehmerRepo{eintraege: map[string]*entity.Subunternehmer{}}
}

func (r *fakeSubunternehmerRepo) Create(s *entity.Subunternehmer) error {
	r.eintraege[s.ID] = s
	return nil
}

func (r *fakeSubunternehmerRepo) GetByID(id string) (*entity.Subunternehmer, error) {
	return r.eintraege[id], nil
}

func (r *fakeSubunternehmerRepo) Update(s *entity.Subunternehmer) error {
	r.eintraege[s.ID] = s
	return nil
}

func (r *fakeSubunternehmerRepo) List(status string, limit, offset int) ([]*entity.Subunternehmer, error) {
	var list []*entity.Subunternehmer
	for _, s := range r.eintraege {
		if status == "" || s.Status == status {
			list = append(list, s)
		}
	}
	return list, nil
}

func (r *fakeSubunternehmerRepo) Delete(id string) error {
	delete(r.eintraege, id)
	return nil
}

func TestSubunternehmerCreate(t *testing.T) {
	uc := usecase.NewSubunternehmerUseCase(newFakeSubunternehmerRepo())

	resp, err := uc.Create(dto.CreateSubunternehmerRequest{
		Firma:           "Elektro Steiner GmbH",
		Ansprechpartner: "Josef Steiner",
		Spezialisierung: "Elektroinstallation",
		Stundensatz:     decimal.NewFromInt(85),
	})
	require.NoError(t, err)
	assert.Equal(t, "Elektro Steiner GmbH", resp.Firma)
	assert.Equal(t, entity.SubunternehmerStatusAktiv, resp.Status)
	assert.True(t, resp.Stundensatz.Equal(decimal.NewFromInt(85)))
}

func TestSubunternehmerCreateOhneFirma(t *testing.T) {
	uc := usecase.NewSubunternehmerUseCase(newFakeSubunternehmerRepo())

	_, err := uc.Create(dto.CreateSubunternehmerRequest{Ansprechpartner: "Josef Steiner"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSubunternehmerUpdateUndStatusfilter(t *testing.T) {
	repo := newFakeSubunternehmerRepo()
	uc := usecase.NewSubunternehmerUseCase(repo)

	created, err := uc.Create(dto.CreateSubunternehmerRequest{Firma: "Maler Wimmer"})
	require.NoError(t, err)

	inaktiv := entity.SubunternehmerStatusInaktiv
	satz := decimal.NewFromFloat(72.50)
	updated, err := uc.Update(created.ID, dto.UpdateSubunternehmerRequest{
		Status:      &inaktiv,
		Stundensatz: &satz,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.SubunternehmerStatusInaktiv, updated.Status)
	assert.True(t, updated.Stundensatz.Equal(satz))

	aktive, err := uc.List(entity.SubunternehmerStatusAktiv, 20, 0)
	require.NoError(t, err)
	assert.Empty(t, aktive)

	inaktive, err := uc.List(entity.SubunternehmerStatusInaktiv, 20, 0)
	require.NoError(t, err)
	assert.Len(t, inaktive, 1)
}

func TestSubunternehmerGetByIDUnbekannt(t *testing.T) {
	uc := usecase.NewSubunternehmerUseCase(newFakeSubunternehmerRepo())

	_, err := uc.GetByID("gibt-es-nicht")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
