package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ep-bau/ep-system/internal/application/auth"
	"github.com/ep-bau/ep-system/internal/application/dto"
	"github.com/ep-bau/ep-system/internal/domain"
	"github.com/ep-bau/ep-system/internal/domain/authz"
	"github.com/ep-bau/ep-system/internal/domain/entity"
	"github.com/ep-bau/ep-system/pkg/jwt"
)

type fakeBenutzerRepo struct {
	benutzer []*entity.Benutzer
}

func (r *fakeBenutzerRepo) Create(b *entity.Benutzer) error { r.benutzer = append(r.benutzer, b); return nil }
func (r *fakeBenutzerRepo) GetByID(id string) (*entity.Benutzer, error) {
	for _, b := range r.benutzer {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, nil
}
func (r *fakeBenutzerRepo) GetByEmail(email string) (*entity.Benutzer, error) {
	for _, b := range r.benutzer {
		if b.Email == email {
			return b, nil
		}
	}
	return nil, nil
}
func (r *fakeBenutzerRepo) GetByQRCode(code string) (*entity.Benutzer, error) {
	for _, b := range r.benutzer {
		if b.QRCode == code {
			return b, nil
		}
	}
	return nil, nil
}
func (r *fakeBenutzerRepo) Update(*entity.Benutzer) error        { return nil }
func (r *fakeBenutzerRepo) ListAll() ([]*entity.Benutzer, error) { return r.benutzer, nil }
func (r *fakeBenutzerRepo) List(string, int, int) ([]*entity.Benutzer, error) {
	return r.benutzer, nil
}
func (r *fakeBenutzerRepo) Delete(string) error { return nil }

func newAuthSetup(t *testing.T) *auth.UseCase {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("geheim123"), bcrypt.MinCost)
	require.NoError(t, err)
	repo := &fakeBenutzerRepo{benutzer: []*entity.Benutzer{
		{
			ID: "b1", Vorname: "Anna", Nachname: "Berger", Email: "anna@ep-bau.at",
			PasswortHash: string(hash), Position: authz.PositionAdmin,
			QRCode: "QR-ANNA", Status: entity.BenutzerStatusAktiv, CreatedAt: time.Now(),
		},
		{
			ID: "b2", Vorname: "Ex", Nachname: "Mitarbeiter", Email: "ex@ep-bau.at",
			PasswortHash: string(hash), Position: authz.PositionWorker,
			QRCode: "QR-EX", Status: entity.BenutzerStatusInaktiv,
		},
	}}
	return auth.NewUseCase(repo, auth.JWTConfig{
		Secret: "test-secret", Issuer: "ep-system", ExpirationMinutes: 1440,
	})
}

func TestLogin(t *testing.T) {
	uc := newAuthSetup(t)

	resp, err := uc.Login(dto.LoginRequest{Email: "anna@ep-bau.at", Password: "geheim123"})
	require.NoError(t, err)
	assert.Equal(t, "b1", resp.Benutzer.ID)

	userID, name, position, err := jwt.Parse("test-secret", resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "b1", userID)
	assert.Equal(t, "Anna Berger", name)
	assert.Equal(t, authz.PositionAdmin, position)
}

func TestLogin_Abgewiesen(t *testing.T) {
	uc := newAuthSetup(t)

	_, err := uc.Login(dto.LoginRequest{Email: "anna@ep-bau.at", Password: "falsch"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{Email: "niemand@ep-bau.at", Password: "geheim123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	// inaktive Benutzer können sich nicht anmelden
	_, err = uc.Login(dto.LoginRequest{Email: "ex@ep-bau.at", Password: "geheim123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{Email: "", Password: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTerminalLogin(t *testing.T) {
	uc := newAuthSetup(t)

	resp, err := uc.TerminalLogin(dto.TerminalLoginRequest{QRCode: "QR-ANNA"})
	require.NoError(t, err)
	assert.Equal(t, "b1", resp.Benutzer.ID)
	assert.NotEmpty(t, resp.Token)

	_, err = uc.TerminalLogin(dto.TerminalLoginRequest{QRCode: "QR-UNBEKANNT"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.TerminalLogin(dto.TerminalLoginRequest{QRCode: "QR-EX"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestMe(t *testing.T) {
	uc := newAuthSetup(t)

	resp, err := uc.Me("b1")
	require.NoError(t, err)
	assert.Equal(t, "anna@ep-bau.at", resp.Email)

	_, err = uc.Me("fehlt")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
