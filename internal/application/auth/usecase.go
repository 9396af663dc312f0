package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/ep-bau/ep-system/internal/application/dto"
	"github.com/ep-bau/ep-system/internal/domain"
	"github.com/ep-bau/ep-system/internal/domain/entity"
	"github.com/ep-bau/ep-system/internal/domain/repository"
	"github.com/ep-bau/ep-system/pkg/jwt"
)

// JWTConfig Parameter für die Token-Erzeugung.
type JWTConfig struct {
	Secret            string
	Issuer            string
	ExpirationMinutes int
}

// UseCase wickelt beide Anmeldewege ab: E-Mail/Passwort für die Verwaltung
// und QR-Code-Scan am Lager-Terminal. Beide liefern dasselbe JWT; die
// Ablaufzeit des Tokens ist die einzige Sitzungsgrenze.
type UseCase struct {
	repo repository.BenutzerRepository
	cfg  JWTConfig
}

func NewUseCase(repo repository.BenutzerRepository, cfg JWTConfig) *UseCase {
	return &UseCase{repo: repo, cfg: cfg}
}

// Login prüft E-Mail und Passwort. Unbekannte E-Mail und falsches Passwort
// sind nach außen nicht unterscheidbar.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	benutzer, err := uc.repo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if benutzer == nil || benutzer.Status != entity.BenutzerStatusAktiv {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(benutzer.PasswortHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return uc.issueToken(benutzer)
}

// TerminalLogin meldet einen Benutzer über seinen QR-Code an.
func (uc *UseCase) TerminalLogin(in dto.TerminalLoginRequest) (*dto.LoginResponse, error) {
	if in.QRCode == "" {
		return nil, domain.ErrInvalidInput
	}
	benutzer, err := uc.repo.GetByQRCode(in.QRCode)
	if err != nil {
		return nil, err
	}
	if benutzer == nil || benutzer.Status != entity.BenutzerStatusAktiv {
		return nil, domain.ErrUnauthorized
	}
	return uc.issueToken(benutzer)
}

// Me liefert den Benutzer zum authentifizierten Token.
func (uc *UseCase) Me(userID string) (*dto.BenutzerResponse, error) {
	benutzer, err := uc.repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if benutzer == nil {
		return nil, domain.ErrUserNotFound
	}
	resp := ToBenutzerResponse(benutzer)
	return &resp, nil
}

func (uc *UseCase) issueToken(b *entity.Benutzer) (*dto.LoginResponse, error) {
	token, err := jwt.Generate(uc.cfg.Secret, b.ID, b.VollerName(), b.Position, uc.cfg.Issuer, uc.cfg.ExpirationMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:    token,
		Benutzer: ToBenutzerResponse(b),
	}, nil
}

// ToBenutzerResponse mappt die Entität auf die Antwortdarstellung, ohne Passworthash.
func ToBenutzerResponse(b *entity.Benutzer) dto.BenutzerResponse {
	return dto.BenutzerResponse{
		ID:             b.ID,
		Vorname:        b.Vorname,
		Nachname:       b.Nachname,
		Email:          b.Email,
		Position:       b.Position,
		VorgesetzterID: b.VorgesetzterID,
		QRCode:         b.QRCode,
		Status:         b.Status,
		CreatedAt:      b.CreatedAt,
	}
}
