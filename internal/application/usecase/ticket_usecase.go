package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/ep-bau/ep-system/internal/application/dto"
	"github.com/ep-bau/ep-system/internal/domain"
	"github.com/ep-bau/ep-system/internal/domain/entity"
	"github.com/ep-bau/ep-system/internal/domain/repository"
)

// TicketUseCase verwaltet Support-Tickets. Tickets können auch ohne
// Anmeldung über das öffentliche Formular eingehen (erstelltVon leer).
type TicketUseCase struct {
	repo repository.TicketRepository
}

func NewTicketUseCase(repo repository.TicketRepository) *TicketUseCase {
	return &TicketUseCase{repo: repo}
}

// Create legt ein Ticket an. Für anonyme Tickets ist eine E-Mail Pflicht,
// damit eine Rückmeldung möglich bleibt.
func (uc *TicketUseCase) Create(erstelltVon string, in dto.CreateTicketRequest) (*dto.TicketResponse, error) {
	if in.Betreff == "" || in.Beschreibung == "" {
		return nil, domain.ErrInvalidInput
	}
	if erstelltVon == "" && in.Email == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	tk := &entity.Ticket{
		ID:           uuid.New().String(),
		Betreff:      in.Betreff,
		Beschreibung: in.Beschreibung,
		ErstelltVon:  erstelltVon,
		Email:        in.Email,
		Status:       entity.TicketStatusOffen,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(tk); err != nil {
		return nil, err
	}
	resp := toTicketResponse(tk)
	return &resp, nil
}

// GetByID liefert ein Ticket; unbekannte IDs ergeben ErrNotFound.
func (uc *TicketUseCase) GetByID(id string) (*dto.TicketResponse, error) {
	tk, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tk == nil {
		return nil, domain.ErrNotFound
	}
	resp := toTicketResponse(tk)
	return &resp, nil
}

// List liefert Tickets, optional nach Status gefiltert.
func (uc *TicketUseCase) List(status string, limit, offset int) ([]dto.TicketResponse, error) {
	list, err := uc.repo.List(status, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TicketResponse, 0, len(list))
	for _, tk := range list {
		out = append(out, toTicketResponse(tk))
	}
	return out, nil
}

// UpdateStatus pflegt den Bearbeitungsstatus eines Tickets.
func (uc *TicketUseCase) UpdateStatus(id string, in dto.UpdateTicketRequest) (*dto.TicketResponse, error) {
	tk, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tk == nil {
		return nil, domain.ErrNotFound
	}
	if in.Status != nil {
		tk.Status = *in.Status
	}
	tk.UpdatedAt = time.Now()
	if err := uc.repo.Update(tk); err != nil {
		return nil, err
	}
	resp := toTicketResponse(tk)
	return &resp, nil
}

// Delete entfernt ein Ticket.
func (uc *TicketUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toTicketResponse(tk *entity.Ticket) dto.TicketResponse {
	return dto.TicketResponse{
		ID:           tk.ID,
		Betreff:      tk.Betreff,
		Beschreibung: tk.Beschreibung,
		ErstelltVon:  tk.ErstelltVon,
		Email:        tk.Email,
		Status:       tk.Status,
		CreatedAt:    tk.CreatedAt,
	}
}
