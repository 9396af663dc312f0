package repository

import "github.com/ep-bau/ep-system/internal/domain/entity"

// TicketRepository definiert den Persistenz-Port für Support-Tickets.
type TicketRepository interface {
	Create(ticket *entity.Ticket) error
	GetByID(id string) (*entity.Ticket, error)
	Update(ticket *entity.Ticket) error
	List(status string, limit, offset int) ([]*entity.Ticket, error)
	Delete(id string) error
}
