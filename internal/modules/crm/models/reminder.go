package models

import (
	"errors"
	"time"
)

// Reminder maps the "lembretes" table. Status is 'PENDENTE' or 'CONCLUIDO'.
type Reminder struct {
	ID           string    `json:"id"`
	CorretorID   string    `json:"corretor_id"`
	ClienteID    *string   `json:"cliente_id"`
	Descricao    string    `json:"descricao"`
	DataLembrete time.Time `json:"data_lembrete"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ReminderCreate struct {
	CorretorID   string    `json:"corretor_id"`
	Descricao    string    `json:"descricao"`
	DataLembrete time.Time `json:"data_lembrete"`
	Status       string    `json:"status"`
	ClienteID    *string   `json:"cliente_id,omitempty"`
}

func (r ReminderCreate) Validate() error {
	if r.CorretorID == "" {
		return errors.New("corretor_id is required")
	}
	if r.Descricao == "" {
		return errors.New("descricao is required")
	}
	if r.DataLembrete.IsZero() {
		return errors.New("data_lembrete is required")
	}
	if r.Status == "" {
		return errors.New("status is required")
	}
	return nil
}

type ReminderUpdate struct {
	Descricao    *string    `json:"descricao,omitempty"`
	DataLembrete *time.Time `json:"data_lembrete,omitempty"`
	Status       *string    `json:"status,omitempty"`
	ClienteID    *string    `json:"cliente_id,omitempty"`
}
