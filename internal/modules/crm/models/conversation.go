package models

import (
	"errors"
	"time"
)

// Conversation maps the "conversas" table. StatusConversa is
// 'AGUARDANDO_CORRETOR', 'AGUARDANDO_CLIENTE' or 'FINALIZADA'.
type Conversation struct {
	ID                      string     `json:"id"`
	ClienteID               string     `json:"cliente_id"`
	Plataforma              string     `json:"plataforma"`
	StatusConversa          string     `json:"status_conversa"`
	TimestampUltimaMensagem *time.Time `json:"timestamp_ultima_mensagem"`
	CreatedAt               time.Time  `json:"created_at"`
	UpdatedAt               time.Time  `json:"updated_at"`
}

type ConversationCreate struct {
	ClienteID      string `json:"cliente_id"`
	Plataforma     string `json:"plataforma"`
	StatusConversa string `json:"status_conversa"`
}

func (c ConversationCreate) Validate() error {
	if c.ClienteID == "" {
		return errors.New("cliente_id is required")
	}
	if c.Plataforma == "" {
		return errors.New("plataforma is required")
	}
	if c.StatusConversa == "" {
		return errors.New("status_conversa is required")
	}
	return nil
}

type ConversationUpdate struct {
	Plataforma     *string `json:"plataforma,omitempty"`
	StatusConversa *string `json:"status_conversa,omitempty"`
}
