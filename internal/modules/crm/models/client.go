package models

import (
	"errors"
	"time"
)

// Client maps the "clientes" table. StatusFunil is the free-text sales
// pipeline stage; CorretorID is the optionally assigned broker.
type Client struct {
	ID          string    `json:"id"`
	ContaID     string    `json:"conta_id"`
	CorretorID  *string   `json:"corretor_id"`
	Nome        string    `json:"nome"`
	Telefone    *string   `json:"telefone"`
	Email       *string   `json:"email"`
	StatusFunil *string   `json:"status_funil"`
	DataCriacao time.Time `json:"data_criacao"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ClientCreate struct {
	ContaID     string  `json:"conta_id"`
	Nome        string  `json:"nome"`
	Telefone    *string `json:"telefone,omitempty"`
	Email       *string `json:"email,omitempty"`
	StatusFunil *string `json:"status_funil,omitempty"`
	CorretorID  *string `json:"corretor_id,omitempty"`
}

func (c ClientCreate) Validate() error {
	if c.ContaID == "" {
		return errors.New("conta_id is required")
	}
	if c.Nome == "" {
		return errors.New("nome is required")
	}
	return nil
}

type ClientUpdate struct {
	Nome        *string `json:"nome,omitempty"`
	Telefone    *string `json:"telefone,omitempty"`
	Email       *string `json:"email,omitempty"`
	StatusFunil *string `json:"status_funil,omitempty"`
	CorretorID  *string `json:"corretor_id,omitempty"`
}
