package models

import (
	"errors"
	"time"
)

// Broker maps the "corretores" table. Funcao is 'DONO', 'ADMIN' or 'AGENTE'.
// The password hash is write-only: it never appears in a response.
type Broker struct {
	ID        string    `json:"id"`
	ContaID   string    `json:"conta_id"`
	Nome      string    `json:"nome"`
	Email     string    `json:"email"`
	Funcao    string    `json:"funcao"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type BrokerCreate struct {
	ContaID   string `json:"conta_id"`
	Nome      string `json:"nome"`
	Email     string `json:"email"`
	Funcao    string `json:"funcao"`
	HashSenha string `json:"hash_senha"`
}

func (b BrokerCreate) Validate() error {
	if b.ContaID == "" {
		return errors.New("conta_id is required")
	}
	if b.Nome == "" {
		return errors.New("nome is required")
	}
	if b.Email == "" {
		return errors.New("email is required")
	}
	if b.Funcao == "" {
		return errors.New("funcao is required")
	}
	if b.HashSenha == "" {
		return errors.New("hash_senha is required")
	}
	return nil
}

type BrokerUpdate struct {
	Nome      *string `json:"nome,omitempty"`
	Email     *string `json:"email,omitempty"`
	Funcao    *string `json:"funcao,omitempty"`
	HashSenha *string `json:"hash_senha,omitempty"`
}
