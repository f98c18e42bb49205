package models

import (
	"errors"
	"time"
)

// Account maps the "contas" table. TipoConta is 'IMOBILIARIA' or 'INDIVIDUAL'.
type Account struct {
	ID          string    `json:"id"`
	NomeConta   string    `json:"nome_conta"`
	TipoConta   string    `json:"tipo_conta"`
	Documento   string    `json:"documento"`
	DataCriacao time.Time `json:"data_criacao"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type AccountCreate struct {
	NomeConta string `json:"nome_conta"`
	TipoConta string `json:"tipo_conta"`
	Documento string `json:"documento"`
}

func (a AccountCreate) Validate() error {
	if a.NomeConta == "" {
		return errors.New("nome_conta is required")
	}
	if a.TipoConta == "" {
		return errors.New("tipo_conta is required")
	}
	if a.Documento == "" {
		return errors.New("documento is required")
	}
	return nil
}

type AccountUpdate struct {
	NomeConta *string `json:"nome_conta,omitempty"`
	TipoConta *string `json:"tipo_conta,omitempty"`
	Documento *string `json:"documento,omitempty"`
}
