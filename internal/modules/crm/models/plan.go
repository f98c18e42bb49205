package models

import (
	"errors"
	"time"
)

// Plan maps the "planos" table. Unlike the other entities its key is a
// plain integer assigned by the backend.
type Plan struct {
	ID               int       `json:"id"`
	NomePlano        string    `json:"nome_plano"`
	CodigoExterno    string    `json:"codigo_externo"`
	PrecoMensal      float64   `json:"preco_mensal"`
	PrecoAnual       *float64  `json:"preco_anual"`
	LimiteCorretores int       `json:"limite_corretores"`
	Descricao        *string   `json:"descricao"`
	IsAtivo          bool      `json:"is_ativo"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type PlanCreate struct {
	NomePlano        string   `json:"nome_plano"`
	CodigoExterno    string   `json:"codigo_externo"`
	PrecoMensal      float64  `json:"preco_mensal"`
	PrecoAnual       *float64 `json:"preco_anual,omitempty"`
	LimiteCorretores int      `json:"limite_corretores"`
	Descricao        *string  `json:"descricao,omitempty"`
	IsAtivo          bool     `json:"is_ativo"`
}

func (p PlanCreate) Validate() error {
	if p.NomePlano == "" {
		return errors.New("nome_plano is required")
	}
	if p.CodigoExterno == "" {
		return errors.New("codigo_externo is required")
	}
	return nil
}

type PlanUpdate struct {
	NomePlano        *string  `json:"nome_plano,omitempty"`
	CodigoExterno    *string  `json:"codigo_externo,omitempty"`
	PrecoMensal      *float64 `json:"preco_mensal,omitempty"`
	PrecoAnual       *float64 `json:"preco_anual,omitempty"`
	LimiteCorretores *int     `json:"limite_corretores,omitempty"`
	Descricao        *string  `json:"descricao,omitempty"`
	IsAtivo          *bool    `json:"is_ativo,omitempty"`
}
