package models

import (
	"errors"
	"time"
)

// Subscription maps the "assinaturas" table. Status is 'TRIAL', 'ATIVO',
// 'PAGAMENTO_PENDENTE' or 'CANCELADO'. One subscription per account.
type Subscription struct {
	ID                  string     `json:"id"`
	ContaID             string     `json:"conta_id"`
	PlanoID             int        `json:"plano_id"`
	Status              string     `json:"status"`
	DataFimTrial        *time.Time `json:"data_fim_trial"`
	DataProximaCobranca *time.Time `json:"data_proxima_cobranca"`
	IDGatewayPagamento  *string    `json:"id_gateway_pagamento"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

type SubscriptionCreate struct {
	ContaID             string     `json:"conta_id"`
	PlanoID             int        `json:"plano_id"`
	Status              string     `json:"status"`
	DataFimTrial        *time.Time `json:"data_fim_trial,omitempty"`
	DataProximaCobranca *time.Time `json:"data_proxima_cobranca,omitempty"`
	IDGatewayPagamento  *string    `json:"id_gateway_pagamento,omitempty"`
}

func (s SubscriptionCreate) Validate() error {
	if s.ContaID == "" {
		return errors.New("conta_id is required")
	}
	if s.PlanoID == 0 {
		return errors.New("plano_id is required")
	}
	if s.Status == "" {
		return errors.New("status is required")
	}
	return nil
}

type SubscriptionUpdate struct {
	PlanoID             *int       `json:"plano_id,omitempty"`
	Status              *string    `json:"status,omitempty"`
	DataFimTrial        *time.Time `json:"data_fim_trial,omitempty"`
	DataProximaCobranca *time.Time `json:"data_proxima_cobranca,omitempty"`
	IDGatewayPagamento  *string    `json:"id_gateway_pagamento,omitempty"`
}

// Invoice maps the "faturas" table. Status is 'PENDENTE', 'PAGO',
// 'FALHOU' or 'REEMBOLSADO'.
type Invoice struct {
	ID                 string     `json:"id"`
	AssinaturaID       string     `json:"assinatura_id"`
	Valor              float64    `json:"valor"`
	Status             string     `json:"status"`
	DataVencimento     time.Time  `json:"data_vencimento"`
	DataPagamento      *time.Time `json:"data_pagamento"`
	URLDocumento       *string    `json:"url_documento"`
	IDGatewayPagamento *string    `json:"id_gateway_pagamento"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

type InvoiceCreate struct {
	AssinaturaID       string     `json:"assinatura_id"`
	Valor              float64    `json:"valor"`
	Status             string     `json:"status"`
	DataVencimento     time.Time  `json:"data_vencimento"`
	DataPagamento      *time.Time `json:"data_pagamento,omitempty"`
	URLDocumento       *string    `json:"url_documento,omitempty"`
	IDGatewayPagamento *string    `json:"id_gateway_pagamento,omitempty"`
}

func (i InvoiceCreate) Validate() error {
	if i.AssinaturaID == "" {
		return errors.New("assinatura_id is required")
	}
	if i.Status == "" {
		return errors.New("status is required")
	}
	if i.DataVencimento.IsZero() {
		return errors.New("data_vencimento is required")
	}
	return nil
}

type InvoiceUpdate struct {
	Valor              *float64   `json:"valor,omitempty"`
	Status             *string    `json:"status,omitempty"`
	DataVencimento     *time.Time `json:"data_vencimento,omitempty"`
	DataPagamento      *time.Time `json:"data_pagamento,omitempty"`
	URLDocumento       *string    `json:"url_documento,omitempty"`
	IDGatewayPagamento *string    `json:"id_gateway_pagamento,omitempty"`
}

// ExternalConnection maps the "conexoes_externas" table. Status is
// 'ATIVA', 'INATIVA' or 'ERRO_AUTENTICACAO'.
type ExternalConnection struct {
	ID                    string    `json:"id"`
	ContaID               string    `json:"conta_id"`
	Plataforma            string    `json:"plataforma"`
	ChaveAPICriptografada string    `json:"chave_api_criptografada"`
	Status                string    `json:"status"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

type ExternalConnectionCreate struct {
	ContaID               string `json:"conta_id"`
	Plataforma            string `json:"plataforma"`
	ChaveAPICriptografada string `json:"chave_api_criptografada"`
	Status                string `json:"status"`
}

func (e ExternalConnectionCreate) Validate() error {
	if e.ContaID == "" {
		return errors.New("conta_id is required")
	}
	if e.Plataforma == "" {
		return errors.New("plataforma is required")
	}
	if e.ChaveAPICriptografada == "" {
		return errors.New("chave_api_criptografada is required")
	}
	if e.Status == "" {
		return errors.New("status is required")
	}
	return nil
}

type ExternalConnectionUpdate struct {
	Plataforma            *string `json:"plataforma,omitempty"`
	ChaveAPICriptografada *string `json:"chave_api_criptografada,omitempty"`
	Status                *string `json:"status,omitempty"`
}
