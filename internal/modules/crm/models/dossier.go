package models

import (
	"errors"
	"time"
)

// Dossier maps the "dossies_ia" table: the AI-generated summary of a
// client, at most one row per cliente_id (upsert semantics on create).
type Dossier struct {
	ID                string     `json:"id"`
	ClienteID         string     `json:"cliente_id"`
	ResumoGerado      *string    `json:"resumo_gerado"`
	SentimentoGeral   *string    `json:"sentimento_geral"`
	UltimaAtualizacao *time.Time `json:"ultima_atualizacao"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

type DossierCreate struct {
	ClienteID       string  `json:"cliente_id"`
	ResumoGerado    *string `json:"resumo_gerado,omitempty"`
	SentimentoGeral *string `json:"sentimento_geral,omitempty"`
}

func (d DossierCreate) Validate() error {
	if d.ClienteID == "" {
		return errors.New("cliente_id is required")
	}
	return nil
}

type DossierUpdate struct {
	ResumoGerado    *string `json:"resumo_gerado,omitempty"`
	SentimentoGeral *string `json:"sentimento_geral,omitempty"`
}
