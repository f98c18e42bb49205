package models

import (
	"errors"
	"time"
)

// Message maps the "mensagens" table. Remetente is 'CORRETOR', 'CLIENTE'
// or 'SISTEMA'. The embedding is filled in by a separate pipeline; this
// API only stores and returns it.
type Message struct {
	ID                string    `json:"id"`
	ConversaID        string    `json:"conversa_id"`
	Remetente         string    `json:"remetente"`
	ConteudoTexto     string    `json:"conteudo_texto"`
	Timestamp         time.Time `json:"timestamp"`
	EmbeddingVetorial []float64 `json:"embedding_vetorial"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type MessageCreate struct {
	ConversaID    string `json:"conversa_id"`
	Remetente     string `json:"remetente"`
	ConteudoTexto string `json:"conteudo_texto"`
}

func (m MessageCreate) Validate() error {
	if m.ConversaID == "" {
		return errors.New("conversa_id is required")
	}
	if m.Remetente == "" {
		return errors.New("remetente is required")
	}
	if m.ConteudoTexto == "" {
		return errors.New("conteudo_texto is required")
	}
	return nil
}

type MessageUpdate struct {
	Remetente         *string    `json:"remetente,omitempty"`
	ConteudoTexto     *string    `json:"conteudo_texto,omitempty"`
	EmbeddingVetorial *[]float64 `json:"embedding_vetorial,omitempty"`
}
