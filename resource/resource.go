// Package resource contém o tipo base embutido em todos os recursos da API.
package resource

// Resource carrega o identificador atribuído pelo servidor.
// Vazio até que o objeto seja devolvido pela API.
type Resource struct {
	ID string `json:"id,omitempty"`
}
