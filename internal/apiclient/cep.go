package apiclient

import (
	"context"
	"net/http"
)

// ResultadoCEP é o endereço canônico devolvido pela consulta de CEP.
// Coordenadas são opcionais; quando presentes o endereço exige confirmação
// visual do cliente antes de valer.
type ResultadoCEP struct {
	CEP       string   `json:"cep"`
	Cidade    string   `json:"cidade"`
	Bairro    string   `json:"bairro"`
	Rua       string   `json:"rua"`
	Estado    string   `json:"estado"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// TemCoordenadas informa se a consulta trouxe latitude e longitude.
func (r ResultadoCEP) TemCoordenadas() bool {
	return r.Latitude != nil && r.Longitude != nil
}

// BuscarCEP consulta o endereço canônico de um CEP de 8 dígitos.
func (c *Client) BuscarCEP(ctx context.Context, cep string) (*ResultadoCEP, error) {
	data, err := c.chamar(ctx, "buscar CEP", http.MethodGet, "/cep/"+cep, nil)
	if err != nil {
		return nil, err
	}
	var resultado ResultadoCEP
	if err := decodificar("buscar CEP", data, &resultado); err != nil {
		return nil, err
	}
	return &resultado, nil
}
