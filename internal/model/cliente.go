package model

// Cliente espelha o registro de cliente mantido pela API da loja,
// identificado pelo telefone no checkout.
type Cliente struct {
	ClienteID string `json:"clienteId"`
	Nome      string `json:"nome"`
	Telefone  string `json:"telefone"`
	CPF       string `json:"cpf"`
}

// Endereco é o endereço de entrega do carrinho. Pode ser preenchido à mão
// ou por consulta de CEP; quando a consulta devolve coordenadas o endereço
// precisa de confirmação explícita antes de ser usado.
type Endereco struct {
	CEP         string   `json:"cep"`
	Bairro      string   `json:"bairro"`
	Rua         string   `json:"rua"`
	Numero      string   `json:"numero"`
	Complemento string   `json:"complemento,omitempty"`
	Cidade      string   `json:"cidade,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	Confirmado  bool     `json:"confirmado"`
}

// Vazio informa se nenhum campo de localização foi preenchido ainda.
func (e Endereco) Vazio() bool {
	return e.CEP == "" && e.Rua == "" && e.Bairro == "" && e.Numero == ""
}
