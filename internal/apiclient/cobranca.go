package apiclient

import (
	"context"
	"net/http"
)

// PixEstaticoRequest gera um QR Code estático para o total do pedido.
// A expiração é sempre de 300 segundos, fixada pelo handler de pagamento.
type PixEstaticoRequest struct {
	Descricao         string `json:"description"`
	ValorCentavos     int64  `json:"value"`
	ExpiracaoSegundos int    `json:"expirationSeconds"`
	ReferenciaExterna string `json:"externalReference"`
}

// PixEstaticoResponse traz o payload copia-e-cola e a imagem do QR Code.
type PixEstaticoResponse struct {
	ID           string `json:"id"`
	EncodedImage string `json:"encodedImage"`
	Payload      string `json:"payload"`
}

// GerarPixEstatico solicita o QR Code PIX à API de cobrança.
func (c *Client) GerarPixEstatico(ctx context.Context, req PixEstaticoRequest) (*PixEstaticoResponse, error) {
	data, err := c.chamar(ctx, "gerar PIX", http.MethodPost, "/cobranca/pix/qrCode/estatico", req)
	if err != nil {
		return nil, err
	}
	var resp PixEstaticoResponse
	if err := decodificar("gerar PIX", data, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// LinkCartaoRequest solicita um link de pagamento hospedado para cartão
// de crédito.
type LinkCartaoRequest struct {
	Nome              string `json:"billingName"`
	Descricao         string `json:"description"`
	ValorCentavos     int64  `json:"value"`
	ReferenciaExterna string `json:"externalReference"`
}

// LinkCartaoResponse traz a URL hospedada que o cliente abre em outra aba.
type LinkCartaoResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// GerarLinkCartao solicita o link de pagamento por cartão à API de cobrança.
func (c *Client) GerarLinkCartao(ctx context.Context, req LinkCartaoRequest) (*LinkCartaoResponse, error) {
	data, err := c.chamar(ctx, "gerar link de cartão", http.MethodPost, "/cobranca/cartao-de-credito", req)
	if err != nil {
		return nil, err
	}
	var resp LinkCartaoResponse
	if err := decodificar("gerar link de cartão", data, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
