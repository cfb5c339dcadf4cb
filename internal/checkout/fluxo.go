package checkout

// Etapa é um passo do fluxo de checkout. O fluxo é linear, sem desvios:
// cliente → pagamento → confirmação.
type Etapa int

const (
	EtapaCliente Etapa = iota
	EtapaPagamento
	EtapaConfirmacao
)

var nomesEtapas = [...]string{"cliente", "pagamento", "confirmacao"}

func (e Etapa) String() string {
	if e < EtapaCliente || e > EtapaConfirmacao {
		return "desconhecida"
	}
	return nomesEtapas[e]
}

// Fluxo acompanha em que etapa do checkout o visitante está e qual cliente
// foi resolvido junto à API. O ClienteID só é preenchido depois de uma
// busca ou criação de cliente bem-sucedida.
type Fluxo struct {
	Etapa     Etapa  `json:"etapa"`
	ClienteID string `json:"cliente_id"`
}

// NovoFluxo começa na etapa de identificação do cliente.
func NovoFluxo() *Fluxo {
	return &Fluxo{Etapa: EtapaCliente}
}

// PodeAvancar aplica a guarda da etapa atual: sair da etapa de cliente
// exige um ClienteID resolvido; sair da etapa de pagamento não tem guarda
// (a confirmação é disparada pelo pagamento em si, ver Concluir).
func (f *Fluxo) PodeAvancar() bool {
	if f.Etapa == EtapaCliente && f.ClienteID == "" {
		return false
	}
	return true
}

// Avancar move para a próxima etapa respeitando a guarda; no fim do fluxo
// é um no-op. Devolve true quando a etapa mudou.
func (f *Fluxo) Avancar() bool {
	if f.Etapa >= EtapaConfirmacao {
		return false
	}
	if !f.PodeAvancar() {
		return false
	}
	f.Etapa++
	return true
}

// Voltar move para a etapa anterior; no início do fluxo é um no-op.
func (f *Fluxo) Voltar() {
	if f.Etapa > EtapaCliente {
		f.Etapa--
	}
}

// Concluir leva direto à confirmação. É o gatilho externo disparado por
// um pagamento bem-sucedido, não pela guarda do Avancar.
func (f *Fluxo) Concluir() {
	f.Etapa = EtapaConfirmacao
}
