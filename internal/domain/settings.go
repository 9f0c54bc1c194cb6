package domain

import "slices"

// Settings is the per-user taxonomy document: six ordered lists of labels
// constraining lead enum fields. List order drives chart ordering. The
// constraint is soft — removing a label later leaves existing leads untouched.
type Settings struct {
	Sources      []string `json:"origemLead"`
	Statuses     []string `json:"statusLead"`
	Products     []string `json:"produtoInteresse"`
	Temperatures []string `json:"temperatura"`
	LossReasons  []string `json:"motivoPerda"`
	Owners       []string `json:"responsaveis"`
}

// DefaultSettings returns the built-in taxonomy created lazily for new users.
func DefaultSettings() Settings {
	return Settings{
		Sources:      []string{"Facebook Ads", "Instagram Ads", "Google Orgânico", "Indicação", "E-mail Mkt", "WhatsApp"},
		Statuses:     []string{"Novo", "Contatado", "Qualificado", "Proposta Enviada", "Negociação", StatusWon, StatusLost, StatusNurturing},
		Products:     []string{"Produto A", "Produto B", "Produto C"},
		Temperatures: []string{"Quente", "Morno", "Frio"},
		LossReasons:  []string{"Preço", "Não respondeu", "Comprou concorrente", "Sem interesse", "Precisa de mais info", "Outro"},
		Owners:       []string{"Eu"},
	}
}

func (s Settings) HasSource(v string) bool      { return slices.Contains(s.Sources, v) }
func (s Settings) HasStatus(v string) bool      { return slices.Contains(s.Statuses, v) }
func (s Settings) HasProduct(v string) bool     { return slices.Contains(s.Products, v) }
func (s Settings) HasTemperature(v string) bool { return slices.Contains(s.Temperatures, v) }
func (s Settings) HasLossReason(v string) bool  { return slices.Contains(s.LossReasons, v) }
func (s Settings) HasOwner(v string) bool       { return slices.Contains(s.Owners, v) }
