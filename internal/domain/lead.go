package domain

import "time"

// Pipeline statuses as they appear in the default settings. Statuses are
// plain strings everywhere else because the status list is user-editable;
// only these three (plus the late-stage set) carry special meaning.
const (
	StatusWon       = "Ganho (Vendido)"
	StatusLost      = "Perdido"
	StatusNurturing = "Nutrição"
)

// lateStageStatuses are the stages counted in the conversion-rate
// denominator: leads that reached qualification or further.
var lateStageStatuses = map[string]bool{
	"Qualificado":      true,
	"Proposta Enviada": true,
	"Negociação":       true,
	StatusWon:          true,
}

func IsLateStage(status string) bool {
	return lateStageStatuses[status]
}

// Lead is a prospective customer tracked through the sales pipeline.
// JSON field names match the document shape the dashboard consumes.
type Lead struct {
	ID          string `json:"id"`
	UserID      int64  `json:"-"`
	FullName    string `json:"nomeCompleto" validate:"required"`
	Phone       string `json:"telefone,omitempty"`
	Email       string `json:"email,omitempty"`
	CityState   string `json:"cidadeEstado,omitempty"`
	Source      string `json:"origemLead"`
	Product     string `json:"produtoInteresse"`
	Status      string `json:"statusLead"`
	Temperature string `json:"temperatura"`
	Owner       string `json:"responsavel"`
	EntryDate   Date   `json:"dataEntrada"`
	NextContact *Date  `json:"proximoContato,omitempty"`
	Notes       string `json:"observacoes,omitempty"`

	// Present only when Status is won.
	SaleValue *float64 `json:"valorVenda,omitempty"`
	SaleDate  *Date    `json:"dataVenda,omitempty"`

	// Present only when Status is lost.
	LossReason string `json:"motivoPerda,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

func (l *Lead) IsWon() bool {
	return l.Status == StatusWon
}

// SoldValue returns the sale value treating absence as zero.
func (l *Lead) SoldValue() float64 {
	if l.SaleValue == nil {
		return 0
	}
	return *l.SaleValue
}
