package lead

// LeadRequest carries the editable fields of a lead. Field names match the
// document shape the dashboard writes; dates arrive as "YYYY-MM-DD" strings.
type LeadRequest struct {
	FullName    string `json:"nomeCompleto" validate:"required"`
	Phone       string `json:"telefone"`
	Email       string `json:"email" validate:"omitempty,email"`
	CityState   string `json:"cidadeEstado"`
	Source      string `json:"origemLead" validate:"required"`
	Product     string `json:"produtoInteresse" validate:"required"`
	Status      string `json:"statusLead" validate:"required"`
	Temperature string `json:"temperatura" validate:"required"`
	Owner       string `json:"responsavel" validate:"required"`
	EntryDate   string `json:"dataEntrada" validate:"required"`
	NextContact string `json:"proximoContato"`
	Notes       string `json:"observacoes"`

	// Meaningful only when Status is won / lost respectively.
	SaleValue  *float64 `json:"valorVenda" validate:"omitempty,gte=0"`
	SaleDate   string   `json:"dataVenda"`
	LossReason string   `json:"motivoPerda"`
}
