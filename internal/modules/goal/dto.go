package goal

// GoalRequest carries the editable fields of a monthly goal.
type GoalRequest struct {
	Month            string  `json:"mesAno" validate:"required"`
	LeadTarget       int     `json:"metaLeads" validate:"gte=0"`
	RevenueTarget    float64 `json:"metaVendas" validate:"gte=0"`
	ConversionTarget float64 `json:"taxaConversaoMeta" validate:"gte=0,lte=100"`
}
