package entities

// VerificationVerdict is the transient result of one product
// verification call. It is consumed immediately to set product fields
// and never persisted on its own.
type VerificationVerdict struct {
	IsValid      bool    `json:"isValid"`
	Confidence   float64 `json:"confidence"`
	Reason       string  `json:"reason"`
	AutoApproved bool    `json:"autoApproved"`
}

// ProductStatus maps a verdict to the listing status it produces. A
// negative verdict parks the product for human review; automation
// never rejects.
func (v *VerificationVerdict) ProductStatus() ApprovalStatus {
	if v.AutoApproved {
		return ApprovalApproved
	}
	return ApprovalPending
}
