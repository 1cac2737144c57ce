package dto

// ImportSummaryResponse reports a bulk CSV import outcome. The counts are
// serialized as strings, matching the established wire contract.
type ImportSummaryResponse struct {
	Status            string `json:"status"`
	SuccessfulImports string `json:"successful_imports"`
	FailedImports     string `json:"failed_imports"`
}
