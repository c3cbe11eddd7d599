package update_court

// UpdateCourtRequest HTTP request model
type UpdateCourtRequest struct {
	Name string `json:"name"`
}
