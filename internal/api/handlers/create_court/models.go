package create_court

// CreateCourtRequest HTTP request model
type CreateCourtRequest struct {
	Name string `json:"name"`
}
