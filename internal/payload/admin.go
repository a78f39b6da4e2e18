package payload

type SetAdminRequest struct {
	IsAdmin *bool `json:"is_admin" validate:"required"`
}
