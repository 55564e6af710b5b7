package models

// AdminRoleRequest is the payload of the admin-role function. "login" checks
// the hardcoded credentials; "verify" re-validates a replayed session record.
type AdminRoleRequest struct {
	Action  string `json:"action" validate:"required"`
	Email   string `json:"email,omitempty"`
	PIN     string `json:"pin,omitempty"`
	Session string `json:"session,omitempty"`
}

// ManageUserRequest is the payload of the manage-user function, keyed by the
// action discriminator.
type ManageUserRequest struct {
	Action     string `json:"action" validate:"required"`
	UserID     string `json:"userId,omitempty"`
	Banned     *bool  `json:"banned,omitempty"`
	Role       string `json:"role,omitempty"`
	Message    string `json:"message,omitempty"`
	MessageAll string `json:"messageAll,omitempty"`
}

// AdminUser is one row of the admin user listing, joined with the store
// settings the panel searches on client-side.
type AdminUser struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Role          string `json:"role"`
	AccountStatus string `json:"account_status"`
	StoreName     string `json:"store_name"`
	Phone         string `json:"phone"`
	CreatedAt     string `json:"created_at"`
}
