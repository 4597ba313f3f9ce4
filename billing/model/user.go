package model

// User is an operator account; sellers on invoices are users.
type User struct {
	ID        int    `json:"idUsuario"`
	FullName  string `json:"nombres"`
	UserName  string `json:"userName"`
	Email     string `json:"email"`
	Role      string `json:"rol"`
	Active    bool   `json:"activo"`
	CreatedAt string `json:"fechaCreacion"`
}

type UserRequest struct {
	UserName     string `json:"userName" validate:"required,max=50"`
	PasswordHash string `json:"passwordHash" validate:"required"`
	FirstName    string `json:"nombre" validate:"required,max=100"`
	LastName     string `json:"apellido" validate:"required,max=100"`
	Email        string `json:"email" validate:"required,email"`
	Role         string `json:"rol" validate:"required"`
}

type UserEditRequest struct {
	ID        string `json:"id" validate:"required"`
	FirstName string `json:"nombre" validate:"required,max=100"`
	LastName  string `json:"apellidos" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Role      string `json:"rol" validate:"required"`
}

// UserFilter narrows the user listing. A nil Active lists every state.
type UserFilter struct {
	Active *bool
	Name   string
}
