package model

// Client is a customer as returned by the client listing endpoints.
type Client struct {
	ID           int    `json:"clienteId"`
	Name         string `json:"nombre"`
	Phone        string `json:"telefono"`
	Email        string `json:"correo"`
	Address      string `json:"direccion"`
	Active       bool   `json:"activo"`
	RegisteredAt string `json:"fechaRegistro"`
}

type ClientRequest struct {
	Identification string `json:"identificacion" validate:"required,max=20"`
	// the backend contract spells this field without the second "c"
	IdentificationType string `json:"tipoIdentifiacion" validate:"required"`
	Name               string `json:"nombre" validate:"required,max=150"`
	Phone              string `json:"telefono" validate:"max=20"`
	Email              string `json:"email" validate:"omitempty,email"`
	Address            string `json:"direccion" validate:"max=250"`
}

type ClientEditRequest struct {
	ID      int    `json:"id" validate:"required,gt=0"`
	Name    string `json:"nombre" validate:"required,max=150"`
	Phone   string `json:"telefono" validate:"max=20"`
	Email   string `json:"email" validate:"omitempty,email"`
	Address string `json:"direccion" validate:"max=250"`
}

// ClientFilter narrows the client listing. A nil Active lists every state.
type ClientFilter struct {
	Active *bool
	Name   string
}
