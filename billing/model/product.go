package model

type Product struct {
	ID        int     `json:"productoId"`
	Name      string  `json:"nombre"`
	Code      string  `json:"codigo"`
	UnitPrice float64 `json:"precioUnitario"`
	Active    bool    `json:"activo"`
}

type ProductCreateRequest struct {
	Code      string  `json:"codigo" validate:"required,max=50"`
	Name      string  `json:"nombre" validate:"required,max=150"`
	UnitPrice float64 `json:"precioUnitario" validate:"gt=0"`
}

type ProductEditRequest struct {
	ID        int     `json:"id" validate:"required,gt=0"`
	Code      string  `json:"codigo" validate:"required,max=50"`
	Name      string  `json:"nombre" validate:"required,max=150"`
	UnitPrice float64 `json:"precioUnitario" validate:"gt=0"`
}

type ProductDeleteRequest struct {
	ID int `json:"id"`
}
