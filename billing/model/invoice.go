package model

import (
	"fmt"
	"time"
)

type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "Efectivo"
	PaymentMethodCard     PaymentMethod = "Tarjeta"
	PaymentMethodTransfer PaymentMethod = "Transferencia"
)

// PaymentMethods lists the accepted payment methods in display order.
var PaymentMethods = []PaymentMethod{PaymentMethodCash, PaymentMethodCard, PaymentMethodTransfer}

func (m PaymentMethod) Valid() bool {
	for _, v := range PaymentMethods {
		if m == v {
			return true
		}
	}
	return false
}

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "Pendiente"
	PaymentStatusPaid      PaymentStatus = "Pagada"
	PaymentStatusCancelled PaymentStatus = "Cancelada"
)

// PaymentStatuses lists the accepted invoice statuses in display order.
var PaymentStatuses = []PaymentStatus{PaymentStatusPending, PaymentStatusPaid, PaymentStatusCancelled}

func (s PaymentStatus) Valid() bool {
	for _, v := range PaymentStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// InvoiceRequest is the header sent to the create endpoint. Details is always
// sent empty; line items are attached afterwards with InsertInvoiceDetails.
type InvoiceRequest struct {
	Number        string                 `json:"numeroFactura"`
	ClientID      int                    `json:"clienteId"`
	UserID        int                    `json:"usuarioId"`
	Total         float64                `json:"total"`
	PaymentMethod PaymentMethod          `json:"tipoPago"`
	PaymentStatus PaymentStatus          `json:"estadoPago"`
	Details       []InvoiceDetailRequest `json:"dtoDetalleFacturas"`
}

type InvoiceDetailRequest struct {
	ProductID int `json:"productoId"`
	Quantity  int `json:"cantidad"`
}

// InvoiceLineRequest is one element of the detail insert payload.
// DetailID is set only for lines that already exist on the backend.
type InvoiceLineRequest struct {
	InvoiceID int     `json:"facturaId"`
	ProductID int     `json:"productoId"`
	Quantity  int     `json:"cantidad"`
	UnitPrice float64 `json:"precioUnitario"`
	Subtotal  float64 `json:"subTotal"`
	DetailID  *int    `json:"facturaDetalleId,omitempty"`
}

// InvoiceSummary is one row of the invoice listing.
type InvoiceSummary struct {
	ID         int     `json:"facturaId"`
	ModifiedAt string  `json:"fechaModificacion"`
	ClientName string  `json:"nombreCliente"`
	SellerName string  `json:"nombresCompleto"`
	Status     string  `json:"estadoFactura"`
	Total      float64 `json:"totalFactura"`
	Active     bool    `json:"activo"`
}

// InvoiceFull is the detail view of one invoice. It carries the client and
// product display values but none of their identifiers.
type InvoiceFull struct {
	ClientName    string        `json:"nombre"`
	Phone         string        `json:"telefono"`
	Email         string        `json:"correo"`
	Seller        string        `json:"vendedor"`
	CreatedAt     string        `json:"fechaCreacion"`
	PaymentMethod PaymentMethod `json:"tipoPago"`
	PaymentStatus PaymentStatus `json:"estadoPago"`
	Lines         []InvoiceLine `json:"dtoDetalleFacturas"`
}

type InvoiceLine struct {
	DetailID    int     `json:"facturaDetalleId"`
	Code        string  `json:"codigo"`
	Quantity    int     `json:"cantidad"`
	Description string  `json:"descripcion"`
	UnitPrice   float64 `json:"precioUnitario"`
	Subtotal    float64 `json:"precioSubtotal"`
}

// InvoiceFilter narrows the invoice listing. Zero values are not sent.
type InvoiceFilter struct {
	Number string
	Date   string
	Amount *float64
	Active *bool
}

// SaveOutcome reports how far a save got. Partial means the header exists on
// the backend but its line items could not be attached.
type SaveOutcome struct {
	InvoiceID int    `json:"invoice_id"`
	Partial   bool   `json:"partial"`
	Message   string `json:"message,omitempty"`
}

// NewDocumentNumber returns the client-side document number for a new invoice.
func NewDocumentNumber(now time.Time) string {
	return fmt.Sprintf("FAC-%d", now.UnixMilli())
}
