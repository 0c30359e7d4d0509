package dto

import "github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/model"

// Respaldo is the backup document. Pointer slices distinguish "key absent"
// from "key present but empty" on restore: only sections whose key is present
// in the uploaded JSON are replaced.
type Respaldo struct {
	Users         *[]model.Usuario         `json:"users"`
	Products      *[]model.Producto        `json:"products"`
	Suppliers     *[]model.Proveedor       `json:"suppliers"`
	Sales         *[]model.Venta           `json:"sales"`
	Purchases     *[]model.Compra          `json:"purchases"`
	Payments      *[]model.PagoProveedor   `json:"payments"`
	WasteLogs     *[]model.Merma           `json:"wasteLogs"`
	CashFunds     *[]model.FondoCaja       `json:"cashFunds"`
	PriceHistory  *[]model.HistorialPrecio `json:"priceHistory"`
}
