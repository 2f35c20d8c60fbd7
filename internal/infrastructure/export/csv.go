// Package export serializa colecciones de negocio a CSV.
package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/jhoicas/zakayo-api/internal/domain/entity"
)

const dateLayout = time.DateOnly

// WriteCustomersCSV serializa clientes.
func WriteCustomersCSV(w io.Writer, rows []entity.Customer) error {
	return writeAll(w,
		[]string{"id", "name", "email", "phone", "address", "subsidiaryId", "totalOrders", "totalValue", "status"},
		len(rows), func(i int) []string {
			c := rows[i]
			return []string{
				strconv.Itoa(c.ID), c.Name, c.Email, c.Phone, c.Address,
				strconv.Itoa(c.SubsidiaryID), strconv.Itoa(c.TotalOrders), c.TotalValue.StringFixed(0), c.Status,
			}
		})
}

// WriteOrdersCSV serializa pedidos.
func WriteOrdersCSV(w io.Writer, rows []entity.Order) error {
	return writeAll(w,
		[]string{"id", "orderNumber", "customerName", "customerPhone", "product", "quantity", "unitPrice",
			"totalAmount", "status", "orderDate", "deliveryDate", "subsidiaryId"},
		len(rows), func(i int) []string {
			o := rows[i]
			return []string{
				strconv.Itoa(o.ID), o.OrderNumber, o.CustomerName, o.CustomerPhone, o.Product,
				strconv.Itoa(o.Quantity), o.UnitPrice.StringFixed(0), o.TotalAmount.StringFixed(0), o.Status,
				o.OrderDate.Format(dateLayout), optionalDate(o.DeliveryDate), strconv.Itoa(o.SubsidiaryID),
			}
		})
}

// WriteInvoicesCSV serializa facturas (una fila por factura, sin líneas).
func WriteInvoicesCSV(w io.Writer, rows []entity.Invoice) error {
	return writeAll(w,
		[]string{"id", "invoiceNumber", "customerName", "customerPhone", "customerEmail", "items", "subtotal",
			"tax", "total", "status", "issueDate", "dueDate", "subsidiaryId"},
		len(rows), func(i int) []string {
			inv := rows[i]
			return []string{
				strconv.Itoa(inv.ID), inv.InvoiceNumber, inv.CustomerName, inv.CustomerPhone, inv.CustomerEmail,
				strconv.Itoa(len(inv.Items)), inv.Subtotal.StringFixed(0), inv.Tax.StringFixed(0),
				inv.Total.StringFixed(0), inv.Status, inv.IssueDate.Format(dateLayout),
				inv.DueDate.Format(dateLayout), strconv.Itoa(inv.SubsidiaryID),
			}
		})
}

// WriteDeliveryNotesCSV serializa notas de entrega.
func WriteDeliveryNotesCSV(w io.Writer, rows []entity.DeliveryNote) error {
	return writeAll(w,
		[]string{"id", "deliveryNumber", "orderNumber", "customerName", "customerPhone", "customerAddress",
			"items", "status", "deliveryDate", "deliveredDate", "driverName", "vehicleNumber", "subsidiaryId"},
		len(rows), func(i int) []string {
			d := rows[i]
			return []string{
				strconv.Itoa(d.ID), d.DeliveryNumber, d.OrderNumber, d.CustomerName, d.CustomerPhone,
				d.CustomerAddress, strconv.Itoa(len(d.Items)), d.Status, d.DeliveryDate.Format(dateLayout),
				optionalDate(d.DeliveredDate), d.DriverName, d.VehicleNumber, strconv.Itoa(d.SubsidiaryID),
			}
		})
}

func writeAll(w io.Writer, header []string, n int, record func(int) []string) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()
	if err := writer.Write(header); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if err := writer.Write(record(i)); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func optionalDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}
