// Package pdf implementa el colaborador de exportación PDF para facturas y notas de entrega.
//
// Layout de la página A4 (ambos documentos):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Subsidiaria + descripción │ Tipo doc + N° + Fecha  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + contacto (+ dirección, conductor)        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: líneas del documento                                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES (factura) / FIRMAS (nota de entrega)               │
//	│  FOOTER: QR con la referencia + leyenda                     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/zakayo-api/internal/domain/entity"
	"github.com/jhoicas/zakayo-api/pkg/money"
)

const (
	holdingName = "Zakayo Holdings"
	dateLayout  = "02 Jan 2006"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator renderiza documentos con Maroto v2.
type MarotoPDFGenerator struct {
	currency string
}

// NewMarotoPDFGenerator construye el generador; currency prefija los montos (ej. "TSh").
func NewMarotoPDFGenerator(currency string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{currency: currency}
}

// RenderInvoice genera el PDF de una factura y devuelve sus bytes.
func (g *MarotoPDFGenerator) RenderInvoice(
	_ context.Context,
	inv *entity.Invoice,
	sub *entity.Subsidiary,
) ([]byte, error) {
	if inv == nil || sub == nil {
		return nil, fmt.Errorf("pdf: factura o subsidiaria vacía")
	}
	m := newDocument("Invoice "+inv.InvoiceNumber, sub.Name)
	brand := brandColor(sub.Color)

	m.AddRows(headerRow(sub, brand, "INVOICE", inv.InvoiceNumber,
		"Issue Date: "+inv.IssueDate.Format(dateLayout),
		"Due Date: "+inv.DueDate.Format(dateLayout),
	))
	m.AddRows(line.NewRow(1, props.Line{Color: brand, Thickness: 0.5}))
	m.AddRows(customerRow("BILL TO", inv.CustomerName,
		fmt.Sprintf("Phone: %s   |   Email: %s", nonEmpty(inv.CustomerPhone, "-"), nonEmpty(inv.CustomerEmail, "-")),
	))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow(
		headerCell{"Description", 6, align.Left},
		headerCell{"Qty", 1, align.Center},
		headerCell{"Unit Price", 2, align.Right},
		headerCell{"Total", 3, align.Right},
	))
	for _, it := range inv.Items {
		m.AddRows(row.New(7).Add(
			cell(it.Description, 6, align.Left),
			cell(strconv.Itoa(it.Quantity), 1, align.Center),
			cell(money.Format(g.currency, it.UnitPrice), 2, align.Right),
			cell(money.Format(g.currency, it.Total), 3, align.Right),
		))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.totalsRow(inv, brand))
	if inv.Notes != "" {
		m.AddRows(notesRow(inv.Notes))
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow(
		fmt.Sprintf("%s|%s|%s", inv.InvoiceNumber, sub.Name, inv.Total.StringFixed(0)),
		"Thank you for your business.",
		brand,
	))

	return generate(m)
}

// RenderDeliveryNote genera el PDF de una nota de entrega y devuelve sus bytes.
func (g *MarotoPDFGenerator) RenderDeliveryNote(
	_ context.Context,
	dn *entity.DeliveryNote,
	sub *entity.Subsidiary,
) ([]byte, error) {
	if dn == nil || sub == nil {
		return nil, fmt.Errorf("pdf: nota de entrega o subsidiaria vacía")
	}
	m := newDocument("Delivery Note "+dn.DeliveryNumber, sub.Name)
	brand := brandColor(sub.Color)

	delivered := "Delivered: -"
	if dn.DeliveredDate != nil {
		delivered = "Delivered: " + dn.DeliveredDate.Format(dateLayout)
	}
	m.AddRows(headerRow(sub, brand, "DELIVERY NOTE", dn.DeliveryNumber,
		"Delivery Date: "+dn.DeliveryDate.Format(dateLayout),
		delivered,
	))
	m.AddRows(line.NewRow(1, props.Line{Color: brand, Thickness: 0.5}))
	m.AddRows(customerRow("DELIVER TO", dn.CustomerName,
		fmt.Sprintf("Phone: %s   |   Address: %s", nonEmpty(dn.CustomerPhone, "-"), nonEmpty(dn.CustomerAddress, "-")),
	))
	m.AddRows(row.New(10).Add(
		col.New(4).Add(text.New("Order: "+dn.OrderNumber, props.Text{Size: 8, Top: 2, Color: colorGray})),
		col.New(4).Add(text.New("Driver: "+nonEmpty(dn.DriverName, "-"), props.Text{Size: 8, Top: 2, Color: colorGray})),
		col.New(4).Add(text.New("Vehicle: "+nonEmpty(dn.VehicleNumber, "-"), props.Text{Size: 8, Top: 2, Color: colorGray})),
	))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow(
		headerCell{"Description", 6, align.Left},
		headerCell{"Ordered", 2, align.Center},
		headerCell{"Delivered", 2, align.Center},
		headerCell{"Status", 2, align.Center},
	))
	for _, it := range dn.Items {
		m.AddRows(row.New(7).Add(
			cell(it.Description, 6, align.Left),
			cell(strconv.Itoa(it.Quantity), 2, align.Center),
			cell(strconv.Itoa(it.Delivered), 2, align.Center),
			cell(dn.Status, 2, align.Center),
		))
	}
	if dn.Notes != "" {
		m.AddRows(notesRow(dn.Notes))
	}

	m.AddRows(line.NewRow(6))
	m.AddRows(signatureRow())
	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow(
		fmt.Sprintf("%s|%s|%s", dn.DeliveryNumber, dn.OrderNumber, sub.Name),
		"Please prepare to receive your delivery.",
		brand,
	))

	return generate(m)
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func newDocument(title, author string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(author, true).
		Build()
	return maroto.New(cfg)
}

func generate(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: subsidiaria (izq) y tipo de documento + número + fechas (der).
func headerRow(sub *entity.Subsidiary, brand *props.Color, kind, number, date1, date2 string) core.Row {
	return row.New(22).Add(
		col.New(7).Add(
			text.New(sub.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: brand, Top: 1,
			}),
			text.New(sub.Description, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
			text.New(holdingName, props.Text{
				Size: 8, Top: 15, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(kind, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(number, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 6,
			}),
			text.New(date1, props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
			text.New(date2, props.Text{
				Size: 8, Align: align.Right, Top: 17, Color: colorGray,
			}),
		),
	)
}

// customerRow: datos del destinatario.
func customerRow(label, name, contact string) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(contact, props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

type headerCell struct {
	label string
	size  int
	align align.Type
}

func tableHeaderRow(cells ...headerCell) core.Row {
	cols := make([]core.Col, 0, len(cells))
	for _, h := range cells {
		cols = append(cols, col.New(h.size).Add(text.New(h.label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: h.align,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(cols...)
}

func cell(s string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
}

// totalsRow: bloque de totales alineado a la derecha.
func (g *MarotoPDFGenerator) totalsRow(inv *entity.Invoice, brand *props.Color) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top,
		})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}

	return row.New(22).Add(
		col.New(5),
		col.New(3).Add(
			label("Subtotal:", 1),
			label("Tax:", 7),
			text.New("TOTAL:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: brand, Right: 2, Top: 14,
			}),
		),
		col.New(4).Add(
			value(money.Format(g.currency, inv.Subtotal), 1),
			value(money.Format(g.currency, inv.Tax), 7),
			text.New(money.Format(g.currency, inv.Total), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: brand, Right: 1, Top: 14,
			}),
		),
	)
}

func notesRow(notes string) core.Row {
	return row.New(12).Add(col.New(12).Add(
		text.New("Notes", props.Text{Style: fontstyle.Bold, Size: 8, Top: 2}),
		text.New(notes, props.Text{Size: 8, Top: 6, Color: colorGray}),
	))
}

func signatureRow() core.Row {
	sig := func(label string) core.Col {
		return col.New(6).Add(
			text.New("______________________________", props.Text{Size: 9, Align: align.Center, Top: 4}),
			text.New(label, props.Text{Size: 8, Align: align.Center, Top: 10, Color: colorGray}),
		)
	}
	return row.New(18).Add(sig("Driver signature"), sig("Received by"))
}

// footerRow: QR con la referencia del documento + leyenda.
func footerRow(qr, legend string, brand *props.Color) core.Row {
	return row.New(36).Add(
		col.New(3).Add(code.NewQr(qr, props.Rect{Percent: 95, Center: true})),
		col.New(9).Add(
			text.New(legend, props.Text{Size: 9, Top: 8, Left: 3, Color: colorGray}),
			text.New(holdingName+" Management System", props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 18, Left: 3, Color: brand,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// brandColor convierte "#10B981" a props.Color; ante un valor inválido usa el color primario.
func brandColor(hex string) *props.Color {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(hex) != 6 {
		return colorPrimary
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return colorPrimary
	}
	return &props.Color{Red: int(v >> 16 & 0xFF), Green: int(v >> 8 & 0xFF), Blue: int(v & 0xFF)}
}
