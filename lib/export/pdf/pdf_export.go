package pdfexport

import (
	"bytes"
	"fmt"

	docapimodels "erp-core-backend/models/api/docs"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

// GeneratePurchaseOrder формирует печатную форму заказа поставщику
func GeneratePurchaseOrder(view docapimodels.PurchaseOrderView) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GeneratePurchaseOrder panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "static/font/")
	pdf.AddPage()
	pdf.AddUTF8Font("Arial", "", "Arial.ttf")
	pdf.AddUTF8Font("Arial", "B", "Arial Bold.ttf")
	pdf.SetFont("Arial", "B", 14)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}
	pdf.Cell(0, 10, fmt.Sprintf("Заказ поставщику %s", view.DocumentNumber))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 11)
	writeRow := func(label, value string) {
		pdf.SetFont("Arial", "B", 11)
		pdf.Cell(50, 7, label)
		pdf.SetFont("Arial", "", 11)
		pdf.Cell(0, 7, value)
		pdf.Ln(7)
	}
	writeRow("Поставщик:", view.SupplierName)
	writeRow("Склад:", view.WarehouseName)
	writeRow("Статус:", string(view.Status))
	if view.ExpectedDate != nil {
		writeRow("Ожидаемая дата:", view.ExpectedDate.Format("02.01.2006"))
	}
	writeRow("Автор:", view.AuthorName)
	pdf.Ln(5)

	// таблица строк
	pdf.SetFont("Arial", "B", 10)
	colWidths := []float64{70, 30, 30, 30}
	headers := []string{"Номенклатура", "Количество", "Цена", "Сумма"}
	for idx, header := range headers {
		pdf.CellFormat(colWidths[idx], 8, header, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	for _, line := range view.Lines {
		name := line.ItemName
		if name == "" {
			name = line.ItemID
		}
		pdf.CellFormat(colWidths[0], 7, name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[1], 7, line.Quantity.String(), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[2], 7, line.Price.String(), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[3], 7, line.Amount.String(), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(colWidths[0]+colWidths[1]+colWidths[2], 8, "Итого", "1", 0, "R", false, 0, "")
	pdf.CellFormat(colWidths[3], 8, fmt.Sprintf("%s %s", view.TotalAmount.String(), view.Currency), "1", 0, "R", false, 0, "")
	pdf.Ln(-1)

	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
