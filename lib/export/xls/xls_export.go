package xlsexport

import (
	"bytes"

	docapimodels "erp-core-backend/models/api/docs"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	ExportPurchaseOrderList(list []docapimodels.PurchaseOrderView) (*bytes.Buffer, error)
	ExportSalesOrderList(list []docapimodels.SalesOrderView) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var poHeaders = []string{"Номер", "Поставщик", "Статус", "Сумма", "Валюта", "Ожидаемая дата", "Автор", "Создан"}
var soHeaders = []string{"Номер", "Покупатель", "Статус", "Сумма", "Валюта", "Автор", "Создан"}

func (i impl) ExportPurchaseOrderList(list []docapimodels.PurchaseOrderView) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, poHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(list) != 0 {
		if err = applyDataCellStyle(f, sheet, 1, row+1, len(poHeaders), len(list)+1); err != nil {
			return nil, err
		}
		for _, item := range list {
			row++
			col := 1
			if err = writeColumn(f, sheet, col, row, item.DocumentNumber); err != nil {
				return nil, err
			}
			col++
			if err = writeColumn(f, sheet, col, row, item.SupplierName); err != nil {
				return nil, err
			}
			col++
			if err = writeColumn(f, sheet, col, row, string(item.Status)); err != nil {
				return nil, err
			}
			col++
			if err = writeColumn(f, sheet, col, row, item.TotalAmount.String()); err != nil {
				return nil, err
			}
			col++
			if err = writeColumn(f, sheet, col, row, item.Currency); err != nil {
				return nil, err
			}
			col++
			if item.ExpectedDate != nil {
				if err = writeColumn(f, sheet, col, row, item.ExpectedDate.Format("02.01.2006")); err != nil {
					return nil, err
				}
			}
			col++
			if err = writeColumn(f, sheet, col, row, item.AuthorName); err != nil {
				return nil, err
			}
			col++
			if err = writeColumn(f, sheet, col, row, item.CreatedAt.Format("02.01.2006")); err != nil {
				return nil, err
			}
		}
	}
	f.SetSheetName(sheet, "Заказы поставщику")
	return f.WriteToBuffer()
}

func (i impl) ExportSalesOrderList(list []docapimodels.SalesOrderView) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, soHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(list) != 0 {
		if err = applyDataCellStyle(f, sheet, 1, row+1, len(soHeaders), len(list)+1); err != nil {
			return nil, err
		}
		for _, item := range list {
			row++
			col := 1
			if err = writeColumn(f, sheet, col, row, item.DocumentNumber); err != nil {
				return nil, err
			}
			col++
			if err = writeColumn(f, sheet, col, row, item.CustomerName); err != nil {
				return nil, err
			}
			col++
			if err = writeColumn(f, sheet, col, row, string(item.Status)); err != nil {
				return nil, err
			}
			col++
			if err = writeColumn(f, sheet, col, row, item.TotalAmount.String()); err != nil {
				return nil, err
			}
			col++
			if err = writeColumn(f, sheet, col, row, item.Currency); err != nil {
				return nil, err
			}
			col++
			if err = writeColumn(f, sheet, col, row, item.AuthorName); err != nil {
				return nil, err
			}
			col++
			if err = writeColumn(f, sheet, col, row, item.CreatedAt.Format("02.01.2006")); err != nil {
				return nil, err
			}
		}
	}
	f.SetSheetName(sheet, "Заказы покупателя")
	return f.WriteToBuffer()
}
