// Package report выгрузка журнала отгрузок и остатков в Excel и загрузка
// начальных остатков из Excel.
package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/Spok95/fuc-warehouse/internal/domain/materials"
	"github.com/Spok95/fuc-warehouse/internal/domain/shipments"
)

const dateLayout = "2006-01-02"

var shipmentHeader = []interface{}{
	"shipment_id",
	"product_name",
	"sn",
	"date",
	"operator",
	"pn",
	"main_board_id",
	"remark",
}

var materialHeader = []interface{}{
	"material_id",
	"name",
	"quantity",
	"status",
	"abnormal_reason",
	"last_update",
}

// WriteShipments пишет журнал отгрузок в xlsx.
func WriteShipments(w io.Writer, recs []shipments.Record) error {
	rows := make([][]interface{}, 0, len(recs))
	for _, r := range recs {
		rows = append(rows, []interface{}{
			r.ID,
			r.ProductName,
			r.SerialNumber,
			r.ShipmentDate.Format(dateLayout),
			r.Operator,
			r.PartNumber,
			r.MainBoardMaterialID,
			r.Remark,
		})
	}
	return writeSheet(w, "Shipments", shipmentHeader, rows)
}

// WriteMaterials пишет текущие остатки; формат совпадает с ReadMaterials.
func WriteMaterials(w io.Writer, recs []materials.Record) error {
	rows := make([][]interface{}, 0, len(recs))
	for _, r := range recs {
		rows = append(rows, []interface{}{
			r.MaterialID,
			string(r.Name),
			r.Quantity,
			string(r.Status),
			r.AbnormalReason,
			r.LastUpdate.Format(dateLayout),
		})
	}
	return writeSheet(w, "Materials", materialHeader, rows)
}

func writeSheet(w io.Writer, name string, header []interface{}, rows [][]interface{}) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	if err := f.SetSheetName(sheet, name); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	// Заголовок
	if err := f.SetSheetRow(name, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	// Данные
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(name, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	_, err := f.WriteTo(w)
	return err
}
