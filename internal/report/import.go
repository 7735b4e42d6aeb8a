package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Spok95/fuc-warehouse/internal/domain/materials"
)

// ReadMaterials читает начальные остатки из xlsx (формат WriteMaterials).
// Пустые строки пропускаются, ошибка указывает номер строки файла.
func ReadMaterials(r io.Reader, now time.Time) ([]materials.Record, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	if len(rows) < 1 || len(rows[0]) < 3 {
		return nil, fmt.Errorf("unexpected layout: need at least material_id, name, quantity columns")
	}

	var out []materials.Record
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		line := i + 1
		if len(row) < 3 {
			continue
		}
		id := strings.TrimSpace(row[0])
		if id == "" {
			continue
		}

		kind := materials.Kind(strings.TrimSpace(row[1]))
		if !kind.Valid() {
			return nil, fmt.Errorf("row %d: unknown material kind %q", line, row[1])
		}
		qty, err := strconv.Atoi(strings.TrimSpace(row[2]))
		if err != nil || qty < 0 {
			return nil, fmt.Errorf("row %d: invalid quantity %q", line, row[2])
		}
		if kind.Serialized() && qty > 1 {
			return nil, fmt.Errorf("row %d: %s holds at most one unit, got %d", line, kind, qty)
		}

		rec := materials.Record{
			MaterialID: id,
			Name:       kind,
			Quantity:   qty,
			Status:     materials.StatusNormal,
			LastUpdate: now,
		}
		if st := cell(row, 3); st != "" {
			rec.Status = materials.Status(strings.ToLower(st))
			if !rec.Status.Valid() {
				return nil, fmt.Errorf("row %d: unknown status %q", line, st)
			}
		}
		if rec.Status == materials.StatusAbnormal {
			rec.AbnormalReason = cell(row, 4)
			if rec.AbnormalReason == "" {
				return nil, fmt.Errorf("row %d: abnormal material without reason", line)
			}
		}
		if d := cell(row, 5); d != "" {
			t, err := time.ParseInLocation(dateLayout, d, now.Location())
			if err != nil {
				return nil, fmt.Errorf("row %d: invalid last_update %q", line, d)
			}
			rec.LastUpdate = t
		}
		out = append(out, rec)
	}
	return out, nil
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
