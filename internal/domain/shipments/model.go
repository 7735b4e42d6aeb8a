package shipments

import "time"

const (
	DefaultProductName = "FUC Calibrator Unit"
	DefaultPartNumber  = "HXF-FFV-RS-VRF"
)

type Record struct {
	ID                  string
	SerialNumber        string
	ProductName         string
	PartNumber          string
	MainBoardMaterialID string
	Components          []string // номера всех списанных комплектующих, в порядке спецификации
	ShipmentDate        time.Time
	Operator            string
	Remark              string
	CreatedAt           time.Time
}

func (r Record) clone() Record {
	if r.Components != nil {
		r.Components = append([]string(nil), r.Components...)
	}
	return r
}
