package warehouse

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Spok95/fuc-warehouse/internal/domain/materials"
	"github.com/Spok95/fuc-warehouse/internal/domain/shipments"
)

// BOM комплектация одного изделия: по одной единице каждого вида.
var BOM = []materials.Kind{
	materials.KindMainBoard,
	materials.KindInterfaceBoard,
	materials.KindLightBoard,
	materials.KindTopShell,
	materials.KindBottomShell,
}

type ShipInput struct {
	SerialNumber        string
	ProductName         string // пусто => shipments.DefaultProductName
	PartNumber          string // пусто => shipments.DefaultPartNumber
	MainBoardMaterialID string
	Date                time.Time
	Operator            string
	Remark              string
}

func (in ShipInput) normalize() ShipInput {
	in.SerialNumber = strings.TrimSpace(in.SerialNumber)
	in.ProductName = strings.TrimSpace(in.ProductName)
	in.PartNumber = strings.TrimSpace(in.PartNumber)
	in.MainBoardMaterialID = strings.TrimSpace(in.MainBoardMaterialID)
	in.Operator = strings.TrimSpace(in.Operator)
	in.Remark = strings.TrimSpace(in.Remark)
	if in.ProductName == "" {
		in.ProductName = shipments.DefaultProductName
	}
	if in.PartNumber == "" {
		in.PartNumber = shipments.DefaultPartNumber
	}
	return in
}

func (in ShipInput) validate() error {
	switch {
	case in.SerialNumber == "":
		return invalid("serial_number", "is required")
	case in.MainBoardMaterialID == "":
		return invalid("main_board_material_id", "is required")
	case in.Operator == "":
		return invalid("operator", "is required")
	case in.Date.IsZero():
		return invalid("date", "is required")
	}
	return nil
}

// ShipProduct отгрузка изделия: списывает по одной единице каждого вида из BOM
// и добавляет запись в журнал отгрузок. Либо всё, либо ничего.
func (e *Engine) ShipProduct(in ShipInput) (shipments.Record, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	rec, err := e.shipProduct(in.normalize())
	if err == nil {
		e.rec.Shipped()
	}
	return rec, e.finish("ship_product", err,
		"sn", in.SerialNumber, "main_board", in.MainBoardMaterialID, "operator", in.Operator)
}

func (e *Engine) shipProduct(in ShipInput) (shipments.Record, error) {
	if err := in.validate(); err != nil {
		return shipments.Record{}, err
	}
	if _, dup := e.ledger.BySerial(in.SerialNumber); dup {
		return shipments.Record{}, invalid("serial_number", "%s already shipped", in.SerialNumber)
	}

	// 1) подбор комплектующих
	picked, err := e.resolveComponents(in.MainBoardMaterialID)
	if err != nil {
		return shipments.Record{}, err
	}

	// 2) проверка всех пяти до любых изменений
	now := e.now()
	next := make([]materials.Record, len(picked))
	for i, r := range picked {
		if r.Quantity-1 < 0 {
			return shipments.Record{}, &InsufficientStockError{
				MaterialID: r.MaterialID,
				Kind:       r.Name,
				Requested:  1,
				Available:  r.Quantity,
			}
		}
		r.Quantity--
		r.Status = materials.DeriveStatus(r.Quantity, r.Pinned())
		r.LastUpdate = now
		next[i] = r
	}

	// 3) списание; при любой ошибке возвращаем прежние записи
	committed := false
	applied := make([]materials.Record, 0, len(picked))
	defer func() {
		if committed {
			return
		}
		for _, r := range applied {
			_ = e.store.Put(r)
		}
	}()
	for i, r := range next {
		if err := e.store.Put(r); err != nil {
			return shipments.Record{}, err
		}
		applied = append(applied, picked[i])
	}

	// 4) запись об отгрузке
	ids := make([]string, len(next))
	for i, r := range next {
		ids[i] = r.MaterialID
	}
	rec := shipments.Record{
		ID:                  e.newID(),
		SerialNumber:        in.SerialNumber,
		ProductName:         in.ProductName,
		PartNumber:          in.PartNumber,
		MainBoardMaterialID: in.MainBoardMaterialID,
		Components:          ids,
		ShipmentDate:        in.Date,
		Operator:            in.Operator,
		Remark:              in.Remark,
		CreatedAt:           now,
	}
	if err := e.ledger.Append(rec); err != nil {
		return shipments.Record{}, err
	}
	committed = true

	note := fmt.Sprintf("shipment %s (SN %s)", rec.ID, rec.SerialNumber)
	for _, id := range ids {
		e.journal.WriteOff(now, in.Operator, id, 1, note)
	}
	return rec, nil
}

// resolveComponents подбирает запись на каждый вид BOM. Плата — выбранная оператором,
// остальные — первая по порядку добавления без пометки Abnormal.
func (e *Engine) resolveComponents(mainBoardID string) ([]materials.Record, error) {
	eligible := func(r materials.Record) bool { return r.Status != materials.StatusAbnormal }

	picked := make([]materials.Record, 0, len(BOM))
	var missing []materials.Kind
	for _, kind := range BOM {
		if kind != materials.KindMainBoard {
			r, ok := e.store.FirstOfKind(kind, eligible)
			if !ok {
				missing = append(missing, kind)
				continue
			}
			picked = append(picked, r)
			continue
		}

		r, err := e.store.Get(mainBoardID)
		switch {
		case errors.Is(err, materials.ErrNotFound):
			return nil, invalid("main_board_material_id", "%s not found", mainBoardID)
		case err != nil:
			return nil, err
		case r.Name != materials.KindMainBoard:
			return nil, invalid("main_board_material_id", "%s is %s, not %s", mainBoardID, r.Name, materials.KindMainBoard)
		case !eligible(r):
			missing = append(missing, kind)
		default:
			picked = append(picked, r)
		}
	}
	if len(missing) > 0 {
		return nil, &UnavailableComponentsError{Kinds: missing}
	}
	return picked, nil
}
