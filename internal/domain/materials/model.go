package materials

import "time"

type Kind string

const (
	KindMainBoard      Kind = "FUC-MainBoard"
	KindInterfaceBoard Kind = "FUC-InterfaceBoard"
	KindLightBoard     Kind = "FUC-LightBoard"
	KindTopShell       Kind = "FUC-TopShell"
	KindBottomShell    Kind = "FUC-BottomShell"
	KindPowerAdapter   Kind = "FUC-PowerAdapter"
)

// Catalog все виды материалов склада, в порядке отображения.
var Catalog = []Kind{
	KindMainBoard,
	KindInterfaceBoard,
	KindLightBoard,
	KindTopShell,
	KindBottomShell,
	KindPowerAdapter,
}

func (k Kind) Valid() bool {
	for _, c := range Catalog {
		if c == k {
			return true
		}
	}
	return false
}

// Serialized платы учитываются поштучно: одна запись = одна единица с номером от оператора.
func (k Kind) Serialized() bool {
	switch k {
	case KindMainBoard, KindInterfaceBoard, KindLightBoard:
		return true
	}
	return false
}

// GeneratedID корпуса получают синтетический номер (вид + время).
func (k Kind) GeneratedID() bool {
	return k == KindTopShell || k == KindBottomShell
}

type Record struct {
	MaterialID     string
	Name           Kind
	Quantity       int
	Status         Status
	AbnormalReason string // только для Abnormal
	LastUpdate     time.Time
}

// Pinned статус зафиксирован вручную как Abnormal.
func (r Record) Pinned() bool {
	return r.Status == StatusAbnormal
}

// KindTotal агрегат по одному виду материала.
type KindTotal struct {
	Kind     Kind
	Records  int
	Quantity int
}
