package warehouse

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Spok95/fuc-warehouse/internal/domain/materials"
	"github.com/Spok95/fuc-warehouse/internal/domain/shipments"
)

var (
	seedDay = time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC)
	testNow = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
)

func rec(id string, kind materials.Kind, qty int) materials.Record {
	return materials.Record{
		MaterialID: id,
		Name:       kind,
		Quantity:   qty,
		Status:     materials.StatusNormal,
		LastUpdate: seedDay,
	}
}

func demoSeed() []materials.Record {
	return []materials.Record{
		rec("M001", materials.KindMainBoard, 1),
		rec("M002", materials.KindInterfaceBoard, 1),
		rec("M003", materials.KindLightBoard, 1),
		rec("M004", materials.KindTopShell, 15),
		rec("M005", materials.KindBottomShell, 15),
	}
}

type fakeRecorder struct {
	mu       sync.Mutex
	commands map[string]int
	shipped  int
	stock    []materials.KindTotal
}

func newFakeRecorder() *fakeRecorder {
	return &fakeRecorder{commands: make(map[string]int)}
}

func (f *fakeRecorder) Command(name, result string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.commands[name+"/"+result]++
}

func (f *fakeRecorder) Shipped() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.shipped++
}

func (f *fakeRecorder) Stock(totals []materials.KindTotal) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stock = totals
}

func newEngine(t *testing.T, seed []materials.Record, opts ...Option) *Engine {
	t.Helper()
	store, err := materials.NewStore(seed...)
	require.NoError(t, err)

	n := 0
	base := []Option{
		WithClock(func() time.Time { return testNow }),
		WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("SHP-%03d", n)
		}),
	}
	return New(store, shipments.NewLedger(), append(base, opts...)...)
}

func shipInput(sn, mainBoard string) ShipInput {
	return ShipInput{
		SerialNumber:        sn,
		MainBoardMaterialID: mainBoard,
		Date:                time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		Operator:            "wang",
	}
}
