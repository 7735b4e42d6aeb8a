package materials

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day = time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC)

func rec(id string, kind Kind, qty int) Record {
	return Record{MaterialID: id, Name: kind, Quantity: qty, Status: StatusNormal, LastUpdate: day}
}

func TestNewStore_RejectsDuplicateSeed(t *testing.T) {
	_, err := NewStore(rec("M001", KindMainBoard, 1), rec("M001", KindMainBoard, 1))
	require.ErrorIs(t, err, ErrDuplicateID)
}

func TestStore_InsertGetDelete(t *testing.T) {
	s, err := NewStore()
	require.NoError(t, err)

	require.NoError(t, s.Insert(rec("M001", KindMainBoard, 1)))
	require.ErrorIs(t, s.Insert(rec("M001", KindLightBoard, 1)), ErrDuplicateID)
	require.Error(t, s.Insert(rec("", KindTopShell, 1)))

	got, err := s.Get("M001")
	require.NoError(t, err)
	assert.Equal(t, KindMainBoard, got.Name)

	_, err = s.Get("nope")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Delete("M001"))
	require.ErrorIs(t, s.Delete("M001"), ErrNotFound)
	assert.Equal(t, 0, s.Len())
}

func TestStore_PutKeepsOrder(t *testing.T) {
	s, err := NewStore(
		rec("M001", KindMainBoard, 1),
		rec("M004", KindTopShell, 15),
		rec("M005", KindBottomShell, 15),
	)
	require.NoError(t, err)

	upd := rec("M004", KindTopShell, 3)
	upd.Status = StatusWarning
	require.NoError(t, s.Put(upd))
	require.ErrorIs(t, s.Put(rec("M999", KindTopShell, 1)), ErrNotFound)

	want := []Record{
		rec("M001", KindMainBoard, 1),
		upd,
		rec("M005", KindBottomShell, 15),
	}
	if diff := cmp.Diff(want, s.List()); diff != "" {
		t.Errorf("List() mismatch (-want +got):\n%s", diff)
	}
}

func TestStore_ListIsSnapshot(t *testing.T) {
	s, err := NewStore(rec("M004", KindTopShell, 15))
	require.NoError(t, err)

	list := s.List()
	list[0].Quantity = 0

	got, err := s.Get("M004")
	require.NoError(t, err)
	assert.Equal(t, 15, got.Quantity)
}

func TestStore_DeleteMiddlePreservesOrder(t *testing.T) {
	s, err := NewStore(
		rec("A", KindTopShell, 1),
		rec("B", KindTopShell, 2),
		rec("C", KindTopShell, 3),
	)
	require.NoError(t, err)
	require.NoError(t, s.Delete("B"))

	var ids []string
	for _, r := range s.List() {
		ids = append(ids, r.MaterialID)
	}
	assert.Equal(t, []string{"A", "C"}, ids)
}

func TestStore_FirstOfKind(t *testing.T) {
	bad := rec("S1", KindTopShell, 10)
	bad.Status = StatusAbnormal
	s, err := NewStore(
		rec("M001", KindMainBoard, 1),
		bad,
		rec("S2", KindTopShell, 4),
		rec("S3", KindTopShell, 20),
	)
	require.NoError(t, err)

	r, ok := s.FirstOfKind(KindTopShell, nil)
	require.True(t, ok)
	assert.Equal(t, "S1", r.MaterialID)

	r, ok = s.FirstOfKind(KindTopShell, func(r Record) bool { return r.Status != StatusAbnormal })
	require.True(t, ok)
	assert.Equal(t, "S2", r.MaterialID)

	_, ok = s.FirstOfKind(KindBottomShell, nil)
	assert.False(t, ok)
}

func TestStore_TotalsByKind(t *testing.T) {
	s, err := NewStore(
		rec("M001", KindMainBoard, 1),
		rec("M006", KindMainBoard, 0),
		rec("S1", KindTopShell, 15),
		rec("S2", KindTopShell, 5),
	)
	require.NoError(t, err)

	want := []KindTotal{
		{Kind: KindMainBoard, Records: 2, Quantity: 1},
		{Kind: KindInterfaceBoard},
		{Kind: KindLightBoard},
		{Kind: KindTopShell, Records: 2, Quantity: 20},
		{Kind: KindBottomShell},
		{Kind: KindPowerAdapter},
	}
	if diff := cmp.Diff(want, s.TotalsByKind()); diff != "" {
		t.Errorf("TotalsByKind() mismatch (-want +got):\n%s", diff)
	}
}

func TestStore_Search(t *testing.T) {
	s, err := NewStore(
		rec("M002", KindInterfaceBoard, 1),
		rec("M001", KindMainBoard, 1),
		rec("FUC-TopShell-1700000000000", KindTopShell, 15),
	)
	require.NoError(t, err)

	got := s.Search("m00")
	require.Len(t, got, 2)
	assert.Equal(t, "M001", got[0].MaterialID)
	assert.Equal(t, "M002", got[1].MaterialID)

	got = s.Search("topshell")
	require.Len(t, got, 1)

	assert.Nil(t, s.Search("  "))
}
