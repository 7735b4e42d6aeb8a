package main

import (
	"fmt"
	"os"
	"time"

	"github.com/Spok95/fuc-warehouse/internal/domain/materials"
	"github.com/Spok95/fuc-warehouse/internal/report"
)

// demoSeed начальный склад: по одному комплекту на изделие, корпуса с запасом.
func demoSeed(loc *time.Location) []materials.Record {
	day := time.Date(2024, 2, 20, 0, 0, 0, 0, loc)
	rec := func(id string, kind materials.Kind, qty int) materials.Record {
		return materials.Record{
			MaterialID: id,
			Name:       kind,
			Quantity:   qty,
			Status:     materials.StatusNormal,
			LastUpdate: day,
		}
	}
	return []materials.Record{
		rec("M001", materials.KindMainBoard, 1),
		rec("M002", materials.KindInterfaceBoard, 1),
		rec("M003", materials.KindLightBoard, 1),
		rec("M004", materials.KindTopShell, 15),
		rec("M005", materials.KindBottomShell, 15),
	}
}

func loadSeed(path string, loc *time.Location) ([]materials.Record, error) {
	if path == "" {
		return demoSeed(loc), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	recs, err := report.ReadMaterials(f, time.Now().In(loc))
	if err != nil {
		return nil, fmt.Errorf("seed %s: %w", path, err)
	}
	return recs, nil
}
