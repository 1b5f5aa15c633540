// Package report renders a crop's printable summary as an xlsx workbook.
package report

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"lavoura/entities"
	"lavoura/pkg/agro"
)

// Build writes one workbook with an overview sheet plus materials and
// harvest-log sheets. Layout is informational, not load-bearing.
func Build(crop *entities.Crop, logs []entities.HarvestLog) (*bytes.Buffer, error) {
	x := excelize.NewFile()
	defer x.Close()

	const overview = "Resumo"
	x.SetSheetName("Sheet1", overview)

	harvested := agro.TotalHarvested(logs)
	expected := agro.ExpectedHarvestTotal(crop.ProductivityGoal, crop.AreaHa)
	rows := [][]any{
		{"Lavoura", crop.Name},
		{"Cultura", string(crop.CropType)},
		{"Solo", string(crop.SoilType)},
		{"Área (ha)", crop.AreaHa},
		{"Meta de produtividade", crop.ProductivityGoal},
		{"Espaçamento", crop.Spacing},
		{"Custo estimado (R$)", agro.TotalEstimatedCost(crop.Materials)},
		{"Custo realizado (R$)", agro.TotalRealizedCost(crop.Materials)},
		{"Previsão de colheita", crop.EstimatedHarvestDate.Format("2006-01-02")},
		{"Colhido até agora", harvested},
		{"Total esperado", expected},
		{"Progresso (%)", agro.HarvestProgressPercent(harvested, expected)},
	}
	for i, r := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := x.SetSheetRow(overview, cell, &r); err != nil {
			return nil, err
		}
	}

	const materials = "Insumos"
	if _, err := x.NewSheet(materials); err != nil {
		return nil, err
	}
	head := []any{"Insumo", "Categoria", "Qtde", "Unidade", "Preço est. unit.", "Custo real unit."}
	_ = x.SetSheetRow(materials, "A1", &head)
	for i, m := range crop.Materials {
		realized := ""
		if m.RealizedUnitCost != nil {
			realized = fmt.Sprintf("%.2f", *m.RealizedUnitCost)
		}
		row := []any{m.Name, string(m.Category), m.Quantity, m.Unit, m.UnitPriceEstimate, realized}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		_ = x.SetSheetRow(materials, cell, &row)
	}

	const harvests = "Colheitas"
	if _, err := x.NewSheet(harvests); err != nil {
		return nil, err
	}
	head = []any{"Data", "Quantidade", "Unidade", "Armazenamento", "Qualidade"}
	_ = x.SetSheetRow(harvests, "A1", &head)
	for i, l := range logs {
		row := []any{l.Date.Format("2006-01-02"), l.Quantity, l.Unit, l.StorageLocation, l.QualityNote}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		_ = x.SetSheetRow(harvests, cell, &row)
	}

	buf, err := x.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf, nil
}
