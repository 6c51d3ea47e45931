// Package export gera a versão da previsão base para o time comercial:
// uma planilha com o resumo por produto e a grade diária completa.
package export

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/vfg2006/sales-forecast-api/internal/domain"
)

const (
	summarySheet = "Resumen"
	detailSheet  = "Detalle"
)

var ErrNothingToExport = errors.New("nenhuma previsão para exportar")

type ExcelWriter interface {
	WriteForecast(path string, forecasts []domain.ProductForecast) error
}

type excelWriter struct{}

func NewExcelWriter() ExcelWriter {
	return &excelWriter{}
}

func (w *excelWriter) WriteForecast(path string, forecasts []domain.ProductForecast) error {
	if len(forecasts) == 0 {
		return ErrNothingToExport
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := w.writeSummary(f, forecasts); err != nil {
		return err
	}
	if err := w.writeDetail(f, forecasts); err != nil {
		return err
	}

	// A planilha nasce com uma aba padrão que não usamos.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return errors.Wrap(err, "removendo aba padrão")
	}

	if err := f.SaveAs(path); err != nil {
		return errors.Wrapf(err, "gravando %s", path)
	}

	return nil
}

func (w *excelWriter) writeSummary(f *excelize.File, forecasts []domain.ProductForecast) error {
	if _, err := f.NewSheet(summarySheet); err != nil {
		return errors.Wrap(err, "criando aba de resumo")
	}

	header := []any{"Producto", "Unidades previstas", "Ingresos previstos", "Precio medio", "Descuento medio %"}
	if err := f.SetSheetRow(summarySheet, "A1", &header); err != nil {
		return errors.Wrap(err, "gravando cabeçalho do resumo")
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return errors.Wrap(err, "criando estilo do cabeçalho")
	}
	if err := f.SetCellStyle(summarySheet, "A1", "E1", bold); err != nil {
		return errors.Wrap(err, "aplicando estilo do cabeçalho")
	}

	for i, forecast := range forecasts {
		row := []any{
			forecast.Product,
			forecast.Summary.TotalUnits,
			forecast.Summary.TotalRevenue,
			forecast.Summary.AveragePrice,
			forecast.Summary.AverageDiscountPct,
		}

		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return errors.Wrapf(err, "gravando resumo de %s", forecast.Product)
		}
	}

	return nil
}

func (w *excelWriter) writeDetail(f *excelize.File, forecasts []domain.ProductForecast) error {
	if _, err := f.NewSheet(detailSheet); err != nil {
		return errors.Wrap(err, "criando aba de detalhe")
	}

	header := []any{
		"Producto", "Fecha", "Día", "Precio venta", "Precio competencia",
		"Descuento %", "Unidades previstas", "Ingresos", "Black Friday",
	}
	if err := f.SetSheetRow(detailSheet, "A1", &header); err != nil {
		return errors.Wrap(err, "gravando cabeçalho do detalhe")
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return errors.Wrap(err, "criando estilo do cabeçalho")
	}
	if err := f.SetCellStyle(detailSheet, "A1", "I1", bold); err != nil {
		return errors.Wrap(err, "aplicando estilo do cabeçalho")
	}

	// Destaque amarelo para a linha da Black Friday.
	highlight, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"FFF2CC"}},
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return errors.Wrap(err, "criando estilo da Black Friday")
	}

	line := 2
	for _, forecast := range forecasts {
		for _, day := range forecast.Days {
			flag := ""
			if day.IsBlackFriday {
				flag = "BLACK FRIDAY"
			}

			row := []any{
				forecast.Product,
				day.Date,
				day.Weekday,
				day.SellPrice,
				day.CompetitorPrice,
				day.DiscountPct,
				day.PredictedUnits,
				day.Revenue,
				flag,
			}

			cell := fmt.Sprintf("A%d", line)
			if err := f.SetSheetRow(detailSheet, cell, &row); err != nil {
				return errors.Wrapf(err, "gravando detalhe de %s em %s", forecast.Product, day.Date)
			}

			if day.IsBlackFriday {
				if err := f.SetCellStyle(detailSheet, cell, fmt.Sprintf("I%d", line), highlight); err != nil {
					return errors.Wrap(err, "aplicando destaque da Black Friday")
				}
			}

			line++
		}
	}

	return nil
}
