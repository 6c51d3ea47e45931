package artifact

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/vfg2006/sales-forecast-api/internal/domain"
	"github.com/vfg2006/sales-forecast-api/pkg/utils"
)

// Cabeçalho do quadro de inferência gravado em CSV. As colunas de
// defasagem carregam a semente do primeiro dia de cada produto.
var frameHeader = []string{
	"fecha",
	"nombre",
	"categoria",
	"subcategoria",
	"precio_base",
	"precio_venta",
	"precio_competencia",
	"amazon",
	"decathlon",
	"deporvillage",
	"descuento_porcentaje",
	"dia_mes",
	"dia_semana",
	"es_fin_de_semana",
	"es_festivo",
	"es_black_friday",
	"es_cyber_monday",
	"unidades_vendidas_lag1",
	"unidades_vendidas_lag2",
	"unidades_vendidas_lag3",
	"unidades_vendidas_lag4",
	"unidades_vendidas_lag5",
	"unidades_vendidas_lag6",
	"unidades_vendidas_lag7",
	"unidades_vendidas_ma7",
}

func (s *store) SaveFrame(frame []domain.FrameRow) error {
	f, err := os.Create(s.path(FrameFile))
	if err != nil {
		return errors.Wrapf(err, "gravando %s", FrameFile)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	if err := w.Write(frameHeader); err != nil {
		return errors.Wrapf(err, "gravando %s", FrameFile)
	}

	for _, row := range frame {
		record := []string{
			utils.FormatDate(row.Date),
			row.Product,
			row.Category,
			row.Subcategory,
			formatFloat(row.BasePrice),
			formatFloat(row.SellPrice),
			formatFloat(row.CompetitorPrice),
			formatFloat(row.Amazon),
			formatFloat(row.Decathlon),
			formatFloat(row.Deporvillage),
			formatFloat(row.DiscountPct),
			strconv.Itoa(row.DayOfMonth),
			strconv.Itoa(row.Weekday),
			formatBool(row.IsWeekend),
			formatBool(row.IsHoliday),
			formatBool(row.IsBlackFriday),
			formatBool(row.IsCyberMonday),
		}
		for _, lag := range row.Lags {
			record = append(record, formatFloat(lag))
		}
		record = append(record, formatFloat(row.MA7))

		if err := w.Write(record); err != nil {
			return errors.Wrapf(err, "gravando %s", FrameFile)
		}
	}

	w.Flush()

	return errors.Wrapf(w.Error(), "gravando %s", FrameFile)
}

func (s *store) LoadFrame() ([]domain.FrameRow, error) {
	rows, err := s.readCSV(FrameFile, frameHeader)
	if err != nil {
		return nil, err
	}

	frame := make([]domain.FrameRow, 0, len(rows))
	for i, record := range rows {
		row, err := parseFrameRow(record)
		if err != nil {
			return nil, errors.Wrapf(ErrCorruptedArtifact, "%s linha %d: %v", FrameFile, i+2, err)
		}

		frame = append(frame, row)
	}

	return frame, nil
}

func parseFrameRow(record []string) (domain.FrameRow, error) {
	var row domain.FrameRow
	var err error

	if row.Date, err = time.Parse(utils.DateLayout, record[0]); err != nil {
		return row, err
	}

	row.Product = record[1]
	row.Category = record[2]
	row.Subcategory = record[3]

	floats := []*float64{
		&row.BasePrice,
		&row.SellPrice,
		&row.CompetitorPrice,
		&row.Amazon,
		&row.Decathlon,
		&row.Deporvillage,
		&row.DiscountPct,
	}
	for i, dest := range floats {
		if *dest, err = strconv.ParseFloat(record[4+i], 64); err != nil {
			return row, err
		}
	}

	if row.DayOfMonth, err = strconv.Atoi(record[11]); err != nil {
		return row, err
	}
	if row.Weekday, err = strconv.Atoi(record[12]); err != nil {
		return row, err
	}

	bools := []*bool{&row.IsWeekend, &row.IsHoliday, &row.IsBlackFriday, &row.IsCyberMonday}
	for i, dest := range bools {
		if *dest, err = parseBool(record[13+i]); err != nil {
			return row, err
		}
	}

	for k := range row.Lags {
		if row.Lags[k], err = strconv.ParseFloat(record[17+k], 64); err != nil {
			return row, err
		}
	}

	if row.MA7, err = strconv.ParseFloat(record[24], 64); err != nil {
		return row, err
	}

	return row, nil
}

func (s *store) readCSV(name string, header []string) ([][]string, error) {
	f, err := os.Open(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrArtifactNotFound, "%s", name)
		}
		return nil, errors.Wrapf(err, "lendo %s", name)
	}
	defer f.Close()

	cr := csv.NewReader(f)

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(ErrCorruptedArtifact, "%s: %v", name, err)
	}
	if len(rows) == 0 {
		return nil, errors.Wrapf(ErrCorruptedArtifact, "%s vazio", name)
	}

	if len(rows[0]) != len(header) {
		return nil, errors.Wrapf(ErrCorruptedArtifact, "%s: cabeçalho com %d colunas (esperado %d)", name, len(rows[0]), len(header))
	}

	return rows[1:], nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatBool(b bool) string {
	if b {
		return "1"
	}

	return "0"
}

func parseBool(value string) (bool, error) {
	switch value {
	case "1":
		return true, nil
	case "0":
		return false, nil
	}

	return false, fmt.Errorf("valor booleano inválido %q", value)
}
