package artifact

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"github.com/vfg2006/sales-forecast-api/internal/domain"
)

// Cabeçalho da previsão base gravada em CSV, uma linha por produto e
// dia do mês alvo.
var forecastHeader = []string{
	"nombre",
	"fecha",
	"dia_mes",
	"dia_semana",
	"precio_venta",
	"precio_competencia",
	"descuento_porcentaje",
	"ratio_precio",
	"unidades_previstas",
	"ingresos",
	"es_black_friday",
}

func (s *store) SaveForecast(forecasts []domain.ProductForecast) error {
	f, err := os.Create(s.path(ForecastFile))
	if err != nil {
		return errors.Wrapf(err, "gravando %s", ForecastFile)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	if err := w.Write(forecastHeader); err != nil {
		return errors.Wrapf(err, "gravando %s", ForecastFile)
	}

	for _, forecast := range forecasts {
		for _, day := range forecast.Days {
			record := []string{
				forecast.Product,
				day.Date,
				strconv.Itoa(day.DayOfMonth),
				day.Weekday,
				formatFloat(day.SellPrice),
				formatFloat(day.CompetitorPrice),
				formatFloat(day.DiscountPct),
				formatFloat(day.PriceRatio),
				formatFloat(day.PredictedUnits),
				formatFloat(day.Revenue),
				formatBool(day.IsBlackFriday),
			}

			if err := w.Write(record); err != nil {
				return errors.Wrapf(err, "gravando %s", ForecastFile)
			}
		}
	}

	w.Flush()

	return errors.Wrapf(w.Error(), "gravando %s", ForecastFile)
}

func (s *store) LoadForecast() ([]domain.ProductForecast, error) {
	rows, err := s.readCSV(ForecastFile, forecastHeader)
	if err != nil {
		return nil, err
	}

	// Os produtos aparecem em blocos contíguos, na ordem de gravação.
	var forecasts []domain.ProductForecast
	byProduct := map[string]int{}

	for i, record := range rows {
		day, err := parseForecastDay(record)
		if err != nil {
			return nil, errors.Wrapf(ErrCorruptedArtifact, "%s linha %d: %v", ForecastFile, i+2, err)
		}

		product := record[0]
		idx, ok := byProduct[product]
		if !ok {
			idx = len(forecasts)
			byProduct[product] = idx
			forecasts = append(forecasts, domain.ProductForecast{Product: product})
		}

		forecasts[idx].Days = append(forecasts[idx].Days, day)
	}

	for i := range forecasts {
		forecasts[i].Summary = domain.Summarize(forecasts[i].Days)
	}

	return forecasts, nil
}

func parseForecastDay(record []string) (domain.ForecastDay, error) {
	var day domain.ForecastDay
	var err error

	day.Date = record[1]
	if day.DayOfMonth, err = strconv.Atoi(record[2]); err != nil {
		return day, err
	}
	day.Weekday = record[3]

	floats := []*float64{
		&day.SellPrice,
		&day.CompetitorPrice,
		&day.DiscountPct,
		&day.PriceRatio,
		&day.PredictedUnits,
		&day.Revenue,
	}
	for i, dest := range floats {
		if *dest, err = strconv.ParseFloat(record[4+i], 64); err != nil {
			return day, err
		}
	}

	if day.IsBlackFriday, err = parseBool(record[10]); err != nil {
		return day, err
	}

	return day, nil
}
