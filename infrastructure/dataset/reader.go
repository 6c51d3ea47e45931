package dataset

import (
	"encoding/csv"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/vfg2006/sales-forecast-api/internal/domain"
	"github.com/vfg2006/sales-forecast-api/pkg/utils"
)

// Erros de leitura dos arquivos de entrada
var (
	ErrMissingColumn = errors.New("coluna obrigatória ausente no arquivo")
	ErrMalformedRow  = errors.New("linha malformada no arquivo")
	ErrDuplicateRow  = errors.New("produto com mais de uma linha para a mesma data")
	ErrEmptyDataset  = errors.New("arquivo sem linhas de dados")
)

// Colunas obrigatórias dos arquivos de entrada. O plano comercial usa o
// mesmo desenho do histórico, sem a coluna de vendas realizadas. As
// colunas de concorrentes individuais (amazon, decathlon, deporvillage)
// e a de desconto são opcionais: quando ausentes, valem as mesmas
// derivações aplicadas a valores vazios.
var (
	salesColumns = []string{
		"fecha",
		"nombre",
		"categoria",
		"subcategoria",
		"unidades_vendidas",
		"precio_base",
		"precio_venta",
		"precio_competencia",
	}

	planColumns = []string{
		"fecha",
		"nombre",
		"categoria",
		"subcategoria",
		"precio_base",
		"precio_venta",
		"precio_competencia",
	}
)

// Reader carrega o histórico de vendas e o plano comercial a partir de
// arquivos CSV. Qualquer linha malformada interrompe a carga: os
// artefatos do pipeline nunca são derivados de entradas parciais.
type Reader interface {
	ReadSales(path string) ([]domain.SalesRecord, error)
	ReadPlan(path string) ([]domain.PlanRecord, error)
}

type reader struct{}

func NewReader() Reader {
	return &reader{}
}

// ReadSales carrega o histórico de vendas diárias. Cada par (data,
// produto) aparece no máximo uma vez; duplicatas encerram a carga.
func (rd *reader) ReadSales(path string) ([]domain.SalesRecord, error) {
	rows, index, err := readTable(path, salesColumns)
	if err != nil {
		return nil, err
	}

	seen := map[string]struct{}{}
	records := make([]domain.SalesRecord, 0, len(rows))

	for i, values := range rows {
		r := row{values: values, index: index, line: i + 2}

		date, err := r.date("fecha")
		if err != nil {
			return nil, errors.Wrapf(err, "%s", path)
		}

		product, err := r.requiredText("nombre")
		if err != nil {
			return nil, errors.Wrapf(err, "%s", path)
		}

		if err := checkDuplicate(seen, date, product, r.line); err != nil {
			return nil, errors.Wrapf(err, "%s", path)
		}

		units, err := r.float("unidades_vendidas")
		if err != nil {
			return nil, errors.Wrapf(err, "%s", path)
		}

		prices, err := r.prices()
		if err != nil {
			return nil, errors.Wrapf(err, "%s", path)
		}

		records = append(records, domain.SalesRecord{
			Date:            date,
			Product:         product,
			Category:        r.text("categoria"),
			Subcategory:     r.text("subcategoria"),
			UnitsSold:       units,
			BasePrice:       prices.base,
			SellPrice:       prices.sell,
			CompetitorPrice: prices.competitor,
			Amazon:          prices.amazon,
			Decathlon:       prices.decathlon,
			Deporvillage:    prices.deporvillage,
			DiscountPct:     prices.discountPct,
		})
	}

	return records, nil
}

// ReadPlan carrega o plano comercial do mês alvo, com as mesmas regras
// de derivação de preços e de unicidade do histórico.
func (rd *reader) ReadPlan(path string) ([]domain.PlanRecord, error) {
	rows, index, err := readTable(path, planColumns)
	if err != nil {
		return nil, err
	}

	seen := map[string]struct{}{}
	records := make([]domain.PlanRecord, 0, len(rows))

	for i, values := range rows {
		r := row{values: values, index: index, line: i + 2}

		date, err := r.date("fecha")
		if err != nil {
			return nil, errors.Wrapf(err, "%s", path)
		}

		product, err := r.requiredText("nombre")
		if err != nil {
			return nil, errors.Wrapf(err, "%s", path)
		}

		if err := checkDuplicate(seen, date, product, r.line); err != nil {
			return nil, errors.Wrapf(err, "%s", path)
		}

		prices, err := r.prices()
		if err != nil {
			return nil, errors.Wrapf(err, "%s", path)
		}

		records = append(records, domain.PlanRecord{
			Date:            date,
			Product:         product,
			Category:        r.text("categoria"),
			Subcategory:     r.text("subcategoria"),
			BasePrice:       prices.base,
			SellPrice:       prices.sell,
			CompetitorPrice: prices.competitor,
			Amazon:          prices.amazon,
			Decathlon:       prices.decathlon,
			Deporvillage:    prices.deporvillage,
			DiscountPct:     prices.discountPct,
		})
	}

	return records, nil
}

func checkDuplicate(seen map[string]struct{}, date time.Time, product string, line int) error {
	key := utils.FormatDate(date) + "|" + product
	if _, ok := seen[key]; ok {
		return errors.Wrapf(ErrDuplicateRow, "linha %d: %s em %s", line, product, utils.FormatDate(date))
	}
	seen[key] = struct{}{}

	return nil
}

// priceBlock reúne as colunas de preço de uma linha já com as
// derivações aplicadas: preço de concorrência ausente vira a média das
// colunas de concorrentes presentes e desconto ausente é derivado dos
// preços base e de venda.
type priceBlock struct {
	base         float64
	sell         float64
	competitor   float64
	amazon       float64
	decathlon    float64
	deporvillage float64
	discountPct  float64
}

func (r row) prices() (priceBlock, error) {
	var p priceBlock
	var err error

	if p.base, err = r.float("precio_base"); err != nil {
		return p, err
	}
	if p.sell, err = r.float("precio_venta"); err != nil {
		return p, err
	}

	competitors := []struct {
		col  string
		dest *float64
	}{
		{"amazon", &p.amazon},
		{"decathlon", &p.decathlon},
		{"deporvillage", &p.deporvillage},
	}

	var sum float64
	var count int
	for _, c := range competitors {
		value, ok, err := r.optionalFloat(c.col)
		if err != nil {
			return p, err
		}
		if ok {
			*c.dest = value
			sum += value
			count++
		}
	}

	competitor, ok, err := r.optionalFloat("precio_competencia")
	if err != nil {
		return p, err
	}
	switch {
	case ok:
		p.competitor = competitor
	case count > 0:
		p.competitor = sum / float64(count)
	}

	discount, ok, err := r.optionalFloat("descuento_porcentaje")
	if err != nil {
		return p, err
	}
	switch {
	case ok:
		p.discountPct = discount
	case p.base > 0:
		p.discountPct = (1 - p.sell/p.base) * 100
	}

	return p, nil
}

// readTable abre o CSV, valida o cabeçalho contra as colunas
// obrigatórias e retorna as linhas de dados com o índice das colunas.
func readTable(path string, required []string) ([][]string, map[string]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "abrindo %s", path)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, nil, errors.Wrapf(err, "lendo %s", path)
	}
	if len(rows) == 0 {
		return nil, nil, errors.Wrapf(ErrEmptyDataset, "%s", path)
	}

	index := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}

	var missing []string
	for _, col := range required {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, nil, errors.Wrapf(ErrMissingColumn, "%s: %s", path, strings.Join(missing, ", "))
	}

	if len(rows) == 1 {
		return nil, nil, errors.Wrapf(ErrEmptyDataset, "%s", path)
	}

	return rows[1:], index, nil
}

// row acessa as colunas de uma linha pelo nome, com o número da linha
// original para mensagens de erro.
type row struct {
	values []string
	index  map[string]int
	line   int
}

func (r row) text(col string) string {
	idx, ok := r.index[col]
	if !ok {
		// Coluna opcional ausente do arquivo: trata como valor vazio.
		return ""
	}

	return strings.TrimSpace(r.values[idx])
}

func (r row) date(col string) (time.Time, error) {
	value := r.text(col)

	date, err := time.Parse(utils.DateLayout, value)
	if err != nil {
		return time.Time{}, errors.Wrapf(ErrMalformedRow, "linha %d: data inválida %q na coluna %s", r.line, value, col)
	}

	return date, nil
}

func (r row) float(col string) (float64, error) {
	value := r.text(col)
	if value == "" {
		return 0, errors.Wrapf(ErrMalformedRow, "linha %d: coluna %s vazia", r.line, col)
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrMalformedRow, "linha %d: número inválido %q na coluna %s", r.line, value, col)
	}

	return f, nil
}

// optionalFloat retorna ok=false quando a coluna está vazia; só as
// colunas com derivação documentada aceitam ausência.
func (r row) optionalFloat(col string) (float64, bool, error) {
	value := r.text(col)
	if value == "" {
		return 0, false, nil
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, false, errors.Wrapf(ErrMalformedRow, "linha %d: número inválido %q na coluna %s", r.line, value, col)
	}

	return f, true, nil
}

func (r row) requiredText(col string) (string, error) {
	value := r.text(col)
	if value == "" {
		return "", errors.Wrapf(ErrMalformedRow, "linha %d: coluna %s vazia", r.line, col)
	}

	return value, nil
}
