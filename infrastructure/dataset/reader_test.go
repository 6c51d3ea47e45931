package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

const salesHeader = "fecha,nombre,categoria,subcategoria,unidades_vendidas,precio_base,precio_venta,precio_competencia,amazon,decathlon,deporvillage,descuento_porcentaje\n"

func TestReadSales(t *testing.T) {
	reader := NewReader()

	t.Run("Carrega linhas válidas com todos os campos", func(t *testing.T) {
		path := writeCSV(t, "ventas.csv", salesHeader+
			"2025-10-01,Zapatillas Running,Calzado,Running,12,100,90,95,94,96,,10\n"+
			"2025-10-02,Zapatillas Running,Calzado,Running,8,100,100,95,94,96,,0\n")

		records, err := reader.ReadSales(path)
		require.NoError(t, err)
		require.Len(t, records, 2)

		first := records[0]
		assert.Equal(t, "Zapatillas Running", first.Product)
		assert.Equal(t, "Calzado", first.Category)
		assert.Equal(t, 12.0, first.UnitsSold)
		assert.Equal(t, 95.0, first.CompetitorPrice)
		assert.Equal(t, 10.0, first.DiscountPct)
		assert.Equal(t, 94.0, first.Amazon)
		assert.Equal(t, 0.0, first.Deporvillage)
	})

	t.Run("Deriva preço de concorrência da média dos concorrentes", func(t *testing.T) {
		path := writeCSV(t, "ventas.csv", salesHeader+
			"2025-10-01,Balón Fútbol,Equipamiento,Fútbol,5,30,30,,28,32,,0\n")

		records, err := reader.ReadSales(path)
		require.NoError(t, err)
		require.Len(t, records, 1)

		assert.Equal(t, 30.0, records[0].CompetitorPrice)
	})

	t.Run("Linha sem nenhuma informação de concorrência mantém zero", func(t *testing.T) {
		path := writeCSV(t, "ventas.csv", salesHeader+
			"2025-10-01,Balón Fútbol,Equipamiento,Fútbol,5,30,30,,,,,0\n")

		records, err := reader.ReadSales(path)
		require.NoError(t, err)

		assert.Equal(t, 0.0, records[0].CompetitorPrice)
	})

	t.Run("Deriva desconto dos preços quando a coluna está vazia", func(t *testing.T) {
		path := writeCSV(t, "ventas.csv", salesHeader+
			"2025-10-01,Camiseta Técnica,Ropa,Entrenamiento,7,40,30,38,,,,\n")

		records, err := reader.ReadSales(path)
		require.NoError(t, err)

		assert.InDelta(t, 25.0, records[0].DiscountPct, 1e-9)
	})

	t.Run("Carrega arquivo sem as colunas opcionais de concorrentes e desconto", func(t *testing.T) {
		path := writeCSV(t, "ventas.csv",
			"fecha,nombre,categoria,subcategoria,unidades_vendidas,precio_base,precio_venta,precio_competencia\n"+
				"2025-10-01,Camiseta Técnica,Ropa,Entrenamiento,7,40,30,38\n")

		records, err := reader.ReadSales(path)
		require.NoError(t, err)
		require.Len(t, records, 1)

		// Colunas ausentes valem como vazias: concorrentes a zero, o
		// preço de concorrência vem da coluna própria e o desconto é
		// derivado dos preços.
		first := records[0]
		assert.Equal(t, 38.0, first.CompetitorPrice)
		assert.Equal(t, 0.0, first.Amazon)
		assert.Equal(t, 0.0, first.Decathlon)
		assert.Equal(t, 0.0, first.Deporvillage)
		assert.InDelta(t, 25.0, first.DiscountPct, 1e-9)
	})

	t.Run("Par data e produto duplicado é erro fatal", func(t *testing.T) {
		path := writeCSV(t, "ventas.csv", salesHeader+
			"2025-10-01,Balón Fútbol,Equipamiento,Fútbol,5,30,30,29,,,,0\n"+
			"2025-10-01,Balón Fútbol,Equipamiento,Fútbol,6,30,30,29,,,,0\n")

		_, err := reader.ReadSales(path)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrDuplicateRow))
	})

	t.Run("Data inválida é erro fatal com número da linha", func(t *testing.T) {
		path := writeCSV(t, "ventas.csv", salesHeader+
			"01/10/2025,Balón Fútbol,Equipamiento,Fútbol,5,30,30,29,,,,0\n")

		_, err := reader.ReadSales(path)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMalformedRow))
		assert.Contains(t, err.Error(), "linha 2")
	})

	t.Run("Número inválido é erro fatal", func(t *testing.T) {
		path := writeCSV(t, "ventas.csv", salesHeader+
			"2025-10-01,Balón Fútbol,Equipamiento,Fútbol,cinco,30,30,29,,,,0\n")

		_, err := reader.ReadSales(path)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMalformedRow))
	})

	t.Run("Cabeçalho sem coluna obrigatória é erro fatal", func(t *testing.T) {
		path := writeCSV(t, "ventas.csv",
			"fecha,nombre,categoria\n2025-10-01,Balón Fútbol,Equipamiento\n")

		_, err := reader.ReadSales(path)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMissingColumn))
		assert.Contains(t, err.Error(), "unidades_vendidas")
	})

	t.Run("Arquivo apenas com cabeçalho é erro fatal", func(t *testing.T) {
		path := writeCSV(t, "ventas.csv", salesHeader)

		_, err := reader.ReadSales(path)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrEmptyDataset))
	})

	t.Run("Arquivo inexistente é erro fatal", func(t *testing.T) {
		_, err := reader.ReadSales(filepath.Join(t.TempDir(), "nao_existe.csv"))
		require.Error(t, err)
	})
}

const planHeader = "fecha,nombre,categoria,subcategoria,precio_base,precio_venta,precio_competencia,amazon,decathlon,deporvillage,descuento_porcentaje\n"

func TestReadPlan(t *testing.T) {
	reader := NewReader()

	t.Run("Carrega o plano sem a coluna de vendas", func(t *testing.T) {
		path := writeCSV(t, "plan.csv", planHeader+
			"2025-11-01,Zapatillas Running,Calzado,Running,100,90,95,94,96,,10\n")

		records, err := reader.ReadPlan(path)
		require.NoError(t, err)
		require.Len(t, records, 1)

		assert.Equal(t, "Zapatillas Running", records[0].Product)
		assert.Equal(t, 90.0, records[0].SellPrice)
		assert.Equal(t, 10.0, records[0].DiscountPct)
	})

	t.Run("Carrega o plano sem as colunas opcionais", func(t *testing.T) {
		path := writeCSV(t, "plan.csv",
			"fecha,nombre,categoria,subcategoria,precio_base,precio_venta,precio_competencia\n"+
				"2025-11-01,Zapatillas Running,Calzado,Running,100,80,95\n")

		records, err := reader.ReadPlan(path)
		require.NoError(t, err)
		require.Len(t, records, 1)

		assert.Equal(t, 95.0, records[0].CompetitorPrice)
		assert.InDelta(t, 20.0, records[0].DiscountPct, 1e-9)
	})

	t.Run("Par data e produto duplicado é erro fatal", func(t *testing.T) {
		path := writeCSV(t, "plan.csv", planHeader+
			"2025-11-01,Zapatillas Running,Calzado,Running,100,90,95,,,,10\n"+
			"2025-11-01,Zapatillas Running,Calzado,Running,100,85,95,,,,15\n")

		_, err := reader.ReadPlan(path)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrDuplicateRow))
	})
}
