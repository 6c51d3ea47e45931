package main

import (
	"encoding/csv"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"time"
)

const (
	outputDir    = "data"
	salesFile    = "ventas_diarias.csv"
	planFile     = "plan_noviembre.csv"
	historyStart = "2025-08-01"
	historyEnd   = "2025-10-31"
	seed         = 42
)

type product struct {
	Name        string
	Category    string
	Subcategory string
	BasePrice   float64
	BaseDemand  float64
}

var catalog = []product{
	{"Zapatillas Running Pro", "Calzado", "Running", 89.95, 24},
	{"Zapatillas Trail X", "Calzado", "Trail", 109.90, 14},
	{"Camiseta Tecnica Dry", "Textil", "Camisetas", 19.95, 52},
	{"Sudadera Capucha Gym", "Textil", "Sudaderas", 39.95, 30},
	{"Mallas Termicas Run", "Textil", "Mallas", 29.95, 26},
	{"Balon Futbol Liga", "Equipamiento", "Futbol", 24.95, 35},
	{"Mancuernas 10kg Par", "Equipamiento", "Fitness", 49.95, 12},
	{"Bicicleta Estatica Home", "Equipamiento", "Fitness", 299.00, 4},
}

var header = []string{
	"fecha", "nombre", "categoria", "subcategoria", "unidades_vendidas",
	"precio_base", "precio_venta", "precio_competencia",
	"amazon", "decathlon", "deporvillage", "descuento_porcentaje",
}

func setupLogger() {
	// Configura o logger para incluir data, hora e arquivo
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("Iniciando script de geração de dados sintéticos...")
}

// demand combina a demanda base do produto com os efeitos de calendário
// e de preço usados na geração do histórico.
func demand(rng *rand.Rand, p product, date time.Time, sellPrice, competitorPrice float64) float64 {
	units := p.BaseDemand

	switch date.Weekday() {
	case time.Saturday:
		units *= 1.35
	case time.Sunday:
		units *= 1.20
	case time.Friday:
		units *= 1.10
	}

	// Elasticidade simples: vender abaixo da concorrência puxa a demanda
	if competitorPrice > 0 {
		ratio := sellPrice / competitorPrice
		units *= math.Pow(ratio, -1.8)
	}

	// Ruído multiplicativo
	units *= 1 + rng.NormFloat64()*0.15

	if units < 0 {
		return 0
	}

	return math.Round(units)
}

func competitorPrices(rng *rand.Rand, base float64) (amazon, decathlon, deporvillage float64) {
	amazon = round2(base * (0.92 + rng.Float64()*0.16))
	decathlon = round2(base * (0.90 + rng.Float64()*0.18))
	deporvillage = round2(base * (0.94 + rng.Float64()*0.14))
	return
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

func formatFloat(f float64) string {
	return fmt.Sprintf("%.2f", f)
}

func writeSales(rng *rand.Rand, path string, start, end time.Time) int {
	log.Printf("Gerando histórico de vendas de %s a %s...", start.Format("2006-01-02"), end.Format("2006-01-02"))
	startTime := time.Now()

	f, err := os.Create(path)
	if err != nil {
		log.Fatalf("ERRO ao criar %s: %v", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(header); err != nil {
		log.Fatalf("ERRO ao gravar cabeçalho de %s: %v", path, err)
	}

	rows := 0
	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		for _, p := range catalog {
			amazon, decathlon, deporvillage := competitorPrices(rng, p.BasePrice)
			competitor := round2((amazon + decathlon + deporvillage) / 3)

			// Descontos pontuais ao longo do histórico
			discount := 0.0
			if rng.Float64() < 0.15 {
				discount = float64(5 * (1 + rng.Intn(4)))
			}
			sell := round2(p.BasePrice * (1 - discount/100))

			units := demand(rng, p, date, sell, competitor)

			record := []string{
				date.Format("2006-01-02"),
				p.Name,
				p.Category,
				p.Subcategory,
				formatFloat(units),
				formatFloat(p.BasePrice),
				formatFloat(sell),
				formatFloat(competitor),
				formatFloat(amazon),
				formatFloat(decathlon),
				formatFloat(deporvillage),
				formatFloat(discount),
			}
			if err := w.Write(record); err != nil {
				log.Fatalf("ERRO ao gravar linha de %s: %v", path, err)
			}
			rows++
		}
	}

	log.Printf("Histórico gerado em %v: %d linhas em %s", time.Since(startTime), rows, path)
	return rows
}

func writePlan(rng *rand.Rand, path string, year int, month time.Month) int {
	log.Printf("Gerando plano comercial de %04d-%02d...", year, month)
	startTime := time.Now()

	f, err := os.Create(path)
	if err != nil {
		log.Fatalf("ERRO ao criar %s: %v", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	// O plano usa o mesmo desenho do histórico, sem a coluna de vendas
	planHeader := make([]string, 0, len(header)-1)
	for _, col := range header {
		if col == "unidades_vendidas" {
			continue
		}
		planHeader = append(planHeader, col)
	}
	if err := w.Write(planHeader); err != nil {
		log.Fatalf("ERRO ao gravar cabeçalho de %s: %v", path, err)
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	rows := 0
	for date := first; !date.After(last); date = date.AddDate(0, 0, 1) {
		for _, p := range catalog {
			amazon, decathlon, deporvillage := competitorPrices(rng, p.BasePrice)
			competitor := round2((amazon + decathlon + deporvillage) / 3)

			// O plano parte do preço de tarifa; os descontos entram depois
			// pelo simulador
			record := []string{
				date.Format("2006-01-02"),
				p.Name,
				p.Category,
				p.Subcategory,
				formatFloat(p.BasePrice),
				formatFloat(p.BasePrice),
				formatFloat(competitor),
				formatFloat(amazon),
				formatFloat(decathlon),
				formatFloat(deporvillage),
				"0.00",
			}
			if err := w.Write(record); err != nil {
				log.Fatalf("ERRO ao gravar linha de %s: %v", path, err)
			}
			rows++
		}
	}

	log.Printf("Plano gerado em %v: %d linhas em %s", time.Since(startTime), rows, path)
	return rows
}

func main() {
	setupLogger()

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		log.Fatalf("ERRO ao criar diretório %s: %v", outputDir, err)
	}

	rng := rand.New(rand.NewSource(seed))

	start, err := time.Parse("2006-01-02", historyStart)
	if err != nil {
		log.Fatalf("ERRO ao interpretar data inicial: %v", err)
	}
	end, err := time.Parse("2006-01-02", historyEnd)
	if err != nil {
		log.Fatalf("ERRO ao interpretar data final: %v", err)
	}

	startTime := time.Now()

	salesRows := writeSales(rng, filepath.Join(outputDir, salesFile), start, end)
	planRows := writePlan(rng, filepath.Join(outputDir, planFile), 2025, time.November)

	log.Printf("Geração concluída em %v! Histórico: %d linhas, Plano: %d linhas",
		time.Since(startTime), salesRows, planRows)
}
