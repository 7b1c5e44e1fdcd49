package rag

import (
	"fmt"
	"strings"

	"github.com/FabioCubas101/tfm-ai-api/internal/tourism"
)

// Render formats the relevant records and optional summary into the bounded
// context block injected into the model prompt. Pure formatting: no
// filtering or computation decisions happen here.
//
// Layout (fixed): the labeled summary block comes first so the model sees
// the totals before the per-week evidence, then at most maxContextRecords
// record lines, most recent first. Empty input yields NoDataMarker, which
// the system prompt turns into a graceful no-data answer.
func (e *Engine) Render(records []tourism.Record, summary *Summary) string {
	if len(records) == 0 {
		return NoDataMarker
	}

	var b strings.Builder

	if summary != nil {
		writeSummary(&b, summary)
		b.WriteString("\n")
	}

	shown := records
	truncated := false
	if len(shown) > e.maxContextRecords {
		shown = shown[:e.maxContextRecords]
		truncated = true
	}

	fmt.Fprintf(&b, "REGISTROS SEMANALES (%d de %d, más recientes primero):\n", len(shown), len(records))
	metric := MetricNone
	if summary != nil {
		metric = summary.Metric
	}
	for _, r := range shown {
		b.WriteString(recordLine(r, metric))
		b.WriteString("\n")
	}
	if truncated {
		fmt.Fprintf(&b, "(%d registros adicionales omitidos)\n", len(records)-len(shown))
	}

	return strings.TrimRight(b.String(), "\n")
}

func writeSummary(b *strings.Builder, s *Summary) {
	fmt.Fprintf(b, "RESUMEN ESTADÍSTICO (%d registros):\n", s.Count)
	switch s.Metric {
	case MetricVolume:
		fmt.Fprintf(b, "- turistas totales: %d\n", s.TouristSum)
		fmt.Fprintf(b, "- media semanal: %.1f\n", s.TouristAvg)
		fmt.Fprintf(b, "- semana pico: %s, semana del %s (%d turistas)\n",
			s.PeakWeek.Island, s.PeakWeek.Week.Format("2006-01-02"), int(s.PeakWeek.Value))
	case MetricOccupancy:
		fmt.Fprintf(b, "- ocupación media: %.1f%%\n", s.OccupancyAvg*100)
		fmt.Fprintf(b, "- mínima: %s, semana del %s (%.1f%%)\n",
			s.OccupancyMin.Island, s.OccupancyMin.Week.Format("2006-01-02"), s.OccupancyMin.Value*100)
		fmt.Fprintf(b, "- máxima: %s, semana del %s (%.1f%%)\n",
			s.OccupancyMax.Island, s.OccupancyMax.Week.Format("2006-01-02"), s.OccupancyMax.Value*100)
	case MetricRevenue:
		fmt.Fprintf(b, "- ingresos totales: %.2f EUR\n", s.RevenueSum)
		fmt.Fprintf(b, "- gastos totales: %.2f EUR\n", s.ExpenseSum)
		fmt.Fprintf(b, "- resultado neto: %.2f EUR\n", s.Net)
	case MetricDailyRate:
		fmt.Fprintf(b, "- tarifa media diaria: %.2f EUR\n", s.DailyRateAvg)
	case MetricDuration:
		fmt.Fprintf(b, "- estancia media: %.1f noches\n", s.StayAvg)
	}
}

// recordLine renders one record with the fields relevant to the detected
// metric category; MetricNone gets the broad default set.
func recordLine(r tourism.Record, metric Metric) string {
	prefix := fmt.Sprintf("- %s | semana del %s", r.IslandName, r.Week())
	switch metric {
	case MetricVolume:
		return fmt.Sprintf("%s | turistas: %d (internacionales: %d, nacionales: %d)",
			prefix, r.TotalTourists, r.InternationalPassengers, r.DomesticPassengers)
	case MetricOccupancy:
		return fmt.Sprintf("%s | ocupación: %.1f%% | tarifa media diaria: %.2f EUR",
			prefix, r.OccupancyRate*100, r.AverageDailyRate)
	case MetricRevenue:
		return fmt.Sprintf("%s | ingresos: %.2f EUR | gastos: %.2f EUR",
			prefix, r.Revenue, r.Expenses)
	case MetricDailyRate:
		return fmt.Sprintf("%s | tarifa media diaria: %.2f EUR | ocupación: %.1f%%",
			prefix, r.AverageDailyRate, r.OccupancyRate*100)
	case MetricDuration:
		return fmt.Sprintf("%s | estancia media: %.1f noches | turistas: %d",
			prefix, r.AverageStayDuration, r.TotalTourists)
	default:
		line := fmt.Sprintf("%s | turistas: %d | ocupación: %.1f%% | ingresos: %.2f EUR",
			prefix, r.TotalTourists, r.OccupancyRate*100, r.Revenue)
		if r.TopOriginCountry != "" {
			line += " | origen principal: " + r.TopOriginCountry
		}
		if r.Events != "" {
			line += fmt.Sprintf(" | evento: %s (%d asistentes)", r.Events, r.EventAttendance)
		}
		return line
	}
}
