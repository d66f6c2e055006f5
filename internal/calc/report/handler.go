package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/phpdave11/gofpdf"

	fatigue "Woehler/internal/calc/fatigue"
)

type Input struct {
	Project string        `json:"project"`
	Author  string        `json:"author"`
	Title   string        `json:"title"`
	Notes   string        `json:"notes"`
	Case    fatigue.Input `json:"case"`
}

type Handler struct{}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Title == "" {
		input.Title = "Fatigue Analysis Report"
	}

	res, err := fatigue.Calculate(input.Case)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(fatigue.ErrorResponse{Error: err.Error()})
		return
	}

	verdict := "NOT SAFE"
	if res.IsSafe {
		verdict = "SAFE"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, input.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", input.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", input.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Load Case")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Material: %s", input.Case.Material))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Stress amplitude: %g MPa", input.Case.StressAmplitudeMPa))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Mean stress: %g MPa", input.Case.MeanStressMPa))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Applied cycles: %d", input.Case.Cycles))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Results")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Method: %s", res.AnalysisMethod))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Estimated cycles to failure: %d", res.CyclesToFailure))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Safety margin: %.3f", res.SafetyMargin))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Verdict: %s", verdict))
	pdf.Ln(10)

	if input.Notes != "" {
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, input.Notes, "", "L", false)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"fatigue-report.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}
