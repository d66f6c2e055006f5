package importer

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/xuri/excelize/v2"

	fatigue "Woehler/internal/calc/fatigue"
)

type Handler struct{}

type ImportResult struct {
	Count   int              `json:"count"`
	Skipped int              `json:"skipped"`
	Results []fatigue.Result `json:"results"`
}

// Upload reads an XLSX sheet of fatigue cases, one case per row, first row is
// the header. Rows that fail to parse or fail analysis are skipped and
// counted; the import contract is lenient, unlike the strict batch endpoint.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	out := ImportResult{Results: []fatigue.Result{}}
	for i := 1; i < len(rows); i++ {
		input, err := parseRow(rows[i])
		if err != nil {
			out.Skipped++
			continue
		}
		res, err := fatigue.Calculate(input)
		if err != nil {
			out.Skipped++
			continue
		}
		out.Results = append(out.Results, res)
	}
	out.Count = len(out.Results)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

func parseRow(row []string) (fatigue.Input, error) {
	// expected: material, stress_amplitude, mean_stress, cycles, safety_factor(optional)
	if len(row) < 4 {
		return fatigue.Input{}, fmt.Errorf("bad row")
	}
	amplitude, err := toFloat(row[1])
	if err != nil {
		return fatigue.Input{}, err
	}
	mean, err := toFloat(row[2])
	if err != nil {
		return fatigue.Input{}, err
	}
	cyclesF, err := toFloat(row[3])
	if err != nil {
		return fatigue.Input{}, err
	}
	safety := 0.0
	if len(row) > 4 && row[4] != "" {
		safety, _ = toFloat(row[4])
	}
	return fatigue.Input{
		Material:           row[0],
		StressAmplitudeMPa: amplitude,
		MeanStressMPa:      mean,
		Cycles:             int(cyclesF),
		SafetyFactor:       safety,
	}, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}
