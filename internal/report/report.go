// Package report renders student records for people: the CSV grade report
// and the per-student transcript. Neither output is encrypted.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/PolarWolf314/campus/internal/records"
)

// Average returns the arithmetic mean of grades, or 0 for none.
func Average(grades []float64) float64 {
	if len(grades) == 0 {
		return 0
	}
	var sum float64
	for _, g := range grades {
		sum += g
	}
	return sum / float64(len(grades))
}

// FormatGrades joins grades with ", " for display.
func FormatGrades(grades []float64) string {
	parts := make([]string, len(grades))
	for i, g := range grades {
		parts[i] = records.FormatGrade(g)
	}
	return strings.Join(parts, ", ")
}

// WriteCSV writes an ID,Name,Average table for students in order.
func WriteCSV(w io.Writer, students []records.Student) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"ID", "Name", "Average"}); err != nil {
		return err
	}
	for _, s := range students {
		row := []string{
			strconv.Itoa(s.ID),
			s.Name,
			strconv.FormatFloat(Average(s.Grades), 'g', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteTranscript writes the ID, Name and Grades lines for one student.
func WriteTranscript(w io.Writer, s records.Student) error {
	_, err := fmt.Fprintf(w, "ID: %d\nName: %s\nGrades: %s\n", s.ID, s.Name, FormatGrades(s.Grades))
	return err
}

// WriteFile creates path and fills it with render.
func WriteFile(path string, render func(io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	// #nosec G302 -- reports are meant to be opened by other programs
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	if err := render(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
