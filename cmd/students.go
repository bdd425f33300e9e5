package cmd

import (
	"fmt"
	"io"

	"github.com/PolarWolf314/campus/internal/records"
	"github.com/PolarWolf314/campus/internal/report"
	"github.com/PolarWolf314/campus/internal/ui"
	"github.com/spf13/cobra"
)

// StudentsCmd groups the professor-only student record commands.
var StudentsCmd = &cobra.Command{
	Use:   "students",
	Short: "Manage student records (professors only)",
	Long: `Adds, removes, grades, lists and searches student records, and exports
the CSV report.

Every subcommand logs in first. Pass --username and either set
$CAMPUS_PASSWORD or answer the password prompt.`,
}

var (
	studentID     int
	studentName   string
	studentGrades string
	reportOutput  string
)

func init() {
	addAuthFlags(StudentsCmd)

	studentsAddCmd.Flags().IntVar(&studentID, "id", -1, "student ID")
	studentsAddCmd.Flags().StringVar(&studentName, "name", "", "student name")
	studentsAddCmd.Flags().StringVar(&studentGrades, "grades", "", "grades separated by commas")

	studentsRemoveCmd.Flags().IntVar(&studentID, "id", -1, "student ID")

	studentsGradesCmd.Flags().IntVar(&studentID, "id", -1, "student ID")
	studentsGradesCmd.Flags().StringVar(&studentGrades, "grades", "", "new grades separated by commas (empty clears them)")

	studentsSearchCmd.Flags().IntVar(&studentID, "id", -1, "find the student with this ID")
	studentsSearchCmd.Flags().StringVar(&studentName, "name", "", "find students whose name contains this text")

	studentsReportCmd.Flags().StringVarP(&reportOutput, "output", "o", "", "report file (default from config)")

	StudentsCmd.AddCommand(studentsAddCmd)
	StudentsCmd.AddCommand(studentsRemoveCmd)
	StudentsCmd.AddCommand(studentsGradesCmd)
	StudentsCmd.AddCommand(studentsListCmd)
	StudentsCmd.AddCommand(studentsSearchCmd)
	StudentsCmd.AddCommand(studentsReportCmd)
}

// resetStudentsState resets the students commands' global state for testing.
func resetStudentsState() {
	studentID = -1
	studentName = ""
	studentGrades = ""
	reportOutput = ""
}

// printStudents writes one aligned row per student.
func printStudents(w io.Writer, students []records.Student) {
	if len(students) == 0 {
		fmt.Fprintln(w, "No students found.")
		return
	}
	fmt.Fprintf(w, "%-8s  %-24s  %s\n", "ID", "Name", "Grades")
	for _, s := range students {
		fmt.Fprintf(w, "%-8d  %-24s  %s\n", s.ID, s.Name, report.FormatGrades(s.Grades))
	}
}

// printStudent writes the labelled fields of one record.
func printStudent(w io.Writer, s records.Student) {
	fmt.Fprintf(w, "%s %d\n", ui.Heading.Sprint("ID:"), s.ID)
	fmt.Fprintf(w, "%s %s\n", ui.Heading.Sprint("Name:"), s.Name)
	fmt.Fprintf(w, "%s %s\n", ui.Heading.Sprint("Grades:"), report.FormatGrades(s.Grades))
}
