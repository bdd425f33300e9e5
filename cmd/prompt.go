package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/PolarWolf314/campus/internal/utils"
	"github.com/spf13/cobra"
)

// EnvPassword supplies the password for scripted subcommands.
const EnvPassword = "CAMPUS_PASSWORD"

// prompter reads answers from the command's input. Passwords are read
// without echo when the input is a terminal.
type prompter struct {
	in   *bufio.Reader
	out  io.Writer
	file *os.File
}

func newPrompter(cmd *cobra.Command) *prompter {
	in := cmd.InOrStdin()
	p := &prompter{in: bufio.NewReader(in), out: cmd.OutOrStdout()}
	if f, ok := in.(*os.File); ok {
		p.file = f
	}
	return p
}

// Line prints label and returns the next trimmed input line.
func (p *prompter) Line(label string) (string, error) {
	fmt.Fprint(p.out, label)
	input, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && input != "") {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(input), nil
}

// Password reads a password, hidden when the input is a terminal.
func (p *prompter) Password(label string) (string, error) {
	if p.file != nil && utils.IsTerminal(p.file) {
		return utils.ReadPassword(p.file, p.out, label)
	}
	return p.Line(label)
}

// Int reads a whole number.
func (p *prompter) Int(label string) (int, error) {
	input, err := p.Line(label)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(input)
	if err != nil {
		return 0, fmt.Errorf("%q is not a whole number", input)
	}
	return n, nil
}

// Grades reads a comma or space separated list of grades.
func (p *prompter) Grades(label string) ([]float64, error) {
	input, err := p.Line(label)
	if err != nil {
		return nil, err
	}
	return parseGrades(input)
}

func parseGrades(input string) ([]float64, error) {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	grades := make([]float64, 0, len(fields))
	for _, f := range fields {
		g, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a grade", f)
		}
		grades = append(grades, g)
	}
	return grades, nil
}

// loginPassword returns $CAMPUS_PASSWORD when set, otherwise prompts for it.
func (p *prompter) loginPassword(label string) (string, error) {
	if pw, ok := os.LookupEnv(EnvPassword); ok {
		Logger.Debugf("Using password from %s", EnvPassword)
		return pw, nil
	}
	return p.Password(label)
}
