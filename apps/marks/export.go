package main

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/trezcool/marksheet/core"
	"github.com/trezcool/marksheet/core/student"
)

var exportFormats = map[string]func(io.Writer, []student.Scorecard) error{
	"json": exportJSON,
	"yaml": exportYAML,
	"csv":  exportCSV,
}

func (cli *commandLine) exportCmd() *cobra.Command {
	var format, output string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every record with its derived fields as JSON, YAML or CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			encode, ok := exportFormats[core.CleanString(format, true /* lower */)]
			if !ok {
				return core.NewValidationError(nil, core.FieldError{Field: "format", Error: "must be one of json, yaml or csv"})
			}
			students, err := cli.svc.List()
			if err != nil {
				return err
			}
			cards := make([]student.Scorecard, 0, len(students))
			for _, s := range students {
				cards = append(cards, s.Scorecard())
			}

			w := cmd.OutOrStdout()
			if output != "" && output != "-" {
				f, cerr := os.Create(output)
				if cerr != nil {
					return core.NewIOError("export", output, cerr)
				}
				defer func() {
					if cerr := f.Close(); err == nil && cerr != nil {
						err = core.NewIOError("export", output, cerr)
					}
				}()
				w = f
			}
			if err := encode(w, cards); err != nil {
				return errors.Wrapf(err, "exporting %s", format)
			}
			cli.log.Info("students exported", "format", format, "count", len(cards), "output", output)
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "json", "output format: json, yaml or csv")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}

func exportJSON(w io.Writer, cards []student.Scorecard) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(cards)
}

func exportYAML(w io.Writer, cards []student.Scorecard) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cards); err != nil {
		return err
	}
	return enc.Close()
}

func exportCSV(w io.Writer, cards []student.Scorecard) error {
	cw := csv.NewWriter(w)
	header := []string{"id", "name", "cw1", "cw2", "cw3", "coursework_total", "exam", "percent", "grade", "valid"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, c := range cards {
		row := []string{c.ID, c.Name}
		for _, mark := range c.Coursework {
			row = append(row, strconv.Itoa(mark))
		}
		row = append(row,
			strconv.Itoa(c.CourseworkTotal),
			strconv.Itoa(c.Exam),
			formatPercent(c.Percent),
			c.Grade,
			strconv.FormatBool(c.Valid),
		)
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
