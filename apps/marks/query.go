package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/trezcool/marksheet/core/student"
	"github.com/trezcool/marksheet/storage/flatfile"
)

func (cli *commandLine) sortCmd() *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:       "sort asc|desc",
		Short:     "Reorder the marks file by student name",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(student.Ascending), string(student.Descending)},
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := student.ParseDirection(args[0])
			if err != nil {
				return err
			}
			if dryRun {
				return cli.previewSort(cmd, dir)
			}
			students, err := cli.svc.SortByName(dir)
			if err != nil {
				return err
			}
			renderList(cmd.OutOrStdout(), students)
			return nil
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the change to the marks file without saving it")
	return cmd
}

func (cli *commandLine) previewSort(cmd *cobra.Command, dir student.Direction) error {
	before, err := cli.svc.List()
	if err != nil {
		return err
	}
	after := make([]student.Student, len(before))
	copy(after, before)
	student.SortByName(after, dir)

	diff, err := flatfile.Diff(filepath.Base(cli.dataFile), before, after)
	if err != nil {
		return err
	}
	if diff == "" {
		printSuccess(cmd.OutOrStdout(), "Already sorted.")
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), diff)
	return nil
}

func (cli *commandLine) highestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "highest",
		Short: "Show the highest scoring student",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := cli.svc.Highest()
			if err != nil {
				return err
			}
			renderStudent(cmd.OutOrStdout(), "Highest Scoring Student: "+s.Name, s)
			return nil
		},
	}
}

func (cli *commandLine) lowestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lowest",
		Short: "Show the lowest scoring student",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := cli.svc.Lowest()
			if err != nil {
				return err
			}
			renderStudent(cmd.OutOrStdout(), "Lowest Scoring Student: "+s.Name, s)
			return nil
		},
	}
}

func (cli *commandLine) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show the class average, best and worst students, and the grade distribution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sum, err := cli.svc.Summarize()
			if err != nil {
				return err
			}
			renderSummary(cmd.OutOrStdout(), sum)
			return nil
		},
	}
}

func (cli *commandLine) searchCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "search TEXT",
		Short: "Find students by ID or approximate name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			matches, err := cli.svc.Search(args[0], limit)
			if err != nil {
				return err
			}
			renderMatches(cmd.OutOrStdout(), matches)
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 5, "maximum number of matches (0 for all)")
	return cmd
}
