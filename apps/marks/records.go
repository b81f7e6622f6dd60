package main

import (
	"github.com/spf13/cobra"

	"github.com/trezcool/marksheet/core/student"
)

func newStudentFromArgs(args []string) student.NewStudent {
	return student.NewStudent{ID: args[0], Name: args[1], CW1: args[2], CW2: args[3], CW3: args[4], Exam: args[5]}
}

func (cli *commandLine) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show all students with their percentage and grade",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			students, err := cli.svc.List()
			if err != nil {
				return err
			}
			renderList(cmd.OutOrStdout(), students)
			return nil
		},
	}
}

func (cli *commandLine) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show the student with the given ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := cli.svc.FindByID(args[0])
			if err != nil {
				return err
			}
			renderStudent(cmd.OutOrStdout(), "", s)
			return nil
		},
	}
}

func (cli *commandLine) addCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "add ID NAME CW1 CW2 CW3 EXAM",
		Short:   "Add a student record",
		Example: `  marks add 4521 "Ada Lovelace" 18 19 20 95`,
		Args:    cobra.ExactArgs(6),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := cli.svc.Add(newStudentFromArgs(args))
			if err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "Added student %s (%s).", s.ID, s.Name)
			return nil
		},
	}
}

func (cli *commandLine) updateCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "update TARGET_ID ID NAME CW1 CW2 CW3 EXAM",
		Short:   "Replace the record of student TARGET_ID",
		Example: `  marks update 1345 1345 "John Curry" 10 15 7 52`,
		Args:    cobra.ExactArgs(7),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := cli.svc.Update(args[0], newStudentFromArgs(args[1:]))
			if err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "Updated student %s (%s).", s.ID, s.Name)
			return nil
		},
	}
}

func (cli *commandLine) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete ID",
		Aliases: []string{"rm"},
		Short:   "Delete the student with the given ID",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cli.svc.Delete(args[0]); err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "Deleted student %s.", args[0])
			return nil
		},
	}
}

func (cli *commandLine) resetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Overwrite the marks file with the default dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			students, err := cli.svc.Reset()
			if err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "Reset %s with %d students.", cli.dataFile, len(students))
			return nil
		},
	}
}
