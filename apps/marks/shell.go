package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/trezcool/marksheet/core/student"
)

var isTerminalFunc = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) } // mockable

type shell struct {
	cli         *commandLine
	scanner     *bufio.Scanner
	out         io.Writer
	interactive bool
}

func (cli *commandLine) shellCmd() *cobra.Command {
	var noReset bool
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Interactive menu over the marks file",
		Long: `shell opens a numbered menu to view, add, update, delete, sort and rank students.
Unless --no-reset is given or seedOnStart is disabled, the marks file is reset to the
default dataset first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cli.conf.SeedOnStart && !noReset {
				if _, err := cli.svc.Reset(); err != nil {
					return err
				}
			}
			sh := &shell{
				cli:         cli,
				scanner:     bufio.NewScanner(cmd.InOrStdin()),
				out:         cmd.OutOrStdout(),
				interactive: isTerminalFunc(),
			}
			sh.loop()
			return nil
		},
	}
	cmd.Flags().BoolVar(&noReset, "no-reset", false, "keep the current marks file instead of resetting it")
	return cmd
}

func (sh *shell) displayMenu() {
	if !sh.interactive {
		return
	}
	headerColor.Fprintln(sh.out, "\n=== Student Manager ===")
	fmt.Fprintln(sh.out, "1. View All Students")
	fmt.Fprintln(sh.out, "2. Find Student")
	fmt.Fprintln(sh.out, "3. Add Student Record")
	fmt.Fprintln(sh.out, "4. Update Student")
	fmt.Fprintln(sh.out, "5. Delete Student")
	fmt.Fprintln(sh.out, "6. Sort Name (A-Z)")
	fmt.Fprintln(sh.out, "7. Sort Name (Z-A)")
	fmt.Fprintln(sh.out, "8. Highest Scoring Student")
	fmt.Fprintln(sh.out, "9. Lowest Scoring Student")
	fmt.Fprintln(sh.out, "10. Quit")
	fmt.Fprint(sh.out, "\nEnter your choice (1-10): ")
}

// prompt reads one line; ok is false once the input is exhausted.
func (sh *shell) prompt(label string) (string, bool) {
	if sh.interactive && label != "" {
		fmt.Fprintf(sh.out, "%s: ", label)
	}
	if !sh.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(sh.scanner.Text()), true
}

func (sh *shell) promptStudent() (student.NewStudent, bool) {
	var (
		ns     student.NewStudent
		fields = []struct {
			label string
			dst   *string
		}{
			{"ID", &ns.ID}, {"Name", &ns.Name}, {"CW1", &ns.CW1}, {"CW2", &ns.CW2}, {"CW3", &ns.CW3}, {"Exam", &ns.Exam},
		}
	)
	for _, fld := range fields {
		val, ok := sh.prompt(fld.label)
		if !ok {
			return ns, false
		}
		*fld.dst = val
	}
	return ns, true
}

func (sh *shell) loop() {
	svc := sh.cli.svc
	for {
		sh.displayMenu()
		choice, ok := sh.prompt("")
		if !ok {
			return
		}

		var err error
		switch choice {
		case "1":
			var students []student.Student
			if students, err = svc.List(); err == nil {
				renderList(sh.out, students)
			}
		case "2":
			id, ok := sh.prompt("Student ID")
			if !ok {
				return
			}
			var s student.Student
			if s, err = svc.FindByID(id); err == nil {
				renderStudent(sh.out, "", s)
			}
		case "3":
			ns, ok := sh.promptStudent()
			if !ok {
				return
			}
			var s student.Student
			if s, err = svc.Add(ns); err == nil {
				printSuccess(sh.out, "Added student %s (%s).", s.ID, s.Name)
			}
		case "4":
			target, ok := sh.prompt("ID of the student to update")
			if !ok {
				return
			}
			ns, ok := sh.promptStudent()
			if !ok {
				return
			}
			var s student.Student
			if s, err = svc.Update(target, ns); err == nil {
				printSuccess(sh.out, "Updated student %s (%s).", s.ID, s.Name)
			}
		case "5":
			id, ok := sh.prompt("Student ID")
			if !ok {
				return
			}
			if err = svc.Delete(id); err == nil {
				printSuccess(sh.out, "Deleted student %s.", id)
			}
		case "6", "7":
			dir := student.Ascending
			if choice == "7" {
				dir = student.Descending
			}
			var students []student.Student
			if students, err = svc.SortByName(dir); err == nil {
				renderList(sh.out, students)
			}
		case "8":
			var s student.Student
			if s, err = svc.Highest(); err == nil {
				renderStudent(sh.out, "Highest Scoring Student: "+s.Name, s)
			}
		case "9":
			var s student.Student
			if s, err = svc.Lowest(); err == nil {
				renderStudent(sh.out, "Lowest Scoring Student: "+s.Name, s)
			}
		case "10", "q", "quit":
			printSuccess(sh.out, "Goodbye!")
			return
		default:
			errorColor.Fprintln(sh.out, "Invalid choice. Please try again.")
		}
		if err != nil {
			printError(sh.out, err)
		}
	}
}
