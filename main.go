package main

import (
	"fmt"
	"os"

	"fjacquet/expense-csv/cmd/batch"
	"fjacquet/expense-csv/cmd/budget"
	"fjacquet/expense-csv/cmd/categorize"
	"fjacquet/expense-csv/cmd/process"
	"fjacquet/expense-csv/cmd/report"
	"fjacquet/expense-csv/cmd/root"
	"fjacquet/expense-csv/cmd/summary"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(process.Cmd)
	root.Cmd.AddCommand(summary.Cmd)
	root.Cmd.AddCommand(budget.Cmd)
	root.Cmd.AddCommand(report.Cmd)
	root.Cmd.AddCommand(categorize.Cmd)
	root.Cmd.AddCommand(batch.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
