// Package expense exposes the expense processing pipeline for use as a
// library: clean and categorize an expense CSV file, summarize spending,
// or categorize a single description.
package expense

import (
	"path/filepath"

	"fjacquet/expense-csv/internal/advisor"
	"fjacquet/expense-csv/internal/batch"
	"fjacquet/expense-csv/internal/categorizer"
	"fjacquet/expense-csv/internal/export"
	"fjacquet/expense-csv/internal/ingest"
	"fjacquet/expense-csv/internal/logging"
	"fjacquet/expense-csv/internal/models"
	"fjacquet/expense-csv/internal/store"
	"fjacquet/expense-csv/internal/summary"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Stats reports what happened to the input rows during processing.
type Stats struct {
	Rows             int
	Kept             int
	Dropped          int
	DatesSynthesized bool
}

// Total is one category's or month's spending total.
type Total struct {
	Name   string
	Amount decimal.Decimal
}

// BudgetLine compares one category's spending against its budget.
type BudgetLine struct {
	Category  string
	Budget    decimal.Decimal
	Actual    decimal.Decimal
	Remaining decimal.Decimal
	Overspent bool
}

// Budgets holds the monthly budget per budgeted category.
type Budgets struct {
	Groceries     decimal.Decimal
	Rent          decimal.Decimal
	Utilities     decimal.Decimal
	Entertainment decimal.Decimal
}

// Report is the assembled spending report for one input file.
type Report struct {
	Stats      Stats
	Categories []Total
	Months     []Total
	Budget     []BudgetLine
	Tips       map[string]string
	Total      decimal.Decimal
}

type options struct {
	rulesFile string
	delimiter rune
	budgets   models.Budgets
	logger    logging.Logger
}

// Option adjusts how the pipeline is built.
type Option func(*options)

// WithRulesFile uses the category rules from path instead of searching the
// default locations.
func WithRulesFile(path string) Option {
	return func(o *options) { o.rulesFile = path }
}

// WithDelimiter sets the CSV field delimiter, comma by default.
func WithDelimiter(d rune) Option {
	return func(o *options) { o.delimiter = d }
}

// WithBudgets replaces the default category budgets.
func WithBudgets(b Budgets) Option {
	return func(o *options) {
		o.budgets = models.Budgets{
			Groceries:     b.Groceries,
			Rent:          b.Rent,
			Utilities:     b.Utilities,
			Entertainment: b.Entertainment,
		}
	}
}

// WithLogger routes pipeline logging to an existing logrus logger.
func WithLogger(l *logrus.Logger) Option {
	return func(o *options) { o.logger = logging.FromLogrus(l) }
}

type pipeline struct {
	opts      options
	reader    *ingest.Reader
	validator *ingest.Validator
	writer    *export.Writer
	matcher   *categorizer.Matcher
}

func newPipeline(opts ...Option) (*pipeline, error) {
	o := options{
		delimiter: ',',
		budgets:   models.DefaultBudgets(),
		logger:    logging.NewDefault(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	rules, err := store.NewRuleStore(o.rulesFile, o.logger).Load()
	if err != nil {
		return nil, err
	}
	matcher := categorizer.NewMatcher(rules, o.logger)

	return &pipeline{
		opts:      o,
		reader:    ingest.NewReader(o.delimiter, o.logger),
		validator: ingest.NewValidator(matcher, o.logger),
		writer:    export.NewWriter(o.delimiter, o.logger),
		matcher:   matcher,
	}, nil
}

func (p *pipeline) process(inputFile string) (*ingest.Result, error) {
	tbl, err := p.reader.ReadFile(inputFile)
	if err != nil {
		return nil, err
	}
	return p.validator.ValidateAndClean(tbl)
}

func statsOf(res *ingest.Result) Stats {
	return Stats{
		Rows:             res.Stats.Rows,
		Kept:             res.Stats.Kept,
		Dropped:          res.Stats.Dropped(),
		DatesSynthesized: res.DatesSynthesized,
	}
}

// ProcessFile cleans and categorizes inputFile and writes the result to
// outputFile. An empty outputFile writes <input>_categorized.csv next to
// the input.
func ProcessFile(inputFile, outputFile string, opts ...Option) (Stats, error) {
	p, err := newPipeline(opts...)
	if err != nil {
		return Stats{}, err
	}
	res, err := p.process(inputFile)
	if err != nil {
		return Stats{}, err
	}
	if outputFile == "" {
		outputFile = filepath.Join(filepath.Dir(inputFile), batch.OutputFilename(inputFile))
	}
	if err := p.writer.WriteTable(res, outputFile); err != nil {
		return Stats{}, err
	}
	return statsOf(res), nil
}

// BuildReport cleans inputFile and assembles the full spending report.
func BuildReport(inputFile string, opts ...Option) (*Report, error) {
	p, err := newPipeline(opts...)
	if err != nil {
		return nil, err
	}
	res, err := p.process(inputFile)
	if err != nil {
		return nil, err
	}

	eng := summary.NewEngine(res.Transactions)

	categories := make([]Total, 0)
	tips := make(map[string]string)
	for _, ct := range eng.CategoryTotalsSorted() {
		categories = append(categories, Total{Name: ct.Category, Amount: ct.Total})
		tips[ct.Category] = advisor.Tip(ct.Category)
	}

	months := make([]Total, 0)
	for _, mt := range eng.MonthlyTotalsSorted() {
		months = append(months, Total{Name: mt.Month, Amount: mt.Total})
	}

	budget := make([]BudgetLine, 0)
	for _, line := range eng.BudgetComparison(p.opts.budgets) {
		budget = append(budget, BudgetLine{
			Category:  line.Category,
			Budget:    line.Budget,
			Actual:    line.Actual,
			Remaining: line.Remaining(),
			Overspent: line.Overspent(),
		})
	}

	return &Report{
		Stats:      statsOf(res),
		Categories: categories,
		Months:     months,
		Budget:     budget,
		Tips:       tips,
		Total:      eng.Total(),
	}, nil
}

// Categorize assigns a category to a single expense description.
func Categorize(description string, opts ...Option) (string, error) {
	p, err := newPipeline(opts...)
	if err != nil {
		return "", err
	}
	return p.matcher.Categorize(description), nil
}

// SavingTip returns the saving tip for a category. Unknown categories get
// the general tip.
func SavingTip(category string) string {
	return advisor.Tip(category)
}
