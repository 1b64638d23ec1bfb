package models

// Categories
const (
	CategoryGroceries     = "groceries"
	CategoryRent          = "rent"
	CategoryUtilities     = "utilities"
	CategoryEntertainment = "entertainment"
	CategoryOther         = "other"
)

// Reserved column names in the expense table. Every other input column is
// carried through the pipeline untouched.
const (
	ColumnDescription = "Description"
	ColumnAmount      = "Amount"
	ColumnDate        = "Date"
	ColumnCategory    = "Category"
	ColumnMonth       = "Month"
)

// File permissions
const (
	PermissionConfigFile = 0600
	PermissionDirectory  = 0750
	PermissionReportFile = 0644
)

// IsReservedColumn reports whether name is one of the columns the pipeline
// interprets or rewrites.
func IsReservedColumn(name string) bool {
	switch name {
	case ColumnDescription, ColumnAmount, ColumnDate, ColumnCategory, ColumnMonth:
		return true
	}
	return false
}
