package dto

// ListParams is the raw product listing input as received at the boundary.
// Every recognised option is listed here; anything else is ignored.
type ListParams struct {
	Search     string // free text; blank means no filter
	Category   string // single category name
	Categories string // comma separated names; supersedes Category
	Limit      string // positive integer, else the default
	Page       string // positive integer, else 1
}
