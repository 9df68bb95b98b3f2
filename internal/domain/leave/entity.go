package leave

import "time"

// Grant is an approved (or pending) leave record covering a date range.
// Only approved grants participate in reconciliation.
type Grant struct {
	ID         string
	EmployeeID string
	From       time.Time
	To         time.Time
	LeaveType  string
	HalfDay    bool
	Approved   bool
}

// DayGrant is a Grant expanded to a single calendar date. TypeKey is the
// normalized leave-type key used for policy lookup.
type DayGrant struct {
	GrantID    string
	EmployeeID string
	Date       time.Time
	HalfDay    bool
	TypeKey    string
}

// Policy decides how a leave type affects expected hours.
type Policy string

const (
	// PolicyDeduct removes the covered portion from expected hours.
	PolicyDeduct Policy = "deduct"
	// PolicyNoAdjust leaves expected hours untouched; the day is only
	// flagged as leave-covered for reporting.
	PolicyNoAdjust Policy = "no_adjust"
)

// PolicyTable maps normalized leave-type keys to a policy. Types missing
// from the table default to PolicyDeduct.
type PolicyTable map[string]Policy

func (t PolicyTable) For(typeKey string) Policy {
	if p, ok := t[typeKey]; ok {
		return p
	}
	return PolicyDeduct
}

// DefaultPolicyTable covers the leave labels the upstream HR system is
// known to emit. Keys must already be normalized (see pkg/normalize).
func DefaultPolicyTable() PolicyTable {
	return PolicyTable{
		"unpaid leave":            PolicyNoAdjust,
		"leave without pay":       PolicyNoAdjust,
		"unpaid permission":       PolicyNoAdjust,
		"vacation":                PolicyDeduct,
		"sick leave":              PolicyDeduct,
		"medical leave":           PolicyDeduct,
		"personal leave":          PolicyDeduct,
		"bereavement":             PolicyDeduct,
		"maternity leave":         PolicyDeduct,
		"paternity leave":         PolicyDeduct,
		"compensatory rest":       PolicyDeduct,
		"authorized absence":      PolicyDeduct,
	}
}

// Aliases canonicalizes equivalent labels from the upstream system to one
// policy key. Applied after normalization, before table lookup.
var Aliases = map[string]string{
	"pto":                "vacation",
	"paid time off":      "vacation",
	"annual leave":       "vacation",
	"sick":               "sick leave",
	"sickness":           "sick leave",
	"medical":            "medical leave",
	"unpaid":             "unpaid leave",
	"no pay leave":       "leave without pay",
	"comp rest":          "compensatory rest",
	"day off in lieu":    "compensatory rest",
}

// Canonical maps a normalized label through the alias table.
func Canonical(typeKey string) string {
	if c, ok := Aliases[typeKey]; ok {
		return c
	}
	return typeKey
}
