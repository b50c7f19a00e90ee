package schema

import (
	"strings"
)

// field names a canonical column one of the record kinds is normalized into.
type field string

const (
	fieldDate              field = "date"
	fieldTactic            field = "tactic"
	fieldState             field = "state"
	fieldCampaign          field = "campaign"
	fieldImpressions       field = "impression"
	fieldClicks            field = "clicks"
	fieldSpend             field = "spend"
	fieldAttributedRevenue field = "attributed_revenue"
	fieldOrders            field = "orders"
	fieldRevenue           field = "revenue"
	fieldNewCustomers      field = "new_customers"
)

// rule maps a source column name to a canonical field. Rules are evaluated
// in declaration order and the first match wins for a column, so a name
// that satisfies several heuristics still resolves to exactly one field.
//
// A guarded rule only fires when nothing else in the same table resolved to
// its target: the bare "revenue" column is treated as attributed revenue
// only in tables with no explicit attributed-revenue column.
type rule struct {
	target  field
	guarded bool
	match   func(name string) bool
}

func equalsAny(names ...string) func(string) bool {
	return func(name string) bool {
		for _, n := range names {
			if name == n {
				return true
			}
		}
		return false
	}
}

func containsAny(subs ...string) func(string) bool {
	return func(name string) bool {
		for _, s := range subs {
			if strings.Contains(name, s) {
				return true
			}
		}
		return false
	}
}

func containsAll(subs ...string) func(string) bool {
	return func(name string) bool {
		for _, s := range subs {
			if !strings.Contains(name, s) {
				return false
			}
		}
		return true
	}
}

// marketingRules is the fixed heuristic order for campaign exports. The
// attributed-revenue rule precedes the spend rule so a name like
// "attributed revenue amount" lands on revenue, not spend.
var marketingRules = []rule{
	{target: fieldDate, match: equalsAny("date", "day")},
	{target: fieldImpressions, match: func(name string) bool {
		return strings.Contains(name, "impression") || name == "impr"
	}},
	{target: fieldClicks, match: equalsAny("click", "clicks")},
	{target: fieldAttributedRevenue, match: containsAll("attributed", "revenue")},
	{target: fieldSpend, match: containsAny("spend", "cost", "amount")},
	{target: fieldAttributedRevenue, guarded: true, match: equalsAny("revenue")},
	{target: fieldCampaign, match: equalsAny("campaign", "campaign name", "campaign_name", "ad_group", "adgroup")},
	{target: fieldTactic, match: equalsAny("tactic", "channel", "adset", "ad_set")},
	{target: fieldState, match: equalsAny("state", "region")},
}

// businessRules is the fixed heuristic order for the outcomes feed.
var businessRules = []rule{
	{target: fieldDate, match: equalsAny("date", "day")},
	{target: fieldOrders, match: equalsAny("orders", "order", "total orders", "total_orders")},
	{target: fieldNewCustomers, match: containsAll("new", "customer")},
	{target: fieldRevenue, match: equalsAny("revenue", "total revenue", "total_revenue")},
}

// normalizeName prepares a header for matching: trimmed, lowercased, inner
// whitespace collapsed.
func normalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(name))), " ")
}

// resolveColumns assigns each source column to at most one canonical field.
// Guarded rules run in a second pass so they can see what the table already
// resolved. When several columns land on the same field, the last column in
// table order wins; the reference applied renames sequentially, which has
// exactly that effect, and we keep it as the documented policy.
func resolveColumns(columns []string, rules []rule) map[field]int {
	targets := make([]field, len(columns))

	for i, col := range columns {
		name := normalizeName(col)
		for _, r := range rules {
			if r.guarded {
				continue
			}
			if r.match(name) {
				targets[i] = r.target
				break
			}
		}
	}

	resolved := make(map[field]bool)
	for _, t := range targets {
		if t != "" {
			resolved[t] = true
		}
	}

	for i, col := range columns {
		if targets[i] != "" {
			continue
		}
		name := normalizeName(col)
		for _, r := range rules {
			if !r.guarded || resolved[r.target] {
				continue
			}
			if r.match(name) {
				targets[i] = r.target
				break
			}
		}
	}

	assign := make(map[field]int)
	for i, t := range targets {
		if t != "" {
			assign[t] = i
		}
	}
	return assign
}
