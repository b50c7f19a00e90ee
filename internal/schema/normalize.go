// Package schema reconciles the loosely-specified column names of raw input
// tables into the canonical field set of each record kind. Matching is
// case-insensitive, whitespace-trimmed, and driven by an ordered rule list;
// malformed cells coerce to null and never abort normalization.
package schema

import (
	"strings"

	"adlens/domain/business"
	"adlens/domain/core"
	"adlens/domain/marketing"
	"adlens/domain/source"
)

// NormalizeMarketing maps a raw campaign export onto the canonical
// marketing schema. The platform tag is supplied by the caller; nothing in
// the file's content can change it. Canonical numeric fields the source
// lacks come back as all-null columns so aggregation never has to special
// case a missing column.
func NormalizeMarketing(raw *source.RawTable, platform marketing.Platform) marketing.Table {
	assign := resolveColumns(raw.Columns, marketingRules)

	dateIdx, hasDate := assign[fieldDate]
	tacticIdx, hasTactic := assign[fieldTactic]
	stateIdx, hasState := assign[fieldState]
	campaignIdx, hasCampaign := assign[fieldCampaign]

	table := make(marketing.Table, 0, len(raw.Rows))
	for _, row := range raw.Rows {
		rec := marketing.Record{
			Platform:          platform,
			Impressions:       cellNumber(row, assign, fieldImpressions),
			Clicks:            cellNumber(row, assign, fieldClicks),
			Spend:             cellNumber(row, assign, fieldSpend),
			AttributedRevenue: cellNumber(row, assign, fieldAttributedRevenue),
		}
		if hasDate {
			rec.Date = parseDate(cell(row, dateIdx))
		}
		if hasTactic {
			rec.Tactic = cellLabel(row, tacticIdx)
		}
		if hasState {
			rec.State = cellLabel(row, stateIdx)
		}
		if hasCampaign {
			rec.Campaign = cellLabel(row, campaignIdx)
		}
		table = append(table, rec)
	}
	return table
}

// NormalizeBusiness maps the raw outcomes feed onto the canonical business
// schema. Any expected measure the source lacks is all-null.
func NormalizeBusiness(raw *source.RawTable) business.Table {
	assign := resolveColumns(raw.Columns, businessRules)

	dateIdx, hasDate := assign[fieldDate]

	table := make(business.Table, 0, len(raw.Rows))
	for _, row := range raw.Rows {
		rec := business.Record{
			Orders:       cellNumber(row, assign, fieldOrders),
			Revenue:      cellNumber(row, assign, fieldRevenue),
			NewCustomers: cellNumber(row, assign, fieldNewCustomers),
		}
		if hasDate {
			rec.Date = parseDate(cell(row, dateIdx))
		}
		table = append(table, rec)
	}
	return table
}

// cell returns the raw string at idx, tolerating short rows.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// cellNumber coerces the assigned column's cell, or null when the table has
// no column for the field.
func cellNumber(row []string, assign map[field]int, f field) core.Number {
	idx, ok := assign[f]
	if !ok {
		return core.None()
	}
	return parseNumber(cell(row, idx))
}

// cellLabel returns a pointer to the trimmed cell value. Callers only
// invoke it for columns the source actually has; a blank cell comes back
// as a pointer to "", which is the carried-but-missing state.
func cellLabel(row []string, idx int) *string {
	v := strings.TrimSpace(cell(row, idx))
	return &v
}
