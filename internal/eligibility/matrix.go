// Package eligibility compares a flat requirement mapping against a company
// profile mapping to produce pass/fail rows and a GO/NO-GO verdict. It is a
// stricter, binary policy than the free-text gate and shares no state with it.
package eligibility

import (
	"math"
	"reflect"
	"sort"
	"strings"
)

// RowStatus is the outcome of one requirement comparison.
type RowStatus string

const (
	StatusMissing RowStatus = "Missing"
	StatusPass    RowStatus = "Pass"
	StatusFail    RowStatus = "Fail"
)

// Row is one requirement compared against the company profile.
type Row struct {
	Key          string      `json:"requirement"`
	RFPValue     interface{} `json:"rfp_value"`
	CompanyValue interface{} `json:"company_value,omitempty"`
	Status       RowStatus   `json:"status"`
	Eligible     bool        `json:"eligible"`
}

// Summary is the full eligibility decision.
type Summary struct {
	Verdict      string  `json:"verdict"` // "GO" or "NO-GO"
	Score        float64 `json:"score"`
	Rows         []Row   `json:"rows"`
	HardFailures []Row   `json:"hard_failures,omitempty"`
}

// hardFailureKeys are the deal-breaker set-aside/certification keys. A Fail
// on any of them forces NO-GO regardless of overall score.
var hardFailureKeys = map[string]bool{
	"sdvosb":           true,
	"8a":               true,
	"wosb":             true,
	"hubzone":          true,
	"sam_registered":   true,
	"active_cage_code": true,
}

// BuildMatrix compares each requirement key against the company profile.
// Rows come back in sorted key order so output is deterministic.
func BuildMatrix(requirements, company map[string]interface{}) []Row {
	keys := make([]string, 0, len(requirements))
	for k := range requirements {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rows := make([]Row, 0, len(keys))
	for _, key := range keys {
		required := requirements[key]
		row := Row{Key: key, RFPValue: required}

		actual, ok := company[key]
		if !ok || actual == nil {
			row.Status = StatusMissing
			rows = append(rows, row)
			continue
		}
		row.CompanyValue = actual

		if matches(required, actual) {
			row.Status = StatusPass
			row.Eligible = true
		} else {
			row.Status = StatusFail
		}
		rows = append(rows, row)
	}
	return rows
}

// matches checks list membership when the requirement is a list, equality
// otherwise. String comparison is case-insensitive and trimmed.
func matches(required, actual interface{}) bool {
	switch list := required.(type) {
	case []interface{}:
		for _, v := range list {
			if valueEqual(v, actual) {
				return true
			}
		}
		return false
	case []string:
		for _, v := range list {
			if valueEqual(v, actual) {
				return true
			}
		}
		return false
	default:
		return valueEqual(required, actual)
	}
}

func valueEqual(a, b interface{}) bool {
	as, aok := a.(string)
	bs, bok := b.(string)
	if aok && bok {
		return strings.EqualFold(strings.TrimSpace(as), strings.TrimSpace(bs))
	}
	return reflect.DeepEqual(a, b)
}

// Score is 100 × passing rows / total rows, two decimals. Empty input is 0.
func Score(rows []Row) float64 {
	if len(rows) == 0 {
		return 0.0
	}
	pass := 0
	for _, r := range rows {
		if r.Status == StatusPass {
			pass++
		}
	}
	return math.Round(10000*float64(pass)/float64(len(rows))) / 100
}

// HardFailures returns the failing rows whose key is in the deal-breaker set.
func HardFailures(rows []Row) []Row {
	var out []Row
	for _, r := range rows {
		if r.Status == StatusFail && hardFailureKeys[strings.ToLower(r.Key)] {
			out = append(out, r)
		}
	}
	return out
}

// Summarize produces the GO/NO-GO verdict: NO-GO iff any hard failure exists.
func Summarize(requirements, company map[string]interface{}) Summary {
	rows := BuildMatrix(requirements, company)
	hard := HardFailures(rows)
	verdict := "GO"
	if len(hard) > 0 {
		verdict = "NO-GO"
	}
	return Summary{
		Verdict:      verdict,
		Score:        Score(rows),
		Rows:         rows,
		HardFailures: hard,
	}
}
