package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"
	"time"

	"adserver/models"

	"github.com/tidwall/gjson"
)

// Admin ad search: each condition is a "field operator value" string,
// alternating with "and"/"or" parts. Fields address the ad's JSON form,
// so nested paths work the same as top-level ones.

// AdQueryCondition is one parsed "path operator value" clause.
type AdQueryCondition struct {
	Path          string
	Operator      string
	ParsedValue   interface{}
	ValueType     gjson.Type
	IsInsensitive bool
	Original      string
}

type adQueryLogic string

const (
	adLogicAnd adQueryLogic = "and"
	adLogicOr  adQueryLogic = "or"
)

// ParsedAdQuery is the condition chain with its connecting logic.
// Logic[i] joins Conditions[i] and Conditions[i+1].
type ParsedAdQuery struct {
	Conditions []AdQueryCondition
	Logic      []adQueryLogic
}

var adQueryOperators = map[string]bool{
	"equals": true, "notequals": true,
	"greaterthan": true, "lessthan": true,
	"greaterthanorequals": true, "lessthanorequals": true,
	"contains": true, "startswith": true, "endswith": true,
}

var adQueryStringOps = map[string]bool{
	"equals": true, "notequals": true, "contains": true,
	"startswith": true, "endswith": true,
}

// ParseAdQuery validates and parses the raw query parts. An empty query is
// valid and matches everything.
func ParseAdQuery(parts []string) (*ParsedAdQuery, error) {
	if len(parts) == 0 {
		return nil, nil
	}

	parsed := &ParsedAdQuery{}
	expectCondition := true
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, fmt.Errorf("query part at index %d is empty", i)
		}
		if expectCondition {
			cond, err := parseAdCondition(part)
			if err != nil {
				return nil, fmt.Errorf("invalid condition at index %d ('%s'): %w", i, part, err)
			}
			parsed.Conditions = append(parsed.Conditions, cond)
		} else {
			logic := adQueryLogic(strings.ToLower(part))
			if logic != adLogicAnd && logic != adLogicOr {
				return nil, fmt.Errorf("invalid logical operator at index %d: '%s', expected 'and' or 'or'", i, part)
			}
			parsed.Logic = append(parsed.Logic, logic)
		}
		expectCondition = !expectCondition
	}
	if expectCondition {
		return nil, errors.New("query must end with a condition, not a logical operator")
	}
	return parsed, nil
}

// parseAdCondition splits "path operator value" and types the value:
// quoted strings stay strings, then null, number and bool are tried in that
// order, and anything else falls back to a bare string.
func parseAdCondition(s string) (AdQueryCondition, error) {
	fields := strings.Fields(s)
	if len(fields) < 3 {
		return AdQueryCondition{}, errors.New("condition must be 'path operator value'")
	}

	path := fields[0]
	operator := strings.ToLower(fields[1])

	isInsensitive := false
	if strings.HasSuffix(operator, "-insensitive") {
		base := strings.TrimSuffix(operator, "-insensitive")
		if !adQueryStringOps[base] {
			return AdQueryCondition{}, fmt.Errorf("operator '%s' cannot be case-insensitive", base)
		}
		isInsensitive = true
		operator = base
	}
	if !adQueryOperators[operator] {
		return AdQueryCondition{}, fmt.Errorf("invalid operator '%s'", operator)
	}

	valueStart := strings.Index(s, fields[2])
	raw := strings.TrimSpace(s[valueStart:])

	var parsedValue interface{}
	var valueType gjson.Type
	switch {
	case len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"':
		parsedValue = raw[1 : len(raw)-1]
		valueType = gjson.String
	case raw == "null":
		parsedValue = nil
		valueType = gjson.Null
	default:
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			parsedValue = f
			valueType = gjson.Number
		} else if b, err := strconv.ParseBool(raw); err == nil {
			parsedValue = b
			valueType = gjson.False
			if b {
				valueType = gjson.True
			}
		} else {
			parsedValue = raw
			valueType = gjson.String
		}
	}

	return AdQueryCondition{
		Path:          path,
		Operator:      operator,
		ParsedValue:   parsedValue,
		ValueType:     valueType,
		IsInsensitive: isInsensitive,
		Original:      s,
	}, nil
}

// matchAd evaluates the condition chain left to right against the ad's
// JSON form.
func matchAd(adJSON string, query *ParsedAdQuery) (bool, error) {
	if query == nil || len(query.Conditions) == 0 {
		return true, nil
	}
	result, err := matchAdCondition(adJSON, query.Conditions[0])
	if err != nil {
		return false, fmt.Errorf("error evaluating condition '%s': %w", query.Conditions[0].Original, err)
	}
	for i, logic := range query.Logic {
		next, err := matchAdCondition(adJSON, query.Conditions[i+1])
		if err != nil {
			return false, fmt.Errorf("error evaluating condition '%s': %w", query.Conditions[i+1].Original, err)
		}
		if logic == adLogicAnd {
			result = result && next
		} else {
			result = result || next
		}
	}
	return result, nil
}

func matchAdCondition(adJSON string, cond AdQueryCondition) (bool, error) {
	target := gjson.Get(adJSON, cond.Path)
	if !target.Exists() {
		return false, fmt.Errorf("field '%s' does not exist", cond.Path)
	}

	op := cond.Operator
	switch target.Type {
	case gjson.String:
		if !adQueryStringOps[op] {
			return false, fmt.Errorf("cannot apply numeric operator '%s' to string field", op)
		}
		if cond.ValueType != gjson.String {
			if op == "notequals" {
				return true, nil
			}
			return false, fmt.Errorf("type mismatch: cannot compare string field with %s", cond.ValueType.String())
		}
		a, b := target.String(), cond.ParsedValue.(string)
		if cond.IsInsensitive {
			a, b = strings.ToLower(a), strings.ToLower(b)
		}
		switch op {
		case "equals":
			return a == b, nil
		case "notequals":
			return a != b, nil
		case "contains":
			return strings.Contains(a, b), nil
		case "startswith":
			return strings.HasPrefix(a, b), nil
		default:
			return strings.HasSuffix(a, b), nil
		}

	case gjson.Number:
		switch op {
		case "equals", "notequals", "greaterthan", "lessthan", "greaterthanorequals", "lessthanorequals":
		default:
			return false, fmt.Errorf("cannot apply string operator '%s' to numeric field", op)
		}
		if cond.ValueType != gjson.Number {
			if op == "notequals" {
				return true, nil
			}
			return false, fmt.Errorf("value '%v' is not a valid number", cond.ParsedValue)
		}
		a, b := target.Float(), cond.ParsedValue.(float64)
		switch op {
		case "equals":
			return a == b, nil
		case "notequals":
			return a != b, nil
		case "greaterthan":
			return a > b, nil
		case "lessthan":
			return a < b, nil
		case "greaterthanorequals":
			return a >= b, nil
		default:
			return a <= b, nil
		}

	case gjson.True, gjson.False:
		if op != "equals" && op != "notequals" {
			return false, fmt.Errorf("operator '%s' is invalid for boolean comparison", op)
		}
		if cond.ValueType != gjson.True && cond.ValueType != gjson.False {
			if op == "notequals" {
				return true, nil
			}
			return false, fmt.Errorf("value '%v' is not a valid boolean", cond.ParsedValue)
		}
		a, b := target.Bool(), cond.ParsedValue.(bool)
		if op == "equals" {
			return a == b, nil
		}
		return a != b, nil

	case gjson.Null:
		switch op {
		case "equals":
			return cond.ValueType == gjson.Null, nil
		case "notequals":
			return cond.ValueType != gjson.Null, nil
		default:
			return false, fmt.Errorf("operator '%s' invalid for null comparison", op)
		}

	default:
		return false, fmt.Errorf("operator '%s' cannot compare arrays or objects", op)
	}
}

// AdQueryParams holds everything for the admin ad search endpoint.
type AdQueryParams struct {
	Username string   // restrict to one owner's ads, case-insensitive
	Status   string   // "active", "expired" or "all" (default)
	Query    []string // raw condition/logic parts
	SortBy   string   // "created_at" (default) or "expires_at"
	Order    string   // "asc" or "desc" (default)
	Page     int      // 1-based
	Limit    int      // per page, capped
}

const (
	adQueryDefaultLimit = 20
	adQueryMaxLimit     = 100
)

// Search filters, sorts and paginates the ad collection. Returns the page
// and the total match count before pagination. Ads that fail individual
// condition evaluation are skipped, not fatal.
func (s *ClassifiedAdStore) Search(params AdQueryParams) ([]models.ClassifiedAd, int, error) {
	parsed, err := ParseAdQuery(params.Query)
	if err != nil {
		return nil, 0, fmt.Errorf("invalid query: %w", err)
	}

	status := strings.ToLower(params.Status)
	switch status {
	case "", "all", "active", "expired":
	default:
		return nil, 0, fmt.Errorf("invalid status value: '%s', expected 'active', 'expired', or 'all'", params.Status)
	}

	now := time.Now()
	matched := make([]models.ClassifiedAd, 0)
	for _, ad := range s.GetAll() {
		if params.Username != "" && !strings.EqualFold(ad.Username, params.Username) {
			continue
		}
		expired := AdExpiredAt(ad, now)
		if status == "active" && expired {
			continue
		}
		if status == "expired" && !expired {
			continue
		}
		if parsed != nil {
			raw, err := json.Marshal(ad)
			if err != nil {
				log.Printf("WARN: Could not encode ad %s for query evaluation, skipping: %v", ad.ID, err)
				continue
			}
			ok, err := matchAd(string(raw), parsed)
			if err != nil {
				log.Printf("WARN: Error evaluating query for ad %s, skipping: %v", ad.ID, err)
				continue
			}
			if !ok {
				continue
			}
		}
		matched = append(matched, ad)
	}

	total := len(matched)
	if err := sortAds(matched, params.SortBy, params.Order); err != nil {
		return nil, 0, err
	}
	page, err := paginateAds(matched, params.Page, params.Limit)
	if err != nil {
		return nil, 0, err
	}
	return page, total, nil
}

func sortAds(ads []models.ClassifiedAd, sortBy, order string) error {
	switch strings.ToLower(sortBy) {
	case "", "created_at", "expires_at":
	default:
		return fmt.Errorf("invalid sort_by value: '%s', expected 'created_at' or 'expires_at'", sortBy)
	}

	less := func(i, j int) bool {
		if strings.ToLower(sortBy) == "expires_at" {
			var ti, tj time.Time
			if ads[i].ExpiresAt != nil {
				ti = *ads[i].ExpiresAt
			}
			if ads[j].ExpiresAt != nil {
				tj = *ads[j].ExpiresAt
			}
			return ti.Before(tj)
		}
		return ads[i].CreatedAt.Before(ads[j].CreatedAt)
	}

	switch strings.ToLower(order) {
	case "asc":
	case "", "desc":
		inner := less
		less = func(i, j int) bool { return inner(j, i) }
	default:
		return fmt.Errorf("invalid order value: '%s', expected 'asc' or 'desc'", order)
	}

	sort.SliceStable(ads, less)
	return nil
}

func paginateAds(ads []models.ClassifiedAd, page, limit int) ([]models.ClassifiedAd, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = adQueryDefaultLimit
	}
	if limit > adQueryMaxLimit {
		limit = adQueryMaxLimit
	}
	start := (page - 1) * limit
	if start >= len(ads) {
		return []models.ClassifiedAd{}, nil
	}
	end := start + limit
	if end > len(ads) {
		end = len(ads)
	}
	return ads[start:end], nil
}
