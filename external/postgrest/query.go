package postgrest

import (
	"net/url"
	"strconv"
	"strings"
)

// Query accumulates PostgREST filter, order and paging parameters for a
// single table read. The zero value is usable; Encode renders the final
// query string.
type Query struct {
	params []param
}

type param struct {
	key   string
	value string
}

func NewQuery() *Query {
	return &Query{params: make([]param, 0, 8)}
}

func (q *Query) Select(columns string) *Query {
	return q.set("select", columns)
}

func (q *Query) Eq(column, value string) *Query {
	return q.append(column, "eq."+value)
}

func (q *Query) Ilike(column, pattern string) *Query {
	return q.append(column, "ilike."+pattern)
}

func (q *Query) Gte(column, value string) *Query {
	return q.append(column, "gte."+value)
}

func (q *Query) Lt(column, value string) *Query {
	return q.append(column, "lt."+value)
}

func (q *Query) In(column string, values []string) *Query {
	quoted := make([]string, 0, len(values))
	for _, value := range values {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		quoted = append(quoted, value)
	}
	return q.append(column, "in.("+strings.Join(quoted, ",")+")")
}

// OrGroup emits an or=(...) disjunction. Each condition must already be in
// PostgREST filter form, e.g. "name_official.ilike.*flamengo*".
func (q *Query) OrGroup(conditions ...string) *Query {
	kept := make([]string, 0, len(conditions))
	for _, cond := range conditions {
		cond = strings.TrimSpace(cond)
		if cond == "" {
			continue
		}
		kept = append(kept, cond)
	}
	if len(kept) == 0 {
		return q
	}
	return q.append("or", "("+strings.Join(kept, ",")+")")
}

// Order takes the raw PostgREST order expression, e.g. "score.desc" or
// "bucket_start.asc".
func (q *Query) Order(expr string) *Query {
	return q.set("order", expr)
}

func (q *Query) Limit(n int) *Query {
	if n <= 0 {
		return q
	}
	return q.set("limit", strconv.Itoa(n))
}

func (q *Query) set(key, value string) *Query {
	value = strings.TrimSpace(value)
	if value == "" {
		return q
	}
	for i := range q.params {
		if q.params[i].key == key {
			q.params[i].value = value
			return q
		}
	}
	return q.append(key, value)
}

// append keeps duplicate keys, which PostgREST needs for range filters such
// as bucket_start=gte.X&bucket_start=lt.Y.
func (q *Query) append(key, value string) *Query {
	q.params = append(q.params, param{key: key, value: value})
	return q
}

// Encode renders the query string in insertion order so request URLs stay
// stable for caching and logging.
func (q *Query) Encode() string {
	if q == nil || len(q.params) == 0 {
		return ""
	}
	var b strings.Builder
	for i, p := range q.params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.value))
	}
	return b.String()
}
