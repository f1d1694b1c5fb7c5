package query

import (
	"encoding/json"
	"math"
	"reflect"

	"github.com/MKhiriev/go-task-sync/models"
)

// condition is one normalized filter: the field and every value it may hold.
type condition struct {
	field   string
	allowed []any
}

// normalize turns filters into conditions. Slices and arrays (other than
// []byte) expand into their elements, any other value becomes a one-element
// list.
func normalize(filters models.Filters) []condition {
	conds := make([]condition, 0, len(filters))
	for field, value := range filters {
		conds = append(conds, condition{field: field, allowed: toList(value)})
	}

	return conds
}

func toList(value any) []any {
	switch v := value.(type) {
	case nil:
		return []any{nil}
	case []any:
		return v
	case []byte:
		return []any{v}
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return []any{value}
	}

	list := make([]any, rv.Len())
	for i := range list {
		list[i] = rv.Index(i).Interface()
	}

	return list
}

// matches reports whether record satisfies conds under mode. A record with
// no conditions to check always matches.
func matches(record models.Record, conds []condition, mode models.MatchMode) bool {
	if len(conds) == 0 {
		return true
	}

	for _, c := range conds {
		ok := c.holds(record)
		if mode == models.MatchAny && ok {
			return true
		}
		if mode != models.MatchAny && !ok {
			return false
		}
	}

	return mode != models.MatchAny
}

// holds reports whether record[c.field] is one of c.allowed. A missing field
// never holds.
func (c condition) holds(record models.Record) bool {
	value, ok := record.Get(c.field)
	if !ok {
		return false
	}

	for _, allowed := range c.allowed {
		if equal(value, allowed) {
			return true
		}
	}

	return false
}

// equal compares two record values. Numbers compare by value regardless of
// their Go type, so a JSON-decoded 10.0 equals the int 10.
func equal(a, b any) bool {
	na, aNum := toNumber(a)
	nb, bNum := toNumber(b)
	if aNum || bNum {
		return aNum && bNum && na.equal(nb)
	}

	return reflect.DeepEqual(a, b)
}

type number struct {
	i     int64
	f     float64
	exact bool // i holds the value exactly
}

func (n number) equal(o number) bool {
	if n.exact && o.exact {
		return n.i == o.i
	}

	return n.f == o.f
}

func toNumber(v any) (number, bool) {
	if n, ok := v.(json.Number); ok {
		if i, err := n.Int64(); err == nil {
			return number{i: i, f: float64(i), exact: true}, true
		}
		f, err := n.Float64()
		if err != nil {
			return number{}, false
		}
		return fromFloat(f), true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i := rv.Int()
		return number{i: i, f: float64(i), exact: true}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return number{f: float64(u)}, true
		}
		return number{i: int64(u), f: float64(u), exact: true}, true
	case reflect.Float32, reflect.Float64:
		return fromFloat(rv.Float()), true
	default:
		return number{}, false
	}
}

func fromFloat(f float64) number {
	if f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 {
		return number{i: int64(f), f: f, exact: true}
	}

	return number{f: f}
}
