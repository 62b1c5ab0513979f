package service

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/maxviazov/planning-api/internal/repository"
	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// fold normalizes text for case- and accent-insensitive matching: compatibility decomposition,
// combining marks dropped, recomposition, then Unicode case folding.
// Transformers and Casers keep state, so each call builds its own.
func fold(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}
	return cases.Fold().String(stripped)
}

// indexed pairs a record with its top-level JSON fields, so search and sort decode each record once.
type indexed[T any] struct {
	rec    T
	fields map[string]json.RawMessage
}

func index[T any](items []T) ([]indexed[T], error) {
	out := make([]indexed[T], 0, len(items))
	for _, it := range items {
		doc, err := repository.Encode(it)
		if err != nil {
			return nil, err
		}
		fields, err := repository.Fields(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, indexed[T]{rec: it, fields: fields})
	}
	return out, nil
}

// search keeps the items where any of the given fields contains term, ignoring case.
func search[T any](items []indexed[T], fields []string, term string) []indexed[T] {
	needle := fold(strings.TrimSpace(term))
	if needle == "" {
		return items
	}
	out := items[:0:0]
	for _, it := range items {
		for _, f := range fields {
			text, ok := repository.FieldText(it.fields[f])
			if ok && strings.Contains(fold(text), needle) {
				out = append(out, it)
				break
			}
		}
	}
	return out
}

// sortBy orders items by one top-level field. Numbers compare numerically, everything else as folded
// text. Records missing the field go last in either direction; ties keep insertion order.
func sortBy[T any](items []indexed[T], field string, desc bool) {
	type key struct {
		present bool
		num     float64
		isNum   bool
		text    string
	}
	keys := make([]key, len(items))
	for i, it := range items {
		text, ok := repository.FieldText(it.fields[field])
		if !ok {
			continue
		}
		k := key{present: true, text: fold(text)}
		if n, err := strconv.ParseFloat(text, 64); err == nil {
			k.num, k.isNum = n, true
		}
		keys[i] = k
	}
	perm := make([]int, len(items))
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(a, b int) bool {
		ka, kb := keys[perm[a]], keys[perm[b]]
		if ka.present != kb.present {
			return ka.present
		}
		if !ka.present {
			return false
		}
		var less, greater bool
		if ka.isNum && kb.isNum {
			less, greater = ka.num < kb.num, ka.num > kb.num
		} else {
			less, greater = ka.text < kb.text, ka.text > kb.text
		}
		if desc {
			return greater
		}
		return less
	})
	sorted := make([]indexed[T], len(items))
	for i, p := range perm {
		sorted[i] = items[p]
	}
	copy(items, sorted)
}

func records[T any](items []indexed[T]) []T {
	out := make([]T, len(items))
	for i, it := range items {
		out[i] = it.rec
	}
	return out
}
