package engine

import (
	"strconv"
	"strings"
	"sync/atomic"
	"time"
)

var idSeq atomic.Uint64

// MakeID builds a synthetic node identifier of the form
// ns_slug_hash from a namespace tag and a display name.
//
// The slug keeps the id readable; the hash mixes the name with the
// generation time so repeated calls with the same name do not collide.
// A process-wide sequence number is folded into the suffix, which makes
// collisions impossible by construction even for calls landing on the
// same nanosecond.
//
// An empty name falls back to the uppercased namespace.
func MakeID(ns string, name string) string {
	display := name
	if display == "" {
		display = strings.ToUpper(ns)
	}

	seq := idSeq.Add(1)
	seed := display + strconv.FormatInt(time.Now().UnixNano(), 10)

	var b strings.Builder
	b.WriteString(ns)
	b.WriteByte('_')
	b.WriteString(Slug(display))
	b.WriteByte('_')
	b.WriteString(shortHash(seed))
	b.WriteString(strconv.FormatUint(seq, 36))
	return b.String()
}

// Slug lowercases a name and collapses every run of non-alphanumeric
// characters into a single dash, trimming dashes at both ends.
func Slug(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if alnum {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = false
			b.WriteRune(r)
			continue
		}
		dash = true
	}
	return b.String()
}

// shortHash returns the first six base36 digits of a djb2-style hash.
func shortHash(s string) string {
	var h int64
	for _, r := range s {
		h = (h << 5) - h + int64(r)
	}
	if h < 0 {
		h = -h
	}
	out := strconv.FormatInt(h, 36)
	if len(out) > 6 {
		out = out[:6]
	}
	return out
}
