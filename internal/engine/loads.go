package engine

import "encoding/json"

// Load entities. Positions and spans are in metres, distributed
// intensities in kN/m, point magnitudes in kN, moments in kN·m and
// tributary pressures in kPa. Every entity carries a caller-assigned ID
// that is stable across edits and unrelated to slice order.

// UDL is a uniformly distributed load over [Start, Finish]. A UDL covering
// the whole span is "full-span", anything shorter is "partial".
type UDL struct {
	ID     string  `json:"id,omitempty"`
	Start  float64 `json:"start"`
	Finish float64 `json:"finish"`
	Dead   float64 `json:"dead"` // kN/m
	Live   float64 `json:"live"` // kN/m
}

// PointLoad is a concentrated load at Location.
type PointLoad struct {
	ID       string  `json:"id,omitempty"`
	Location float64 `json:"location"`
	Dead     float64 `json:"dead"` // kN
	Live     float64 `json:"live"` // kN
}

// AppliedMoment is a concentrated moment at Location.
type AppliedMoment struct {
	ID       string  `json:"id,omitempty"`
	Location float64 `json:"location"`
	Dead     float64 `json:"dead"` // kN·m
	Live     float64 `json:"live"` // kN·m
}

// TributaryLoad is a full-span distributed load derived from an area
// pressure times a tributary width, optionally including the section
// self-weight as an extra dead-load contribution.
type TributaryLoad struct {
	ID                string  `json:"id,omitempty"`
	Width             float64 `json:"width"` // m
	Dead              float64 `json:"dead"`  // kPa
	Live              float64 `json:"live"`  // kPa
	IncludeSelfWeight bool    `json:"include_self_weight"`
}

// LoadSet is the full collection of loads for one analysis pass. The
// engine treats it as an immutable snapshot.
type LoadSet struct {
	UDLs      []UDL           `json:"udls"`
	Points    []PointLoad     `json:"points"`
	Moments   []AppliedMoment `json:"moments"`
	Tributary []TributaryLoad `json:"tributary"`
}

// UnmarshalJSON decodes each collection independently and substitutes an
// empty collection for anything malformed, so a partially corrupted job
// file still analyses with whatever valid loads remain.
func (ls *LoadSet) UnmarshalJSON(data []byte) error {
	var raw struct {
		UDLs      json.RawMessage `json:"udls"`
		Points    json.RawMessage `json:"points"`
		Moments   json.RawMessage `json:"moments"`
		Tributary json.RawMessage `json:"tributary"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		*ls = LoadSet{}
		return nil
	}
	ls.UDLs = decodeLoads[UDL](raw.UDLs)
	ls.Points = decodeLoads[PointLoad](raw.Points)
	ls.Moments = decodeLoads[AppliedMoment](raw.Moments)
	ls.Tributary = decodeLoads[TributaryLoad](raw.Tributary)
	return nil
}

func decodeLoads[T any](raw json.RawMessage) []T {
	if len(raw) == 0 {
		return nil
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}

// minSpan is the practical lower bound enforced on the span (m).
const minSpan = 0.01

func clampSpan(span float64) float64 {
	if span < minSpan {
		return minSpan
	}
	return span
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// clamped re-validates every load position against [0, span] and orders
// UDL extents. The engine does not trust the caller to have enforced the
// input-boundary invariants; a silently out-of-range position would
// produce wrong numbers rather than a crash.
func (ls LoadSet) clamped(span float64) LoadSet {
	out := LoadSet{
		UDLs:      make([]UDL, len(ls.UDLs)),
		Points:    make([]PointLoad, len(ls.Points)),
		Moments:   make([]AppliedMoment, len(ls.Moments)),
		Tributary: ls.Tributary,
	}
	for i, u := range ls.UDLs {
		u.Start = clamp(u.Start, 0, span)
		u.Finish = clamp(u.Finish, 0, span)
		if u.Start > u.Finish {
			u.Start, u.Finish = u.Finish, u.Start
		}
		out.UDLs[i] = u
	}
	for i, p := range ls.Points {
		p.Location = clamp(p.Location, 0, span)
		out.Points[i] = p
	}
	for i, m := range ls.Moments {
		m.Location = clamp(m.Location, 0, span)
		out.Moments[i] = m
	}
	return out
}

// includeSelfWeight reports whether any tributary load asks for the
// section self-weight to be added.
func (ls LoadSet) includeSelfWeight() bool {
	for _, t := range ls.Tributary {
		if t.IncludeSelfWeight {
			return true
		}
	}
	return false
}
