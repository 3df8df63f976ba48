package engine

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/structcalc/gobeam/internal/as1170"
	"github.com/structcalc/gobeam/internal/catalog"
)

// JobFile is the on-disk description of one beam job. Load collections
// decode leniently (see LoadSet.UnmarshalJSON); anything else malformed is
// a hard error at the CLI boundary.
type JobFile struct {
	Name    string  `json:"name,omitempty"`
	Span    float64 `json:"span"`
	Loads   LoadSet `json:"loads"`
	Section string  `json:"section"`
	Members int     `json:"members,omitempty"`
	Usage   string  `json:"usage,omitempty"`
	Ws      float64 `json:"ws,omitempty"`
	Wl      float64 `json:"wl,omitempty"`
	J2      float64 `json:"j2,omitempty"`
}

// Input resolves the job into an analysis Input: catalog lookup for the
// section and usage-profile defaults for any serviceability factor the
// job leaves unset.
func (j *JobFile) Input() (Input, error) {
	in := Input{
		Span:  j.Span,
		Loads: j.Loads,
		Ws:    j.Ws,
		Wl:    j.Wl,
		J2:    j.J2,
	}

	profile := as1170.DefaultProfile
	if j.Usage != "" {
		p, ok := as1170.ProfileByName(j.Usage)
		if !ok {
			return in, fmt.Errorf("unknown usage category %q", j.Usage)
		}
		profile = p
	}
	if in.Ws <= 0 {
		in.Ws = profile.Ws
	}
	if in.Wl <= 0 {
		in.Wl = profile.Wl
	}
	if in.J2 <= 0 {
		in.J2 = profile.J2
	}

	if j.Section != "" {
		sec, err := catalog.Lookup(j.Section, j.Members)
		if err != nil {
			return in, err
		}
		in.Section = &sec
	}

	return in, nil
}

// LoadJobFile reads and parses a beam job from a JSON file.
func LoadJobFile(path string) (*JobFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading job file: %w", err)
	}
	var job JobFile
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("parsing job file %s: %w", path, err)
	}
	return &job, nil
}
