package casm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Basis is the content of a CASM basis.json or eci.json file.
// Fields other than orbits (bspecs, site_functions, …) are kept verbatim.
type Basis struct {
	Orbits []Orbit
	Extra  map[string]json.RawMessage
}

// Orbit is one symmetrically distinct cluster and its basis functions.
type Orbit struct {
	Mult             int
	Prototype        Prototype
	ClusterFunctions []ClusterFunction
	Extra            map[string]json.RawMessage
}

// Prototype describes the orbit's prototype cluster.
type Prototype struct {
	Sites     []json.RawMessage
	MaxLength float64
	MinLength float64
	Extra     map[string]json.RawMessage
}

// Size returns the number of sites in the cluster.
func (p Prototype) Size() int { return len(p.Sites) }

// ClusterFunction is one basis function; ECI is nil when none is set.
type ClusterFunction struct {
	LinearFunctionIndex int
	ECI                 *float64
	Extra               map[string]json.RawMessage
}

// ---------- JSON (unknown fields survive a round trip) ----------

// splitFields decodes an object and removes the known keys, returning
// them separately from the rest.
func splitFields(data []byte, known ...string) (map[string]json.RawMessage, map[string]json.RawMessage, error) {
	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, nil, err
	}
	picked := make(map[string]json.RawMessage, len(known))
	for _, k := range known {
		if v, ok := all[k]; ok {
			picked[k] = v
			delete(all, k)
		}
	}
	if len(all) == 0 {
		all = nil
	}

	return picked, all, nil
}

func decodeField(fields map[string]json.RawMessage, key string, dst any) error {
	raw, ok := fields[key]
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%q: %w", key, err)
	}

	return nil
}

func mergeFields(extra map[string]json.RawMessage, known map[string]any) ([]byte, error) {
	out := make(map[string]any, len(extra)+len(known))
	for k, v := range extra {
		out[k] = v
	}
	for k, v := range known {
		out[k] = v
	}

	return json.Marshal(out)
}

func (b *Basis) UnmarshalJSON(data []byte) error {
	known, extra, err := splitFields(data, "orbits")
	if err != nil {
		return err
	}
	*b = Basis{Extra: extra}

	return decodeField(known, "orbits", &b.Orbits)
}

func (b Basis) MarshalJSON() ([]byte, error) {
	orbits := b.Orbits
	if orbits == nil {
		orbits = []Orbit{}
	}

	return mergeFields(b.Extra, map[string]any{"orbits": orbits})
}

func (o *Orbit) UnmarshalJSON(data []byte) error {
	known, extra, err := splitFields(data, "mult", "prototype", "cluster_functions")
	if err != nil {
		return err
	}
	*o = Orbit{Extra: extra}
	if err = decodeField(known, "mult", &o.Mult); err != nil {
		return err
	}
	if err = decodeField(known, "prototype", &o.Prototype); err != nil {
		return err
	}

	return decodeField(known, "cluster_functions", &o.ClusterFunctions)
}

func (o Orbit) MarshalJSON() ([]byte, error) {
	cfs := o.ClusterFunctions
	if cfs == nil {
		cfs = []ClusterFunction{}
	}

	return mergeFields(o.Extra, map[string]any{
		"mult":              o.Mult,
		"prototype":         o.Prototype,
		"cluster_functions": cfs,
	})
}

func (p *Prototype) UnmarshalJSON(data []byte) error {
	known, extra, err := splitFields(data, "sites", "max_length", "min_length")
	if err != nil {
		return err
	}
	*p = Prototype{Extra: extra}
	if err = decodeField(known, "sites", &p.Sites); err != nil {
		return err
	}
	if err = decodeField(known, "max_length", &p.MaxLength); err != nil {
		return err
	}

	return decodeField(known, "min_length", &p.MinLength)
}

func (p Prototype) MarshalJSON() ([]byte, error) {
	sites := p.Sites
	if sites == nil {
		sites = []json.RawMessage{}
	}

	return mergeFields(p.Extra, map[string]any{
		"sites":      sites,
		"max_length": p.MaxLength,
		"min_length": p.MinLength,
	})
}

func (c *ClusterFunction) UnmarshalJSON(data []byte) error {
	known, extra, err := splitFields(data, "linear_function_index", "eci")
	if err != nil {
		return err
	}
	*c = ClusterFunction{Extra: extra}
	if err = decodeField(known, "linear_function_index", &c.LinearFunctionIndex); err != nil {
		return err
	}

	return decodeField(known, "eci", &c.ECI)
}

func (c ClusterFunction) MarshalJSON() ([]byte, error) {
	known := map[string]any{"linear_function_index": c.LinearFunctionIndex}
	if c.ECI != nil {
		known["eci"] = *c.ECI
	}

	return mergeFields(c.Extra, known)
}

// ---------- deep copy ----------

func cloneExtra(m map[string]json.RawMessage) map[string]json.RawMessage {
	if m == nil {
		return nil
	}
	out := make(map[string]json.RawMessage, len(m))
	for k, v := range m {
		out[k] = append(json.RawMessage(nil), v...)
	}

	return out
}

// Clone returns a deep copy of b.
func (b Basis) Clone() Basis {
	out := Basis{Extra: cloneExtra(b.Extra)}
	if b.Orbits != nil {
		out.Orbits = make([]Orbit, len(b.Orbits))
	}
	for i, o := range b.Orbits {
		co := Orbit{Mult: o.Mult, Extra: cloneExtra(o.Extra)}
		co.Prototype = Prototype{
			MaxLength: o.Prototype.MaxLength,
			MinLength: o.Prototype.MinLength,
			Extra:     cloneExtra(o.Prototype.Extra),
		}
		if o.Prototype.Sites != nil {
			co.Prototype.Sites = make([]json.RawMessage, len(o.Prototype.Sites))
			for j, s := range o.Prototype.Sites {
				co.Prototype.Sites[j] = append(json.RawMessage(nil), s...)
			}
		}
		if o.ClusterFunctions != nil {
			co.ClusterFunctions = make([]ClusterFunction, len(o.ClusterFunctions))
		}
		for j, cf := range o.ClusterFunctions {
			ccf := ClusterFunction{LinearFunctionIndex: cf.LinearFunctionIndex, Extra: cloneExtra(cf.Extra)}
			if cf.ECI != nil {
				v := *cf.ECI
				ccf.ECI = &v
			}
			co.ClusterFunctions[j] = ccf
		}
		out.Orbits[i] = co
	}

	return out
}

// ---------- files ----------

// ReadBasis decodes basis.json / eci.json content.
func ReadBasis(r io.Reader) (Basis, error) {
	var b Basis
	if err := json.NewDecoder(r).Decode(&b); err != nil {
		return Basis{}, fmt.Errorf("casm: decode basis: %w", err)
	}

	return b, nil
}

// ReadBasisFile reads a basis.json or eci.json file.
func ReadBasisFile(path string) (Basis, error) {
	f, err := os.Open(path)
	if err != nil {
		return Basis{}, err
	}
	defer f.Close()

	b, err := ReadBasis(f)
	if err != nil {
		return Basis{}, fmt.Errorf("%s: %w", path, err)
	}

	return b, nil
}

// WriteBasis encodes b as indented JSON.
func WriteBasis(w io.Writer, b Basis) error {
	data, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("casm: encode basis: %w", err)
	}
	var buf bytes.Buffer
	if err = json.Indent(&buf, data, "", "  "); err != nil {
		return fmt.Errorf("casm: encode basis: %w", err)
	}
	buf.WriteByte('\n')
	_, err = buf.WriteTo(w)

	return err
}

// WriteBasisFile writes b to path (0644), replacing any existing file.
func WriteBasisFile(path string, b Basis) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if err = WriteBasis(f, b); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
