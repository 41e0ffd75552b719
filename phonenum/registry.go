package phonenum

import (
	"embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	levenshtein "github.com/agnivade/levenshtein"
	"gopkg.in/yaml.v3"
)

//go:embed metadata/regions.yml metadata/shortcodes.yml
var metadataFS embed.FS

// Registry is the read-only lookup service over the per-region metadata
// tables. It is loaded once and safe for concurrent use.
type Registry struct {
	regions       map[string]*Metadata // region code -> metadata
	entities      map[int]*Metadata    // calling code -> non-geographic entity
	codeToRegions map[int][]string     // calling code -> regions, main country first
	shortRegions  map[string]*Metadata // region code -> short-code metadata
	callingCodes  map[int]bool

	// authored specs are kept for re-serialization (dump-metadata).
	regionSpecs map[string]*regionSpec
	shortSpecs  map[string]*regionSpec
}

// NewRegistry loads the embedded metadata tables.
func NewRegistry() (*Registry, error) {
	regions, err := loadSpecs("metadata/regions.yml")
	if err != nil {
		return nil, err
	}
	shorts, err := loadSpecs("metadata/shortcodes.yml")
	if err != nil {
		return nil, err
	}
	return buildRegistry(regions, shorts)
}

func loadSpecs(path string) (map[string]*regionSpec, error) {
	raw, err := metadataFS.ReadFile(path)
	if err != nil {
		return nil, err
	}
	specs := map[string]*regionSpec{}
	if err := yaml.Unmarshal(raw, &specs); err != nil {
		return nil, fmt.Errorf("metadata %s: %w", path, err)
	}
	return specs, nil
}

func buildRegistry(regions, shorts map[string]*regionSpec) (*Registry, error) {
	r := &Registry{
		regions:       map[string]*Metadata{},
		entities:      map[int]*Metadata{},
		codeToRegions: map[int][]string{},
		shortRegions:  map[string]*Metadata{},
		callingCodes:  map[int]bool{},
		regionSpecs:   regions,
		shortSpecs:    shorts,
	}
	for key, spec := range regions {
		if spec.CountryCode <= 0 {
			return nil, fmt.Errorf("metadata %s: missing country code", key)
		}
		r.callingCodes[spec.CountryCode] = true
		if spec.NonGeographic {
			md, err := newMetadata(nonGeoEntityRegionCode, spec)
			if err != nil {
				return nil, err
			}
			r.entities[spec.CountryCode] = md
			continue
		}
		md, err := newMetadata(key, spec)
		if err != nil {
			return nil, err
		}
		r.regions[key] = md
		if spec.MainCountryForCode {
			r.codeToRegions[spec.CountryCode] = append([]string{key}, r.codeToRegions[spec.CountryCode]...)
		} else {
			r.codeToRegions[spec.CountryCode] = append(r.codeToRegions[spec.CountryCode], key)
		}
	}
	// Stable ordering behind the main country keeps lookups deterministic.
	for code, list := range r.codeToRegions {
		if len(list) > 2 {
			rest := list[1:]
			sort.Strings(rest)
			r.codeToRegions[code] = append(list[:1], rest...)
		}
	}
	for key, spec := range shorts {
		md, err := newMetadata(key, spec)
		if err != nil {
			return nil, err
		}
		r.shortRegions[key] = md
	}
	return r, nil
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns the registry over the embedded tables, loading
// it on first use. The embedded tables are validated by tests; a failure
// here means a corrupted build.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		r, err := NewRegistry()
		if err != nil {
			panic(fmt.Errorf("phonenum: failed to load embedded metadata: %w", err))
		}
		defaultRegistry = r
	})
	return defaultRegistry
}

// MetadataForRegion returns the metadata for a geographic region code, or
// nil when unknown.
func (r *Registry) MetadataForRegion(regionCode string) *Metadata {
	return r.regions[strings.ToUpper(regionCode)]
}

// MetadataForNonGeoEntity returns the metadata of a non-geographic
// calling-code entity, or nil.
func (r *Registry) MetadataForNonGeoEntity(countryCode int) *Metadata {
	return r.entities[countryCode]
}

// metadataForRegionOrCallingCode resolves the metadata a number with this
// calling code is governed by.
func (r *Registry) metadataForRegionOrCallingCode(countryCode int, regionCode string) *Metadata {
	if regionCode == nonGeoEntityRegionCode {
		return r.entities[countryCode]
	}
	return r.MetadataForRegion(regionCode)
}

// RegionCodesForCountryCode lists the regions sharing a calling code, the
// main country first; non-geographic codes yield ["001"].
func (r *Registry) RegionCodesForCountryCode(countryCode int) []string {
	if list, ok := r.codeToRegions[countryCode]; ok {
		return list
	}
	if _, ok := r.entities[countryCode]; ok {
		return []string{nonGeoEntityRegionCode}
	}
	return nil
}

// RegionCodeForCountryCode returns the main region for a calling code, or
// "ZZ" when the code is unknown.
func (r *Registry) RegionCodeForCountryCode(countryCode int) string {
	regions := r.RegionCodesForCountryCode(countryCode)
	if len(regions) == 0 {
		return unknownRegion
	}
	return regions[0]
}

// CountryCodeForRegion returns the calling code of a region, or 0.
func (r *Registry) CountryCodeForRegion(regionCode string) int {
	if md := r.MetadataForRegion(regionCode); md != nil {
		return md.CountryCode
	}
	return 0
}

// shortMetadataForRegion returns the short-number metadata for a region,
// or nil.
func (r *Registry) shortMetadataForRegion(regionCode string) *Metadata {
	return r.shortRegions[strings.ToUpper(regionCode)]
}

// SupportedRegions lists the geographic region codes with metadata,
// sorted.
func (r *Registry) SupportedRegions() []string {
	out := make([]string, 0, len(r.regions))
	for code := range r.regions {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

// SupportedCallingCodes lists every known country calling code, sorted.
func (r *Registry) SupportedCallingCodes() []int {
	out := make([]int, 0, len(r.callingCodes))
	for code := range r.callingCodes {
		out = append(out, code)
	}
	sort.Ints(out)
	return out
}

// isValidRegionCode reports whether geographic metadata exists for the
// code. The synthetic "001" entity code is not a valid region here.
func (r *Registry) isValidRegionCode(regionCode string) bool {
	return regionCode != "" && r.MetadataForRegion(regionCode) != nil
}

// ClosestRegion suggests the supported region code nearest to an unknown
// one, for diagnostics. The empty string means nothing was close enough.
func (r *Registry) ClosestRegion(regionCode string) string {
	code := strings.ToUpper(strings.TrimSpace(regionCode))
	if code == "" {
		return ""
	}
	if _, ok := r.regions[code]; ok {
		return code
	}
	best, bestDist := "", 2
	for _, candidate := range r.SupportedRegions() {
		dist := levenshtein.ComputeDistance(code, candidate)
		if dist < bestDist {
			best, bestDist = candidate, dist
		}
	}
	return best
}

// unknownRegion is the caller-facing code for "no region": parse accepts
// it to mean the number must carry its own country code.
const unknownRegion = "ZZ"
