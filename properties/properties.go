// Package properties assembles the configuration property bag passed to
// runtime initialization.
package properties

import (
	"strings"

	"github.com/wippyai/clrhost/errors"
	"github.com/wippyai/clrhost/native"
)

// Property keys in the order the runtime receives them.
const (
	TrustedPlatformAssemblies  = "TRUSTED_PLATFORM_ASSEMBLIES"
	AppPaths                   = "APP_PATHS"
	AppNIPaths                 = "APP_NI_PATHS"
	NativeDllSearchDirectories = "NATIVE_DLL_SEARCH_DIRECTORIES"
	AppDomainCompatSwitch      = "AppDomainCompatSwitch"
)

// CompatSwitchValue is the fixed value of AppDomainCompatSwitch.
const CompatSwitchValue = "UseLatestBehaviorWhenTFMNotSpecified"

// Pair is one key/value entry.
type Pair struct {
	Key   string
	Value string
}

// Bag is an ordered, validated set of properties. Keys and values always
// have the same length.
type Bag struct {
	pairs []Pair
}

// Build returns the five properties in their fixed order. Values containing
// an embedded NUL cannot cross the native boundary and are rejected.
func Build(trustedAssemblies, appPaths, appNIPaths, nativeSearchDirs string) (Bag, error) {
	pairs := []Pair{
		{TrustedPlatformAssemblies, trustedAssemblies},
		{AppPaths, appPaths},
		{AppNIPaths, appNIPaths},
		{NativeDllSearchDirectories, nativeSearchDirs},
		{AppDomainCompatSwitch, CompatSwitchValue},
	}
	for _, p := range pairs {
		if strings.IndexByte(p.Value, 0) >= 0 {
			return Bag{}, errors.Encoding(errors.PhaseProperties, p.Key, p.Value)
		}
	}
	return Bag{pairs: pairs}, nil
}

// Len returns the number of pairs.
func (b Bag) Len() int { return len(b.pairs) }

// Pairs returns a copy of the entries.
func (b Bag) Pairs() []Pair {
	return append([]Pair(nil), b.pairs...)
}

// Keys returns the keys in order.
func (b Bag) Keys() []string {
	keys := make([]string, len(b.pairs))
	for i, p := range b.pairs {
		keys[i] = p.Key
	}
	return keys
}

// Values returns the values in the same order as Keys.
func (b Bag) Values() []string {
	values := make([]string, len(b.pairs))
	for i, p := range b.pairs {
		values[i] = p.Value
	}
	return values
}

// Get returns the value stored under key.
func (b Bag) Get(key string) (string, bool) {
	for _, p := range b.pairs {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// Marshal copies keys and values into arena-owned native arrays. The arrays
// stay valid until the arena is freed.
func (b Bag) Marshal(arena *native.Arena) (keys, values **byte, count int32, err error) {
	keys, count, err = arena.Strings(errors.PhaseProperties, "property keys", b.Keys())
	if err != nil {
		return nil, nil, 0, err
	}
	values, _, err = arena.Strings(errors.PhaseProperties, "property values", b.Values())
	if err != nil {
		return nil, nil, 0, err
	}
	return keys, values, count, nil
}
