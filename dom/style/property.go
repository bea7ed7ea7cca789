package style

import (
	"fmt"
	"sort"
	"strings"
)

// Property is a raw value for a CSS property. For example, with
//
//     top: 20px
//
// a property value of "20px" is set. The main purpose of wrapping
// the raw string value into type Property is to provide a set of
// convenient helpers.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsInitial denotes if a property is of inheritence-type "initial"
func (p Property) IsInitial() bool {
	return p == "initial"
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Property
}

// --- CSS Property Groups ----------------------------------------------

// PropertyGroup is a collection of propertes sharing a common topic.
//
// The mapping of property into groups is documented with
// GroupNameFromPropertyKey[...].
type PropertyGroup struct {
	name      string
	propsDict map[string]Property
}

// NewPropertyGroup creates a new empty property group, given its name.
func NewPropertyGroup(groupname string) *PropertyGroup {
	return &PropertyGroup{name: groupname}
}

// Name returns the name of the property group.
func (pg *PropertyGroup) Name() string {
	return pg.name
}

// Properties returns all properties of a group, sorted by key.
func (pg *PropertyGroup) Properties() []KeyValue {
	r := make([]KeyValue, 0, len(pg.propsDict))
	for k, v := range pg.propsDict {
		r = append(r, KeyValue{k, v})
	}
	sort.Slice(r, func(i, j int) bool { return r[i].Key < r[j].Key })
	return r
}

// IsSet is a predicated wether a property is set within this group.
func (pg *PropertyGroup) IsSet(key string) bool {
	if pg == nil || pg.propsDict == nil {
		return false
	}
	v, ok := pg.propsDict[key]
	return ok && !v.IsEmpty()
}

// Get a property's value.
func (pg *PropertyGroup) Get(key string) (Property, bool) {
	if pg == nil || pg.propsDict == nil {
		return NullStyle, false
	}
	p, ok := pg.propsDict[key]
	return p, ok
}

// Set a property's value. Overwrites an existing value, if present.
//
// Style property values are always converted to lower case.
func (pg *PropertyGroup) Set(key string, p Property) {
	p = Property(strings.ToLower(strings.TrimSpace(string(p))))
	if pg.propsDict == nil {
		pg.propsDict = make(map[string]Property)
	}
	pg.propsDict[key] = p
}

func (pg *PropertyGroup) String() string {
	s := "[" + pg.name + "] ="
	for _, kv := range pg.Properties() {
		s += fmt.Sprintf(" %s:%s", kv.Key, kv.Value)
	}
	return s
}

// GroupNameFromPropertyKey returns the style property group name for a
// style property.
// Example:
//    GroupNameFromPropertyKey("top") => "Offsets"
//
// Unknown style property keys will return a group name of "X".
func GroupNameFromPropertyKey(key string) string {
	groupname, found := groupNameFromPropertyKey[key]
	if !found {
		groupname = PGX
	}
	return groupname
}

// Symbolic names for string literals, denoting PropertyGroups.
const (
	PGOffsets   = "Offsets"
	PGDimension = "Dimension"
	PGDisplay   = "Display"
	PGScroll    = "Scroll"
	PGColors    = "Colors"
	PGX         = "X"
)

var groupNameFromPropertyKey = map[string]string{
	"top":              PGOffsets, // Offsets
	"right":            PGOffsets,
	"bottom":           PGOffsets,
	"left":             PGOffsets,
	"width":            PGDimension, // Dimension
	"height":           PGDimension,
	"display":          PGDisplay, // Display
	"position":         PGDisplay,
	"visibility":       PGDisplay,
	"overflow":         PGScroll, // Scroll
	"overflow-x":       PGScroll,
	"overflow-y":       PGScroll,
	"color":            PGColors, // Colors
	"background-color": PGColors,
}

// SplitCompoundProperty splits up a shortcut property into its individual
// components. Returns a slice of key-value pairs representing the
// individual (fine grained) style properties.
// Example:
//    SplitCompountProperty("inset", "3px 5px")
// will return
//    "top"    => "3px"
//    "right"  => "5px"
//    "bottom" => "3px"
//    "left"   => "5px"
// For the logic behind this, refer to e.g.
// https://developer.mozilla.org/en-US/docs/Web/CSS/inset .
func SplitCompoundProperty(key string, value Property) ([]KeyValue, error) {
	fields := strings.Fields(value.String())
	switch key {
	case "inset":
		return feazeCompound4("", "", fourDirs, fields)
	case "margin":
		return feazeCompound4("margin", "", fourDirs, fields)
	case "padding":
		return feazeCompound4("padding", "", fourDirs, fields)
	case "overflow":
		if len(fields) == 0 || len(fields) > 2 {
			return nil, fmt.Errorf("expecting 1-2 values for overflow")
		}
		y := fields[0]
		if len(fields) == 2 {
			y = fields[1]
		}
		return []KeyValue{{"overflow-x", Property(fields[0])}, {"overflow-y", Property(y)}}, nil
	}
	return nil, fmt.Errorf("not recognized as compound property: %s", key)
}

// IsCompound is true for shortcut properties understood by SplitCompoundProperty.
func IsCompound(key string) bool {
	switch key {
	case "inset", "margin", "padding", "overflow":
		return true
	}
	return false
}

// CSS logic to distribute individual values from compound shortcuts is as
// follows: https://www.w3schools.com/css/css_border.asp
func feazeCompound4(pre string, suf string, dirs [4]string, fields []string) ([]KeyValue, error) {
	l := len(fields)
	if l == 0 || l > 4 {
		return nil, fmt.Errorf("expecting 1-4 values for %s", p(pre, suf, "*"))
	}
	r := make([]KeyValue, 4)
	r[0] = KeyValue{p(pre, suf, dirs[0]), Property(fields[0])}
	if l >= 2 {
		r[1] = KeyValue{p(pre, suf, dirs[1]), Property(fields[1])}
		if l >= 3 {
			r[2] = KeyValue{p(pre, suf, dirs[2]), Property(fields[2])}
			if l == 4 {
				r[3] = KeyValue{p(pre, suf, dirs[3]), Property(fields[3])}
			} else {
				r[3] = KeyValue{p(pre, suf, dirs[3]), Property(fields[1])}
			}
		} else {
			r[2] = KeyValue{p(pre, suf, dirs[2]), Property(fields[0])}
			r[3] = KeyValue{p(pre, suf, dirs[3]), Property(fields[1])}
		}
	} else {
		r[1] = KeyValue{p(pre, suf, dirs[1]), Property(fields[0])}
		r[2] = KeyValue{p(pre, suf, dirs[2]), Property(fields[0])}
		r[3] = KeyValue{p(pre, suf, dirs[3]), Property(fields[0])}
	}
	return r, nil
}

var fourDirs = [4]string{"top", "right", "bottom", "left"}

func p(prefix string, suffix string, tag string) string {
	if prefix == "" && suffix == "" {
		return tag
	}
	if suffix == "" {
		return prefix + "-" + tag
	}
	if prefix == "" {
		return tag + "-" + suffix
	}
	return prefix + "-" + tag + "-" + suffix
}

// --- Property Map -----------------------------------------------------

// PropertyMap holds CSS properties. nil is a legal (empty) property map.
type PropertyMap struct {
	m map[string]*PropertyGroup
}

// NewPropertyMap returns a new empty property map.
func NewPropertyMap() *PropertyMap {
	return &PropertyMap{m: make(map[string]*PropertyGroup)}
}

func (pmap *PropertyMap) String() string {
	if pmap == nil {
		return "Property Map = {}"
	}
	names := make([]string, 0, len(pmap.m))
	for k := range pmap.m {
		names = append(names, k)
	}
	sort.Strings(names)
	s := "Property Map = {"
	for _, n := range names {
		s += " " + pmap.m[n].String()
	}
	return s + " }"
}

// Size returns the number of property groups.
func (pmap *PropertyMap) Size() int {
	if pmap == nil {
		return 0
	}
	return len(pmap.m)
}

// Group returns the property group for a group name or nil.
func (pmap *PropertyMap) Group(groupname string) *PropertyGroup {
	if pmap == nil {
		return nil
	}
	return pmap.m[groupname]
}

// Property returns a style property value, together with an indicator
// wether it has been found in the properties map.
func (pmap *PropertyMap) Property(key string) (Property, bool) {
	group := pmap.Group(GroupNameFromPropertyKey(key))
	if group == nil {
		return NullStyle, false
	}
	return group.Get(key)
}

// GetPropertyValue returns a style property value or NullStyle.
func (pmap *PropertyMap) GetPropertyValue(key string) Property {
	p, _ := pmap.Property(key)
	return p
}

// Add adds a property to this property map, e.g.,
//
//    pm.Add("top", "20px")
//
// Compound properties are split into their components. Malformed compound
// values are dropped.
func (pmap *PropertyMap) Add(key string, value Property) {
	if pmap == nil {
		return
	}
	key = strings.ToLower(strings.TrimSpace(key))
	if IsCompound(key) {
		kvs, err := SplitCompoundProperty(key, value)
		if err != nil {
			tracer().Debugf("styling: dropping %s: %v", key, err)
			return
		}
		for _, kv := range kvs {
			pmap.Add(kv.Key, kv.Value)
		}
		return
	}
	if pmap.m == nil {
		pmap.m = make(map[string]*PropertyGroup)
	}
	groupname := GroupNameFromPropertyKey(key)
	group, found := pmap.m[groupname]
	if !found {
		group = NewPropertyGroup(groupname)
		pmap.m[groupname] = group
	}
	group.Set(key, value)
}

// AddAll transfers all style properties from another property map, overwriting
// existing values.
func (pmap *PropertyMap) AddAll(other *PropertyMap) *PropertyMap {
	if pmap == nil {
		pmap = NewPropertyMap()
	}
	if other == nil {
		return pmap
	}
	for _, g := range other.m {
		for _, kv := range g.Properties() {
			pmap.Add(kv.Key, kv.Value)
		}
	}
	return pmap
}
