package palette

import (
	"sort"
	"strings"
)

// builtin gradients, as evenly spaced sRGB anchors. The sequential and
// diverging schemes are the ColorBrewer 9- and 11-class sets; the perceptual
// maps are ten even samples of the matplotlib originals.
var builtin = map[string][]string{
	"viridis": {"440154", "482878", "3e4989", "31688e", "26828e", "1f9e89", "35b779", "6ece58", "b5de2b", "fde725"},
	"magma":   {"000004", "180f3d", "440f76", "721f81", "9e2f7f", "cd4071", "f1605d", "fd9668", "feca8d", "fcfdbf"},
	"inferno": {"000004", "1b0c41", "4a0c6b", "781c6d", "a52c60", "cf4446", "ed6925", "fb9b06", "f7d13d", "fcffa4"},
	"plasma":  {"0d0887", "46039f", "7201a8", "9c179e", "bd3786", "d8576b", "ed7953", "fb9f3a", "fdca26", "f0f921"},

	"Blues":   {"f7fbff", "deebf7", "c6dbef", "9ecae1", "6baed6", "4292c6", "2171b5", "08519c", "08306b"},
	"BuGn":    {"f7fcfd", "e5f5f9", "ccece6", "99d8c9", "66c2a4", "41ae76", "238b45", "006d2c", "00441b"},
	"GnBu":    {"f7fcf0", "e0f3db", "ccebc5", "a8ddb5", "7bccc4", "4eb3d3", "2b8cbe", "0868ac", "084081"},
	"Greens":  {"f7fcf5", "e5f5e0", "c7e9c0", "a1d99b", "74c476", "41ab5d", "238b45", "006d2c", "00441b"},
	"Greys":   {"ffffff", "f0f0f0", "d9d9d9", "bdbdbd", "969696", "737373", "525252", "252525", "000000"},
	"Oranges": {"fff5eb", "fee6ce", "fdd0a2", "fdae6b", "fd8d3c", "f16913", "d94801", "a63603", "7f2704"},
	"Purples": {"fcfbfd", "efedf5", "dadaeb", "bcbddc", "9e9ac8", "807dba", "6a51a3", "54278f", "3f007d"},
	"PuBu":    {"fff7fb", "ece7f2", "d0d1e6", "a6bddb", "74a9cf", "3690c0", "0570b0", "045a8d", "023858"},
	"RdPu":    {"fff7f3", "fde0dd", "fcc5c0", "fa9fb5", "f768a1", "dd3497", "ae017e", "7a0177", "49006a"},
	"Reds":    {"fff5f0", "fee0d2", "fcbba1", "fc9272", "fb6a4a", "ef3b2c", "cb181d", "a50f15", "67000d"},
	"YlGnBu":  {"ffffd9", "edf8b1", "c7e9b4", "7fcdbb", "41b6c4", "1d91c0", "225ea8", "253494", "081d58"},
	"YlOrRd":  {"ffffcc", "ffeda0", "fed976", "feb24c", "fd8d3c", "fc4e2a", "e31a1c", "bd0026", "800026"},

	"RdBu":     {"67001f", "b2182b", "d6604d", "f4a582", "fddbc7", "f7f7f7", "d1e5f0", "92c5de", "4393c3", "2166ac", "053061"},
	"Spectral": {"9e0142", "d53e4f", "f46d43", "fdae61", "fee08b", "ffffbf", "e6f598", "abdda4", "66c2a5", "3288bd", "5e4fa2"},

	"gray": {"000000", "ffffff"},
}

const reversedSuffix = "_r"

// Names returns every built-in gradient name, including reversed variants,
// in sorted order.
func Names() []string {
	names := make([]string, 0, 2*len(builtin))
	for name := range builtin {
		names = append(names, name, name+reversedSuffix)
	}
	sort.Strings(names)
	return names
}

// lookup returns the anchors of a built-in gradient by name.
func lookup(name string) ([]string, bool) {
	if anchors, ok := builtin[name]; ok {
		return anchors, true
	}

	base, ok := strings.CutSuffix(name, reversedSuffix)
	if !ok {
		return nil, false
	}
	anchors, ok := builtin[base]
	if !ok {
		return nil, false
	}

	reversed := make([]string, len(anchors))
	for i, a := range anchors {
		reversed[len(anchors)-1-i] = a
	}
	return reversed, true
}
