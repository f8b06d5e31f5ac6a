package config

import "sort"

func target(v int) *int { return &v }

var Presets = map[string]*InitialConfig{
	"odds": {
		Array:  []int{1, 3, 5, 7, 9, 11, 13, 15, 17, 19, 21, 23, 25, 27, 29},
		Target: target(23),
	},
	"evens": {
		Array:  []int{0, 2, 4, 6, 8, 10, 12, 14, 16, 18, 20, 22, 24, 26, 28, 30},
		Target: target(7),
	},
	"negatives": {
		Array:  []int{-40, -33, -21, -15, -8, -2, 0, 4, 11, 19},
		Target: target(-15),
	},
	"duplicates": {
		Array:  []int{1, 2, 2, 2, 3, 5, 5, 8, 8, 8, 8, 13},
		Target: target(8),
	},
	"single": {
		Array:  []int{42},
		Target: target(42),
	},
	"worst": {
		Array:  []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31},
		Target: target(32),
	},
}

func GetPreset(name string) *InitialConfig {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	return p
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
