// Package viz provides the terminal visualizer for the binary search engine.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [Model]: array and target input fields, the Search button, the value
//     blocks with their low/mid/high markers, and a detail panel
//   - [Canvas]: Braille-based pixel canvas used for the range strip
//   - Theme selection with 5 built-in color schemes
//
// # Key Bindings
//
//	Tab   - Move focus between the input fields
//	Enter - Run the search (from either field or with no field focused)
//	Esc   - Leave the focused field
//	Space - Pause/Resume stepping
//	+/-   - Faster/slower steps
//	R     - Restart the current search
//	T     - Cycle color themes
//	?     - Show full help
//	Q     - Quit (when no field is focused)
//
// Clicking a field focuses it, clicking anywhere else blurs it, and clicking
// a value block copies its value into the target field.
package viz
