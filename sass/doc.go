// Package sass implements the closed value model consumed by Sass custom
// functions: Null, Boolean, Number, Color, String, List and Map.
// Scalar values are immutable; List and Map are filled by index after
// construction with SetValue/SetKey and read back with Value/Key, which
// report ErrOutOfRange for indexes beyond their length.
package sass
