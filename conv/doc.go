// Package conv converts host values into Sass values.
// A Converter classifies scalars with an ordered set of recognizers (color,
// number, boolean, falling back to string), turns dates into component maps,
// sequences into lists and objects, maps and structs into ordered maps, unless
// the object itself describes a color or a number with unit.
//
// Vocabularies (truthy/falsey words, color channel aliases, units) are fixed
// when a Converter is created, converters are immutable and safe for
// concurrent use.
package conv
