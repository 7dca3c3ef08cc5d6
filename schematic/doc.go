// Package schematic reads an engine schematic: a rectangular character grid
// of digits, '.' padding, and symbols.
//
//   - Numbers are maximal horizontal runs of digits.
//   - A part number is a number with a symbol in any of the 8 cells around
//     any of its digits. Symbols are every character except digits and '.'.
//   - A gear is a '*' touching exactly two distinct numbers; its ratio is
//     their product.
//
// Complexity: Numbers, PartNumbers, and Gears are O(W×H).
package schematic
