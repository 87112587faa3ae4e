// Package colorspace converts RGB samples into a perceptual Lab-like space
// and measures distances within it.
//
// The conversion is a simplified approximation of CIE Lab, not the standard
// transform: channels are gamma-linearized and scaled, combined into XYZ via
// the sRGB/D65 matrix, and then mapped with
//
//	l = 10·√Y
//	a = 17.5·(1.02X − Y)/√Y
//	b = 7·(Y − 0.847Z)/√Y
//
// The exact constants matter: downstream slice scoring mixes Lab distances
// with entropy values on a shared numeric scale, and the distance divisor
// (10) was chosen to keep the two in the same range. Do not "correct" the
// formula toward standard CIE Lab.
//
// All functions are pure and allocation-free; there are no error conditions.
// A pure-black input (Y == 0) maps to the zero Lab value rather than
// dividing by zero.
package colorspace
