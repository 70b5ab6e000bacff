// Package colorspace implements the perceptual color math that the palette
// reduction pipeline is built on: conversion of 8-bit sRGB triples into the
// CIELAB color space and the CIEDE2000 color-difference formula between two
// CIELAB colors.
//
// # Color Representation
//
// RGB is the package's external currency: an immutable, comparable triple of
// 8-bit components, usable directly as a map key. Lab is a derived
// representation only — always computed from an RGB value, never constructed
// from scratch by callers.
//
// # Conversion Pipeline
//
// RGB.Lab follows the standard sRGB path:
//
//	sRGB (8-bit) -> gamma expansion -> linear RGB -> CIEXYZ (D65) -> CIELAB
//
// The conversion uses IEEE-754 double precision throughout and fixed published
// constants, so results are reproducible bit-for-bit across platforms.
//
// # Distance
//
// DeltaE implements the full published CIEDE2000 formula with the parametric
// weighting factors set to 1. CIEDE2000 corrects the earlier CIE76/CIE94
// formulas for perceptual non-uniformity in blues and near-neutral colors,
// which matters here because palette matching lives or dies on small
// differences between similar candidates.
//
// # Error Handling
//
// Both the conversion and the distance are total functions over their
// documented domains; they return no errors. The only guarded condition is an
// internal assertion that the degree-conversion helper is fed angles within
// atan2's output range, which panics if violated since it indicates a defect
// rather than bad input.
package colorspace
