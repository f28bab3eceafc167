// Package render draws the Julia-set carrier images on the CPU.
//
// Every pixel gets a smooth escape-time value that is coloured with a turbo
// colormap blended with an HSV overlay keyed on the final orbit angle, then
// framed by a vignette. The Julia constant, zoom and rotation are derived
// from a seed in [0,1] and an animation time in seconds, so the same
// (seed, time, size) always yields the same picture.
//
// The codec never depends on this package: any opaque RGBA producer can
// supply a carrier.
package render
