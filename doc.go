// Package watermark renders a tiled, tamper-resistant watermark overlay
// above a host element and keeps it in sync with the host.
//
// An overlay is a canvas appended as the last child of its target. Text,
// an image, or a custom paint function is repeated over a rotated grid
// covering the whole canvas. The overlay repaints when the target resizes,
// removes itself when its own attributes are touched, and is mounted again
// whenever it goes missing from the target's children. Failures never reach
// the caller: a broken watermark draws nothing rather than breaking the
// host.
//
// The host environment is abstracted behind Host and Element; package
// scene provides an in-memory implementation.
package watermark
