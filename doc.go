// Package pixelkernel is a small image-processing kernel over 8-bit RGB
// buffers: Gaussian-target histogram equalization, rank-order filtering,
// line-element morphological opening and hole filling.
//
// Every operation validates its arguments before reading a pixel and returns a
// freshly allocated Buffer; inputs are never modified. Functions hold no state
// and take no locks, so independent buffers may be processed concurrently.
package pixelkernel
