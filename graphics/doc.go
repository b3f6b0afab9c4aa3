// SPDX-License-Identifier: MIT

// Package graphics provides the two color representations used alongside
// the vector types: Color, four float32 channels in [0, 1], and Color32,
// four 8-bit channels. Both are straight (non-premultiplied) RGBA and both
// implement image/color.Color.
//
// Color converts to Color32 by scaling with 255.99 and truncating, so every
// channel value in [0, 1] lands in one of 256 equally wide buckets. Color32
// converts back by dividing by 255. Channels outside [0, 1] saturate.
package graphics
