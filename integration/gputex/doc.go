// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gputex maps decoded display layers to WebGPU texture formats.
//
// A finished frame interleaves all layers' channels per pixel; a GPU
// texture holds one layer in one of the fixed wgpu formats. This
// package provides the format choice (Format) and the repacking
// (Pack) so a frame received through an accumulating finish callback
// can be uploaded as a set of textures, one per layer.
package gputex
