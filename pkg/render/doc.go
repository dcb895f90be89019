// Package render is a software rasterizer that turns a scene tree into an
// 800x600 auto-framed perspective render: it collects BasePart
// primitives, auto-frames a camera around their combined bounds, rasterizes
// Block/Ball/Cylinder meshes with a per-pixel Z-buffer, then overlays
// StarterGui Frames and optional debug geometry. It deliberately matches the
// original implementation's literal behavior rather than a textbook
// rasterizer: Z-buffer comparisons interpolate NDC z linearly across a
// triangle instead of using perspective-correct interpolation, and the
// near-plane test is a blunt per-vertex w<=0 reject rather than true
// clipping.
package render
