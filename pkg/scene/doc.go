// Package scene defines the canonical in-memory scene tree: Instance
// nodes, the PropertyValue sum type attached to each Instance, and the
// small spatial value types (Vector3, CFrame, Color3, UDim2, AABB) used
// throughout the loader, diff engine, and renderer.
//
// The tree is a pure ownership structure: children are owned by their
// parent and carry no back-pointer. Paths and ids are
// computed once by the loader and stored on the Instance; nothing in this
// package mutates a tree after construction.
package scene
