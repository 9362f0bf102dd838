// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// TerrainVertexShader is the vertex shader for bump-mapped terrain.
//
//go:embed terrain.vert
var TerrainVertexShader string

// TerrainFragmentShader is the fragment shader for bump-mapped terrain.
//
//go:embed terrain.frag
var TerrainFragmentShader string
