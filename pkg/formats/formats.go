// Package formats provides parsers and writers for the heightmap rasters the terrain demo loads.
package formats
