/*
Package xyz implements an RPG Maker XYZ image decoder and encoder.

The format is a 4 byte "XYZ1" signature followed by the width and height as
little-endian 16-bit values. The remainder of the file is a single zlib
stream holding a 256 color palette of RGB triplets followed by one palette
index byte per pixel, row by row. There is no transparency in the format;
images used as chipsets or charsets treat palette index 0 as transparent.
*/
package xyz

const (
	signature     = "XYZ1"
	headerSize    = len(signature) + 2 + 2
	paletteColors = 256
	paletteBytes  = paletteColors * 3
	maxDimension  = 1<<16 - 1
)
