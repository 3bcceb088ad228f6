// Package raster holds linear-light RGB images and loads them from encoded
// image files.
//
// Pixels are stored as float32 linear light, three channels per pixel in
// row-major order. [Load] accepts GIF, JPEG, PNG, BMP, TIFF, and WebP files;
// alpha is discarded.
package raster
