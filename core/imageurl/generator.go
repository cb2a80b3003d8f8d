/*
SPDX-License-Identifier: Apache-2.0

Copyright 2024 The Taxinomia Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package imageurl generates URLs for processed versions of images.
package imageurl

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// Mode selects how an image is fitted in the requested box.
type Mode string

const (
	// ModeCrop fills the box and crops what falls outside.
	ModeCrop Mode = "crop"
	// ModeResize scales the image to fit inside the box.
	ModeResize Mode = "resize"
)

type Options struct {
	Width  int
	Height int
}

// Generator returns the URL of path processed with mode and options.
type Generator interface {
	GenerateURL(path string, mode Mode, options Options) (string, error)
}

// GenerationError is returned when an image could not be processed.
type GenerationError struct {
	Path string
	Err  error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("could not generate image %s: %v", e.Path, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// ThumbnailGenerator reads images from SourceDir, writes processed copies
// to CacheDir and returns their URL under BaseURL. Processed copies are
// reused while they are newer than their source.
type ThumbnailGenerator struct {
	SourceDir string
	CacheDir  string
	BaseURL   string
}

func NewThumbnailGenerator(sourceDir, cacheDir, baseURL string) *ThumbnailGenerator {
	return &ThumbnailGenerator{SourceDir: sourceDir, CacheDir: cacheDir, BaseURL: baseURL}
}

func (g *ThumbnailGenerator) GenerateURL(path string, mode Mode, options Options) (string, error) {
	if options.Width <= 0 || options.Height <= 0 {
		return "", &GenerationError{Path: path, Err: errors.Errorf("invalid dimensions %dx%d", options.Width, options.Height)}
	}

	source := filepath.Join(g.SourceDir, filepath.FromSlash(path))
	sourceInfo, err := os.Stat(source)
	if err != nil {
		return "", &GenerationError{Path: path, Err: err}
	}

	name := cacheName(path, mode, options)
	target := filepath.Join(g.CacheDir, name)
	if targetInfo, err := os.Stat(target); err == nil && targetInfo.ModTime().After(sourceInfo.ModTime()) {
		return g.url(name), nil
	}

	img, err := imaging.Open(source)
	if err != nil {
		return "", &GenerationError{Path: path, Err: err}
	}

	var thumb image.Image
	switch mode {
	case ModeCrop:
		thumb = imaging.Fill(img, options.Width, options.Height, imaging.Center, imaging.Lanczos)
	case ModeResize:
		thumb = imaging.Fit(img, options.Width, options.Height, imaging.Lanczos)
	default:
		return "", &GenerationError{Path: path, Err: errors.Errorf("unsupported mode %q", mode)}
	}

	if err := os.MkdirAll(g.CacheDir, 0o755); err != nil {
		return "", &GenerationError{Path: path, Err: err}
	}
	if err := imaging.Save(thumb, target); err != nil {
		return "", &GenerationError{Path: path, Err: err}
	}
	return g.url(name), nil
}

func (g *ThumbnailGenerator) url(name string) string {
	return strings.TrimRight(g.BaseURL, "/") + "/" + name
}

func cacheName(path string, mode Mode, options Options) string {
	sum := sha1.Sum([]byte(fmt.Sprintf("%s|%s|%dx%d", path, mode, options.Width, options.Height)))
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		ext = ".png"
	}
	return hex.EncodeToString(sum[:]) + ext
}
