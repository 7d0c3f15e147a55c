package assets

import "errors"

var (
	ErrStyleNotFound    = errors.New("style not found")
	ErrTemplateNotFound = errors.New("page template not found")

	// ErrInvalidAssetName rejects names that could address files outside
	// the asset directories.
	ErrInvalidAssetName = errors.New("invalid asset name")
	ErrInvalidBasePath  = errors.New("invalid asset directory")
	ErrAssetRead        = errors.New("reading asset")

	// ErrPathTraversal is returned when a symlink inside the asset
	// directory points outside of it.
	ErrPathTraversal = errors.New("asset path escapes directory")
)
