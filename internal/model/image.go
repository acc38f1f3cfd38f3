package model

import "github.com/pkg/errors"

// ImageRef points at a chart image relative to a topic's image directory.
type ImageRef struct {
	Path    string `json:"path" validate:"required,imagepath"`
	Caption string `json:"caption"`
}

func I(path, caption string) ImageRef {
	return ImageRef{Path: path, Caption: caption}
}

func NewImageRef(path, caption string) (ImageRef, error) {
	ref := ImageRef{Path: path, Caption: caption}
	if err := Validate.Struct(ref); err != nil {
		return ImageRef{}, errors.Wrapf(err, "invalid image reference %q", path)
	}
	return ref, nil
}
