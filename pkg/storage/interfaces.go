package storage

import "io"

// PosterStorage stores raw poster files.
type PosterStorage interface {
	Upload(key string, reader io.Reader) error
	Delete(key string) error
	PublicURL(key string) string
}

// ImageService serves CDN renditions of a poster.
type ImageService interface {
	Upload(reader io.Reader, filename string) (imageID string, err error)
	Delete(imageID string) error
	PublicURL(imageID string) string
	ThumbnailURL(imageID string) string
}
