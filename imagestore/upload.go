package imagestore

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"mime/multipart"
	"path/filepath"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
	"gopkg.in/kothar/go-backblaze.v0"

	"github.com/GuilhermeTebaldi/templesale2-sub001/config"
)

// Sizes rendered for each uploaded image. Thumbnails for the grid, a
// medium size for map popups, a large size for the detail page.
var uploadSizes = []struct {
	Width   int
	Suffix  string
	Quality float32
}{
	{160, "160w", 60},
	{480, "480w", 70},
	{1200, "1200w", 80},
}

// UploadListingImages converts uploaded images to webp at several widths
// and stores them under the listing's prefix. Meant to run in a goroutine
// after the listing row is committed; failures are logged, not returned.
func UploadListingImages(listingID int, files []*multipart.FileHeader) {
	log.Printf("[ImageStore] Starting upload for listing %d with %d images", listingID, len(files))

	if config.B2MasterKeyID == "" || config.B2AppKey == "" || config.B2KeyID == "" {
		log.Printf("[ImageStore] B2 credentials not set, skipping upload for listing %d", listingID)
		return
	}

	b2, err := backblaze.NewB2(backblaze.Credentials{
		AccountID:      config.B2MasterKeyID,
		ApplicationKey: config.B2AppKey,
		KeyID:          config.B2KeyID,
	})
	if err != nil {
		log.Printf("[ImageStore] B2 auth error for listing %d: %v", listingID, err)
		return
	}

	bucket, err := b2.Bucket(config.B2BucketName)
	if err != nil {
		log.Printf("[ImageStore] B2 bucket error for listing %d: %v", listingID, err)
		return
	}

	uploaded := 0
	for i, fileHeader := range files {
		img, err := decodeUpload(fileHeader)
		if err != nil {
			log.Printf("[ImageStore] Failed to decode image %d for listing %d: %v", i+1, listingID, err)
			continue
		}

		bounds := img.Bounds()
		for _, sz := range uploadSizes {
			w := sz.Width
			h := bounds.Dy() * w / bounds.Dx()
			dst := image.NewRGBA(image.Rect(0, 0, w, h))
			draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

			var webpBuf bytes.Buffer
			opt := &webp.Options{Lossless: false, Quality: sz.Quality}
			if err := webp.Encode(&webpBuf, dst, opt); err != nil {
				log.Printf("[ImageStore] WebP encode error for image %d size %s listing %d: %v",
					i+1, sz.Suffix, listingID, err)
				continue
			}

			path := filepath.Join(
				fmt.Sprintf("%d", listingID),
				fmt.Sprintf("%d-%s.webp", i+1, sz.Suffix),
			)
			if _, err := bucket.UploadTypedFile(path, "image/webp", nil, bytes.NewReader(webpBuf.Bytes())); err != nil {
				log.Printf("[ImageStore] Upload failed for %s listing %d: %v", path, listingID, err)
				continue
			}
			uploaded++
		}
	}

	log.Printf("[ImageStore] Upload complete for listing %d: %d/%d files uploaded",
		listingID, uploaded, len(files)*len(uploadSizes))
}

func decodeUpload(fileHeader *multipart.FileHeader) (image.Image, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(file); err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(buf.Bytes()))
	return img, err
}
