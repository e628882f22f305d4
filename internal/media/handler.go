package media

import (
	"mime/multipart"
	"sync"

	"github.com/gofiber/fiber/v2"
)

// POST /api/uploads
//
// Uploads every file in the multipart batch concurrently and returns the
// results in the original selection order. One failed file fails the whole
// batch; URLs already fetched for the other files are discarded.
func UploadHandler(up Uploader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		form, err := c.MultipartForm()
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Expected multipart form data")
		}
		files := form.File["files"]
		if len(files) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "No files provided")
		}

		results := make([]*UploadResult, len(files))
		errs := make([]error, len(files))

		var wg sync.WaitGroup
		for i, header := range files {
			wg.Add(1)
			go func(i int, header *multipart.FileHeader) {
				defer wg.Done()
				f, err := header.Open()
				if err != nil {
					errs[i] = err
					return
				}
				defer f.Close()
				results[i], errs[i] = up.Upload(c.Context(), f, header.Filename)
			}(i, header)
		}
		wg.Wait()

		for _, err := range errs {
			if err != nil {
				return fiber.NewError(fiber.StatusBadGateway, "Upload failed: "+err.Error())
			}
		}

		return c.JSON(fiber.Map{"uploads": results})
	}
}
